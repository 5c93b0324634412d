package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/midbel/pint"
)

func main() {
	file := flag.String("c", "", "configuration file")
	flag.Parse()

	cfg, err := loadConfig(*file)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	switch flag.Arg(0) {
	case "", "repl":
		err = repl(cfg)
	case "run":
		err = runFile(flag.Arg(1))
	case "scan":
		err = scanFile(flag.Arg(1))
	case "ast":
		err = dumpFile(flag.Arg(1))
	case "help":
		fmt.Fprintln(os.Stdout, usage)
	default:
		err = fmt.Errorf("%s: unknown command", flag.Arg(0))
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

const usage = `usage: pint [-c config] [command] [file]

commands:
  repl    interactive session (default)
  run     execute a script
  scan    print the token stream of a script
  ast     print the syntax tree of a script
  help    show this message`

func runFile(file string) error {
	r, err := os.Open(file)
	if err != nil {
		return err
	}
	defer r.Close()
	return pint.Eval(r, os.Stdout)
}

func scanFile(file string) error {
	r, err := os.Open(file)
	if err != nil {
		return err
	}
	defer r.Close()
	return scanReader(r)
}

func scanReader(r io.Reader) error {
	scan := pint.Scan(r)
	for {
		tok := scan.Scan()
		fmt.Println(tok)
		if tok.Type == pint.Invalid {
			return &pint.LexError{
				Char:     tok.Literal,
				Position: tok.Position,
			}
		}
		if tok.Type == pint.EOF {
			return nil
		}
	}
}

func dumpFile(file string) error {
	r, err := os.Open(file)
	if err != nil {
		return err
	}
	defer r.Close()
	prog, err := pint.Parse(r)
	if err != nil {
		return err
	}
	pint.Dump(os.Stdout, prog)
	return nil
}
