package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/midbel/pint"
	"github.com/midbel/pint/history"
)

func repl(cfg Config) error {
	hist, err := history.Open(cfg.History.File, cfg.History.Max)
	if err == nil {
		defer hist.Close()
	} else {
		fmt.Fprintln(os.Stderr, err)
		hist = nil
	}

	interp := pint.New(os.Stdout)
	scan := bufio.NewScanner(os.Stdin)

	fmt.Println("pint session - exit to quit, help for commands")
	for {
		fmt.Print(cfg.Prompt)
		if !scan.Scan() {
			fmt.Println()
			break
		}
		line := strings.TrimSpace(scan.Text())
		switch line {
		case "":
			continue
		case "exit", "quit":
			return nil
		case "help":
			fmt.Println("commands: exit, vars, funcs, history")
			continue
		case "vars":
			listNames(interp.Names())
			continue
		case "funcs":
			listNames(interp.Funcs())
			continue
		case "history":
			showHistory(hist)
			continue
		}
		if hist != nil {
			if err := hist.Append(line); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}
		run(interp, line)
	}
	return scan.Err()
}

func run(interp *pint.Interp, line string) {
	prog, err := pint.ParseString(line)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	if err := interp.Execute(prog); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}

func listNames(names []string) {
	for _, n := range names {
		fmt.Println(n)
	}
}

func showHistory(hist *history.Store) {
	if hist == nil {
		return
	}
	list, err := hist.Last(10)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	for _, line := range list {
		fmt.Println(line)
	}
}
