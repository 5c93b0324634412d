package pint

import (
	"fmt"
	"io"
	"strings"
)

type Node interface {
	Pos() Position
}

type Expression interface {
	Node
	expr()
}

type Statement interface {
	Node
	stmt()
}

type Program struct {
	Body []Statement
}

type NumberLiteral struct {
	Value float64
	Position
}

func createNumberLiteral(v float64, pos Position) NumberLiteral {
	return NumberLiteral{
		Value:    v,
		Position: pos,
	}
}

func (n NumberLiteral) Pos() Position { return n.Position }
func (n NumberLiteral) expr()         {}

type StringLiteral struct {
	Value string
	Position
}

func createStringLiteral(v string, pos Position) StringLiteral {
	return StringLiteral{
		Value:    v,
		Position: pos,
	}
}

func (s StringLiteral) Pos() Position { return s.Position }
func (s StringLiteral) expr()         {}

type Identifier struct {
	Ident string
	Position
}

func createIdentifier(ident string, pos Position) Identifier {
	return Identifier{
		Ident:    ident,
		Position: pos,
	}
}

func (i Identifier) Pos() Position { return i.Position }
func (i Identifier) expr()         {}

type Binary struct {
	Op    rune
	Left  Expression
	Right Expression
	Position
}

func (b Binary) Pos() Position { return b.Position }
func (b Binary) expr()         {}

type Unary struct {
	Op    rune
	Right Expression
	Position
}

func (u Unary) Pos() Position { return u.Position }
func (u Unary) expr()         {}

type Assignment struct {
	Ident string
	Expr  Expression
	Position
}

func (a Assignment) Pos() Position { return a.Position }
func (a Assignment) stmt()         {}

type Print struct {
	Expr Expression
	Position
}

func (p Print) Pos() Position { return p.Position }
func (p Print) stmt()         {}

type If struct {
	Cdt Expression
	Csq Statement
	Alt Statement
	Position
}

func (i If) Pos() Position { return i.Position }
func (i If) stmt()         {}

type While struct {
	Cdt  Expression
	Body Statement
	Position
}

func (w While) Pos() Position { return w.Position }
func (w While) stmt()         {}

type FuncDef struct {
	Ident string
	Body  Statement
	Position
}

func (f FuncDef) Pos() Position { return f.Position }
func (f FuncDef) stmt()         {}

type FuncCall struct {
	Ident string
	Position
}

func (f FuncCall) Pos() Position { return f.Position }
func (f FuncCall) stmt()         {}

type Block struct {
	List []Statement
	Position
}

func (b Block) Pos() Position { return b.Position }
func (b Block) stmt()         {}

func Dump(w io.Writer, prog *Program) {
	for _, s := range prog.Body {
		dumpNode(w, s, 0)
	}
}

func dumpNode(w io.Writer, n Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch n := n.(type) {
	case NumberLiteral:
		fmt.Fprintf(w, "%snumber(%s)\n", indent, formatNumber(n.Value))
	case StringLiteral:
		fmt.Fprintf(w, "%sstring(%s)\n", indent, n.Value)
	case Identifier:
		fmt.Fprintf(w, "%sidentifier(%s)\n", indent, n.Ident)
	case Binary:
		fmt.Fprintf(w, "%sbinary%s\n", indent, opName(n.Op))
		dumpNode(w, n.Left, depth+1)
		dumpNode(w, n.Right, depth+1)
	case Unary:
		fmt.Fprintf(w, "%sunary%s\n", indent, opName(n.Op))
		dumpNode(w, n.Right, depth+1)
	case Assignment:
		fmt.Fprintf(w, "%sassign(%s)\n", indent, n.Ident)
		dumpNode(w, n.Expr, depth+1)
	case Print:
		fmt.Fprintf(w, "%sprint\n", indent)
		dumpNode(w, n.Expr, depth+1)
	case If:
		fmt.Fprintf(w, "%sif\n", indent)
		dumpNode(w, n.Cdt, depth+1)
		dumpNode(w, n.Csq, depth+1)
		if n.Alt != nil {
			dumpNode(w, n.Alt, depth+1)
		}
	case While:
		fmt.Fprintf(w, "%swhile\n", indent)
		dumpNode(w, n.Cdt, depth+1)
		dumpNode(w, n.Body, depth+1)
	case FuncDef:
		fmt.Fprintf(w, "%sdef(%s)\n", indent, n.Ident)
		dumpNode(w, n.Body, depth+1)
	case FuncCall:
		fmt.Fprintf(w, "%scall(%s)\n", indent, n.Ident)
	case Block:
		fmt.Fprintf(w, "%sblock\n", indent)
		for _, s := range n.List {
			dumpNode(w, s, depth+1)
		}
	}
}

func opName(op rune) string {
	t := Token{Type: op}
	return t.String()
}
