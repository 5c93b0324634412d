package pint

import (
	"errors"
	"reflect"
	"testing"
)

func parseOne(t *testing.T, input string) Statement {
	t.Helper()
	prog, err := ParseString(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prog.Body) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Body))
	}
	return prog.Body[0]
}

func TestParseAssignment(t *testing.T) {
	list, err := Tokenize("x = 1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list[1].Type != Assign {
		t.Fatalf("expected assign token, got %s", list[1])
	}
	stmt := parseOne(t, "x = 1")
	assign, ok := stmt.(Assignment)
	if !ok {
		t.Fatalf("expected Assignment, got %T", stmt)
	}
	if assign.Ident != "x" {
		t.Fatalf("expected binding to x, got %s", assign.Ident)
	}
}

func TestParsePrecedence(t *testing.T) {
	stmt := parseOne(t, "x = 2 + 3 * 4")
	assign, ok := stmt.(Assignment)
	if !ok {
		t.Fatalf("expected Assignment, got %T", stmt)
	}
	add, ok := assign.Expr.(Binary)
	if !ok || add.Op != Add {
		t.Fatalf("expected addition at the top, got %#v", assign.Expr)
	}
	mul, ok := add.Right.(Binary)
	if !ok || mul.Op != Mul {
		t.Fatalf("expected multiplication on the right, got %#v", add.Right)
	}
}

func TestParseGroup(t *testing.T) {
	stmt := parseOne(t, "x = (2 + 3) * 4")
	assign := stmt.(Assignment)
	mul, ok := assign.Expr.(Binary)
	if !ok || mul.Op != Mul {
		t.Fatalf("expected multiplication at the top, got %#v", assign.Expr)
	}
	if add, ok := mul.Left.(Binary); !ok || add.Op != Add {
		t.Fatalf("expected addition on the left, got %#v", mul.Left)
	}
}

func TestParseComparison(t *testing.T) {
	stmt := parseOne(t, "x = 1 + 2 == 3")
	assign := stmt.(Assignment)
	eq, ok := assign.Expr.(Binary)
	if !ok || eq.Op != Eq {
		t.Fatalf("expected comparison at the top, got %#v", assign.Expr)
	}
}

func TestParseUnary(t *testing.T) {
	stmt := parseOne(t, "x = -5")
	assign := stmt.(Assignment)
	u, ok := assign.Expr.(Unary)
	if !ok || u.Op != Sub {
		t.Fatalf("expected unary minus, got %#v", assign.Expr)
	}
}

func TestParseIfElse(t *testing.T) {
	stmt := parseOne(t, `if (x == 10): print("yes") else: print("no")`)
	cond, ok := stmt.(If)
	if !ok {
		t.Fatalf("expected If, got %T", stmt)
	}
	if _, ok := cond.Csq.(Print); !ok {
		t.Fatalf("expected Print consequence, got %T", cond.Csq)
	}
	if _, ok := cond.Alt.(Print); !ok {
		t.Fatalf("expected Print alternative, got %T", cond.Alt)
	}
}

func TestParseIfWithoutElse(t *testing.T) {
	stmt := parseOne(t, `if (x): print("yes")`)
	cond := stmt.(If)
	if cond.Alt != nil {
		t.Fatalf("expected no alternative, got %#v", cond.Alt)
	}
}

func TestParseBlock(t *testing.T) {
	stmt := parseOne(t, "while (x < 3): { x = x + 1 print(x) }")
	loop, ok := stmt.(While)
	if !ok {
		t.Fatalf("expected While, got %T", stmt)
	}
	block, ok := loop.Body.(Block)
	if !ok {
		t.Fatalf("expected Block body, got %T", loop.Body)
	}
	if len(block.List) != 2 {
		t.Fatalf("expected 2 statements in block, got %d", len(block.List))
	}
}

func TestParseFuncDef(t *testing.T) {
	stmt := parseOne(t, "def greet(): print(\"hi\")")
	def, ok := stmt.(FuncDef)
	if !ok {
		t.Fatalf("expected FuncDef, got %T", stmt)
	}
	if def.Ident != "greet" {
		t.Fatalf("expected function greet, got %s", def.Ident)
	}
}

func TestParseFuncCall(t *testing.T) {
	stmt := parseOne(t, "greet()")
	call, ok := stmt.(FuncCall)
	if !ok {
		t.Fatalf("expected FuncCall, got %T", stmt)
	}
	if call.Ident != "greet" {
		t.Fatalf("expected call to greet, got %s", call.Ident)
	}
}

func TestParseDeterministic(t *testing.T) {
	const input = "x = 10\nif (x == 10): { print(x) x = x - 1 }\ndef f(): print(x)\nf()"
	fst, err := ParseString(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snd, err := ParseString(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(fst, snd) {
		t.Fatalf("expected identical trees")
	}
}

func TestParseErrors(t *testing.T) {
	inputs := []string{
		"x =",
		"x = 1 +",
		"print x",
		"print(1",
		"if x: print(x)",
		"if (x) print(x)",
		"def (): print(x)",
		"def f(a): print(a)",
		"f(1)",
		"while (x): ",
		"else: print(x)",
		"= 1",
		"{ x = 1",
	}
	for _, input := range inputs {
		_, err := ParseString(input)
		if err == nil {
			t.Fatalf("%s: expected error, got none", input)
		}
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("%s: expected ParseError, got %T (%v)", input, err, err)
		}
	}
}

func TestParseLexErrorSurfaces(t *testing.T) {
	_, err := ParseString("x = 1 $ 2")
	if err == nil {
		t.Fatalf("expected error, got none")
	}
	var lerr *LexError
	if !errors.As(err, &lerr) {
		t.Fatalf("expected LexError, got %T (%v)", err, err)
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := ParseString("x = 1\ny = ")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %T (%v)", err, err)
	}
	if perr.Found.Line != 2 {
		t.Fatalf("expected error on line 2, got %d", perr.Found.Line)
	}
}
