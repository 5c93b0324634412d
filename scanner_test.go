package pint

import (
	"errors"
	"testing"
)

func TestScanStatement(t *testing.T) {
	want := []struct {
		Type    rune
		Literal string
	}{
		{Ident, "x"},
		{Assign, ""},
		{Number, "10"},
		{Keyword, "print"},
		{Lparen, ""},
		{Ident, "x"},
		{Add, ""},
		{Number, "2.5"},
		{Rparen, ""},
		{EOF, ""},
	}
	scan := ScanString("x = 10\nprint(x + 2.5)")
	for i, w := range want {
		tok := scan.Scan()
		if tok.Type != w.Type {
			t.Fatalf("token %d: expected type %s, got %s", i, Token{Type: w.Type}, tok)
		}
		if tok.Literal != w.Literal {
			t.Fatalf("token %d: expected literal %q, got %q", i, w.Literal, tok.Literal)
		}
	}
}

func TestScanOperators(t *testing.T) {
	want := []rune{Eq, Ne, Lt, Le, Gt, Ge, Add, Sub, Mul, Div, Assign, Colon, Comma, Lcurly, Rcurly, EOF}
	scan := ScanString("== != < <= > >= + - * / = : , { }")
	for i, w := range want {
		tok := scan.Scan()
		if tok.Type != w {
			t.Fatalf("token %d: expected %s, got %s", i, Token{Type: w}, tok)
		}
	}
}

func TestScanKeywords(t *testing.T) {
	scan := ScanString("if else while def print ifx")
	for i := 0; i < 5; i++ {
		tok := scan.Scan()
		if tok.Type != Keyword {
			t.Fatalf("expected keyword, got %s", tok)
		}
	}
	tok := scan.Scan()
	if tok.Type != Ident || tok.Literal != "ifx" {
		t.Fatalf("expected identifier(ifx), got %s", tok)
	}
}

func TestScanStringLiteral(t *testing.T) {
	scan := ScanString(`"hello world"`)
	tok := scan.Scan()
	if tok.Type != String || tok.Literal != "hello world" {
		t.Fatalf("expected string(hello world), got %s", tok)
	}
}

func TestScanUnterminatedString(t *testing.T) {
	scan := ScanString(`"oops`)
	tok := scan.Scan()
	if tok.Type != Invalid {
		t.Fatalf("expected invalid token, got %s", tok)
	}
}

func TestScanComment(t *testing.T) {
	scan := ScanString("# a note\nx")
	tok := scan.Scan()
	if tok.Type != Comment || tok.Literal != "a note" {
		t.Fatalf("expected comment(a note), got %s", tok)
	}
	tok = scan.Scan()
	if tok.Type != Ident || tok.Literal != "x" {
		t.Fatalf("expected identifier(x), got %s", tok)
	}
}

func TestScanPosition(t *testing.T) {
	scan := ScanString("x = 1\ny = 2")
	var last Token
	for {
		tok := scan.Scan()
		if tok.Type == EOF {
			break
		}
		last = tok
	}
	if last.Line != 2 {
		t.Fatalf("expected line 2, got %d", last.Line)
	}
}

func TestTokenizeEndsWithEOF(t *testing.T) {
	list, err := Tokenize("x = 1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) == 0 || list[len(list)-1].Type != EOF {
		t.Fatalf("expected final token to be EOF, got %v", list)
	}
}

func TestTokenizeInvalidChar(t *testing.T) {
	_, err := Tokenize("x = $")
	if err == nil {
		t.Fatalf("expected error, got none")
	}
	var lerr *LexError
	if !errors.As(err, &lerr) {
		t.Fatalf("expected LexError, got %T", err)
	}
	if lerr.Char != "$" {
		t.Fatalf("expected offending character $, got %q", lerr.Char)
	}
}

func TestScanInvalidByte(t *testing.T) {
	scan := ScanString("x = \xff 2")
	want := []rune{Ident, Assign, Invalid}
	for i, w := range want {
		tok := scan.Scan()
		if tok.Type != w {
			t.Fatalf("token %d: expected %s, got %s", i, Token{Type: w}, tok)
		}
	}
	if _, err := Tokenize("x = \xff 2"); err == nil {
		t.Fatalf("expected error, got none")
	}
}

func TestScanNulByte(t *testing.T) {
	_, err := Tokenize("a\x00b")
	if err == nil {
		t.Fatalf("expected error, got none")
	}
	var lerr *LexError
	if !errors.As(err, &lerr) {
		t.Fatalf("expected LexError, got %T (%v)", err, err)
	}
}

func TestScanColumnAfterNewline(t *testing.T) {
	scan := ScanString("x = 1\ny = 2")
	var tok Token
	for {
		tok = scan.Scan()
		if tok.Type == EOF || tok.Line == 2 {
			break
		}
	}
	if tok.Type != Ident || tok.Literal != "y" {
		t.Fatalf("expected identifier(y) on line 2, got %s", tok)
	}
	if tok.Column != 1 {
		t.Fatalf("expected column 1, got %d", tok.Column)
	}
}

func TestTokenizeSkipsComments(t *testing.T) {
	list, err := Tokenize("# setup\nx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []rune{Ident, EOF}
	if len(list) != len(want) {
		t.Fatalf("expected %d tokens, got %v", len(want), list)
	}
	for i, w := range want {
		if list[i].Type != w {
			t.Fatalf("token %d: expected %s, got %s", i, Token{Type: w}, list[i])
		}
	}
}

func TestTokenizeRestartable(t *testing.T) {
	const input = "x = 1 + 2"
	fst, err := Tokenize(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snd, err := Tokenize(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fst) != len(snd) {
		t.Fatalf("expected %d tokens, got %d", len(fst), len(snd))
	}
	for i := range fst {
		if fst[i] != snd[i] {
			t.Fatalf("token %d differs: %s / %s", i, fst[i], snd[i])
		}
	}
}
