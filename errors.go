package pint

import (
	"errors"
	"fmt"
)

var (
	ErrUndefined     = errors.New("undefined variable")
	ErrUndefinedFunc = errors.New("undefined function")
	ErrType          = errors.New("incompatible type")
	ErrZero          = errors.New("division by zero")
)

type LexError struct {
	Char string
	Position
}

func lexError(tok Token) error {
	return &LexError{
		Char:     tok.Literal,
		Position: tok.Position,
	}
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%d:%d: unexpected character %q", e.Line, e.Column, e.Char)
}

type ParseError struct {
	Expected string
	Found    Token
}

func parseError(expected string, found Token) error {
	return &ParseError{
		Expected: expected,
		Found:    found,
	}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: expected %s, found %s", e.Found.Line, e.Found.Column, e.Expected, e.Found)
}

func (e *ParseError) Pos() Position {
	return e.Found.Position
}

type RuntimeError struct {
	Kind error
	Position
}

func runtimeError(pos Position, kind error) error {
	return &RuntimeError{
		Kind:     kind,
		Position: pos,
	}
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Kind)
}

func (e *RuntimeError) Unwrap() error {
	return e.Kind
}
