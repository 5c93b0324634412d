package pint

import (
	"fmt"

	"github.com/midbel/pint/environ"
)

// Env keeps two flat namespaces: one for variables, one for function
// bodies. The same name may live in both at once.
type Env struct {
	vars  environ.Environment[Value]
	funcs environ.Environment[Statement]
}

func NewEnv() *Env {
	return &Env{
		vars:  environ.Empty[Value](),
		funcs: environ.Empty[Statement](),
	}
}

func (e *Env) Define(ident string, value Value) {
	e.vars.Define(ident, value)
}

func (e *Env) Resolve(ident string) (Value, error) {
	v, err := e.vars.Resolve(ident)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ident, ErrUndefined)
	}
	return v, nil
}

func (e *Env) DefineFunc(ident string, body Statement) {
	e.funcs.Define(ident, body)
}

func (e *Env) ResolveFunc(ident string) (Statement, error) {
	b, err := e.funcs.Resolve(ident)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ident, ErrUndefinedFunc)
	}
	return b, nil
}

func (e *Env) Names() []string {
	return e.vars.Names()
}

func (e *Env) Funcs() []string {
	return e.funcs.Names()
}
