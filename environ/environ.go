package environ

import (
	"errors"
	"fmt"
	"sort"
)

var ErrDefined = errors.New("not defined")

type Environment[T any] interface {
	Define(string, T)
	Resolve(string) (T, error)
	Names() []string
}

type Env[T any] struct {
	values map[string]T
}

func Empty[T any]() Environment[T] {
	return &Env[T]{
		values: make(map[string]T),
	}
}

func (e *Env[T]) Resolve(ident string) (T, error) {
	vs, ok := e.values[ident]
	if !ok {
		return vs, fmt.Errorf("%s: %w", ident, ErrDefined)
	}
	return vs, nil
}

func (e *Env[T]) Define(ident string, value T) {
	e.values[ident] = value
}

func (e *Env[T]) Names() []string {
	var list []string
	for n := range e.values {
		list = append(list, n)
	}
	sort.Strings(list)
	return list
}
