package pint

import (
	"fmt"
	"io"
	"os"
	"strings"
)

type Interp struct {
	*Env
	Out io.Writer
}

func New(out io.Writer) *Interp {
	if out == nil {
		out = os.Stdout
	}
	return &Interp{
		Env: NewEnv(),
		Out: out,
	}
}

func Eval(r io.Reader, w io.Writer) error {
	prog, err := Parse(r)
	if err != nil {
		return err
	}
	return New(w).Execute(prog)
}

func EvalString(str string, w io.Writer) error {
	return Eval(strings.NewReader(str), w)
}

func (i *Interp) Execute(prog *Program) error {
	for _, s := range prog.Body {
		if err := i.exec(s); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interp) exec(stmt Statement) error {
	switch s := stmt.(type) {
	case Assignment:
		return i.execAssign(s)
	case Print:
		return i.execPrint(s)
	case If:
		return i.execIf(s)
	case While:
		return i.execWhile(s)
	case FuncDef:
		return i.execFuncDef(s)
	case FuncCall:
		return i.execFuncCall(s)
	case Block:
		return i.execBlock(s)
	default:
		return fmt.Errorf("%T unsupported statement type", stmt)
	}
}

func (i *Interp) execAssign(s Assignment) error {
	v, err := i.eval(s.Expr)
	if err != nil {
		return err
	}
	i.Define(s.Ident, v)
	return nil
}

func (i *Interp) execPrint(s Print) error {
	v, err := i.eval(s.Expr)
	if err != nil {
		return err
	}
	fmt.Fprintln(i.Out, v)
	return nil
}

func (i *Interp) execIf(s If) error {
	v, err := i.eval(s.Cdt)
	if err != nil {
		return err
	}
	if v.True() {
		return i.exec(s.Csq)
	}
	if s.Alt != nil {
		return i.exec(s.Alt)
	}
	return nil
}

func (i *Interp) execWhile(s While) error {
	for {
		v, err := i.eval(s.Cdt)
		if err != nil {
			return err
		}
		if !v.True() {
			break
		}
		if err := i.exec(s.Body); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interp) execFuncDef(s FuncDef) error {
	i.DefineFunc(s.Ident, s.Body)
	return nil
}

func (i *Interp) execFuncCall(s FuncCall) error {
	body, err := i.ResolveFunc(s.Ident)
	if err != nil {
		return runtimeError(s.Position, err)
	}
	return i.exec(body)
}

func (i *Interp) execBlock(s Block) error {
	for _, s := range s.List {
		if err := i.exec(s); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interp) eval(expr Expression) (Value, error) {
	switch e := expr.(type) {
	case NumberLiteral:
		return CreateNumber(e.Value), nil
	case StringLiteral:
		return CreateString(e.Value), nil
	case Identifier:
		v, err := i.Resolve(e.Ident)
		if err != nil {
			return nil, runtimeError(e.Position, err)
		}
		return v, nil
	case Binary:
		return i.evalBinary(e)
	case Unary:
		return i.evalUnary(e)
	default:
		return nil, fmt.Errorf("%T unsupported expression type", expr)
	}
}

func (i *Interp) evalBinary(b Binary) (Value, error) {
	left, err := i.eval(b.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.eval(b.Right)
	if err != nil {
		return nil, err
	}
	v, err := apply(b.Op, left, right)
	if err != nil {
		return nil, runtimeError(b.Position, err)
	}
	return v, nil
}

func apply(op rune, left, right Value) (Value, error) {
	switch op {
	case Add:
		if a, ok := left.(Arithmetic); ok {
			return a.Add(right)
		}
	case Sub:
		if a, ok := left.(Arithmetic); ok {
			return a.Sub(right)
		}
	case Mul:
		if a, ok := left.(Arithmetic); ok {
			return a.Mul(right)
		}
	case Div:
		if a, ok := left.(Arithmetic); ok {
			return a.Div(right)
		}
	case Eq:
		if c, ok := left.(Comparable); ok {
			return c.Eq(right)
		}
	case Ne:
		if c, ok := left.(Comparable); ok {
			return c.Ne(right)
		}
	case Lt:
		if c, ok := left.(Comparable); ok {
			return c.Lt(right)
		}
	case Le:
		if c, ok := left.(Comparable); ok {
			return c.Le(right)
		}
	case Gt:
		if c, ok := left.(Comparable); ok {
			return c.Gt(right)
		}
	case Ge:
		if c, ok := left.(Comparable); ok {
			return c.Ge(right)
		}
	default:
		return nil, fmt.Errorf("unsupported operator")
	}
	return nil, incompatibleType(opName(op), left, right)
}

func (i *Interp) evalUnary(u Unary) (Value, error) {
	v, err := i.eval(u.Right)
	if err != nil {
		return nil, err
	}
	r, ok := v.(reversible)
	if !ok {
		return nil, runtimeError(u.Position, unsupportedOp("reverse", v))
	}
	v, err = r.Rev()
	if err != nil {
		return nil, runtimeError(u.Position, err)
	}
	return v, nil
}
