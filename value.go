package pint

import (
	"fmt"
	"strconv"
)

type Value interface {
	True() bool
	Raw() any
	fmt.Stringer
}

type Arithmetic interface {
	Add(Value) (Value, error)
	Sub(Value) (Value, error)
	Mul(Value) (Value, error)
	Div(Value) (Value, error)
}

type Comparable interface {
	Eq(Value) (Value, error)
	Ne(Value) (Value, error)
	Lt(Value) (Value, error)
	Le(Value) (Value, error)
	Gt(Value) (Value, error)
	Ge(Value) (Value, error)
}

type reversible interface {
	Rev() (Value, error)
}

type number struct {
	value float64
}

func CreateNumber(f float64) Value {
	return number{
		value: f,
	}
}

func (n number) Raw() any {
	return n.value
}

func (n number) True() bool {
	return n.value != 0
}

func (n number) String() string {
	return formatNumber(n.value)
}

func (n number) Rev() (Value, error) {
	n.value = -n.value
	return n, nil
}

func (n number) Add(other Value) (Value, error) {
	x, ok := other.(number)
	if !ok {
		return nil, incompatibleType("addition", n, other)
	}
	n.value += x.value
	return n, nil
}

func (n number) Sub(other Value) (Value, error) {
	x, ok := other.(number)
	if !ok {
		return nil, incompatibleType("subtraction", n, other)
	}
	n.value -= x.value
	return n, nil
}

func (n number) Mul(other Value) (Value, error) {
	x, ok := other.(number)
	if !ok {
		return nil, incompatibleType("multiply", n, other)
	}
	n.value *= x.value
	return n, nil
}

func (n number) Div(other Value) (Value, error) {
	x, ok := other.(number)
	if !ok {
		return nil, incompatibleType("division", n, other)
	}
	if x.value == 0 {
		return nil, ErrZero
	}
	n.value /= x.value
	return n, nil
}

func (n number) Eq(other Value) (Value, error) {
	x, ok := other.(number)
	if !ok {
		return nil, incompatibleType("eq", n, other)
	}
	return CreateBool(n.value == x.value), nil
}

func (n number) Ne(other Value) (Value, error) {
	x, ok := other.(number)
	if !ok {
		return nil, incompatibleType("ne", n, other)
	}
	return CreateBool(n.value != x.value), nil
}

func (n number) Lt(other Value) (Value, error) {
	x, ok := other.(number)
	if !ok {
		return nil, incompatibleType("lt", n, other)
	}
	return CreateBool(n.value < x.value), nil
}

func (n number) Le(other Value) (Value, error) {
	x, ok := other.(number)
	if !ok {
		return nil, incompatibleType("le", n, other)
	}
	return CreateBool(n.value <= x.value), nil
}

func (n number) Gt(other Value) (Value, error) {
	x, ok := other.(number)
	if !ok {
		return nil, incompatibleType("gt", n, other)
	}
	return CreateBool(n.value > x.value), nil
}

func (n number) Ge(other Value) (Value, error) {
	x, ok := other.(number)
	if !ok {
		return nil, incompatibleType("ge", n, other)
	}
	return CreateBool(n.value >= x.value), nil
}

type str struct {
	value string
}

func CreateString(s string) Value {
	return str{
		value: s,
	}
}

func (s str) Raw() any {
	return s.value
}

func (s str) True() bool {
	return s.value != ""
}

func (s str) String() string {
	return s.value
}

func (s str) Rev() (Value, error) {
	return nil, unsupportedOp("reverse", s)
}

func (s str) Add(other Value) (Value, error) {
	x, ok := other.(str)
	if !ok {
		return nil, incompatibleType("addition", s, other)
	}
	s.value += x.value
	return s, nil
}

func (s str) Sub(other Value) (Value, error) {
	return nil, incompatibleType("subtraction", s, other)
}

func (s str) Mul(other Value) (Value, error) {
	return nil, incompatibleType("multiply", s, other)
}

func (s str) Div(other Value) (Value, error) {
	return nil, incompatibleType("division", s, other)
}

func (s str) Eq(other Value) (Value, error) {
	x, ok := other.(str)
	if !ok {
		return nil, incompatibleType("eq", s, other)
	}
	return CreateBool(s.value == x.value), nil
}

func (s str) Ne(other Value) (Value, error) {
	x, ok := other.(str)
	if !ok {
		return nil, incompatibleType("ne", s, other)
	}
	return CreateBool(s.value != x.value), nil
}

func (s str) Lt(other Value) (Value, error) {
	x, ok := other.(str)
	if !ok {
		return nil, incompatibleType("lt", s, other)
	}
	return CreateBool(s.value < x.value), nil
}

func (s str) Le(other Value) (Value, error) {
	x, ok := other.(str)
	if !ok {
		return nil, incompatibleType("le", s, other)
	}
	return CreateBool(s.value <= x.value), nil
}

func (s str) Gt(other Value) (Value, error) {
	x, ok := other.(str)
	if !ok {
		return nil, incompatibleType("gt", s, other)
	}
	return CreateBool(s.value > x.value), nil
}

func (s str) Ge(other Value) (Value, error) {
	x, ok := other.(str)
	if !ok {
		return nil, incompatibleType("ge", s, other)
	}
	return CreateBool(s.value >= x.value), nil
}

type boolean struct {
	value bool
}

func CreateBool(b bool) Value {
	return boolean{
		value: b,
	}
}

func (b boolean) Raw() any {
	return b.value
}

func (b boolean) True() bool {
	return b.value
}

func (b boolean) String() string {
	if b.value {
		return "True"
	}
	return "False"
}

func (b boolean) Rev() (Value, error) {
	return nil, unsupportedOp("reverse", b)
}

func (b boolean) Eq(other Value) (Value, error) {
	x, ok := other.(boolean)
	if !ok {
		return nil, incompatibleType("eq", b, other)
	}
	return CreateBool(b.value == x.value), nil
}

func (b boolean) Ne(other Value) (Value, error) {
	x, ok := other.(boolean)
	if !ok {
		return nil, incompatibleType("ne", b, other)
	}
	return CreateBool(b.value != x.value), nil
}

func (b boolean) Lt(other Value) (Value, error) {
	return nil, unsupportedOp("lt", b)
}

func (b boolean) Le(other Value) (Value, error) {
	return nil, unsupportedOp("le", b)
}

func (b boolean) Gt(other Value) (Value, error) {
	return nil, unsupportedOp("gt", b)
}

func (b boolean) Ge(other Value) (Value, error) {
	return nil, unsupportedOp("ge", b)
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func unsupportedOp(op string, val Value) error {
	return fmt.Errorf("%s: %w %s", op, ErrType, typeName(val))
}

func incompatibleType(op string, left, right Value) error {
	return fmt.Errorf("%s: %w %s/%s", op, ErrType, typeName(left), typeName(right))
}

func typeName(val Value) string {
	switch val.(type) {
	case str:
		return "string"
	case number:
		return "number"
	case boolean:
		return "boolean"
	default:
		return "?"
	}
}
