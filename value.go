package tally

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrIncompatible = errors.New("incompatible type")
	ErrOperation    = errors.New("unsupported operation")
	ErrZero         = errors.New("division by zero")
)

// Value is the result of evaluating an expression. Values are immutable;
// every operator method returns a fresh Value.
type Value interface {
	Not() (Value, error)
	True() bool
	Raw() any
	String() string
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

type reverser interface {
	Rev() (Value, error)
}

func CreateValue(value any) (Value, error) {
	switch v := value.(type) {
	case float64:
		return CreateReal(v), nil
	case string:
		return CreateString(v), nil
	case bool:
		return CreateBool(v), nil
	default:
		return nil, fmt.Errorf("%T can not be transformed to Value", value)
	}
}

func leftAndRight(left, right Value) Value {
	if left.True() {
		return right
	}
	return left
}

func leftOrRight(left, right Value) Value {
	if left.True() {
		return left
	}
	return right
}

type real struct {
	value float64
}

func CreateReal(f float64) Value {
	return real{
		value: f,
	}
}

func (f real) Raw() any {
	return f.value
}

func (f real) String() string {
	if math.IsInf(f.value, 0) || math.IsNaN(f.value) {
		return strconv.FormatFloat(f.value, 'g', -1, 64)
	}
	// exponent form only past the float repr thresholds
	if a := math.Abs(f.value); a != 0 && (a >= 1e16 || a < 1e-4) {
		return strconv.FormatFloat(f.value, 'g', -1, 64)
	}
	str := strconv.FormatFloat(f.value, 'f', -1, 64)
	if !strings.Contains(str, ".") {
		str += ".0"
	}
	return str
}

func (f real) True() bool {
	return f.value != 0
}

func (f real) Not() (Value, error) {
	return CreateBool(!f.True()), nil
}

func (f real) Rev() (Value, error) {
	f.value = -f.value
	return f, nil
}

func (f real) Add(other Value) (Value, error) {
	x, ok := other.(real)
	if !ok {
		return nil, incompatibleType("addition", f, other)
	}
	f.value += x.value
	return f, nil
}

func (f real) Sub(other Value) (Value, error) {
	x, ok := other.(real)
	if !ok {
		return nil, incompatibleType("subtraction", f, other)
	}
	f.value -= x.value
	return f, nil
}

func (f real) Mul(other Value) (Value, error) {
	x, ok := other.(real)
	if !ok {
		return nil, incompatibleType("multiply", f, other)
	}
	f.value *= x.value
	return f, nil
}

func (f real) Div(other Value) (Value, error) {
	x, ok := other.(real)
	if !ok {
		return nil, incompatibleType("division", f, other)
	}
	if x.value == 0 {
		return nil, ErrZero
	}
	f.value /= x.value
	return f, nil
}

func (f real) Eq(other Value) (Value, error) {
	x, ok := other.(real)
	if !ok {
		return CreateBool(false), nil
	}
	return CreateBool(f.value == x.value), nil
}

func (f real) Ne(other Value) (Value, error) {
	x, ok := other.(real)
	if !ok {
		return CreateBool(true), nil
	}
	return CreateBool(f.value != x.value), nil
}

func (f real) Lt(other Value) (Value, error) {
	x, ok := other.(real)
	if !ok {
		return nil, incompatibleType("lt", f, other)
	}
	return CreateBool(f.value < x.value), nil
}

func (f real) Le(other Value) (Value, error) {
	x, ok := other.(real)
	if !ok {
		return nil, incompatibleType("le", f, other)
	}
	return CreateBool(f.value <= x.value), nil
}

func (f real) Gt(other Value) (Value, error) {
	x, ok := other.(real)
	if !ok {
		return nil, incompatibleType("gt", f, other)
	}
	return CreateBool(f.value > x.value), nil
}

func (f real) Ge(other Value) (Value, error) {
	x, ok := other.(real)
	if !ok {
		return nil, incompatibleType("ge", f, other)
	}
	return CreateBool(f.value >= x.value), nil
}

type varchar struct {
	str string
}

func CreateString(str string) Value {
	return varchar{
		str: str,
	}
}

func (s varchar) Raw() any {
	return s.str
}

func (s varchar) String() string {
	return s.str
}

func (s varchar) True() bool {
	return s.str != ""
}

func (s varchar) Not() (Value, error) {
	return CreateBool(!s.True()), nil
}

func (s varchar) Rev() (Value, error) {
	return nil, unsupportedOp("negate", s)
}

func (s varchar) Add(other Value) (Value, error) {
	x, ok := other.(varchar)
	if !ok {
		return nil, incompatibleType("addition", s, other)
	}
	s.str += x.str
	return s, nil
}

func (s varchar) Sub(_ Value) (Value, error) {
	return nil, unsupportedOp("subtraction", s)
}

func (s varchar) Mul(_ Value) (Value, error) {
	return nil, unsupportedOp("multiply", s)
}

func (s varchar) Div(_ Value) (Value, error) {
	return nil, unsupportedOp("division", s)
}

func (s varchar) Eq(other Value) (Value, error) {
	x, ok := other.(varchar)
	if !ok {
		return CreateBool(false), nil
	}
	return CreateBool(s.str == x.str), nil
}

func (s varchar) Ne(other Value) (Value, error) {
	x, ok := other.(varchar)
	if !ok {
		return CreateBool(true), nil
	}
	return CreateBool(s.str != x.str), nil
}

func (s varchar) Lt(other Value) (Value, error) {
	x, ok := other.(varchar)
	if !ok {
		return nil, incompatibleType("lt", s, other)
	}
	return CreateBool(s.str < x.str), nil
}

func (s varchar) Le(other Value) (Value, error) {
	x, ok := other.(varchar)
	if !ok {
		return nil, incompatibleType("le", s, other)
	}
	return CreateBool(s.str <= x.str), nil
}

func (s varchar) Gt(other Value) (Value, error) {
	x, ok := other.(varchar)
	if !ok {
		return nil, incompatibleType("gt", s, other)
	}
	return CreateBool(s.str > x.str), nil
}

func (s varchar) Ge(other Value) (Value, error) {
	x, ok := other.(varchar)
	if !ok {
		return nil, incompatibleType("ge", s, other)
	}
	return CreateBool(s.str >= x.str), nil
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

func (b boolean) String() string {
	return strconv.FormatBool(b.value)
}

func (b boolean) True() bool {
	return b.value
}

func (b boolean) Not() (Value, error) {
	b.value = !b.value
	return b, nil
}

func (b boolean) Rev() (Value, error) {
	return nil, unsupportedOp("negate", b)
}

func (b boolean) Add(_ Value) (Value, error) {
	return nil, unsupportedOp("addition", b)
}

func (b boolean) Sub(_ Value) (Value, error) {
	return nil, unsupportedOp("subtraction", b)
}

func (b boolean) Mul(_ Value) (Value, error) {
	return nil, unsupportedOp("multiply", b)
}

func (b boolean) Div(_ Value) (Value, error) {
	return nil, unsupportedOp("division", b)
}

func (b boolean) Eq(other Value) (Value, error) {
	x, ok := other.(boolean)
	if !ok {
		return CreateBool(false), nil
	}
	return CreateBool(b.value == x.value), nil
}

func (b boolean) Ne(other Value) (Value, error) {
	x, ok := other.(boolean)
	if !ok {
		return CreateBool(true), nil
	}
	return CreateBool(b.value != x.value), nil
}

func (b boolean) Lt(_ Value) (Value, error) {
	return nil, unsupportedOp("lt", b)
}

func (b boolean) Le(_ Value) (Value, error) {
	return nil, unsupportedOp("le", b)
}

func (b boolean) Gt(_ Value) (Value, error) {
	return nil, unsupportedOp("gt", b)
}

func (b boolean) Ge(_ Value) (Value, error) {
	return nil, unsupportedOp("ge", b)
}

func unsupportedOp(op string, val Value) error {
	return fmt.Errorf("%s: %w for type %s", op, ErrOperation, typeName(val))
}

func incompatibleType(op string, left, right Value) error {
	return fmt.Errorf("%s: %w %s/%s", op, ErrIncompatible, typeName(left), typeName(right))
}

func typeName(val Value) string {
	switch val.(type) {
	case varchar:
		return "string"
	case real:
		return "number"
	case boolean:
		return "boolean"
	default:
		return "?"
	}
}
