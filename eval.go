package tally

import (
	"errors"
	"fmt"
	"io"

	"github.com/midbel/tally/env"
)

// Evaluator walks expression trees. The output writer receives the values
// written by print statements.
type Evaluator struct {
	out io.Writer
}

func NewEvaluator(out io.Writer) *Evaluator {
	return &Evaluator{
		out: out,
	}
}

// Eval returns the Value node produces against ev. A nil Value with a nil
// error means the node produced nothing to display (assignment, print).
func (e *Evaluator) Eval(node Expression, ev env.Env[Value]) (Value, error) {
	switch n := node.(type) {
	case Primitive[float64]:
		return CreateReal(n.Literal), nil
	case Primitive[string]:
		return CreateString(n.Literal), nil
	case Primitive[bool]:
		return CreateBool(n.Literal), nil
	case Variable:
		return e.evalVariable(n, ev)
	case Unary:
		return e.evalUnary(n, ev)
	case Binary:
		return e.evalBinary(n, ev)
	case Assignment:
		return e.evalAssignment(n, ev)
	case Print:
		return e.evalPrint(n, ev)
	default:
		return nil, fmt.Errorf("%T: unsupported node type", node)
	}
}

func (e *Evaluator) evalVariable(v Variable, ev env.Env[Value]) (Value, error) {
	val, err := ev.Resolve(v.Ident)
	if errors.Is(err, env.ErrNotDefined) {
		// an unknown variable evaluates to its own name
		return CreateString(v.Ident), nil
	}
	return val, err
}

func (e *Evaluator) evalUnary(u Unary, ev env.Env[Value]) (Value, error) {
	right, err := e.Eval(u.Right, ev)
	if err != nil {
		return nil, err
	}
	switch u.Op {
	case Sub:
		r, ok := right.(reverser)
		if !ok {
			return nil, unsupportedOp("negate", right)
		}
		return r.Rev()
	case Not:
		return right.Not()
	default:
		return nil, ErrOperation
	}
}

func (e *Evaluator) evalBinary(b Binary, ev env.Env[Value]) (Value, error) {
	left, err := e.Eval(b.Left, ev)
	if err != nil {
		return nil, err
	}
	// both operands always evaluate, left first, even for and/or
	right, err := e.Eval(b.Right, ev)
	if err != nil {
		return nil, err
	}
	switch b.Op {
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
	case And:
		return leftAndRight(left, right), nil
	case Or:
		return leftOrRight(left, right), nil
	}
	return nil, ErrOperation
}

func (e *Evaluator) evalAssignment(a Assignment, ev env.Env[Value]) (Value, error) {
	val, err := e.Eval(a.Expr, ev)
	if err != nil {
		return nil, err
	}
	ev.Define(a.Ident, val)
	return nil, nil
}

func (e *Evaluator) evalPrint(pt Print, ev env.Env[Value]) (Value, error) {
	val, err := e.Eval(pt.Expr, ev)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(e.out, val.String())
	return nil, nil
}
