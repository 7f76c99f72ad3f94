package tally

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLeftAssociative(t *testing.T) {
	expr, err := ParseLine("1 - 2 - 3")
	require.NoError(t, err)

	outer, ok := expr.(Binary)
	require.True(t, ok)
	require.Equal(t, Sub, outer.Op)
	require.Equal(t, createNumber(3), outer.Right)

	inner, ok := outer.Left.(Binary)
	require.True(t, ok)
	require.Equal(t, Sub, inner.Op)
	require.Equal(t, createNumber(1), inner.Left)
	require.Equal(t, createNumber(2), inner.Right)
}

func TestParsePrecedence(t *testing.T) {
	expr, err := ParseLine("2 + 3 * 4")
	require.NoError(t, err)

	add, ok := expr.(Binary)
	require.True(t, ok)
	require.Equal(t, Add, add.Op)
	require.Equal(t, createNumber(2), add.Left)

	mul, ok := add.Right.(Binary)
	require.True(t, ok)
	require.Equal(t, Mul, mul.Op)
	require.Equal(t, createNumber(3), mul.Left)
	require.Equal(t, createNumber(4), mul.Right)
}

func TestParseGroup(t *testing.T) {
	expr, err := ParseLine("(2 + 3) * 4")
	require.NoError(t, err)

	mul, ok := expr.(Binary)
	require.True(t, ok)
	require.Equal(t, Mul, mul.Op)
	require.Equal(t, createNumber(4), mul.Right)

	add, ok := mul.Left.(Binary)
	require.True(t, ok)
	require.Equal(t, Add, add.Op)
}

func TestParseLogical(t *testing.T) {
	expr, err := ParseLine("1 or 2 and 3")
	require.NoError(t, err)

	// and binds tighter than or
	or, ok := expr.(Binary)
	require.True(t, ok)
	require.Equal(t, Or, or.Op)
	require.Equal(t, createNumber(1), or.Left)

	and, ok := or.Right.(Binary)
	require.True(t, ok)
	require.Equal(t, And, and.Op)
}

func TestParseUnary(t *testing.T) {
	expr, err := ParseLine("-3")
	require.NoError(t, err)
	neg, ok := expr.(Unary)
	require.True(t, ok)
	require.Equal(t, Sub, neg.Op)
	require.Equal(t, createNumber(3), neg.Right)

	expr, err = ParseLine("!!true")
	require.NoError(t, err)
	not, ok := expr.(Unary)
	require.True(t, ok)
	require.Equal(t, Not, not.Op)
	inner, ok := not.Right.(Unary)
	require.True(t, ok)
	require.Equal(t, createBool(true), inner.Right)
}

func TestParseAssignment(t *testing.T) {
	expr, err := ParseLine("x = 1 + 2")
	require.NoError(t, err)

	ag, ok := expr.(Assignment)
	require.True(t, ok)
	require.Equal(t, "x", ag.Ident)
	_, ok = ag.Expr.(Binary)
	require.True(t, ok)
}

func TestParsePrint(t *testing.T) {
	expr, err := ParseLine(`print "hi"`)
	require.NoError(t, err)

	pt, ok := expr.(Print)
	require.True(t, ok)
	require.Equal(t, createString("hi"), pt.Expr)
}

func TestParseIdentFallthrough(t *testing.T) {
	// a leading identifier without = is an ordinary expression
	expr, err := ParseLine("x + 5")
	require.NoError(t, err)
	add, ok := expr.(Binary)
	require.True(t, ok)
	require.Equal(t, createVariable("x"), add.Left)

	expr, err = ParseLine("foo")
	require.NoError(t, err)
	require.Equal(t, createVariable("foo"), expr)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		line string
		err  error
	}{
		{line: "1 = 2", err: ErrAssign},
		{line: "(x) = 2", err: ErrAssign},
		{line: "1 2", err: ErrUnexpected},
		{line: "print", err: ErrUnexpected},
		{line: "1 +", err: ErrUnexpected},
		{line: "(1 + 2", err: ErrExpected},
		{line: `x = "abc`, err: ErrUnterminated},
		{line: "2 $ 2", err: ErrChar},
	}
	for _, tt := range tests {
		_, err := ParseLine(tt.line)
		require.ErrorIs(t, err, tt.err, tt.line)
	}
}

func TestParseMalformedNumber(t *testing.T) {
	_, err := ParseLine("1.2.3")
	require.Error(t, err)
}
