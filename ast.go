package tally

// Expression is one node of the tree built for a single line. Trees own
// their children exclusively and are discarded once the line has run.
type Expression interface{}

type Primitive[T bool | float64 | string] struct {
	Literal T
}

func createString(str string) Primitive[string] {
	return Primitive[string]{
		Literal: str,
	}
}

func createNumber(v float64) Primitive[float64] {
	return Primitive[float64]{
		Literal: v,
	}
}

func createBool(b bool) Primitive[bool] {
	return Primitive[bool]{
		Literal: b,
	}
}

type Variable struct {
	Ident string
}

func createVariable(ident string) Variable {
	return Variable{
		Ident: ident,
	}
}

type Unary struct {
	Op    rune
	Right Expression
}

type Binary struct {
	Op    rune
	Left  Expression
	Right Expression
}

type Assignment struct {
	Ident string
	Expr  Expression
}

type Print struct {
	Expr Expression
}
