package tally

import "fmt"

const (
	EOF rune = -(iota + 1)
	Ident
	Keyword
	String
	Number
	Boolean
	Assign
	Not
	And
	Or
	Eq
	Ne
	Lt
	Le
	Gt
	Ge
	Add
	Sub
	Mul
	Div
	Lparen
	Rparen
	Invalid
)

type Token struct {
	Type    rune
	Literal string
	Offset  int
}

func (t Token) String() string {
	var prefix string
	switch t.Type {
	case EOF:
		return "<eof>"
	case Lparen:
		return "<lparen>"
	case Rparen:
		return "<rparen>"
	case Assign:
		return "<assign>"
	case Not:
		return "<not>"
	case And:
		return "<and>"
	case Or:
		return "<or>"
	case Eq:
		return "<eq>"
	case Ne:
		return "<ne>"
	case Lt:
		return "<lt>"
	case Le:
		return "<le>"
	case Gt:
		return "<gt>"
	case Ge:
		return "<ge>"
	case Add:
		return "<add>"
	case Sub:
		return "<sub>"
	case Mul:
		return "<mul>"
	case Div:
		return "<div>"
	case Keyword:
		prefix = "keyword"
	case String:
		prefix = "string"
	case Number:
		prefix = "number"
	case Boolean:
		prefix = "boolean"
	case Ident:
		prefix = "identifier"
	case Invalid:
		prefix = "invalid"
	default:
		prefix = "unknown"
	}
	return fmt.Sprintf("%s(%s)", prefix, t.Literal)
}
