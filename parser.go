package tally

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrUnexpected = errors.New("unexpected token")
	ErrExpected   = errors.New("expected token")
	ErrAssign     = errors.New("invalid assignment target")
)

// Parser builds the statement or expression tree for one line. Each binary
// level is parsed by its own method, lowest precedence first, accumulating
// left-associative Binary nodes.
type Parser struct {
	scan *Scanner
	curr Token
	peek Token
	err  error
}

func ParseLine(line string) (Expression, error) {
	return NewParser(line).Parse()
}

func NewParser(line string) *Parser {
	p := Parser{
		scan: Scan(line),
	}
	p.next()
	p.next()
	return &p
}

// Parse consumes the full token stream and returns exactly one tree. Tokens
// left over after the statement are an error.
func (p *Parser) Parse() (Expression, error) {
	expr, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if p.is(Assign) {
		return nil, fmt.Errorf("%w: left side is not a variable", ErrAssign)
	}
	if !p.done() {
		return nil, p.unexpected()
	}
	return expr, nil
}

func (p *Parser) parseStatement() (Expression, error) {
	switch {
	case p.is(Keyword):
		return p.parsePrint()
	case p.is(Ident) && p.peekIs(Assign):
		return p.parseAssign()
	default:
		// an identifier not followed by = is an ordinary expression
		return p.parseExpression()
	}
}

func (p *Parser) parsePrint() (Expression, error) {
	p.next()
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return Print{Expr: expr}, nil
}

func (p *Parser) parseAssign() (Expression, error) {
	ag := Assignment{
		Ident: p.curr.Literal,
	}
	p.next()
	p.next()
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	ag.Expr = expr
	return ag, nil
}

func (p *Parser) parseExpression() (Expression, error) {
	return p.parseOr()
}

func (p *Parser) parseOr() (Expression, error) {
	node, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.is(Or) {
		p.next()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		node = Binary{Op: Or, Left: node, Right: right}
	}
	return node, nil
}

func (p *Parser) parseAnd() (Expression, error) {
	node, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for p.is(And) {
		p.next()
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		node = Binary{Op: And, Left: node, Right: right}
	}
	return node, nil
}

func (p *Parser) parseEquality() (Expression, error) {
	node, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.is(Eq) || p.is(Ne) {
		op := p.curr.Type
		p.next()
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		node = Binary{Op: op, Left: node, Right: right}
	}
	return node, nil
}

func (p *Parser) parseComparison() (Expression, error) {
	node, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for p.is(Lt) || p.is(Le) || p.is(Gt) || p.is(Ge) {
		op := p.curr.Type
		p.next()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		node = Binary{Op: op, Left: node, Right: right}
	}
	return node, nil
}

func (p *Parser) parseAdditive() (Expression, error) {
	node, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.is(Add) || p.is(Sub) {
		op := p.curr.Type
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		node = Binary{Op: op, Left: node, Right: right}
	}
	return node, nil
}

func (p *Parser) parseTerm() (Expression, error) {
	node, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.is(Mul) || p.is(Div) {
		op := p.curr.Type
		p.next()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		node = Binary{Op: op, Left: node, Right: right}
	}
	return node, nil
}

func (p *Parser) parseFactor() (Expression, error) {
	switch {
	case p.is(Sub), p.is(Not):
		op := p.curr.Type
		p.next()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return Unary{Op: op, Right: right}, nil
	case p.is(Number):
		return p.parseNumber()
	case p.is(String):
		defer p.next()
		return createString(p.curr.Literal), nil
	case p.is(Boolean):
		return p.parseBool()
	case p.is(Ident):
		defer p.next()
		return createVariable(p.curr.Literal), nil
	case p.is(Lparen):
		return p.parseGroup()
	default:
		return nil, p.unexpected()
	}
}

func (p *Parser) parseNumber() (Expression, error) {
	defer p.next()
	n, err := strconv.ParseFloat(p.curr.Literal, 64)
	if err != nil {
		return nil, err
	}
	return createNumber(n), nil
}

func (p *Parser) parseBool() (Expression, error) {
	defer p.next()
	b, err := strconv.ParseBool(p.curr.Literal)
	if err != nil {
		return nil, err
	}
	return createBool(b), nil
}

func (p *Parser) parseGroup() (Expression, error) {
	p.next()
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return expr, p.expect(Rparen)
}

func (p *Parser) expect(kind rune) error {
	if !p.is(kind) {
		if p.is(Invalid) && p.err != nil {
			return p.err
		}
		return fmt.Errorf("%w %s, got %s", ErrExpected, Token{Type: kind}, p.curr)
	}
	p.next()
	return nil
}

func (p *Parser) unexpected() error {
	if p.is(Invalid) && p.err != nil {
		return p.err
	}
	return fmt.Errorf("%w %s at column %d", ErrUnexpected, p.curr, p.curr.Offset+1)
}

func (p *Parser) is(kind rune) bool {
	return p.curr.Type == kind
}

func (p *Parser) peekIs(kind rune) bool {
	return p.peek.Type == kind
}

func (p *Parser) done() bool {
	return p.is(EOF)
}

func (p *Parser) next() {
	p.curr = p.peek
	p.peek = p.scan.Scan()
	if err := p.scan.Err(); err != nil && p.err == nil {
		p.err = err
	}
}
