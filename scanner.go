package tally

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	ErrChar         = errors.New("invalid character")
	ErrUnterminated = errors.New("unterminated string literal")
)

type cursor struct {
	char rune
	curr int
	next int
}

// Scanner turns one line of source text into tokens, one per call to Scan.
// It keeps no token buffer, only the character cursor.
type Scanner struct {
	input []byte
	cursor
	err error

	str strings.Builder
}

func Scan(line string) *Scanner {
	s := Scanner{
		input: []byte(line),
	}
	s.read()
	return &s
}

func (s *Scanner) Scan() Token {
	defer s.reset()

	s.skip(isSpace)

	var tok Token
	tok.Offset = s.curr
	if s.done() {
		tok.Type = EOF
		return tok
	}

	switch {
	case isQuote(s.char):
		s.scanString(&tok)
	case isDigit(s.char):
		s.scanNumber(&tok)
	case isLetter(s.char):
		s.scanIdent(&tok)
	default:
		s.scanPunct(&tok)
	}
	return tok
}

// Err reports why the scanner produced an Invalid token, if it did.
func (s *Scanner) Err() error {
	return s.err
}

func (s *Scanner) scanString(tok *Token) {
	s.read()
	for !s.done() && !isQuote(s.char) {
		s.write()
		s.read()
	}
	tok.Literal = s.literal()
	tok.Type = String
	if !isQuote(s.char) {
		tok.Type = Invalid
		s.err = ErrUnterminated
		return
	}
	s.read()
}

func (s *Scanner) scanNumber(tok *Token) {
	// a number is any run of digits and dots; validation is left to the
	// parser when the literal is converted
	for !s.done() && (isDigit(s.char) || s.char == dot) {
		s.write()
		s.read()
	}
	tok.Type = Number
	tok.Literal = s.literal()
}

func (s *Scanner) scanIdent(tok *Token) {
	for !s.done() && isAlpha(s.char) {
		s.write()
		s.read()
	}
	tok.Literal = s.literal()
	switch tok.Literal {
	case "true", "false":
		tok.Type = Boolean
	case "and":
		tok.Type = And
	case "or":
		tok.Type = Or
	case "print":
		tok.Type = Keyword
	default:
		tok.Type = Ident
	}
}

func (s *Scanner) scanPunct(tok *Token) {
	switch s.char {
	case plus:
		tok.Type = Add
	case minus:
		tok.Type = Sub
	case star:
		tok.Type = Mul
	case slash:
		tok.Type = Div
	case lparen:
		tok.Type = Lparen
	case rparen:
		tok.Type = Rparen
	case equal:
		tok.Type = Assign
		if s.peek() == equal {
			s.read()
			tok.Type = Eq
		}
	case bang:
		tok.Type = Not
		if s.peek() == equal {
			s.read()
			tok.Type = Ne
		}
	case langle:
		tok.Type = Lt
		if s.peek() == equal {
			s.read()
			tok.Type = Le
		}
	case rangle:
		tok.Type = Gt
		if s.peek() == equal {
			s.read()
			tok.Type = Ge
		}
	default:
		tok.Type = Invalid
		tok.Literal = string(s.char)
		s.err = fmt.Errorf("%w %q", ErrChar, s.char)
	}
	s.read()
}

func (s *Scanner) done() bool {
	return s.char == eof
}

func (s *Scanner) read() {
	if s.next >= len(s.input) {
		s.char = eof
		s.curr = len(s.input)
		return
	}
	// an undecodable byte advances one position and scans as an
	// invalid character
	r, n := utf8.DecodeRune(s.input[s.next:])
	s.char, s.curr, s.next = r, s.next, s.next+n
}

func (s *Scanner) peek() rune {
	r, _ := utf8.DecodeRune(s.input[s.next:])
	return r
}

func (s *Scanner) reset() {
	s.str.Reset()
}

func (s *Scanner) write() {
	s.str.WriteRune(s.char)
}

func (s *Scanner) literal() string {
	return s.str.String()
}

func (s *Scanner) skip(accept func(rune) bool) {
	for !s.done() && accept(s.char) {
		s.read()
	}
}

const (
	eof    = rune(-1)
	lparen = '('
	rparen = ')'
	langle = '<'
	rangle = '>'
	space  = ' '
	tab    = '\t'
	dquote = '"'
	dot    = '.'
	plus   = '+'
	minus  = '-'
	star   = '*'
	slash  = '/'
	bang   = '!'
	equal  = '='
)

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlpha(r rune) bool {
	return isLetter(r) || isDigit(r)
}

func isSpace(r rune) bool {
	return r == space || r == tab
}

func isQuote(r rune) bool {
	return r == dquote
}
