package pint

import (
	"bytes"
	"io"
	"strings"
	"unicode/utf8"
)

type cursor struct {
	char rune
	curr int
	next int
	Position
}

type Scanner struct {
	input []byte
	cursor

	str bytes.Buffer
}

func Scan(r io.Reader) *Scanner {
	buf, _ := io.ReadAll(r)
	buf, _ = bytes.CutPrefix(buf, []byte{0xef, 0xbb, 0xbf})
	s := Scanner{
		input: buf,
	}
	s.cursor.Line = 1
	s.read()
	return &s
}

func ScanString(str string) *Scanner {
	return Scan(strings.NewReader(str))
}

func Tokenize(str string) ([]Token, error) {
	var (
		scan = ScanString(str)
		list []Token
	)
	for {
		tok := scan.Scan()
		if tok.Type == Comment {
			continue
		}
		if tok.Type == Invalid {
			return nil, lexError(tok)
		}
		list = append(list, tok)
		if tok.Type == EOF {
			return list, nil
		}
	}
}

func (s *Scanner) Scan() Token {
	defer s.reset()

	s.skip(isBlank)

	var tok Token
	tok.Offset = s.curr
	tok.Position = s.cursor.Position
	if s.done() {
		tok.Type = EOF
		return tok
	}

	switch {
	case isComment(s.char):
		s.scanComment(&tok)
	case isQuote(s.char):
		s.scanString(&tok)
	case isLetter(s.char):
		s.scanIdent(&tok)
	case isDigit(s.char):
		s.scanNumber(&tok)
	default:
		s.scanPunct(&tok)
	}
	return tok
}

func (s *Scanner) scanComment(tok *Token) {
	s.read()
	s.skip(isSpace)
	for !s.done() && !isNL(s.char) {
		s.write()
		s.read()
	}
	tok.Type = Comment
	tok.Literal = s.literal()
}

func (s *Scanner) scanString(tok *Token) {
	quote := s.char
	s.read()
	for !s.done() && s.char != quote {
		s.write()
		s.read()
	}
	tok.Type = String
	tok.Literal = s.literal()
	if s.char != quote {
		tok.Type = Invalid
		tok.Literal = string(quote)
	} else {
		s.read()
	}
}

func (s *Scanner) scanNumber(tok *Token) {
	for !s.done() && isDigit(s.char) {
		s.write()
		s.read()
	}
	tok.Type = Number
	if s.char == dot {
		s.write()
		s.read()
		for !s.done() && isDigit(s.char) {
			s.write()
			s.read()
		}
	}
	tok.Literal = s.literal()
}

func (s *Scanner) scanIdent(tok *Token) {
	for !s.done() && isAlpha(s.char) {
		s.write()
		s.read()
	}
	tok.Type = Ident
	tok.Literal = s.literal()
	if isKeyword(tok.Literal) {
		tok.Type = Keyword
	}
}

func (s *Scanner) scanPunct(tok *Token) {
	switch s.char {
	case lparen:
		tok.Type = Lparen
	case rparen:
		tok.Type = Rparen
	case lcurly:
		tok.Type = Lcurly
	case rcurly:
		tok.Type = Rcurly
	case colon:
		tok.Type = Colon
	case comma:
		tok.Type = Comma
	case plus:
		tok.Type = Add
	case minus:
		tok.Type = Sub
	case star:
		tok.Type = Mul
	case slash:
		tok.Type = Div
	case equal:
		tok.Type = Assign
		if s.peek() == equal {
			s.read()
			tok.Type = Eq
		}
	case bang:
		tok.Type = Invalid
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
	}
	if tok.Type == Invalid {
		tok.Literal = string(s.char)
	}
	s.read()
}

func (s *Scanner) done() bool {
	return s.char == EOF
}

func (s *Scanner) read() {
	if s.next >= len(s.input) {
		s.char = EOF
		s.curr = len(s.input)
		return
	}
	r, n := utf8.DecodeRune(s.input[s.next:])
	if r == utf8.RuneError && n == 1 {
		// invalid byte: keep it so it surfaces as an Invalid token
		r = rune(s.input[s.next])
	}
	if r == nl {
		s.cursor.Line++
		s.cursor.Column = 0
	} else {
		s.cursor.Column++
	}
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
	if s.done() {
		return
	}
	for accept(s.char) && !s.done() {
		s.read()
	}
}

const (
	lparen     = '('
	rparen     = ')'
	lcurly     = '{'
	rcurly     = '}'
	langle     = '<'
	rangle     = '>'
	space      = ' '
	tab        = '\t'
	nl         = '\n'
	cr         = '\r'
	dquote     = '"'
	underscore = '_'
	pound      = '#'
	dot        = '.'
	plus       = '+'
	minus      = '-'
	star       = '*'
	slash      = '/'
	bang       = '!'
	equal      = '='
	comma      = ','
	colon      = ':'
)

func isComment(r rune) bool {
	return r == pound
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == underscore
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

func isNL(r rune) bool {
	return r == nl || r == cr
}

func isBlank(r rune) bool {
	return isSpace(r) || isNL(r)
}
