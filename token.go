package pint

import "fmt"

const (
	EOF rune = -(iota + 1)
	Comment
	Ident
	Keyword
	Number
	String
	Assign
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
	Lcurly
	Rcurly
	Colon
	Comma
	Invalid
)

var keywords = []string{
	"def",
	"else",
	"if",
	"print",
	"while",
}

func isKeyword(str string) bool {
	for _, kw := range keywords {
		if kw == str {
			return true
		}
	}
	return false
}

type Position struct {
	Line   int
	Column int
}

type Token struct {
	Literal string
	Type    rune
	Offset  int
	Position
}

func (t Token) String() string {
	var prefix string
	switch t.Type {
	case EOF:
		return "<eof>"
	case Assign:
		return "<assign>"
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
	case Lparen:
		return "<lparen>"
	case Rparen:
		return "<rparen>"
	case Lcurly:
		return "<lcurly>"
	case Rcurly:
		return "<rcurly>"
	case Colon:
		return "<colon>"
	case Comma:
		return "<comma>"
	case Keyword:
		prefix = "keyword"
	case Ident:
		prefix = "identifier"
	case Number:
		prefix = "number"
	case String:
		prefix = "string"
	case Comment:
		prefix = "comment"
	case Invalid:
		prefix = "invalid"
	default:
		prefix = "unknown"
	}
	return fmt.Sprintf("%s(%s)", prefix, t.Literal)
}
