package pint

import (
	"io"
	"strconv"
	"strings"
)

func ParseString(str string) (*Program, error) {
	return Parse(strings.NewReader(str))
}

func Parse(r io.Reader) (*Program, error) {
	return NewParser(r).Parse()
}

type Parser struct {
	scan *Scanner
	curr Token
	peek Token

	prefix map[rune]func() (Expression, error)
	infix  map[rune]func(Expression) (Expression, error)
	stmts  map[string]func() (Statement, error)
}

func NewParser(r io.Reader) *Parser {
	p := Parser{
		scan:   Scan(r),
		prefix: make(map[rune]func() (Expression, error)),
		infix:  make(map[rune]func(Expression) (Expression, error)),
		stmts:  make(map[string]func() (Statement, error)),
	}
	p.registerInfix(Add, p.parseBinary)
	p.registerInfix(Sub, p.parseBinary)
	p.registerInfix(Mul, p.parseBinary)
	p.registerInfix(Div, p.parseBinary)
	p.registerInfix(Eq, p.parseBinary)
	p.registerInfix(Ne, p.parseBinary)
	p.registerInfix(Lt, p.parseBinary)
	p.registerInfix(Le, p.parseBinary)
	p.registerInfix(Gt, p.parseBinary)
	p.registerInfix(Ge, p.parseBinary)

	p.registerPrefix(Ident, p.parseIdentifier)
	p.registerPrefix(Number, p.parseNumber)
	p.registerPrefix(String, p.parseString)
	p.registerPrefix(Lparen, p.parseGroup)
	p.registerPrefix(Sub, p.parseUnary)

	p.registerStmt("if", p.parseIf)
	p.registerStmt("while", p.parseWhile)
	p.registerStmt("def", p.parseDef)
	p.registerStmt("print", p.parsePrint)

	p.next()
	p.next()
	return &p
}

func (p *Parser) Parse() (*Program, error) {
	var prog Program
	for !p.done() {
		s, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		prog.Body = append(prog.Body, s)
	}
	return &prog, nil
}

func (p *Parser) parseStatement() (Statement, error) {
	switch p.curr.Type {
	case Invalid:
		return nil, lexError(p.curr)
	case Keyword:
		parse, ok := p.stmts[p.curr.Literal]
		if !ok {
			return nil, p.unexpected("statement")
		}
		return parse()
	case Ident:
		if p.peek.Type == Lparen {
			return p.parseCall()
		}
		return p.parseAssign()
	case Lcurly:
		return p.parseBlock()
	default:
		return nil, p.unexpected("statement")
	}
}

func (p *Parser) parseAssign() (Statement, error) {
	stmt := Assignment{
		Ident:    p.curr.Literal,
		Position: p.curr.Position,
	}
	p.next()
	if err := p.expect(Assign, "="); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression(powLowest)
	if err != nil {
		return nil, err
	}
	stmt.Expr = expr
	return stmt, nil
}

func (p *Parser) parseCall() (Statement, error) {
	stmt := FuncCall{
		Ident:    p.curr.Literal,
		Position: p.curr.Position,
	}
	p.next()
	if err := p.expect(Lparen, "("); err != nil {
		return nil, err
	}
	if err := p.expect(Rparen, ")"); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) parsePrint() (Statement, error) {
	stmt := Print{
		Position: p.curr.Position,
	}
	p.next()
	if err := p.expect(Lparen, "("); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression(powLowest)
	if err != nil {
		return nil, err
	}
	stmt.Expr = expr
	return stmt, p.expect(Rparen, ")")
}

func (p *Parser) parseIf() (Statement, error) {
	stmt := If{
		Position: p.curr.Position,
	}
	p.next()
	if err := p.expect(Lparen, "("); err != nil {
		return nil, err
	}
	cdt, err := p.parseExpression(powLowest)
	if err != nil {
		return nil, err
	}
	stmt.Cdt = cdt
	if err := p.expect(Rparen, ")"); err != nil {
		return nil, err
	}
	if err := p.expect(Colon, ":"); err != nil {
		return nil, err
	}
	stmt.Csq, err = p.parseStatement()
	if err != nil {
		return nil, err
	}
	if p.isKeyword("else") {
		p.next()
		if err := p.expect(Colon, ":"); err != nil {
			return nil, err
		}
		stmt.Alt, err = p.parseStatement()
		if err != nil {
			return nil, err
		}
	}
	return stmt, nil
}

func (p *Parser) parseWhile() (Statement, error) {
	stmt := While{
		Position: p.curr.Position,
	}
	p.next()
	if err := p.expect(Lparen, "("); err != nil {
		return nil, err
	}
	cdt, err := p.parseExpression(powLowest)
	if err != nil {
		return nil, err
	}
	stmt.Cdt = cdt
	if err := p.expect(Rparen, ")"); err != nil {
		return nil, err
	}
	if err := p.expect(Colon, ":"); err != nil {
		return nil, err
	}
	stmt.Body, err = p.parseStatement()
	return stmt, err
}

func (p *Parser) parseDef() (Statement, error) {
	stmt := FuncDef{
		Position: p.curr.Position,
	}
	p.next()
	if !p.is(Ident) {
		return nil, p.unexpected("identifier")
	}
	stmt.Ident = p.curr.Literal
	p.next()
	if err := p.expect(Lparen, "("); err != nil {
		return nil, err
	}
	if err := p.expect(Rparen, ")"); err != nil {
		return nil, err
	}
	if err := p.expect(Colon, ":"); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	stmt.Body = body
	return stmt, nil
}

func (p *Parser) parseBlock() (Statement, error) {
	block := Block{
		Position: p.curr.Position,
	}
	if err := p.expect(Lcurly, "{"); err != nil {
		return nil, err
	}
	for !p.done() && !p.is(Rcurly) {
		s, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.List = append(block.List, s)
	}
	return block, p.expect(Rcurly, "}")
}

func (p *Parser) parseExpression(pow int) (Expression, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}
	for !p.done() && pow < bindings[p.curr.Type] {
		left, err = p.parseInfix(left)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

func (p *Parser) parseBinary(left Expression) (Expression, error) {
	b := Binary{
		Op:       p.curr.Type,
		Left:     left,
		Position: p.curr.Position,
	}
	p.next()
	right, err := p.parseExpression(bindings[b.Op])
	if err != nil {
		return nil, err
	}
	b.Right = right
	return b, nil
}

func (p *Parser) parseUnary() (Expression, error) {
	u := Unary{
		Op:       p.curr.Type,
		Position: p.curr.Position,
	}
	p.next()
	right, err := p.parseExpression(powUnary)
	if err != nil {
		return nil, err
	}
	u.Right = right
	return u, nil
}

func (p *Parser) parseIdentifier() (Expression, error) {
	defer p.next()
	return createIdentifier(p.curr.Literal, p.curr.Position), nil
}

func (p *Parser) parseNumber() (Expression, error) {
	n, err := strconv.ParseFloat(p.curr.Literal, 64)
	if err != nil {
		return nil, p.unexpected("number")
	}
	defer p.next()
	return createNumberLiteral(n, p.curr.Position), nil
}

func (p *Parser) parseString() (Expression, error) {
	defer p.next()
	return createStringLiteral(p.curr.Literal, p.curr.Position), nil
}

func (p *Parser) parseGroup() (Expression, error) {
	if err := p.expect(Lparen, "("); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression(powLowest)
	if err != nil {
		return nil, err
	}
	return expr, p.expect(Rparen, ")")
}

func (p *Parser) parseInfix(left Expression) (Expression, error) {
	fn, ok := p.infix[p.curr.Type]
	if !ok {
		return nil, p.unexpected("operator")
	}
	return fn(left)
}

func (p *Parser) parsePrefix() (Expression, error) {
	if p.is(Invalid) {
		return nil, lexError(p.curr)
	}
	fn, ok := p.prefix[p.curr.Type]
	if !ok {
		return nil, p.unexpected("expression")
	}
	return fn()
}

func (p *Parser) registerInfix(kind rune, fn func(Expression) (Expression, error)) {
	p.infix[kind] = fn
}

func (p *Parser) registerPrefix(kind rune, fn func() (Expression, error)) {
	p.prefix[kind] = fn
}

func (p *Parser) registerStmt(kw string, fn func() (Statement, error)) {
	p.stmts[kw] = fn
}

func (p *Parser) expect(kind rune, expected string) error {
	if !p.is(kind) {
		return p.unexpected(expected)
	}
	p.next()
	return nil
}

func (p *Parser) unexpected(expected string) error {
	return parseError(expected, p.curr)
}

func (p *Parser) is(kind rune) bool {
	return p.curr.Type == kind
}

func (p *Parser) isKeyword(kw string) bool {
	return p.is(Keyword) && p.curr.Literal == kw
}

func (p *Parser) done() bool {
	return p.is(EOF)
}

func (p *Parser) next() {
	p.curr = p.peek
	p.peek = p.scan.Scan()
	for p.peek.Type == Comment {
		p.peek = p.scan.Scan()
	}
}

const (
	powLowest int = iota
	powCompare
	powAdd
	powMul
	powUnary
)

var bindings = map[rune]int{
	Eq:  powCompare,
	Ne:  powCompare,
	Lt:  powCompare,
	Le:  powCompare,
	Gt:  powCompare,
	Ge:  powCompare,
	Add: powAdd,
	Sub: powAdd,
	Mul: powMul,
	Div: powMul,
}
