package parser

import (
	"strconv"

	"github.com/kievzenit/skribi/internal/ast"
	"github.com/kievzenit/skribi/internal/lexer"
	"github.com/kievzenit/skribi/internal/skribi_errors"
)

type Parser struct {
	fileName string

	scanner lexer.TokenScanner

	curr *lexer.Token
	// depth counts the blocks being parsed.
	depth int
	// pending holds the literal half of a signed number split into a binary minus.
	pending *lexer.Token
}

var bindingPowerLookup = map[string]int{
	"==": 10,
	"!=": 10,
	"<":  10,
	">":  10,
	"<=": 10,
	">=": 10,
	"+":  20,
	"-":  20,
	"*":  30,
	"/":  30,
	"^":  40,
}

var rightAssociative = map[string]bool{
	"^": true,
}

func NewParser(fileName string, scanner lexer.TokenScanner) *Parser {
	return &Parser{
		fileName: fileName,
		scanner:  scanner,
		curr:     scanner.Read(),
	}
}

// Parse reads statements separated by newlines until the end of input.
func (p *Parser) Parse() (*ast.Program, error) {
	stmts, err := p.parseStmts(nil)
	if err != nil {
		return nil, err
	}

	return &ast.Program{
		FileName: p.fileName,
		Stmts:    stmts,
	}, nil
}

// parseStmts stops at the end of input, or at the '}' matching open when
// open is set. The closing brace is left for the caller.
func (p *Parser) parseStmts(open *lexer.Token) ([]ast.Stmt, error) {
	stmts := make([]ast.Stmt, 0)

	for {
		switch {
		case p.curr.Kind == lexer.NEWLINE:
			p.read()
			continue
		case p.curr.Kind == lexer.EOF:
			if open != nil {
				return nil, skribi_errors.Newf(
					skribi_errors.UnmatchedBracket,
					[]skribi_errors.Position{p.positionOf(open)},
					"missing '}' to close the block")
			}
			return stmts, nil
		case open != nil && p.curr.Is(lexer.BRACE, "}"):
			return stmts, nil
		}

		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)

		if err := p.expectStmtEnd(); err != nil {
			return nil, err
		}
	}
}

// ParseExpr parses a single expression that must span the whole input line.
func (p *Parser) ParseExpr() (ast.Evaluable, error) {
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if err := p.expectStmtEnd(); err != nil {
		return nil, err
	}

	return expr, nil
}

func (p *Parser) parseStmt() (ast.Stmt, error) {
	switch {
	case p.curr.Is(lexer.BRACE, "{"),
		p.curr.Is(lexer.IDENT, "kodi") && p.peekAny(lexer.IDENT, lexer.BRACE):
		return p.parseBlockStmt()
	case p.curr.Is(lexer.BRACE, "}"):
		return nil, p.newError(skribi_errors.UnmatchedBracket, "unexpected '}' without a matching '{'")
	case p.curr.Kind == lexer.IDENT && p.peekAny(lexer.EQUAL, lexer.COLON):
		return p.parseVariableStmt()
	}

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &ast.ExprStmt{Expr: expr}, nil
}

func (p *Parser) parseVariableStmt() (*ast.VariableNode, error) {
	startToken := p.curr
	name := p.curr.Value
	p.read()

	var typeNode ast.TypeNode
	if p.curr.Kind == lexer.COLON {
		p.read()

		if err := p.expect(lexer.IDENT, "a type name"); err != nil {
			return nil, err
		}
		typeNode = &ast.IdentTypeNode{
			StartToken: p.curr,

			Name: p.curr.Value,
		}
		p.read()
	}

	if err := p.expect(lexer.EQUAL, "'='"); err != nil {
		return nil, err
	}
	p.read()

	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &ast.VariableNode{
		StartToken: startToken,

		Name:  name,
		Type:  typeNode,
		Value: value,
	}, nil
}

func (p *Parser) parseBlockStmt() (*ast.BlockNode, error) {
	startToken := p.curr

	var name string
	if p.curr.Is(lexer.IDENT, "kodi") {
		p.read()
		if p.curr.Kind == lexer.IDENT {
			name = p.curr.Value
			p.read()
		}
	}

	if !p.curr.Is(lexer.BRACE, "{") {
		return nil, p.newError(skribi_errors.UnexpectedToken, "expected '{', found %s", p.curr.Describe())
	}
	open := p.curr
	p.read()

	p.depth++
	stmts, err := p.parseStmts(open)
	p.depth--
	if err != nil {
		return nil, err
	}
	p.read()

	return &ast.BlockNode{
		StartToken: startToken,

		Name:  name,
		Stmts: stmts,
	}, nil
}

func (p *Parser) parseExpr() (ast.Evaluable, error) {
	left, err := p.parseUnaryExpr()
	if err != nil {
		return nil, err
	}

	return p.parseBinaryExpr(left, 0)
}

func (p *Parser) parseUnaryExpr() (ast.Evaluable, error) {
	if !p.curr.Is(lexer.OPERATOR, "-") && !p.curr.Is(lexer.OPERATOR, "!") {
		return p.parsePrimaryExpr()
	}

	op := p.curr
	p.read()

	operand, err := p.parseUnaryExpr()
	if err != nil {
		return nil, err
	}

	return &ast.UnaryNode{
		StartToken: op,

		Op:      op,
		Operand: operand,
	}, nil
}

func (p *Parser) parsePrimaryExpr() (ast.Evaluable, error) {
	switch p.curr.Kind {
	case lexer.INT, lexer.FLOAT:
		return p.parseNumberExpr()
	case lexer.STRING:
		return p.parseStringExpr(), nil
	case lexer.BOOL:
		return p.parseBoolExpr(), nil
	case lexer.IDENT:
		return p.parseIdentExpr(), nil
	case lexer.BRACKET:
		if p.curr.Value == "(" {
			return p.parseParenExpr()
		}
	}

	return nil, p.newError(skribi_errors.MissingOperand, "expected a number, found %s", p.curr.Describe())
}

func (p *Parser) parseParenExpr() (ast.Evaluable, error) {
	open := p.curr
	p.read()

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if !p.curr.Is(lexer.BRACKET, ")") {
		return nil, skribi_errors.Newf(
			skribi_errors.UnmatchedBracket,
			[]skribi_errors.Position{p.positionOf(open)},
			"missing ')' to close the bracket, found %s", p.curr.Describe())
	}
	p.read()

	return expr, nil
}

// parseBinaryExpr folds operators by binding power: higher tiers bind first,
// equal tiers fold left unless the operator is right associative.
func (p *Parser) parseBinaryExpr(left ast.Evaluable, bindingPower int) (ast.Evaluable, error) {
	for {
		p.splitSignedLiteral()
		op := p.curr
		currentBindingPower, ok := p.bindingPower(op)
		if !ok || currentBindingPower < bindingPower {
			return left, nil
		}
		p.read()

		right, err := p.parseUnaryExpr()
		if err != nil {
			return nil, err
		}

		p.splitSignedLiteral()
		nextBindingPower, ok := p.bindingPower(p.curr)
		if ok && (currentBindingPower < nextBindingPower ||
			currentBindingPower == nextBindingPower && rightAssociative[op.Value]) {
			minBindingPower := currentBindingPower + 10
			if rightAssociative[op.Value] {
				minBindingPower = currentBindingPower
			}

			right, err = p.parseBinaryExpr(right, minBindingPower)
			if err != nil {
				return nil, err
			}
		}

		left = &ast.OperatorNode{
			StartToken: left.FirstToken(),

			Op:    op,
			Left:  left,
			Right: right,
		}
	}
}

// splitSignedLiteral turns `3 -4` back into a subtraction: the lexer folds a
// minus touching a digit into the literal even after an operand.
func (p *Parser) splitSignedLiteral() {
	if !p.curr.IsSigned() {
		return
	}

	op, operand := p.curr.SplitSign()
	p.curr = op
	p.pending = operand
}

func (p *Parser) bindingPower(token *lexer.Token) (int, bool) {
	if token.Kind != lexer.OPERATOR && token.Kind != lexer.COMPARISON {
		return 0, false
	}

	bindingPower, ok := bindingPowerLookup[token.Value]
	return bindingPower, ok
}

func (p *Parser) parseNumberExpr() (*ast.NumberNode, error) {
	startToken := p.curr

	if p.curr.Kind == lexer.FLOAT {
		float, err := strconv.ParseFloat(p.curr.Value, 64)
		if err != nil {
			return nil, p.newError(skribi_errors.InvalidLiteral, "invalid float literal: %s", p.curr.Value)
		}
		p.read()

		return &ast.NumberNode{
			StartToken: startToken,

			IsFloat: true,
			Float:   float,
		}, nil
	}

	int, err := strconv.ParseInt(p.curr.Value, 10, 64)
	if err != nil {
		return nil, p.newError(skribi_errors.InvalidLiteral, "invalid integer literal: %s", p.curr.Value)
	}
	p.read()

	return &ast.NumberNode{
		StartToken: startToken,

		Int: int,
	}, nil
}

func (p *Parser) parseStringExpr() *ast.StringNode {
	startToken := p.curr
	p.read()

	return &ast.StringNode{
		StartToken: startToken,

		Value: startToken.Value,
	}
}

func (p *Parser) parseBoolExpr() *ast.BoolNode {
	startToken := p.curr
	p.read()

	return &ast.BoolNode{
		StartToken: startToken,

		Value: startToken.Value == "true",
	}
}

func (p *Parser) parseIdentExpr() *ast.IdentNode {
	startToken := p.curr
	p.read()

	return &ast.IdentNode{
		StartToken: startToken,

		Name: startToken.Value,
	}
}

// expectStmtEnd checks that a statement stops at a newline, the end of input
// or the brace closing the enclosing block.
func (p *Parser) expectStmtEnd() error {
	switch {
	case p.curr.Kind == lexer.NEWLINE || p.curr.Kind == lexer.EOF:
		return nil
	case p.curr.Is(lexer.BRACE, "}"):
		if p.depth > 0 {
			return nil
		}
		return p.newError(skribi_errors.UnmatchedBracket, "unexpected '}' without a matching '{'")
	case p.curr.Is(lexer.BRACKET, ")"):
		return p.newError(skribi_errors.UnmatchedBracket, "unexpected ')' without a matching '('")
	case p.startsOperand(p.curr):
		return p.newError(skribi_errors.MissingOperator, "missing operator before %s", p.curr.Describe())
	}

	return p.newError(skribi_errors.UnexpectedToken, "unexpected token: %s", p.curr.Describe())
}

func (p *Parser) startsOperand(token *lexer.Token) bool {
	return token.IsLiteral() || token.Kind == lexer.IDENT || token.Is(lexer.BRACKET, "(")
}

func (p *Parser) read() *lexer.Token {
	if p.pending != nil {
		p.curr = p.pending
		p.pending = nil
		return p.curr
	}

	p.curr = p.scanner.Read()
	return p.curr
}

// peekAny looks one token past the current one.
func (p *Parser) peekAny(kinds ...lexer.TokenKind) bool {
	if p.pending != nil {
		return false
	}

	next := p.scanner.Read()
	p.scanner.Unread()

	for _, kind := range kinds {
		if next.Kind == kind {
			return true
		}
	}

	return false
}

func (p *Parser) expect(kind lexer.TokenKind, what string) error {
	if p.curr.Kind == kind {
		return nil
	}

	return p.newError(skribi_errors.UnexpectedToken, "expected %s, found %s", what, p.curr.Describe())
}

func (p *Parser) positionOf(token *lexer.Token) skribi_errors.Position {
	return skribi_errors.Position{
		Line: token.Line,
		File: p.fileName,
	}
}

func (p *Parser) newError(kind skribi_errors.Kind, format string, args ...any) error {
	return skribi_errors.Newf(kind, []skribi_errors.Position{p.positionOf(p.curr)}, format, args...)
}
