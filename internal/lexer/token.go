package lexer

import (
	"fmt"
	"strings"
)

type TokenKind int

const (
	EOF TokenKind = iota

	INT
	FLOAT
	STRING
	BOOL

	IDENT

	OPERATOR   // + - * / ^ !
	COMPARISON // == != < > <= >=
	BRACKET    // ( )
	BRACE      // { }
	EQUAL      // =
	COLON      // :

	NEWLINE
)

func (tk TokenKind) String() string {
	switch tk {
	case EOF:
		return "EOF"
	case INT:
		return "INT"
	case FLOAT:
		return "FLOAT"
	case STRING:
		return "STRING"
	case BOOL:
		return "BOOL"
	case IDENT:
		return "IDENT"
	case OPERATOR:
		return "OPERATOR"
	case COMPARISON:
		return "COMPARISON"
	case BRACKET:
		return "BRACKET"
	case BRACE:
		return "BRACE"
	case EQUAL:
		return "EQUAL"
	case COLON:
		return "COLON"
	case NEWLINE:
		return "NEWLINE"
	default:
		panic(fmt.Sprintf("TokenKind.String(): received illegal token kind: %d", tk))
	}
}

// Token is produced once by the lexer and never modified afterwards. For
// NEWLINE tokens Value holds the number of the line that starts.
type Token struct {
	Kind  TokenKind
	Value string
	Line  int
}

func (t *Token) hasActualValue() bool {
	switch t.Kind {
	case INT, FLOAT, STRING, BOOL, IDENT, OPERATOR, COMPARISON, BRACKET, BRACE, NEWLINE:
		return true
	}

	return false
}

func (t *Token) IsLiteral() bool {
	switch t.Kind {
	case INT, FLOAT, STRING, BOOL:
		return true
	}

	return false
}

// IsSigned reports whether t is a number literal the lexer folded a leading
// minus into.
func (t *Token) IsSigned() bool {
	return (t.Kind == INT || t.Kind == FLOAT) && strings.HasPrefix(t.Value, "-")
}

// SplitSign separates a signed number literal into a binary minus operator
// and the unsigned literal.
func (t *Token) SplitSign() (op *Token, operand *Token) {
	op = &Token{
		Kind:  OPERATOR,
		Value: "-",
		Line:  t.Line,
	}
	operand = &Token{
		Kind:  t.Kind,
		Value: strings.TrimPrefix(t.Value, "-"),
		Line:  t.Line,
	}

	return op, operand
}

func (t *Token) Is(kind TokenKind, value string) bool {
	return t.Kind == kind && t.Value == value
}

func (t *Token) String() string {
	if !t.hasActualValue() {
		return fmt.Sprintf("%s()", t.Kind)
	}

	return fmt.Sprintf("%s(%s)", t.Kind, t.Value)
}

// Describe renders the token the way diagnostics quote it.
func (t *Token) Describe() string {
	switch t.Kind {
	case EOF:
		return "end of input"
	case NEWLINE:
		return "end of line"
	case STRING:
		return fmt.Sprintf("\"%s\"", t.Value)
	}

	return fmt.Sprintf("'%s'", t.Value)
}
