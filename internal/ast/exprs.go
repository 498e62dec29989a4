package ast

import "github.com/kievzenit/skribi/internal/lexer"

type NumberNode struct {
	StartToken *lexer.Token

	IsFloat bool
	Int     int64
	Float   float64
}

type StringNode struct {
	StartToken *lexer.Token

	Value string
}

type BoolNode struct {
	StartToken *lexer.Token

	Value bool
}

type IdentNode struct {
	StartToken *lexer.Token

	Name string
}

// OperatorNode keeps its operands in the order the parser consumed them.
type OperatorNode struct {
	StartToken *lexer.Token

	Op    *lexer.Token
	Left  Evaluable
	Right Evaluable
}

type UnaryNode struct {
	StartToken *lexer.Token

	Op      *lexer.Token
	Operand Evaluable
}

func (NumberNode) AstNode()   {}
func (StringNode) AstNode()   {}
func (BoolNode) AstNode()     {}
func (IdentNode) AstNode()    {}
func (OperatorNode) AstNode() {}
func (UnaryNode) AstNode()    {}

func (e *NumberNode) FirstToken() *lexer.Token   { return e.StartToken }
func (e *StringNode) FirstToken() *lexer.Token   { return e.StartToken }
func (e *BoolNode) FirstToken() *lexer.Token     { return e.StartToken }
func (e *IdentNode) FirstToken() *lexer.Token    { return e.StartToken }
func (e *OperatorNode) FirstToken() *lexer.Token { return e.StartToken }
func (e *UnaryNode) FirstToken() *lexer.Token    { return e.StartToken }

func (NumberNode) EvaluableNode()   {}
func (StringNode) EvaluableNode()   {}
func (BoolNode) EvaluableNode()     {}
func (IdentNode) EvaluableNode()    {}
func (OperatorNode) EvaluableNode() {}
func (UnaryNode) EvaluableNode()    {}
