package ast

import "github.com/kievzenit/skribi/internal/lexer"

// VariableNode is `name [: type] = value`.
type VariableNode struct {
	StartToken *lexer.Token

	Name  string
	Type  TypeNode
	Value Evaluable
}

type ExprStmt struct {
	Expr Evaluable
}

// BlockNode is `[kodi [name]] { stmts }`. It runs its statements in a scope
// nested in the current one.
type BlockNode struct {
	StartToken *lexer.Token

	Name  string
	Stmts []Stmt
}

func (v *VariableNode) AstNode() {}
func (e *ExprStmt) AstNode()     {}
func (b *BlockNode) AstNode()    {}

func (v *VariableNode) FirstToken() *lexer.Token { return v.StartToken }
func (e *ExprStmt) FirstToken() *lexer.Token     { return e.Expr.FirstToken() }
func (b *BlockNode) FirstToken() *lexer.Token    { return b.StartToken }

func (v *VariableNode) StmtNode() {}
func (e *ExprStmt) StmtNode()     {}
func (b *BlockNode) StmtNode()    {}

func (v *VariableNode) ExecutableNode() {}
func (b *BlockNode) ExecutableNode()    {}
