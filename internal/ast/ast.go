package ast

import "github.com/kievzenit/skribi/internal/lexer"

type AstNode interface {
	AstNode()
	FirstToken() *lexer.Token
}

// Program is one parsed source unit: a file or an interactive line.
type Program struct {
	FileName string
	Stmts    []Stmt
}

type Stmt interface {
	AstNode
	StmtNode()
}

// Evaluable nodes reduce to a value.
type Evaluable interface {
	AstNode
	EvaluableNode()
}

// Executable nodes act on the current scope.
type Executable interface {
	Stmt
	ExecutableNode()
}
