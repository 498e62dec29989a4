package ast

import "github.com/kievzenit/skribi/internal/lexer"

type TypeNode interface {
	TypeNode()
	TypeName() string
}

type IdentTypeNode struct {
	StartToken *lexer.Token

	Name string
}

func (*IdentTypeNode) TypeNode() {}

func (t *IdentTypeNode) TypeName() string {
	return t.Name
}
