package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Format renders a node in prefix form, e.g. `+(1, *(2, 3))`.
func Format(node AstNode) string {
	var b strings.Builder
	format(&b, node)
	return b.String()
}

func format(b *strings.Builder, node AstNode) {
	switch node := node.(type) {
	case *NumberNode:
		if node.IsFloat {
			b.WriteString(strconv.FormatFloat(node.Float, 'f', -1, 64))
			return
		}
		b.WriteString(strconv.FormatInt(node.Int, 10))
	case *StringNode:
		fmt.Fprintf(b, "%q", node.Value)
	case *BoolNode:
		b.WriteString(strconv.FormatBool(node.Value))
	case *IdentNode:
		b.WriteString(node.Name)
	case *UnaryNode:
		b.WriteString(node.Op.Value)
		b.WriteString("(")
		format(b, node.Operand)
		b.WriteString(")")
	case *OperatorNode:
		b.WriteString(node.Op.Value)
		b.WriteString("(")
		format(b, node.Left)
		b.WriteString(", ")
		format(b, node.Right)
		b.WriteString(")")
	case *VariableNode:
		b.WriteString(node.Name)
		if node.Type != nil {
			b.WriteString(":")
			b.WriteString(node.Type.TypeName())
		}
		b.WriteString(" = ")
		format(b, node.Value)
	case *ExprStmt:
		format(b, node.Expr)
	case *BlockNode:
		if node.Name != "" {
			b.WriteString("kodi ")
			b.WriteString(node.Name)
			b.WriteString(" ")
		}
		b.WriteString("{")
		for i, stmt := range node.Stmts {
			if i > 0 {
				b.WriteString("; ")
			}
			format(b, stmt)
		}
		b.WriteString("}")
	default:
		fmt.Fprintf(b, "<%T>", node)
	}
}
