package interpreter

import (
	"github.com/kievzenit/skribi/internal/ast"
	"github.com/kievzenit/skribi/internal/scope"
	"github.com/kievzenit/skribi/internal/skribi_errors"
	"github.com/kievzenit/skribi/internal/value"
)

// Evaluator walks syntax trees against the innermost scope of its stack.
type Evaluator struct {
	stack *scope.ScopeStack
}

func NewEvaluator(stack *scope.ScopeStack) *Evaluator {
	return &Evaluator{
		stack: stack,
	}
}

// Evaluate reduces an expression to a value. It never changes a scope, so
// evaluating the same tree twice gives the same result.
func (e *Evaluator) Evaluate(node ast.Evaluable) (value.Value, error) {
	switch node := node.(type) {
	case *ast.NumberNode:
		return e.evaluateNumberNode(node), nil
	case *ast.StringNode:
		return value.StringValue(node.Value), nil
	case *ast.BoolNode:
		return value.BoolValue(node.Value), nil
	case *ast.IdentNode:
		return e.evaluateIdentNode(node)
	case *ast.UnaryNode:
		return e.evaluateUnaryNode(node)
	case *ast.OperatorNode:
		return e.evaluateOperatorNode(node)
	default:
		return nil, e.fail(skribi_errors.Newf(skribi_errors.UnknownNode, nil, "cannot evaluate %T", node))
	}
}

// Execute runs one statement and returns the value it produced: the value of
// an expression statement or the value a variable statement bound.
func (e *Evaluator) Execute(stmt ast.Stmt) (value.Value, error) {
	switch stmt := stmt.(type) {
	case *ast.VariableNode:
		return e.executeVariableNode(stmt)
	case *ast.ExprStmt:
		return e.Evaluate(stmt.Expr)
	case *ast.BlockNode:
		return e.executeBlockNode(stmt)
	default:
		return nil, e.fail(skribi_errors.Newf(skribi_errors.UnknownNode, nil, "cannot execute %T", stmt))
	}
}

// ExecuteIn runs stmts with s as the innermost scope and returns the value of
// the last one. It stops at the first diagnostic; bindings made before it stay.
func (e *Evaluator) ExecuteIn(s *scope.Scope, stmts []ast.Stmt) (value.Value, error) {
	e.stack.Push(s)
	defer e.stack.Pop()

	var result value.Value
	for _, stmt := range stmts {
		s.SetLine(stmt.FirstToken().Line)

		var err error
		result, err = e.Execute(stmt)
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

func (e *Evaluator) executeBlockNode(node *ast.BlockNode) (value.Value, error) {
	name := node.Name
	if name == "" {
		name = "<block>"
	}

	return e.ExecuteIn(scope.NewBlock(name, e.stack.Current()), node.Stmts)
}

func (e *Evaluator) evaluateNumberNode(node *ast.NumberNode) value.Value {
	if node.IsFloat {
		return value.FloatValue(node.Float)
	}

	return value.IntValue(node.Int)
}

func (e *Evaluator) evaluateIdentNode(node *ast.IdentNode) (value.Value, error) {
	variable, err := e.stack.Current().GetVariable(node.Name)
	if err != nil {
		return nil, e.fail(err)
	}

	return variable.Value, nil
}

func (e *Evaluator) evaluateUnaryNode(node *ast.UnaryNode) (value.Value, error) {
	operand, err := e.Evaluate(node.Operand)
	if err != nil {
		return nil, err
	}

	result, err := value.Unary(node.Op.Value, operand)
	if err != nil {
		return nil, e.fail(err)
	}

	return result, nil
}

func (e *Evaluator) evaluateOperatorNode(node *ast.OperatorNode) (value.Value, error) {
	left, err := e.Evaluate(node.Left)
	if err != nil {
		return nil, err
	}

	right, err := e.Evaluate(node.Right)
	if err != nil {
		return nil, err
	}

	result, err := value.Binary(node.Op.Value, left, right)
	if err != nil {
		return nil, e.fail(err)
	}

	return result, nil
}

// executeVariableNode rebinds an existing name anywhere in the scope chain,
// otherwise it creates the binding in the innermost scope.
func (e *Evaluator) executeVariableNode(node *ast.VariableNode) (value.Value, error) {
	current := e.stack.Current()

	if node.Type != nil {
		if _, err := current.GetType(node.Type.TypeName()); err != nil {
			return nil, e.fail(err)
		}
	}

	v, err := e.Evaluate(node.Value)
	if err != nil {
		return nil, err
	}

	variable := scope.NewVariable(v)
	if current.CheckName(node.Name) {
		err = current.SetVariable(node.Name, variable)
	} else {
		err = current.CreateVariable(node.Name, variable)
	}
	if err != nil {
		return nil, e.fail(err)
	}

	return v, nil
}

func (e *Evaluator) fail(err error) error {
	return e.stack.Annotate(err)
}
