package scope

import (
	"github.com/kievzenit/skribi/internal/skribi_errors"
	"github.com/kievzenit/skribi/internal/types"
	"github.com/kievzenit/skribi/internal/value"
)

type Variable struct {
	Value value.Value
	Type  *types.BaseType
}

func NewVariable(v value.Value) Variable {
	return Variable{
		Value: v,
		Type:  v.Type(),
	}
}

// Scope holds variable bindings and type declarations. Lookups walk the
// parent chain outwards; nothing ever enumerates the children of a scope.
// A parent has to outlive every scope linked to it.
type Scope struct {
	name   string
	file   string
	parent *Scope
	line   int

	variables map[string]Variable
	types     map[string]*types.BaseType
}

// New creates a top-level scope for a source unit; name doubles as the file
// its diagnostics point at.
func New(name string, parent *Scope) *Scope {
	return &Scope{
		name:   name,
		file:   name,
		parent: parent,
		line:   1,

		variables: make(map[string]Variable),
		types:     make(map[string]*types.BaseType),
	}
}

// NewBlock creates a scope nested in parent. Its positions keep pointing at
// the file of parent.
func NewBlock(name string, parent *Scope) *Scope {
	s := New(name, parent)
	if parent != nil {
		s.file = parent.file
	}
	return s
}

func (s *Scope) Name() string { return s.name }

// SetLine records the line currently executed in this scope.
func (s *Scope) SetLine(line int) {
	s.line = line
}

func (s *Scope) Position() skribi_errors.Position {
	return skribi_errors.Position{
		Line: s.line,
		File: s.file,
	}
}

func (s *Scope) trace() []skribi_errors.Position {
	return []skribi_errors.Position{s.Position()}
}

func (s *Scope) CreateVariable(name string, v Variable) error {
	if _, ok := s.variables[name]; ok {
		return skribi_errors.Newf(skribi_errors.AlreadyExists, s.trace(), "Variable '%s' already exists", name)
	}

	s.variables[name] = v
	return nil
}

// SetVariable rebinds name in the innermost scope that owns it. The new
// value must keep the type of the existing binding.
func (s *Scope) SetVariable(name string, v Variable) error {
	for curr := s; curr != nil; curr = curr.parent {
		existing, ok := curr.variables[name]
		if !ok {
			continue
		}

		if !existing.Type.Equals(v.Type) {
			return skribi_errors.Newf(
				skribi_errors.TypeMismatch,
				s.trace(),
				"Variable '%s' already exists with different type (%s, got %s)", name, existing.Type, v.Type)
		}

		curr.variables[name] = v
		return nil
	}

	return skribi_errors.Newf(
		skribi_errors.NotFound,
		s.trace(),
		"Variable '%s' not found, please create it before use it", name)
}

func (s *Scope) GetVariable(name string) (Variable, error) {
	for curr := s; curr != nil; curr = curr.parent {
		if v, ok := curr.variables[name]; ok {
			return v, nil
		}
	}

	return Variable{}, skribi_errors.Newf(skribi_errors.NotFound, s.trace(), "Variable '%s' not found", name)
}

func (s *Scope) CheckName(name string) bool {
	for curr := s; curr != nil; curr = curr.parent {
		if _, ok := curr.variables[name]; ok {
			return true
		}
	}

	return false
}
