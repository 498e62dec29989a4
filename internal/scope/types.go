package scope

import (
	"github.com/kievzenit/skribi/internal/skribi_errors"
	"github.com/kievzenit/skribi/internal/types"
)

func (s *Scope) CreateType(t *types.BaseType) error {
	if _, ok := s.types[t.Name]; ok {
		return skribi_errors.Newf(skribi_errors.AlreadyExists, s.trace(), "Type '%s' already exists", t.Name)
	}

	s.types[t.Name] = t
	return nil
}

// SetType replaces a declaration in the innermost scope that owns the name.
// The replacement must keep the declared parent type.
func (s *Scope) SetType(t *types.BaseType) error {
	for curr := s; curr != nil; curr = curr.parent {
		existing, ok := curr.types[t.Name]
		if !ok {
			continue
		}

		if !existing.Extends.Equals(t.Extends) {
			return skribi_errors.Newf(
				skribi_errors.TypeMismatch,
				s.trace(),
				"Type '%s' already exists with different type", t.Name)
		}

		curr.types[t.Name] = t
		return nil
	}

	return skribi_errors.Newf(
		skribi_errors.UnknownType,
		s.trace(),
		"Type '%s' not found, please create it before use it", t.Name)
}

func (s *Scope) GetType(name string) (*types.BaseType, error) {
	for curr := s; curr != nil; curr = curr.parent {
		if t, ok := curr.types[name]; ok {
			return t, nil
		}
	}

	return nil, skribi_errors.Newf(skribi_errors.UnknownType, s.trace(), "Type '%s' not found", name)
}

func (s *Scope) CheckType(name string) bool {
	for curr := s; curr != nil; curr = curr.parent {
		if _, ok := curr.types[name]; ok {
			return true
		}
	}

	return false
}
