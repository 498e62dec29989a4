package scope

import "github.com/kievzenit/skribi/internal/skribi_errors"

// ScopeStack tracks the scopes entered during evaluation, outermost first.
type ScopeStack struct {
	scopes []*Scope
}

func NewScopeStack() *ScopeStack {
	return &ScopeStack{
		scopes: make([]*Scope, 0),
	}
}

func (ss *ScopeStack) Push(s *Scope) {
	ss.scopes = append(ss.scopes, s)
}

func (ss *ScopeStack) Pop() *Scope {
	if len(ss.scopes) == 0 {
		return nil
	}

	s := ss.scopes[len(ss.scopes)-1]
	ss.scopes = ss.scopes[:len(ss.scopes)-1]
	return s
}

func (ss *ScopeStack) Current() *Scope {
	if len(ss.scopes) == 0 {
		return nil
	}

	return ss.scopes[len(ss.scopes)-1]
}

func (ss *ScopeStack) Len() int {
	return len(ss.scopes)
}

// Trace lists the position of every active scope, outermost first.
func (ss *ScopeStack) Trace() []skribi_errors.Position {
	trace := make([]skribi_errors.Position, 0, len(ss.scopes))
	for _, s := range ss.scopes {
		trace = append(trace, s.Position())
	}

	return trace
}

// Annotate positions a diagnostic at the active scopes. Other errors pass
// through unchanged.
func (ss *ScopeStack) Annotate(err error) error {
	diag, ok := err.(*skribi_errors.Diagnostic)
	if !ok || len(ss.scopes) == 0 {
		return err
	}

	return diag.WithTrace(ss.Trace())
}
