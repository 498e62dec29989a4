package types

// Owner is the container a type is declared in.
type Owner interface {
	Name() string
}

type BaseType struct {
	Name      string
	Scope     Owner
	Extends   *BaseType
	Primitive bool
}

func NewBaseType(name string, scope Owner, extends *BaseType) *BaseType {
	return &BaseType{
		Name:    name,
		Scope:   scope,
		Extends: extends,
	}
}

func (t *BaseType) TypeName() string {
	return t.Name
}

func (t *BaseType) String() string {
	return t.Name
}

// Equals compares types by name.
func (t *BaseType) Equals(other *BaseType) bool {
	if t == nil || other == nil {
		return t == other
	}

	return t.Name == other.Name
}

// ExtendsType reports whether other is a strict ancestor of t.
func (t *BaseType) ExtendsType(other *BaseType) bool {
	for parent := t.Extends; parent != nil; parent = parent.Extends {
		if parent.Equals(other) {
			return true
		}
	}

	return false
}

// IsA reports whether t is other or extends it.
func (t *BaseType) IsA(other *BaseType) bool {
	return t.Equals(other) || t.ExtendsType(other)
}
