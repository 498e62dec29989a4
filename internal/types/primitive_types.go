package types

// UniverseName names the root scope the primitive types are declared in.
const UniverseName = "<universe>"

// universe owns the primitive types. Every interpreter registers the same
// values in its own root scope, which carries this name.
type universe struct{}

func (universe) Name() string { return UniverseName }

var (
	Int    = newPrimitiveType("int", nil)
	Float  = newPrimitiveType("float", nil)
	String = newPrimitiveType("string", nil)
	Bool   = newPrimitiveType("bool", nil)
)

func newPrimitiveType(name string, extends *BaseType) *BaseType {
	return &BaseType{
		Name:      name,
		Scope:     universe{},
		Extends:   extends,
		Primitive: true,
	}
}

// Primitives lists the types every top-level scope can see.
func Primitives() []*BaseType {
	return []*BaseType{Int, Float, String, Bool}
}
