package types

type Field struct {
	Name string
	Type *BaseType
}

// CustomType is a user declared type. Fields and methods are recorded but
// the evaluator does not read them yet.
type CustomType struct {
	*BaseType

	Fields  []Field
	Methods []string
}

func NewCustomType(name string, scope Owner, extends *BaseType) *CustomType {
	return &CustomType{
		BaseType: NewBaseType(name, scope, extends),
		Fields:   make([]Field, 0),
		Methods:  make([]string, 0),
	}
}

func (t *CustomType) AddField(name string, fieldType *BaseType) {
	t.Fields = append(t.Fields, Field{
		Name: name,
		Type: fieldType,
	})
}

func (t *CustomType) GetField(name string) (*BaseType, bool) {
	for _, field := range t.Fields {
		if field.Name == name {
			return field.Type, true
		}
	}

	return nil, false
}

func (t *CustomType) AddMethod(name string) {
	t.Methods = append(t.Methods, name)
}
