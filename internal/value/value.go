package value

import (
	"math"
	"strconv"
	"strings"

	"github.com/kievzenit/skribi/internal/types"
)

// Value is anything an expression evaluates to. Booleans share the numeric
// domain: they take part in arithmetic as 0 and 1.
type Value interface {
	Type() *types.BaseType
	String() string
}

type IntValue int64
type FloatValue float64
type StringValue string
type BoolValue bool

func (IntValue) Type() *types.BaseType    { return types.Int }
func (FloatValue) Type() *types.BaseType  { return types.Float }
func (StringValue) Type() *types.BaseType { return types.String }
func (BoolValue) Type() *types.BaseType   { return types.Bool }

func (v IntValue) String() string {
	return strconv.FormatInt(int64(v), 10)
}

func (v FloatValue) String() string {
	format := byte('g')
	if abs := math.Abs(float64(v)); abs == 0 || (abs >= 1e-4 && abs < 1e16) {
		format = 'f'
	}

	s := strconv.FormatFloat(float64(v), format, -1, 64)
	if strings.ContainsAny(s, ".eEnN") {
		return s
	}

	return s + ".0"
}

func (v StringValue) String() string {
	return string(v)
}

func (v BoolValue) String() string {
	return strconv.FormatBool(bool(v))
}

// Truthy follows the usual zero-is-false convention.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case BoolValue:
		return bool(v)
	case IntValue:
		return v != 0
	case FloatValue:
		return v != 0
	case StringValue:
		return v != ""
	}

	return false
}
