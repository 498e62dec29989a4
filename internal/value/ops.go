package value

import (
	"math"

	"github.com/kievzenit/skribi/internal/skribi_errors"
)

type number struct {
	i       int64
	f       float64
	isFloat bool
}

func toNumber(v Value) (number, bool) {
	switch v := v.(type) {
	case IntValue:
		return number{i: int64(v), f: float64(v)}, true
	case FloatValue:
		return number{f: float64(v), isFloat: true}, true
	case BoolValue:
		if v {
			return number{i: 1, f: 1}, true
		}
		return number{}, true
	}

	return number{}, false
}

func invalidOperands(op string, left, right Value) error {
	return skribi_errors.Newf(
		skribi_errors.InvalidOperands,
		nil,
		"unsupported operand types for '%s': %s and %s", op, left.Type(), right.Type())
}

func unknownOperator(op string) error {
	return skribi_errors.Newf(skribi_errors.UnknownOperator, nil, "Unknown operator: %s", op)
}

func overflow(op string, left, right Value) error {
	return skribi_errors.Newf(skribi_errors.Overflow, nil, "integer overflow: %s %s %s", left, op, right)
}

func divisionByZero() error {
	return skribi_errors.New(skribi_errors.DivisionByZero, "division by zero")
}

// Binary applies an arithmetic or comparison operator. Returned diagnostics
// carry no trace; the caller positions them.
func Binary(op string, left, right Value) (Value, error) {
	switch op {
	case "+", "-", "*", "/", "^":
		return arithmetic(op, left, right)
	case "==", "!=", "<", ">", "<=", ">=":
		return compare(op, left, right)
	}

	return nil, unknownOperator(op)
}

func Unary(op string, operand Value) (Value, error) {
	switch op {
	case "!":
		return BoolValue(!Truthy(operand)), nil
	case "-":
		n, ok := toNumber(operand)
		if !ok {
			return nil, skribi_errors.Newf(
				skribi_errors.InvalidOperands,
				nil,
				"unsupported operand type for unary '-': %s", operand.Type())
		}
		if n.isFloat {
			return FloatValue(-n.f), nil
		}
		if n.i == math.MinInt64 {
			return nil, skribi_errors.Newf(skribi_errors.Overflow, nil, "integer overflow: -(%s)", operand)
		}
		return IntValue(-n.i), nil
	}

	return nil, unknownOperator(op)
}

func arithmetic(op string, left, right Value) (Value, error) {
	if l, ok := left.(StringValue); ok {
		if r, ok := right.(StringValue); ok && op == "+" {
			return l + r, nil
		}
		return nil, invalidOperands(op, left, right)
	}

	l, lok := toNumber(left)
	r, rok := toNumber(right)
	if !lok || !rok {
		return nil, invalidOperands(op, left, right)
	}

	if l.isFloat || r.isFloat {
		return floatArithmetic(op, l.f, r.f)
	}

	var (
		result int64
		ok     bool
	)
	switch op {
	case "+":
		result, ok = addInt(l.i, r.i)
	case "-":
		result, ok = subInt(l.i, r.i)
	case "*":
		result, ok = mulInt(l.i, r.i)
	case "/":
		if r.i == 0 {
			return nil, divisionByZero()
		}
		return FloatValue(float64(l.i) / float64(r.i)), nil
	case "^":
		if r.i < 0 {
			if l.i == 0 {
				return nil, divisionByZero()
			}
			return FloatValue(math.Pow(float64(l.i), float64(r.i))), nil
		}
		result, ok = intPow(l.i, r.i)
	default:
		return nil, unknownOperator(op)
	}

	if !ok {
		return nil, overflow(op, left, right)
	}
	return IntValue(result), nil
}

func floatArithmetic(op string, l, r float64) (Value, error) {
	switch op {
	case "+":
		return FloatValue(l + r), nil
	case "-":
		return FloatValue(l - r), nil
	case "*":
		return FloatValue(l * r), nil
	case "/":
		if r == 0 {
			return nil, divisionByZero()
		}
		return FloatValue(l / r), nil
	case "^":
		if l == 0 && r < 0 {
			return nil, divisionByZero()
		}
		return FloatValue(math.Pow(l, r)), nil
	}

	return nil, unknownOperator(op)
}

func addInt(a, b int64) (int64, bool) {
	sum := a + b
	return sum, (b >= 0) == (sum >= a)
}

func subInt(a, b int64) (int64, bool) {
	diff := a - b
	return diff, (b >= 0) == (diff <= a)
}

func mulInt(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	product := a * b
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	return product, product/b == a
}

// intPow squares only while higher exponent bits remain, so an overflowing
// square always means an overflowing result.
func intPow(base, exp int64) (int64, bool) {
	result := int64(1)
	for exp > 0 {
		var ok bool
		if exp&1 == 1 {
			if result, ok = mulInt(result, base); !ok {
				return 0, false
			}
		}
		exp >>= 1
		if exp > 0 {
			if base, ok = mulInt(base, base); !ok {
				return 0, false
			}
		}
	}

	return result, true
}

func compare(op string, left, right Value) (Value, error) {
	l, lok := left.(StringValue)
	r, rok := right.(StringValue)
	if lok && rok {
		return compareOrdered(op, l, r), nil
	}

	if lok != rok {
		switch op {
		case "==":
			return BoolValue(false), nil
		case "!=":
			return BoolValue(true), nil
		}
		return nil, invalidOperands(op, left, right)
	}

	ln, _ := toNumber(left)
	rn, _ := toNumber(right)
	if ln.isFloat || rn.isFloat {
		return compareOrdered(op, ln.f, rn.f), nil
	}

	return compareOrdered(op, ln.i, rn.i), nil
}

func compareOrdered[T int64 | float64 | StringValue](op string, l, r T) BoolValue {
	switch op {
	case "==":
		return l == r
	case "!=":
		return l != r
	case "<":
		return l < r
	case ">":
		return l > r
	case "<=":
		return l <= r
	default:
		return l >= r
	}
}
