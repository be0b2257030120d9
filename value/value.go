// Package value implements the interpreter's runtime value model: a
// closed three-variant tagged value (number, string, boolean) that
// flows through operators, the environment, and the print sink.
package value

import (
	"strconv"

	"github.com/Neche-Stephen/igbo-programming-language/token"
)

// Type tags which variant a Value holds.
type Type int

const (
	Number Type = iota
	String
	Bool
)

// String renders the type name for diagnostics.
func (t Type) String() string {
	switch t {
	case Number:
		return "number"
	case String:
		return "string"
	case Bool:
		return "bool"
	default:
		return "unknown"
	}
}

// Value is an immutable tagged union of exactly one of a number, a
// string, or a bool. A Value's string field is a Go string, which is
// itself immutable and never shared mutably, so copying a Value into or
// out of the Environment never aliases backing storage — Go's string
// semantics satisfy the spec's "duplicate on copy" invariant for free,
// with no explicit duplication step needed.
type Value struct {
	typ Type
	num float64
	str string
	b   bool
}

// ParseNumber parses a NUMBER node's decimal-digit payload, shared by
// the evaluator so the parsing rule lives in exactly one place.
func ParseNumber(digits string) (float64, error) {
	return strconv.ParseFloat(digits, 64)
}

// Num builds a number Value.
func Num(n float64) Value { return Value{typ: Number, num: n} }

// Str builds a string Value.
func Str(s string) Value { return Value{typ: String, str: s} }

// Boolean builds a bool Value.
func Boolean(b bool) Value { return Value{typ: Bool, b: b} }

// Type reports which variant v holds.
func (v Value) Type() Type { return v.typ }

// IsNumber, IsString, IsBool report the held variant.
func (v Value) IsNumber() bool { return v.typ == Number }
func (v Value) IsString() bool { return v.typ == String }
func (v Value) IsBool() bool   { return v.typ == Bool }

// AsNumber returns the held number, or 0 if v is not a number.
func (v Value) AsNumber() float64 {
	if v.typ == Number {
		return v.num
	}
	return 0
}

// AsString returns the held string, or "" if v is not a string.
func (v Value) AsString() string {
	if v.typ == String {
		return v.str
	}
	return ""
}

// AsBool returns the held bool, or false if v is not a bool.
func (v Value) AsBool() bool {
	if v.typ == Bool {
		return v.b
	}
	return false
}

// Truthy implements the language's condition-coercion rule: booleans use
// their own value, numbers are truthy when nonzero, strings are truthy
// when non-empty.
func (v Value) Truthy() bool {
	switch v.typ {
	case Bool:
		return v.b
	case Number:
		return v.num != 0
	case String:
		return v.str != ""
	default:
		return false
	}
}

// NumberText renders v's number using the host's shortest round-trip
// decimal form, used both for PRINT_STMT and for coercing a number
// operand into text for string concatenation.
func (v Value) NumberText() string {
	return strconv.FormatFloat(v.num, 'g', -1, 64)
}

// Print renders v the way PRINT_STMT writes it to standard output:
// strings as-is, numbers in shortest round-trip decimal form, booleans
// as the canonical Igbo literal word.
func (v Value) Print() string {
	switch v.typ {
	case String:
		return v.str
	case Number:
		return v.NumberText()
	case Bool:
		if v.b {
			return token.TrueLiteral
		}
		return token.FalseLiteral
	default:
		return ""
	}
}
