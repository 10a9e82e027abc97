package typedesc

import (
	"strconv"
	"strings"
)

// Value is a default-value literal. It is one of BoolValue, IntValue,
// FloatValue, StringValue, EnumMemberRef or ArrayValue.
type Value interface {
	// String renders the literal in a language-neutral notation.
	String() string
	isValue()
}

// BoolValue is a boolean literal.
type BoolValue bool

// IntValue is an integer literal narrowed to 32 bits.
type IntValue int32

// FloatValue is a floating-point literal.
type FloatValue float32

// StringValue is a string literal.
type StringValue string

// EnumMemberRef is a qualified reference to an enumeration member.
type EnumMemberRef struct {
	Enum   string
	Member string
}

// ArrayValue is an ordered literal array of scalar elements.
type ArrayValue struct {
	Elem  Kind
	Items []Value
}

func (BoolValue) isValue()     {}
func (IntValue) isValue()      {}
func (FloatValue) isValue()    {}
func (StringValue) isValue()   {}
func (EnumMemberRef) isValue() {}
func (ArrayValue) isValue()    {}

func (v BoolValue) String() string { return strconv.FormatBool(bool(v)) }

func (v IntValue) String() string { return strconv.FormatInt(int64(v), 10) }

func (v FloatValue) String() string { return strconv.FormatFloat(float64(v), 'g', -1, 32) }

func (v StringValue) String() string { return strconv.Quote(string(v)) }

func (v EnumMemberRef) String() string { return v.Enum + "." + v.Member }

func (v ArrayValue) String() string {
	parts := make([]string, len(v.Items))
	for i, item := range v.Items {
		parts[i] = item.String()
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
