package typedesc

import "schema-typegen/internal/common"

// Kind is the identity of a resolved type.
type Kind int

const (
	_ Kind = iota // zero value is invalid

	KindOpaque // untyped value, polymorphic or unconstrained
	KindBool
	KindInt   // 32-bit signed integer
	KindFloat // 32-bit floating point
	KindString
	KindEnum   // named enumeration, see Type.Name
	KindObject // named object reference, see Type.Name
	KindArray  // array of Type.Elem
	KindMap    // string-keyed map of Type.Elem
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindOpaque:
		return "opaque"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindEnum:
		return "enum"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	default:
		return common.UnknownStr
	}
}

// IsScalar reports whether the kind is a primitive scalar.
func (k Kind) IsScalar() bool {
	switch k {
	default:
		return false
	case KindBool, KindInt, KindFloat, KindString:
		return true
	}
}

// IsNamed reports whether the kind refers to a declaration by name.
func (k Kind) IsNamed() bool {
	return k == KindEnum || k == KindObject
}

// IsContainer reports whether the kind carries an element type.
func (k Kind) IsContainer() bool {
	return k == KindArray || k == KindMap
}
