package typedesc

import (
	"fmt"
	"strings"
)

// Type is a resolved type identity.
type Type struct {
	Kind Kind
	Name string // for KindEnum and KindObject
	Elem *Type  // for KindArray and KindMap
}

// Opaque returns the untyped type.
func Opaque() Type { return Type{Kind: KindOpaque} }

// Scalar returns a primitive scalar type.
func Scalar(kind Kind) Type { return Type{Kind: kind} }

// Enum returns a reference to the named enumeration.
func Enum(name string) Type { return Type{Kind: KindEnum, Name: name} }

// Object returns a reference to the named object type.
func Object(name string) Type { return Type{Kind: KindObject, Name: name} }

// ArrayOf returns an array of elem.
func ArrayOf(elem Type) Type { return Type{Kind: KindArray, Elem: &elem} }

// MapOf returns a string-keyed map of elem.
func MapOf(elem Type) Type { return Type{Kind: KindMap, Elem: &elem} }

// String returns a compact notation, e.g. "[]int", "map[string]Foo", "enum ModeEnum".
func (t Type) String() string {
	switch t.Kind {
	case KindEnum:
		return "enum " + t.Name
	case KindObject:
		return t.Name
	case KindArray:
		return "[]" + t.elemString()
	case KindMap:
		return "map[string]" + t.elemString()
	default:
		return t.Kind.String()
	}
}

func (t Type) elemString() string {
	if t.Elem == nil {
		return KindOpaque.String()
	}

	return t.Elem.String()
}

// Descriptor is the outcome of resolving one schema node.
type Descriptor struct {
	Type Type
	// Default is the coerced default value, nil when none was declared.
	Default Value
	// Dependent is the auxiliary declaration introduced by this descriptor.
	// Only the introducing descriptor carries it, so only it emits it.
	Dependent *EnumDecl
	// Constraint is the validator metadata, nil when none applies.
	Constraint Constraint
}

// String returns a one-line summary: "type = default [constraint]".
func (d *Descriptor) String() string {
	var sb strings.Builder

	sb.WriteString(d.Type.String())

	if d.Default != nil {
		sb.WriteString(" = ")
		sb.WriteString(d.Default.String())
	}

	if d.Constraint != nil {
		fmt.Fprintf(&sb, " [%s]", d.Constraint)
	}

	return sb.String()
}

// EnumDecl is a synthesized enumeration declaration.
type EnumDecl struct {
	Name string
	// Underlying is KindString or KindInt.
	Underlying Kind
	// Members keep the order of the schema's enumerated-value list.
	Members []EnumMember
}

// EnumMember is a single enumeration constant.
type EnumMember struct {
	Name string
	// Value is the explicit underlying value of integer enum members, nil for string enums.
	Value *int32
}

// Member returns the member with the given name.
func (e *EnumDecl) Member(name string) (EnumMember, bool) {
	for _, m := range e.Members {
		if m.Name == name {
			return m, true
		}
	}

	return EnumMember{}, false
}

// MemberNames returns the member names in declaration order.
func (e *EnumDecl) MemberNames() []string {
	names := make([]string, len(e.Members))
	for i, m := range e.Members {
		names[i] = m.Name
	}

	return names
}
