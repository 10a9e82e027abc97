package schema

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// Primitive type tag names recognized by the resolver.
const (
	TypeBoolean = "boolean"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeString  = "string"
	TypeObject  = "object"
	TypeAny     = "any"
	TypeArray   = "array"
)

// TypeRef is one entry of a node's type-tag list.
type TypeRef struct {
	Name        string // primitive name, or the reference target when IsReference is set
	IsReference bool
}

// String returns the tag name, prefixed with "$ref:" for references.
func (t TypeRef) String() string {
	if t.IsReference {
		return "$ref:" + t.Name
	}

	return t.Name
}

// Is reports whether t is the non-reference primitive with the given name.
func (t TypeRef) Is(name string) bool {
	return !t.IsReference && t.Name == name
}

// TypeList is the type-tag list of a node.
// It decodes from a JSON string, an array of strings or {"$ref": ...} objects,
// or a single {"$ref": ...} object.
type TypeList []TypeRef

// Names returns the tag names in declaration order.
func (l TypeList) Names() []string {
	names := make([]string, len(l))
	for i, t := range l {
		names[i] = t.String()
	}

	return names
}

// String returns the tags joined with "|".
func (l TypeList) String() string {
	return strings.Join(l.Names(), "|")
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *TypeList) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case nil:
		*l = nil
		return nil
	case []any:
		out := make(TypeList, 0, len(v))
		for i, item := range v {
			ref, err := decodeTypeRef(item)
			if err != nil {
				return fmt.Errorf("type[%d]: %w", i, err)
			}

			out = append(out, ref)
		}

		*l = out

		return nil
	default:
		ref, err := decodeTypeRef(v)
		if err != nil {
			return err
		}

		*l = TypeList{ref}

		return nil
	}
}

func decodeTypeRef(v any) (TypeRef, error) {
	switch t := v.(type) {
	case string:
		return TypeRef{Name: t}, nil
	case map[string]any:
		ref, ok := t["$ref"].(string)
		if !ok {
			return TypeRef{}, fmt.Errorf("type object without $ref: %v", t)
		}

		return TypeRef{Name: ref, IsReference: true}, nil
	default:
		return TypeRef{}, fmt.Errorf("unsupported type tag %T", v)
	}
}

// Node is a JSON-Schema-like description of a value.
type Node struct {
	Type        TypeList `json:"type,omitempty"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	// Ref is the "$ref" indirection. Nodes reaching the resolver must have it expanded.
	Ref string `json:"$ref,omitempty"`

	Enum    []any `json:"enum,omitempty"`
	Default any   `json:"default,omitempty"`

	Minimum          *float64 `json:"minimum,omitempty"`
	Maximum          *float64 `json:"maximum,omitempty"`
	ExclusiveMinimum bool     `json:"-"`
	ExclusiveMaximum bool     `json:"-"`

	MinItems  *int `json:"minItems,omitempty"`
	MaxItems  *int `json:"maxItems,omitempty"`
	MinLength *int `json:"minLength,omitempty"`
	MaxLength *int `json:"maxLength,omitempty"`

	// Items is the element schema of an array node.
	Items *Node `json:"items,omitempty"`
	// DictionaryValue is the value schema of a string-keyed map node,
	// decoded from an object-valued "additionalProperties".
	DictionaryValue *Node `json:"-"`

	Properties map[string]*Node `json:"properties,omitempty"`
	Required   []string         `json:"required,omitempty"`
	AllOf      []*Node          `json:"allOf,omitempty"`
}

// HasDefault reports whether the node declares a default value.
func (n *Node) HasDefault() bool {
	return n.Default != nil
}

// HasEnum reports whether the node declares an enumerated-value list.
func (n *Node) HasEnum() bool {
	return n.Enum != nil
}

// HasBounds reports whether a minimum or a maximum is declared.
func (n *Node) HasBounds() bool {
	return n.Minimum != nil || n.Maximum != nil
}

// IsReference reports whether the node is a bare "$ref" indirection.
func (n *Node) IsReference() bool {
	return n.Ref != ""
}

// UnmarshalJSON implements json.Unmarshaler.
// It handles the boolean (draft-04) and numeric (draft-06) forms of the
// exclusive bounds and the schema-or-boolean form of additionalProperties.
func (n *Node) UnmarshalJSON(data []byte) error {
	type plain Node

	aux := struct {
		*plain
		ExclusiveMinimum     any             `json:"exclusiveMinimum"`
		ExclusiveMaximum     any             `json:"exclusiveMaximum"`
		AdditionalProperties json.RawMessage `json:"additionalProperties"`
	}{plain: (*plain)(n)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	var err error

	n.ExclusiveMinimum, n.Minimum, err = decodeExclusive(aux.ExclusiveMinimum, n.Minimum)
	if err != nil {
		return fmt.Errorf("exclusiveMinimum: %w", err)
	}

	n.ExclusiveMaximum, n.Maximum, err = decodeExclusive(aux.ExclusiveMaximum, n.Maximum)
	if err != nil {
		return fmt.Errorf("exclusiveMaximum: %w", err)
	}

	if raw := bytes.TrimSpace(aux.AdditionalProperties); len(raw) > 0 && raw[0] == '{' {
		var value Node
		if err := json.Unmarshal(raw, &value); err != nil {
			return fmt.Errorf("additionalProperties: %w", err)
		}

		n.DictionaryValue = &value
	}

	return nil
}

func decodeExclusive(v any, bound *float64) (bool, *float64, error) {
	switch t := v.(type) {
	case nil:
		return false, bound, nil
	case bool:
		return t, bound, nil
	case float64:
		return true, &t, nil
	default:
		return false, bound, fmt.Errorf("unexpected %T", v)
	}
}
