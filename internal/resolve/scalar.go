package resolve

import (
	"fmt"

	"schema-typegen/internal/common"
	"schema-typegen/internal/match"
	"schema-typegen/internal/schema"
	"schema-typegen/internal/typedesc"
)

// maxSuggestions bounds the alternatives offered for a rejected enum default.
const maxSuggestions = 3

func (r *Resolver) resolveScalar(name string, node *schema.Node) (*typedesc.Descriptor, error) {
	desc := &typedesc.Descriptor{}

	// attached before the kind is known
	if node.HasBounds() {
		desc.Constraint = numberConstraint(node)
	}

	if common.IsMultiple(node.Type) {
		desc.Type = typedesc.Opaque()
		return desc, nil
	}

	tag := node.Type[0]
	if tag.IsReference {
		return nil, notImplemented(name, tag.String())
	}

	switch tag.Name {
	case schema.TypeAny:
		if node.HasEnum() || node.HasDefault() {
			return nil, notImplemented(name, "any with enum or default")
		}

		desc.Type = typedesc.Opaque()

	case schema.TypeObject:
		if node.HasEnum() || node.HasDefault() {
			return nil, notImplemented(name, "object with enum or default")
		}

		if node.Title == "" {
			return nil, notImplemented(name, "anonymous object")
		}

		desc.Type = typedesc.Object(r.namer(node.Title))

	case schema.TypeNumber:
		if node.HasEnum() {
			return nil, notImplemented(name, "number enum")
		}

		if err := setDefault(desc, name, node, toFloat); err != nil {
			return nil, err
		}

		desc.Type = typedesc.Scalar(typedesc.KindFloat)

	case schema.TypeString:
		if node.HasEnum() {
			return r.stringEnum(desc, name, node)
		}

		if err := setDefault(desc, name, node, toString); err != nil {
			return nil, err
		}

		desc.Type = typedesc.Scalar(typedesc.KindString)

	case schema.TypeInteger:
		if node.HasEnum() {
			return r.integerEnum(desc, name, node)
		}

		if err := setDefault(desc, name, node, toInt); err != nil {
			return nil, err
		}

		desc.Type = typedesc.Scalar(typedesc.KindInt)

	case schema.TypeBoolean:
		if node.HasEnum() {
			return nil, notImplemented(name, "boolean enum")
		}

		if err := setDefault(desc, name, node, toBool); err != nil {
			return nil, err
		}

		desc.Type = typedesc.Scalar(typedesc.KindBool)

	default:
		return nil, notImplemented(name, tag.Name)
	}

	return desc, nil
}

func setDefault(desc *typedesc.Descriptor, name string, node *schema.Node, conv converter) error {
	if !node.HasDefault() {
		return nil
	}

	val, err := coerceDefault(name, node.Default, conv)
	if err != nil {
		return err
	}

	desc.Default = val

	return nil
}

// stringEnum synthesizes an enum whose members are the literal strings.
// A default must name one of the members.
func (r *Resolver) stringEnum(desc *typedesc.Descriptor, name string, node *schema.Node) (*typedesc.Descriptor, error) {
	decl := &typedesc.EnumDecl{
		Name:       enumName(name),
		Underlying: typedesc.KindString,
		Members:    make([]typedesc.EnumMember, 0, len(node.Enum)),
	}

	for _, v := range node.Enum {
		s, err := jsonString(v)
		if err != nil {
			return nil, notImplemented(name, fmt.Sprintf("string enum member %#v", v))
		}

		decl.Members = append(decl.Members, typedesc.EnumMember{Name: s})
	}

	desc.Type = typedesc.Enum(decl.Name)
	desc.Dependent = decl

	if !node.HasDefault() {
		return desc, nil
	}

	def, err := jsonString(node.Default)
	if err != nil {
		return nil, newError(InvalidDefault, name, "", err)
	}

	if _, ok := decl.Member(def); !ok {
		e := newError(InvalidDefault, name, "",
			fmt.Errorf("%q is not in the enum list %v", def, decl.MemberNames()))
		e.Suggestions = match.Suggest(def, decl.MemberNames(), maxSuggestions)

		return nil, e
	}

	desc.Default = typedesc.EnumMemberRef{Enum: decl.Name, Member: def}

	return desc, nil
}

// integerEnum synthesizes an enum whose member names come from the symbol
// registry and whose values are the literal integers. A default must equal
// one of the member values.
func (r *Resolver) integerEnum(desc *typedesc.Descriptor, name string, node *schema.Node) (*typedesc.Descriptor, error) {
	var (
		def         int64
		defaultName string
	)

	if node.HasDefault() {
		v, err := jsonInteger(node.Default)
		if err != nil {
			return nil, newError(InvalidDefault, name, "", err)
		}

		def = v
	}

	decl := &typedesc.EnumDecl{
		Name:       enumName(name),
		Underlying: typedesc.KindInt,
		Members:    make([]typedesc.EnumMember, 0, len(node.Enum)),
	}

	for _, v := range node.Enum {
		value, err := jsonInteger(v)
		if err != nil {
			return nil, notImplemented(name, fmt.Sprintf("integer enum member %#v", v))
		}

		itemName, err := r.symbol(name, value)
		if err != nil {
			return nil, err
		}

		narrowed := int32(value)
		decl.Members = append(decl.Members, typedesc.EnumMember{Name: itemName, Value: &narrowed})

		if node.HasDefault() && def == value {
			defaultName = itemName
		}
	}

	desc.Type = typedesc.Enum(decl.Name)
	desc.Dependent = decl

	if !node.HasDefault() {
		return desc, nil
	}

	if defaultName == "" {
		return nil, newError(InvalidDefault, name, "",
			fmt.Errorf("%d is not in the enum list %v", def, decl.MemberNames()))
	}

	desc.Default = typedesc.EnumMemberRef{Enum: decl.Name, Member: defaultName}

	return desc, nil
}
