package resolve

import (
	"schema-typegen/internal/common"
	"schema-typegen/internal/schema"
	"schema-typegen/internal/typedesc"
)

func (r *Resolver) resolveArray(name string, node *schema.Node) (*typedesc.Descriptor, error) {
	items := node.Items
	if items == nil || common.IsEmpty(items.Type) {
		return nil, newError(MissingItemType, name, "", nil)
	}

	if node.HasEnum() {
		return nil, notImplemented(name, "array enum")
	}

	if items.HasEnum() {
		return nil, notImplemented(name, "array of enum")
	}

	desc := &typedesc.Descriptor{
		Constraint: arrayConstraint(node),
	}

	if common.IsMultiple(items.Type) {
		desc.Type = typedesc.ArrayOf(typedesc.Opaque())
		return desc, nil
	}

	tag := items.Type[0]
	if tag.IsReference {
		return nil, notImplemented(name, "array of "+tag.String())
	}

	var (
		elem typedesc.Kind
		conv converter
	)

	switch tag.Name {
	case schema.TypeBoolean:
		elem, conv = typedesc.KindBool, toBool
	case schema.TypeString:
		elem, conv = typedesc.KindString, toString
	case schema.TypeInteger:
		elem, conv = typedesc.KindInt, toInt
	case schema.TypeNumber:
		elem, conv = typedesc.KindFloat, toFloat
	case schema.TypeObject:
		if node.HasDefault() {
			return nil, notImplemented(name, "array of object with default")
		}

		desc.Type = typedesc.ArrayOf(typedesc.Opaque())

		return desc, nil
	default:
		return nil, notImplemented(name, "array of "+tag.Name)
	}

	if node.HasDefault() {
		def, err := coerceArrayDefault(name, node.Default, elem, conv)
		if err != nil {
			return nil, err
		}

		desc.Default = def
	}

	desc.Type = typedesc.ArrayOf(typedesc.Scalar(elem))

	return desc, nil
}
