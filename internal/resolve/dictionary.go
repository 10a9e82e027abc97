package resolve

import (
	"schema-typegen/internal/common"
	"schema-typegen/internal/schema"
	"schema-typegen/internal/typedesc"
)

func (r *Resolver) resolveDictionary(name string, node *schema.Node) (*typedesc.Descriptor, error) {
	value := node.DictionaryValue
	if common.IsEmpty(value.Type) {
		return nil, newError(NotATypeSchema, name, "dictionary value", nil)
	}

	desc := &typedesc.Descriptor{}

	if common.IsMultiple(value.Type) {
		desc.Type = typedesc.MapOf(typedesc.Opaque())
		return desc, nil
	}

	if node.HasDefault() {
		return nil, notImplemented(name, "dictionary with default")
	}

	if value.HasEnum() {
		return nil, notImplemented(name, "dictionary of enum")
	}

	tag := value.Type[0]

	switch {
	case tag.Is(schema.TypeObject):
		if value.Title != "" {
			desc.Type = typedesc.MapOf(typedesc.Object(r.namer(value.Title)))
		} else {
			desc.Type = typedesc.MapOf(typedesc.Opaque())
		}
	case tag.Is(schema.TypeString):
		desc.Type = typedesc.MapOf(typedesc.Scalar(typedesc.KindString))
	default:
		return nil, notImplemented(name, "map[string]"+tag.String())
	}

	return desc, nil
}
