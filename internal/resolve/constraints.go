package resolve

import (
	"schema-typegen/internal/common"
	"schema-typegen/internal/schema"
	"schema-typegen/internal/typedesc"
)

// numberConstraint builds the bounds block of a scalar node. Absent bounds are zero.
func numberConstraint(node *schema.Node) *typedesc.NumberConstraint {
	return &typedesc.NumberConstraint{
		Minimum:          common.FloatOr(node.Minimum, 0),
		Maximum:          common.FloatOr(node.Maximum, 0),
		HasMinimum:       node.Minimum != nil,
		HasMaximum:       node.Maximum != nil,
		ExclusiveMinimum: node.ExclusiveMinimum,
		ExclusiveMaximum: node.ExclusiveMaximum,
	}
}

// arrayConstraint builds the length block of an array node. Item counts are
// -1 when unbounded; item lengths only apply to string items.
func arrayConstraint(node *schema.Node) *typedesc.ArrayConstraint {
	c := &typedesc.ArrayConstraint{
		MinItems: common.IntOr(node.MinItems, -1),
		MaxItems: common.IntOr(node.MaxItems, -1),
	}

	items := node.Items
	if common.IsSingle(items.Type) && items.Type[0].Is(schema.TypeString) {
		c.ItemMinLength = common.IntOr(items.MinLength, 0)
		c.ItemMaxLength = common.IntOr(items.MaxLength, 0)
	}

	return c
}
