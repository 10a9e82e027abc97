package typedesc

import "fmt"

// Constraint is validator metadata carried alongside a resolved type.
// It is one of *NumberConstraint or *ArrayConstraint.
type Constraint interface {
	fmt.Stringer
	isConstraint()
}

// NumberConstraint bounds a numeric value.
// Minimum and Maximum are zero when the matching Has flag is false.
type NumberConstraint struct {
	Minimum          float64
	Maximum          float64
	HasMinimum       bool
	HasMaximum       bool
	ExclusiveMinimum bool
	ExclusiveMaximum bool
}

// ArrayConstraint bounds an array and the length of its string items.
// MinItems and MaxItems are -1 when unbounded; the item length bounds are
// zero unless the items are strings that declare them.
type ArrayConstraint struct {
	MinItems      int
	MaxItems      int
	ItemMinLength int
	ItemMaxLength int
}

func (*NumberConstraint) isConstraint() {}
func (*ArrayConstraint) isConstraint()  {}

func (c *NumberConstraint) String() string {
	return fmt.Sprintf("number min=%g max=%g has=(%t,%t) exclusive=(%t,%t)",
		c.Minimum, c.Maximum, c.HasMinimum, c.HasMaximum, c.ExclusiveMinimum, c.ExclusiveMaximum)
}

func (c *ArrayConstraint) String() string {
	return fmt.Sprintf("array items=(%d,%d) length=(%d,%d)",
		c.MinItems, c.MaxItems, c.ItemMinLength, c.ItemMaxLength)
}
