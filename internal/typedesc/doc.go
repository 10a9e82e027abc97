// Package typedesc defines the type descriptors produced by the resolver and
// consumed by code emitters.
//
// A Descriptor is an explicit tree: a resolved Type, an optional Default
// literal already coerced to that type, an optional owned Dependent
// declaration (a synthesized enum) and an optional validator Constraint.
package typedesc
