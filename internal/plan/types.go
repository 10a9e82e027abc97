package plan

import (
	"schema-typegen/internal/diagnostic"
	"schema-typegen/internal/typedesc"
)

// Plan is the final output of the resolution pipeline.
type Plan struct {
	// Types holds one entry per root document, in input order.
	Types []ResolvedType
	// Diagnostics contains all warnings and errors from resolution.
	Diagnostics diagnostic.Diagnostics
}

// ResolvedType is a root schema with its resolved properties.
type ResolvedType struct {
	// Name is the Go type name derived from the title.
	Name string
	// Title is the schema title (or file name when the schema has none).
	Title       string
	Source      string
	Description string
	// Properties are ordered by JSON name. Failed properties are omitted.
	Properties []ResolvedProperty
}

// ResolvedProperty is one successfully resolved property.
type ResolvedProperty struct {
	// JSONName is the property key in the document.
	JSONName string
	// Name is the nominal name the property was resolved under.
	Name        string
	Description string
	Required    bool
	Descriptor  *typedesc.Descriptor
}

// Property returns the resolved property with the given JSON name.
func (t *ResolvedType) Property(jsonName string) (*ResolvedProperty, bool) {
	for i := range t.Properties {
		if t.Properties[i].JSONName == jsonName {
			return &t.Properties[i], true
		}
	}

	return nil, false
}
