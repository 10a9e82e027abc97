package schema

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/goccy/go-json"
)

// ErrReferenceCycle is returned when "$ref" expansion revisits a document.
var ErrReferenceCycle = errors.New("schema reference cycle")

// Parse decodes a schema document.
func Parse(data []byte) (*Node, error) {
	var n Node
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("failed to parse schema JSON: %w", err)
	}

	return &n, nil
}

// LoadFile reads and decodes the schema document at path.
func LoadFile(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	n, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return n, nil
}

// Loader expands references relative to a base directory.
// Documents are cached per path. A Loader is not safe for concurrent use.
type Loader struct {
	dir   string
	cache map[string]*Node
}

// NewLoader creates a Loader resolving references against dir.
func NewLoader(dir string) *Loader {
	return &Loader{
		dir:   dir,
		cache: make(map[string]*Node),
	}
}

// Load returns the decoded document for a reference, relative to the loader directory.
func (l *Loader) Load(ref string) (*Node, error) {
	path := filepath.Join(l.dir, filepath.FromSlash(ref))
	if n, ok := l.cache[path]; ok {
		return n, nil
	}

	n, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	l.cache[path] = n

	return n, nil
}

// Expand returns a copy of n with "$ref" replaced by the referenced document
// and "allOf" members merged in. Item and dictionary-value schemas are
// expanded as well; properties are left untouched.
// Local title, description and default override the referenced ones.
func (l *Loader) Expand(n *Node) (*Node, error) {
	return l.expand(n, nil)
}

func (l *Loader) expand(n *Node, stack []string) (*Node, error) {
	if n == nil {
		return nil, nil
	}

	var out *Node

	if n.Ref != "" {
		if slices.Contains(stack, n.Ref) {
			return nil, fmt.Errorf("%w: %v -> %s", ErrReferenceCycle, stack, n.Ref)
		}

		target, err := l.Load(n.Ref)
		if err != nil {
			return nil, err
		}

		expanded, err := l.expand(target, append(slices.Clone(stack), n.Ref))
		if err != nil {
			return nil, err
		}

		out = expanded.clone()
		overlay(out, n)
	} else {
		out = n.clone()
	}

	members := out.AllOf
	out.AllOf = nil

	for i, m := range members {
		expanded, err := l.expand(m, stack)
		if err != nil {
			return nil, fmt.Errorf("allOf[%d]: %w", i, err)
		}

		merge(out, expanded)
	}

	var err error

	if out.Items, err = l.expand(out.Items, stack); err != nil {
		return nil, fmt.Errorf("items: %w", err)
	}

	if out.DictionaryValue, err = l.expand(out.DictionaryValue, stack); err != nil {
		return nil, fmt.Errorf("additionalProperties: %w", err)
	}

	return out, nil
}

// clone copies the node so merging never mutates cached documents.
func (n *Node) clone() *Node {
	c := *n
	c.Ref = ""

	if n.Properties != nil {
		c.Properties = make(map[string]*Node, len(n.Properties))
		for k, v := range n.Properties {
			c.Properties[k] = v
		}
	}

	c.Required = slices.Clone(n.Required)
	c.AllOf = slices.Clone(n.AllOf)

	return &c
}

// overlay applies the annotations a referencing node declares next to its "$ref".
func overlay(dst, local *Node) {
	if local.Title != "" {
		dst.Title = local.Title
	}

	if local.Description != "" {
		dst.Description = local.Description
	}

	if local.HasDefault() {
		dst.Default = local.Default
	}

	dst.AllOf = append(dst.AllOf, local.AllOf...)
}

// merge fills fields unset on dst from src.
func merge(dst, src *Node) {
	if len(dst.Type) == 0 {
		dst.Type = src.Type
	}

	if dst.Title == "" {
		dst.Title = src.Title
	}

	if dst.Description == "" {
		dst.Description = src.Description
	}

	if dst.Enum == nil {
		dst.Enum = src.Enum
	}

	if dst.Default == nil {
		dst.Default = src.Default
	}

	if dst.Minimum == nil && src.Minimum != nil {
		dst.Minimum = src.Minimum
		dst.ExclusiveMinimum = src.ExclusiveMinimum
	}

	if dst.Maximum == nil && src.Maximum != nil {
		dst.Maximum = src.Maximum
		dst.ExclusiveMaximum = src.ExclusiveMaximum
	}

	if dst.MinItems == nil {
		dst.MinItems = src.MinItems
	}

	if dst.MaxItems == nil {
		dst.MaxItems = src.MaxItems
	}

	if dst.MinLength == nil {
		dst.MinLength = src.MinLength
	}

	if dst.MaxLength == nil {
		dst.MaxLength = src.MaxLength
	}

	if dst.Items == nil {
		dst.Items = src.Items
	}

	if dst.DictionaryValue == nil {
		dst.DictionaryValue = src.DictionaryValue
	}

	for k, v := range src.Properties {
		if dst.Properties == nil {
			dst.Properties = make(map[string]*Node)
		}

		if _, ok := dst.Properties[k]; !ok {
			dst.Properties[k] = v
		}
	}

	for _, r := range src.Required {
		if !slices.Contains(dst.Required, r) {
			dst.Required = append(dst.Required, r)
		}
	}
}
