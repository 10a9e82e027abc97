// Package schema provides the JSON-Schema-like node model consumed by the
// type resolver, together with a loader that decodes schema documents and
// expands "$ref" and "allOf" indirections.
//
// Key types:
//   - Node: one schema node (type tags, enum, default, bounds, nested schemas)
//   - TypeRef: a single entry of a node's type-tag list
//   - Loader: file-backed reference expansion with per-path caching
package schema
