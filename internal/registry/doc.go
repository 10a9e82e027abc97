// Package registry maps numeric enumeration constants to their canonical
// symbolic names.
//
// The mapping is extracted from an XML registry document (for example the
// Khronos gl.xml) by walking every element and collecting <enum> elements
// carrying both a name and a value attribute. A Registry is immutable once
// built. Lazy is the process-wide handle: it fetches and builds the registry
// on first lookup, exactly once, and shares the result with every caller.
//
// Fetching is delegated to a Fetcher; HTTPFetcher, FileFetcher and
// RetryFetcher cover the usual sources.
package registry
