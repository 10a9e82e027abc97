package registry

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// DefaultPrefix is stripped from every symbol name.
const DefaultPrefix = "GL_"

var (
	// ErrUnavailable means the registry document could not be fetched or parsed.
	ErrUnavailable = errors.New("symbol registry unavailable")
	// ErrUnknownSymbol means a value has no entry in a built registry.
	ErrUnknownSymbol = errors.New("unknown symbol")
)

// Registry is an immutable value-to-name table.
type Registry struct {
	symbols map[int64]string
}

// Static builds a registry from a prepared table.
func Static(symbols map[int64]string) *Registry {
	return &Registry{symbols: maps.Clone(symbols)}
}

// Lookup returns the name registered for value.
func (r *Registry) Lookup(value int64) (string, bool) {
	name, ok := r.symbols[value]
	return name, ok
}

// Symbol returns the name registered for value, or an error wrapping ErrUnknownSymbol.
func (r *Registry) Symbol(value int64) (string, error) {
	name, ok := r.symbols[value]
	if !ok {
		return "", fmt.Errorf("%w: %d (0x%X)", ErrUnknownSymbol, value, value)
	}

	return name, nil
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	return len(r.symbols)
}

// Values returns the registered values in ascending order.
func (r *Registry) Values() []int64 {
	return slices.Sorted(maps.Keys(r.symbols))
}
