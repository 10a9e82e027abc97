package resolve

import (
	"schema-typegen/internal/registry"
	"schema-typegen/internal/schema"
)

func tags(names ...string) schema.TypeList {
	out := make(schema.TypeList, len(names))
	for i, n := range names {
		out[i] = schema.TypeRef{Name: n}
	}

	return out
}

func ptr[T any](v T) *T {
	return &v
}

func testSymbols() *registry.Registry {
	return registry.Static(map[int64]string{
		0:      "NONE",
		1:      "ONE",
		4:      "TRIANGLES",
		5120:   "BYTE",
		5121:   "UNSIGNED_BYTE",
		5126:   "FLOAT",
		0xFFFF: "MAX_SHORT",
		// narrowed to -1
		0xFFFFFFFF: "INVALID_INDEX",
	})
}

func newTestResolver() *Resolver {
	return NewResolver(testSymbols())
}
