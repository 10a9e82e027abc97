package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSchemas(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	return dir
}

func TestLoader_ExpandReference(t *testing.T) {
	dir := writeSchemas(t, map[string]string{
		"sparse.schema.json": `{"title": "Accessor Sparse", "type": "object", "properties": {"count": {"type": "integer"}}}`,
	})

	loader := NewLoader(dir)
	n, err := loader.Expand(&Node{Ref: "sparse.schema.json", Description: "local"})
	require.NoError(t, err)

	assert.False(t, n.IsReference())
	assert.Equal(t, TypeList{{Name: TypeObject}}, n.Type)
	assert.Equal(t, "Accessor Sparse", n.Title)
	assert.Equal(t, "local", n.Description)
	assert.Contains(t, n.Properties, "count")
}

func TestLoader_ExpandAllOf(t *testing.T) {
	dir := writeSchemas(t, map[string]string{
		"glTFid.schema.json": `{"type": "integer", "minimum": 0}`,
	})

	loader := NewLoader(dir)
	n, err := loader.Expand(&Node{
		Description: "The index of the buffer view.",
		AllOf:       []*Node{{Ref: "glTFid.schema.json"}},
	})
	require.NoError(t, err)

	assert.Empty(t, n.AllOf)
	assert.Equal(t, TypeList{{Name: TypeInteger}}, n.Type)
	require.NotNil(t, n.Minimum)
	assert.InDelta(t, 0.0, *n.Minimum, 1e-9)
	assert.Equal(t, "The index of the buffer view.", n.Description)
}

func TestLoader_ExpandItems(t *testing.T) {
	dir := writeSchemas(t, map[string]string{
		"glTFid.schema.json": `{"type": "integer", "minimum": 0}`,
	})

	loader := NewLoader(dir)
	n, err := loader.Expand(&Node{
		Type:  TypeList{{Name: TypeArray}},
		Items: &Node{Ref: "glTFid.schema.json"},
	})
	require.NoError(t, err)
	require.NotNil(t, n.Items)
	assert.Equal(t, TypeList{{Name: TypeInteger}}, n.Items.Type)
}

func TestLoader_DoesNotMutateCache(t *testing.T) {
	dir := writeSchemas(t, map[string]string{
		"base.schema.json": `{"type": "string"}`,
	})

	loader := NewLoader(dir)
	_, err := loader.Expand(&Node{Ref: "base.schema.json", Title: "Overridden"})
	require.NoError(t, err)

	cached, err := loader.Load("base.schema.json")
	require.NoError(t, err)
	assert.Empty(t, cached.Title)
}

func TestLoader_ReferenceCycle(t *testing.T) {
	dir := writeSchemas(t, map[string]string{
		"a.schema.json": `{"$ref": "b.schema.json"}`,
		"b.schema.json": `{"$ref": "a.schema.json"}`,
	})

	_, err := NewLoader(dir).Expand(&Node{Ref: "a.schema.json"})
	require.ErrorIs(t, err, ErrReferenceCycle)
}

func TestLoader_MissingFile(t *testing.T) {
	_, err := NewLoader(t.TempDir()).Expand(&Node{Ref: "missing.schema.json"})
	require.Error(t, err)
}
