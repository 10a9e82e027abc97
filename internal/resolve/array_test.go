package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schema-typegen/internal/schema"
	"schema-typegen/internal/typedesc"
)

func arrayOf(items *schema.Node) *schema.Node {
	return &schema.Node{Type: tags(schema.TypeArray), Items: items}
}

func TestArray_StringsWithBounds(t *testing.T) {
	node := arrayOf(&schema.Node{Type: tags(schema.TypeString)})
	node.MinItems = ptr(1)
	node.MaxItems = ptr(4)

	desc, err := newTestResolver().Resolve("ExtensionsUsed", node)
	require.NoError(t, err)

	assert.Equal(t, typedesc.ArrayOf(typedesc.Scalar(typedesc.KindString)), desc.Type)
	assert.Equal(t, &typedesc.ArrayConstraint{MinItems: 1, MaxItems: 4}, desc.Constraint)
}

func TestArray_ConstraintSentinels(t *testing.T) {
	desc, err := newTestResolver().Resolve("Weights", arrayOf(&schema.Node{Type: tags(schema.TypeNumber)}))
	require.NoError(t, err)
	assert.Equal(t, &typedesc.ArrayConstraint{MinItems: -1, MaxItems: -1}, desc.Constraint)
}

func TestArray_ItemLengthOnlyForStrings(t *testing.T) {
	r := newTestResolver()

	desc, err := r.Resolve("Names", arrayOf(&schema.Node{
		Type:      tags(schema.TypeString),
		MinLength: ptr(1),
		MaxLength: ptr(64),
	}))
	require.NoError(t, err)
	assert.Equal(t, &typedesc.ArrayConstraint{MinItems: -1, MaxItems: -1, ItemMinLength: 1, ItemMaxLength: 64}, desc.Constraint)

	desc, err = r.Resolve("Indices", arrayOf(&schema.Node{
		Type:      tags(schema.TypeInteger),
		MinLength: ptr(1),
	}))
	require.NoError(t, err)
	assert.Equal(t, &typedesc.ArrayConstraint{MinItems: -1, MaxItems: -1}, desc.Constraint)
}

func TestArray_MissingItemType(t *testing.T) {
	r := newTestResolver()

	_, err := r.Resolve("Children", &schema.Node{Type: tags(schema.TypeArray)})
	requireKind(t, err, MissingItemType)
	assert.ErrorIs(t, err, ErrMissingItemType)

	_, err = r.Resolve("Children", arrayOf(&schema.Node{Title: "untyped"}))
	requireKind(t, err, MissingItemType)
}

func TestArray_EnumUnsupported(t *testing.T) {
	r := newTestResolver()

	node := arrayOf(&schema.Node{Type: tags(schema.TypeString)})
	node.Enum = []any{"a"}
	_, err := r.Resolve("Tags", node)
	requireKind(t, err, NotImplemented)

	_, err = r.Resolve("States", arrayOf(&schema.Node{Type: tags(schema.TypeInteger), Enum: []any{3042.0}}))
	re := requireKind(t, err, NotImplemented)
	assert.Equal(t, "array of enum", re.Shape)
}

func TestArray_PolymorphicItems(t *testing.T) {
	node := arrayOf(&schema.Node{Type: tags(schema.TypeNumber, schema.TypeString)})
	node.Default = []any{1.0, "a"}
	node.MaxItems = ptr(3)

	desc, err := newTestResolver().Resolve("Mixed", node)
	require.NoError(t, err)
	assert.Equal(t, typedesc.ArrayOf(typedesc.Opaque()), desc.Type)
	assert.Nil(t, desc.Default)
	assert.Equal(t, &typedesc.ArrayConstraint{MinItems: -1, MaxItems: 3}, desc.Constraint)
}

func TestArray_Defaults(t *testing.T) {
	tests := []struct {
		name     string
		item     string
		def      []any
		wantType typedesc.Type
		want     typedesc.Value
	}{
		{
			name:     "number",
			item:     schema.TypeNumber,
			def:      []any{1.0, 0.5, 0.0, 1.0},
			wantType: typedesc.ArrayOf(typedesc.Scalar(typedesc.KindFloat)),
			want: typedesc.ArrayValue{Elem: typedesc.KindFloat, Items: []typedesc.Value{
				typedesc.FloatValue(1), typedesc.FloatValue(0.5), typedesc.FloatValue(0), typedesc.FloatValue(1),
			}},
		},
		{
			name:     "integer",
			item:     schema.TypeInteger,
			def:      []any{3.0, 1.0, 2.0},
			wantType: typedesc.ArrayOf(typedesc.Scalar(typedesc.KindInt)),
			want: typedesc.ArrayValue{Elem: typedesc.KindInt, Items: []typedesc.Value{
				typedesc.IntValue(3), typedesc.IntValue(1), typedesc.IntValue(2),
			}},
		},
		{
			name:     "boolean",
			item:     schema.TypeBoolean,
			def:      []any{true, false},
			wantType: typedesc.ArrayOf(typedesc.Scalar(typedesc.KindBool)),
			want: typedesc.ArrayValue{Elem: typedesc.KindBool, Items: []typedesc.Value{
				typedesc.BoolValue(true), typedesc.BoolValue(false),
			}},
		},
		{
			name:     "string",
			item:     schema.TypeString,
			def:      []any{"b", "a"},
			wantType: typedesc.ArrayOf(typedesc.Scalar(typedesc.KindString)),
			want: typedesc.ArrayValue{Elem: typedesc.KindString, Items: []typedesc.Value{
				typedesc.StringValue("b"), typedesc.StringValue("a"),
			}},
		},
		{
			name:     "empty list",
			item:     schema.TypeString,
			def:      []any{},
			wantType: typedesc.ArrayOf(typedesc.Scalar(typedesc.KindString)),
			want:     typedesc.ArrayValue{Elem: typedesc.KindString, Items: []typedesc.Value{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := arrayOf(&schema.Node{Type: tags(tt.item)})
			node.Default = tt.def

			desc, err := newTestResolver().Resolve("Value", node)
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, desc.Type)
			assert.Equal(t, tt.want, desc.Default)
		})
	}
}

func TestArray_InvalidDefault(t *testing.T) {
	r := newTestResolver()

	node := arrayOf(&schema.Node{Type: tags(schema.TypeNumber)})
	node.Default = 1.0
	_, err := r.Resolve("Scale", node)
	requireKind(t, err, InvalidDefault)

	node = arrayOf(&schema.Node{Type: tags(schema.TypeBoolean)})
	node.Default = []any{true, "maybe"}
	_, err = r.Resolve("Flags", node)
	requireKind(t, err, InvalidDefault)
}

func TestArray_Objects(t *testing.T) {
	r := newTestResolver()

	desc, err := r.Resolve("Primitives", arrayOf(&schema.Node{Type: tags(schema.TypeObject), Title: "Mesh Primitive"}))
	require.NoError(t, err)
	assert.Equal(t, typedesc.ArrayOf(typedesc.Opaque()), desc.Type)

	node := arrayOf(&schema.Node{Type: tags(schema.TypeObject)})
	node.Default = []any{map[string]any{}}
	_, err = r.Resolve("Primitives", node)
	re := requireKind(t, err, NotImplemented)
	assert.Equal(t, "array of object with default", re.Shape)
}

func TestArray_UnsupportedItems(t *testing.T) {
	r := newTestResolver()

	_, err := r.Resolve("Matrix", arrayOf(&schema.Node{Type: tags(schema.TypeArray)}))
	re := requireKind(t, err, NotImplemented)
	assert.Equal(t, "array of array", re.Shape)

	_, err = r.Resolve("Nodes", arrayOf(&schema.Node{Type: schema.TypeList{{Name: "node.schema.json", IsReference: true}}}))
	requireKind(t, err, NotImplemented)
}
