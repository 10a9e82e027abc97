package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schema-typegen/internal/schema"
	"schema-typegen/internal/typedesc"
)

func TestCoerce_RejectsMismatchedKinds(t *testing.T) {
	tests := []struct {
		name string
		conv converter
		in   any
	}{
		{name: "bool from number", conv: toBool, in: 5.0},
		{name: "bool from string", conv: toBool, in: "true"},
		{name: "int from fraction", conv: toInt, in: 2.9},
		{name: "int from string", conv: toInt, in: "010"},
		{name: "int from bool", conv: toInt, in: true},
		{name: "int out of range", conv: toInt, in: 1e19},
		{name: "float from string", conv: toFloat, in: "0.5"},
		{name: "float from bool", conv: toFloat, in: false},
		{name: "string from number", conv: toString, in: 1.0},
		{name: "string from bool", conv: toString, in: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			val, err := tt.conv(tt.in)
			require.Error(t, err)
			assert.Nil(t, val)
		})
	}
}

func TestCoerce_AcceptsMatchingKinds(t *testing.T) {
	tests := []struct {
		name string
		conv converter
		in   any
		want typedesc.Value
	}{
		{name: "bool", conv: toBool, in: true, want: typedesc.BoolValue(true)},
		{name: "integral float", conv: toInt, in: 3.0, want: typedesc.IntValue(3)},
		{name: "negative integral", conv: toInt, in: -7.0, want: typedesc.IntValue(-7)},
		{name: "go int", conv: toInt, in: 12, want: typedesc.IntValue(12)},
		{name: "float", conv: toFloat, in: 0.25, want: typedesc.FloatValue(0.25)},
		{name: "float from go int", conv: toFloat, in: 2, want: typedesc.FloatValue(2)},
		{name: "string", conv: toString, in: "x", want: typedesc.StringValue("x")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			val, err := tt.conv(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, val)
		})
	}
}

func TestResolve_WrongKindDefaultsAndMembers(t *testing.T) {
	tests := []struct {
		name string
		node *schema.Node
		want ErrorKind
	}{
		{
			name: "fractional integer enum member",
			node: &schema.Node{Type: tags(schema.TypeInteger), Enum: []any{1.7}},
			want: NotImplemented,
		},
		{
			name: "string integer enum member",
			node: &schema.Node{Type: tags(schema.TypeInteger), Enum: []any{"1"}},
			want: NotImplemented,
		},
		{
			name: "numeric string enum member",
			node: &schema.Node{Type: tags(schema.TypeString), Enum: []any{1.0, "a"}},
			want: NotImplemented,
		},
		{
			name: "boolean default from number",
			node: &schema.Node{Type: tags(schema.TypeBoolean), Default: 5.0},
			want: InvalidDefault,
		},
		{
			name: "integer default from octal-looking string",
			node: &schema.Node{Type: tags(schema.TypeInteger), Default: "010"},
			want: InvalidDefault,
		},
		{
			name: "fractional integer default",
			node: &schema.Node{Type: tags(schema.TypeInteger), Default: 2.5},
			want: InvalidDefault,
		},
		{
			name: "string default from number",
			node: &schema.Node{Type: tags(schema.TypeString), Default: 3.0},
			want: InvalidDefault,
		},
		{
			name: "string enum default from number",
			node: &schema.Node{Type: tags(schema.TypeString), Enum: []any{"1"}, Default: 1.0},
			want: InvalidDefault,
		},
		{
			name: "fractional integer enum default",
			node: &schema.Node{Type: tags(schema.TypeInteger), Enum: []any{1.0}, Default: 1.2},
			want: InvalidDefault,
		},
		{
			name: "fractional integer array default",
			node: func() *schema.Node {
				n := arrayOf(&schema.Node{Type: tags(schema.TypeInteger)})
				n.Default = []any{2.9}
				return n
			}(),
			want: InvalidDefault,
		},
		{
			name: "string array default",
			node: func() *schema.Node {
				n := arrayOf(&schema.Node{Type: tags(schema.TypeString)})
				n.Default = "a"
				return n
			}(),
			want: InvalidDefault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestResolver().Resolve("Value", tt.node)
			requireKind(t, err, tt.want)
		})
	}
}
