package diagnostic

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type codedErr struct {
	code        string
	suggestions []string
}

func (e codedErr) Error() string          { return "coded " + e.code }
func (e codedErr) Code() string           { return e.code }
func (e codedErr) Alternatives() []string { return e.suggestions }

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(42).String())
}

func TestAddFailure_UsesCodeFromChain(t *testing.T) {
	var d Diagnostics

	d.AddFailure(fmt.Errorf("wrapped: %w", codedErr{code: "not_implemented"}), "Accessor", "sparse")
	d.AddFailure(errors.New("plain"), "Accessor", "min")
	d.AddFailure(nil, "Accessor", "max")

	require.Len(t, d.Errors, 2)
	assert.Equal(t, "not_implemented", d.Errors[0].Code)
	assert.Equal(t, "wrapped: coded not_implemented", d.Errors[0].Message)
	assert.Equal(t, CodeUnspecified, d.Errors[1].Code)
	assert.True(t, d.HasErrors())
}

func TestAddFailure_Suggestions(t *testing.T) {
	var d Diagnostics

	d.AddFailure(codedErr{code: "invalid_default", suggestions: []string{"BLEND"}}, "Material", "alphaMode")

	require.Len(t, d.Errors, 1)
	assert.Equal(t, []string{"BLEND"}, d.Errors[0].Suggestions)
	assert.Equal(t, "[Material] alphaMode: [invalid_default] coded invalid_default (did you mean BLEND?)", d.Errors[0].String())
}

func TestDiagnostic_String(t *testing.T) {
	d := Diagnostic{Code: "invalid_default", Message: "bad", Schema: "Sampler", Property: "wrapS"}
	assert.Equal(t, "[Sampler] wrapS: [invalid_default] bad", d.String())

	assert.Equal(t, "bad", Diagnostic{Message: "bad"}.String())
	assert.Equal(t, "[Sampler]: bad", Diagnostic{Message: "bad", Schema: "Sampler"}.String())
}

func TestDiagnostics_ErrAndMerge(t *testing.T) {
	var d Diagnostics
	assert.NoError(t, d.Err())

	other := Diagnostics{}
	other.AddWarning(CodeOpaque, "resolved to opaque", "Mesh", "extras")
	other.AddError("missing_item_type", "no items", "Mesh", "weights")
	other.AddInfo(CodeEnum, "ModeEnum", "Mesh", "mode")

	d.Merge(other)

	require.Len(t, d.Warnings, 1)
	require.Len(t, d.Infos, 1)
	assert.EqualError(t, d.Err(), "[Mesh] weights: [missing_item_type] no items")
	assert.Equal(t, map[string]int{"missing_item_type": 1}, d.CountByCode())
}

func TestDiagnostics_AllOrdering(t *testing.T) {
	var d Diagnostics
	d.AddInfo(CodeEnum, "i", "A", "x")
	d.AddWarning(CodeOpaque, "w", "A", "y")
	d.AddError("e", "e2", "B", "a")
	d.AddError("e", "e1", "A", "z")

	all := d.All()
	require.Len(t, all, 4)
	assert.Equal(t, []string{"e1", "e2", "w", "i"}, []string{all[0].Message, all[1].Message, all[2].Message, all[3].Message})
}
