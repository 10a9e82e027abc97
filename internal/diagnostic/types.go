package diagnostic

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"schema-typegen/internal/common"
)

// Well-known codes for reports that do not originate from a resolution error.
const (
	CodeOpaque      = "opaque_fallback"
	CodeEnum        = "enum_synthesized"
	CodeUnspecified = "error"
)

// Diagnostics holds every report produced while resolving a schema.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic is one report.
type Diagnostic struct {
	Severity Severity
	// Code is the machine-readable category, e.g. "not_implemented".
	Code    string
	Message string
	// Schema is the title of the schema document being resolved.
	Schema string
	// Property is the property name within Schema (if any).
	Property string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// Severity of a report.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Coded is implemented by errors that carry a diagnostic code.
type Coded interface {
	error
	Code() string
}

// Suggester is implemented by errors that offer alternatives to a rejected value.
type Suggester interface {
	error
	Alternatives() []string
}

// AddFailure records err as an error report. The code is taken from the first
// Coded error in the chain.
func (d *Diagnostics) AddFailure(err error, schema, property string) {
	if err == nil {
		return
	}

	code := CodeUnspecified

	var coded Coded
	if errors.As(err, &coded) {
		code = coded.Code()
	}

	d.add(SeverityError, code, err.Error(), schema, property)

	var suggester Suggester
	if errors.As(err, &suggester) {
		d.Errors[len(d.Errors)-1].Suggestions = suggester.Alternatives()
	}
}

// AddError adds an error report.
func (d *Diagnostics) AddError(code, message, schema, property string) {
	d.add(SeverityError, code, message, schema, property)
}

// AddWarning adds a warning report.
func (d *Diagnostics) AddWarning(code, message, schema, property string) {
	d.add(SeverityWarning, code, message, schema, property)
}

// AddInfo adds an info report.
func (d *Diagnostics) AddInfo(code, message, schema, property string) {
	d.add(SeverityInfo, code, message, schema, property)
}

func (d *Diagnostics) add(sev Severity, code, message, schema, property string) {
	diag := Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  message,
		Schema:   schema,
		Property: property,
	}

	switch sev {
	case SeverityError:
		d.Errors = append(d.Errors, diag)
	case SeverityWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// HasErrors returns true if there are any error reports.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge appends all reports of other.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// CountByCode returns how many error reports carry each code.
func (d *Diagnostics) CountByCode() map[string]int {
	out := make(map[string]int)
	for _, e := range d.Errors {
		out[e.Code]++
	}

	return out
}

// All returns every report ordered by severity (errors first), then schema and property.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)
	all = append(all, d.Infos...)

	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Severity != all[j].Severity {
			return all[i].Severity > all[j].Severity
		}

		if all[i].Schema != all[j].Schema {
			return all[i].Schema < all[j].Schema
		}

		return all[i].Property < all[j].Property
	})

	return all
}

// Err returns a combined error from all error reports, or nil.
func (d *Diagnostics) Err() error {
	if !d.HasErrors() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String formats the report as "[schema] property: [code] message (did you mean ...?)".
func (d Diagnostic) String() string {
	var prefix []string
	if d.Schema != "" {
		prefix = append(prefix, "["+d.Schema+"]")
	}

	if d.Property != "" {
		prefix = append(prefix, d.Property)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
