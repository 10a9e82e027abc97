package plan

import (
	"gopkg.in/yaml.v3"

	"schema-typegen/internal/gen"
)

// TypeSpecs converts the plan into generator input.
func (p *Plan) TypeSpecs() []gen.TypeSpec {
	specs := make([]gen.TypeSpec, 0, len(p.Types))

	for _, t := range p.Types {
		spec := gen.TypeSpec{
			Name:        t.Name,
			Description: t.Description,
		}

		for _, prop := range t.Properties {
			spec.Properties = append(spec.Properties, gen.Property{
				JSONName:    prop.JSONName,
				Description: prop.Description,
				Required:    prop.Required,
				Descriptor:  prop.Descriptor,
			})
		}

		specs = append(specs, spec)
	}

	return specs
}

// Report is a serializable summary of a plan.
type Report struct {
	Types       []TypeReport       `yaml:"types"`
	Diagnostics []DiagnosticReport `yaml:"diagnostics,omitempty"`
}

// TypeReport summarizes one resolved type.
type TypeReport struct {
	Name       string           `yaml:"name"`
	Source     string           `yaml:"source"`
	Properties []PropertyReport `yaml:"properties,omitempty"`
}

// PropertyReport summarizes one resolved property.
type PropertyReport struct {
	Name       string   `yaml:"name"`
	Type       string   `yaml:"type"`
	Default    string   `yaml:"default,omitempty"`
	Constraint string   `yaml:"constraint,omitempty"`
	Enum       []string `yaml:"enum,omitempty"`
}

// DiagnosticReport is one diagnostic line.
type DiagnosticReport struct {
	Severity string `yaml:"severity"`
	Code     string `yaml:"code"`
	Schema   string `yaml:"schema,omitempty"`
	Property string `yaml:"property,omitempty"`
	Message  string `yaml:"message"`
	// Suggestions are alternatives for a rejected value.
	Suggestions []string `yaml:"suggestions,omitempty"`
}

// ExportReport builds a Report from the plan.
func ExportReport(p *Plan) *Report {
	r := &Report{Types: make([]TypeReport, 0, len(p.Types))}

	for _, t := range p.Types {
		tr := TypeReport{Name: t.Name, Source: t.Source}

		for _, prop := range t.Properties {
			d := prop.Descriptor
			pr := PropertyReport{Name: prop.Name, Type: d.Type.String()}

			if d.Default != nil {
				pr.Default = d.Default.String()
			}

			if d.Constraint != nil {
				pr.Constraint = d.Constraint.String()
			}

			if d.Dependent != nil {
				pr.Enum = d.Dependent.MemberNames()
			}

			tr.Properties = append(tr.Properties, pr)
		}

		r.Types = append(r.Types, tr)
	}

	for _, d := range p.Diagnostics.All() {
		r.Diagnostics = append(r.Diagnostics, DiagnosticReport{
			Severity:    d.Severity.String(),
			Code:        d.Code,
			Schema:      d.Schema,
			Property:    d.Property,
			Message:     d.Message,
			Suggestions: d.Suggestions,
		})
	}

	return r
}

// ExportReportYAML renders the report as YAML.
func ExportReportYAML(p *Plan) ([]byte, error) {
	return yaml.Marshal(ExportReport(p))
}
