package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"slices"
	"sort"
	"text/template"

	"github.com/iancoleman/strcase"

	"schema-typegen/internal/typedesc"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the name of the generated package.
	PackageName string
	// OutputDir is where unformatted sidecars are written when formatting fails.
	OutputDir string
	// GenerateComments copies schema descriptions into doc comments.
	GenerateComments bool
	// StubMissingTypes emits empty structs for referenced object types that
	// are not part of the generated set.
	StubMissingTypes bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		PackageName:      "schema",
		OutputDir:        "./generated",
		GenerateComments: true,
		StubMissingTypes: true,
	}
}

// TypeSpec is one schema to render.
type TypeSpec struct {
	// Name is the Go type name of the struct.
	Name        string
	Description string
	Properties  []Property
}

// Property is one resolved property of a TypeSpec.
type Property struct {
	// JSONName is the property name as it appears in the document.
	JSONName    string
	Description string
	Required    bool
	Descriptor  *typedesc.Descriptor
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "accessor_sparse.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generator renders TypeSpecs into Go files.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// Generate renders one file per spec, plus a stub file for referenced but
// ungenerated object types when enabled.
func (g *Generator) Generate(specs []TypeSpec) ([]GeneratedFile, error) {
	files := make([]GeneratedFile, 0, len(specs)+1)
	declared := make(map[string]struct{}, len(specs))
	referenced := make(map[string]struct{})

	for _, spec := range specs {
		if spec.Name == "" {
			return nil, errors.New("type spec without a name")
		}

		if _, dup := declared[spec.Name]; dup {
			return nil, fmt.Errorf("type %s declared twice", spec.Name)
		}

		declared[spec.Name] = struct{}{}
	}

	for i := range specs {
		spec := &specs[i]

		for _, p := range spec.Properties {
			if p.Descriptor != nil {
				collectObjects(p.Descriptor.Type, referenced)
			}
		}

		file, err := g.generateSpec(spec)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", spec.Name, err)
		}

		files = append(files, *file)
	}

	var missing []string

	for name := range referenced {
		if _, ok := declared[name]; !ok {
			missing = append(missing, name)
		}
	}

	if g.config.StubMissingTypes && len(missing) > 0 {
		sort.Strings(missing)

		file, err := g.generateMissingTypes(missing)
		if err != nil {
			return nil, fmt.Errorf("generating missing types: %w", err)
		}

		files = append(files, *file)
	}

	return files, nil
}

func (g *Generator) generateSpec(spec *TypeSpec) (*GeneratedFile, error) {
	data, err := g.buildFileData(spec)
	if err != nil {
		return nil, err
	}

	return g.render(typeTemplate, data.Filename, data)
}

func (g *Generator) generateMissingTypes(names []string) (*GeneratedFile, error) {
	data := &missingTypesData{
		PackageName: g.config.PackageName,
		Names:       names,
	}

	return g.render(missingTypesTemplate, "missing_types.go", data)
}

func (g *Generator) render(tmpl *template.Template, filename string, data any) (*GeneratedFile, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, filename, buf.Bytes())
		}

		return &GeneratedFile{
			Filename: filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w", err)
	}

	return &GeneratedFile{
		Filename: filename,
		Content:  formatted,
	}, nil
}

func (g *Generator) buildFileData(spec *TypeSpec) (*fileData, error) {
	data := &fileData{
		PackageName: g.config.PackageName,
		Filename:    strcase.ToSnake(spec.Name) + ".go",
		TypeName:    spec.Name,
	}

	if g.config.GenerateComments {
		data.Doc = docLines(spec.Description)
	}

	props := slices.Clone(spec.Properties)
	sort.SliceStable(props, func(i, j int) bool { return props[i].JSONName < props[j].JSONName })

	seen := make(map[string]string, len(props))

	for _, p := range props {
		if p.Descriptor == nil {
			return nil, fmt.Errorf("property %s has no descriptor", p.JSONName)
		}

		fieldName := identifier(p.JSONName)
		if prev, dup := seen[fieldName]; dup {
			return nil, fmt.Errorf("properties %s and %s map to field %s", prev, p.JSONName, fieldName)
		}

		seen[fieldName] = p.JSONName

		if decl := p.Descriptor.Dependent; decl != nil {
			data.Enums = append(data.Enums, buildEnum(decl))
		}

		field := fieldData{
			Name: fieldName,
			Type: fieldTypeString(p.Descriptor.Type, p.Required),
			Tag:  structTag(p.JSONName, p.Required, p.Descriptor.Constraint),
		}

		if g.config.GenerateComments {
			field.Doc = docLines(p.Description)
		}

		data.Fields = append(data.Fields, field)

		if p.Descriptor.Default != nil {
			data.Defaults = append(data.Defaults, defaultData{
				Field: fieldName,
				Value: valueLiteral(p.Descriptor.Default),
			})
		}
	}

	return data, nil
}

func buildEnum(decl *typedesc.EnumDecl) enumData {
	e := enumData{
		Name:       decl.Name,
		Underlying: scalarTypeString(decl.Underlying),
	}

	for i, m := range decl.Members {
		c := constData{Name: enumConstName(decl.Name, m.Name)}

		switch {
		case decl.Underlying == typedesc.KindString:
			c.Value = typedesc.StringValue(m.Name).String()
		case m.Value != nil:
			c.Value = typedesc.IntValue(*m.Value).String()
		default:
			c.Value = typedesc.IntValue(int32(i)).String()
		}

		e.Consts = append(e.Consts, c)
	}

	return e
}

// collectObjects records every object type name reachable from t.
func collectObjects(t typedesc.Type, into map[string]struct{}) {
	switch {
	case t.Kind == typedesc.KindObject:
		into[t.Name] = struct{}{}
	case t.Kind.IsContainer() && t.Elem != nil:
		collectObjects(*t.Elem, into)
	}
}
