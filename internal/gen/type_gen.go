package gen

import "text/template"

// fileData holds everything the type template renders for one schema.
type fileData struct {
	PackageName string
	Filename    string
	TypeName    string
	Doc         []string
	Enums       []enumData
	Fields      []fieldData
	Defaults    []defaultData
}

type enumData struct {
	Name       string
	Underlying string
	Consts     []constData
}

type constData struct {
	Name  string
	Value string
}

type fieldData struct {
	Name string
	Type string
	Tag  string
	Doc  []string
}

type defaultData struct {
	Field string
	Value string
}

type missingTypesData struct {
	PackageName string
	Names       []string
}

var typeTemplate = template.Must(template.New("type").Parse(`// Code generated by schema-typegen. DO NOT EDIT.

package {{.PackageName}}
{{range .Enums}}
type {{.Name}} {{.Underlying}}

const (
{{- $enum := .Name}}
{{range .Consts}}	{{.Name}} {{$enum}} = {{.Value}}
{{end}})
{{end}}
{{range .Doc}}// {{.}}
{{end}}type {{.TypeName}} struct {
{{range .Fields}}{{range .Doc}}	// {{.}}
{{end}}	{{.Name}} {{.Type}} {{.Tag}}
{{end}}}

// New{{.TypeName}} returns a {{.TypeName}} with declared defaults applied.
func New{{.TypeName}}() *{{.TypeName}} {
	return &{{.TypeName}}{
{{range .Defaults}}		{{.Field}}: {{.Value}},
{{end}}	}
}
`))

var missingTypesTemplate = template.Must(template.New("missing_types").Parse(`// Code generated by schema-typegen. DO NOT EDIT.

package {{.PackageName}}
{{range .Names}}
// {{.}} is referenced by generated types but was not generated itself.
type {{.}} struct{}
{{end}}`))
