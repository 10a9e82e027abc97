package resolve

import "github.com/iancoleman/strcase"

// Namer derives a type name from a schema title.
type Namer func(title string) string

// TitleName is the default Namer: "accessor sparse" becomes "AccessorSparse".
func TitleName(title string) string {
	return strcase.ToCamel(title)
}

// enumName is the name of the enum synthesized for a node resolved under name.
func enumName(name string) string {
	return name + "Enum"
}
