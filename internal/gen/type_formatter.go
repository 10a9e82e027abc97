package gen

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"

	"schema-typegen/internal/common"
	"schema-typegen/internal/typedesc"
)

// fieldTypeString returns the Go type of a struct field. Optional object
// references become pointers.
func fieldTypeString(t typedesc.Type, required bool) string {
	if t.Kind == typedesc.KindObject && !required {
		return "*" + typeString(t)
	}

	return typeString(t)
}

// typeString returns the Go spelling of a resolved type.
func typeString(t typedesc.Type) string {
	if t.Kind.IsNamed() {
		return t.Name
	}

	switch t.Kind {
	case typedesc.KindArray:
		return "[]" + elemString(t)
	case typedesc.KindMap:
		return "map[string]" + elemString(t)
	default:
		return scalarTypeString(t.Kind)
	}
}

func elemString(t typedesc.Type) string {
	if t.Elem == nil {
		return common.InterfaceTypeStr
	}

	return typeString(*t.Elem)
}

var scalarTypes = map[typedesc.Kind]string{
	typedesc.KindBool:   "bool",
	typedesc.KindInt:    "int32",
	typedesc.KindFloat:  "float32",
	typedesc.KindString: "string",
}

func scalarTypeString(k typedesc.Kind) string {
	if !k.IsScalar() {
		return common.InterfaceTypeStr
	}

	return scalarTypes[k]
}

// valueLiteral returns a Go expression for a default value.
func valueLiteral(v typedesc.Value) string {
	switch val := v.(type) {
	case typedesc.EnumMemberRef:
		return enumConstName(val.Enum, val.Member)
	case typedesc.ArrayValue:
		parts := make([]string, len(val.Items))
		for i, item := range val.Items {
			parts[i] = valueLiteral(item)
		}

		return "[]" + scalarTypeString(val.Elem) + "{" + strings.Join(parts, ", ") + "}"
	default:
		return v.String()
	}
}

// structTag renders the json tag and, when present, the schema tag.
func structTag(jsonName string, required bool, c typedesc.Constraint) string {
	tag := jsonName
	if !required {
		tag += ",omitempty"
	}

	out := fmt.Sprintf("json:%q", tag)

	if rules := constraintRules(c); rules != "" {
		out += fmt.Sprintf(" schema:%q", rules)
	}

	return "`" + out + "`"
}

// constraintRules renders a constraint block as comma-separated rules, e.g.
// "min=0,xmax=1" or "minItems=1,maxItems=4".
func constraintRules(c typedesc.Constraint) string {
	var rules []string

	switch cc := c.(type) {
	case *typedesc.NumberConstraint:
		if cc.HasMinimum {
			rules = append(rules, fmt.Sprintf("%s=%g", boundName("min", cc.ExclusiveMinimum), cc.Minimum))
		}

		if cc.HasMaximum {
			rules = append(rules, fmt.Sprintf("%s=%g", boundName("max", cc.ExclusiveMaximum), cc.Maximum))
		}
	case *typedesc.ArrayConstraint:
		if cc.MinItems >= 0 {
			rules = append(rules, fmt.Sprintf("minItems=%d", cc.MinItems))
		}

		if cc.MaxItems >= 0 {
			rules = append(rules, fmt.Sprintf("maxItems=%d", cc.MaxItems))
		}

		if cc.ItemMinLength > 0 {
			rules = append(rules, fmt.Sprintf("minLength=%d", cc.ItemMinLength))
		}

		if cc.ItemMaxLength > 0 {
			rules = append(rules, fmt.Sprintf("maxLength=%d", cc.ItemMaxLength))
		}
	}

	return strings.Join(rules, ",")
}

func boundName(base string, exclusive bool) string {
	if exclusive {
		return "x" + base
	}

	return base
}

func enumConstName(enum, member string) string {
	return enum + identifier(member)
}

// identifier turns an arbitrary schema token into an exported Go identifier.
// All-caps tokens such as registry symbols are lowered first so that
// "UNSIGNED_BYTE" becomes "UnsignedByte".
func identifier(s string) string {
	if isAllUpper(s) {
		s = strings.ToLower(s)
	}

	s = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}

		return '_'
	}, s)

	id := strcase.ToCamel(s)

	switch {
	case id == "":
		return "Empty"
	case unicode.IsDigit(rune(id[0])):
		return "V" + id
	default:
		return id
	}
}

func isAllUpper(s string) bool {
	hasLetter := false

	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}

		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}

	return hasLetter
}

// docLines splits a description into comment lines.
func docLines(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	return strings.Split(s, "\n")
}
