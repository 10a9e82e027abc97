package registry

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

const (
	enumTag   = "enum"
	nameAttr  = "name"
	valueAttr = "value"
)

// Extract parses a registry document and collects every <enum> element that
// carries at least two attributes including name and value. Names have prefix
// stripped. When several names share a value, the last one in document order wins.
func Extract(data []byte, prefix string) (*Registry, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("failed to parse registry document: %w", err)
	}

	if doc.Root() == nil {
		return nil, errors.New("registry document has no root element")
	}

	symbols := make(map[int64]string)
	if err := extractEnumValues(symbols, &doc.Element, prefix); err != nil {
		return nil, err
	}

	return &Registry{symbols: symbols}, nil
}

// extractEnumValues walks the tree depth-first, children before their parent.
func extractEnumValues(values map[int64]string, parent *etree.Element, prefix string) error {
	for _, el := range parent.ChildElements() {
		if err := extractEnumValues(values, el, prefix); err != nil {
			return err
		}

		if el.Space != "" || el.Tag != enumTag || len(el.Attr) < 2 {
			continue
		}

		var (
			name     string
			value    int64
			hasName  bool
			hasValue bool
		)

		for _, attr := range el.Attr {
			if attr.Space != "" {
				continue
			}

			switch attr.Key {
			case valueAttr:
				v, err := ParseValue(attr.Value)
				if err != nil {
					return err
				}

				value, hasValue = v, true
			case nameAttr:
				name, hasName = attr.Value, true
			}
		}

		if hasName && hasValue {
			values[value] = strings.TrimPrefix(name, prefix)
		}
	}

	return nil
}

// ParseValue parses a constant as decimal, falling back to hexadecimal with
// an optional 0x prefix. Hexadecimal values are read as 64-bit two's complement.
func ParseValue(s string) (int64, error) {
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v, nil
	}

	digits := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")

	u, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid enum value %q: %w", s, err)
	}

	return int64(u), nil
}
