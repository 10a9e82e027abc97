package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent case-folds s and drops everything that is not a letter or
// digit, so "UNSIGNED_BYTE", "unsignedByte" and "unsigned-byte" compare equal.
func NormalizeIdent(s string) string {
	var sb strings.Builder

	sb.Grow(len(s))

	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(unicode.ToLower(r))
		}
	}

	return sb.String()
}
