package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// IsSingle returns true if the slice has exactly one element.
func IsSingle[S ~[]E, E any](s S) bool {
	return len(s) == 1
}

// IsMultiple returns true if the slice has more than one element.
func IsMultiple[S ~[]E, E any](s S) bool {
	return len(s) > 1
}

// IntOr dereferences p, falling back to def when p is nil.
func IntOr(p *int, def int) int {
	if p == nil {
		return def
	}

	return *p
}

// FloatOr dereferences p, falling back to def when p is nil.
func FloatOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}

	return *p
}
