package resolve

import (
	"errors"
	"strings"

	"schema-typegen/internal/common"
)

// ErrorKind classifies resolution failures.
type ErrorKind int

const (
	_ ErrorKind = iota

	// UnsupportedShape - the node shape is not a resolvable type (including unexpanded references).
	UnsupportedShape
	// NotATypeSchema - the node carries no type information.
	NotATypeSchema
	// MissingItemType - an array node lacks an item type.
	MissingItemType
	// NotImplemented - a recognized but unsupported combination.
	NotImplemented
	// InvalidDefault - the default value does not fit the resolved type or enum.
	InvalidDefault
	// RegistryUnavailable - the symbol registry could not be fetched or parsed.
	RegistryUnavailable
	// UnknownSymbol - an integer enum value has no registry entry.
	UnknownSymbol
)

// Sentinels matched by errors.Is against an *Error of the corresponding kind.
var (
	ErrUnsupportedShape    = errors.New("unsupported schema shape")
	ErrNotATypeSchema      = errors.New("schema does not represent a type")
	ErrMissingItemType     = errors.New("array schema must contain an item type")
	ErrNotImplemented      = errors.New("not implemented")
	ErrInvalidDefault      = errors.New("invalid default value")
	ErrRegistryUnavailable = errors.New("symbol registry unavailable")
	ErrUnknownSymbol       = errors.New("enum value missing from symbol registry")
)

// String returns the snake_case kind name used as a diagnostic code.
func (k ErrorKind) String() string {
	switch k {
	case UnsupportedShape:
		return "unsupported_shape"
	case NotATypeSchema:
		return "not_a_type_schema"
	case MissingItemType:
		return "missing_item_type"
	case NotImplemented:
		return "not_implemented"
	case InvalidDefault:
		return "invalid_default"
	case RegistryUnavailable:
		return "registry_unavailable"
	case UnknownSymbol:
		return "unknown_symbol"
	default:
		return common.UnknownStr
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case UnsupportedShape:
		return ErrUnsupportedShape
	case NotATypeSchema:
		return ErrNotATypeSchema
	case MissingItemType:
		return ErrMissingItemType
	case NotImplemented:
		return ErrNotImplemented
	case InvalidDefault:
		return ErrInvalidDefault
	case RegistryUnavailable:
		return ErrRegistryUnavailable
	case UnknownSymbol:
		return ErrUnknownSymbol
	default:
		return nil
	}
}

// Error is a resolution failure.
type Error struct {
	Kind ErrorKind
	// Name is the nominal name the node was resolved under.
	Name string
	// Shape names the offending primitive or combination.
	Shape string
	// Err is the underlying cause, if any.
	Err error
	// Suggestions are close alternatives to a rejected value, best first.
	Suggestions []string
}

func (e *Error) Error() string {
	var sb strings.Builder

	if e.Name != "" {
		sb.WriteString(e.Name)
		sb.WriteString(": ")
	}

	if s := e.Kind.sentinel(); s != nil {
		sb.WriteString(s.Error())
	} else {
		sb.WriteString(e.Kind.String())
	}

	if e.Shape != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Shape)
		sb.WriteString(")")
	}

	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}

	return sb.String()
}

// Code returns the diagnostic code of the error's kind.
func (e *Error) Code() string {
	return e.Kind.String()
}

// Alternatives returns the suggestions attached to the error.
func (e *Error) Alternatives() []string {
	return e.Suggestions
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel of the error's kind.
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

// KindOf returns the kind of a resolution error.
func KindOf(err error) (ErrorKind, bool) {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind, true
	}

	return 0, false
}

func newError(kind ErrorKind, name, shape string, cause error) *Error {
	return &Error{Kind: kind, Name: name, Shape: shape, Err: cause}
}

func notImplemented(name, shape string) *Error {
	return newError(NotImplemented, name, shape, nil)
}
