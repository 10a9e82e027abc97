package common

// Shared placeholder strings.
const (
	UnknownStr       = "unknown"
	InterfaceTypeStr = "any"
)
