package domain

const (
	// Placeholder marks where the encoded payload is inserted into a format template.
	Placeholder = "{}"

	// DefaultFormat emits the payload on its own.
	DefaultFormat = Placeholder

	// MaskedValue replaces the value of a masked variable.
	MaskedValue = "***"
)
