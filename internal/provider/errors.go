package provider

import "fmt"

// Kind classifies provider failures.
type Kind string

const (
	// KindConfig means the provider is not usable (missing key or endpoint).
	KindConfig Kind = "config"
	// KindRemote means the remote call failed (network, non-2xx status).
	KindRemote Kind = "remote"
	// KindFormat means the remote response did not have the expected shape.
	KindFormat Kind = "format"
)

// Error is a typed provider failure. Its string form is the error-value text
// handed back to callers in place of generated output, so the router layer
// can flatten it without losing the kind for callers that care.
type Error struct {
	Provider string
	Kind     Kind
	Detail   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s error: %s", e.Provider, e.Detail)
}
