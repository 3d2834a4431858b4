package provider

import "context"

// Generator is a minimal text-generation interface wrapping one remote provider.
type Generator interface {
	// ResolveModel maps a requested model id to the one this provider will
	// actually use. Requests naming a model from the other provider family
	// fall back to this provider's configured default.
	ResolveModel(requested string) string

	Generate(ctx context.Context, prompt string, opts Options) (string, error)
}

// Options carries per-call generation parameters.
type Options struct {
	Model       string
	System      string
	Temperature float64
	MaxTokens   int
}
