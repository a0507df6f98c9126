package ports

import "context"

// Generator is the external neural text backend (model loading, decoding,
// and everything behind it is the provider's problem). The core must work
// correctly with this capability entirely absent: callers check
// Available() and degrade to rule-based-only behavior when it is false.
type Generator interface {
	// Available reports whether the backend is reachable. Cheap to call.
	Available() bool

	// Translate asks the backend for a sentence-level translation.
	Translate(ctx context.Context, text string) (string, error)

	// Generate asks the backend for a free-form completion.
	Generate(ctx context.Context, prompt string) (string, error)
}
