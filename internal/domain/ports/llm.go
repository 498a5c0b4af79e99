// Package ports defines interfaces for external service communication.
package ports

import "context"

// LLMClient defines the interface for LLM completion.
type LLMClient interface {
	// Complete sends a single prompt and returns the raw model text.
	Complete(ctx context.Context, prompt string) (string, error)

	// Name returns the provider identifier (e.g. "gemini").
	Name() string
}
