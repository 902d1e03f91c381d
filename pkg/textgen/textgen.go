package textgen

import "context"

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Generator turns a prompt into the model's raw text reply.
type Generator interface {
	// Generate sends a single prompt and returns the reply text unchanged.
	// It makes one request and never retries.
	Generate(ctx context.Context, prompt string) (string, error)
}
