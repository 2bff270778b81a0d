package driven

import "context"

// LLMService is the text-generation collaborator.
// It is an optional service - when nil, generation falls back to the local
// heuristic builders.
//
// Implementations may include:
//   - Google Gemini
//   - OpenAI
//   - Anthropic (Claude)
//   - Ollama (local models)
//   - A generate-content HTTP endpoint
//
// Generate returns a best-effort string. Callers treat an error and an
// empty reply the same way: no content, use the fallback.
type LLMService interface {
	// Generate produces text completion from a prompt.
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)

	// ModelName returns the name of the LLM model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight test request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// GenerateOptions configures text generation behaviour.
type GenerateOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic, 1.0 = creative).
	Temperature float64

	// StopWords are sequences that stop generation when encountered.
	StopWords []string

	// Topic and MainConcept describe what the request is about. Providers
	// that forward structured requests send them alongside the prompt.
	Topic       string
	MainConcept string
}
