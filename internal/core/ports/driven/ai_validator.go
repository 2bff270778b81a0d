package driven

import "github.com/custodia-labs/promptmap/internal/core/domain"

// AIConfigValidator checks that saved LLM settings reach a live provider.
// The settings flow calls it after the user picks a provider.
type AIConfigValidator interface {
	// ValidateLLM returns nil when settings are empty or incomplete, and an
	// error wrapping domain.ErrLLMUnavailable when the provider does not
	// answer.
	ValidateLLM(settings *domain.LLMSettings) error
}
