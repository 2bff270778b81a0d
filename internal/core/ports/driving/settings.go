package driving

import "github.com/custodia-labs/promptmap/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetGenerationMode updates the default generation mode.
	SetGenerationMode(mode domain.GenerationMode) error

	// SetLLMProvider configures the collaborator provider.
	SetLLMProvider(provider domain.AIProvider, model, baseURL, apiKey string) error

	// Validate checks if current settings are valid for the configured mode.
	Validate() error

	// RequiresLLM returns true if current mode needs a collaborator.
	RequiresLLM() bool

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// ValidateLLMConfig validates the current LLM configuration by pinging the provider.
	ValidateLLMConfig() error
}
