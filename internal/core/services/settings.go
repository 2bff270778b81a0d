package services

import (
	"fmt"
	"os"

	"github.com/custodia-labs/promptmap/internal/core/domain"
	"github.com/custodia-labs/promptmap/internal/core/ports/driven"
	"github.com/custodia-labs/promptmap/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyGenerationMode = "generation.mode"
	keyLLMProvider    = "llm.provider"
	keyLLMModel       = "llm.model"
	keyLLMBaseURL     = "llm.base_url"
	keyLLMAPIKey      = "llm.api_key"
	keyLLMRate        = "llm.rate_per_second"
	keyLLMCacheSize   = "llm.cache_size"
	keyMinDistance    = "layout.min_distance"
	keyServerAddr     = "server.addr"
)

// defaultOllamaURL is used when Ollama is selected without a base URL.
const defaultOllamaURL = "http://localhost:11434"

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	aiValidator driven.AIConfigValidator
	getenv      func(string) string
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore, aiValidator driven.AIConfigValidator) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		aiValidator: aiValidator,
		getenv:      os.Getenv,
	}
}

// Get retrieves current application settings. A provider key missing from
// the config is read from the provider's environment variable.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	provider := s.getProvider(defaults.LLM.Provider)
	settings := &domain.AppSettings{
		Generation: domain.GenerationSettings{
			Mode: s.getMode(defaults.Generation.Mode),
		},
		LLM: domain.LLMSettings{
			Provider:      provider,
			Model:         s.getString(keyLLMModel, domain.DefaultLLMModels()[provider]),
			BaseURL:       s.configStore.GetString(keyLLMBaseURL),
			APIKey:        s.apiKey(provider),
			RatePerSecond: s.getFloat(keyLLMRate, defaults.LLM.RatePerSecond),
			CacheSize:     s.getInt(keyLLMCacheSize, defaults.LLM.CacheSize),
		},
		Layout: domain.LayoutSettings{
			MinDistance: s.getFloat(keyMinDistance, defaults.Layout.MinDistance),
		},
		Server: domain.ServerSettings{
			Addr: s.getString(keyServerAddr, defaults.Server.Addr),
		},
	}

	return settings, nil
}

// Save persists application settings. A key that only came from the
// environment is not written to the config file.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	values := []struct {
		key   string
		value any
	}{
		{keyGenerationMode, settings.Generation.Mode.String()},
		{keyLLMProvider, settings.LLM.Provider.String()},
		{keyLLMModel, settings.LLM.Model},
		{keyLLMBaseURL, settings.LLM.BaseURL},
		{keyLLMRate, settings.LLM.RatePerSecond},
		{keyLLMCacheSize, settings.LLM.CacheSize},
		{keyMinDistance, settings.Layout.MinDistance},
		{keyServerAddr, settings.Server.Addr},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	if key := settings.LLM.APIKey; key != "" && !s.fromEnv(settings.LLM.Provider, key) {
		if err := s.configStore.Set(keyLLMAPIKey, key); err != nil {
			return fmt.Errorf("save %s: %w", keyLLMAPIKey, err)
		}
	}

	return nil
}

// SetGenerationMode updates the default generation mode.
func (s *SettingsService) SetGenerationMode(mode domain.GenerationMode) error {
	if !mode.IsValid() {
		return fmt.Errorf("%w: generation mode %q", domain.ErrInvalidInput, mode)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Generation.Mode = mode
	return s.Save(settings)
}

// SetLLMProvider configures the collaborator provider. An empty model uses
// the provider default; an empty API key may be supplied by the environment.
func (s *SettingsService) SetLLMProvider(provider domain.AIProvider, model, baseURL, apiKey string) error {
	if !provider.IsValid() {
		return fmt.Errorf("%w: LLM provider %q", domain.ErrInvalidInput, provider)
	}
	if apiKey == "" && provider.RequiresAPIKey() {
		apiKey = s.getenv(provider.APIKeyEnv())
		if apiKey == "" {
			return fmt.Errorf("%w: API key required for %s (or set %s)", domain.ErrInvalidInput, provider, provider.APIKeyEnv())
		}
	}

	switch {
	case provider == domain.AIProviderContentAPI && baseURL == "":
		return fmt.Errorf("%w: base URL required for %s", domain.ErrInvalidInput, provider)
	case provider.IsLocal() && baseURL == "":
		baseURL = defaultOllamaURL
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.LLM.Provider = provider
	settings.LLM.Model = model
	if model == "" {
		settings.LLM.Model = domain.DefaultLLMModels()[provider]
	}
	settings.LLM.BaseURL = baseURL
	settings.LLM.APIKey = apiKey

	return s.Save(settings)
}

// Validate checks if current settings are valid for the configured mode.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	if !settings.Generation.Mode.IsValid() {
		return fmt.Errorf("invalid generation mode: %s", settings.Generation.Mode)
	}
	if settings.Generation.Mode.RequiresLLM() && !settings.LLM.IsConfigured() {
		return fmt.Errorf(
			"generation mode %q works best with an LLM provider; without one it runs locally",
			settings.Generation.Mode.Description(),
		)
	}
	if settings.Layout.MinDistance < 0 {
		return fmt.Errorf("layout.min_distance must not be negative")
	}

	return nil
}

// RequiresLLM returns true if current mode needs a collaborator.
func (s *SettingsService) RequiresLLM() bool {
	settings, err := s.Get()
	if err != nil {
		return false
	}
	return settings.Generation.Mode.RequiresLLM()
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// ValidateLLMConfig validates the current LLM configuration by pinging the provider.
func (s *SettingsService) ValidateLLMConfig() error {
	if s.aiValidator == nil {
		return nil
	}
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return s.aiValidator.ValidateLLM(&settings.LLM)
}

func (s *SettingsService) apiKey(provider domain.AIProvider) string {
	if key := s.configStore.GetString(keyLLMAPIKey); key != "" {
		return key
	}
	if env := provider.APIKeyEnv(); env != "" {
		return s.getenv(env)
	}
	return ""
}

func (s *SettingsService) fromEnv(provider domain.AIProvider, key string) bool {
	if s.configStore.GetString(keyLLMAPIKey) != "" {
		return false
	}
	env := provider.APIKeyEnv()
	return env != "" && s.getenv(env) == key
}

func (s *SettingsService) getString(key, defaultVal string) string {
	if val := s.configStore.GetString(key); val != "" {
		return val
	}
	return defaultVal
}

// getInt and getFloat honour an explicit zero, which disables the feature.
func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetFloat(key)
}

func (s *SettingsService) getMode(defaultVal domain.GenerationMode) domain.GenerationMode {
	mode := domain.GenerationMode(s.configStore.GetString(keyGenerationMode))
	if !mode.IsValid() {
		return defaultVal
	}
	return mode
}

func (s *SettingsService) getProvider(defaultVal domain.AIProvider) domain.AIProvider {
	provider := domain.AIProvider(s.configStore.GetString(keyLLMProvider))
	if !provider.IsValid() {
		return defaultVal
	}
	return provider
}
