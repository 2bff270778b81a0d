package domain

// GenerationMode defines how a prompt is turned into a mind map.
type GenerationMode string

// Available generation modes.
const (
	// GenerationModeLocal uses only the heuristic builders.
	GenerationModeLocal GenerationMode = "local"

	// GenerationModeAssisted asks the collaborator for concept sections,
	// falling back per slot to local content.
	GenerationModeAssisted GenerationMode = "assisted"

	// GenerationModeStructured asks the collaborator for a full outline,
	// falling back to assisted analysis.
	GenerationModeStructured GenerationMode = "structured"

	// GenerationModeSimple builds the word-circle fallback map.
	GenerationModeSimple GenerationMode = "simple"
)

// IsValid returns true if the generation mode is recognised.
func (m GenerationMode) IsValid() bool {
	switch m {
	case GenerationModeLocal, GenerationModeAssisted, GenerationModeStructured, GenerationModeSimple:
		return true
	default:
		return false
	}
}

// RequiresLLM returns true if this mode needs a collaborator to do
// anything beyond local analysis.
func (m GenerationMode) RequiresLLM() bool {
	return m == GenerationModeAssisted || m == GenerationModeStructured
}

// String returns the string representation.
func (m GenerationMode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m GenerationMode) Description() string {
	switch m {
	case GenerationModeLocal:
		return "Local (heuristic analysis only)"
	case GenerationModeAssisted:
		return "Assisted (LLM sections with local fallback)"
	case GenerationModeStructured:
		return "Structured (LLM outline, then assisted, then local)"
	case GenerationModeSimple:
		return "Simple (keyword circle)"
	default:
		return unknownDescription
	}
}

// AIProvider identifies a text-generation provider.
type AIProvider string

// Available AI providers.
const (
	// AIProviderOllama is local Ollama instance.
	AIProviderOllama AIProvider = "ollama"

	// AIProviderOpenAI is OpenAI cloud API.
	AIProviderOpenAI AIProvider = "openai"

	// AIProviderAnthropic is Anthropic cloud API.
	AIProviderAnthropic AIProvider = "anthropic"

	// AIProviderGemini is Google Gemini API.
	AIProviderGemini AIProvider = "gemini"

	// AIProviderContentAPI is a generate-content HTTP endpoint.
	AIProviderContentAPI AIProvider = "content_api"
)

// IsValid returns true if the AI provider is recognised.
func (p AIProvider) IsValid() bool {
	switch p {
	case AIProviderOllama, AIProviderOpenAI, AIProviderAnthropic, AIProviderGemini, AIProviderContentAPI:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if this provider needs an API key.
func (p AIProvider) RequiresAPIKey() bool {
	return p == AIProviderOpenAI || p == AIProviderAnthropic || p == AIProviderGemini
}

// RequiresBaseURL returns true if this provider needs an endpoint.
func (p AIProvider) RequiresBaseURL() bool {
	return p == AIProviderOllama || p == AIProviderContentAPI
}

// IsLocal returns true if this provider runs locally.
func (p AIProvider) IsLocal() bool {
	return p == AIProviderOllama
}

// APIKeyEnv returns the environment variable consulted when no key is
// stored in config.
func (p AIProvider) APIKeyEnv() string {
	switch p {
	case AIProviderOpenAI:
		return "OPENAI_API_KEY"
	case AIProviderAnthropic:
		return "ANTHROPIC_API_KEY"
	case AIProviderGemini:
		return "GEMINI_API_KEY"
	default:
		return ""
	}
}

// String returns the string representation.
func (p AIProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p AIProvider) Description() string {
	switch p {
	case AIProviderOllama:
		return "Ollama (local)"
	case AIProviderOpenAI:
		return "OpenAI (cloud)"
	case AIProviderAnthropic:
		return "Anthropic (cloud)"
	case AIProviderGemini:
		return "Google Gemini (cloud)"
	case AIProviderContentAPI:
		return "Generate-content endpoint (HTTP)"
	default:
		return unknownDescription
	}
}

// GenerationSettings holds generation behaviour configuration.
type GenerationSettings struct {
	// Mode is the default generation mode.
	Mode GenerationMode
}

// LLMSettings holds collaborator provider configuration.
type LLMSettings struct {
	// Provider is the LLM service provider.
	Provider AIProvider

	// Model is the LLM model name.
	Model string

	// BaseURL is the API endpoint (for Ollama and content_api).
	BaseURL string

	// APIKey is the API key (for cloud providers).
	APIKey string

	// RatePerSecond caps collaborator calls. Zero disables limiting.
	RatePerSecond float64

	// CacheSize is the number of replies kept in memory. Zero disables caching.
	CacheSize int
}

// IsConfigured returns true if the LLM provider is set up.
func (l LLMSettings) IsConfigured() bool {
	if !l.Provider.IsValid() {
		return false
	}
	if l.Provider.RequiresAPIKey() && l.APIKey == "" {
		return false
	}
	if l.Provider == AIProviderContentAPI && l.BaseURL == "" {
		return false
	}
	return true
}

// LayoutSettings holds graph layout configuration.
type LayoutSettings struct {
	// MinDistance is the relaxation threshold between nodes.
	MinDistance float64
}

// ServerSettings holds HTTP API configuration.
type ServerSettings struct {
	// Addr is the listen address for `promptmap serve`.
	Addr string
}

// AppSettings holds all application settings.
type AppSettings struct {
	Generation GenerationSettings
	LLM        LLMSettings
	Layout     LayoutSettings
	Server     ServerSettings
}

// Default values.
const (
	DefaultMinDistance   = 50.0
	DefaultServerAddr    = ":8080"
	DefaultRatePerSecond = 2.0
)

// DefaultAppSettings returns settings with sensible defaults.
// The LLM is left unconfigured; generation runs locally until a
// provider is set up.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Generation: GenerationSettings{
			Mode: GenerationModeStructured,
		},
		LLM: LLMSettings{
			RatePerSecond: DefaultRatePerSecond,
		},
		Layout: LayoutSettings{
			MinDistance: DefaultMinDistance,
		},
		Server: ServerSettings{
			Addr: DefaultServerAddr,
		},
	}
}

// AllGenerationModes returns all available generation modes.
func AllGenerationModes() []GenerationMode {
	return []GenerationMode{
		GenerationModeStructured,
		GenerationModeAssisted,
		GenerationModeLocal,
		GenerationModeSimple,
	}
}

// AllLLMProviders returns providers that support text generation.
func AllLLMProviders() []AIProvider {
	return []AIProvider{
		AIProviderGemini,
		AIProviderOllama,
		AIProviderOpenAI,
		AIProviderAnthropic,
		AIProviderContentAPI,
	}
}

// DefaultLLMModels returns default models for each LLM provider.
func DefaultLLMModels() map[AIProvider]string {
	return map[AIProvider]string{
		AIProviderGemini:    "gemini-1.5-flash",
		AIProviderOllama:    "llama3.2",
		AIProviderOpenAI:    "gpt-4o-mini",
		AIProviderAnthropic: "claude-3-5-sonnet-latest",
	}
}
