package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/promptmap/internal/core/domain"
)

// Test helper functions in settings.go

func TestMaskAPIKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Short key",
			input:    "abc123",
			expected: "****",
		},
		{
			name:     "Exactly 8 chars",
			input:    "12345678",
			expected: "****",
		},
		{
			name:     "Long key",
			input:    "sk-1234567890abcdef",
			expected: "sk-1...cdef",
		},
		{
			name:     "Very long key",
			input:    "sk-proj-1234567890abcdefghijklmnop",
			expected: "sk-p...mnop",
		},
		{
			name:     "Empty key",
			input:    "",
			expected: "****",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := maskAPIKey(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseChoice(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		maxVal     int
		defaultVal int
		expected   int
	}{
		{
			name:       "Empty input returns default",
			input:      "",
			maxVal:     5,
			defaultVal: 1,
			expected:   1,
		},
		{
			name:       "Valid choice within range",
			input:      "3",
			maxVal:     5,
			defaultVal: 1,
			expected:   3,
		},
		{
			name:       "Choice below minimum returns default",
			input:      "0",
			maxVal:     5,
			defaultVal: 1,
			expected:   1,
		},
		{
			name:       "Choice above maximum returns default",
			input:      "6",
			maxVal:     5,
			defaultVal: 1,
			expected:   1,
		},
		{
			name:       "Invalid input returns default",
			input:      "abc",
			maxVal:     5,
			defaultVal: 2,
			expected:   2,
		},
		{
			name:       "Negative number returns default",
			input:      "-1",
			maxVal:     5,
			defaultVal: 1,
			expected:   1,
		},
		{
			name:       "Whitespace returns default",
			input:      "   ",
			maxVal:     5,
			defaultVal: 1,
			expected:   1,
		},
		{
			name:       "Maximum value is valid",
			input:      "5",
			maxVal:     5,
			defaultVal: 1,
			expected:   5,
		},
		{
			name:       "Minimum value is valid",
			input:      "1",
			maxVal:     5,
			defaultVal: 3,
			expected:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := parseChoice(tt.input, tt.maxVal, tt.defaultVal)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestSettingsCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0, len(settingsCmd.Commands()))
	for _, c := range settingsCmd.Commands() {
		names = append(names, c.Name())
	}

	assert.ElementsMatch(t, []string{"show", "wizard", "mode", "llm"}, names)
}

func TestSettingsCmd_ErrorsWithoutService(t *testing.T) {
	old := settingsService
	settingsService = nil
	defer func() { settingsService = old }()

	for _, args := range [][]string{{"settings"}, {"settings", "wizard"}, {"settings", "mode", "local"}, {"settings", "llm"}} {
		_, err := execute(t, "", args...)
		require.Error(t, err, args)
		assert.Contains(t, err.Error(), "settings service not configured")
	}
}

func TestSettingsShow(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "", "settings", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "[Generation]")
	assert.Contains(t, out, "Structured")
	assert.Contains(t, out, "Provider: (not set)")
	assert.Contains(t, out, "Status: not configured")
	assert.Contains(t, out, "Address: :8080")
}

func TestSettingsMode(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		stdin   string
		want    domain.GenerationMode
		wantErr string
	}{
		{name: "argument", args: []string{"local"}, want: domain.GenerationModeLocal},
		{name: "interactive", stdin: "4\n", want: domain.GenerationModeSimple},
		{name: "interactive invalid", stdin: "9\n", wantErr: "invalid selection"},
		{name: "invalid argument", args: []string{"nope"}, wantErr: `invalid mode "nope"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanup := setupTestServices()
			defer cleanup()

			_, err := execute(t, tt.stdin, append([]string{"settings", "mode"}, tt.args...)...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)

			s, err := settingsService.Get()
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Generation.Mode)
		})
	}
}

func TestSettingsMode_NoteWhenLLMMissing(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "", "settings", "mode", "assisted")

	require.NoError(t, err)
	assert.Contains(t, out, "runs locally")
}

func TestSettingsLLM_Ollama(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	// provider 2 = Ollama, default model, default URL
	out, err := execute(t, "2\n\n\n", "settings", "llm")

	require.NoError(t, err)
	assert.Contains(t, out, "Validating configuration... OK")

	s, err := settingsService.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.AIProviderOllama, s.LLM.Provider)
	assert.Equal(t, "llama3.2", s.LLM.Model)
	assert.Equal(t, "http://localhost:11434", s.LLM.BaseURL)
}

func TestSettingsLLM_APIKeyFromInput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	// provider 3 = OpenAI, custom model, key typed on stdin
	_, err := execute(t, "3\ngpt-4o\nsk-test-key-123\n", "settings", "llm")

	require.NoError(t, err)
	s, err := settingsService.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.AIProviderOpenAI, s.LLM.Provider)
	assert.Equal(t, "gpt-4o", s.LLM.Model)
	assert.Equal(t, "sk-test-key-123", s.LLM.APIKey)
}

func TestSettingsWizard_LocalMode(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	// mode 3 = local, no LLM step
	out, err := execute(t, "3\n", "settings", "wizard")

	require.NoError(t, err)
	assert.Contains(t, out, "Step 2: LLM Provider (skipped)")
	assert.Contains(t, out, "All settings are valid and saved.")
}

func TestSettingsWizard_SkipProvider(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "1\nn\n", "settings", "wizard")

	require.NoError(t, err)
	assert.Contains(t, out, "Configure a provider now?")
	assert.Contains(t, out, "Warning:")
}
