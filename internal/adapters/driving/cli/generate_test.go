package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/promptmap/internal/core/domain"
)

func TestGenerateCmd_Use(t *testing.T) {
	assert.Equal(t, "generate [prompt]", generateCmd.Use)
	assert.Equal(t, "Build a mind map from a prompt", generateCmd.Short)
}

func TestGenerateCmd_Flags(t *testing.T) {
	mode := generateCmd.Flags().Lookup("mode")
	require.NotNil(t, mode)
	assert.Equal(t, "m", mode.Shorthand)

	for _, name := range []string{"json", "analysis", "details"} {
		assert.NotNil(t, generateCmd.Flags().Lookup(name), name)
	}
}

func TestGenerateCmd_RequiresPrompt(t *testing.T) {
	_, err := execute(t, "", "generate")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arg(s)")
}

func TestGenerateCmd_ErrorsWithoutService(t *testing.T) {
	old := mindMapService
	mindMapService = nil
	defer func() { mindMapService = old }()

	_, err := execute(t, "", "generate", "photosynthesis")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "mind map service not configured")
}

func TestGenerateCmd_Outline(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "", "generate", "--mode", "local", "How", "to", "bake", "bread")

	require.NoError(t, err)
	assert.Contains(t, out, "Requirements")
	assert.Contains(t, out, "nodes,")
}

func TestGenerateCmd_JSON(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "", "generate", "--json", "-m", "simple", "quantum computing basics")
	require.NoError(t, err)

	var data domain.MindMapData
	require.NoError(t, json.Unmarshal([]byte(out), &data))
	require.NotEmpty(t, data.Nodes)
	assert.Equal(t, domain.MainNodeID, data.Nodes[0].ID)
}

func TestGenerateCmd_Analysis(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "", "generate", "--analysis", "Compare Python vs JavaScript")
	require.NoError(t, err)

	var a domain.Analysis
	require.NoError(t, json.Unmarshal([]byte(out), &a))
	assert.Equal(t, domain.PromptTypeComparison, a.PromptType)
}

func TestGenerateCmd_Stdin(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "What is entropy?\n", "generate", "--json", "-")
	require.NoError(t, err)

	var data domain.MindMapData
	require.NoError(t, json.Unmarshal([]byte(out), &data))
	assert.NotEmpty(t, data.Edges)
}

func TestGenerateCmd_EmptyStdin(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "   \n", "generate", "-")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmptyInput)
}

func TestGenerateCmd_InvalidMode(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "", "generate", "--mode", "fancy", "x")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid mode "fancy"`)
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.GenerationMode
		wantErr bool
	}{
		{"", "", false},
		{"local", domain.GenerationModeLocal, false},
		{"STRUCTURED", domain.GenerationModeStructured, false},
		{"bogus", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseMode(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
