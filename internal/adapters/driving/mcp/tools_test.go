package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/promptmap/internal/core/domain"
)

func newTestServer(t *testing.T, svc *mockMindMapService) *Server {
	t.Helper()
	server, err := NewServer(&Ports{MindMap: svc})
	require.NoError(t, err)
	return server
}

func TestServer_handleGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("returns mind map data", func(t *testing.T) {
		svc := &mockMindMapService{data: &domain.MindMapData{
			Nodes: []domain.MindMapNode{{ID: domain.MainNodeID, Data: domain.NodeData{Label: "Gravity", IsMain: true}}},
		}}
		server := newTestServer(t, svc)

		_, output, err := server.handleGenerate(ctx, nil, PromptInput{Prompt: "gravity", Mode: "local"})

		require.NoError(t, err)
		require.Len(t, output.Nodes, 1)
		assert.Equal(t, "Gravity", output.Nodes[0].Data.Label)
		assert.Equal(t, "gravity", svc.lastPrompt)
		assert.Equal(t, domain.GenerationModeLocal, svc.lastMode)
	})

	t.Run("empty prompt error is returned", func(t *testing.T) {
		server := newTestServer(t, &mockMindMapService{err: domain.ErrEmptyInput})

		_, _, err := server.handleGenerate(ctx, nil, PromptInput{})

		assert.ErrorIs(t, err, domain.ErrEmptyInput)
	})
}

func TestServer_handleAnalyze(t *testing.T) {
	svc := &mockMindMapService{analysis: &domain.Analysis{
		MainConcept: "Sourdough",
		PromptType:  domain.PromptTypeHowTo,
		Topics:      []domain.Topic{{Name: "Steps"}},
	}}
	server := newTestServer(t, svc)

	_, output, err := server.handleAnalyze(context.Background(), nil, PromptInput{Prompt: "how to bake sourdough"})

	require.NoError(t, err)
	assert.Equal(t, "Sourdough", output.MainConcept)
	assert.Equal(t, domain.PromptTypeHowTo, output.PromptType)
	assert.Equal(t, domain.GenerationMode(""), svc.lastMode)
}

func TestServer_handleClassify(t *testing.T) {
	svc := &mockMindMapService{classification: &domain.Classification{
		PromptType:  domain.PromptTypeComparison,
		Domain:      domain.DomainTechnology,
		MainConcept: "Python vs JavaScript",
	}}
	server := newTestServer(t, svc)

	_, output, err := server.handleClassify(context.Background(), nil, ClassifyInput{Prompt: "Python vs JavaScript"})

	require.NoError(t, err)
	assert.Equal(t, domain.PromptTypeComparison, output.PromptType)
	assert.Equal(t, "Python vs JavaScript", output.MainConcept)
}
