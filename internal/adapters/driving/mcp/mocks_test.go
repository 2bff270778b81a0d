package mcp

import (
	"context"

	"github.com/custodia-labs/promptmap/internal/core/domain"
	"github.com/custodia-labs/promptmap/internal/core/ports/driving"
)

// mockMindMapService is a mock implementation of driving.MindMapService.
type mockMindMapService struct {
	data           *domain.MindMapData
	analysis       *domain.Analysis
	classification *domain.Classification
	content        string
	err            error

	lastPrompt string
	lastMode   domain.GenerationMode
}

func (m *mockMindMapService) Generate(
	_ context.Context, prompt string, mode domain.GenerationMode,
) (*domain.MindMapData, error) {
	m.lastPrompt, m.lastMode = prompt, mode
	return m.data, m.err
}

func (m *mockMindMapService) Analyze(
	_ context.Context, prompt string, mode domain.GenerationMode,
) (*domain.Analysis, error) {
	m.lastPrompt, m.lastMode = prompt, mode
	return m.analysis, m.err
}

func (m *mockMindMapService) Classify(prompt string) (*domain.Classification, error) {
	m.lastPrompt = prompt
	return m.classification, m.err
}

func (m *mockMindMapService) GenerateContent(_ context.Context, _ driving.ContentRequest) (string, error) {
	return m.content, m.err
}

func (m *mockMindMapService) HasCollaborator() bool {
	return false
}
