package api

import (
	"context"

	"github.com/custodia-labs/promptmap/internal/core/domain"
	"github.com/custodia-labs/promptmap/internal/core/ports/driving"
)

type mockMindMapService struct {
	data         *domain.MindMapData
	content      string
	err          error
	collaborator bool

	lastMode    domain.GenerationMode
	lastContent driving.ContentRequest
}

func (m *mockMindMapService) Generate(
	_ context.Context, prompt string, mode domain.GenerationMode,
) (*domain.MindMapData, error) {
	m.lastMode = mode
	if prompt == "" {
		return nil, domain.ErrEmptyInput
	}
	return m.data, m.err
}

func (m *mockMindMapService) Analyze(
	_ context.Context, _ string, _ domain.GenerationMode,
) (*domain.Analysis, error) {
	return nil, m.err
}

func (m *mockMindMapService) Classify(_ string) (*domain.Classification, error) {
	return nil, m.err
}

func (m *mockMindMapService) GenerateContent(_ context.Context, req driving.ContentRequest) (string, error) {
	m.lastContent = req
	return m.content, m.err
}

func (m *mockMindMapService) HasCollaborator() bool {
	return m.collaborator
}
