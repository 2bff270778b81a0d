package driving

import (
	"context"

	"github.com/custodia-labs/promptmap/internal/core/domain"
)

// MindMapService turns prompts into mind maps.
type MindMapService interface {
	// Generate builds the mind map for a prompt using the given mode.
	// An empty mode uses the configured default. The only error returned
	// is domain.ErrEmptyInput; collaborator problems fall back silently.
	Generate(ctx context.Context, prompt string, mode domain.GenerationMode) (*domain.MindMapData, error)

	// Analyze runs the pipeline up to the topic tree, without layout.
	Analyze(ctx context.Context, prompt string, mode domain.GenerationMode) (*domain.Analysis, error)

	// Classify reports the prompt type, domain and main concept.
	Classify(prompt string) (*domain.Classification, error)

	// GenerateContent forwards one request to the collaborator.
	// An empty prompt uses the detailed-outline template built from topic
	// and main concept. Returns domain.ErrInvalidInput when topic or main
	// concept is missing and domain.ErrLLMUnavailable when no collaborator
	// is configured.
	GenerateContent(ctx context.Context, req ContentRequest) (string, error)

	// HasCollaborator reports whether a text-generation collaborator is wired.
	HasCollaborator() bool
}

// ContentRequest is a single collaborator request.
type ContentRequest struct {
	Topic       string
	MainConcept string
	Prompt      string
}
