package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/custodia-labs/promptmap/internal/analyzer"
	"github.com/custodia-labs/promptmap/internal/core/domain"
	"github.com/custodia-labs/promptmap/internal/core/ports/driven"
	"github.com/custodia-labs/promptmap/internal/core/ports/driving"
	"github.com/custodia-labs/promptmap/internal/graph"
	"github.com/custodia-labs/promptmap/internal/logger"
	"github.com/custodia-labs/promptmap/internal/structure"
)

// Ensure MindMapService implements the interface.
var _ driving.MindMapService = (*MindMapService)(nil)

// Settings for GenerateContent requests.
const (
	contentMaxTokens   = 1000
	contentTemperature = 0.7
)

// contentTemplate is sent when a content request carries no prompt.
const contentTemplate = `Generate detailed information about "%s" in relation to "%s".

Format your response as follows:

MAIN TOPIC: [Short title for the main topic]

DESCRIPTION: [Provide a thorough description of the main topic - 2-3 sentences with important details]

SUBTOPICS:
1. [Subtopic 1]
   - [Detail 1 with explanation]
   - [Detail 2 with explanation]

2. [Subtopic 2]
   - [Detail 1 with explanation]
   - [Detail 2 with explanation]

For each subtopic and detail, include enough explanation to provide context and understanding.
Keep subtopic titles concise, but provide detailed descriptions.
DO NOT provide the response as JSON or code.`

// MindMapService runs the prompt to mind map pipeline.
type MindMapService struct {
	llm      driven.LLMService
	local    *structure.Generator
	assisted *structure.Generator

	mu          sync.RWMutex
	defaultMode domain.GenerationMode
	layout      graph.LayoutOptions
}

// NewMindMapService creates a new mind map service.
// The llmService and prompts parameters are optional (can be nil). Without
// a collaborator the assisted and structured modes run locally.
func NewMindMapService(llmService driven.LLMService, prompts driven.PromptStore) *MindMapService {
	return &MindMapService{
		llm:   llmService,
		local: structure.NewGenerator(structure.WithStrategy(structure.StrategyLocal)),
		assisted: structure.NewGenerator(
			structure.WithStrategy(structure.StrategyAssisted),
			structure.WithCollaborator(llmService),
			structure.WithPromptStore(prompts),
		),
		defaultMode: domain.DefaultAppSettings().Generation.Mode,
		layout:      graph.DefaultLayoutOptions(),
	}
}

// SetDefaultMode sets the mode used when a request names none.
// Invalid modes are ignored.
func (s *MindMapService) SetDefaultMode(mode domain.GenerationMode) {
	if !mode.IsValid() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.defaultMode = mode
}

// SetLayoutOptions sets the layout used for every generated map.
func (s *MindMapService) SetLayoutOptions(opts graph.LayoutOptions) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.layout = opts
}

// HasCollaborator reports whether a text-generation collaborator is wired.
func (s *MindMapService) HasCollaborator() bool {
	return s.llm != nil
}

// Generate builds the mind map for prompt.
func (s *MindMapService) Generate(
	ctx context.Context, prompt string, mode domain.GenerationMode,
) (*domain.MindMapData, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, domain.ErrEmptyInput
	}

	mode = s.resolveMode(mode)
	log := logger.With(zap.String("analysis_id", uuid.NewString()), zap.String("mode", mode.String()))

	if mode == domain.GenerationModeSimple {
		data := graph.Simple(prompt)
		log.Debug("simple map built", zap.Int("nodes", len(data.Nodes)))
		return data, nil
	}

	a, err := s.analyze(ctx, prompt, mode)
	if err != nil {
		log.Warn("analysis failed, using simple map", zap.Error(err))
		return graph.Simple(prompt), nil
	}

	s.mu.RLock()
	opts := s.layout
	s.mu.RUnlock()

	data := graph.Build(a, opts)
	log.Debug("mind map built",
		zap.String("origin", string(a.Origin)),
		zap.String("type", a.PromptType.String()),
		zap.Int("nodes", len(data.Nodes)),
		zap.Int("edges", len(data.Edges)),
	)
	return data, nil
}

// Analyze runs the pipeline up to the topic tree. The simple mode has no
// tree of its own and yields the local analysis.
func (s *MindMapService) Analyze(
	ctx context.Context, prompt string, mode domain.GenerationMode,
) (*domain.Analysis, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, domain.ErrEmptyInput
	}

	mode = s.resolveMode(mode)
	if mode == domain.GenerationModeSimple {
		mode = domain.GenerationModeLocal
	}

	a, err := s.analyze(ctx, prompt, mode)
	if errors.Is(err, domain.ErrConceptExtraction) {
		logger.Warn("analysis failed: %v", err)
		return &domain.Analysis{
			MainConcept: prompt,
			PromptType:  domain.PromptTypeConcept,
			Domain:      domain.DomainGeneral,
			Origin:      domain.OriginLocal,
			Topics:      []domain.Topic{},
		}, nil
	}
	return a, err
}

// Classify reports the prompt type, domain and main concept.
func (s *MindMapService) Classify(prompt string) (*domain.Classification, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, domain.ErrEmptyInput
	}

	t := analyzer.Classify(prompt)
	return &domain.Classification{
		PromptType:  t,
		Domain:      analyzer.IdentifyDomain(prompt),
		MainConcept: analyzer.ExtractMainConcept(prompt, t),
	}, nil
}

// GenerateContent forwards one request to the collaborator.
func (s *MindMapService) GenerateContent(ctx context.Context, req driving.ContentRequest) (string, error) {
	topic := strings.TrimSpace(req.Topic)
	mainConcept := strings.TrimSpace(req.MainConcept)
	if topic == "" || mainConcept == "" {
		return "", fmt.Errorf("%w: topic and mainConcept are required", domain.ErrInvalidInput)
	}
	if s.llm == nil {
		return "", fmt.Errorf("generate content: %w: no provider configured", domain.ErrLLMUnavailable)
	}

	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		prompt = fmt.Sprintf(contentTemplate, topic, mainConcept)
	}

	logger.Debug("content request: topic=%q mainConcept=%q custom prompt=%t",
		topic, mainConcept, req.Prompt != "")

	reply, err := s.llm.Generate(ctx, prompt, driven.GenerateOptions{
		MaxTokens:   contentMaxTokens,
		Temperature: contentTemperature,
		Topic:       topic,
		MainConcept: mainConcept,
	})
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	if strings.TrimSpace(reply) == "" {
		return "", fmt.Errorf("generate content: %w: empty reply", domain.ErrMalformedReply)
	}
	return reply, nil
}

func (s *MindMapService) resolveMode(mode domain.GenerationMode) domain.GenerationMode {
	if !mode.IsValid() {
		if mode != "" {
			logger.Warn("unknown generation mode %q, using default", mode)
		}
		s.mu.RLock()
		mode = s.defaultMode
		s.mu.RUnlock()
	}
	if mode.RequiresLLM() && s.llm == nil {
		logger.Debug("no collaborator configured, %s runs locally", mode)
		return domain.GenerationModeLocal
	}
	return mode
}

// analyze builds the tree for mode. Structured falls back to assisted on
// any collaborator failure.
func (s *MindMapService) analyze(
	ctx context.Context, prompt string, mode domain.GenerationMode,
) (*domain.Analysis, error) {
	logger.Section("Prompt Analysis")

	if mode == domain.GenerationModeStructured {
		outline, err := s.assisted.Outline(ctx, prompt)
		if err == nil {
			a := structure.OutlineAnalysis(outline)
			a.Domain = analyzer.IdentifyDomain(prompt)
			return a, nil
		}
		logger.Warn("structured outline failed, falling back to assisted: %v", err)
		mode = domain.GenerationModeAssisted
	}

	promptType := analyzer.Classify(prompt)
	mainConcept := analyzer.ExtractMainConcept(prompt, promptType)
	if strings.TrimSpace(mainConcept) == "" {
		return nil, domain.ErrConceptExtraction
	}
	logger.Debug("type=%s concept=%q", promptType, mainConcept)

	gen, origin := s.local, domain.OriginLocal
	if mode == domain.GenerationModeAssisted {
		gen, origin = s.assisted, domain.OriginAssisted
	}

	return &domain.Analysis{
		MainConcept: mainConcept,
		PromptType:  promptType,
		Domain:      analyzer.IdentifyDomain(prompt),
		Origin:      origin,
		Topics:      gen.Generate(ctx, prompt, mainConcept, promptType, nil),
	}, nil
}
