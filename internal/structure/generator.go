package structure

import (
	"context"
	"strings"

	"github.com/custodia-labs/promptmap/internal/analyzer"
	"github.com/custodia-labs/promptmap/internal/core/domain"
	"github.com/custodia-labs/promptmap/internal/core/ports/driven"
	"github.com/custodia-labs/promptmap/internal/logger"
)

// Strategy selects how the Concept builder gets its content.
type Strategy int

const (
	// StrategyLocal uses only the heuristic builders.
	StrategyLocal Strategy = iota

	// StrategyAssisted asks the collaborator for concept sections.
	StrategyAssisted
)

// String returns the strategy name.
func (s Strategy) String() string {
	if s == StrategyAssisted {
		return "assisted"
	}
	return "local"
}

// Generator builds topic trees. It holds no per-request state and is safe
// for concurrent use.
type Generator struct {
	strategy   Strategy
	llm        driven.LLMService
	prompts    driven.PromptStore
	domainHint domain.Domain
}

// Option configures a Generator.
type Option func(*Generator)

// WithStrategy selects local or collaborator-assisted generation.
func WithStrategy(s Strategy) Option {
	return func(g *Generator) { g.strategy = s }
}

// WithCollaborator sets the text-generation collaborator. A nil service
// makes StrategyAssisted behave like StrategyLocal.
func WithCollaborator(llm driven.LLMService) Option {
	return func(g *Generator) { g.llm = llm }
}

// WithPromptStore sets where collaborator prompt templates are loaded from.
// Without one the built-in templates are used.
func WithPromptStore(ps driven.PromptStore) Option {
	return func(g *Generator) { g.prompts = ps }
}

// WithDomainHint fixes the domain used to pick canned content instead of
// identifying it from the prompt.
func WithDomainHint(d domain.Domain) Option {
	return func(g *Generator) { g.domainHint = d }
}

// NewGenerator creates a Generator. The default is StrategyLocal.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{strategy: StrategyLocal}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Strategy returns the configured strategy.
func (g *Generator) Strategy() Strategy {
	return g.strategy
}

// Assisted reports whether concept slots will be sent to the collaborator.
func (g *Generator) Assisted() bool {
	return g.strategy == StrategyAssisted && g.llm != nil
}

// Generate builds the topics for text. sentences may be nil, in which case
// they are split from text. It never fails: every slot has a non-empty
// fallback, and collaborator errors are logged and absorbed.
func (g *Generator) Generate(
	ctx context.Context,
	text, mainConcept string,
	promptType domain.PromptType,
	sentences []string,
) []domain.Topic {
	text = strings.TrimSpace(text)
	if sentences == nil {
		sentences = analyzer.SplitSentences(text)
	}
	logger.Debug("structure: %s builder, strategy=%s, %d sentences", promptType, g.strategy, len(sentences))

	in := input{
		text:        text,
		lower:       strings.ToLower(text),
		mainConcept: mainConcept,
		sentences:   sentences,
		domain:      g.domainFor(text),
	}

	switch promptType {
	case domain.PromptTypeHowTo:
		return howToTopics(in)
	case domain.PromptTypeFormula:
		return formulaTopics(in)
	case domain.PromptTypeComparison:
		return comparisonTopics(in)
	case domain.PromptTypeProblemSolution:
		return problemSolutionTopics(in)
	case domain.PromptTypeDefinition:
		return definitionTopics(in)
	case domain.PromptTypeList:
		return listTopics(in)
	case domain.PromptTypeCauseEffect:
		return causeEffectTopics(in)
	default:
		if g.Assisted() {
			return g.assistedConceptTopics(ctx, in)
		}
		return conceptTopics(in)
	}
}

func (g *Generator) domainFor(text string) domain.Domain {
	if g.domainHint != "" && g.domainHint.IsValid() {
		return g.domainHint
	}
	return analyzer.IdentifyDomain(text)
}

// input is everything a builder needs about one prompt.
type input struct {
	text        string
	lower       string
	mainConcept string
	sentences   []string
	domain      domain.Domain
}
