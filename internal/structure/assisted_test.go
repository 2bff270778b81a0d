package structure

import (
	"context"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/promptmap/internal/analyzer"
	"github.com/custodia-labs/promptmap/internal/core/domain"
	"github.com/custodia-labs/promptmap/internal/core/ports/driven"
)

func assistedTopics(t *testing.T, llm *mockLLM, opts ...Option) []domain.Topic {
	t.Helper()
	opts = append([]Option{WithStrategy(StrategyAssisted), WithCollaborator(llm)}, opts...)
	topics := NewGenerator(opts...).Generate(context.Background(),
		"Explain machine learning", "Machine Learning", domain.PromptTypeConcept, nil)
	require.Len(t, topics, 5)
	return topics
}

func TestAssistedConcept_UsesReplies(t *testing.T) {
	llm := &mockLLM{replies: map[string]string{
		"concise definition":     "a way for computers to learn from data.",
		"fundamental essence":    "Finding patterns in examples.",
		"components or elements": "1. Data: The examples\n2. Model: The learned function\n3. Training\n4. Extra: dropped",
		"concrete examples":      "1. Spam filters\n2. Recommendations",
		"practical applications": "Fraud detection: spotting bad payments",
		"advantages and":         "Advantages:\n1. Scales well\nLimitations:\n1. Needs data",
	}}
	topics := assistedTopics(t, llm)

	assert.Equal(t, 6, llm.calls())
	for _, opts := range llm.opts {
		assert.Equal(t, 1000, opts.MaxTokens)
		assert.InDelta(t, 0.7, opts.Temperature, 1e-9)
		assert.Equal(t, "Machine Learning", opts.MainConcept)
	}

	def := topics[0]
	assert.Equal(t, "Definition", def.Name)
	assert.Equal(t, "Machine Learning refers to a way for computers to learn from data.", def.Details)
	assert.Equal(t, "Finding patterns in examples.", def.Subtopics[0].Details)

	components := topics[1]
	assert.Equal(t, []string{"Data", "Model", "Training"}, subtopicNames(components))
	assert.Equal(t, "A key element of Machine Learning", components.Subtopics[2].Details)

	examples := topics[2]
	assert.Equal(t, []string{"Spam filters", "Recommendations"}, subtopicNames(examples))
	assert.Equal(t, "Spam filters demonstrates key aspects of Machine Learning", examples.Subtopics[0].Details)

	assert.Equal(t, "spotting bad payments", topics[3].Subtopics[0].Details)

	pc := topics[4]
	assert.Equal(t, "Pros & Cons", pc.Name)
	require.Len(t, pc.Subtopics, 2)
	assert.Equal(t, "Scales well", pc.Subtopics[0].Children[0].Name)
	assert.Equal(t, "Needs data represents a notable limitation of Machine Learning", pc.Subtopics[1].Children[0].Details)
}

func TestAssistedConcept_CollaboratorDown(t *testing.T) {
	llm := &mockLLM{err: errMockDown}
	topics := assistedTopics(t, llm, WithDomainHint(domain.DomainTechnology))

	assert.Equal(t, 6, llm.calls(), "every slot is still attempted")
	assert.Equal(t,
		"Machine Learning refers to a set of tools, methods, and processes used to solve problems or achieve objectives",
		topics[0].Details)
	assert.Equal(t, []string{"Primary Element", "Supporting Structure", "Operational Mechanisms"}, subtopicNames(topics[1]))
	assert.Equal(t, []string{"Example 1", "Example 2", "Example 3"}, subtopicNames(topics[2]))
	assert.Equal(t, []string{"Primary Use Case", "Secondary Application", "Emerging Utilization"}, subtopicNames(topics[3]))
	assert.Equal(t, "Increased Efficiency", topics[4].Subtopics[0].Children[0].Name)
	assert.Equal(t, "Resource Requirements", topics[4].Subtopics[1].Children[0].Name)
}

func TestAssistedConcept_EmptyReplies(t *testing.T) {
	topics := assistedTopics(t, &mockLLM{})

	assert.Equal(t,
		"Machine Learning refers to Machine Learning is a key concept related to Machine Learning that plays an important role in this domain.",
		topics[0].Details)
	assert.Equal(t, []string{"Key aspects that make up Machine Learning in the context of Machine Learning."},
		subtopicNames(topics[1]))
	assert.Equal(t, "Increased Efficiency", topics[4].Subtopics[0].Children[0].Name)
}

func TestAssistedConcept_PromptStore(t *testing.T) {
	store := &mockPromptStore{prompts: map[string]string{
		driven.PromptDefinition: "Define %s for a child.",
	}}
	llm := &mockLLM{}
	assistedTopics(t, llm, WithPromptStore(store))

	require.NotEmpty(t, llm.prompts)
	assert.Equal(t, "Define Machine Learning for a child.", llm.prompts[0])
	assert.Equal(t, FillTemplate(DefaultPrompt(driven.PromptCore), "Machine Learning"), llm.prompts[1])
}

func TestDefaultPrompts(t *testing.T) {
	prompts := DefaultPrompts()
	for _, name := range driven.AllPromptNames() {
		assert.Contains(t, prompts[name], "%s", name)
	}
	assert.Contains(t, prompts[driven.PromptStructure], "DO NOT provide the response as JSON or code.")

	prompts[driven.PromptCore] = "changed"
	assert.NotEqual(t, "changed", DefaultPrompt(driven.PromptCore))
}

func TestFallbackContent(t *testing.T) {
	tests := []struct {
		tpl  string
		want string
	}{
		{"give a definition", "X is a key concept related to M that plays an important role in this domain."},
		{"list elements", "Key aspects that make up X in the context of M."},
		{"some examples", "Common examples that demonstrate X in practical applications."},
		{"the benefits", "Benefits that X provides in relation to M."},
		{"the drawbacks", "Potential challenges or constraints associated with X."},
		{"anything", "Information about X related to M."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, fallbackContent("X", "M", tt.tpl), tt.tpl)
	}
}

func TestAssistedConcept_CondensesLongReplyItems(t *testing.T) {
	llm := &mockLLM{replies: map[string]string{
		"components or elements": "1. Training data collected from many sources across the organisation over years",
		"concrete examples":      "1. Spam filtering in email clients, which catches unwanted mail before you read it",
		"advantages and":         "Advantages:\n1. Scales to huge datasets without needing hand written rules for every case\nLimitations:\n1. Needs data",
	}}
	topics := assistedTopics(t, llm)

	assert.Equal(t, "Training data collected from many sources across the organis...", topics[1].Subtopics[0].Name)
	assert.Equal(t, "Spam filtering in email clients", topics[2].Subtopics[0].Name)
	assert.Equal(t, "Scales to huge datasets without needing hand written rules f...", topics[4].Subtopics[0].Children[0].Name)
	assert.Equal(t, "Needs data", topics[4].Subtopics[1].Children[0].Name)

	for _, topic := range topics[1:] {
		for _, sub := range topic.Subtopics {
			assert.LessOrEqual(t, utf8.RuneCountInString(sub.Name), analyzer.MaxItemLength+3, sub.Name)
			for _, leaf := range sub.Children {
				assert.LessOrEqual(t, utf8.RuneCountInString(leaf.Name), analyzer.MaxItemLength+3, leaf.Name)
			}
		}
	}
}
