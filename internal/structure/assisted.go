package structure

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/promptmap/internal/analyzer"
	"github.com/custodia-labs/promptmap/internal/core/domain"
	"github.com/custodia-labs/promptmap/internal/core/ports/driven"
	"github.com/custodia-labs/promptmap/internal/logger"
)

// Collaborator request settings shared by every slot.
const (
	collaboratorMaxTokens   = 1000
	collaboratorTemperature = 0.7
	assistedItems           = 3
)

var defaultPrompts = map[string]string{
	driven.PromptStructure: `Create a mind map structure for: "%s".

Format your response as follows:

MAIN TOPIC: [Short title for the main topic]
DESCRIPTION: [Brief description of the main topic]

SUBTOPICS:
1. [Subtopic 1]
   - [Detail 1]
   - [Detail 2]

2. [Subtopic 2]
   - [Detail 1]
   - [Detail 2]

3. [Subtopic 3]
   - [Detail 1]
   - [Detail 2]

4. [Subtopic 4]
   - [Detail 1]
   - [Detail 2]

5. [Subtopic 5]
   - [Detail 1]
   - [Detail 2]

Keep each subtopic and detail short and concise.
DO NOT provide the response as JSON or code.
`,
	driven.PromptDefinition:   `Provide a concise definition of "%s" in 1-2 sentences.`,
	driven.PromptCore:         `Explain the fundamental essence of "%s" in 1-2 sentences.`,
	driven.PromptComponents:   `List 3 key components or elements of "%s" with a brief description for each.`,
	driven.PromptExamples:     `List 3 concrete examples of "%s".`,
	driven.PromptApplications: `List 3 practical applications or uses of "%s" with a brief description for each.`,
	driven.PromptProsCons:     `List 3 advantages and 3 limitations of "%s".`,
}

// DefaultPrompt returns the built-in template for name, or "" if the name
// is unknown.
func DefaultPrompt(name string) string {
	return defaultPrompts[name]
}

// DefaultPrompts returns a copy of every built-in template keyed by name.
func DefaultPrompts() map[string]string {
	out := make(map[string]string, len(defaultPrompts))
	for k, v := range defaultPrompts {
		out[k] = v
	}
	return out
}

// FillTemplate substitutes value for every %s in tpl.
func FillTemplate(tpl, value string) string {
	return strings.ReplaceAll(tpl, "%s", value)
}

// template loads a prompt from the store, falling back to the built-in one.
func (g *Generator) template(name string) string {
	if g.prompts != nil {
		tpl, err := g.prompts.Load(name)
		if err == nil && strings.TrimSpace(tpl) != "" {
			return tpl
		}
		if err != nil {
			logger.Debug("structure: prompt %q not loaded, using built-in: %v", name, err)
		}
	}
	return DefaultPrompt(name)
}

// generate sends one templated request and returns the trimmed reply
// together with the template used.
func (g *Generator) generate(ctx context.Context, name, topic, mainConcept string) (string, string, error) {
	tpl := g.template(name)
	if g.llm == nil {
		return "", tpl, fmt.Errorf("%s: %w", name, domain.ErrCollaboratorUnavailable)
	}
	reply, err := g.llm.Generate(ctx, FillTemplate(tpl, topic), driven.GenerateOptions{
		MaxTokens:   collaboratorMaxTokens,
		Temperature: collaboratorTemperature,
		Topic:       topic,
		MainConcept: mainConcept,
	})
	if err != nil {
		err = fmt.Errorf("%s: %w: %v", name, domain.ErrCollaboratorUnavailable, err)
		logger.Warn("structure: collaborator request failed: %v", err)
		return "", tpl, err
	}
	return strings.TrimSpace(reply), tpl, nil
}

// ask is generate for the concept slots: an empty reply is replaced by
// generic text so that only transport failures reach the caller.
func (g *Generator) ask(ctx context.Context, name, topic, mainConcept string) (string, error) {
	reply, tpl, err := g.generate(ctx, name, topic, mainConcept)
	if err != nil {
		return "", err
	}
	if reply == "" {
		logger.Debug("structure: empty %s reply, using fallback text", name)
		return fallbackContent(topic, mainConcept, tpl), nil
	}
	return reply, nil
}

// fallbackContent is the generic text used in place of an empty reply.
func fallbackContent(topic, mainConcept, tpl string) string {
	t := strings.ToLower(tpl)
	switch {
	case strings.Contains(t, "definition"):
		return fmt.Sprintf("%s is a key concept related to %s that plays an important role in this domain.", topic, mainConcept)
	case strings.Contains(t, "components"), strings.Contains(t, "elements"):
		return fmt.Sprintf("Key aspects that make up %s in the context of %s.", topic, mainConcept)
	case strings.Contains(t, "examples"):
		return fmt.Sprintf("Common examples that demonstrate %s in practical applications.", topic)
	case strings.Contains(t, "advantages"), strings.Contains(t, "benefits"):
		return fmt.Sprintf("Benefits that %s provides in relation to %s.", topic, mainConcept)
	case strings.Contains(t, "limitations"), strings.Contains(t, "drawbacks"):
		return fmt.Sprintf("Potential challenges or constraints associated with %s.", topic)
	default:
		return fmt.Sprintf("Information about %s related to %s.", topic, mainConcept)
	}
}

// assistedConceptTopics fills the six concept slots from the collaborator,
// one sequential request per slot.
func (g *Generator) assistedConceptTopics(ctx context.Context, in input) []domain.Topic {
	mc := in.mainConcept
	info := conceptInfo(in.domain, mc)

	definition, err := g.ask(ctx, driven.PromptDefinition, mc, mc)
	if err != nil {
		definition = info.definition
	}
	core, err := g.ask(ctx, driven.PromptCore, mc, mc)
	if err != nil {
		core = info.core
	}

	return []domain.Topic{
		{
			Name:     "Definition",
			Relation: "means",
			Details:  mc + " refers to " + definition,
			Subtopics: []domain.Subtopic{
				{Name: "Core Concept", Relation: "essentially", Details: core},
			},
		},
		{
			Name:      "Components",
			Relation:  "consists of",
			Details:   "The key elements that make up " + mc,
			Subtopics: g.sectionSlot(ctx, driven.PromptComponents, mc, "part of", "A key element of "+mc, defaultComponents(mc)),
		},
		{
			Name:      "Examples",
			Relation:  "such as",
			Details:   "Real-world instances of " + mc,
			Subtopics: g.exampleSlot(ctx, mc),
		},
		{
			Name:      "Applications",
			Relation:  "used for",
			Details:   "Practical uses and implementations of " + mc,
			Subtopics: g.sectionSlot(ctx, driven.PromptApplications, mc, "applied in", "A practical use of "+mc, defaultApplications(mc)),
		},
		g.prosConsTopic(ctx, mc),
	}
}

// sectionSlot builds subtopics from "Name: Description" lines, using
// defaults when the request fails or nothing parses.
func (g *Generator) sectionSlot(
	ctx context.Context,
	name, mc, relation, defaultDesc string,
	defaults []domain.ParsedSection,
) []domain.Subtopic {
	sections := defaults
	if reply, err := g.ask(ctx, name, mc, mc); err == nil {
		if parsed, perr := ParseSections(reply); perr == nil {
			sections = parsed.Items
		} else {
			logger.Debug("structure: %s reply: %v", name, perr)
		}
	}

	if len(sections) > assistedItems {
		sections = sections[:assistedItems]
	}
	out := make([]domain.Subtopic, len(sections))
	for i, s := range sections {
		desc := s.Description
		if desc == "" {
			desc = defaultDesc
		}
		out[i] = domain.Subtopic{Name: analyzer.Condense(s.Name), Relation: relation, Details: desc}
	}
	return out
}

func (g *Generator) exampleSlot(ctx context.Context, mc string) []domain.Subtopic {
	examples := []string{"Example 1", "Example 2", "Example 3"}
	if reply, err := g.ask(ctx, driven.PromptExamples, mc, mc); err == nil {
		if parsed, perr := ParseList(reply); perr == nil {
			examples = parsed.Items
		}
	}
	if len(examples) > assistedItems {
		examples = examples[:assistedItems]
	}
	out := make([]domain.Subtopic, len(examples))
	for i, ex := range examples {
		out[i] = domain.Subtopic{
			Name:     analyzer.Condense(ex),
			Relation: "illustrates",
			Details:  fmt.Sprintf("%s demonstrates key aspects of %s", ex, mc),
		}
	}
	return out
}

func (g *Generator) prosConsTopic(ctx context.Context, mc string) domain.Topic {
	var pc domain.ParsedProsCons
	if reply, err := g.ask(ctx, driven.PromptProsCons, mc, mc); err == nil {
		pc, _ = ParseProsCons(reply)
	}
	advantages := pc.Advantages
	if len(advantages) == 0 {
		advantages = []string{"Increased Efficiency", "Improved Quality", "Enhanced Flexibility"}
	}
	limitations := pc.Limitations
	if len(limitations) == 0 {
		limitations = []string{"Resource Requirements", "Implementation Complexity", "Potential Drawbacks"}
	}

	leaves := func(items []string, relation, format string) []domain.Detail {
		if len(items) > assistedItems {
			items = items[:assistedItems]
		}
		out := make([]domain.Detail, len(items))
		for i, item := range items {
			out[i] = domain.Detail{Name: analyzer.Condense(item), Relation: relation, Details: fmt.Sprintf(format, item, mc)}
		}
		return out
	}

	return domain.Topic{
		Name:     "Pros & Cons",
		Relation: "evaluated by",
		Details:  "Benefits and drawbacks of " + mc,
		Subtopics: []domain.Subtopic{
			{
				Name:     "Advantages",
				Relation: "benefits include",
				Details:  "Key benefits of " + mc,
				Children: leaves(advantages, "provides", "%s is a significant advantage of %s"),
			},
			{
				Name:     "Limitations",
				Relation: "drawbacks include",
				Details:  "Important constraints and challenges of " + mc,
				Children: leaves(limitations, "limited by", "%s represents a notable limitation of %s"),
			},
		},
	}
}

func defaultComponents(mc string) []domain.ParsedSection {
	return []domain.ParsedSection{
		{Name: "Primary Element", Description: "The most essential aspect of " + mc},
		{Name: "Supporting Structure", Description: "Elements that enhance " + mc},
		{Name: "Operational Mechanisms", Description: "Processes that enable " + mc + " to function"},
	}
}

func defaultApplications(mc string) []domain.ParsedSection {
	return []domain.ParsedSection{
		{Name: "Primary Use Case", Description: "The most common implementation of " + mc},
		{Name: "Secondary Application", Description: "Alternative way " + mc + " is applied"},
		{Name: "Emerging Utilization", Description: "New and developing application of " + mc},
	}
}

type domainConcept struct {
	definition string
	core       string
}

// conceptInfo is the canned definition used when the collaborator fails.
func conceptInfo(d domain.Domain, mc string) domainConcept {
	switch d {
	case domain.DomainTechnology:
		return domainConcept{
			definition: "a set of tools, methods, and processes used to solve problems or achieve objectives",
			core:       "The practical application of knowledge to address specific challenges",
		}
	case domain.DomainBusiness:
		return domainConcept{
			definition: "organizational activities focused on commercial, industrial, or professional operations",
			core:       "The creation and exchange of goods, services, or value in a marketplace",
		}
	case domain.DomainScience:
		return domainConcept{
			definition: "systematic study of the structure and behavior of the physical and natural world",
			core:       "The pursuit of knowledge through observation, experimentation, and theoretical explanation",
		}
	default:
		return domainConcept{
			definition: "a concept or system related to " + mc,
			core:       "The fundamental essence of " + mc + " and its primary purpose",
		}
	}
}
