package structure

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/promptmap/internal/analyzer"
	"github.com/custodia-labs/promptmap/internal/core/domain"
)

// Cue words per concept slot.
var (
	componentCues   = []string{"consists of", "comprises", "contains", "includes", "components of", "elements of", "parts of"}
	exampleCues     = []string{"for example", "such as", "like", "instance", "e.g.", "examples include"}
	applicationCues = []string{"used for", "applied in", "application", "utilized in", "implemented in"}
	advantageCues   = []string{"advantage", "benefit", "strength", "positive", "improve", "enhance"}
	limitationCues  = []string{"limitation", "drawback", "challenge", "weakness", "disadvantage", "problem", "issue", "constraint"}

	// characteristicCues and definitionCues are the phrases that usually
	// introduce a property or a definition in running prose.
	characteristicCues = []string{"characterized by", "features", "qualities", "attributes", "properties"}
	definitionCues     = []string{"is defined as", "refers to", "means", "represents", "can be defined as"}
)

func conceptTopics(in input) []domain.Topic {
	keywords := analyzer.ExtractKeywords(in.text, 15)
	phrases := analyzer.ExtractNounPhrases(in.text)
	mc := in.mainConcept
	def := extractDefinition(in.sentences, mc)

	return []domain.Topic{
		{Name: "Definition", Relation: "is defined as", Subtopics: []domain.Subtopic{{
			Name:     analyzer.Condense(def),
			Relation: "meaning",
			Details:  def,
			Children: []domain.Detail{det("Core concept", "refers to"), det("In simple terms", "means")},
		}}},
		{Name: "Components", Relation: "consists of", Subtopics: subtopics(
			extractComponents(in.sentences, mc, keywords, phrases), "part of",
			det("Role in "+mc, "serves as"), det("Key characteristics", "features"))},
		{Name: "Examples", Relation: "such as", Subtopics: subtopics(
			minePhrases(in.sentences, exampleCues, domainExamples(in.domain)...), "illustrates",
			det("Key features", "demonstrates"), det("Application", "used in"))},
		{Name: "Applications", Relation: "used for", Subtopics: subtopics(
			minePhrases(in.sentences, applicationCues, domainApplications(in.domain)...), "applied in",
			det("Benefits", "provides"), det("Implementation", "requires"))},
		{Name: "Advantages", Relation: "provides", Subtopics: subtopics(
			mine(in.sentences, advantageCues,
				"Improves efficiency and effectiveness",
				"Enhances quality and reliability",
				"Provides better results with less effort"),
			"offers", det("Impact", "results in"))},
		{Name: "Limitations", Relation: "constrained by", Subtopics: subtopics(
			mine(in.sentences, limitationCues,
				"May require specialized knowledge or training",
				"Can be resource-intensive in some contexts",
				"Not universally applicable to all situations"),
			"faces", det("Workarounds", "can be addressed by"))},
	}
}

// extractDefinition returns the first sentence that defines concept, then
// the first sentence that mentions it, then a generic definition.
func extractDefinition(sentences []string, concept string) string {
	if s, ok := definingSentence(sentences, concept); ok {
		return s
	}
	c := strings.ToLower(concept)
	for _, s := range sentences {
		if strings.Contains(strings.ToLower(s), c) {
			return s
		}
	}
	return concept + " is a concept that encompasses various aspects and applications."
}

// definingSentence finds a sentence of the form "<concept> is ...",
// "<concept> refers to ..." or "definition of <concept>".
func definingSentence(sentences []string, concept string) (string, bool) {
	c := strings.ToLower(concept)
	forms := []string{c + " is", c + " are", "definition of " + c}
	for _, cue := range definitionCues {
		forms = append(forms, c+" "+cue)
	}
	for _, s := range sentences {
		if containsAny(strings.ToLower(s), forms) {
			return s, true
		}
	}
	return "", false
}

// extractComponents finds parts of concept: noun phrases from sentences
// that enumerate its parts, then the prompt's own keywords and phrases,
// then placeholders.
func extractComponents(sentences []string, concept string, keywords, phrases []string) []string {
	c := strings.ToLower(concept)
	var cues []string
	for _, cue := range componentCues {
		if strings.HasSuffix(cue, " of") {
			cues = append(cues, cue+" "+c)
		} else {
			cues = append(cues, c+" "+cue)
		}
	}

	var components []string
	for _, s := range matching(sentences, cues) {
		components = append(components, analyzer.ExtractNounPhrases(s)...)
	}
	if len(components) < minMatches {
		terms := append(append([]string(nil), keywords...), phrases...)
		var relevant []string
		for _, term := range terms {
			if len(term) > 3 && !strings.Contains(strings.ToLower(term), c) {
				relevant = append(relevant, term)
			}
			if len(relevant) == maxItems {
				break
			}
		}
		components = append(components, capitalizeAll(relevant)...)
	}
	if len(components) < minMatches {
		components = append(components, "Primary Element", "Secondary Component", "Supporting Structure")
	}
	return capitalizeAll(unique(components, maxItems))
}

func domainExamples(d domain.Domain) []string {
	switch d {
	case domain.DomainTechnology:
		return []string{"Smartphone application", "Cloud computing service", "Machine learning algorithm"}
	case domain.DomainScience:
		return []string{"Laboratory experiment", "Research study", "Scientific theory"}
	case domain.DomainBusiness:
		return []string{"Startup company", "Marketing strategy", "Business model"}
	case domain.DomainEducation:
		return []string{"Online course", "Teaching method", "Learning assessment"}
	case domain.DomainHealth:
		return []string{"Treatment protocol", "Wellness program", "Medical procedure"}
	default:
		return []string{"Practical application", "Real-world case", "Common instance"}
	}
}

func domainApplications(d domain.Domain) []string {
	switch d {
	case domain.DomainTechnology:
		return []string{"Software development", "Data analysis", "Automation systems"}
	case domain.DomainScience:
		return []string{"Research methodology", "Experimental design", "Theoretical modeling"}
	case domain.DomainBusiness:
		return []string{"Strategic planning", "Market analysis", "Operational efficiency"}
	case domain.DomainEducation:
		return []string{"Curriculum development", "Student assessment", "Educational technology"}
	case domain.DomainHealth:
		return []string{"Patient care", "Diagnostic procedures", "Treatment planning"}
	default:
		return []string{"Practical implementation", "Real-world usage", "Common application"}
	}
}

// definitionTopics builds the tree for "what is X" prompts.
func definitionTopics(in input) []domain.Topic {
	mc := in.mainConcept
	formal := fmt.Sprintf("The technical definition of %s with precise terminology", mc)
	formalDetails := "The technical or academic definition"
	if s, ok := definingSentence(in.sentences, mc); ok {
		formal, formalDetails = analyzer.Condense(s), s
	}

	return []domain.Topic{
		{
			Name:     "Definition",
			Relation: "means",
			Details:  "The formal meaning and explanation",
			Subtopics: []domain.Subtopic{
				{Name: formal, Relation: "formally defined as", Details: formalDetails},
				{Name: mc + " explained in everyday language", Relation: "in simple terms", Details: "An easier way to understand it"},
			},
		},
		{Name: "Characteristics", Relation: "features", Subtopics: subtopics(
			mine(in.sentences, characteristicCues, "Key characteristic 1", "Key characteristic 2", "Key characteristic 3"),
			"characterized by")},
		{Name: "Examples", Relation: "illustrated by", Subtopics: subtopics(
			minePhrases(in.sentences, exampleCues, "Concrete example 1", "Concrete example 2", "Concrete example 3"),
			"such as")},
		{Name: "Related Concepts", Relation: "connected to", Subtopics: []domain.Subtopic{
			sub("Related concept 1", "similar to"),
			sub("Related concept 2", "part of"),
			sub("Related concept 3", "contrasts with"),
		}},
	}
}
