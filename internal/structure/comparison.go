package structure

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/promptmap/internal/analyzer"
	"github.com/custodia-labs/promptmap/internal/core/domain"
)

// ComparisonItems are the two sides of a comparison prompt.
type ComparisonItems struct {
	Item1 string `json:"item1"`
	Item2 string `json:"item2"`
}

// comparisonItemPatterns capture the single words on either side of the
// comparison cue, in priority order.
var comparisonItemPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\S+)\s+(?:vs\.?|versus)\s+([^\s.,?!]+)`),
	regexp.MustCompile(`(?i)differences?\s+between\s+(\S+)\s+and\s+([^\s.,?!]+)`),
	regexp.MustCompile(`(?i)compare\s+(\S+)\s+(?:and|with|to)\s+([^\s.,?!]+)`),
}

// ExtractComparisonItems returns the compared items, phrase-capitalised.
// Prompts without a recognised comparison get "Item 1" and "Item 2".
func ExtractComparisonItems(text string) ComparisonItems {
	for _, re := range comparisonItemPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return ComparisonItems{
				Item1: analyzer.CapitalizePhrase(m[1]),
				Item2: analyzer.CapitalizePhrase(m[2]),
			}
		}
	}
	return ComparisonItems{Item1: "Item 1", Item2: "Item 2"}
}

var (
	similarityCues = []string{"similar", "both", "share", "common", "alike"}
	differenceCues = []string{"differ", "unlike", "whereas", "while", "contrast", "however", "but"}
)

func comparisonTopics(in input) []domain.Topic {
	items := ExtractComparisonItems(in.text)

	side := func(name string) domain.Topic {
		return domain.Topic{Name: name, Relation: "compared with", Subtopics: []domain.Subtopic{
			sub("Key characteristics", "defined by", det("Primary feature", "known for"), det("Core strength", "excels in")),
		}}
	}

	return []domain.Topic{
		side(items.Item1),
		side(items.Item2),
		{Name: "Similarities", Relation: "shared aspects", Subtopics: subtopics(
			mine(bothSides(in.sentences, items), similarityCues,
				"Both "+items.Item1+" and "+items.Item2+" serve similar purposes",
				"Both have overlapping features and capabilities",
				"Share common underlying principles"),
			"both have", det("Significance", "important because"))},
		{Name: "Differences", Relation: "distinctions", Subtopics: subtopics(
			mine(bothSides(in.sentences, items), differenceCues,
				items.Item1+" focuses on X, while "+items.Item2+" emphasizes Y",
				items.Item1+" is typically more A, whereas "+items.Item2+" is more B",
				"They differ in their approach to key functionality"),
			"contrast in", det("Impact", "affects"))},
		{Name: "Use Cases", Relation: "when to use", Subtopics: []domain.Subtopic{
			sub("When to use "+items.Item1, "prefer when", det("Ideal scenario", "best for")),
			sub("When to use "+items.Item2, "prefer when", det("Ideal scenario", "best for")),
		}},
	}
}

// bothSides keeps the sentences that mention both compared items.
func bothSides(sentences []string, items ComparisonItems) []string {
	a, b := strings.ToLower(items.Item1), strings.ToLower(items.Item2)
	var out []string
	for _, s := range sentences {
		l := strings.ToLower(s)
		if strings.Contains(l, a) && strings.Contains(l, b) {
			out = append(out, s)
		}
	}
	return out
}
