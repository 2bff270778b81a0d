package structure

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/custodia-labs/promptmap/internal/analyzer"
	"github.com/custodia-labs/promptmap/internal/core/domain"
)

// maxListItems caps the items of a list prompt.
const maxListItems = 5

var (
	listCues      = []string{"types of", "kinds of", "examples of", "varieties of", "categories of", "include"}
	criteriaCues  = []string{"criteria", "factor", "consider", "choose", "select", "decide", "determine"}
	listLeadInRe  = regexp.MustCompile(`(?i)^.*?(?:\binclud(?:e|es|ing)\b|\bsuch as\b|\blike\b|\be\.g\.|:)`)
	listSplitRe   = regexp.MustCompile(`(?i),|;|\band\b|\bor\b`)
	listBulletRe  = regexp.MustCompile(`^(?:\d+\.|[*-])\s*`)
	listTrimChars = " \t.?!:;\"'"
)

// extractListItems pulls enumerated items out of sentences that introduce
// a list. Sentences that do not split into at least two items are
// ignored. With fewer than three items "Type 1".."Type 5" are appended.
func extractListItems(sentences []string) []string {
	var items []string
	for _, s := range matching(sentences, listCues) {
		body := listLeadInRe.ReplaceAllString(s, "")
		var parts []string
		for _, p := range listSplitRe.Split(body, -1) {
			p = strings.Trim(listBulletRe.ReplaceAllString(strings.TrimSpace(p), ""), listTrimChars)
			if p != "" {
				parts = append(parts, p)
			}
		}
		if len(parts) >= 2 {
			items = append(items, parts...)
		}
	}
	if len(items) < 3 {
		for i := 1; i <= maxListItems; i++ {
			items = append(items, fmt.Sprintf("Type %d", i))
		}
	}
	return capitalizeAll(condenseAll(unique(items, maxListItems), maxListItems))
}

type category struct {
	name  string
	items []string
}

// categorize groups items into "Main Types" when there are three or
// fewer, otherwise into up to three evenly sized "Category N" groups.
func categorize(items []string) []category {
	if len(items) <= 3 {
		return []category{{name: "Main Types", items: items}}
	}
	count := min(3, ceilDiv(len(items), 2))
	per := ceilDiv(len(items), count)
	var out []category
	for i := 0; i < count; i++ {
		start := i * per
		if start >= len(items) {
			break
		}
		end := min(start+per, len(items))
		out = append(out, category{name: fmt.Sprintf("Category %d", i+1), items: items[start:end]})
	}
	return out
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func listTopics(in input) []domain.Topic {
	var topics []domain.Topic
	for _, c := range categorize(extractListItems(in.sentences)) {
		topics = append(topics, domain.Topic{
			Name:     c.name,
			Relation: "includes",
			Subtopics: subtopics(c.items, "example of",
				det("Key characteristics", "features"), det("Common use", "used for")),
		})
	}

	def := extractDefinition(in.sentences, in.mainConcept)
	return append(topics,
		domain.Topic{Name: "Overview", Relation: "describes", Subtopics: []domain.Subtopic{{
			Name:     analyzer.Condense(def),
			Relation: "defines",
			Details:  def,
			Children: []domain.Detail{det("Importance", "matters because"), det("Context", "relevant to")},
		}}},
		domain.Topic{Name: "Selection Criteria", Relation: "chosen by", Subtopics: subtopics(
			mine(in.sentences, criteriaCues,
				"Functionality and features",
				"Cost and resource requirements",
				"Compatibility with existing systems"),
			"consider", det("Impact on choice", "affects"))},
	)
}
