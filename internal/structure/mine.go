package structure

import (
	"strings"

	"github.com/custodia-labs/promptmap/internal/analyzer"
	"github.com/custodia-labs/promptmap/internal/core/domain"
)

const (
	// minMatches is how many mined items a slot needs before its canned
	// content is skipped.
	minMatches = 2

	// maxItems caps the subtopics of a slot.
	maxItems = 3
)

// mine collects sentences containing any cue. When fewer than minMatches
// are found the fallback items are appended. The result is condensed and
// capped at maxItems.
func mine(sentences []string, cues []string, fallback ...string) []string {
	found := matching(sentences, cues)
	if len(found) < minMatches {
		found = append(found, fallback...)
	}
	return condenseAll(found, maxItems)
}

// matching returns the sentences that contain any cue, case-insensitively.
func matching(sentences []string, cues []string) []string {
	var out []string
	for _, s := range sentences {
		if containsAny(strings.ToLower(s), cues) {
			out = append(out, s)
		}
	}
	return out
}

// minePhrases collects noun phrases from sentences containing any cue.
// With too few phrases the fallback is appended. The result is
// deduplicated, capped at maxItems and phrase-capitalised.
func minePhrases(sentences []string, cues []string, fallback ...string) []string {
	var found []string
	for _, s := range matching(sentences, cues) {
		found = append(found, analyzer.ExtractNounPhrases(s)...)
	}
	if len(found) < minMatches {
		found = append(found, fallback...)
	}
	return capitalizeAll(unique(found, maxItems))
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func condenseAll(items []string, limit int) []string {
	if len(items) > limit {
		items = items[:limit]
	}
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = analyzer.Condense(item)
	}
	return out
}

func capitalizeAll(items []string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = analyzer.CapitalizePhrase(item)
	}
	return out
}

// unique keeps the first occurrence of each item, up to limit items.
func unique(items []string, limit int) []string {
	seen := make(map[string]struct{}, len(items))
	var out []string
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
		if len(out) == limit {
			break
		}
	}
	return out
}

func det(name, relation string) domain.Detail {
	return domain.Detail{Name: name, Relation: relation}
}

func sub(name, relation string, children ...domain.Detail) domain.Subtopic {
	return domain.Subtopic{Name: name, Relation: relation, Children: children}
}

// subtopics turns items into subtopics sharing a relation and child
// template. Each subtopic gets its own copy of the children.
func subtopics(items []string, relation string, children ...domain.Detail) []domain.Subtopic {
	out := make([]domain.Subtopic, len(items))
	for i, item := range items {
		out[i] = sub(item, relation, append([]domain.Detail(nil), children...)...)
	}
	return out
}
