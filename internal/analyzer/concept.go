package analyzer

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/promptmap/internal/core/domain"
)

// conceptWordLimit is how many leading words the last-resort fallback keeps.
const conceptWordLimit = 5

// ExtractMainConcept derives the root label for a prompt of the given type.
//
// Type-specific captures are tried first, then a title-case phrase, then
// the first noun phrase, then the first five words. The result is trimmed
// and phrase-capitalised. An embedded symbolic formula is returned as
// written. The result is empty only when prompt has no words.
func ExtractMainConcept(prompt string, t domain.PromptType) string {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return ""
	}

	switch t {
	case domain.PromptTypeComparison:
		if a, b, ok := ComparisonSides(prompt); ok {
			return CapitalizePhrase(a) + " vs " + CapitalizePhrase(b)
		}
	case domain.PromptTypeFormula:
		if c := firstCapture(conceptPatterns[t], prompt); c != "" {
			return CapitalizePhrase(c)
		}
		if m := symbolicFormulaRe.FindString(prompt); m != "" {
			return strings.TrimSpace(m)
		}
	default:
		if c := firstCapture(conceptPatterns[t], prompt); c != "" {
			return CapitalizePhrase(c)
		}
	}

	if m := titlePhraseRe.FindStringSubmatch(prompt); m != nil {
		if c := cleanCapture(m[1]); c != "" {
			return CapitalizePhrase(c)
		}
	}
	if phrases := ExtractNounPhrases(prompt); len(phrases) > 0 {
		return CapitalizePhrase(phrases[0])
	}

	words := Words(prompt)
	if len(words) > conceptWordLimit {
		words = words[:conceptWordLimit]
	}
	phrase := strings.Join(words, " ")
	if c := cleanCapture(phrase); c != "" {
		phrase = c
	}
	return CapitalizePhrase(phrase)
}

// ComparisonSides returns the two sides of a "X vs Y", "compare X and Y"
// or "differences between X and Y" prompt, with the user's casing.
func ComparisonSides(prompt string) (string, string, bool) {
	for _, re := range comparisonConceptPatterns {
		m := re.FindStringSubmatch(prompt)
		if m == nil {
			continue
		}
		a, b := cleanCapture(m[1]), cleanCapture(m[2])
		if a != "" && b != "" {
			return a, b, true
		}
	}
	return "", "", false
}

func firstCapture(patterns []*regexp.Regexp, prompt string) string {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(prompt); m != nil {
			if c := cleanCapture(m[1]); c != "" {
				return c
			}
		}
	}
	return ""
}

func cleanCapture(s string) string {
	return strings.TrimSpace(trailingPunctRe.ReplaceAllString(s, ""))
}
