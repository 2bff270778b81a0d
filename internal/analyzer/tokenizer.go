package analyzer

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxItemLength is the rune length above which free-text items are condensed.
const MaxItemLength = 60

var (
	nonWordRe       = regexp.MustCompile(`[^\w\s]`)
	sentenceBreakRe = regexp.MustCompile(`[.!?]+\s+`)
	initialDotRe    = regexp.MustCompile(`(\w)\.(\s+[a-z])`)
	capsPhraseRe    = regexp.MustCompile(`\b[A-Z][a-z]+ [a-z]+ [a-z]+\b|\b[A-Z][a-z]+ [a-z]+\b`)
	linkedPhraseRe  = regexp.MustCompile(`\b[a-z]+ (?:of|in|for|with|by) [a-z]+\b`)
	clauseBreakRe   = regexp.MustCompile(`[,.;:]`)
)

// abbreviations are rewritten before splitting so their dots do not end a sentence.
var abbreviations = strings.NewReplacer(
	"Mr.", "Mr",
	"Mrs.", "Mrs",
	"Dr.", "Dr",
	"Ph.D.", "PhD",
	"i.e.", "ie",
	"e.g.", "eg",
	"vs.", "vs",
	"etc.", "etc",
)

// Tokenize returns the lowercase words of text with punctuation and
// stop words removed.
func Tokenize(text string) []string {
	cleaned := nonWordRe.ReplaceAllString(strings.ToLower(text), " ")
	var words []string
	for _, w := range strings.Fields(cleaned) {
		if _, stop := stopWords[w]; stop {
			continue
		}
		words = append(words, w)
	}
	return words
}

// Words returns the whitespace-separated words of text.
func Words(text string) []string {
	return strings.Fields(text)
}

// SplitSentences splits text on terminal punctuation followed by
// whitespace and a capital letter. Common abbreviations do not split.
func SplitSentences(text string) []string {
	normalized := abbreviations.Replace(text)
	normalized = initialDotRe.ReplaceAllString(normalized, "${1}${2}")

	var sentences []string
	last := 0
	for _, loc := range sentenceBreakRe.FindAllStringIndex(normalized, -1) {
		end := loc[1]
		if end >= len(normalized) || normalized[end] < 'A' || normalized[end] > 'Z' {
			continue
		}
		sentences = appendTrimmed(sentences, normalized[last:loc[0]])
		last = end
	}
	return appendTrimmed(sentences, normalized[last:])
}

func appendTrimmed(out []string, s string) []string {
	if s = strings.TrimSpace(s); s != "" {
		out = append(out, s)
	}
	return out
}

// ExtractKeywords returns up to maxCount tokens ranked by frequency.
// Equal counts keep first-seen order.
func ExtractKeywords(text string, maxCount int) []string {
	counts := make(map[string]int)
	var order []string
	for _, w := range Tokenize(text) {
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if maxCount >= 0 && len(order) > maxCount {
		order = order[:maxCount]
	}
	return order
}

// ExtractNounPhrases returns capitalised two- or three-word sequences
// followed by "word (of|in|for|with|by) word" sequences, lowercased and
// deduplicated.
func ExtractNounPhrases(text string) []string {
	seen := make(map[string]struct{})
	var phrases []string
	add := func(matches []string) {
		for _, m := range matches {
			key := strings.ToLower(m)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			phrases = append(phrases, key)
		}
	}
	add(capsPhraseRe.FindAllString(text, -1))
	add(linkedPhraseRe.FindAllString(text, -1))
	return phrases
}

// CapitalizePhrase uppercases the first letter of every word and
// collapses runs of whitespace. The rest of each word is left alone.
func CapitalizePhrase(phrase string) string {
	words := strings.Fields(phrase)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// Condense shortens items longer than MaxItemLength runes to their first
// clause when that clause is meaningful, or to MaxItemLength runes plus
// an ellipsis.
func Condense(s string) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= MaxItemLength {
		return s
	}
	if loc := clauseBreakRe.FindStringIndex(s); loc != nil {
		clause := strings.TrimSpace(s[:loc[0]])
		if utf8.RuneCountInString(clause) > 10 {
			return clause
		}
	}
	return string([]rune(s)[:MaxItemLength]) + "..."
}
