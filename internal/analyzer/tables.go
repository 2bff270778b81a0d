package analyzer

import (
	"regexp"

	"github.com/custodia-labs/promptmap/internal/core/domain"
)

// stopWords are dropped by Tokenize.
var stopWords = toSet([]string{
	"a", "an", "the", "and", "or", "but", "for", "with", "about", "against",
	"between", "into", "through", "during", "before", "after", "above", "below",
	"from", "down", "in", "out", "on", "off", "over", "under", "again", "further",
	"then", "once", "here", "there", "when", "where", "why", "how", "all", "any",
	"both", "each", "few", "more", "most", "other", "some", "such", "no", "nor",
	"not", "only", "own", "same", "so", "than", "too", "very", "can", "will",
	"just", "should", "now", "also", "often", "however", "almost", "although",
	"always", "among", "anyone", "anything", "anywhere", "are", "around",
	"because", "been", "being", "did", "does", "doing", "done", "else", "ever",
	"every", "get", "gets", "getting", "got", "had", "has", "have", "having",
	"he", "her", "hers", "herself", "him", "himself", "his", "i", "if", "its",
	"itself", "me", "my", "myself", "of", "ought", "our", "ours", "ourselves",
	"she", "that", "their", "theirs", "them", "themselves", "these", "they",
	"this", "those", "to", "until", "up", "was", "we", "were", "what", "which",
	"while", "who", "whom", "would", "you", "your", "yours", "yourself",
	"yourselves",
})

// domainKeywords is ordered: on equal counts the earlier domain wins.
var domainKeywords = []struct {
	domain   domain.Domain
	keywords map[string]struct{}
}{
	{domain.DomainTechnology, toSet([]string{
		"software", "hardware", "computer", "digital", "internet", "code", "programming",
		"algorithm", "data", "network", "system", "application", "technology", "web",
		"online", "device", "electronic", "virtual", "cyber", "tech",
	})},
	{domain.DomainScience, toSet([]string{
		"science", "scientific", "research", "experiment", "theory", "hypothesis",
		"laboratory", "chemical", "biology", "physics", "chemistry", "molecule", "atom",
		"cell", "organism", "reaction", "element", "compound",
	})},
	{domain.DomainMath, toSet([]string{
		"mathematics", "equation", "formula", "calculation", "algebra", "geometry",
		"calculus", "theorem", "proof", "number", "variable", "function", "graph",
		"coordinate", "value", "solve", "solution",
	})},
	{domain.DomainBusiness, toSet([]string{
		"business", "company", "corporation", "market", "finance", "economy",
		"investment", "profit", "loss", "revenue", "customer", "client", "product",
		"service", "management", "strategy", "marketing", "sales",
	})},
	{domain.DomainEducation, toSet([]string{
		"education", "learning", "teaching", "student", "teacher", "school",
		"university", "college", "course", "curriculum", "study", "knowledge", "skill",
		"training", "academic", "classroom", "lecture", "lesson",
	})},
	{domain.DomainHealth, toSet([]string{
		"health", "medical", "medicine", "disease", "treatment", "therapy", "doctor",
		"patient", "hospital", "clinic", "symptom", "diagnosis", "cure", "healthcare",
		"wellness", "illness", "condition", "syndrome",
	})},
	{domain.DomainArts, toSet([]string{
		"art", "music", "literature", "painting", "sculpture", "dance", "theater",
		"film", "creative", "artistic", "culture", "design", "performance", "visual",
		"aesthetic", "composition", "style", "genre",
	})},
	{domain.DomainPhilosophy, toSet([]string{
		"philosophy", "ethics", "logic", "metaphysics", "epistemology", "existence",
		"reality", "knowledge", "truth", "belief", "concept", "idea", "thought", "mind",
		"consciousness", "reason", "rational",
	})},
	{domain.DomainHistory, toSet([]string{
		"history", "historical", "past", "ancient", "medieval", "modern", "century",
		"era", "period", "civilization", "culture", "society", "event", "war",
		"revolution", "movement", "empire", "kingdom",
	})},
	{domain.DomainSports, toSet([]string{
		"sport", "game", "competition", "athlete", "team", "player", "coach",
		"tournament", "championship", "match", "race", "score", "win", "lose", "play",
		"training", "fitness", "exercise",
	})},
}

// typePatterns is evaluated top to bottom; the first row with a matching
// pattern decides the prompt type. Group 1 holds the cue word.
var typePatterns = []struct {
	promptType domain.PromptType
	patterns   []*regexp.Regexp
}{
	{domain.PromptTypeHowTo, compileAll(
		`how\s+(?:to|do|can|would|should|could)\s+(\w+)`,
		`steps?\s+(?:to|for|in)\s+(\w+)`,
		`guide\s+(?:to|for|on)\s+(\w+)`,
		`process\s+(?:of|for)\s+(\w+)`,
		`method\s+(?:for|of)\s+(\w+)`,
		`ways?\s+to\s+(\w+)`,
		`instructions?\s+(?:for|on|to)\s+(\w+)`,
	)},
	{domain.PromptTypeDefinition, compileAll(
		`what\s+(?:is|are)\s+(?:a|an|the)?\s*(\w+)`,
		`define\s+(?:a|an|the)?\s*(\w+)`,
		`meaning\s+of\s+(\w+)`,
	)},
	{domain.PromptTypeConcept, compileAll(
		`explain\s+(?:the|a|an)?\s*(\w+)`,
		`describe\s+(?:the|a|an)?\s*(\w+)`,
		`concept\s+of\s+(\w+)`,
	)},
	{domain.PromptTypeFormula, compileAll(
		`formula\s+(?:for|of)\s+(\w+)`,
		`equation\s+(?:for|of)\s+(\w+)`,
		`calculate\s+(\w+)`,
		`compute\s+(\w+)`,
		`(\w+)\s*=\s*[\w+\-*/()]+`,
		`\d+\s*[+\-*/]\s*\d+`,
		`how\s+(?:to|do|can|would|should|could)\s+(?:calculate|compute|find)\s+(\w+)`,
	)},
	{domain.PromptTypeComparison, compileAll(
		`(?:compare|comparison|versus|vs\.?|difference\s+between)\s+(\w+)\s+(?:and|to|with|vs\.?)\s+(\w+)`,
		`(\w+)\s+(?:versus|vs\.?|or|compared\s+(?:to|with))\s+(\w+)`,
		`(?:similarities|differences)\s+(?:between|of)\s+(\w+)\s+(?:and|to|with)\s+(\w+)`,
		`(?:pros|cons|advantages|disadvantages)\s+of\s+(\w+)\s+(?:and|versus|vs\.?|compared\s+to)\s+(\w+)`,
	)},
	{domain.PromptTypeProblemSolution, compileAll(
		`how\s+to\s+(?:fix|solve|resolve|address|handle|deal\s+with)\s+(\w+)`,
		`(?:fix|solve|resolve|address|handle|deal\s+with)\s+(?:a|an|the)?\s*(\w+)`,
		`(?:solution|approach|remedy|cure|treatment)\s+(?:for|to)\s+(\w+)`,
		`(?:problem|issue|trouble|difficulty|challenge)\s+(?:with|of|in)\s+(\w+)`,
		`(?:troubleshoot|debug|repair)\s+(?:a|an|the)?\s*(\w+)`,
	)},
	{domain.PromptTypeList, compileAll(
		`(?:list|types|kinds|examples|varieties)\s+of\s+(\w+)`,
		`(?:what|which)\s+(?:are|is)\s+(?:the|some)?\s*(?:types|kinds|examples|varieties)\s+of\s+(\w+)`,
	)},
	{domain.PromptTypeCauseEffect, compileAll(
		`(?:causes|effects|impacts|results|consequences|implications)\s+of\s+(\w+)`,
		`(?:why|how)\s+(?:does|do|is|are)\s+(\w+)`,
		`(?:what|how)\s+(?:causes|affects|influences|impacts|results\s+in)\s+(\w+)`,
	)},
}

// conceptPatterns capture the phrase following a type cue.
// Types without an entry go straight to the generic fallbacks.
var conceptPatterns = map[domain.PromptType][]*regexp.Regexp{
	domain.PromptTypeHowTo: compileAll(
		`how\s+to\s+(.+)`,
		`how\s+(?:do|can|would|should|could)\s+(?:i|you|we|one)\s+(.+)`,
		`(?:steps?|guide|instructions?|ways?)\s+(?:to|for|on|in)\s+(.+)`,
		`(?:process|method)\s+(?:of|for)\s+(.+)`,
	),
	domain.PromptTypeFormula: compileAll(
		`formula\s+(?:for|of)\s+(.+)`,
		`equation\s+(?:for|of)\s+(.+)`,
		`(?:calculate|compute)\s+(.+)`,
	),
	domain.PromptTypeDefinition: compileAll(
		`what\s+(?:is|are)\s+(?:a\s+|an\s+|the\s+)?(.+)`,
		`define\s+(?:a\s+|an\s+|the\s+)?(.+)`,
		`meaning\s+of\s+(.+)`,
	),
	domain.PromptTypeConcept: compileAll(
		`(?:explain|describe)\s+(?:the\s+|a\s+|an\s+)?(.+)`,
		`concept\s+of\s+(.+)`,
	),
	domain.PromptTypeProblemSolution: compileAll(
		`(?:fix|solve|resolve|troubleshoot|debug|repair)\s+(?:a\s+|an\s+|the\s+)?(.+)`,
		`(?:problem|issue|trouble)\s+(?:with|of|in)\s+(.+)`,
	),
	domain.PromptTypeList: compileAll(
		`(?:list|types|kinds|examples|varieties)\s+of\s+(.+)`,
	),
	domain.PromptTypeCauseEffect: compileAll(
		`(?:causes|effects|impacts|results|consequences|implications)\s+of\s+(.+)`,
		`why\s+(?:does|do|is|are)\s+(.+)`,
	),
}

// comparisonConceptPatterns capture both sides of a comparison.
var comparisonConceptPatterns = compileAll(
	`(.+?)\s+(?:vs\.?|versus)\s+(.+)`,
	`compare\s+(.+?)\s+(?:and|with|to)\s+(.+)`,
	`differences?\s+between\s+(.+?)\s+and\s+(.+)`,
)

var (
	// symbolicFormulaRe matches an embedded "X = expression".
	symbolicFormulaRe = regexp.MustCompile(`([A-Za-z]+\s*=\s*[A-Za-z0-9\s+\-*/^()]+)`)

	// titlePhraseRe finds a capitalised title-like phrase near the start.
	titlePhraseRe = regexp.MustCompile(
		`^(?:(?i:what\s+(?:is|are)|how\s+to|define|explain))?\s*(?:the|a|an)?\s*([A-Z][a-z]+(?:\s+[a-zA-Z]\w+){0,4})`)

	trailingPunctRe = regexp.MustCompile(`[\s?.!,;:]+$`)
)

func compileAll(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(`(?i)` + e)
	}
	return out
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
