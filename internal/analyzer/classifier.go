package analyzer

import (
	"strings"

	"github.com/custodia-labs/promptmap/internal/core/domain"
)

// Classify maps a prompt to its rhetorical type.
//
// The type pattern table is scanned in order and the first row with any
// matching pattern wins. With no match the prompt's domain decides, and
// PromptTypeConcept is returned when nothing else applies.
func Classify(prompt string) domain.PromptType {
	lower := strings.ToLower(prompt)
	for _, row := range typePatterns {
		for _, re := range row.patterns {
			if re.MatchString(lower) {
				return row.promptType
			}
		}
	}
	return typeForDomain(topDomain(Tokenize(lower)), lower)
}

func typeForDomain(d domain.Domain, lower string) domain.PromptType {
	switch d {
	case domain.DomainMath:
		return domain.PromptTypeFormula
	case domain.DomainTechnology, domain.DomainBusiness:
		if strings.Contains(lower, "how") {
			return domain.PromptTypeHowTo
		}
	case domain.DomainHealth:
		if strings.Contains(lower, "treat") || strings.Contains(lower, "cure") {
			return domain.PromptTypeProblemSolution
		}
	}
	return domain.PromptTypeConcept
}
