package analyzer

import "github.com/custodia-labs/promptmap/internal/core/domain"

// IdentifyDomain votes over the fixed domain keyword table.
// The strict maximum wins; ties go to the earlier domain and an
// all-zero vote returns DomainGeneral.
func IdentifyDomain(text string) domain.Domain {
	return topDomain(Tokenize(text))
}

func topDomain(tokens []string) domain.Domain {
	best := domain.DomainGeneral
	bestCount := 0
	for _, row := range domainKeywords {
		count := 0
		for _, t := range tokens {
			if _, ok := row.keywords[t]; ok {
				count++
			}
		}
		if count > bestCount {
			best, bestCount = row.domain, count
		}
	}
	return best
}
