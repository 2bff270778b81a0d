package structure

import "github.com/custodia-labs/promptmap/internal/core/domain"

var (
	detailedCauseCues  = []string{"cause", "lead to", "result in", "due to", "because", "reason"}
	detailedEffectCues = []string{"effect", "impact", "result", "consequence", "outcome", "leads to"}
	mechanismCues      = []string{"mechanism", "process", "how it works", "function", "operation", "pathway"}
	factorCues         = []string{"factor", "influence", "affect", "modify", "determine", "impact"}
	ceExampleCues      = []string{"example", "instance", "case", "illustration", "such as", "like"}

	causeFocusCues  = []string{"cause", "why", "lead to"}
	effectFocusCues = []string{"effect", "impact", "result"}
)

func causeEffectTopics(in input) []domain.Topic {
	causeRel, effectRel := "lead to", "result from"
	if containsAny(in.lower, causeFocusCues) {
		causeRel = "primary focus"
	}
	if containsAny(in.lower, effectFocusCues) {
		effectRel = "primary focus"
	}

	causes := mine(in.sentences, detailedCauseCues, domainCauses(in.domain)...)
	causeSubs := make([]domain.Subtopic, len(causes))
	for i, c := range causes {
		rel := "also contributes"
		if i == 0 {
			rel = "main reason"
		}
		causeSubs[i] = sub(c, rel, det("Mechanism", "works by"), det("Contributing factors", "influenced by"))
	}

	effects := mine(in.sentences, detailedEffectCues, domainEffects(in.domain)...)
	effectSubs := make([]domain.Subtopic, len(effects))
	for i, e := range effects {
		rel := "also results in"
		if i == 0 {
			rel = "major impact"
		}
		effectSubs[i] = sub(e, rel, det("Significance", "important because"), det("Timeline", "occurs"))
	}

	return []domain.Topic{
		{Name: "Causes", Relation: causeRel, Subtopics: causeSubs},
		{Name: "Effects", Relation: effectRel, Subtopics: effectSubs},
		{Name: "Mechanisms", Relation: "operates through", Subtopics: subtopics(
			mine(in.sentences, mechanismCues,
				"Direct interaction pathway", "Sequential process flow", "Feedback loop system"),
			"functions by", det("Key process", "involves"))},
		{Name: "Influencing Factors", Relation: "modified by", Subtopics: subtopics(
			mine(in.sentences, factorCues,
				"Environmental conditions", "System parameters", "External variables"),
			"affects", det("Degree of influence", "impacts by"))},
		{Name: "Examples", Relation: "illustrated by", Subtopics: subtopics(
			mine(in.sentences, ceExampleCues,
				"Real-world scenario", "Common occurrence", "Documented case study"),
			"demonstrates", det("Key insight", "shows that"))},
	}
}

// domainCauses is canned cause content. Science prompts get the
// environmental set.
func domainCauses(d domain.Domain) []string {
	switch d {
	case domain.DomainHealth:
		return []string{"Biological factors", "Environmental exposure", "Lifestyle choices"}
	case domain.DomainTechnology:
		return []string{"Software configuration", "Hardware limitations", "User interaction patterns"}
	case domain.DomainBusiness:
		return []string{"Market conditions", "Strategic decisions", "Competitive pressures"}
	case domain.DomainScience:
		return []string{"Human activity", "Natural processes", "Climate patterns"}
	default:
		return []string{"Primary factor", "Secondary influence", "Contributing element"}
	}
}

func domainEffects(d domain.Domain) []string {
	switch d {
	case domain.DomainHealth:
		return []string{"Symptoms manifestation", "Physiological changes", "Quality of life impact"}
	case domain.DomainTechnology:
		return []string{"System performance", "User experience", "Data integrity"}
	case domain.DomainBusiness:
		return []string{"Profitability changes", "Market position shifts", "Operational efficiency"}
	case domain.DomainScience:
		return []string{"Ecosystem changes", "Resource availability", "Climate patterns"}
	default:
		return []string{"Primary outcome", "Secondary consequence", "Long-term impact"}
	}
}
