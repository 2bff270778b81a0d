package structure

import "github.com/custodia-labs/promptmap/internal/core/domain"

var (
	causeCues      = []string{"cause", "due to", "because", "result of", "stems from", "root", "source"}
	symptomCues    = []string{"symptom", "sign", "indication", "manifest", "exhibit", "display", "show"}
	solutionCues   = []string{"solution", "fix", "resolve", "solve", "address", "correct", "remedy"}
	preventionCues = []string{"prevent", "avoid", "mitigate", "reduce risk", "precaution", "proactive"}
	longTermCues   = []string{"long-term", "permanent", "sustainable", "ongoing", "future", "strategic"}
)

func problemSolutionTopics(in input) []domain.Topic {
	solutions := mine(in.sentences, solutionCues,
		"Update system components", "Reconfigure settings", "Implement workaround")
	solutionSubs := make([]domain.Subtopic, len(solutions))
	for i, s := range solutions {
		rel := "alternative"
		if i == 0 {
			rel = "best approach"
		}
		solutionSubs[i] = sub(s, rel, det("Implementation steps", "requires"), det("Expected outcome", "results in"))
	}

	return []domain.Topic{
		{Name: "Causes", Relation: "caused by", Subtopics: subtopics(
			mine(in.sentences, causeCues,
				"Underlying technical issues", "Configuration problems", "Resource limitations"),
			"leads to", det("Contributing factors", "influenced by"))},
		{Name: "Symptoms", Relation: "manifests as", Subtopics: subtopics(
			mine(in.sentences, symptomCues,
				"Error messages appearing", "System performance degradation", "Unexpected behavior"),
			"indicated by", det("Severity indicator", "suggests"))},
		{Name: "Solutions", Relation: "resolved by", Subtopics: solutionSubs},
		{Name: "Prevention", Relation: "avoided by", Subtopics: subtopics(
			mine(in.sentences, preventionCues,
				"Regular maintenance and updates", "Proper configuration practices", "Monitoring and early detection"),
			"helps prevent", det("Best practice", "follow"))},
		{Name: "Long-term Strategies", Relation: "managed with", Subtopics: subtopics(
			mine(in.sentences, longTermCues,
				"Implement comprehensive monitoring system",
				"Develop standardized procedures",
				"Invest in training and documentation"),
			"involves", det("Key benefit", "provides"))},
	}
}
