package structure

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/custodia-labs/promptmap/internal/analyzer"
	"github.com/custodia-labs/promptmap/internal/core/domain"
	"github.com/custodia-labs/promptmap/internal/logger"
)

// task is the kind of activity a how-to prompt describes.
type task string

const (
	taskCooking      task = "cooking"
	taskBuilding     task = "building"
	taskFixing       task = "fixing"
	taskLearning     task = "learning"
	taskWriting      task = "writing"
	taskInstallation task = "installation"
	taskGeneral      task = "general"
)

// taskCues is checked in order; the first task with a cue present wins.
var taskCues = []struct {
	task task
	cues []string
}{
	{taskCooking, []string{"cook", "bake", "recipe", "food"}},
	{taskBuilding, []string{"build", "make", "create", "construct"}},
	{taskFixing, []string{"fix", "repair", "solve", "troubleshoot"}},
	{taskLearning, []string{"learn", "study", "understand", "master"}},
	{taskWriting, []string{"write", "draft", "compose"}},
	{taskInstallation, []string{"install", "setup", "configure", "deploy"}},
}

func identifyTask(lower string) task {
	for _, row := range taskCues {
		if containsAny(lower, row.cues) {
			return row.task
		}
	}
	return taskGeneral
}

var (
	numberedLineRe = regexp.MustCompile(`^\d+\.\s`)
	bulletLineRe   = regexp.MustCompile(`^[•*-]\s`)
)

// sequenceWords mark a step inside running prose.
var sequenceWords = []string{
	"first", "initially", "begin by", "start", "then",
	"next", "after", "subsequently", "finally", "lastly",
}

var sequenceWordRes = func() []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(sequenceWords))
	for i, w := range sequenceWords {
		out[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(w) + `\b`)
	}
	return out
}()

// explicitSteps finds steps written out in the prompt: numbered lines,
// then bullet lines, then sentences containing sequence words. It returns
// nil unless at least two steps are found.
func explicitSteps(text string, sentences []string) []string {
	lines := strings.Split(text, "\n")
	if steps := markedLines(lines, numberedLineRe); len(steps) >= minMatches {
		return steps
	}
	if steps := markedLines(lines, bulletLineRe); len(steps) >= minMatches {
		return steps
	}

	var steps []string
	for _, s := range sentences {
		lower := strings.ToLower(s)
		for i, w := range sequenceWords {
			if !strings.Contains(lower, w) {
				continue
			}
			loc := sequenceWordRes[i].FindStringIndex(s)
			if loc == nil {
				continue
			}
			if rest := strings.TrimSpace(s[loc[1]:]); rest != "" {
				steps = append(steps, rest)
			}
			break
		}
	}
	if len(steps) < minMatches {
		return nil
	}
	return steps
}

func markedLines(lines []string, marker *regexp.Regexp) []string {
	var out []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if loc := marker.FindStringIndex(line); loc != nil {
			out = append(out, strings.TrimSpace(line[loc[1]:]))
		}
	}
	return out
}

func stepRelation(i, n int) string {
	switch {
	case i == 0:
		return "start with"
	case i == n-1:
		return "finish with"
	default:
		return "then"
	}
}

// stepDetails picks two child details for an explicit step from its
// wording, or from its position when the wording gives no hint.
func stepDetails(step string, index int) []domain.Detail {
	lower := strings.ToLower(step)
	switch {
	case index == 0 || containsAny(lower, []string{"prepare", "gather"}):
		return []domain.Detail{det("Required materials", "needs"), det("Preparation time", "takes approximately")}
	case containsAny(lower, []string{"mix", "combine", "assemble"}):
		return []domain.Detail{det("Proper technique", "requires"), det("Common mistakes", "avoid")}
	case containsAny(lower, []string{"cook", "bake", "heat"}):
		return []domain.Detail{det("Temperature setting", "at"), det("Timing guidelines", "for")}
	case containsAny(lower, []string{"check", "test", "verify"}):
		return []domain.Detail{det("Success indicators", "look for"), det("Troubleshooting", "if needed")}
	case index == 1:
		return []domain.Detail{det("Key technique", "using"), det("Important considerations", "with")}
	case index == 2:
		return []domain.Detail{det("Progress indicators", "looking for"), det("Common challenges", "overcoming")}
	default:
		return []domain.Detail{det("Finishing touches", "adding"), det("Quality check", "performing")}
	}
}

func howToTopics(in input) []domain.Topic {
	t := identifyTask(in.lower)
	logger.Debug("structure: how-to task %s", t)

	var first domain.Topic
	if steps := explicitSteps(in.text, in.sentences); steps != nil {
		subs := make([]domain.Subtopic, len(steps))
		for i, step := range steps {
			subs[i] = sub(
				fmt.Sprintf("Step %d: %s", i+1, analyzer.Condense(step)),
				stepRelation(i, len(steps)),
				stepDetails(step, i)...,
			)
		}
		first = domain.Topic{Name: "Steps", Relation: "requires", Subtopics: subs}
	} else {
		first = domain.Topic{Name: "Process", Relation: "follows", Subtopics: logicalSteps(t)}
	}

	return []domain.Topic{
		first,
		{Name: "Requirements", Relation: "needs", Subtopics: requirements(t)},
		{Name: "Best Practices", Relation: "considers", Subtopics: practices(t)},
		{Name: "Challenges", Relation: "may face", Subtopics: challenges(t)},
		{Name: "Benefits", Relation: "results in", Subtopics: []domain.Subtopic{
			sub("Primary benefits", "results in", det("Main advantage", "providing"), det("Key outcome", "achieving")),
			sub("Secondary benefits", "also provides", det("Additional value", "offering"), det("Long-term impact", "creating")),
		}},
	}
}

// logicalSteps returns a four-stage process for tasks with no explicit steps.
func logicalSteps(t task) []domain.Subtopic {
	switch t {
	case taskCooking:
		return []domain.Subtopic{
			sub("Gather ingredients", "start with", det("Check quantities", "ensuring"), det("Prepare substitutions", "if needed")),
			sub("Prepare ingredients", "then", det("Wash and clean", "first"), det("Cut and measure", "precisely")),
			sub("Combine and cook", "next", det("Follow recipe order", "carefully"), det("Monitor temperature", "constantly")),
			sub("Finish and serve", "finally", det("Check doneness", "by testing"), det("Plate presentation", "considering")),
		}
	case taskBuilding:
		return []domain.Subtopic{
			sub("Gather materials and tools", "start with", det("Check inventory", "against"), det("Prepare workspace", "by clearing")),
			sub("Prepare components", "then", det("Measure twice", "before cutting"), det("Pre-assemble sections", "when possible")),
			sub("Assemble main structure", "next", det("Follow blueprint", "precisely"), det("Secure connections", "firmly")),
			sub("Finish and test", "finally", det("Add finishing touches", "carefully"), det("Test functionality", "thoroughly")),
		}
	case taskFixing:
		return []domain.Subtopic{
			sub("Identify the problem", "start with", det("Observe symptoms", "carefully"), det("Gather information", "systematically")),
			sub("Diagnose root cause", "then", det("Test hypotheses", "methodically"), det("Isolate variables", "one by one")),
			sub("Implement solution", "next", det("Gather necessary tools", "before starting"), det("Follow repair sequence", "step by step")),
			sub("Test and verify", "finally", det("Check functionality", "thoroughly"), det("Monitor for recurrence", "over time")),
		}
	case taskLearning:
		return []domain.Subtopic{
			sub("Set clear goals", "start with", det("Define objectives", "specifically"), det("Create timeline", "realistically")),
			sub("Gather resources", "then", det("Find quality materials", "from reliable sources"), det("Organize study environment", "for focus")),
			sub("Study systematically", "next", det("Use active learning", "not just reading"), det("Take effective notes", "for review")),
			sub("Practice and apply", "finally", det("Test knowledge", "regularly"), det("Teach others", "to reinforce")),
		}
	default:
		return []domain.Subtopic{
			sub("Preparation", "start with", det("Gather requirements", "completely"), det("Plan approach", "strategically")),
			sub("Initial steps", "then", det("Begin basics", "methodically"), det("Establish foundation", "solidly")),
			sub("Main process", "next", det("Execute core tasks", "carefully"), det("Monitor progress", "continuously")),
			sub("Completion", "finally", det("Verify results", "thoroughly"), det("Make adjustments", "as needed")),
		}
	}
}

func requirements(t task) []domain.Subtopic {
	switch t {
	case taskCooking:
		return []domain.Subtopic{
			sub("Ingredients", "requires", det("Fresh components", "for quality"), det("Proper quantities", "measured accurately")),
			sub("Kitchen equipment", "needs", det("Essential tools", "such as"), det("Optional gadgets", "for convenience")),
		}
	case taskBuilding:
		return []domain.Subtopic{
			sub("Materials", "requires", det("Quality components", "for durability"), det("Correct specifications", "matching plans")),
			sub("Tools", "needs", det("Essential equipment", "such as"), det("Safety gear", "for protection")),
		}
	case taskFixing:
		return []domain.Subtopic{
			sub("Diagnostic tools", "requires", det("Testing equipment", "for assessment"), det("Reference materials", "for guidance")),
			sub("Repair supplies", "needs", det("Replacement parts", "matching specifications"), det("Repair tools", "appropriate for task")),
		}
	default:
		return []domain.Subtopic{
			sub("Essential resources", "requires", det("Primary materials", "for core tasks"), det("Supporting elements", "for completion")),
			sub("Knowledge prerequisites", "needs", det("Basic understanding", "of fundamentals"), det("Key concepts", "to comprehend")),
		}
	}
}

func practices(t task) []domain.Subtopic {
	switch t {
	case taskCooking:
		return []domain.Subtopic{
			sub("Preparation tips", "improves with", det("Mise en place", "organizing before starting"), det("Ingredient handling", "for best results")),
			sub("Cooking techniques", "enhanced by", det("Temperature control", "maintaining properly"), det("Timing precision", "watching carefully")),
		}
	case taskBuilding:
		return []domain.Subtopic{
			sub("Planning advice", "benefits from", det("Detailed blueprints", "following closely"), det("Material allowances", "accounting for waste")),
			sub("Construction techniques", "improved with", det("Proper measurements", "checking twice"), det("Quality joints", "ensuring strength")),
		}
	default:
		return []domain.Subtopic{
			sub("Efficiency strategies", "optimized by", det("Time management", "prioritizing tasks"), det("Resource allocation", "using wisely")),
			sub("Quality assurance", "maintained through", det("Regular checks", "throughout process"), det("Attention to detail", "at every stage")),
		}
	}
}

func challenges(t task) []domain.Subtopic {
	switch t {
	case taskCooking:
		return []domain.Subtopic{
			sub("Common mistakes", "to avoid", det("Improper measurements", "leading to"), det("Temperature issues", "resulting in")),
			sub("Troubleshooting", "solutions for", det("Texture problems", "fixed by"), det("Flavor adjustments", "corrected with")),
		}
	case taskBuilding:
		return []domain.Subtopic{
			sub("Structural issues", "to prevent", det("Alignment problems", "causing"), det("Stability concerns", "addressed by")),
			sub("Material challenges", "overcome by", det("Quality variations", "managed through"), det("Compatibility issues", "resolved with")),
		}
	default:
		return []domain.Subtopic{
			sub("Common obstacles", "to overcome", det("Frequent problems", "encountered during"), det("Typical setbacks", "managed by")),
			sub("Error prevention", "strategies for", det("Critical checkpoints", "established at"), det("Verification methods", "implemented through")),
		}
	}
}
