package structure

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/custodia-labs/promptmap/internal/analyzer"
	"github.com/custodia-labs/promptmap/internal/core/domain"
)

// DefaultFormula is returned when no expression can be found.
const DefaultFormula = "f(x) = result"

var (
	// Operands are single tokens so that trailing prose is not swallowed.
	equationRe       = regexp.MustCompile(`([A-Za-z]\w*\s*=\s*[\w.()^]+(?:\s*[+\-*/^]\s*[\w.()^]+)*)`)
	expressionRe     = regexp.MustCompile(`([\w.()^]+(?:\s*[+\-*/^]\s*[\w.()^]+)+)`)
	formulaKeywordRe = regexp.MustCompile(`(?i)(?:formula|equation|expression)(?:\s+(?:for|of))?[\s:]+([A-Za-z0-9\s+\-*/^()=]+)`)
	operatorRe       = regexp.MustCompile(`[=+\-*/^]`)
	identifierRe     = regexp.MustCompile(`[A-Za-z]\w*`)
	unitsRe          = regexp.MustCompile(`measured in ([a-zA-Z]+)`)
)

// ExtractFormula returns the first equation in text, then the first
// arithmetic expression, then whatever follows "formula:", and finally
// DefaultFormula.
func ExtractFormula(text string) string {
	if m := equationRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := expressionRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := formulaKeywordRe.FindStringSubmatch(text); m != nil {
		if f := strings.TrimSpace(m[1]); f != "" {
			return f
		}
	}
	return DefaultFormula
}

// Variable is one symbol of a formula.
type Variable struct {
	Symbol      string
	Description string
	Units       string
}

// symbolNames is the built-in meaning of common single-letter symbols.
var symbolNames = map[string]string{
	"x": "Input value",
	"y": "Output value",
	"t": "Time",
	"v": "Velocity",
	"a": "Acceleration",
	"m": "Mass",
	"f": "Force",
	"e": "Energy",
	"p": "Pressure",
	"r": "Radius",
}

// ExtractVariables lists the identifiers of formula in order of first
// appearance. A description is taken from a sentence that defines the
// symbol ("v is ...", "where v ..."), else from the symbol dictionary,
// else "Variable". Generic x, y and k are returned when formula has no
// operator or no identifiers.
func ExtractVariables(text, formula string) []Variable {
	sentences := analyzer.SplitSentences(text)
	var symbols []string
	if operatorRe.MatchString(formula) {
		symbols = unique(identifierRe.FindAllString(formula, -1), -1)
	}
	var vars []Variable
	for _, symbol := range symbols {
		v := Variable{Symbol: symbol}
		if s, ok := symbolSentence(sentences, symbol); ok {
			v.Description = analyzer.Condense(s)
			if m := unitsRe.FindStringSubmatch(s); m != nil {
				v.Units = m[1]
			}
		} else if name, ok := symbolNames[strings.ToLower(symbol)]; ok && len(symbol) == 1 {
			v.Description = name
		} else {
			v.Description = "Variable"
		}
		vars = append(vars, v)
	}
	if len(vars) == 0 {
		vars = []Variable{
			{Symbol: "x", Description: "Input variable", Units: "units"},
			{Symbol: "y", Description: "Output variable", Units: "units"},
			{Symbol: "k", Description: "Constant factor"},
		}
	}
	return vars
}

func symbolSentence(sentences []string, symbol string) (string, bool) {
	q := regexp.QuoteMeta(strings.ToLower(symbol))
	re := regexp.MustCompile(`(?i)\b` + q + `\s+(?:is|represents|denotes|stands for)\b|\bwhere\s+` + q + `\b`)
	for _, s := range sentences {
		if re.MatchString(s) {
			return s, true
		}
	}
	return "", false
}

var (
	calculationCues      = []string{"step", "first", "then", "next", "finally", "calculate", "compute", "determine"}
	formulaUseCues       = []string{"used for", "applied in", "application", "utilized in", "implemented in", "useful for", "helps to"}
	formulaConstraintCue = []string{"valid", "constraint", "limitation", "assumption", "condition", "restricted", "only if", "requires that"}
)

func formulaTopics(in input) []domain.Topic {
	formula := ExtractFormula(in.text)

	var varSubs []domain.Subtopic
	for _, v := range ExtractVariables(in.text, formula) {
		units := v.Units
		if units == "" {
			units = "Units/dimensions"
		}
		varSubs = append(varSubs, sub(v.Symbol, "where", det(v.Description, "represents"), det(units, "measured in")))
	}

	steps := calculationSteps(in.sentences)
	stepSubs := make([]domain.Subtopic, len(steps))
	for i, step := range steps {
		rel := "then"
		if i == 0 {
			rel = "start with"
		}
		stepSubs[i] = sub(fmt.Sprintf("Step %d: %s", i+1, step), rel, det("Key consideration", "note that"))
	}

	return []domain.Topic{
		{Name: "Formula", Relation: "expressed as", Subtopics: []domain.Subtopic{{
			Name:     formula,
			Relation: "written as",
			Kind:     domain.NodeKindFormula,
			Children: []domain.Detail{det("Standard form", "represented by"), det("Alternative forms", "also written as")},
		}}},
		{Name: "Variables", Relation: "uses", Subtopics: varSubs},
		{Name: "Calculation Steps", Relation: "solved by", Subtopics: stepSubs},
		{Name: "Applications", Relation: "applied in", Subtopics: subtopics(
			mine(in.sentences, formulaUseCues, formulaApplications(in.domain)...),
			"used for", det("Example scenario", "such as"))},
		{Name: "Constraints", Relation: "valid when", Subtopics: subtopics(
			mine(in.sentences, formulaConstraintCue,
				"Valid only within specific parameter ranges",
				"Assumes ideal conditions",
				"Neglects certain real-world factors"),
			"requires", det("Implications", "means that"))},
	}
}

// calculationSteps mines up to four step sentences. Unlike other slots the
// generic steps replace, rather than extend, a short mined list.
func calculationSteps(sentences []string) []string {
	if found := matching(sentences, calculationCues); len(found) >= minMatches {
		return condenseAll(found, 4)
	}
	return []string{
		"Identify all variables in the formula",
		"Substitute known values into the equation",
		"Perform the mathematical operations in the correct order",
		"Verify the result and check the units",
	}
}

func formulaApplications(d domain.Domain) []string {
	switch d {
	case domain.DomainMath:
		return []string{"Mathematical problem solving", "Algebraic calculations", "Geometric analysis"}
	case domain.DomainScience:
		return []string{"Motion analysis", "Force calculations", "Energy transformations"}
	case domain.DomainTechnology:
		return []string{"Design calculations", "System analysis", "Performance prediction"}
	case domain.DomainBusiness:
		return []string{"Investment analysis", "Risk assessment", "Financial forecasting"}
	default:
		return []string{"Practical calculations", "Quantitative analysis", "Predictive modeling"}
	}
}
