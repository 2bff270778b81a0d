package domain

const unknownDescription = "Unknown"

// PromptType is the rhetorical shape of a prompt.
// It selects which topic builder produces the Analysis tree.
type PromptType string

// Available prompt types.
const (
	// PromptTypeHowTo asks for a procedure ("how to bake bread").
	PromptTypeHowTo PromptType = "how_to"

	// PromptTypeFormula asks about an equation or calculation.
	PromptTypeFormula PromptType = "formula"

	// PromptTypeComparison weighs two items against each other.
	PromptTypeComparison PromptType = "comparison"

	// PromptTypeProblemSolution asks how to resolve a problem.
	PromptTypeProblemSolution PromptType = "problem_solution"

	// PromptTypeDefinition asks what something is.
	PromptTypeDefinition PromptType = "definition"

	// PromptTypeList asks for types, kinds or examples of something.
	PromptTypeList PromptType = "list"

	// PromptTypeCauseEffect asks about causes, effects or impacts.
	PromptTypeCauseEffect PromptType = "cause_effect"

	// PromptTypeConcept is the default explanation shape.
	PromptTypeConcept PromptType = "concept"
)

// IsValid returns true if the prompt type is recognised.
func (t PromptType) IsValid() bool {
	switch t {
	case PromptTypeHowTo, PromptTypeFormula, PromptTypeComparison, PromptTypeProblemSolution,
		PromptTypeDefinition, PromptTypeList, PromptTypeCauseEffect, PromptTypeConcept:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t PromptType) String() string {
	return string(t)
}

// Description returns a human-readable description of the prompt type.
func (t PromptType) Description() string {
	switch t {
	case PromptTypeHowTo:
		return "How-to (steps and process)"
	case PromptTypeFormula:
		return "Formula (equation and variables)"
	case PromptTypeComparison:
		return "Comparison (two items side by side)"
	case PromptTypeProblemSolution:
		return "Problem/Solution (causes and fixes)"
	case PromptTypeDefinition:
		return "Definition (meaning and characteristics)"
	case PromptTypeList:
		return "List (types and categories)"
	case PromptTypeCauseEffect:
		return "Cause/Effect (causes, effects, mechanisms)"
	case PromptTypeConcept:
		return "Concept (general explanation)"
	default:
		return unknownDescription
	}
}

// AllPromptTypes returns every prompt type in classification order.
func AllPromptTypes() []PromptType {
	return []PromptType{
		PromptTypeHowTo,
		PromptTypeDefinition,
		PromptTypeConcept,
		PromptTypeFormula,
		PromptTypeComparison,
		PromptTypeProblemSolution,
		PromptTypeList,
		PromptTypeCauseEffect,
	}
}

// Domain is the subject area of a prompt.
// It is only used to flavour canned fallback content.
type Domain string

// Available domains, in tie-break order.
const (
	DomainTechnology Domain = "technology"
	DomainScience    Domain = "science"
	DomainMath       Domain = "math"
	DomainBusiness   Domain = "business"
	DomainEducation  Domain = "education"
	DomainHealth     Domain = "health"
	DomainArts       Domain = "arts"
	DomainPhilosophy Domain = "philosophy"
	DomainHistory    Domain = "history"
	DomainSports     Domain = "sports"
	DomainGeneral    Domain = "general"
)

// IsValid returns true if the domain is recognised.
func (d Domain) IsValid() bool {
	switch d {
	case DomainTechnology, DomainScience, DomainMath, DomainBusiness, DomainEducation,
		DomainHealth, DomainArts, DomainPhilosophy, DomainHistory, DomainSports, DomainGeneral:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (d Domain) String() string {
	return string(d)
}
