package domain

// Origin records which path produced an Analysis.
// The layout engine uses it to pick the fan geometry.
type Origin string

// Available origins.
const (
	// OriginLocal is produced by the heuristic builders only.
	OriginLocal Origin = "local"

	// OriginAssisted is produced with per-slot collaborator content.
	OriginAssisted Origin = "assisted"

	// OriginStructured is converted from a collaborator outline.
	OriginStructured Origin = "structured"
)

// Analysis is the tree derived from one prompt.
// The tree is at most three levels deep: Topic -> Subtopic -> Detail.
type Analysis struct {
	// MainConcept is the root label. Never empty after extraction.
	MainConcept string `json:"mainConcept"`

	// PromptType is the classified rhetorical shape.
	PromptType PromptType `json:"promptType"`

	// Domain is the identified subject area.
	Domain Domain `json:"domain,omitempty"`

	// Description overrides the main node's details when set.
	Description string `json:"description,omitempty"`

	// Origin records which path built the tree.
	Origin Origin `json:"origin,omitempty"`

	// Topics are the first ring beneath the main concept.
	Topics []Topic `json:"topics"`
}

// Topic is a first-level branch of the tree.
type Topic struct {
	Name      string     `json:"name"`
	Relation  string     `json:"relation"`
	Details   string     `json:"details,omitempty"`
	Subtopics []Subtopic `json:"subtopics"`
}

// Subtopic is a second-level branch.
type Subtopic struct {
	Name     string   `json:"name"`
	Relation string   `json:"relation"`
	Details  string   `json:"details,omitempty"`
	Children []Detail `json:"children,omitempty"`

	// Kind overrides the node styling tag. Empty means NodeKindSubtopic.
	Kind NodeKind `json:"kind,omitempty"`
}

// Detail is a leaf of the tree.
type Detail struct {
	Name     string `json:"name"`
	Relation string `json:"relation"`
	Details  string `json:"details,omitempty"`
}

// CountNodes returns the number of nodes the tree converts to,
// including the main node.
func (a *Analysis) CountNodes() int {
	n := 1
	for _, t := range a.Topics {
		n++
		for _, s := range t.Subtopics {
			n += 1 + len(s.Children)
		}
	}
	return n
}

// Classification is the cheap front half of the pipeline: what kind of
// prompt this is and what it is about.
type Classification struct {
	PromptType  PromptType `json:"type"`
	Domain      Domain     `json:"domain"`
	MainConcept string     `json:"main_concept"`
}
