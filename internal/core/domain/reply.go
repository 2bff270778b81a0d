package domain

// ParsedReply is a typed shape parsed out of a collaborator reply.
// The set of variants is closed; switch on the concrete type.
type ParsedReply interface {
	parsedReply()
}

// ParsedSection is one "Name: Description" line.
type ParsedSection struct {
	Name        string
	Description string
}

// ParsedSections is a reply made of "Name: Description" lines.
type ParsedSections struct {
	Items []ParsedSection
}

// ParsedList is a reply made of plain list lines.
type ParsedList struct {
	Items []string
}

// ParsedProsCons is a reply split into advantage and limitation sections.
type ParsedProsCons struct {
	Advantages  []string
	Limitations []string
}

// OutlineDetail is a leaf of a collaborator outline.
type OutlineDetail struct {
	Title       string
	Description string
	Relation    string
}

// OutlineSubtopic is a first-level entry of a collaborator outline.
type OutlineSubtopic struct {
	Title       string
	Description string
	Relation    string
	Details     []OutlineDetail
}

// ParsedOutline is a reply following the MAIN TOPIC / DESCRIPTION /
// SUBTOPICS convention.
type ParsedOutline struct {
	MainTopic   string
	Description string
	Subtopics   []OutlineSubtopic
}

func (ParsedSections) parsedReply() {}
func (ParsedList) parsedReply()     {}
func (ParsedProsCons) parsedReply() {}
func (ParsedOutline) parsedReply()  {}
