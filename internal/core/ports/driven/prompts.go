package driven

// PromptStore provides access to collaborator prompt templates.
// Implementations may load prompts from files, embed them in the binary,
// or fetch them from a remote configuration service.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	// If the prompt is not found, implementations should return a sensible default
	// or an error, depending on whether the prompt is required.
	Load(name string) (string, error)

	// Reload clears any cached prompts, forcing fresh loads on next access.
	// This is useful when prompts may have been edited on disk.
	Reload()
}

// Well-known prompt names used throughout the application.
// Every template expects exactly one %s placeholder: the prompt text for
// PromptStructure and the main concept for the others.
const (
	// PromptStructure asks for a MAIN TOPIC / DESCRIPTION / SUBTOPICS outline.
	PromptStructure = "structure"

	// PromptDefinition asks for a one or two sentence definition.
	PromptDefinition = "definition"

	// PromptCore asks for the fundamental essence of a concept.
	PromptCore = "core"

	// PromptComponents asks for "Name: Description" component lines.
	PromptComponents = "components"

	// PromptExamples asks for a plain list of examples.
	PromptExamples = "examples"

	// PromptApplications asks for "Name: Description" application lines.
	PromptApplications = "applications"

	// PromptProsCons asks for advantage and limitation sections.
	PromptProsCons = "pros_cons"
)

// AllPromptNames returns every well-known prompt name.
func AllPromptNames() []string {
	return []string{
		PromptStructure,
		PromptDefinition,
		PromptCore,
		PromptComponents,
		PromptExamples,
		PromptApplications,
		PromptProsCons,
	}
}

// PromptStoreAware is an optional interface for services that can use custom prompts.
type PromptStoreAware interface {
	// SetPromptStore sets the prompt store for loading customisable prompts.
	// If not set, the service should use hardcoded default prompts.
	SetPromptStore(store PromptStore)
}
