// Package structure builds the Topic -> Subtopic -> Detail tree for a
// classified prompt.
//
// A Generator dispatches on the prompt type to one of eight builders. Each
// builder is a fixed list of named topic slots. A slot first mines the
// prompt's sentences for items matching slot-specific cue words and falls
// back to canned content, picked by task or domain, when fewer than two
// items are found.
//
// With StrategyAssisted and a collaborator configured, the Concept builder
// asks the collaborator for each slot instead and parses the reply; any
// failed or malformed reply falls back to the same canned defaults.
//
// BuildOutline parses the free-form MAIN TOPIC / DESCRIPTION / SUBTOPICS
// reply used by structured generation.
package structure
