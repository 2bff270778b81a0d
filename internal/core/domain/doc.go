// Package domain defines the core entities for promptmap.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - PromptType: the rhetorical shape of a prompt (how-to, comparison, ...)
//   - Domain: the subject area used to flavour canned content
//   - Analysis: the Topic -> Subtopic -> Detail tree derived from a prompt
//   - MindMapData: the node/edge graph handed to renderers
//   - ParsedReply: typed shapes parsed out of collaborator replies
package domain
