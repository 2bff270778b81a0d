// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data under ~/.promptmap.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage
//   - PromptStore: user-editable collaborator prompt templates
//   - WatchPrompts: reloads the PromptStore when template files change
package file
