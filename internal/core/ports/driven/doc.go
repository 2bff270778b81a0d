// Package driven holds the interfaces core services call out through.
//
// ConfigStore and PromptStore are always wired. LLMService and
// AIConfigValidator may be nil: without an LLM every generation mode
// falls back to the local builders, and settings are saved unchecked.
//
// This package imports domain only. Adapters import it, never the reverse.
package driven
