// Package driving holds the interfaces the CLI, HTTP API, MCP server and
// TUI call into. MindMapService runs the prompt pipeline and
// SettingsService reads and writes user settings. Both are implemented in
// internal/core/services.
package driving
