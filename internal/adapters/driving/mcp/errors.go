// Package mcp provides an MCP (Model Context Protocol) server adapter for promptmap.
// It lets AI assistants turn prompts into mind maps and inspect how a prompt
// is classified.
package mcp

import "errors"

// ErrMissingMindMapService is returned when the mind map service is not provided.
var ErrMissingMindMapService = errors.New("mcp: mind map service is required")
