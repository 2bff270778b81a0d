package mcp

import (
	"github.com/custodia-labs/promptmap/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
type Ports struct {
	// MindMap builds and classifies mind maps.
	MindMap driving.MindMapService

	// Version is reported to clients. Optional.
	Version string
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.MindMap == nil {
		return ErrMissingMindMapService
	}
	return nil
}
