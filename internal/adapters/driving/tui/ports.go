// Package tui provides an interactive terminal user interface for promptmap.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/promptmap/internal/core/domain"
	"github.com/custodia-labs/promptmap/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
type Ports struct {
	// MindMap builds mind maps from prompts. Required.
	MindMap driving.MindMapService

	// Settings manages application settings. Optional; without it the
	// settings view reports that it is unavailable.
	Settings driving.SettingsService

	// DefaultMode is the mode the mind map view starts in.
	// Empty means structured.
	DefaultMode domain.GenerationMode
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(mindMap driving.MindMapService, settings driving.SettingsService) *Ports {
	return &Ports{
		MindMap:  mindMap,
		Settings: settings,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.MindMap == nil {
		return ErrMissingMindMapService
	}
	return nil
}
