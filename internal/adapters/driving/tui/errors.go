package tui

import "errors"

// ErrMissingMindMapService is returned when the mind map service is not provided.
var ErrMissingMindMapService = errors.New("tui: mind map service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
