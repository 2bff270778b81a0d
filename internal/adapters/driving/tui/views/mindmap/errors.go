package mindmap

import "errors"

// Error definitions for the mind map view.
var (
	// ErrNoMindMapService indicates that no mind map service was provided.
	ErrNoMindMapService = errors.New("mind map service is required")
)
