package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/promptmap/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for promptmap resources.
	uriScheme = "promptmap://"

	promptTypesURI = uriScheme + "prompt-types"
)

// promptTypeInfo describes one prompt type for clients.
type promptTypeInfo struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         promptTypesURI,
		Name:        "prompt-types",
		Description: "Prompt types the classifier can assign",
		MIMEType:    "application/json",
	}, s.handlePromptTypesResource)
}

func (s *Server) handlePromptTypesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	types := domain.AllPromptTypes()
	infos := make([]promptTypeInfo, len(types))
	for i, t := range types {
		infos[i] = promptTypeInfo{Type: t.String(), Description: t.Description()}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling prompt types: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
