package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/promptmap/internal/core/domain"
)

// PromptInput is the input schema for the mind map tools.
type PromptInput struct {
	Prompt string `json:"prompt" jsonschema:"the text to turn into a mind map"`
	Mode   string `json:"mode,omitempty" jsonschema:"generation mode: structured, assisted, local or simple (default from settings)"`
}

// ClassifyInput is the input schema for the classify_prompt tool.
type ClassifyInput struct {
	Prompt string `json:"prompt" jsonschema:"the text to classify"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "generate_mindmap",
		Description: "Turn a prompt into a laid-out mind map of nodes and labelled edges",
	}, s.handleGenerate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_prompt",
		Description: "Build the topic tree for a prompt without layout",
	}, s.handleAnalyze)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "classify_prompt",
		Description: "Report the prompt type, subject domain and main concept of a prompt",
	}, s.handleClassify)
}

func (s *Server) handleGenerate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PromptInput,
) (*mcp.CallToolResult, domain.MindMapData, error) {
	data, err := s.ports.MindMap.Generate(ctx, input.Prompt, domain.GenerationMode(input.Mode))
	if err != nil {
		return nil, domain.MindMapData{}, err
	}
	return nil, *data, nil
}

func (s *Server) handleAnalyze(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PromptInput,
) (*mcp.CallToolResult, domain.Analysis, error) {
	a, err := s.ports.MindMap.Analyze(ctx, input.Prompt, domain.GenerationMode(input.Mode))
	if err != nil {
		return nil, domain.Analysis{}, err
	}
	return nil, *a, nil
}

func (s *Server) handleClassify(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ClassifyInput,
) (*mcp.CallToolResult, domain.Classification, error) {
	c, err := s.ports.MindMap.Classify(input.Prompt)
	if err != nil {
		return nil, domain.Classification{}, err
	}
	return nil, *c, nil
}
