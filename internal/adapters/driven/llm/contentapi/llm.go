// Package contentapi provides an LLM service adapter that forwards requests
// to a generate-content HTTP endpoint, such as another promptmap server.
package contentapi

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/custodia-labs/promptmap/internal/adapters/driven/llm/httpjson"
	"github.com/custodia-labs/promptmap/internal/core/ports/driven"
)

var _ driven.LLMService = (*LLMService)(nil)

// Default configuration values.
const (
	DefaultPath    = "/api/generate-content"
	DefaultTimeout = 120 * time.Second

	modelName = "generate-content"
)

// Config holds configuration for the endpoint adapter.
type Config struct {
	// BaseURL is the server root, e.g. http://localhost:8080 (required).
	BaseURL string

	// Path is the route on BaseURL (default: /api/generate-content).
	Path string

	// Timeout is the request timeout (default: 120s).
	Timeout time.Duration
}

// Request is the generate-content request body.
type Request struct {
	Topic       string `json:"topic"`
	MainConcept string `json:"mainConcept"`
	Prompt      string `json:"prompt,omitempty"`
}

// Response is the generate-content response body. Content is set on
// success; Error, Details and Status describe a failure.
type Response struct {
	Content string `json:"content,omitempty"`
	Error   string `json:"error,omitempty"`
	Details string `json:"details,omitempty"`
	Status  int    `json:"status,omitempty"`
}

// LLMService posts prompts to a generate-content endpoint.
type LLMService struct {
	http     *httpjson.Client
	endpoint string
	baseURL  string
}

// NewLLMService creates a new endpoint adapter.
func NewLLMService(cfg Config) (*LLMService, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("contentapi: base URL is required")
	}
	if cfg.Path == "" {
		cfg.Path = DefaultPath
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	base := strings.TrimRight(cfg.BaseURL, "/")
	return &LLMService{
		http:     httpjson.New("contentapi", cfg.Timeout, nil),
		endpoint: base + "/" + strings.TrimLeft(cfg.Path, "/"),
		baseURL:  base,
	}, nil
}

// Generate posts {topic, mainConcept, prompt}. Topic and MainConcept come
// from opts and default to the prompt itself. Generation parameters are
// chosen by the server.
func (s *LLMService) Generate(ctx context.Context, prompt string, opts driven.GenerateOptions) (string, error) {
	resp, err := s.http.Post(ctx, s.endpoint, Request{
		Topic:       firstNonEmpty(opts.Topic, prompt),
		MainConcept: firstNonEmpty(opts.MainConcept, opts.Topic, prompt),
		Prompt:      prompt,
	})
	if err != nil {
		return "", err
	}

	var out Response
	if err := resp.Decode(&out); err != nil {
		return "", s.http.Malformed("error parsing API response: %v", err)
	}
	if !resp.OK() {
		status := out.Status
		if status == 0 {
			status = resp.Status
		}
		return "", s.http.Unavailable("API error (%d): %s", status, firstNonEmpty(out.Details, out.Error, "unknown API error"))
	}
	return out.Content, nil
}

// ModelName identifies the endpoint.
func (s *LLMService) ModelName() string {
	return modelName
}

// Ping checks the server's health route.
func (s *LLMService) Ping(ctx context.Context) error {
	return s.http.Ping(ctx, s.baseURL+"/healthz")
}

// Close releases resources.
func (s *LLMService) Close() error {
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
