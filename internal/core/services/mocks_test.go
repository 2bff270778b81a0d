package services

import (
	"context"
	"strings"
	"sync"

	"github.com/custodia-labs/promptmap/internal/core/ports/driven"
)

// mockLLM returns the reply of the first key found in the prompt, or
// fallback when none matches.
type mockLLM struct {
	mu       sync.Mutex
	replies  map[string]string
	fallback string
	err      error
	prompts  []string
	opts     []driven.GenerateOptions
}

func (m *mockLLM) Generate(_ context.Context, prompt string, opts driven.GenerateOptions) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prompts = append(m.prompts, prompt)
	m.opts = append(m.opts, opts)
	if m.err != nil {
		return "", m.err
	}
	for key, reply := range m.replies {
		if strings.Contains(prompt, key) {
			return reply, nil
		}
	}
	return m.fallback, nil
}

func (m *mockLLM) ModelName() string            { return "mock" }
func (m *mockLLM) Ping(_ context.Context) error { return nil }
func (m *mockLLM) Close() error                 { return nil }

func (m *mockLLM) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prompts)
}
