package structure

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/custodia-labs/promptmap/internal/core/ports/driven"
)

// mockLLM answers by the first reply whose key appears in the prompt.
type mockLLM struct {
	mu      sync.Mutex
	replies map[string]string
	err     error
	prompts []string
	opts    []driven.GenerateOptions
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
	return "", nil
}

func (m *mockLLM) ModelName() string            { return "mock" }
func (m *mockLLM) Ping(_ context.Context) error { return nil }
func (m *mockLLM) Close() error                 { return nil }

func (m *mockLLM) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prompts)
}

var errMockDown = errors.New("connection refused")

// mockPromptStore serves templates from a map.
type mockPromptStore struct {
	prompts map[string]string
}

func (m *mockPromptStore) Load(name string) (string, error) {
	if p, ok := m.prompts[name]; ok {
		return p, nil
	}
	return "", errors.New("prompt not found")
}

func (m *mockPromptStore) Reload() {}
