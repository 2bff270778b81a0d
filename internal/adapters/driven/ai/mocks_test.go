package ai

import (
	"context"
	"sync"

	"github.com/custodia-labs/promptmap/internal/core/ports/driven"
)

// stubLLM counts calls and replies with a fixed string.
type stubLLM struct {
	mu     sync.Mutex
	reply  string
	err    error
	calls  int
	closed bool
}

func (s *stubLLM) Generate(_ context.Context, _ string, _ driven.GenerateOptions) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.reply, s.err
}

func (s *stubLLM) ModelName() string            { return "stub" }
func (s *stubLLM) Ping(_ context.Context) error { return nil }

func (s *stubLLM) Close() error {
	s.closed = true
	return nil
}

func (s *stubLLM) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
