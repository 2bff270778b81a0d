package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/promptmap/internal/core/ports/driven"
)

func TestCached_ReusesReply(t *testing.T) {
	stub := &stubLLM{reply: "Definition: a thing"}
	c, err := NewCached(stub, 4)
	require.NoError(t, err)

	opts := driven.GenerateOptions{MaxTokens: 1000, Temperature: 0.7}
	for i := 0; i < 3; i++ {
		out, err := c.Generate(context.Background(), "define go", opts)
		require.NoError(t, err)
		assert.Equal(t, "Definition: a thing", out)
	}
	assert.Equal(t, 1, stub.callCount())
	assert.Equal(t, 1, c.Len())
}

func TestCached_KeyIncludesOptions(t *testing.T) {
	stub := &stubLLM{reply: "x"}
	c, err := NewCached(stub, 4)
	require.NoError(t, err)

	_, _ = c.Generate(context.Background(), "p", driven.GenerateOptions{Temperature: 0.7})
	_, _ = c.Generate(context.Background(), "p", driven.GenerateOptions{Temperature: 0.2})
	_, _ = c.Generate(context.Background(), "p", driven.GenerateOptions{Topic: "other"})

	assert.Equal(t, 3, stub.callCount())
}

func TestCached_SkipsEmptyAndErrors(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		err   error
	}{
		{"empty reply", "  ", nil},
		{"error", "", errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubLLM{reply: tt.reply, err: tt.err}
			c, err := NewCached(stub, 4)
			require.NoError(t, err)

			_, _ = c.Generate(context.Background(), "p", driven.GenerateOptions{})
			_, _ = c.Generate(context.Background(), "p", driven.GenerateOptions{})

			assert.Equal(t, 2, stub.callCount())
			assert.Zero(t, c.Len())
		})
	}
}

func TestCached_Purge(t *testing.T) {
	stub := &stubLLM{reply: "x"}
	c, err := NewCached(stub, 2)
	require.NoError(t, err)

	_, _ = c.Generate(context.Background(), "p", driven.GenerateOptions{})
	c.Purge()
	assert.Zero(t, c.Len())
}

func TestNewCached_InvalidSize(t *testing.T) {
	_, err := NewCached(&stubLLM{}, 0)
	assert.Error(t, err)
}
