package ai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/custodia-labs/promptmap/internal/core/ports/driven"
	"github.com/custodia-labs/promptmap/internal/logger"
)

// Ensure Cached implements the interface.
var _ driven.LLMService = (*Cached)(nil)

// Cached keeps recent non-empty collaborator replies in an LRU keyed by
// prompt and options. Errors and empty replies are not cached.
type Cached struct {
	driven.LLMService
	replies *lru.Cache[string, string]
}

// NewCached wraps svc with an LRU of size entries.
func NewCached(svc driven.LLMService, size int) (*Cached, error) {
	c, err := lru.New[string, string](size)
	if err != nil {
		return nil, fmt.Errorf("create reply cache: %w", err)
	}
	return &Cached{LLMService: svc, replies: c}, nil
}

// Generate returns a cached reply when one exists.
func (c *Cached) Generate(ctx context.Context, prompt string, opts driven.GenerateOptions) (string, error) {
	key := cacheKey(c.ModelName(), prompt, opts)
	if reply, ok := c.replies.Get(key); ok {
		logger.Debug("collaborator cache hit")
		return reply, nil
	}

	reply, err := c.LLMService.Generate(ctx, prompt, opts)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(reply) != "" {
		c.replies.Add(key, reply)
	}
	return reply, nil
}

// Len reports the number of cached replies.
func (c *Cached) Len() int {
	return c.replies.Len()
}

// Purge drops every cached reply.
func (c *Cached) Purge() {
	c.replies.Purge()
}

func cacheKey(model, prompt string, opts driven.GenerateOptions) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s\x00%s\x00%d\x00%g\x00%s\x00%s\x00%s",
		model, prompt, opts.MaxTokens, opts.Temperature,
		strings.Join(opts.StopWords, "\x01"), opts.Topic, opts.MainConcept)
	return hex.EncodeToString(h.Sum(nil))
}
