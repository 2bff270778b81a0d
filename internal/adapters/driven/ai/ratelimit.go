package ai

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/promptmap/internal/core/domain"
	"github.com/custodia-labs/promptmap/internal/core/ports/driven"
)

// Ensure RateLimited implements the interface.
var _ driven.LLMService = (*RateLimited)(nil)

// RateLimited caps the request rate of a collaborator with a token bucket.
// Generate blocks until a token is available or ctx is done.
type RateLimited struct {
	driven.LLMService
	limiter *rate.Limiter
}

// NewRateLimited wraps svc with a limiter of perSecond requests and the
// given burst. A burst below one is raised to one.
func NewRateLimited(svc driven.LLMService, perSecond float64, burst int) *RateLimited {
	if burst < 1 {
		burst = 1
	}
	return &RateLimited{
		LLMService: svc,
		limiter:    rate.NewLimiter(rate.Limit(perSecond), burst),
	}
}

// Generate waits for the limiter, then forwards to the wrapped service.
func (r *RateLimited) Generate(ctx context.Context, prompt string, opts driven.GenerateOptions) (string, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: %w: %v", domain.ErrLLMUnavailable, domain.ErrRateLimited, err)
	}
	return r.LLMService.Generate(ctx, prompt, opts)
}
