// Package ai provides factory functions for creating collaborator adapters.
package ai

import (
	"context"
	"fmt"
	"time"

	anthropicllm "github.com/custodia-labs/promptmap/internal/adapters/driven/llm/anthropic"
	"github.com/custodia-labs/promptmap/internal/adapters/driven/llm/contentapi"
	"github.com/custodia-labs/promptmap/internal/adapters/driven/llm/gemini"
	ollamallm "github.com/custodia-labs/promptmap/internal/adapters/driven/llm/ollama"
	openaillm "github.com/custodia-labs/promptmap/internal/adapters/driven/llm/openai"
	"github.com/custodia-labs/promptmap/internal/core/domain"
	"github.com/custodia-labs/promptmap/internal/core/ports/driven"
	"github.com/custodia-labs/promptmap/internal/logger"
)

// pingTimeout is the maximum time to wait for service connectivity validation.
const pingTimeout = 5 * time.Second

// InitResult contains the result of collaborator initialisation.
type InitResult struct {
	LLMService driven.LLMService
	Warnings   []string // Non-fatal issues that caused fallback.
	FellBack   bool     // True if fell back to local generation.
}

// Close releases all resources held by InitResult.
func (r *InitResult) Close() {
	if r.LLMService != nil {
		r.LLMService.Close()
	}
}

// Initialise creates, validates and decorates the configured collaborator.
// A missing or unreachable provider is not an error: the result carries a
// nil service and generation runs locally.
func Initialise(ctx context.Context, settings *domain.LLMSettings) *InitResult {
	result := &InitResult{}
	if settings == nil || !settings.IsConfigured() {
		return result
	}

	svc, err := CreateAndValidateLLMService(ctx, settings)
	if err != nil {
		logger.Warn("collaborator disabled: %v", err)
		result.Warnings = append(result.Warnings, err.Error())
		result.FellBack = true
		return result
	}

	result.LLMService = Decorate(svc, settings)
	return result
}

// Decorate wraps svc with the rate limiter and reply cache the settings ask for.
func Decorate(svc driven.LLMService, settings *domain.LLMSettings) driven.LLMService {
	if svc == nil || settings == nil {
		return svc
	}
	if settings.RatePerSecond > 0 {
		svc = NewRateLimited(svc, settings.RatePerSecond, 1)
	}
	if settings.CacheSize > 0 {
		if cached, err := NewCached(svc, settings.CacheSize); err == nil {
			svc = cached
		} else {
			logger.Warn("reply cache disabled: %v", err)
		}
	}
	return svc
}

// CreateAndValidateLLMService creates an LLM service and validates connectivity.
// Returns the service if successful, or an error with guidance.
func CreateAndValidateLLMService(ctx context.Context, settings *domain.LLMSettings) (driven.LLMService, error) {
	if settings == nil || !settings.IsConfigured() {
		return nil, nil
	}

	svc, err := CreateLLMService(ctx, settings)
	if err != nil {
		return nil, fmt.Errorf("%w: %w. Run 'promptmap settings llm' to fix",
			domain.ErrLLMUnavailable, err)
	}
	if svc == nil {
		return nil, nil
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := svc.Ping(pingCtx); err != nil {
		svc.Close()
		return nil, fmt.Errorf("%w: service unreachable (%w). Run 'promptmap settings llm' to fix",
			domain.ErrLLMUnavailable, err)
	}

	return svc, nil
}

// CreateLLMService creates the appropriate LLM service based on settings.
// Returns nil if the provider is not configured.
func CreateLLMService(ctx context.Context, settings *domain.LLMSettings) (driven.LLMService, error) {
	if settings == nil || !settings.IsConfigured() {
		return nil, nil
	}

	switch settings.Provider {
	case domain.AIProviderOllama:
		return ollamallm.NewLLMService(ollamallm.LLMConfig{
			BaseURL: settings.BaseURL,
			Model:   settings.Model,
		}), nil

	case domain.AIProviderOpenAI:
		return openaillm.NewLLMService(openaillm.LLMConfig{
			APIKey:  settings.APIKey,
			BaseURL: settings.BaseURL,
			Model:   settings.Model,
		})

	case domain.AIProviderAnthropic:
		return anthropicllm.NewLLMService(anthropicllm.Config{
			APIKey:  settings.APIKey,
			BaseURL: settings.BaseURL,
			Model:   settings.Model,
		})

	case domain.AIProviderGemini:
		return gemini.NewLLMService(ctx, gemini.Config{
			APIKey:  settings.APIKey,
			BaseURL: settings.BaseURL,
			Model:   settings.Model,
		})

	case domain.AIProviderContentAPI:
		return contentapi.NewLLMService(contentapi.Config{
			BaseURL: settings.BaseURL,
		})

	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", settings.Provider)
	}
}
