package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/promptmap/internal/core/domain"
	"github.com/custodia-labs/promptmap/internal/core/ports/driven"
)

var _ driven.AIConfigValidator = (*ConfigValidator)(nil)

// ConfigValidator checks LLM settings by building the provider and
// pinging it once. It holds no connection between calls.
type ConfigValidator struct {
	// Timeout bounds the ping. Zero means pingTimeout.
	Timeout time.Duration
}

// NewConfigValidator returns a validator using the default ping timeout.
func NewConfigValidator() *ConfigValidator {
	return &ConfigValidator{Timeout: pingTimeout}
}

// ValidateLLM reports nil for unset or incomplete settings, since there is
// nothing to reach. A provider that cannot be built or does not answer
// yields an error wrapping domain.ErrLLMUnavailable.
func (v *ConfigValidator) ValidateLLM(settings *domain.LLMSettings) error {
	if settings == nil || !settings.IsConfigured() {
		return nil
	}

	timeout := v.Timeout
	if timeout <= 0 {
		timeout = pingTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	svc, err := CreateLLMService(ctx, settings)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrLLMUnavailable, settings.Provider, err)
	}
	if svc == nil {
		return nil
	}
	defer svc.Close()

	if err := svc.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %s (%s): %w", domain.ErrLLMUnavailable, settings.Provider, svc.ModelName(), err)
	}
	return nil
}
