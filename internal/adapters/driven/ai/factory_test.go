package ai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/promptmap/internal/core/domain"
)

func TestInitResult_Close(t *testing.T) {
	t.Run("close with nil service", func(t *testing.T) {
		result := &InitResult{}
		result.Close()
	})

	t.Run("close releases service", func(t *testing.T) {
		stub := &stubLLM{}
		result := &InitResult{LLMService: stub}
		result.Close()
		assert.True(t, stub.closed)
	})
}

func TestCreateLLMService(t *testing.T) {
	tests := []struct {
		name        string
		settings    *domain.LLMSettings
		wantNil     bool
		wantErr     bool
		wantModel   string
		errContains string
	}{
		{
			name:     "nil settings returns nil",
			settings: nil,
			wantNil:  true,
		},
		{
			name:     "unconfigured settings returns nil",
			settings: &domain.LLMSettings{},
			wantNil:  true,
		},
		{
			name: "ollama provider creates service",
			settings: &domain.LLMSettings{
				Provider: domain.AIProviderOllama,
				BaseURL:  "http://localhost:11434",
				Model:    "llama3.2",
			},
			wantModel: "llama3.2",
		},
		{
			name: "openai provider creates service",
			settings: &domain.LLMSettings{
				Provider: domain.AIProviderOpenAI,
				APIKey:   "test-key",
			},
			wantModel: "gpt-4o-mini",
		},
		{
			name: "anthropic provider creates service",
			settings: &domain.LLMSettings{
				Provider: domain.AIProviderAnthropic,
				APIKey:   "test-key",
				Model:    "claude-3-5-haiku-latest",
			},
			wantModel: "claude-3-5-haiku-latest",
		},
		{
			name: "gemini provider creates service",
			settings: &domain.LLMSettings{
				Provider: domain.AIProviderGemini,
				APIKey:   "test-key",
			},
			wantModel: "gemini-1.5-flash",
		},
		{
			name: "content api provider creates service",
			settings: &domain.LLMSettings{
				Provider: domain.AIProviderContentAPI,
				BaseURL:  "http://localhost:8080",
			},
			wantModel: "generate-content",
		},
		{
			name: "openai without key is not configured",
			settings: &domain.LLMSettings{
				Provider: domain.AIProviderOpenAI,
			},
			wantNil: true,
		},
		{
			name: "unknown provider returns nil",
			settings: &domain.LLMSettings{
				Provider: "unknown",
				APIKey:   "test-key",
			},
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := CreateLLMService(context.Background(), tt.settings)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, svc)
				return
			}
			require.NotNil(t, svc)
			assert.Equal(t, tt.wantModel, svc.ModelName())
		})
	}
}

func TestCreateAndValidateLLMService_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc, err := CreateAndValidateLLMService(context.Background(), &domain.LLMSettings{
		Provider: domain.AIProviderOllama,
		BaseURL:  srv.URL,
	})
	assert.Nil(t, svc)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLLMUnavailable)
	assert.Contains(t, err.Error(), "promptmap settings llm")
}

func TestInitialise(t *testing.T) {
	t.Run("unconfigured runs locally without warnings", func(t *testing.T) {
		result := Initialise(context.Background(), &domain.LLMSettings{})
		assert.Nil(t, result.LLMService)
		assert.False(t, result.FellBack)
		assert.Empty(t, result.Warnings)
	})

	t.Run("unreachable falls back", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		result := Initialise(context.Background(), &domain.LLMSettings{
			Provider: domain.AIProviderContentAPI,
			BaseURL:  srv.URL,
		})
		assert.Nil(t, result.LLMService)
		assert.True(t, result.FellBack)
		assert.Len(t, result.Warnings, 1)
	})

	t.Run("reachable service is decorated", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		result := Initialise(context.Background(), &domain.LLMSettings{
			Provider:      domain.AIProviderContentAPI,
			BaseURL:       srv.URL,
			RatePerSecond: 5,
			CacheSize:     16,
		})
		defer result.Close()

		require.NotNil(t, result.LLMService)
		cached, ok := result.LLMService.(*Cached)
		require.True(t, ok)
		_, ok = cached.LLMService.(*RateLimited)
		assert.True(t, ok)
	})
}

func TestDecorate(t *testing.T) {
	stub := &stubLLM{}

	assert.Same(t, stub, Decorate(stub, &domain.LLMSettings{}))
	assert.Nil(t, Decorate(nil, &domain.LLMSettings{CacheSize: 1}))

	svc := Decorate(stub, &domain.LLMSettings{RatePerSecond: 1})
	_, ok := svc.(*RateLimited)
	assert.True(t, ok)
}
