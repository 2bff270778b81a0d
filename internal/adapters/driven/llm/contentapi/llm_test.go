package contentapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/promptmap/internal/core/domain"
	"github.com/custodia-labs/promptmap/internal/core/ports/driven"
)

func TestNewLLMService_RequiresBaseURL(t *testing.T) {
	_, err := NewLLMService(Config{})
	assert.Error(t, err)
}

func TestGenerate_PostsTopicAndConcept(t *testing.T) {
	var got Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, DefaultPath, r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(Response{Content: "generated"})
	}))
	defer srv.Close()

	svc, err := NewLLMService(Config{BaseURL: srv.URL + "/"})
	require.NoError(t, err)

	out, err := svc.Generate(context.Background(), "Provide examples", driven.GenerateOptions{
		Topic:       "examples",
		MainConcept: "Photosynthesis",
	})
	require.NoError(t, err)
	assert.Equal(t, "generated", out)
	assert.Equal(t, Request{Topic: "examples", MainConcept: "Photosynthesis", Prompt: "Provide examples"}, got)
}

func TestGenerate_DefaultsTopicToPrompt(t *testing.T) {
	var got Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(Response{Content: "ok"})
	}))
	defer srv.Close()

	svc, err := NewLLMService(Config{BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = svc.Generate(context.Background(), "explain gravity", driven.GenerateOptions{})
	require.NoError(t, err)
	assert.Equal(t, "explain gravity", got.Topic)
	assert.Equal(t, "explain gravity", got.MainConcept)
}

func TestGenerate_ErrorBody(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		target  error
		message string
	}{
		{
			name:    "details preferred",
			status:  http.StatusBadRequest,
			body:    `{"error":"Missing required fields","details":"topic is required","status":400}`,
			target:  domain.ErrLLMUnavailable,
			message: "API error (400): topic is required",
		},
		{
			name:    "error without details",
			status:  http.StatusServiceUnavailable,
			body:    `{"error":"LLM service unavailable"}`,
			target:  domain.ErrLLMUnavailable,
			message: "API error (503): LLM service unavailable",
		},
		{
			name:    "unparseable",
			status:  http.StatusOK,
			body:    `<html>`,
			target:  domain.ErrMalformedReply,
			message: "error parsing API response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			svc, err := NewLLMService(Config{BaseURL: srv.URL})
			require.NoError(t, err)

			_, err = svc.Generate(context.Background(), "p", driven.GenerateOptions{})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/healthz" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	svc, err := NewLLMService(Config{BaseURL: srv.URL})
	require.NoError(t, err)
	assert.NoError(t, svc.Ping(context.Background()))
	assert.Equal(t, "generate-content", svc.ModelName())
}
