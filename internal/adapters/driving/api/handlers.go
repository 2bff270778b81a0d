package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/custodia-labs/promptmap/internal/core/domain"
	"github.com/custodia-labs/promptmap/internal/core/ports/driving"
)

// MindMapRequest is the body of POST /api/mindmap.
type MindMapRequest struct {
	Prompt string `json:"prompt"`
	Mode   string `json:"mode,omitempty"`
}

// ContentRequest is the body of POST /api/generate-content.
type ContentRequest struct {
	Topic       string `json:"topic"`
	MainConcept string `json:"mainConcept"`
	Prompt      string `json:"prompt,omitempty"`
}

// ContentResponse is the success body of POST /api/generate-content.
type ContentResponse struct {
	Content string `json:"content"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Status  int    `json:"status"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status       string `json:"status"`
	Collaborator bool   `json:"collaborator"`
}

func abort(c *gin.Context, status int, msg, details string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: msg, Details: details, Status: status})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Collaborator: s.mindMap.HasCollaborator()})
}

func (s *Server) handleMindMap(c *gin.Context) {
	var req MindMapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	data, err := s.mindMap.Generate(c.Request.Context(), req.Prompt, domain.GenerationMode(req.Mode))
	switch {
	case errors.Is(err, domain.ErrEmptyInput):
		abort(c, http.StatusBadRequest, "Prompt cannot be empty", "Please enter a prompt to generate a mind map")
		return
	case err != nil:
		requestLogger(c).Error("mind map generation failed", zap.Error(err))
		abort(c, http.StatusInternalServerError, "Failed to generate mind map", err.Error())
		return
	}

	c.JSON(http.StatusOK, data)
}

func (s *Server) handleGenerateContent(c *gin.Context) {
	var req ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	if req.Topic == "" || req.MainConcept == "" {
		abort(c, http.StatusBadRequest, "Missing required fields", "Both topic and mainConcept are required")
		return
	}
	if !s.mindMap.HasCollaborator() {
		abort(c, http.StatusServiceUnavailable, "API key not configured",
			"No text-generation provider is configured. Run 'promptmap settings llm'.")
		return
	}

	log := requestLogger(c)
	log.Debug("content request",
		zap.String("topic", req.Topic),
		zap.String("main_concept", req.MainConcept),
		zap.Bool("has_prompt", req.Prompt != ""),
	)

	content, err := s.mindMap.GenerateContent(c.Request.Context(), driving.ContentRequest{
		Topic:       req.Topic,
		MainConcept: req.MainConcept,
		Prompt:      req.Prompt,
	})
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		abort(c, http.StatusBadRequest, "Missing required fields", err.Error())
		return
	case errors.Is(err, domain.ErrMalformedReply):
		log.Warn("empty collaborator reply", zap.Error(err))
		abort(c, http.StatusInternalServerError, "Invalid response", "No content was generated")
		return
	case err != nil:
		log.Error("content generation failed", zap.Error(err))
		abort(c, http.StatusInternalServerError, "Failed to generate content", err.Error())
		return
	}

	c.JSON(http.StatusOK, ContentResponse{Content: content})
}
