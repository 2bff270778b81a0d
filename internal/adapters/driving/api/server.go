// Package api provides the HTTP API adapter for promptmap.
// It serves mind maps and collaborator content to browser clients.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/custodia-labs/promptmap/internal/core/ports/driving"
	"github.com/custodia-labs/promptmap/internal/logger"
)

// ErrMissingMindMapService is returned when the mind map service is not provided.
var ErrMissingMindMapService = errors.New("api: mind map service is required")

// Config holds HTTP server settings.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// AllowedOrigins lists CORS origins. Empty allows any origin.
	AllowedOrigins []string
}

// Server is the HTTP API server.
type Server struct {
	mindMap driving.MindMapService
	cfg     Config
	router  *gin.Engine
}

// NewServer creates an HTTP API server backed by svc.
func NewServer(svc driving.MindMapService, cfg Config) (*Server, error) {
	if svc == nil {
		return nil, ErrMissingMindMapService
	}

	if !logger.IsVerbose() {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{mindMap: svc, cfg: cfg}
	s.router = s.routes()
	return s, nil
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), corsMiddleware(s.cfg.AllowedOrigins))

	r.GET("/healthz", s.handleHealth)

	api := r.Group("/api")
	api.POST("/mindmap", s.handleMindMap)
	api.POST("/generate-content", s.handleGenerateContent)

	return r
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Content-Type", "Accept", "Origin", headerRequestID},
		ExposeHeaders: []string{headerRequestID},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx) //nolint:errcheck
	}()

	logger.Info("api: listening on %s", s.cfg.Addr)
	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("api: %w", err)
	}
	return nil
}
