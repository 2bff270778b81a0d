package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/promptmap/internal/adapters/driving/api"
	"github.com/custodia-labs/promptmap/internal/core/domain"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Serve the mind map API over HTTP.

Endpoints:
  GET  /healthz               liveness and collaborator status
  POST /api/mindmap           {"prompt": "...", "mode": "..."} -> mind map graph
  POST /api/generate-content  {"topic", "mainConcept", "prompt"} -> collaborator text

Prompt template files are watched while the server runs; edits take
effect on the next request.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default from settings, then "+domain.DefaultServerAddr+")")
	serveCmd.Flags().StringSlice("origins", nil, "allowed CORS origins (default all)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if mindMapService == nil {
		return errors.New("mind map service not configured")
	}

	addr, err := cmd.Flags().GetString("addr")
	if err != nil {
		return fmt.Errorf("getting addr flag: %w", err)
	}
	if addr == "" {
		addr = configuredAddr()
	}

	origins, err := cmd.Flags().GetStringSlice("origins")
	if err != nil {
		return fmt.Errorf("getting origins flag: %w", err)
	}
	if len(origins) == 0 && serveConfig != nil {
		origins = serveConfig.AllowedOrigins
	}

	server, err := api.NewServer(mindMapService, api.Config{Addr: addr, AllowedOrigins: origins})
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(cmd.Context())
	if serveConfig != nil && serveConfig.Watch != nil {
		g.Go(func() error {
			return serveConfig.Watch(ctx)
		})
	}
	g.Go(func() error {
		return server.Run(ctx)
	})

	fmt.Fprintf(cmd.OutOrStdout(), "promptmap API listening on %s\n", addr)
	return g.Wait()
}

func configuredAddr() string {
	if settingsService != nil {
		if s, err := settingsService.Get(); err == nil && s.Server.Addr != "" {
			return s.Server.Addr
		}
	}
	return domain.DefaultServerAddr
}
