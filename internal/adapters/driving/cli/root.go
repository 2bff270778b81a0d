// Package cli implements the promptmap command line using cobra.
// Services are injected by main through SetServices before Execute runs.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/promptmap/internal/core/ports/driving"
	"github.com/custodia-labs/promptmap/internal/logger"
)

// logFileMaxSizeMB is the rotation size of the --log-file sink.
const logFileMaxSizeMB = 10

// version is overridden at build time via -ldflags.
var version = "dev"

var (
	mindMapService  driving.MindMapService
	settingsService driving.SettingsService
)

var (
	verbose bool
	logFile string
)

// ServeConfig holds the background work `promptmap serve` runs alongside
// the HTTP server.
type ServeConfig struct {
	// Watch blocks until ctx is done. Main wires it to the prompt
	// template watcher. Nil disables it.
	Watch func(ctx context.Context) error

	// AllowedOrigins are the CORS origins accepted by the API.
	// Empty allows all origins.
	AllowedOrigins []string
}

var serveConfig *ServeConfig

var rootCmd = &cobra.Command{
	Use:   "promptmap",
	Short: "Turn prompts into mind maps",
	Long: `promptmap analyses a free-text prompt and builds a mind map from it:
a labelled tree of topics, subtopics and details laid out on a 2D canvas.

Generation runs locally by default. Configure an LLM provider with
'promptmap settings llm' to let it write richer sections.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if logFile != "" {
			if err := logger.SetFile(logFile, logFileMaxSizeMB); err != nil {
				return fmt.Errorf("log file: %w", err)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print pipeline debug logs to stderr")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "also write logs to a size-rotated file")
}

// SetServices injects the core services used by the commands.
func SetServices(mindMap driving.MindMapService, settings driving.SettingsService) {
	mindMapService = mindMap
	settingsService = settings
}

// SetServeConfig sets the configuration for the serve command.
func SetServeConfig(cfg *ServeConfig) {
	serveConfig = cfg
}

// SetVersion sets the version reported by `promptmap version`.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
