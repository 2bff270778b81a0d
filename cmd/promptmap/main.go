// Command promptmap turns a free-text prompt into a mind map.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/promptmap/internal/adapters/driven/ai"
	"github.com/custodia-labs/promptmap/internal/adapters/driven/config/file"
	"github.com/custodia-labs/promptmap/internal/adapters/driving/cli"
	"github.com/custodia-labs/promptmap/internal/core/services"
	"github.com/custodia-labs/promptmap/internal/graph"
	"github.com/custodia-labs/promptmap/internal/logger"
)

// Set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is normal; keys usually come from the shell.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer logger.Sync()

	dir, err := file.DefaultDir()
	if err != nil {
		return err
	}
	store, err := file.NewConfigStore(dir)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}

	settingsSvc := services.NewSettingsService(store, ai.NewConfigValidator())
	settings, err := settingsSvc.Get()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	prompts, err := file.NewPromptStore("")
	if err != nil {
		return fmt.Errorf("open prompt store: %w", err)
	}

	llm := ai.Initialise(ctx, &settings.LLM)
	defer llm.Close()
	for _, w := range llm.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}

	mindMap := services.NewMindMapService(llm.LLMService, prompts)
	mindMap.SetDefaultMode(settings.Generation.Mode)
	mindMap.SetLayoutOptions(graph.LayoutOptions{MinDistance: settings.Layout.MinDistance})

	cli.SetVersion(version)
	cli.SetServices(mindMap, settingsSvc)
	cli.SetServeConfig(&cli.ServeConfig{
		Watch: func(ctx context.Context) error {
			return file.WatchPrompts(ctx, prompts.Dir(), prompts)
		},
	})

	return cli.Execute(ctx)
}
