package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/promptmap/internal/adapters/driving/tui"
	"github.com/custodia-labs/promptmap/internal/core/domain"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for promptmap.

Type a prompt, press Enter, and browse the generated mind map as an outline.

Controls:
  Enter    - Generate / Select
  Tab      - Cycle generation mode
  ↑/k, ↓/j - Move through the map
  d        - Toggle node details
  n        - New prompt
  Esc      - Back
  ctrl+c   - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := tui.NewPorts(mindMapService, settingsService)
	ports.DefaultMode = configuredMode()

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	app.WithContext(cmd.Context())

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

func configuredMode() domain.GenerationMode {
	if settingsService == nil {
		return ""
	}
	s, err := settingsService.Get()
	if err != nil {
		return ""
	}
	return s.Generation.Mode
}
