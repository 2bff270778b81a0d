package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/promptmap/internal/adapters/driving/tui/components/tree"
	"github.com/custodia-labs/promptmap/internal/core/domain"
)

var (
	generateMode     string
	generateJSON     bool
	generateAnalysis bool
	generateDetails  bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [prompt]",
	Short: "Build a mind map from a prompt",
	Long: `Analyses the prompt and prints the resulting mind map.

The prompt is taken from the arguments, or from stdin when the only
argument is "-". By default the map is printed as an indented outline;
use --json for the node/edge graph a canvas renderer consumes, or
--analysis for the topic tree before layout.

Modes:
  structured - LLM outline, falling back to assisted, then local
  assisted   - LLM sections with per-slot local fallback
  local      - heuristic analysis only
  simple     - keyword circle`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateMode, "mode", "m", "", "generation mode (default from settings)")
	generateCmd.Flags().BoolVar(&generateJSON, "json", false, "output the mind map graph as JSON")
	generateCmd.Flags().BoolVar(&generateAnalysis, "analysis", false, "output the topic tree as JSON instead of the graph")
	generateCmd.Flags().BoolVarP(&generateDetails, "details", "d", false, "include node details in the outline")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if mindMapService == nil {
		return errors.New("mind map service not configured")
	}

	prompt, err := readPrompt(cmd, args)
	if err != nil {
		return err
	}

	mode, err := parseMode(generateMode)
	if err != nil {
		return err
	}

	if generateAnalysis {
		analysis, err := mindMapService.Analyze(cmd.Context(), prompt, mode)
		if err != nil {
			return fmt.Errorf("analysis failed: %w", err)
		}
		return printJSON(cmd, analysis)
	}

	data, err := mindMapService.Generate(cmd.Context(), prompt, mode)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if generateJSON {
		return printJSON(cmd, data)
	}

	cmd.Println(tree.Render(data, nil, generateDetails))
	cmd.Println()
	cmd.Printf("%d nodes, %d edges\n", len(data.Nodes), len(data.Edges))
	return nil
}

// readPrompt joins the arguments, or reads stdin when the only argument is "-".
func readPrompt(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read prompt: %w", err)
		}
		return strings.TrimSpace(string(b)), nil
	}
	return strings.Join(args, " "), nil
}

// parseMode validates a --mode value. Empty selects the configured default.
func parseMode(s string) (domain.GenerationMode, error) {
	if s == "" {
		return "", nil
	}
	mode := domain.GenerationMode(strings.ToLower(s))
	if !mode.IsValid() {
		names := make([]string, 0, len(domain.AllGenerationModes()))
		for _, m := range domain.AllGenerationModes() {
			names = append(names, m.String())
		}
		return "", fmt.Errorf("invalid mode %q (want one of %s)", s, strings.Join(names, ", "))
	}
	return mode, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
