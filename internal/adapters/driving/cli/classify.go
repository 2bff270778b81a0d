package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var classifyJSON bool

var classifyCmd = &cobra.Command{
	Use:   "classify [prompt]",
	Short: "Report a prompt's type, domain and main concept",
	Long: `Runs only the front of the pipeline: prompt-type classification,
domain identification and main-concept extraction. No collaborator is used.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().BoolVar(&classifyJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	if mindMapService == nil {
		return errors.New("mind map service not configured")
	}

	prompt, err := readPrompt(cmd, args)
	if err != nil {
		return err
	}

	c, err := mindMapService.Classify(prompt)
	if err != nil {
		return fmt.Errorf("classification failed: %w", err)
	}

	if classifyJSON {
		return printJSON(cmd, c)
	}

	cmd.Printf("Type:         %s (%s)\n", c.PromptType, c.PromptType.Description())
	cmd.Printf("Domain:       %s\n", c.Domain)
	cmd.Printf("Main concept: %s\n", c.MainConcept)
	return nil
}
