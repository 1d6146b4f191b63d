package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/headsonhq/headson/internal/headson"
)

// previewCmd implements `headson preview`, an interactive view of a document
// being reduced: a budget slider plus live re-rendering, so a user can find
// the budget that keeps what they care about before wiring it into a script.
var previewCmd = &cobra.Command{
	Use:   "preview [file]",
	Short: "Interactively explore a document at different budgets",
	Long: `Preview opens an interactive terminal view of the summarized document and
re-renders it live as you adjust the character budget, skew, style, and
output format.

Keys:
  left/right   adjust budget by 10%
  up/down      adjust budget by 1
  s            cycle skew (balanced, head, tail)
  t            cycle style (default, detailed, strict)
  f            cycle format (auto, json, yaml, text, pseudo, js)
  q            quit

Examples:
  headson preview --budget 500 large.json
  cat metrics.yaml | headson preview --input-format yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

// runPreview executes the preview subcommand: it resolves options the same
// way summarize does, reads the single input, and hands control to the TUI.
func runPreview(cmd *cobra.Command, args []string) error {
	req, err := buildRequest(cmd)
	if err != nil {
		return err
	}

	path := "-"
	if len(args) == 1 {
		path = args[0]
	}
	text, err := readInput(cmd, path)
	if err != nil {
		return err
	}

	// Validate the request once up front so an invalid flag combination
	// fails with a normal CLI error instead of inside the TUI loop.
	req.Text = text
	if _, err := headson.Summarize(req); err != nil {
		return err
	}

	m := newPreviewModel(path, text, req)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}
