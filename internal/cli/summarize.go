package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/headsonhq/headson/internal/config"
	"github.com/headsonhq/headson/internal/headson"
)

// summarizeCmd implements `headson summarize`, the primary operation. It is
// also what the bare root invocation delegates to.
var summarizeCmd = &cobra.Command{
	Use:   "summarize [file...]",
	Short: "Summarize one or more documents within the character budget",
	Long: `Summarize parses each input document, reduces it to fit the configured
character budget, and emits it in the chosen output format.

With no file arguments (or "-"), input is read from stdin. With multiple
files, each is reduced under an equally-divided budget and the results are
wrapped in one object keyed by file path.

Examples:
  # Summarize a JSON document from stdin to 500 characters
  cat large.json | headson --budget 500

  # Strict JSON output, keeping the tail of arrays
  headson summarize --budget 2k --format json --style strict --skew tail data.json

  # YAML in, YAML out, with omission counts
  headson summarize --budget 300 --style detailed config.yaml`,
	Args: cobra.ArbitraryArgs,
	RunE: runSummarize,
}

func init() {
	rootCmd.AddCommand(summarizeCmd)
}

// runSummarize executes the summarize subcommand (and the bare root command).
func runSummarize(cmd *cobra.Command, args []string) error {
	req, err := buildRequest(cmd)
	if err != nil {
		return err
	}

	var output string
	switch {
	case len(args) > 1:
		files := make([]headson.FileInput, 0, len(args))
		for _, path := range args {
			text, rerr := readInput(cmd, path)
			if rerr != nil {
				return rerr
			}
			files = append(files, headson.FileInput{Path: path, Text: text})
		}
		output, err = headson.SummarizeFiles(files, req)
	default:
		path := "-"
		if len(args) == 1 {
			path = args[0]
		}
		req.Text, err = readInput(cmd, path)
		if err != nil {
			return err
		}
		output, err = headson.Summarize(req)
	}
	if err != nil {
		return err
	}

	return writeOutput(cmd, output)
}

// buildRequest resolves the layered configuration and the legacy alias flags
// into one RawRequest. Canonical profile values are used only when no legacy
// alias was supplied for the same concern, so that a call mixing --template
// with an explicit --format still surfaces as invalid_option.
func buildRequest(cmd *cobra.Command) (headson.RawRequest, error) {
	fv := GlobalFlags()

	res, err := config.Resolve(config.ResolveOptions{
		ProfileName: fv.Profile,
		ProfileFile: fv.ProfileFile,
		CLIFlags:    config.FlagsToMap(fv, cmd),
	})
	if err != nil {
		return headson.RawRequest{}, err
	}
	profile := res.Profile

	r := headson.RawRequest{
		InputFormat: profile.InputFormat,
	}
	if profile.CharacterBudget > 0 {
		budget := profile.CharacterBudget
		r.CharacterBudget = &budget
	}

	if fv.Template != "" {
		// Legacy template: only explicitly-passed canonical flags travel
		// alongside it, so the driver can reject the combination.
		r.Template = fv.Template
		r.Format = fv.Format
		r.Style = fv.Style
	} else {
		r.Format = profile.Format
		r.Style = profile.Style
	}

	switch {
	case fv.TailSet:
		tail := fv.Tail
		r.Tail = &tail
		r.Skew = fv.Skew
	case cmd.Flags().Changed("sampling"):
		sampling := fv.Sampling
		r.Sampling = &sampling
		r.Skew = fv.Skew
	default:
		r.Skew = profile.Skew
	}

	return r, nil
}

// readInput reads one input document: stdin for "-", a file otherwise.
func readInput(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// writeOutput writes the summary to --output when set, stdout otherwise. A
// trailing newline is added for terminal friendliness unless one is already
// present.
func writeOutput(cmd *cobra.Command, output string) error {
	if !strings.HasSuffix(output, "\n") {
		output += "\n"
	}

	fv := GlobalFlags()
	if fv.Output != "" {
		if err := os.WriteFile(fv.Output, []byte(output), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", fv.Output, err)
		}
		return nil
	}

	_, err := fmt.Fprint(cmd.OutOrStdout(), output)
	return err
}
