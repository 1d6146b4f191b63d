package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/headsonhq/headson/internal/config"
	"github.com/headsonhq/headson/internal/headson"
	"github.com/headsonhq/headson/internal/tokenreport"
)

// reportCmd implements `headson report` which summarizes its inputs and then
// prints size diagnostics -- characters in and out, budget utilization, and
// an informational token count -- instead of the summary itself.
var reportCmd = &cobra.Command{
	Use:   "report [file...]",
	Short: "Show character and token statistics for a summarize run",
	Long: `Report runs the normal summarize pipeline over each input and prints what
it did: input and output sizes in characters (the unit budgets are enforced
in) and in model tokens (informational), plus budget utilization.

Examples:
  # How much would a 2k summary of this document cost in tokens?
  headson report --budget 2k deploy.json

  # Use the GPT-4o encoding instead
  headson report --budget 2k --tokenizer o200k_base deploy.json

  # Skip BPE entirely, estimate by characters
  headson report --tokenizer none deploy.json`,
	Args: cobra.ArbitraryArgs,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

// runReport executes the report subcommand.
func runReport(cmd *cobra.Command, args []string) error {
	fv := GlobalFlags()

	req, err := buildRequest(cmd)
	if err != nil {
		return err
	}

	res, err := config.Resolve(config.ResolveOptions{
		ProfileName: fv.Profile,
		ProfileFile: fv.ProfileFile,
		CLIFlags:    config.FlagsToMap(fv, cmd),
	})
	if err != nil {
		return err
	}

	tok, err := tokenreport.NewTokenizer(res.Profile.Tokenizer)
	if err != nil {
		return err
	}

	budget := 0
	if req.CharacterBudget != nil {
		budget = *req.CharacterBudget
	}
	report := tokenreport.NewReport(tok, budget)

	paths := args
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	for _, path := range paths {
		text, rerr := readInput(cmd, path)
		if rerr != nil {
			return rerr
		}

		fileReq := req
		fileReq.Text = text
		output, serr := headson.Summarize(fileReq)
		if serr != nil {
			return serr
		}
		report.Add(tok, path, text, output)
	}

	_, err = fmt.Fprint(os.Stderr, report.Format())
	return err
}
