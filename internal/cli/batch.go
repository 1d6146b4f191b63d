package cli

import (
	"github.com/spf13/cobra"

	"github.com/headsonhq/headson/internal/batch"
	"github.com/headsonhq/headson/internal/config"
	"github.com/headsonhq/headson/internal/headson"
)

// batchSkipLarge is a local flag target for --skip-large-files on the batch
// command, holding the raw human-size string until validation parses it.
var batchSkipLarge string

// batchCmd implements `headson batch` which walks a directory of documents
// and aggregates their summaries into one output keyed by path.
var batchCmd = &cobra.Command{
	Use:   "batch [dir]",
	Short: "Summarize every matching document under a directory",
	Long: `Batch walks a directory tree, selects documents via include/exclude globs
and .headsonignore rules, and summarizes each one under an equally-divided
share of the character budget. The results are wrapped in a single object
keyed by file path.

Examples:
  # Summarize all JSON and YAML files under ./configs into 4k characters
  headson batch --budget 4k configs

  # Only deployment manifests, excluding generated ones
  headson batch --include '**/deploy/*.yaml' --exclude '**/generated/**' .`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVar(&batchSkipLarge, "skip-large-files", "1m", "skip files larger than this many bytes (e.g. 500k, 1m; 0 disables)")
	rootCmd.AddCommand(batchCmd)
}

// runBatch executes the batch subcommand.
func runBatch(cmd *cobra.Command, args []string) error {
	fv := GlobalFlags()

	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	res, err := config.Resolve(config.ResolveOptions{
		ProfileName: fv.Profile,
		ProfileFile: fv.ProfileFile,
		TargetDir:   root,
		CLIFlags:    config.FlagsToMap(fv, cmd),
	})
	if err != nil {
		return err
	}
	profile := res.Profile

	opts, err := profileToOptions(profile)
	if err != nil {
		return err
	}

	skipLarge, err := config.ParseBudget(batchSkipLarge)
	if err != nil {
		return err
	}

	result, err := batch.Run(cmd.Context(), batch.RunOptions{
		Root:           root,
		Includes:       profile.Include,
		Excludes:       profile.Exclude,
		SkipLargeFiles: int64(skipLarge),
		Options:        opts,
	})
	if err != nil {
		return err
	}

	return writeOutput(cmd, result.Output)
}

// profileToOptions converts a resolved profile into driver Options, going
// through the legacy resolver so enum validation is shared with direct calls.
func profileToOptions(p *config.Profile) (headson.Options, error) {
	r := headson.RawRequest{
		InputFormat: p.InputFormat,
		Format:      p.Format,
		Style:       p.Style,
		Skew:        p.Skew,
	}
	if p.CharacterBudget > 0 {
		budget := p.CharacterBudget
		r.CharacterBudget = &budget
	}
	return headson.ResolveLegacy(r)
}
