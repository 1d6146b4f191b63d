package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/headsonhq/headson/internal/config"
)

// configCmd is the parent command for configuration-related subcommands.
// Running `headson config` with no subcommand prints the help text.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management commands",
	Long: `Configuration management commands for headson.

Use these subcommands to inspect and debug your headson configuration:

  show      Show the fully resolved configuration with per-field source annotations
  validate  Check every profile in headson.toml for invalid values`,
}

// configShowCmd shows the fully resolved configuration with source annotations.
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show resolved configuration with source annotations",
	Long: `Displays the complete resolved configuration showing exactly which source
(built-in default, global config, repo config, environment variable, or CLI
flag) provided each value. Useful for diagnosing unexpected configuration
behavior.`,
	RunE: runConfigShow,
}

// configValidateCmd lints every profile in the repo config.
var configValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate profiles in headson.toml",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigValidate,
}

func init() {
	configShowCmd.Flags().Bool("json", false, "output as structured JSON")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)
	rootCmd.AddCommand(configCmd)
}

// resolvedView is the JSON shape `config show --json` prints.
type resolvedView struct {
	ProfileName string            `json:"profile"`
	Profile     *config.Profile   `json:"resolved"`
	Sources     map[string]string `json:"sources"`
}

// runConfigShow implements `headson config show`.
func runConfigShow(cmd *cobra.Command, _ []string) error {
	fv := GlobalFlags()

	res, err := config.Resolve(config.ResolveOptions{
		ProfileName: fv.Profile,
		ProfileFile: fv.ProfileFile,
		CLIFlags:    config.FlagsToMap(fv, cmd),
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		sources := make(map[string]string, len(res.Sources))
		for field, src := range res.Sources {
			sources[field] = src.String()
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(resolvedView{
			ProfileName: res.ProfileName,
			Profile:     res.Profile,
			Sources:     sources,
		})
	}

	p := res.Profile
	fmt.Fprintf(out, "Profile: %s\n\n", res.ProfileName)
	printField(out, res.Sources, "input_format", orDetect(p.InputFormat))
	printField(out, res.Sources, "format", p.Format)
	printField(out, res.Sources, "style", p.Style)
	printField(out, res.Sources, "skew", p.Skew)
	printField(out, res.Sources, "character_budget", budgetString(p.CharacterBudget))
	printField(out, res.Sources, "tokenizer", p.Tokenizer)
	return nil
}

func printField(out io.Writer, sources config.SourceMap, field, value string) {
	fmt.Fprintf(out, "  %-17s %-12s (%s)\n", field+":", value, sources[field].String())
}

func orDetect(v string) string {
	if v == "" {
		return "detect"
	}
	return v
}

func budgetString(n int) string {
	if n == 0 {
		return "unlimited"
	}
	return fmt.Sprintf("%d", n)
}

// runConfigValidate implements `headson config validate`.
func runConfigValidate(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	} else {
		discovered, err := config.DiscoverRepoConfig(".")
		if err != nil {
			return err
		}
		if discovered == "" {
			return fmt.Errorf("no headson.toml found (searched upward from the current directory)")
		}
		path = discovered
	}

	cfg, err := config.LoadFromFile(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	errs := config.ValidateConfig(cfg)
	if len(errs) == 0 {
		fmt.Fprintf(out, "%s: all profiles valid\n", path)
		return nil
	}

	for _, e := range errs {
		fmt.Fprintf(out, "%s: %s\n", path, e.Error())
	}
	return fmt.Errorf("%d problem(s) found in %s", len(errs), path)
}
