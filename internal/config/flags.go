package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// FlagValues collects all parsed global flag values from the CLI. This struct
// is populated by BindFlags and passed to downstream pipeline stages.
type FlagValues struct {
	InputFormat string
	Format      string
	Style       string
	Skew        string
	Budget      int // characters, parsed from budgetRaw
	Tokenizer   string
	Profile     string
	ProfileFile string
	Includes    []string // include glob patterns (batch mode)
	Excludes    []string // exclude glob patterns (batch mode)
	Output      string   // output file path; empty means stdout
	Verbose     bool
	Quiet       bool

	// Legacy aliases, resolved by the driver rather than here so that
	// mixing them with canonical flags surfaces as invalid_option.
	Template string
	Tail     bool
	TailSet  bool
	Sampling int
}

// budgetRaw holds the raw string value for --budget before parsing. This is a
// package-level variable because Cobra needs a string target for binding, and
// we parse it into FlagValues.Budget during validation.
var budgetRaw string

// BindFlags registers all global persistent flags on the given Cobra command
// and returns a FlagValues pointer that will be populated when the command is
// executed. Callers should access the returned struct after flag parsing.
func BindFlags(cmd *cobra.Command) *FlagValues {
	fv := &FlagValues{}

	pf := cmd.PersistentFlags()
	pf.StringVar(&fv.InputFormat, "input-format", "", "input syntax: json, yaml, text (default: detect)")
	pf.StringVar(&fv.Format, "format", "", "output format: auto, json, yaml, text, pseudo, js")
	pf.StringVar(&fv.Style, "style", "", "marker style: strict, default, detailed")
	pf.StringVar(&fv.Skew, "skew", "", "reduction skew: balanced, head, tail")
	pf.StringVarP(&budgetRaw, "budget", "b", "", "character budget (e.g. 500, 2k)")
	pf.StringVar(&fv.Tokenizer, "tokenizer", "", "token report encoding: cl100k_base, o200k_base, none")
	pf.StringVarP(&fv.Profile, "profile", "p", "", "named profile from headson.toml")
	pf.StringVar(&fv.ProfileFile, "profile-file", "", "standalone profile TOML file")
	pf.StringArrayVar(&fv.Includes, "include", nil, "include glob pattern (repeatable, batch mode)")
	pf.StringArrayVar(&fv.Excludes, "exclude", nil, "exclude glob pattern (repeatable, batch mode)")
	pf.StringVarP(&fv.Output, "output", "o", "", "output file path (default: stdout)")
	pf.BoolVarP(&fv.Verbose, "verbose", "v", false, "enable debug logging")
	pf.BoolVarP(&fv.Quiet, "quiet", "q", false, "suppress all output except errors")

	pf.StringVar(&fv.Template, "template", "", "legacy template alias: json, pseudo, js, yaml, yml")
	pf.BoolVar(&fv.Tail, "tail", false, "legacy alias for --skew tail")
	pf.IntVar(&fv.Sampling, "sampling", 0, "legacy sampling knob (accepted, maps to balanced skew)")

	return fv
}

// ValidateFlags checks the parsed flag values for correctness and mutual
// exclusion. It also applies environment variable fallbacks and parses the
// raw budget string. Call this from PersistentPreRunE after Cobra has parsed
// the flags. Enum values are validated downstream by the driver so that
// canonical/legacy conflicts surface through one invalid_option channel.
func ValidateFlags(fv *FlagValues, cmd *cobra.Command) error {
	// Apply environment variable fallbacks for flags not explicitly set.
	applyEnvOverrides(fv, cmd)

	// Mutual exclusion: --verbose and --quiet
	if fv.Verbose && fv.Quiet {
		return fmt.Errorf("--verbose and --quiet are mutually exclusive")
	}

	// --profile and --profile-file may be combined: the profile name is
	// looked up within the profile file. The file itself must exist.
	if fv.ProfileFile != "" {
		if _, err := os.Stat(fv.ProfileFile); err != nil {
			return fmt.Errorf("--profile-file: %w", err)
		}
	}

	// Parse --budget
	if budgetRaw != "" {
		n, err := ParseBudget(budgetRaw)
		if err != nil {
			return fmt.Errorf("--budget: %w", err)
		}
		fv.Budget = n
	}

	// Record whether --tail was explicitly given: false is a meaningful
	// legacy value (head skew) only when the flag was actually set.
	fv.TailSet = cmd.Flags().Changed("tail")

	return nil
}

// applyEnvOverrides applies environment variable fallbacks for flags that were
// not explicitly set on the command line. The prefix is HEADSON_.
func applyEnvOverrides(fv *FlagValues, cmd *cobra.Command) {
	envMap := map[string]func(string){
		EnvInputFormat: func(v string) { fv.InputFormat = v },
		EnvFormat:      func(v string) { fv.Format = v },
		EnvStyle:       func(v string) { fv.Style = v },
		EnvSkew:        func(v string) { fv.Skew = v },
		EnvTokenizer:   func(v string) { fv.Tokenizer = v },
	}

	for env, setter := range envMap {
		v := os.Getenv(env)
		if v == "" {
			continue
		}
		// Only apply if the corresponding flag was not explicitly set.
		flagName := strings.ToLower(strings.ReplaceAll(strings.TrimPrefix(env, "HEADSON_"), "_", "-"))
		if !cmd.Flags().Changed(flagName) {
			setter(v)
		}
	}

	if v := os.Getenv(EnvBudget); v != "" && !cmd.Flags().Changed("budget") && budgetRaw == "" {
		budgetRaw = v
	}
}

// FlagsToMap converts explicitly-set flags into the flat map shape the
// resolver's CLI layer consumes. Only flags the user actually passed (or that
// an env fallback filled) are included, so unset flags never mask file or env
// layers.
func FlagsToMap(fv *FlagValues, cmd *cobra.Command) map[string]any {
	m := make(map[string]any)

	if fv.InputFormat != "" {
		m["input_format"] = fv.InputFormat
	}
	if fv.Format != "" {
		m["format"] = fv.Format
	}
	if fv.Style != "" {
		m["style"] = fv.Style
	}
	if fv.Skew != "" {
		m["skew"] = fv.Skew
	}
	if fv.Budget > 0 {
		m["character_budget"] = fv.Budget
	}
	if fv.Tokenizer != "" {
		m["tokenizer"] = fv.Tokenizer
	}
	if len(fv.Includes) > 0 {
		m["include"] = fv.Includes
	}
	if len(fv.Excludes) > 0 {
		m["exclude"] = fv.Excludes
	}

	return m
}

// ParseBudget parses a human-readable character count into an integer. It
// supports k and m suffixes (case-insensitive, decimal: k = 1,000 and
// m = 1,000,000 -- budgets count characters, not bytes, so binary multiples
// would be misleading). Plain numbers without a suffix are used as-is.
func ParseBudget(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty budget string")
	}

	upper := strings.ToUpper(s)

	var suffix string
	multiplier := 1

	switch {
	case strings.HasSuffix(upper, "M"):
		suffix = "M"
		multiplier = 1000 * 1000
	case strings.HasSuffix(upper, "K"):
		suffix = "K"
		multiplier = 1000
	default:
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("invalid budget: %q", s)
		}
		if n < 0 {
			return 0, fmt.Errorf("budget must be non-negative: %q", s)
		}
		return n, nil
	}

	numStr := strings.TrimSpace(s[:len(s)-len(suffix)])
	n, err := strconv.Atoi(numStr)
	if err != nil {
		f, ferr := strconv.ParseFloat(numStr, 64)
		if ferr != nil {
			return 0, fmt.Errorf("invalid budget: %q", s)
		}
		if f < 0 {
			return 0, fmt.Errorf("budget must be non-negative: %q", s)
		}
		return int(f * float64(multiplier)), nil
	}
	if n < 0 {
		return 0, fmt.Errorf("budget must be non-negative: %q", s)
	}
	return n * multiplier, nil
}
