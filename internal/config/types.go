package config

// Config is the top-level configuration type parsed from a headson.toml file.
// It holds a map of named profiles keyed by profile name. Profile names are
// case-sensitive. The special name "default" is the built-in fallback profile.
type Config struct {
	// Profile maps profile names to their configuration. Access via
	// cfg.Profile["default"] or cfg.Profile["ci"].
	Profile map[string]*Profile `toml:"profile"`
}

// Profile defines all settings for a single named profile. Fields with zero
// values are considered unset and will be filled in by the merge/inheritance
// pipeline. The Extends field enables profile inheritance.
type Profile struct {
	// Extends is the name of a parent profile to inherit from. When set,
	// all unset fields in this profile are filled from the named parent.
	// A nil pointer means no inheritance.
	Extends *string `toml:"extends"`

	// InputFormat declares the syntax inputs are parsed as. Valid values:
	// "json", "yaml", "text". Empty means detect (try JSON, fall back to
	// YAML; "text" is never detected).
	InputFormat string `toml:"input_format"`

	// Format controls the output format. Valid values: "auto", "json",
	// "yaml", "text", "pseudo", "js".
	Format string `toml:"format"`

	// Style controls omission-marker verbosity. Valid values: "strict",
	// "default", "detailed".
	Style string `toml:"style"`

	// Skew controls which end of a container survives a reduction. Valid
	// values: "balanced", "head", "tail".
	Skew string `toml:"skew"`

	// CharacterBudget is the maximum output length in Unicode scalar
	// values. Zero means no budget: the full document is re-emitted.
	CharacterBudget int `toml:"character_budget"`

	// Tokenizer is the BPE encoding used by the diagnostic token report.
	// Valid values: "cl100k_base", "o200k_base", "none".
	Tokenizer string `toml:"tokenizer"`

	// Include holds glob patterns selecting which files batch mode
	// summarizes. Empty means the built-in document extensions.
	Include []string `toml:"include"`

	// Exclude holds glob patterns removing files from batch mode even when
	// an include pattern matched them.
	Exclude []string `toml:"exclude"`
}
