package config

// DefaultProfile returns a new Profile populated with the built-in defaults:
// auto output format mirroring the input, default marker style, balanced
// skew, no character budget, and the cl100k_base tokenizer for diagnostic
// reports.
//
// Callers receive a fresh copy each time; mutating the returned value does
// not affect subsequent calls.
func DefaultProfile() *Profile {
	return &Profile{
		InputFormat:     "",
		Format:          "auto",
		Style:           "default",
		Skew:            "balanced",
		CharacterBudget: 0,
		Tokenizer:       "cl100k_base",
		Include:         defaultIncludeGlobs(),
		Exclude: []string{
			"**/node_modules/**",
			"**/vendor/**",
			"**/dist/**",
			"**/.git/**",
			"**/target/**",
		},
	}
}

// defaultIncludeGlobs returns the glob patterns batch mode matches when a
// profile does not narrow the selection: the structured-document extensions
// headson knows how to parse.
func defaultIncludeGlobs() []string {
	return []string{
		"**/*.json",
		"**/*.yaml",
		"**/*.yml",
	}
}
