package headson

import (
	"github.com/headsonhq/headson/internal/headsonerr"
	"github.com/headsonhq/headson/internal/style"
)

// InputFormat names the syntax summarize's input text is parsed as.
type InputFormat string

const (
	InputJSON InputFormat = "json"
	InputYAML InputFormat = "yaml"
	InputText InputFormat = "text"
)

func validInputFormat(f InputFormat) bool {
	switch f {
	case InputJSON, InputYAML, InputText:
		return true
	default:
		return false
	}
}

// Options bundles one summarize call's canonical parameters, already
// resolved from whatever mix of canonical and legacy fields the caller used
// (see ResolveLegacy).
type Options struct {
	// InputFormat is the syntax Text is parsed as. Empty means "detect":
	// try JSON, then fall back to YAML.
	InputFormat InputFormat

	// Format is the output format request, including Auto.
	Format style.Format

	// Variant controls marker verbosity.
	Variant style.Variant

	// Skew controls which end of a container survives a reduction.
	Skew style.Skew

	// CharacterBudget is the maximum output length in Unicode scalar
	// values. nil means "no budget": return the full re-emitted document.
	CharacterBudget *int
}

// DefaultOptions returns the External Interfaces defaults: input_format
// json, style default, skew balanced, format auto, no budget.
func DefaultOptions() Options {
	return Options{
		InputFormat: InputJSON,
		Format:      style.Auto,
		Variant:     style.Default,
		Skew:        style.Balanced,
	}
}

// Validate checks every enumerated field against its permitted set.
func (o Options) Validate() error {
	if o.InputFormat != "" && !validInputFormat(o.InputFormat) {
		return headsonerr.InvalidOpt("invalid input_format " + string(o.InputFormat) + " (allowed: json, yaml, text)")
	}
	if o.Format != "" && o.Format != style.Auto && !style.ValidFormat(o.Format) {
		return headsonerr.InvalidOpt("invalid format " + string(o.Format) + " (allowed: auto, json, yaml, text, pseudo, js)")
	}
	if o.Variant != "" && !style.ValidVariant(o.Variant) {
		return headsonerr.InvalidOpt("invalid style " + string(o.Variant) + " (allowed: strict, default, detailed)")
	}
	if o.Skew != "" && !style.ValidSkew(o.Skew) {
		return headsonerr.InvalidOpt("invalid skew " + string(o.Skew) + " (allowed: balanced, head, tail)")
	}
	if o.CharacterBudget != nil && *o.CharacterBudget < 0 {
		return headsonerr.InvalidOpt("character_budget must be a positive integer")
	}
	return nil
}
