package headson

import (
	"log/slog"

	"github.com/headsonhq/headson/internal/headsonerr"
	"github.com/headsonhq/headson/internal/style"
)

// RawRequest is the shape a caller (CLI, MCP tool, direct library use)
// actually submits, before legacy aliases are resolved into canonical
// Options. Every field is the zero value when the caller didn't set it.
type RawRequest struct {
	Text            string
	InputFormat     string
	Format          string
	Style           string
	Skew            string
	CharacterBudget *int

	// Template is the legacy `template=` alias for (Format, Style).
	Template string
	// Tail is the legacy `tail=bool` alias for Skew.
	Tail *bool
	// Sampling is the legacy `sampling=N` alias, a pre-skew historical
	// knob that today only signals "use balanced skew"; N itself carries
	// no further meaning once skew-based target-share allocation replaced
	// it, but is still accepted so old callers don't fail outright.
	Sampling *int
}

// legacyTemplates maps the legacy `template=` values to their
// (format, style) equivalents.
var legacyTemplates = map[string]struct {
	format style.Format
	style  style.Variant
}{
	"json":   {style.JSON, style.Strict},
	"pseudo": {style.Pseudo, style.Default},
	"js":     {style.JS, style.Default},
	"yaml":   {style.YAML, style.Default},
	"yml":    {style.YAML, style.Default},
}

// ResolveLegacy translates a RawRequest into canonical Options, rejecting
// any call that mixes a legacy alias with the canonical parameter it
// aliases: supplying both forms in a single call is an invalid_option.
func ResolveLegacy(r RawRequest) (Options, error) {
	opts := DefaultOptions()

	format, variant, err := resolveFormatStyle(r)
	if err != nil {
		return Options{}, err
	}
	opts.Format = format
	opts.Variant = variant

	skew, err := resolveSkew(r)
	if err != nil {
		return Options{}, err
	}
	opts.Skew = skew

	// Unlike DefaultOptions (which pins InputFormat to json for a caller
	// constructing Options directly), a RawRequest that omits input_format
	// entirely asks for driver-level detection: try json, then yaml. Leave
	// it empty rather than inheriting DefaultOptions' json, so Summarize's
	// detect path fires.
	opts.InputFormat = InputFormat(r.InputFormat)
	opts.CharacterBudget = r.CharacterBudget

	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

func resolveFormatStyle(r RawRequest) (style.Format, style.Variant, error) {
	if r.Template != "" {
		if r.Format != "" || r.Style != "" {
			return "", "", headsonerr.InvalidOpt("legacy template cannot be combined with format/style")
		}
		mapped, ok := legacyTemplates[r.Template]
		if !ok {
			return "", "", headsonerr.InvalidOpt("invalid template " + r.Template + " (allowed: json, pseudo, js, yaml, yml)")
		}
		slog.Debug("resolved legacy template alias", "template", r.Template, "format", mapped.format, "style", mapped.style)
		return mapped.format, mapped.style, nil
	}

	format := style.Auto
	if r.Format != "" {
		format = style.Format(r.Format)
	}
	variant := style.Default
	if r.Style != "" {
		variant = style.Variant(r.Style)
	}
	return format, variant, nil
}

func resolveSkew(r RawRequest) (style.Skew, error) {
	legacyCount := 0
	if r.Tail != nil {
		legacyCount++
	}
	if r.Sampling != nil {
		legacyCount++
	}
	if legacyCount > 0 && r.Skew != "" {
		return "", headsonerr.InvalidOpt("legacy tail/sampling cannot be combined with skew")
	}
	if r.Tail != nil && r.Sampling != nil {
		return "", headsonerr.InvalidOpt("legacy tail and sampling aliases cannot both be supplied")
	}

	switch {
	case r.Tail != nil:
		skew := style.Head
		if *r.Tail {
			skew = style.Tail
		}
		slog.Debug("resolved legacy tail alias", "tail", *r.Tail, "skew", skew)
		return skew, nil
	case r.Sampling != nil:
		slog.Debug("resolved legacy sampling alias", "sampling", *r.Sampling, "skew", style.Balanced)
		return style.Balanced, nil
	case r.Skew != "":
		return style.Skew(r.Skew), nil
	default:
		return style.Balanced, nil
	}
}
