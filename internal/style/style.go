// Package style defines the small vocabulary of enums shared by the
// measurer, reducer, and emitter: output format, marker verbosity, and the
// directional preference used when a container must be pruned.
package style

import "fmt"

// Format selects the emitter used to render a reduced Value Tree. Beyond
// auto/json/yaml/text, "pseudo" and "js" are first-class, directly
// selectable renderings, not merely legacy-template aliases.
type Format string

const (
	// JSON renders strict, always-valid JSON. Omitted children are always
	// dropped (JSON has no comment syntax to carry a marker), independent
	// of Variant.
	JSON Format = "json"
	// Pseudo renders a JSON-shaped, non-machine-parseable document with
	// bare `…` / `… (N more items)` omission lines.
	Pseudo Format = "pseudo"
	// JS renders a valid JavaScript object literal with `/* N more items */`
	// block comments standing in for omitted children.
	JS Format = "js"
	// YAML renders strict YAML, with `# …` comments carrying omission
	// markers outside of strict Variant.
	YAML Format = "yaml"
	// Text renders the document as a flat sequence of newline-terminated
	// lines with no quoting.
	Text Format = "text"
	// Auto is only meaningful as an external request; Resolve expands it to
	// one of the concrete formats above based on input format and Variant.
	Auto Format = "auto"
)

// Variant controls whether omission markers are emitted at all, and if so,
// whether they carry a count.
type Variant string

const (
	// Strict suppresses every marker: output is the shortest, most
	// machine-friendly rendering and never carries comments or ellipses.
	Strict Variant = "strict"
	// Default shows a bare marker (no count) where supported.
	Default Variant = "default"
	// Detailed shows a marker with an explicit count of elided children.
	Detailed Variant = "detailed"
)

// Skew controls which end of a container is preferred when its children do
// not all fit within budget.
type Skew string

const (
	// Balanced keeps a head and tail prefix/suffix, dropping the middle.
	Balanced Skew = "balanced"
	// Head keeps the head (drops the tail) -- the marker ends up at the end.
	Head Skew = "head"
	// Tail keeps the tail (drops the head) -- the marker ends up at the start.
	Tail Skew = "tail"
)

// Style bundles Format and Variant, the pair that every measure/reduce/emit
// call is parameterized on.
type Style struct {
	Format  Format
	Variant Variant
}

// Ellipsis is the single Unicode code point U+2026, used by every
// non-strict, non-js marker.
const Ellipsis = "…"

// ValidFormat reports whether f is one of the concrete (non-Auto) formats.
func ValidFormat(f Format) bool {
	switch f {
	case JSON, Pseudo, JS, YAML, Text:
		return true
	default:
		return false
	}
}

// ValidVariant reports whether v is a recognised Variant.
func ValidVariant(v Variant) bool {
	switch v {
	case Strict, Default, Detailed:
		return true
	default:
		return false
	}
}

// ValidSkew reports whether s is a recognised Skew.
func ValidSkew(s Skew) bool {
	switch s {
	case Balanced, Head, Tail:
		return true
	default:
		return false
	}
}

// ParseFormat validates and returns f as a Format, including Auto.
func ParseFormat(s string) (Format, error) {
	f := Format(s)
	if f == Auto || ValidFormat(f) {
		return f, nil
	}
	return "", fmt.Errorf("invalid format %q (allowed: auto, json, yaml, text, pseudo, js)", s)
}

// ParseVariant validates and returns v as a Variant.
func ParseVariant(s string) (Variant, error) {
	v := Variant(s)
	if ValidVariant(v) {
		return v, nil
	}
	return "", fmt.Errorf("invalid style %q (allowed: strict, default, detailed)", s)
}

// ParseSkew validates and returns s as a Skew.
func ParseSkew(s string) (Skew, error) {
	k := Skew(s)
	if ValidSkew(k) {
		return k, nil
	}
	return "", fmt.Errorf("invalid skew %q (allowed: balanced, head, tail)", s)
}

// Resolve expands an external (format, variant, inputFormat) request into a
// concrete Style. Format == Auto mirrors inputFormat, with one twist: when
// the input was JSON and the caller asked for a non-strict Variant, pure
// JSON cannot carry the marker the caller asked to see, so auto resolves to
// Pseudo instead of JSON. An explicit Format request (format=json) is never
// substituted -- it always stays strictly JSON-shaped.
func Resolve(requested Format, variant Variant, inputFormat Format) Style {
	f := requested
	if f == Auto {
		switch inputFormat {
		case YAML:
			f = YAML
		case Text:
			f = Text
		default:
			f = JSON
			if variant != Strict {
				f = Pseudo
			}
		}
	}
	return Style{Format: f, Variant: variant}
}

// ShowsMarkers reports whether this Style renders omission markers at all.
func (s Style) ShowsMarkers() bool {
	return s.Variant != Strict
}

// Detailed reports whether this Style's markers should carry a count.
func (s Style) Detailed() bool {
	return s.Variant == Detailed
}
