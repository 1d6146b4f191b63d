package config

import (
	"fmt"

	"github.com/headsonhq/headson/internal/style"
)

// ValidationError describes a single configuration validation problem. It
// carries the field path where the problem was detected and a human-readable
// message explaining what is wrong.
//
// ValidationError implements the error interface so individual results can be
// returned as standard Go errors when only one result is relevant.
type ValidationError struct {
	// Field is the dotted path of the configuration field that caused the
	// issue, e.g. "profile.ci.format".
	Field string

	// Message describes what went wrong in plain English.
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateProfile checks every enumerated field of a resolved profile against
// its permitted set and returns all problems found. An empty result means the
// profile is usable. fieldPrefix is prepended to field paths in results,
// e.g. "profile.ci".
func ValidateProfile(p *Profile, fieldPrefix string) []ValidationError {
	var errs []ValidationError

	field := func(name string) string {
		if fieldPrefix == "" {
			return name
		}
		return fieldPrefix + "." + name
	}

	switch p.InputFormat {
	case "", "json", "yaml", "text":
	default:
		errs = append(errs, ValidationError{
			Field:   field("input_format"),
			Message: fmt.Sprintf("invalid value %q (allowed: json, yaml, text)", p.InputFormat),
		})
	}

	if p.Format != "" {
		if _, err := style.ParseFormat(p.Format); err != nil {
			errs = append(errs, ValidationError{Field: field("format"), Message: err.Error()})
		}
	}
	if p.Style != "" {
		if _, err := style.ParseVariant(p.Style); err != nil {
			errs = append(errs, ValidationError{Field: field("style"), Message: err.Error()})
		}
	}
	if p.Skew != "" {
		if _, err := style.ParseSkew(p.Skew); err != nil {
			errs = append(errs, ValidationError{Field: field("skew"), Message: err.Error()})
		}
	}

	if p.CharacterBudget < 0 {
		errs = append(errs, ValidationError{
			Field:   field("character_budget"),
			Message: fmt.Sprintf("must be non-negative, got %d", p.CharacterBudget),
		})
	}

	switch p.Tokenizer {
	case "", "cl100k_base", "o200k_base", "none":
	default:
		errs = append(errs, ValidationError{
			Field:   field("tokenizer"),
			Message: fmt.Sprintf("invalid value %q (allowed: cl100k_base, o200k_base, none)", p.Tokenizer),
		})
	}

	return errs
}

// ValidateConfig validates every profile in cfg, including extends-chain
// resolution, and returns all problems across all profiles.
func ValidateConfig(cfg *Config) []ValidationError {
	var errs []ValidationError

	for _, name := range profileNames(cfg.Profile) {
		p, ok := cfg.Profile[name]
		if !ok {
			continue
		}
		prefix := "profile." + name

		if p.Extends != nil && *p.Extends != "" {
			if _, err := ResolveProfile(name, cfg.Profile); err != nil {
				errs = append(errs, ValidationError{Field: prefix + ".extends", Message: err.Error()})
				continue
			}
		}

		errs = append(errs, ValidateProfile(p, prefix)...)
	}

	return errs
}
