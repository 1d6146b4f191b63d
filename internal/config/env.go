package config

import (
	"os"
	"strconv"
)

// Environment variable name constants for HEADSON_ prefixed overrides.
const (
	// EnvProfile selects the named profile to activate.
	EnvProfile = "HEADSON_PROFILE"
	// EnvInputFormat overrides the declared input syntax.
	EnvInputFormat = "HEADSON_INPUT_FORMAT"
	// EnvFormat overrides the output format.
	EnvFormat = "HEADSON_FORMAT"
	// EnvStyle overrides the marker style.
	EnvStyle = "HEADSON_STYLE"
	// EnvSkew overrides the reduction skew.
	EnvSkew = "HEADSON_SKEW"
	// EnvBudget overrides the character budget.
	EnvBudget = "HEADSON_BUDGET"
	// EnvTokenizer overrides the diagnostic token-report encoding.
	EnvTokenizer = "HEADSON_TOKENIZER"
	// EnvLogFormat overrides the log output format (not a profile field).
	EnvLogFormat = "HEADSON_LOG_FORMAT"
	// EnvDebug forces debug-level logging when set to "1" (not a profile field).
	EnvDebug = "HEADSON_DEBUG"
)

// buildEnvMap reads HEADSON_* environment variables and returns a flat map
// suitable for use with a koanf confmap provider. Only non-empty env vars that
// parse successfully are included. Invalid numeric values are silently skipped
// so that a bad env var does not block the entire resolution pipeline.
func buildEnvMap() map[string]any {
	m := make(map[string]any)

	if v := os.Getenv(EnvInputFormat); v != "" {
		m["input_format"] = v
	}
	if v := os.Getenv(EnvFormat); v != "" {
		m["format"] = v
	}
	if v := os.Getenv(EnvStyle); v != "" {
		m["style"] = v
	}
	if v := os.Getenv(EnvSkew); v != "" {
		m["skew"] = v
	}
	if v := os.Getenv(EnvBudget); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			m["character_budget"] = n
		}
	}
	if v := os.Getenv(EnvTokenizer); v != "" {
		m["tokenizer"] = v
	}

	return m
}
