package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig writes a headson.toml with the given body into dir and returns
// its path.
func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "headson.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestResolve(t *testing.T) {
	t.Run("defaults only", func(t *testing.T) {
		res, err := Resolve(ResolveOptions{
			TargetDir:        t.TempDir(),
			GlobalConfigPath: filepath.Join(t.TempDir(), "absent.toml"),
		})
		require.NoError(t, err)
		assert.Equal(t, "default", res.ProfileName)
		assert.Equal(t, "auto", res.Profile.Format)
		assert.Equal(t, "balanced", res.Profile.Skew)
		assert.Equal(t, 0, res.Profile.CharacterBudget)
		assert.Equal(t, SourceDefault, res.Sources["format"])
	})

	t.Run("repo config overrides defaults", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, `
[profile.default]
format = "yaml"
character_budget = 800
`)

		res, err := Resolve(ResolveOptions{
			TargetDir:        dir,
			GlobalConfigPath: filepath.Join(t.TempDir(), "absent.toml"),
		})
		require.NoError(t, err)
		assert.Equal(t, "yaml", res.Profile.Format)
		assert.Equal(t, 800, res.Profile.CharacterBudget)
		assert.Equal(t, SourceRepo, res.Sources["format"])
		assert.Equal(t, SourceDefault, res.Sources["skew"])
	})

	t.Run("env overrides repo", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, `
[profile.default]
format = "yaml"
`)
		t.Setenv(EnvFormat, "js")

		res, err := Resolve(ResolveOptions{
			TargetDir:        dir,
			GlobalConfigPath: filepath.Join(t.TempDir(), "absent.toml"),
		})
		require.NoError(t, err)
		assert.Equal(t, "js", res.Profile.Format)
		assert.Equal(t, SourceEnv, res.Sources["format"])
	})

	t.Run("cli flags override everything", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, `
[profile.default]
format = "yaml"
character_budget = 800
`)
		t.Setenv(EnvFormat, "js")

		res, err := Resolve(ResolveOptions{
			TargetDir:        dir,
			GlobalConfigPath: filepath.Join(t.TempDir(), "absent.toml"),
			CLIFlags:         map[string]any{"format": "pseudo"},
		})
		require.NoError(t, err)
		assert.Equal(t, "pseudo", res.Profile.Format)
		assert.Equal(t, 800, res.Profile.CharacterBudget)
		assert.Equal(t, SourceFlag, res.Sources["format"])
	})

	t.Run("named profile with extends", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, `
[profile.base]
format = "yaml"
character_budget = 1000

[profile.ci]
extends = "base"
style = "strict"
`)

		res, err := Resolve(ResolveOptions{
			ProfileName:      "ci",
			TargetDir:        dir,
			GlobalConfigPath: filepath.Join(t.TempDir(), "absent.toml"),
		})
		require.NoError(t, err)
		assert.Equal(t, "ci", res.ProfileName)
		assert.Equal(t, "yaml", res.Profile.Format)
		assert.Equal(t, "strict", res.Profile.Style)
		assert.Equal(t, 1000, res.Profile.CharacterBudget)
	})

	t.Run("missing named profile errors", func(t *testing.T) {
		_, err := Resolve(ResolveOptions{
			ProfileName:      "nope",
			TargetDir:        t.TempDir(),
			GlobalConfigPath: filepath.Join(t.TempDir(), "absent.toml"),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"nope" not found`)
	})

	t.Run("HEADSON_PROFILE selects profile", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, `
[profile.night]
skew = "tail"
`)
		t.Setenv(EnvProfile, "night")

		res, err := Resolve(ResolveOptions{
			TargetDir:        dir,
			GlobalConfigPath: filepath.Join(t.TempDir(), "absent.toml"),
		})
		require.NoError(t, err)
		assert.Equal(t, "night", res.ProfileName)
		assert.Equal(t, "tail", res.Profile.Skew)
	})

	t.Run("standalone profile file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "release.toml")
		require.NoError(t, os.WriteFile(path, []byte(`
[profile.default]
style = "detailed"
`), 0644))

		res, err := Resolve(ResolveOptions{
			ProfileFile:      path,
			GlobalConfigPath: filepath.Join(t.TempDir(), "absent.toml"),
		})
		require.NoError(t, err)
		assert.Equal(t, "detailed", res.Profile.Style)
	})

	t.Run("invalid repo config errors", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, `[profile.default`)

		_, err := Resolve(ResolveOptions{
			TargetDir:        dir,
			GlobalConfigPath: filepath.Join(t.TempDir(), "absent.toml"),
		})
		assert.Error(t, err)
	})
}
