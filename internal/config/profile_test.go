package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestResolveProfile(t *testing.T) {
	t.Parallel()

	t.Run("default synthesized when undefined", func(t *testing.T) {
		t.Parallel()

		res, err := ResolveProfile("default", nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"default"}, res.Chain)
		assert.Equal(t, "auto", res.Profile.Format)
		assert.Equal(t, "balanced", res.Profile.Skew)
	})

	t.Run("child overrides parent scalars", func(t *testing.T) {
		t.Parallel()

		profiles := map[string]*Profile{
			"base": {Format: "yaml", CharacterBudget: 1000},
			"ci":   {Extends: strptr("base"), Style: "strict"},
		}

		res, err := ResolveProfile("ci", profiles)
		require.NoError(t, err)
		assert.Equal(t, []string{"ci", "base"}, res.Chain)
		assert.Equal(t, "yaml", res.Profile.Format)
		assert.Equal(t, "strict", res.Profile.Style)
		assert.Equal(t, 1000, res.Profile.CharacterBudget)
		assert.Nil(t, res.Profile.Extends)
	})

	t.Run("child slice replaces parent slice", func(t *testing.T) {
		t.Parallel()

		profiles := map[string]*Profile{
			"base": {Include: []string{"**/*.json", "**/*.yaml"}},
			"docs": {Extends: strptr("base"), Include: []string{"docs/**/*.yaml"}},
		}

		res, err := ResolveProfile("docs", profiles)
		require.NoError(t, err)
		assert.Equal(t, []string{"docs/**/*.yaml"}, res.Profile.Include)
	})

	t.Run("unset fields fall back to built-in defaults", func(t *testing.T) {
		t.Parallel()

		res, err := ResolveProfile("ci", map[string]*Profile{"ci": {Style: "strict"}})
		require.NoError(t, err)
		assert.Equal(t, "auto", res.Profile.Format)
		assert.Equal(t, "cl100k_base", res.Profile.Tokenizer)
	})

	t.Run("missing profile names available ones", func(t *testing.T) {
		t.Parallel()

		_, err := ResolveProfile("nope", map[string]*Profile{"ci": {}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"nope" not found`)
		assert.Contains(t, err.Error(), "ci")
		assert.Contains(t, err.Error(), "default")
	})

	t.Run("circular inheritance detected", func(t *testing.T) {
		t.Parallel()

		profiles := map[string]*Profile{
			"a": {Extends: strptr("b")},
			"b": {Extends: strptr("a")},
		}

		_, err := ResolveProfile("a", profiles)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "circular")
	})

	t.Run("self-referential extends detected", func(t *testing.T) {
		t.Parallel()

		_, err := ResolveProfile("a", map[string]*Profile{"a": {Extends: strptr("a")}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "circular")
	})
}

func TestMergeProfileDoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	base := &Profile{Format: "json", Include: []string{"a"}}
	override := &Profile{Style: "strict"}

	out := mergeProfile(base, override)
	out.Include[0] = "changed"

	assert.Equal(t, "a", base.Include[0])
	assert.Equal(t, "json", base.Format)
	assert.Equal(t, "", override.Format)
}
