package config

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBudget(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"500", 500, false},
		{"0", 0, false},
		{"2k", 2000, false},
		{"2K", 2000, false},
		{" 10k ", 10000, false},
		{"1m", 1000000, false},
		{"1.5k", 1500, false},
		{"", 0, true},
		{"abc", 0, true},
		{"-5", 0, true},
		{"-2k", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParseBudget(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func newFlagCommand() (*cobra.Command, *FlagValues) {
	cmd := &cobra.Command{Use: "headson", RunE: func(*cobra.Command, []string) error { return nil }}
	fv := BindFlags(cmd)
	return cmd, fv
}

func TestBindAndValidateFlags(t *testing.T) {
	t.Run("budget flag parses human sizes", func(t *testing.T) {
		budgetRaw = ""
		cmd, fv := newFlagCommand()
		cmd.SetArgs([]string{"--budget", "2k", "--format", "yaml"})
		require.NoError(t, cmd.Execute())

		require.NoError(t, ValidateFlags(fv, cmd))
		assert.Equal(t, 2000, fv.Budget)
		assert.Equal(t, "yaml", fv.Format)
	})

	t.Run("verbose and quiet are mutually exclusive", func(t *testing.T) {
		budgetRaw = ""
		cmd, fv := newFlagCommand()
		cmd.SetArgs([]string{"--verbose", "--quiet"})
		require.NoError(t, cmd.Execute())

		err := ValidateFlags(fv, cmd)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mutually exclusive")
	})

	t.Run("env fallback fills unset flags only", func(t *testing.T) {
		budgetRaw = ""
		t.Setenv(EnvFormat, "yaml")
		t.Setenv(EnvSkew, "tail")

		cmd, fv := newFlagCommand()
		cmd.SetArgs([]string{"--skew", "head"})
		require.NoError(t, cmd.Execute())

		require.NoError(t, ValidateFlags(fv, cmd))
		assert.Equal(t, "yaml", fv.Format) // filled from env
		assert.Equal(t, "head", fv.Skew)   // explicit flag wins
	})

	t.Run("tail set tracking", func(t *testing.T) {
		budgetRaw = ""
		cmd, fv := newFlagCommand()
		cmd.SetArgs([]string{"--tail=false"})
		require.NoError(t, cmd.Execute())

		require.NoError(t, ValidateFlags(fv, cmd))
		assert.True(t, fv.TailSet)
		assert.False(t, fv.Tail)
	})
}

func TestFlagsToMap(t *testing.T) {
	budgetRaw = ""
	cmd, fv := newFlagCommand()
	cmd.SetArgs([]string{"--format", "js", "--budget", "100", "--include", "**/*.json"})
	require.NoError(t, cmd.Execute())
	require.NoError(t, ValidateFlags(fv, cmd))

	m := FlagsToMap(fv, cmd)
	assert.Equal(t, "js", m["format"])
	assert.Equal(t, 100, m["character_budget"])
	assert.Equal(t, []string{"**/*.json"}, m["include"])

	_, hasStyle := m["style"]
	assert.False(t, hasStyle, "unset flags must not appear in the CLI layer")
}
