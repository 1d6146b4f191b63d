package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeRoot runs the root command with the given stdin and args, resetting
// persistent flag state from any previous execution first (the command tree
// is a package-level singleton, like the binary's).
func executeRoot(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	// Cobra records parsed flags on cmd.Flags(), so Visit on the persistent
	// set would see none of them; walk every flag and reset the changed ones.
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed {
			return
		}
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			require.NoError(t, sv.Replace(nil))
		} else {
			require.NoError(t, f.Value.Set(f.DefValue))
		}
		f.Changed = false
	})
	flagValues.Budget = 0

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// fiftyInts is scenario input: a 50-element integer array.
func fiftyInts() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < 50; i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(i))
	}
	sb.WriteByte(']')
	return sb.String()
}

func TestSummarizeStdinStrictJSON(t *testing.T) {
	out, err := executeRoot(t, fiftyInts(),
		"--budget", "30", "--format", "json", "--style", "strict", "--skew", "tail")
	require.NoError(t, err)

	trimmed := strings.TrimSpace(out)
	var parsed []any
	require.NoError(t, json.Unmarshal([]byte(trimmed), &parsed), "strict json output must parse: %s", trimmed)
	assert.NotContains(t, out, "…")
	assert.NotContains(t, out, "/*")
}

func TestSummarizePseudoHasEllipsis(t *testing.T) {
	out, err := executeRoot(t, fiftyInts(),
		"--budget", "30", "--format", "pseudo", "--skew", "tail")
	require.NoError(t, err)
	assert.Contains(t, out, "…")
}

func TestSummarizeNoBudgetRoundTrips(t *testing.T) {
	out, err := executeRoot(t, `{"a": 1, "b": {"c": 2}}`,
		"--format", "json", "--style", "strict")
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, float64(1), parsed["a"])
}

func TestSummarizeTemplateConflictIsUsageError(t *testing.T) {
	_, err := executeRoot(t, `{}`, "--template", "pseudo", "--format", "json")
	require.Error(t, err)
	assert.Equal(t, ExitUsage, extractExitCode(err))
}

func TestSummarizeLegacyTemplate(t *testing.T) {
	out, err := executeRoot(t, fiftyInts(), "--template", "js", "--budget", "40")
	require.NoError(t, err)
	assert.Contains(t, out, "/*")
	assert.Contains(t, out, "more")
}

func TestSummarizeMultipleFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.json")
	b := filepath.Join(dir, "b.json")
	require.NoError(t, os.WriteFile(a, []byte(`{"name": "alpha"}`), 0644))
	require.NoError(t, os.WriteFile(b, []byte(`{"name": "beta"}`), 0644))

	out, err := executeRoot(t, "", "--format", "json", "--style", "strict", a, b)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Contains(t, parsed, a)
	assert.Contains(t, parsed, b)
}

func TestSummarizeOutputFile(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "summary.txt")

	_, err := executeRoot(t, `"hello"`, "--format", "json", "--style", "strict", "--output", dest)
	require.NoError(t, err)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "\"hello\"\n", string(data))
}

func TestSummarizeParseErrorExits1(t *testing.T) {
	_, err := executeRoot(t, `{"unterminated`, "--input-format", "json")
	require.Error(t, err)
	assert.Equal(t, ExitError, extractExitCode(err))
}
