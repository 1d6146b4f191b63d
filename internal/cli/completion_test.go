package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletionBash(t *testing.T) {
	out, err := executeRoot(t, "", "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "bash completion")
}

func TestCompletionZsh(t *testing.T) {
	out, err := executeRoot(t, "", "completion", "zsh")
	require.NoError(t, err)
	assert.Contains(t, out, "#compdef headson")
}

func TestCompletionNoArgsShowsHelp(t *testing.T) {
	out, err := executeRoot(t, "", "completion")
	require.NoError(t, err)
	assert.Contains(t, out, "To load completions")
}

func TestCompletionRejectsUnknownShell(t *testing.T) {
	_, err := executeRoot(t, "", "completion", "tcsh")
	assert.Error(t, err)
}
