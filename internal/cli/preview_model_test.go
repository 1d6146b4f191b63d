package cli

import (
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/headsonhq/headson/internal/headson"
)

func newTestPreview(t *testing.T) *previewModel {
	t.Helper()

	base := headson.RawRequest{
		InputFormat: "json",
		Format:      "pseudo",
		Style:       "default",
		Skew:        "balanced",
	}
	return newPreviewModel("test.json", `{"items": [1, 2, 3, 4, 5, 6, 7, 8]}`, base)
}

func TestPreviewModelInitialRender(t *testing.T) {
	t.Parallel()

	m := newTestPreview(t)
	require.NoError(t, m.renderErr)
	assert.NotEmpty(t, m.rendered)
	assert.Equal(t, utf8.RuneCountInString(m.text), m.budget, "budget seeds from the document's rune count")
}

func TestPreviewModelBudgetKeys(t *testing.T) {
	t.Parallel()

	m := newTestPreview(t)
	start := m.budget

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = model.(*previewModel)
	assert.Less(t, m.budget, start)

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = model.(*previewModel)
	assert.Equal(t, start-start/10+1, m.budget)
}

func TestPreviewModelBudgetFloor(t *testing.T) {
	t.Parallel()

	m := newTestPreview(t)
	m.budget = 1
	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = model.(*previewModel)
	assert.Equal(t, 1, m.budget, "budget never drops below 1")
}

func TestPreviewModelCycleKeys(t *testing.T) {
	t.Parallel()

	m := newTestPreview(t)
	assert.Equal(t, "balanced", previewSkews[m.skewIdx])

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	m = model.(*previewModel)
	assert.Equal(t, "head", previewSkews[m.skewIdx])

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	m = model.(*previewModel)
	assert.Equal(t, "detailed", previewStyles[m.styleIdx])

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	m = model.(*previewModel)
	assert.Equal(t, "js", previewFormats[m.formatIdx])
	require.NoError(t, m.renderErr)
}

func TestPreviewModelQuit(t *testing.T) {
	t.Parallel()

	m := newTestPreview(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestPreviewModelWindowSize(t *testing.T) {
	t.Parallel()

	m := newTestPreview(t)
	assert.False(t, m.ready)

	model, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = model.(*previewModel)
	assert.True(t, m.ready)
	assert.Equal(t, 20, m.viewport.Height)
	assert.Contains(t, m.View(), "headson preview test.json")
}
