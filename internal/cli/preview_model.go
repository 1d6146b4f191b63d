package cli

import (
	"fmt"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/headsonhq/headson/internal/headson"
)

var (
	previewTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	previewInfoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	previewWarnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	previewPaneStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// previewSkews, previewStyles, and previewFormats are the cycle orders for
// the s/t/f keys.
var (
	previewSkews   = []string{"balanced", "head", "tail"}
	previewStyles  = []string{"default", "detailed", "strict"}
	previewFormats = []string{"auto", "json", "yaml", "text", "pseudo", "js"}
)

// previewModel is the Bubble Tea model behind `headson preview`. It holds the
// raw document plus the current knob positions, and re-runs the summarize
// pipeline on every change. The pipeline is fast enough (pure, linear in
// input size) that re-rendering synchronously inside Update is fine.
type previewModel struct {
	path string
	text string
	base headson.RawRequest

	budget    int
	skewIdx   int
	styleIdx  int
	formatIdx int

	viewport viewport.Model
	ready    bool

	rendered   string
	renderSize int
	renderErr  error
}

// newPreviewModel builds the initial model from the already-resolved request.
// The request's own budget (if any) seeds the slider; otherwise the document's
// full size does, so the first left-arrow press starts biting immediately.
func newPreviewModel(path, text string, base headson.RawRequest) *previewModel {
	m := &previewModel{
		path:   path,
		text:   text,
		base:   base,
		budget: utf8.RuneCountInString(text),
	}
	if base.CharacterBudget != nil && *base.CharacterBudget > 0 {
		m.budget = *base.CharacterBudget
	}
	m.skewIdx = indexOf(previewSkews, base.Skew)
	m.styleIdx = indexOf(previewStyles, base.Style)
	m.formatIdx = indexOf(previewFormats, base.Format)
	m.render()
	return m
}

func indexOf(list []string, v string) int {
	for i, s := range list {
		if s == v {
			return i
		}
	}
	return 0
}

// render re-runs the pipeline with the current knob positions.
func (m *previewModel) render() {
	req := m.base
	req.Text = m.text
	req.Template = ""
	req.Tail = nil
	req.Sampling = nil
	req.Skew = previewSkews[m.skewIdx]
	req.Style = previewStyles[m.styleIdx]
	req.Format = previewFormats[m.formatIdx]
	budget := m.budget
	req.CharacterBudget = &budget

	out, err := headson.Summarize(req)
	m.rendered = out
	m.renderErr = err
	m.renderSize = utf8.RuneCountInString(out)
	if m.ready {
		m.viewport.SetContent(m.contentView())
	}
}

// Init implements tea.Model.
func (m *previewModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left":
			m.budget = max(1, m.budget-max(1, m.budget/10))
			m.render()
		case "right":
			m.budget += max(1, m.budget/10)
			m.render()
		case "down":
			m.budget = max(1, m.budget-1)
			m.render()
		case "up":
			m.budget++
			m.render()
		case "s":
			m.skewIdx = (m.skewIdx + 1) % len(previewSkews)
			m.render()
		case "t":
			m.styleIdx = (m.styleIdx + 1) % len(previewStyles)
			m.render()
		case "f":
			m.formatIdx = (m.formatIdx + 1) % len(previewFormats)
			m.render()
		}

	case tea.WindowSizeMsg:
		headerHeight := 2
		footerHeight := 2
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
		m.viewport.SetContent(m.contentView())
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// contentView renders the summary pane body.
func (m *previewModel) contentView() string {
	if m.renderErr != nil {
		return previewWarnStyle.Render(m.renderErr.Error())
	}
	return previewPaneStyle.Render(m.rendered)
}

// View implements tea.Model.
func (m *previewModel) View() string {
	if !m.ready {
		return "loading preview..."
	}

	header := previewTitleStyle.Render(fmt.Sprintf("headson preview %s", m.path))

	status := fmt.Sprintf("budget %d  output %d  skew %s  style %s  format %s",
		m.budget, m.renderSize,
		previewSkews[m.skewIdx], previewStyles[m.styleIdx], previewFormats[m.formatIdx])
	if m.renderSize > m.budget {
		status += previewWarnStyle.Render("  (over budget: minimum marker floor)")
	}

	footer := previewInfoStyle.Render("←/→ budget ±10%  ↑/↓ ±1  s skew  t style  f format  q quit")

	return header + "\n" +
		previewInfoStyle.Render(status) + "\n" +
		m.viewport.View() + "\n" +
		footer
}
