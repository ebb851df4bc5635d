package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/superlink/pkg/discovery"
	"github.com/arthur-debert/superlink/pkg/reconcile"
	"github.com/arthur-debert/superlink/pkg/types"
)

// rowKind discriminates the two node kinds in the flattened tree.
type rowKind int

const (
	rowCategory rowKind = iota
	rowArtifact
)

// row references a category (and optionally an artifact) by index into the
// model's current category list, rather than embedding engine values.
type row struct {
	kind rowKind
	cat  int
	art  int
}

// Model is the root BubbleTea model: a checkbox tree over the discovered
// categories, plus a results pane for the last reconcile batch. All engine
// access goes through discovery.Discover and reconcile.Reconcile.
type Model struct {
	fsys       types.FS
	sourceRoot string
	claudeDir  string

	categories []types.Category
	rows       []row
	cursor     int
	results    []types.OperationResult
	applied    bool
	err        error

	keys   KeyMap
	width  int
	height int
}

// NewModel discovers the current state and builds the initial tree.
func NewModel(fsys types.FS, sourceRoot, claudeDir string) Model {
	m := Model{
		fsys:       fsys,
		sourceRoot: sourceRoot,
		claudeDir:  claudeDir,
		keys:       DefaultKeyMap(),
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles all messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Toggle):
			m.toggle()
		case key.Matches(msg, m.keys.Apply):
			m.results = reconcile.Reconcile(m.fsys, m.categories)
			m.applied = true
		case key.Matches(msg, m.keys.Refresh):
			m.refresh()
			m.results = nil
			m.applied = false
		}
	}

	return m, nil
}

// refresh re-discovers the artifact list and rebuilds the flattened tree.
func (m *Model) refresh() {
	categories, err := discovery.Discover(m.fsys, m.sourceRoot, m.claudeDir)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.categories = categories

	m.rows = m.rows[:0]
	for ci := range m.categories {
		m.rows = append(m.rows, row{kind: rowCategory, cat: ci})
		for ai := range m.categories[ci].Artifacts {
			m.rows = append(m.rows, row{kind: rowArtifact, cat: ci, art: ai})
		}
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// toggle flips the selection under the cursor. On a category row, every
// member follows the inverse of the current all-selected state.
func (m *Model) toggle() {
	if m.cursor >= len(m.rows) {
		return
	}
	r := m.rows[m.cursor]
	cat := &m.categories[r.cat]

	switch r.kind {
	case rowCategory:
		newState := !cat.AllSelected()
		for i := range cat.Artifacts {
			cat.Artifacts[i].Selected = newState
		}
	case rowArtifact:
		cat.Artifacts[r.art].Selected = !cat.Artifacts[r.art].Selected
	}
}

// View renders the checklist tree, the results pane and the footer.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(styleTitleBar.Render("superlink · " + m.sourceRoot))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(styleFailure.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	} else if len(m.rows) == 0 {
		b.WriteString(styleMuted.Render("No installable artifacts found."))
		b.WriteString("\n")
	} else {
		for i, r := range m.rows {
			b.WriteString(m.renderRow(i, r))
			b.WriteString("\n")
		}
	}

	if m.applied {
		b.WriteString("\n")
		b.WriteString(styleResultsPane.Render(m.renderResults()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styleFooter.Render(m.helpLine()))

	return b.String()
}

func (m Model) renderRow(index int, r row) string {
	cursor := "  "
	if index == m.cursor {
		cursor = styleCursor.Render(cursorIndicator) + " "
	}

	cat := &m.categories[r.cat]
	if r.kind == rowCategory {
		checkbox := "[ ]"
		if cat.AllSelected() {
			checkbox = "[x]"
		}
		return cursor + styleCategory.Render(fmt.Sprintf("%s %s", checkbox, cat.Kind))
	}

	art := &cat.Artifacts[r.art]
	checkbox := "[ ]"
	if art.Selected {
		checkbox = "[x]"
	}

	var icon string
	switch art.Status {
	case types.StatusInstalled:
		icon = styleInstalled.Render(iconInstalled)
	case types.StatusConflict:
		icon = styleConflict.Render(iconConflict)
	default:
		icon = iconNone
	}

	line := fmt.Sprintf("  %s %s %s", checkbox, icon, art.Name)
	if art.Status == types.StatusConflict && art.ConflictDetail != "" {
		line += " " + styleMuted.Render("("+truncate(art.ConflictDetail, 40)+")")
	}
	return cursor + line
}

func (m Model) renderResults() string {
	if len(m.results) == 0 {
		return styleMuted.Render("No operations performed.")
	}

	var successes, failures []types.OperationResult
	for _, r := range m.results {
		if r.Success {
			successes = append(successes, r)
		} else {
			failures = append(failures, r)
		}
	}

	var lines []string
	if len(successes) > 0 {
		lines = append(lines, styleInstalled.Render(fmt.Sprintf("✓ Success (%d)", len(successes))))
		for _, r := range successes {
			lines = append(lines, fmt.Sprintf("  %s: %s", r.Action, r.Artifact.Ref()))
		}
	}
	if len(failures) > 0 {
		lines = append(lines, styleFailure.Render(fmt.Sprintf("✗ Errors (%d)", len(failures))))
		for _, r := range failures {
			lines = append(lines, fmt.Sprintf("  %s: %s - %s", r.Action, r.Artifact.Ref(), r.Message))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) helpLine() string {
	parts := []string{
		m.keys.Toggle.Help().Key + " " + m.keys.Toggle.Help().Desc,
		m.keys.Apply.Help().Key + " " + m.keys.Apply.Help().Desc,
		m.keys.Refresh.Help().Key + " " + m.keys.Refresh.Help().Desc,
		m.keys.Quit.Help().Key + " " + m.keys.Quit.Help().Desc,
	}
	return strings.Join(parts, "  ·  ")
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
