// Package tui is superlink's interactive presentation layer: a checkbox tree
// over the discovered artifacts with per-artifact and per-category toggles.
// It only consumes the engine's discover and reconcile operations and renders
// their results; all state lives in the filesystem.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arthur-debert/superlink/pkg/types"
)

// Run starts the TUI and blocks until it exits.
func Run(fsys types.FS, sourceRoot, claudeDir string) error {
	m := NewModel(fsys, sourceRoot, claudeDir)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
