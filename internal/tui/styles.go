package tui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary = lipgloss.Color("#5FAFFF") // headings
	colorSuccess = lipgloss.Color("#5FD700") // installed
	colorWarning = lipgloss.Color("#FFD700") // conflicts
	colorDanger  = lipgloss.Color("#FF5F5F") // failures
	colorMuted   = lipgloss.Color("#8A8A8A") // de-emphasized
	colorWhite   = lipgloss.Color("#EEEEEE") // primary text
	colorSurface = lipgloss.Color("#1E1E2E") // title bar background
)

// Selection indicator prepended to the active row.
const cursorIndicator = "▎"

// Status icons for artifact rows.
const (
	iconInstalled = "✓"
	iconConflict  = "⚠"
	iconNone      = " "
)

var (
	styleTitleBar = lipgloss.NewStyle().
			Background(colorSurface).
			Foreground(colorWhite).
			Bold(true).
			Padding(0, 1)

	styleCategory = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleCursor = lipgloss.NewStyle().
			Foreground(colorPrimary)

	styleInstalled = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleConflict = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleFailure = lipgloss.NewStyle().
			Foreground(colorDanger)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleFooter = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	styleResultsPane = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorMuted).
				Padding(0, 1)
)
