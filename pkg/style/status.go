package style

import (
	"github.com/pterm/pterm"

	"github.com/arthur-debert/superlink/pkg/types"
)

// Indicators for artifact status in listings.
const (
	InstalledIndicator    = "✓"
	ConflictIndicator     = "⚠"
	NotInstalledIndicator = "·"

	SuccessIndicator = "✓"
	FailureIndicator = "✗"
)

// StatusStyle returns the pterm style for an artifact status
func StatusStyle(s types.Status) *pterm.Style {
	switch s {
	case types.StatusInstalled:
		return pterm.NewStyle(pterm.FgGreen)
	case types.StatusConflict:
		return pterm.NewStyle(pterm.FgYellow)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// StatusIndicator returns the glyph shown next to an artifact
func StatusIndicator(s types.Status) string {
	switch s {
	case types.StatusInstalled:
		return InstalledIndicator
	case types.StatusConflict:
		return ConflictIndicator
	default:
		return NotInstalledIndicator
	}
}
