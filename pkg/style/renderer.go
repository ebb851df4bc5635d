// Package style renders superlink's plain-CLI output: category listings and
// reconcile results, styled with pterm.
package style

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/superlink/pkg/types"
)

var (
	titleStyle  = pterm.NewStyle(pterm.Bold)
	mutedStyle  = pterm.NewStyle(pterm.FgGray)
	errorStyle  = pterm.NewStyle(pterm.FgRed)
	okStyle     = pterm.NewStyle(pterm.FgGreen)
	headerStyle = pterm.NewStyle(pterm.FgCyan, pterm.Bold)
)

// RenderCategories renders the discovered categories as an indented listing.
func RenderCategories(categories []types.Category) string {
	if len(categories) == 0 {
		return mutedStyle.Sprint("No installable artifacts found")
	}

	var b strings.Builder
	for i := range categories {
		cat := &categories[i]
		installed := 0
		for j := range cat.Artifacts {
			if cat.Artifacts[j].Status == types.StatusInstalled {
				installed++
			}
		}

		b.WriteString(headerStyle.Sprint(cat.Kind.String()))
		b.WriteString(mutedStyle.Sprintf(" (%d/%d installed)", installed, len(cat.Artifacts)))
		b.WriteString("\n")

		for j := range cat.Artifacts {
			art := &cat.Artifacts[j]
			line := fmt.Sprintf("  %s %s",
				StatusStyle(art.Status).Sprint(StatusIndicator(art.Status)),
				art.Name)
			if art.Status == types.StatusConflict && art.ConflictDetail != "" {
				line += mutedStyle.Sprintf(" (%s)", art.ConflictDetail)
			}
			b.WriteString(line + "\n")
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// RenderResults renders a reconcile batch grouped into successes and failures.
func RenderResults(results []types.OperationResult) string {
	if len(results) == 0 {
		return mutedStyle.Sprint("No operations performed")
	}

	var successes, failures []types.OperationResult
	for _, r := range results {
		if r.Success {
			successes = append(successes, r)
		} else {
			failures = append(failures, r)
		}
	}

	var b strings.Builder
	if len(successes) > 0 {
		b.WriteString(okStyle.Sprintf("%s Success (%d)\n", SuccessIndicator, len(successes)))
		for _, r := range successes {
			b.WriteString(fmt.Sprintf("  %s: %s\n", r.Action, r.Artifact.Ref()))
		}
	}
	if len(failures) > 0 {
		b.WriteString(errorStyle.Sprintf("%s Errors (%d)\n", FailureIndicator, len(failures)))
		for _, r := range failures {
			b.WriteString(fmt.Sprintf("  %s: %s - %s\n", r.Action, r.Artifact.Ref(), r.Message))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// RenderError renders a fatal error message.
func RenderError(err error) string {
	return errorStyle.Sprintf("Error: %v", err)
}

// Title renders a section title.
func Title(text string) string {
	return titleStyle.Sprint(text)
}
