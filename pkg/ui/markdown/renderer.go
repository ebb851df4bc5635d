// Package markdown renders artifact markdown (command files, agent files,
// SKILL.md) for terminal display using glamour.
package markdown

import (
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Renderer converts markdown to styled terminal output.
type Renderer struct {
	style string
	width int
}

// NewRenderer creates a renderer whose style follows the terminal: plain
// text when stdout is not a TTY or the terminal reports no color support,
// auto-detected light/dark otherwise.
func NewRenderer(width int) *Renderer {
	style := "auto"
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		style = "notty"
	} else if termenv.NewOutput(os.Stdout).EnvColorProfile() == termenv.Ascii {
		style = "notty"
	}
	return &Renderer{style: style, width: width}
}

// Render converts markdown to terminal output, falling back to the raw
// content if rendering fails.
func (r *Renderer) Render(content string) string {
	options := []glamour.TermRendererOption{}
	if r.style == "auto" {
		options = append(options, glamour.WithAutoStyle())
	} else {
		options = append(options, glamour.WithStandardStyle(r.style))
	}
	if r.width > 0 {
		options = append(options, glamour.WithWordWrap(r.width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}

	return rendered
}
