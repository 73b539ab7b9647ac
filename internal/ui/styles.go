package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	ColorSuccess = lipgloss.Color("82")  // Green
	ColorWarning = lipgloss.Color("214") // Orange
	ColorMuted   = lipgloss.Color("245") // Gray
)

// Styles for stderr notices
var (
	Success  = lipgloss.NewStyle().Foreground(ColorSuccess)
	Warning  = lipgloss.NewStyle().Foreground(ColorWarning)
	Dim      = lipgloss.NewStyle().Foreground(ColorMuted)
	FilePath = lipgloss.NewStyle().Bold(true)
)

// FormatWritten formats the completion notice shown after the document is
// written to a file.
func FormatWritten(path string) string {
	return Success.Render("Output written to ") + FilePath.Render(path)
}

// FormatSummary formats the per-run statistics notice.
func FormatSummary(roots, files int) string {
	return Dim.Render(fmt.Sprintf("Packaged %d file(s) across %d root(s)", files, roots))
}
