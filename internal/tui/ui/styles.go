package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the styles used in the terminal output
type Styles struct {
	// Pager chrome
	Title       lipgloss.Style
	StatusBar   lipgloss.Style
	StatusKey   lipgloss.Style
	StatusValue lipgloss.Style
	StatusHelp  lipgloss.Style

	// Report content
	Heading lipgloss.Style
	Credit  lipgloss.Style
	Debit   lipgloss.Style
	Muted   lipgloss.Style

	// Errors and warnings
	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
}

// DefaultStyles returns the default styles
func DefaultStyles() Styles {
	primary := lipgloss.Color("99")     // Purple
	secondary := lipgloss.Color("39")   // Cyan
	muted := lipgloss.Color("240")      // Gray
	success := lipgloss.Color("82")     // Green
	warning := lipgloss.Color("214")    // Orange
	errorColor := lipgloss.Color("196") // Red

	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			Padding(0, 1),
		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236")).
			Padding(0, 1),
		StatusKey: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),
		StatusValue: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		StatusHelp: lipgloss.NewStyle().
			Foreground(muted),

		Heading: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),
		Credit: lipgloss.NewStyle().
			Foreground(success),
		Debit: lipgloss.NewStyle().
			Foreground(errorColor),
		Muted: lipgloss.NewStyle().
			Foreground(muted),

		Error: lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true),
		Warning: lipgloss.NewStyle().
			Foreground(warning),
		Success: lipgloss.NewStyle().
			Foreground(success),
	}
}

// Balance picks Credit or Debit by the sign of minutes.
func (s Styles) Balance(minutes int) lipgloss.Style {
	if minutes < 0 {
		return s.Debit
	}
	return s.Credit
}

// HighlightReport colours a rendered text report line by line: section
// headings, surplus and deficit lines.
func (s Styles) HighlightReport(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		switch {
		case line != strings.ToLower(line) && line == strings.ToUpper(line):
			lines[i] = s.Heading.Render(line)
		case strings.HasPrefix(line, "─"):
			lines[i] = s.Muted.Render(line)
		case strings.Contains(line, "(faltante)"), strings.Contains(line, "em débito"), strings.HasPrefix(line, "→"):
			lines[i] = s.Debit.Render(line)
		case strings.Contains(line, "(excedente)"), strings.Contains(line, "a favor"):
			lines[i] = s.Credit.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
