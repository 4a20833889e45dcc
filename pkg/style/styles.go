// Package style holds the lipgloss styles used for agentkit's operator
// narrative: lists of what will change, prompts and summaries.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	PathStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)
)

// ConfigureOutput turns styling off when out is not a terminal or NO_COLOR
// is set, so piped output and logs stay plain text.
func ConfigureOutput(out *os.File) {
	if os.Getenv("NO_COLOR") != "" || !(isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd())) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// Title renders a section heading
func Title(s string) string { return TitleStyle.Render(s) }

// Success renders a completion message
func Success(s string) string { return SuccessStyle.Render(s) }

// Warning renders a message about something that will be overwritten or removed
func Warning(s string) string { return WarningStyle.Render(s) }

// Error renders an error message
func Error(s string) string { return ErrorStyle.Render(s) }

// Muted renders secondary information
func Muted(s string) string { return MutedStyle.Render(s) }

// Path renders a filesystem path
func Path(s string) string { return PathStyle.Render(s) }

// Indent prefixes s with level*2 spaces
func Indent(s string, level int) string {
	pad := ""
	for i := 0; i < level; i++ {
		pad += "  "
	}
	return pad + s
}
