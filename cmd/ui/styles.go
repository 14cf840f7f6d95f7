package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color palette
var (
	ColorRedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true)
	ColorYellowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true)
	ColorMagentaStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF00FF")).Italic(true)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#5F5FFF"))
)

// Colour modes accepted by SetColorMode.
const (
	ModeAuto   = "auto"
	ModeAlways = "always"
	ModeNever  = "never"
)

// SetColorMode picks the lipgloss colour profile. Auto inspects w and the
// environment (NO_COLOR, TERM, CLICOLOR_FORCE).
func SetColorMode(mode string, w io.Writer) {
	switch mode {
	case ModeAlways:
		lipgloss.SetColorProfile(termenv.TrueColor)
	case ModeNever:
		lipgloss.SetColorProfile(termenv.Ascii)
	default:
		lipgloss.SetColorProfile(termenv.NewOutput(w).EnvColorProfile())
	}
}

func Red(s string) string {
	return ColorRedStyle.Render(s)
}

func Yellow(s string) string {
	return ColorYellowStyle.Render(s)
}

func Magenta(s string) string {
	return ColorMagentaStyle.Render(s)
}

// Header renders a banner line.
func Header(text string) string {
	return HeaderStyle.Render(text)
}

// ErrorMessage formats an error message in red
func ErrorMessage(message string) string {
	return Red(message)
}
