// Package cli styles the status lines and diagnostics printed by the
// uic commands.
package cli

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// ColorEnabled controls whether output is styled. It defaults to true
// if stdout is a terminal and NO_COLOR is not set.
var ColorEnabled = initColorEnabled()

func initColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// SetColor forces styling on or off, e.g. for --no-color.
func SetColor(enabled bool) {
	ColorEnabled = enabled
}

// ColorRole identifies a semantic color.
type ColorRole int

const (
	RoleSuccess ColorRole = iota
	RoleError
	RoleWarn
	RoleInfo
	RoleHeading
	RoleMuted
)

var styles = map[ColorRole]lipgloss.Style{
	RoleSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("#2D8C5A")),
	RoleError:   lipgloss.NewStyle().Foreground(lipgloss.Color("#C43030")).Bold(true),
	RoleWarn:    lipgloss.NewStyle().Foreground(lipgloss.Color("#D4940A")),
	RoleInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	RoleHeading: lipgloss.NewStyle().Bold(true),
	RoleMuted:   lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")),
}

func paint(role ColorRole, s string) string {
	if !ColorEnabled {
		return s
	}
	return styles[role].Render(s)
}

// Success formats a message with a check prefix.
func Success(msg string) string {
	return paint(RoleSuccess, "✓ "+msg)
}

// Error formats a message with a cross prefix.
func Error(msg string) string {
	return paint(RoleError, "✗ "+msg)
}

// Warn formats a message with a warning prefix.
func Warn(msg string) string {
	return paint(RoleWarn, "⚠ "+msg)
}

// Info formats a message with the info color (no prefix).
func Info(msg string) string {
	return paint(RoleInfo, msg)
}

// Heading formats a section title.
func Heading(msg string) string {
	return paint(RoleHeading, msg)
}

// Muted formats secondary text such as suggestions and timings.
func Muted(msg string) string {
	return paint(RoleMuted, msg)
}
