// Package ui is the console's terminal surface: one bubbletea program whose
// screens are driven by the navigation state machine in internal/view.
package ui

import "github.com/charmbracelet/lipgloss"

// Palette follows the web panel: blue primary, soft red errors, green success.
var (
	colorPrimary = lipgloss.Color("#007bff")
	colorError   = lipgloss.Color("#b71c1c")
	colorSuccess = lipgloss.Color("#116328")
	colorMuted   = lipgloss.Color("#6c757d")
	colorSurface = lipgloss.Color("#f8f9fa")
)

// Styles groups the lipgloss styles shared by the screens.
type Styles struct {
	Header   lipgloss.Style
	Title    lipgloss.Style
	Label    lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Overlay  lipgloss.Style
	Footer   lipgloss.Style
}

// DefaultStyles returns the console styles.
func DefaultStyles() Styles {
	return Styles{
		Header:   lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Padding(0, 1),
		Title:    lipgloss.NewStyle().Bold(true).Underline(true),
		Label:    lipgloss.NewStyle().Foreground(colorMuted),
		Error:    lipgloss.NewStyle().Foreground(colorError),
		Success:  lipgloss.NewStyle().Foreground(colorSuccess),
		Muted:    lipgloss.NewStyle().Foreground(colorMuted),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		Overlay: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(1, 2),
		Footer: lipgloss.NewStyle().Foreground(colorMuted).Background(colorSurface),
	}
}
