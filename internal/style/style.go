package style

import (
	"github.com/charmbracelet/lipgloss"
)

// --- Reusable Colors ---
var (
	colorPink     = lipgloss.Color("205")
	colorDarkGray = lipgloss.Color("240")
	colorCyan     = lipgloss.Color("212")
)

// --- General Purpose Styles ---
var (
	HelpStyle = lipgloss.NewStyle().Faint(true)
)

// --- Notification Styles ---
var (
	TitleStyle      = lipgloss.NewStyle().Bold(true).Foreground(colorPink)
	BodyStyle       = lipgloss.NewStyle().Foreground(colorCyan)
	HeaderStyle     = lipgloss.NewStyle().Bold(true)
	NotificationBox = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(colorDarkGray).Padding(0, 1)
)
