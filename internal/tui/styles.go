package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4a90e2"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	lineStyle = lipgloss.NewStyle().
			PaddingLeft(1)

	activeLineStyle = lineStyle.
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62"))

	toastStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#333333")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	menuStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)
)
