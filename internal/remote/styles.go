package remote

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/musiccast/internal/ui"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.PrimaryColor).
			Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Foreground(ui.PrimaryColor).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(ui.MutedColor).
			Width(10)

	valueStyle = lipgloss.NewStyle().
			Foreground(ui.TextColor)

	subtleStyle = lipgloss.NewStyle().
			Foreground(ui.MutedColor).
			Italic(true)

	onStyle = lipgloss.NewStyle().
		Foreground(ui.SuccessColor).
		Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(ui.WarningColor)

	successStyle = lipgloss.NewStyle().
			Foreground(ui.SuccessColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(ui.ErrorColor).
			Bold(true)
)
