package tui

import "github.com/charmbracelet/lipgloss"

// ANSI palette indexes, so the client follows the terminal theme.
const (
	colorRed    = lipgloss.Color("9")
	colorGreen  = lipgloss.Color("10")
	colorYellow = lipgloss.Color("11")
	colorBlue   = lipgloss.Color("12")
)

var (
	appStyle    = lipgloss.NewStyle().Padding(1, 2)
	titleStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	statusStyle = lipgloss.NewStyle().Foreground(colorGreen)
	warnStyle   = lipgloss.NewStyle().Foreground(colorYellow)

	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
	currentStep   = lipgloss.NewStyle().Bold(true).Underline(true)
	// badgeStyle marks the unread notification count.
	badgeStyle = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)

	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
