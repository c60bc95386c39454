package tui

import "github.com/charmbracelet/lipgloss"

var (
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))

	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)

	studentLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true)
	tutorLabel   = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)

	proseStyle = lipgloss.NewStyle().Width(76)

	errorPanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("196")).
			Foreground(lipgloss.Color("210")).
			Padding(0, 1)

	inputPrompt = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

func modeStyle(accent string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).Bold(true)
}
