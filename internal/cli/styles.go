package cli

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	streakStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	faintStyle   = lipgloss.NewStyle().Faint(true)
)
