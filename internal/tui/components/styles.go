package components

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("99")
	accentColor  = lipgloss.Color("212")
	mutedColor   = lipgloss.Color("245")
	subtleColor  = lipgloss.Color("238")
	peerColor    = lipgloss.Color("63")
	selfColor    = lipgloss.Color("35")
	errorColor   = lipgloss.Color("196")

	tabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(mutedColor)

	activeTabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Bold(true).
			Foreground(accentColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(primaryColor)

	headerTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(primaryColor)

	backHintStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	freshBadgeStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	markerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(0, 1)

	activeMarkerStyle = lipgloss.NewStyle().
				Foreground(accentColor).
				Bold(true).
				Padding(0, 1)

	tileStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(subtleColor).
			Padding(0, 1)

	tileTitleStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	tileValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	tileErrorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	incomingStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(peerColor).
			Padding(0, 1)

	outgoingStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(selfColor).
			Padding(0, 1)

	authorStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	appStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(subtleColor).
			Width(16).
			Align(lipgloss.Center)

	selectedAppStyle = appStyle.
				BorderForeground(accentColor).
				Foreground(accentColor).
				Bold(true)
)
