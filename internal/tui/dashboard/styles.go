package dashboard

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	primaryColor    = lipgloss.Color("99")  // Purple
	errorColor      = lipgloss.Color("196") // Red
	mutedColor      = lipgloss.Color("245") // Gray
	accentColor     = lipgloss.Color("212") // Pink
	backgroundColor = lipgloss.Color("235") // Dark gray

	appTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			PaddingRight(2)

	headerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(mutedColor).
			MarginBottom(1)

	bodyStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			PaddingRight(2)

	sectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(accentColor).
				MarginTop(1)

	sectionBodyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252")).
				MarginBottom(1)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(mutedColor).
			MarginTop(1)

	errorBannerStyle = lipgloss.NewStyle().
				Foreground(errorColor).
				Background(lipgloss.Color("52")).
				Bold(true).
				Padding(0, 2).
				MarginBottom(1)

	paletteBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Background(backgroundColor).
			Padding(0, 1)

	paletteResultStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252"))

	paletteBestStyle = lipgloss.NewStyle().
				Foreground(accentColor).
				Bold(true)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(accentColor)
)
