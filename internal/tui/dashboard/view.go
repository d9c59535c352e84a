package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/atlas/internal/navigation"
	"github.com/alexisbeaulieu97/atlas/internal/tui/components"
)

// View renders the current model state.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	var content strings.Builder

	content.WriteString(m.renderHeader())
	content.WriteString("\n")

	if m.showError {
		content.WriteString(errorBannerStyle.Render(m.errorMsg))
		content.WriteString("\n")
	}

	if m.mode == ModePalette {
		content.WriteString(m.renderPalette())
		content.WriteString("\n")
	}

	content.WriteString(bodyStyle.Render(m.renderBody()))
	content.WriteString("\n")
	content.WriteString(footerStyle.Render(m.help.View(m.keys)))

	return content.String()
}

func (m Model) renderHeader() string {
	state := m.tabs.State()
	title := m.titleOf(state.Active)
	if title == "" {
		title = state.Active.String()
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		appTitleStyle.Render("Atlas"),
		components.Header{Title: title, Fresh: m.fresh()}.View(state, m.titleOf),
	)
	return headerStyle.Render(lipgloss.JoinVertical(lipgloss.Left, top, m.tabBar.View(state.Active)))
}

func (m Model) renderBody() string {
	switch m.activeTab() {
	case navigation.TabHome:
		return m.renderHome()
	case navigation.TabVision:
		return m.renderVision()
	case navigation.TabAtlas:
		return m.renderAtlas()
	case navigation.TabChat:
		return m.renderChat()
	default:
		return mutedStyle.Render(fmt.Sprintf("Nothing to show for %q.", m.activeTab()))
	}
}

func (m Model) renderHome() string {
	var b strings.Builder
	if m.loadingWidgets {
		b.WriteString(m.spinner.View() + mutedStyle.Render(" refreshing widgets"))
		b.WriteString("\n")
	}
	if len(m.tiles) == 0 {
		b.WriteString(mutedStyle.Render("No widgets configured."))
		return b.String()
	}
	b.WriteString(components.TileGrid(m.tiles, m.width-4))
	return b.String()
}

func (m Model) renderVision() string {
	if m.sections == nil {
		return mutedStyle.Render("No sections configured.")
	}
	active := m.sections.Active()

	var b strings.Builder
	b.WriteString(m.indicator.View(active))
	b.WriteString("\n")
	for _, marker := range m.indicator.Markers(active) {
		if marker.Active {
			b.WriteString(sectionTitleStyle.Render(marker.Title))
			b.WriteString("\n")
		}
	}
	b.WriteString(sectionBodyStyle.Width(max(20, m.width-4)).Render(m.bodies[active]))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.dots.View(active)))
	return b.String()
}

func (m Model) renderAtlas() string {
	if m.grid.Len() == 0 {
		return mutedStyle.Render("No apps configured.")
	}
	return m.grid.View(m.gridCursor)
}

func (m Model) renderChat() string {
	list := components.NewChatList(m.conv.Messages(), m.width-4)
	if m.conv.Typing() {
		list = list.WithTyping(m.spinner.View() + " " + m.conv.Peer())
	}

	// Header, tab bar, footer and input take roughly ten rows.
	limit := max(1, (m.height-10)/3)

	var b strings.Builder
	b.WriteString(list.View(limit))
	b.WriteString("\n\n")
	if m.mode == ModeCompose {
		b.WriteString(m.compose.View())
	} else {
		b.WriteString(mutedStyle.Render("press i to write a message"))
	}
	return b.String()
}

func (m Model) renderPalette() string {
	lines := []string{m.palette.View()}
	for i, r := range m.paletteResults {
		label := fmt.Sprintf("%-8s %s", r.Kind, r.Title)
		if i == 0 {
			lines = append(lines, paletteBestStyle.Render("› "+label))
		} else {
			lines = append(lines, paletteResultStyle.Render("  "+label))
		}
	}
	if len(m.paletteResults) == 0 && strings.TrimSpace(m.palette.Value()) != "" {
		lines = append(lines, mutedStyle.Render("  no matches"))
	}
	return paletteBoxStyle.Render(strings.Join(lines, "\n"))
}
