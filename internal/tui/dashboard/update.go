package dashboard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/atlas/internal/chat"
	"github.com/alexisbeaulieu97/atlas/internal/navigation"
	"github.com/alexisbeaulieu97/atlas/internal/tui/components"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.compose.Width = max(10, msg.Width-6)
		m.palette.Width = max(10, msg.Width/2)
		return m, nil

	case tea.KeyMsg:
		m.seen = m.counter.Count()
		return m.handleKeyPress(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case WidgetsLoadedMsg:
		m.tiles = msg.Tiles
		m.loadingWidgets = false
		return m, nil

	case ReplyDueMsg:
		if reply, ok := m.conv.Reply(); ok {
			m.log.With("message_id", reply.ID.String()).Debug("chat reply delivered")
		}
		return m, nil

	case ErrorMsg:
		m.showError = true
		m.errorMsg = msg.Message
		return m, nil

	case ClearErrorMsg:
		m.showError = false
		m.errorMsg = ""
		return m, nil
	}

	return m, nil
}

// handleKeyPress routes keys based on the current mode.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.mode {
	case ModePalette:
		return m.handlePaletteKeys(msg)
	case ModeCompose:
		return m.handleComposeKeys(msg)
	default:
		return m.handleBrowseKeys(msg)
	}
}

func (m Model) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Palette):
		m.mode = ModePalette
		m.palette.SetValue("")
		m.paletteResults = nil
		return m, m.palette.Focus()

	case key.Matches(msg, m.keys.NextTab):
		m.tabs.NavigateTo(navigation.Next(components.Order(m.tabBar.Items()), m.activeTab()))
		return m, nil

	case key.Matches(msg, m.keys.PrevTab):
		m.tabs.NavigateTo(navigation.Prev(components.Order(m.tabBar.Items()), m.activeTab()))
		return m, nil

	case key.Matches(msg, m.keys.SelectTab):
		m.tabBar.Select(m.tabs, int(msg.String()[0]-'1'))
		return m, nil

	case key.Matches(msg, m.keys.Back):
		if m.showError {
			m.showError = false
			m.errorMsg = ""
			return m, nil
		}
		m.tabs.GoBack()
		return m, nil
	}

	switch m.activeTab() {
	case navigation.TabHome:
		return m.handleHomeKeys(msg)
	case navigation.TabVision:
		return m.handleVisionKeys(msg)
	case navigation.TabAtlas:
		return m.handleAtlasKeys(msg)
	case navigation.TabChat:
		return m.handleChatKeys(msg)
	}
	return m, nil
}

func (m Model) handleHomeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Reload) && m.loadWidgets != nil && !m.loadingWidgets {
		m.loadingWidgets = true
		return m, tea.Batch(m.spinner.Tick, loadWidgetsCmd(m.loadWidgets))
	}
	return m, nil
}

func (m Model) handleVisionKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.sections == nil {
		return m, nil
	}
	var target navigation.Panel
	switch {
	case key.Matches(msg, m.keys.Down), key.Matches(msg, m.keys.Right):
		target = navigation.Next(m.sectionOrder, m.sections.Active())
	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Left):
		target = navigation.Prev(m.sectionOrder, m.sections.Active())
	default:
		return m, nil
	}
	m.indicator.Select(m.sections, navigation.IndexOf(m.sectionOrder, target))
	return m, nil
}

func (m Model) handleAtlasKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.gridCursor = m.grid.Move(m.gridCursor, -1, 0)
	case key.Matches(msg, m.keys.Right):
		m.gridCursor = m.grid.Move(m.gridCursor, 1, 0)
	case key.Matches(msg, m.keys.Up):
		m.gridCursor = m.grid.Move(m.gridCursor, 0, -1)
	case key.Matches(msg, m.keys.Down):
		m.gridCursor = m.grid.Move(m.gridCursor, 0, 1)
	case key.Matches(msg, m.keys.Open):
		m.grid.Open(m.tabs, m.gridCursor)
	}
	return m, nil
}

func (m Model) handleChatKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Compose) || key.Matches(msg, m.keys.Open) {
		m.mode = ModeCompose
		return m, m.compose.Focus()
	}
	return m, nil
}

func (m Model) handleComposeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = ModeBrowse
		m.compose.Blur()
		return m, nil

	case tea.KeyEnter:
		sent, err := m.conv.Send(m.compose.Value())
		if errors.Is(err, chat.ErrEmptyMessage) {
			return m, nil
		}
		m.compose.SetValue("")
		m.log.With("message_id", sent.ID.String()).Debug("chat message sent")
		if m.conv.Typing() {
			return m, tea.Batch(m.spinner.Tick, replyAfterCmd(m.conv.TypingDelay()))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.compose, cmd = m.compose.Update(msg)
	return m, cmd
}

func (m Model) handlePaletteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.closePalette()
		return m, nil

	case tea.KeyEnter:
		query := m.palette.Value()
		m.closePalette()
		if best, ok := m.index.Best(query); ok {
			m.navigateToResult(best)
		} else if strings.TrimSpace(query) != "" {
			m.showError = true
			m.errorMsg = fmt.Sprintf("Nothing matches %q", query)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.palette, cmd = m.palette.Update(msg)
	m.paletteResults = m.index.Find(m.palette.Value(), paletteLimit)
	return m, cmd
}

func (m *Model) closePalette() {
	m.mode = ModeBrowse
	m.palette.Blur()
	m.palette.SetValue("")
	m.paletteResults = nil
}
