package dashboard

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestView_Initializing(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Deps{})
	m.width = 0
	assert.Equal(t, "Initializing...", m.View())
}

func TestView_HeaderShowsBackHintOnlyWithHistory(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Deps{})
	first := ansi.Strip(m.View())
	assert.Contains(t, first, "Atlas")
	assert.Contains(t, first, "1 ⌂ Home")
	assert.NotContains(t, first, "← ")

	m = send(t, m, runes("2"))
	view := ansi.Strip(m.View())
	assert.Contains(t, view, "← Home")
	assert.Contains(t, view, "▸ Vision")
	assert.Contains(t, view, "● ○ ○")
}

func TestView_Panels(t *testing.T) {
	t.Parallel()

	m := send(t, newTestModel(t, Deps{}), tea.WindowSizeMsg{Width: 120, Height: 40})

	home := ansi.Strip(m.View())
	assert.Contains(t, home, "Visitors")
	assert.Contains(t, home, "1,204")

	atlas := ansi.Strip(send(t, m, runes("3")).View())
	assert.Contains(t, atlas, "Roadmap")

	chatView := ansi.Strip(send(t, m, runes("4")).View())
	assert.Contains(t, chatView, "Atlas")
	assert.Contains(t, chatView, "press i to write a message")
}
