package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/atlas/internal/navigation"
)

// Header is the panel header with an optional back hint.
type Header struct {
	Title string
	// Fresh marks a panel entered by the latest transition.
	Fresh bool
}

// BackHint returns the back button label, or false when history is empty.
func BackHint(state navigation.State, titleOf func(navigation.Panel) string) (string, bool) {
	prev, ok := state.Previous()
	if !ok {
		return "", false
	}
	title := prev.String()
	if titleOf != nil {
		if t := titleOf(prev); t != "" {
			title = t
		}
	}
	return "← " + title, true
}

// View renders the header for state.
func (h Header) View(state navigation.State, titleOf func(navigation.Panel) string) string {
	parts := []string{headerTitleStyle.Render(h.Title)}
	if h.Fresh {
		parts = append(parts, freshBadgeStyle.Render(" •"))
	}
	if hint, ok := BackHint(state, titleOf); ok {
		parts = append(parts, "  ", backHintStyle.Render(hint+" (backspace)"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
