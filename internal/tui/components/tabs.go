package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/atlas/internal/navigation"
)

// Marker is one selectable entry of a tab bar or section indicator.
type Marker struct {
	Panel  navigation.Panel
	Title  string
	Icon   string
	Active bool
}

// Item describes a panel shown by a tab bar or indicator.
type Item struct {
	Panel navigation.Panel
	Title string
	Icon  string
}

// Markers projects items against the active panel.
func Markers(items []Item, active navigation.Panel) []Marker {
	out := make([]Marker, len(items))
	for i, it := range items {
		out[i] = Marker{Panel: it.Panel, Title: it.Title, Icon: it.Icon, Active: it.Panel == active}
	}
	return out
}

// Select navigates to the item at index. Out-of-range indexes are ignored.
func Select(nav navigation.Navigator, items []Item, index int) bool {
	if nav == nil || index < 0 || index >= len(items) {
		return false
	}
	nav.NavigateTo(items[index].Panel)
	return true
}

// Order returns the panels of items in order.
func Order(items []Item) []navigation.Panel {
	out := make([]navigation.Panel, len(items))
	for i, it := range items {
		out[i] = it.Panel
	}
	return out
}

// TabBar renders the main tabs. It holds no navigation state.
type TabBar struct {
	items []Item
}

// NewTabBar builds a tab bar over items.
func NewTabBar(items []Item) TabBar {
	return TabBar{items: append([]Item(nil), items...)}
}

// Items returns the tabs in order.
func (t TabBar) Items() []Item {
	return append([]Item(nil), t.items...)
}

// Select navigates to the tab at index.
func (t TabBar) Select(nav navigation.Navigator, index int) bool {
	return Select(nav, t.items, index)
}

// View renders one label per tab, numbered for keyboard selection.
func (t TabBar) View(active navigation.Panel) string {
	cells := make([]string, 0, len(t.items))
	for i, m := range Markers(t.items, active) {
		label := m.Title
		if m.Icon != "" {
			label = m.Icon + " " + label
		}
		if i < 9 {
			label = fmt.Sprintf("%d %s", i+1, label)
		}
		if m.Active {
			cells = append(cells, activeTabStyle.Render(label))
		} else {
			cells = append(cells, tabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, cells...)
}
