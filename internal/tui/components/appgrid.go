package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/atlas/internal/config"
	"github.com/alexisbeaulieu97/atlas/internal/navigation"
)

// AppGrid renders launcher items with a cursor.
type AppGrid struct {
	items   []config.AppItem
	columns int
}

// NewAppGrid builds a grid with the given number of columns.
func NewAppGrid(items []config.AppItem, columns int) AppGrid {
	if columns < 1 {
		columns = 1
	}
	return AppGrid{items: append([]config.AppItem(nil), items...), columns: columns}
}

// Len returns the number of items.
func (g AppGrid) Len() int { return len(g.items) }

// Columns returns the grid width in items.
func (g AppGrid) Columns() int { return g.columns }

// Target returns the panel the item at index opens.
func (g AppGrid) Target(index int) (navigation.Panel, bool) {
	if index < 0 || index >= len(g.items) {
		return "", false
	}
	return navigation.Panel(g.items[index].Target), true
}

// Open navigates nav to the target of the item at index.
func (g AppGrid) Open(nav navigation.Navigator, index int) bool {
	target, ok := g.Target(index)
	if !ok || nav == nil {
		return false
	}
	nav.NavigateTo(target)
	return true
}

// Move returns the cursor after moving by dx columns and dy rows, clamped to
// the grid.
func (g AppGrid) Move(cursor, dx, dy int) int {
	if len(g.items) == 0 {
		return 0
	}
	next := cursor + dx + dy*g.columns
	if next < 0 || next >= len(g.items) {
		return cursor
	}
	return next
}

// View renders the grid with the item at cursor selected.
func (g AppGrid) View(cursor int) string {
	var rows []string
	for start := 0; start < len(g.items); start += g.columns {
		end := start + g.columns
		if end > len(g.items) {
			end = len(g.items)
		}
		cells := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			item := g.items[i]
			label := item.Name
			if item.Icon != "" {
				label = item.Icon + "\n" + label
			}
			if i == cursor {
				cells = append(cells, selectedAppStyle.Render(label))
			} else {
				cells = append(cells, appStyle.Render(label))
			}
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
