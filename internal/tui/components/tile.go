package components

import (
	"strings"

	"github.com/NimbleMarkets/ntcharts/sparkline"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/atlas/internal/widgets"
)

const (
	defaultTileWidth = 24
	sparklineHeight  = 2
)

// Tile renders one home widget as a bordered card.
type Tile struct {
	data  widgets.Tile
	width int
}

// NewTile wraps data; width is the card width and falls back to a default
// when too small.
func NewTile(data widgets.Tile, width int) Tile {
	if width < 8 {
		width = defaultTileWidth
	}
	return Tile{data: data, width: width}
}

// View renders the card.
func (t Tile) View() string {
	title := t.data.Title
	if t.data.Icon != "" {
		title = t.data.Icon + " " + title
	}

	inner := t.width - 2
	lines := []string{
		tileTitleStyle.Render(title),
		tileValueStyle.Render(t.data.Value),
	}
	if t.data.Err != nil {
		lines = append(lines, tileErrorStyle.Render(truncate(t.data.Err.Error(), inner)))
	} else if t.data.Caption != "" {
		lines = append(lines, tileTitleStyle.Render(truncate(t.data.Caption, inner)))
	}
	if len(t.data.Trend) > 0 {
		lines = append(lines, Sparkline(t.data.Trend, inner))
	}
	return tileStyle.Width(t.width).Render(strings.Join(lines, "\n"))
}

// Sparkline draws values as a small bar chart of the given width.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return ""
	}
	sl := sparkline.New(width, sparklineHeight)
	sl.PushAll(values)
	sl.Draw()
	return sl.View()
}

// TileGrid lays tiles out left to right, wrapping to fit width.
func TileGrid(tiles []widgets.Tile, width int) string {
	if len(tiles) == 0 {
		return ""
	}
	cols := width / (defaultTileWidth + 4)
	if cols < 1 {
		cols = 1
	}

	var rows []string
	for start := 0; start < len(tiles); start += cols {
		end := start + cols
		if end > len(tiles) {
			end = len(tiles)
		}
		cells := make([]string, 0, end-start)
		for _, data := range tiles[start:end] {
			cells = append(cells, NewTile(data, defaultTileWidth).View())
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func truncate(s string, width int) string {
	r := []rune(s)
	if width <= 1 || len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}
