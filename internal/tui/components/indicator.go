package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/atlas/internal/navigation"
)

// SectionIndicator shows one titled marker per section.
type SectionIndicator struct {
	items []Item
}

// NewSectionIndicator builds an indicator over the ordered sections.
func NewSectionIndicator(items []Item) SectionIndicator {
	return SectionIndicator{items: append([]Item(nil), items...)}
}

// Markers returns one marker per section.
func (s SectionIndicator) Markers(active navigation.Panel) []Marker {
	return Markers(s.items, active)
}

// Select navigates to the section at index.
func (s SectionIndicator) Select(nav navigation.Navigator, index int) bool {
	return Select(nav, s.items, index)
}

// View renders the section titles with the active one highlighted.
func (s SectionIndicator) View(active navigation.Panel) string {
	cells := make([]string, 0, len(s.items))
	for _, m := range s.Markers(active) {
		if m.Active {
			cells = append(cells, activeMarkerStyle.Render("▸ "+m.Title))
		} else {
			cells = append(cells, markerStyle.Render("  "+m.Title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// Dots is the compact form of a section indicator.
type Dots struct {
	panels []navigation.Panel
}

// NewDots builds a dot indicator over panels.
func NewDots(panels []navigation.Panel) Dots {
	return Dots{panels: append([]navigation.Panel(nil), panels...)}
}

// View renders ● for the active panel and ○ for the others.
func (d Dots) View(active navigation.Panel) string {
	dots := make([]string, len(d.panels))
	for i, p := range d.panels {
		if p == active {
			dots[i] = "●"
		} else {
			dots[i] = "○"
		}
	}
	return strings.Join(dots, " ")
}
