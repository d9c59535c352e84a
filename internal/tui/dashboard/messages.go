package dashboard

import "github.com/alexisbeaulieu97/atlas/internal/widgets"

// Mode determines how key presses are routed.
type Mode int

const (
	ModeBrowse Mode = iota
	ModePalette
	ModeCompose
)

// WidgetsLoadedMsg carries freshly resolved home tiles.
type WidgetsLoadedMsg struct {
	Tiles []widgets.Tile
}

// ReplyDueMsg fires when the simulated peer finishes typing.
type ReplyDueMsg struct{}

// ErrorMsg shows an error banner.
type ErrorMsg struct {
	Message string
}

// ClearErrorMsg hides the error banner.
type ClearErrorMsg struct{}
