package dashboard

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/atlas/internal/widgets"
)

// WidgetLoader resolves the home tiles.
type WidgetLoader func(ctx context.Context) []widgets.Tile

const widgetTimeout = 5 * time.Second

func loadWidgetsCmd(load WidgetLoader) tea.Cmd {
	if load == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), widgetTimeout)
		defer cancel()
		return WidgetsLoadedMsg{Tiles: load(ctx)}
	}
}

func replyAfterCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return ReplyDueMsg{}
	})
}
