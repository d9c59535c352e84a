package navigation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMainTabsOrder(t *testing.T) {
	t.Parallel()

	require.Equal(t, []Panel{"home", "vision", "atlas", "chat"}, MainTabs())
	require.True(t, IsMainTab(TabChat))
	require.False(t, IsMainTab("pricing"))
}

func TestNextAndPrevWrap(t *testing.T) {
	t.Parallel()

	order := MainTabs()
	tests := []struct {
		name     string
		current  Panel
		wantNext Panel
		wantPrev Panel
	}{
		{name: "first", current: TabHome, wantNext: TabVision, wantPrev: TabChat},
		{name: "middle", current: TabAtlas, wantNext: TabChat, wantPrev: TabVision},
		{name: "last", current: TabChat, wantNext: TabHome, wantPrev: TabAtlas},
		{name: "outside order", current: "pricing", wantNext: TabHome, wantPrev: TabChat},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.wantNext, Next(order, tt.current))
			require.Equal(t, tt.wantPrev, Prev(order, tt.current))
		})
	}
}

func TestNextOnEmptyOrderKeepsCurrent(t *testing.T) {
	t.Parallel()

	require.Equal(t, TabHome, Next(nil, TabHome))
	require.Equal(t, TabHome, Prev(nil, TabHome))
}

func TestPanelValid(t *testing.T) {
	t.Parallel()

	require.True(t, Panel("features").Valid())
	require.False(t, Panel("").Valid())
	require.False(t, Panel("\t").Valid())
}
