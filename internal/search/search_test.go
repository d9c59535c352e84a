package search

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/atlas/internal/config"
)

func defaultIndex(t *testing.T) *Index {
	t.Helper()
	idx := NewIndex(config.Default())
	require.Equal(t, 10, idx.Len())
	return idx
}

func TestFindRanking(t *testing.T) {
	t.Parallel()

	idx := defaultIndex(t)
	tests := []struct {
		name        string
		query       string
		wantKind    Kind
		wantID      string
		wantRank    int
		wantTargets []string
	}{
		{name: "exact id beats later duplicates", query: "vision", wantKind: KindTab, wantID: "vision", wantRank: rankExact},
		{name: "case and spaces ignored", query: "  CHAT ", wantKind: KindTab, wantID: "chat", wantRank: rankExact},
		{name: "prefix", query: "pri", wantKind: KindSection, wantID: "pricing", wantRank: rankPrefix},
		{name: "substring", query: "unch", wantKind: KindTab, wantID: "atlas", wantRank: rankSubstring},
		{name: "typo", query: "visoin", wantKind: KindTab, wantID: "vision", wantRank: rankFuzzy},
		{name: "app resolves to its target", query: "inbox", wantKind: KindApp, wantID: "messages", wantRank: rankExact},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			best, ok := idx.Best(tt.query)
			require.True(t, ok)
			require.Equal(t, tt.wantKind, best.Kind)
			require.Equal(t, tt.wantID, best.ID)
			require.Equal(t, tt.wantRank, best.Rank)
		})
	}
}

func TestFindTiesKeepCatalogOrder(t *testing.T) {
	t.Parallel()

	results := defaultIndex(t).Find("plans", 0)
	require.GreaterOrEqual(t, len(results), 2)
	require.Equal(t, "pricing", results[0].ID)
	require.Equal(t, "roadmap", results[1].ID)
	require.Equal(t, "vision", results[1].Target)
}

func TestFindLimit(t *testing.T) {
	t.Parallel()

	idx := defaultIndex(t)
	require.Len(t, idx.Find("vision", 1), 1)
	require.Len(t, idx.Find("vision", 0), 2)
}

func TestFindBlankQuery(t *testing.T) {
	t.Parallel()

	idx := defaultIndex(t)
	require.Empty(t, idx.Find("   ", 5))
	_, ok := idx.Best("")
	require.False(t, ok)
}

func TestFindNoMatch(t *testing.T) {
	t.Parallel()

	_, ok := defaultIndex(t).Best("zzzzzzzz")
	require.False(t, ok)
}

func TestEntriesReturnsCopy(t *testing.T) {
	t.Parallel()

	idx := &Index{}
	idx.Add(Entry{Kind: KindTab, ID: "home", Title: "Home", Target: "home"})
	entries := idx.Entries()
	entries[0].ID = "changed"
	require.Equal(t, "home", idx.Entries()[0].ID)
	require.Empty(t, NewIndex(nil).Entries())
}
