// Package search ranks tabs, sections and app-grid items against a typed
// query for the keyword palette.
package search

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/alexisbeaulieu97/atlas/internal/config"
)

// Kind tells the dashboard how to act on a result.
type Kind string

const (
	KindTab     Kind = "tab"
	KindSection Kind = "section"
	KindApp     Kind = "app"
)

// Entry is one searchable catalog item.
type Entry struct {
	Kind     Kind
	ID       string
	Title    string
	Target   string
	Keywords []string
}

// Match quality, best first.
const (
	rankExact = iota
	rankPrefix
	rankSubstring
	rankFuzzy
)

// Result is an Entry with its ranking.
type Result struct {
	Entry
	Rank     int
	Distance int
}

// Index is an ordered catalog. Catalog order breaks ties.
type Index struct {
	entries []Entry
}

// NewIndex builds an index from the configured tabs, sections and app grid,
// in that order.
func NewIndex(cfg *config.Config) *Index {
	idx := &Index{}
	if cfg == nil {
		return idx
	}
	for _, tab := range cfg.Tabs {
		idx.Add(Entry{Kind: KindTab, ID: tab.ID, Title: tab.Title, Target: tab.ID, Keywords: tab.Keywords})
	}
	for _, s := range cfg.Sections {
		idx.Add(Entry{Kind: KindSection, ID: s.ID, Title: s.Title, Target: s.ID, Keywords: s.Keywords})
	}
	for _, item := range cfg.AppGrid {
		idx.Add(Entry{Kind: KindApp, ID: item.ID, Title: item.Name, Target: item.Target, Keywords: item.Keywords})
	}
	return idx
}

// Add appends e to the catalog.
func (i *Index) Add(e Entry) {
	i.entries = append(i.entries, e)
}

// Len returns the number of catalog entries.
func (i *Index) Len() int {
	return len(i.entries)
}

// Entries returns a copy of the catalog.
func (i *Index) Entries() []Entry {
	out := make([]Entry, len(i.entries))
	copy(out, i.entries)
	return out
}

// Find returns up to limit results for query. A limit of zero or less
// returns every match. A blank query matches nothing.
func (i *Index) Find(query string, limit int) []Result {
	q := normalize(query)
	if q == "" {
		return nil
	}

	maxDistance := len([]rune(q)) / 3
	if maxDistance < 1 {
		maxDistance = 1
	}

	var results []Result
	for _, e := range i.entries {
		if r, ok := score(e, q, maxDistance); ok {
			results = append(results, r)
		}
	}

	sort.SliceStable(results, func(a, b int) bool {
		if results[a].Rank != results[b].Rank {
			return results[a].Rank < results[b].Rank
		}
		return results[a].Distance < results[b].Distance
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// Best returns the top result for query.
func (i *Index) Best(query string) (Result, bool) {
	results := i.Find(query, 1)
	if len(results) == 0 {
		return Result{}, false
	}
	return results[0], true
}

func score(e Entry, q string, maxDistance int) (Result, bool) {
	best := Result{Entry: e, Rank: -1}
	consider := func(rank, distance int) {
		if best.Rank == -1 || rank < best.Rank || (rank == best.Rank && distance < best.Distance) {
			best.Rank = rank
			best.Distance = distance
		}
	}

	for _, term := range terms(e) {
		switch {
		case term == q:
			consider(rankExact, 0)
		case strings.HasPrefix(term, q):
			consider(rankPrefix, 0)
		case strings.Contains(term, q):
			consider(rankSubstring, 0)
		default:
			if d := levenshtein.ComputeDistance(term, q); d <= maxDistance {
				consider(rankFuzzy, d)
			}
		}
	}
	return best, best.Rank >= 0
}

func terms(e Entry) []string {
	out := make([]string, 0, len(e.Keywords)+2)
	out = append(out, normalize(e.ID), normalize(e.Title))
	for _, k := range e.Keywords {
		out = append(out, normalize(k))
	}
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
