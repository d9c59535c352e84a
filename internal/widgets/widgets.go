// Package widgets produces the tiles shown on the home tab.
package widgets

import (
	"context"
	"fmt"

	"github.com/alexisbeaulieu97/atlas/internal/config"
	"github.com/alexisbeaulieu97/atlas/internal/logger"
)

// Tile is the data behind one home widget.
type Tile struct {
	ID      string
	Title   string
	Icon    string
	Value   string
	Caption string
	Trend   []float64
	Err     error
}

// Source produces a tile.
type Source interface {
	Tile(ctx context.Context) (Tile, error)
}

// StaticSource serves a tile straight from configuration.
type StaticSource struct {
	cfg config.WidgetConfig
}

// NewStaticSource wraps cfg.
func NewStaticSource(cfg config.WidgetConfig) *StaticSource {
	return &StaticSource{cfg: cfg}
}

// Tile implements Source.
func (s *StaticSource) Tile(context.Context) (Tile, error) {
	return Tile{
		ID:      s.cfg.ID,
		Title:   s.cfg.Title,
		Icon:    s.cfg.Icon,
		Value:   s.cfg.Value,
		Caption: s.cfg.Caption,
		Trend:   append([]float64(nil), s.cfg.Trend...),
	}, nil
}

// SourceFor picks the source implementation for a widget kind.
func SourceFor(cfg config.WidgetConfig) (Source, error) {
	switch cfg.Kind {
	case config.WidgetStatic:
		return NewStaticSource(cfg), nil
	case config.WidgetGit:
		return NewGitSource(cfg), nil
	default:
		return nil, fmt.Errorf("unknown widget kind %q", cfg.Kind)
	}
}

// Load resolves every configured widget in order. A widget that fails still
// yields a tile carrying the error so the grid keeps its shape.
func Load(ctx context.Context, cfgs []config.WidgetConfig, log *logger.Logger) []Tile {
	tiles := make([]Tile, 0, len(cfgs))
	for _, cfg := range cfgs {
		tile, err := load(ctx, cfg)
		if err != nil {
			log.WithFields(map[string]any{"widget": cfg.ID, "kind": cfg.Kind, "error": err.Error()}).Warn("widget unavailable")
			tile = Tile{ID: cfg.ID, Title: cfg.Title, Icon: cfg.Icon, Value: "unavailable", Err: err}
		}
		tiles = append(tiles, tile)
	}
	return tiles
}

func load(ctx context.Context, cfg config.WidgetConfig) (Tile, error) {
	src, err := SourceFor(cfg)
	if err != nil {
		return Tile{}, err
	}
	return src.Tile(ctx)
}
