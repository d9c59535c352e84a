package widgets

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"

	"github.com/alexisbeaulieu97/atlas/internal/config"
)

// TrendDays is the number of daily buckets in the commit activity trend.
const TrendDays = 7

// GitSource reports the branch, head commit and worktree state of a local
// repository.
type GitSource struct {
	cfg config.WidgetConfig
	now func() time.Time
}

// NewGitSource wraps cfg; cfg.RepoPath may point anywhere inside a worktree.
func NewGitSource(cfg config.WidgetConfig) *GitSource {
	return &GitSource{cfg: cfg, now: time.Now}
}

// Tile implements Source.
func (g *GitSource) Tile(ctx context.Context) (Tile, error) {
	repo, err := git.PlainOpenWithOptions(g.cfg.RepoPath, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return Tile{}, fmt.Errorf("open repository %s: %w", g.cfg.RepoPath, err)
	}

	head, err := repo.Head()
	if err != nil {
		return Tile{}, fmt.Errorf("resolve HEAD: %w", err)
	}

	branch := head.Name().Short()
	if !head.Name().IsBranch() {
		branch = "detached"
	}

	state := "clean"
	if wt, err := repo.Worktree(); err == nil {
		status, err := wt.Status()
		if err != nil {
			return Tile{}, fmt.Errorf("worktree status: %w", err)
		}
		if n := changedFiles(status); n > 0 {
			state = fmt.Sprintf("%d changed", n)
		}
	}

	trend, err := g.activity(ctx, repo, head.Hash())
	if err != nil {
		return Tile{}, err
	}

	return Tile{
		ID:      g.cfg.ID,
		Title:   g.cfg.Title,
		Icon:    g.cfg.Icon,
		Value:   branch,
		Caption: fmt.Sprintf("%s · %s", head.Hash().String()[:7], state),
		Trend:   trend,
	}, nil
}

func changedFiles(status git.Status) int {
	n := 0
	for _, fs := range status {
		if fs.Staging != git.Unmodified || fs.Worktree != git.Unmodified {
			n++
		}
	}
	return n
}

// activity counts commits per day over the last TrendDays days, oldest first.
func (g *GitSource) activity(ctx context.Context, repo *git.Repository, from plumbing.Hash) ([]float64, error) {
	today := truncateDay(g.now())
	since := today.AddDate(0, 0, -(TrendDays - 1))

	iter, err := repo.Log(&git.LogOptions{From: from, Since: &since})
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	defer iter.Close()

	counts := make([]float64, TrendDays)
	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		day := int(math.Round(truncateDay(c.Committer.When).Sub(since).Hours() / 24))
		if day >= 0 && day < TrendDays {
			counts[day]++
		}
		return nil
	})
	if err != nil && !errors.Is(err, storer.ErrStop) {
		return nil, fmt.Errorf("walk log: %w", err)
	}
	return counts, nil
}

func truncateDay(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}
