package navigation

import (
	"context"

	"github.com/alexisbeaulieu97/atlas/internal/logger"
)

// LogObserver records every committed change at debug level.
func LogObserver(log *logger.Logger, scope string) Observer {
	return func(s State) error {
		previous, _ := s.Previous()
		log.WithFields(map[string]any{
			"scope":    scope,
			"active":   s.Active.String(),
			"previous": previous.String(),
			"depth":    s.Depth(),
		}).Debug("panel changed")
		return nil
	}
}

// IndexStore persists the position of the active section.
type IndexStore interface {
	SaveSectionIndex(ctx context.Context, index int) error
}

// SectionRecorder returns an observer that writes the index of the active
// section to store. Panels outside sections are ignored. The write is a
// one-way hint; nothing in this package reads it back.
func SectionRecorder(ctx context.Context, store IndexStore, sections []Panel) Observer {
	order := append([]Panel(nil), sections...)
	return func(s State) error {
		idx := IndexOf(order, s.Active)
		if idx < 0 || store == nil {
			return nil
		}
		return store.SaveSectionIndex(ctx, idx)
	}
}

// TransitionCounter counts committed changes. Views compare the counter with
// the value they last rendered to decide whether a panel was freshly entered.
type TransitionCounter struct {
	count int
	last  State
}

// Observe is an Observer.
func (t *TransitionCounter) Observe(s State) error {
	t.count++
	t.last = s
	return nil
}

// Count returns the number of observed changes.
func (t *TransitionCounter) Count() int {
	if t == nil {
		return 0
	}
	return t.count
}

// Last returns the most recently observed state.
func (t *TransitionCounter) Last() State {
	if t == nil {
		return State{}
	}
	return t.last
}
