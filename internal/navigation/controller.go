package navigation

import (
	"fmt"

	"github.com/alexisbeaulieu97/atlas/internal/logger"
	apperrors "github.com/alexisbeaulieu97/atlas/pkg/errors"
)

// DefaultMaxHistory caps the back stack when no explicit limit is configured.
const DefaultMaxHistory = 50

// Observer receives the new state after every committed change.
type Observer func(State) error

// Navigator is the mutation surface handed to consumers that select panels.
type Navigator interface {
	NavigateTo(target Panel) State
	State() State
}

// Option customizes a Controller at construction time.
type Option func(*Controller)

// WithMaxHistory overrides the history cap. Values below 1 keep the default.
func WithMaxHistory(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.maxHistory = n
		}
	}
}

// WithLogger attaches a logger used for observer failures and ignored calls.
func WithLogger(log *logger.Logger) Option {
	return func(c *Controller) {
		c.log = log
	}
}

// WithScope labels the controller in logs and spans.
func WithScope(scope string) Option {
	return func(c *Controller) {
		c.scope = scope
	}
}

// Controller owns the navigation state of a single scope.
type Controller struct {
	scope      string
	state      State
	maxHistory int
	observers  []observerEntry
	nextID     int
	log        *logger.Logger
}

type observerEntry struct {
	id       int
	observer Observer
}

var _ Navigator = (*Controller)(nil)

// New creates a controller positioned on start with an empty history.
func New(start Panel, opts ...Option) (*Controller, error) {
	if !start.Valid() {
		return nil, apperrors.NewInvalidPanelError(string(start), "start panel must be a non-empty identifier")
	}

	c := &Controller{
		scope:      "default",
		state:      State{Active: start, History: []Panel{}},
		maxHistory: DefaultMaxHistory,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With("scope", c.scope)
	return c, nil
}

// Scope returns the controller label.
func (c *Controller) Scope() string {
	return c.scope
}

// Active returns the panel currently displayed.
func (c *Controller) Active() Panel {
	return c.state.Active
}

// Previous returns the panel GoBack would restore.
func (c *Controller) Previous() (Panel, bool) {
	return c.state.Previous()
}

// CanGoBack reports whether the history stack is non-empty.
func (c *Controller) CanGoBack() bool {
	return len(c.state.History) > 0
}

// State returns a snapshot that callers may keep or modify freely.
func (c *Controller) State() State {
	return c.state.clone()
}

// NavigateTo makes target the active panel, pushing the current one onto history.
// Navigating to the active panel changes nothing and notifies no one.
func (c *Controller) NavigateTo(target Panel) State {
	if !target.Valid() {
		c.log.Warn("ignoring navigation to empty panel")
		return c.State()
	}
	if target == c.state.Active {
		return c.State()
	}

	c.state.History = append(c.state.History, c.state.Active)
	if overflow := len(c.state.History) - c.maxHistory; overflow > 0 {
		c.state.History = append(c.state.History[:0], c.state.History[overflow:]...)
	}
	c.state.Active = target

	c.notify()
	return c.State()
}

// GoBack restores the most recent history entry. It is a no-op on empty history.
func (c *Controller) GoBack() State {
	n := len(c.state.History)
	if n == 0 {
		return c.State()
	}

	c.state.Active = c.state.History[n-1]
	c.state.History = c.state.History[:n-1]

	c.notify()
	return c.State()
}

// Subscribe registers an observer and returns a function that removes it.
// Calling the returned function more than once has no further effect.
func (c *Controller) Subscribe(observer Observer) func() {
	if observer == nil {
		return func() {}
	}
	c.nextID++
	id := c.nextID
	c.observers = append(c.observers, observerEntry{id: id, observer: observer})

	return func() {
		for i, entry := range c.observers {
			if entry.id == id {
				c.observers = append(c.observers[:i:i], c.observers[i+1:]...)
				return
			}
		}
	}
}

// ObserverCount returns the number of registered observers.
func (c *Controller) ObserverCount() int {
	return len(c.observers)
}

func (c *Controller) notify() {
	entries := append([]observerEntry(nil), c.observers...)
	for i, entry := range entries {
		if err := c.deliver(entry.observer); err != nil {
			c.log.WithFields(map[string]any{
				"observer": i,
				"active":   c.state.Active.String(),
			}).Error(err, "navigation observer failed")
		}
	}
}

// deliver hands each observer its own snapshot and converts panics to errors.
func (c *Controller) deliver(observer Observer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("observer panic: %v", r)
		}
	}()
	return observer(c.state.clone())
}
