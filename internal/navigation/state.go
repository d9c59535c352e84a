package navigation

import "strings"

// Panel is an opaque identifier naming a navigable view.
type Panel string

// String implements fmt.Stringer.
func (p Panel) String() string {
	return string(p)
}

// Valid reports whether the identifier can be used as an active panel.
func (p Panel) Valid() bool {
	return strings.TrimSpace(string(p)) != ""
}

// State is a read-only snapshot of a navigation scope.
type State struct {
	Active  Panel
	History []Panel
}

// Previous returns the most recent history entry, if any.
func (s State) Previous() (Panel, bool) {
	if len(s.History) == 0 {
		return "", false
	}
	return s.History[len(s.History)-1], true
}

// Depth returns the number of entries available to GoBack.
func (s State) Depth() int {
	return len(s.History)
}

// Equal reports whether two snapshots describe the same position.
func (s State) Equal(other State) bool {
	if s.Active != other.Active || len(s.History) != len(other.History) {
		return false
	}
	for i := range s.History {
		if s.History[i] != other.History[i] {
			return false
		}
	}
	return true
}

func (s State) clone() State {
	history := make([]Panel, len(s.History))
	copy(history, s.History)
	return State{Active: s.Active, History: history}
}
