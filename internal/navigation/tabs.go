package navigation

// Main tabs of the dashboard shell. The set is closed; section flows use open
// identifiers in their own scope.
const (
	TabHome   Panel = "home"
	TabVision Panel = "vision"
	TabAtlas  Panel = "atlas"
	TabChat   Panel = "chat"
)

// MainTabs returns the main tabs in display order.
func MainTabs() []Panel {
	return []Panel{TabHome, TabVision, TabAtlas, TabChat}
}

// IsMainTab reports whether p is one of the main tabs.
func IsMainTab(p Panel) bool {
	for _, tab := range MainTabs() {
		if tab == p {
			return true
		}
	}
	return false
}

// IndexOf returns the position of p in order, or -1.
func IndexOf(order []Panel, p Panel) int {
	for i, o := range order {
		if o == p {
			return i
		}
	}
	return -1
}

// Next returns the panel after current in order, wrapping at the end.
// A current panel outside order yields the first entry.
func Next(order []Panel, current Panel) Panel {
	if len(order) == 0 {
		return current
	}
	idx := IndexOf(order, current)
	return order[(idx+1)%len(order)]
}

// Prev returns the panel before current in order, wrapping at the start.
func Prev(order []Panel, current Panel) Panel {
	if len(order) == 0 {
		return current
	}
	idx := IndexOf(order, current) - 1
	if idx < 0 {
		idx = len(order) - 1
	}
	return order[idx]
}

// Panels converts raw identifiers to Panels, preserving order.
func Panels(ids ...string) []Panel {
	out := make([]Panel, len(ids))
	for i, id := range ids {
		out[i] = Panel(id)
	}
	return out
}
