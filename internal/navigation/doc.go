// Package navigation implements the panel navigation controller that drives the
// Atlas dashboard.
//
// A Controller owns one navigation scope: the active panel and a bounded,
// most-recent-last history stack used for back navigation. There is no forward
// stack. Consumers (tab bars, section indicators, headers) read immutable State
// snapshots and route every mutation through NavigateTo and GoBack.
//
// Observers registered with Subscribe are invoked synchronously, in subscription
// order, after every change that actually alters the state. A failing observer
// (returned error or panic) is logged and skipped; delivery continues with the
// next observer.
//
// The controller is not safe for concurrent mutation. It is designed for the
// Bubble Tea update loop, which already serializes every call.
package navigation
