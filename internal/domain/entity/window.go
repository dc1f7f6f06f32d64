package entity

import "time"

// WindowID uniquely identifies an aggregator window.
type WindowID string

// WindowKind distinguishes the main window from windows created by detaching tabs.
type WindowKind int

const (
	// WindowMain is the window created at startup. It is never closed by tab moves.
	WindowMain WindowKind = iota
	// WindowSatellite is created by detaching a tab; it closes once its last
	// draggable tab is moved away.
	WindowSatellite
)

// String returns the kind name used in logs.
func (k WindowKind) String() string {
	switch k {
	case WindowMain:
		return "main"
	case WindowSatellite:
		return "satellite"
	default:
		return "unknown"
	}
}

// AggregatorWindow is a top-level window hosting an ordered strip of tabs.
type AggregatorWindow struct {
	ID        WindowID
	Kind      WindowKind
	Tabs      *TabList
	Loading   bool // Window content not attached yet; never a drag origin or drop target
	CreatedAt time.Time
}

// NewAggregatorWindow creates a window seeded with its fixed home tab.
// A nil home creates a window without fixed tabs.
func NewAggregatorWindow(id WindowID, kind WindowKind, home *Tab) *AggregatorWindow {
	w := &AggregatorWindow{
		ID:        id,
		Kind:      kind,
		Tabs:      NewTabList(),
		CreatedAt: time.Now(),
	}
	if home != nil {
		w.Tabs.Add(home)
	}
	return w
}

// IsSatellite reports whether the window was created by a detach.
func (w *AggregatorWindow) IsSatellite() bool {
	return w.Kind == WindowSatellite
}

// IsAbandoned reports whether a satellite window has nothing left worth keeping.
func (w *AggregatorWindow) IsAbandoned() bool {
	return w.IsSatellite() && !w.Tabs.HasDraggable()
}
