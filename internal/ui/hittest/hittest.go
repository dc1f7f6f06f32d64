// Package hittest maps screen points to aggregator windows, tab strips and tab slots.
//
// Every function is a pure predicate over Frame snapshots; nothing is cached between
// calls. When several frames contain the same point the first one in the supplied
// order wins, so callers pass frames front-to-back.
package hittest

import "github.com/servicestudio/shell/internal/domain/entity"

// TabFrame is the screen geometry of one tab item.
type TabFrame struct {
	ID        entity.TabID
	Bounds    entity.Rect
	Draggable bool
}

// Frame is the screen geometry of one aggregator window at a given instant.
type Frame struct {
	Window      entity.WindowID
	Bounds      entity.Rect
	TopBar      entity.Rect
	HeaderImage entity.Rect
	Tabs        []TabFrame
	// FirstDraggable is the index of the first draggable tab, len(Tabs) when none.
	FirstDraggable int
	Visible        bool
	Loading        bool
}

// IndexOf returns the slot of a tab in the frame, or -1.
func (f Frame) IndexOf(id entity.TabID) int {
	for i, tab := range f.Tabs {
		if tab.ID == id {
			return i
		}
	}
	return -1
}

// Tab returns the frame of a tab.
func (f Frame) Tab(id entity.TabID) (TabFrame, bool) {
	if i := f.IndexOf(id); i >= 0 {
		return f.Tabs[i], true
	}
	return TabFrame{}, false
}

// FirstDraggableTab returns the frame of the first draggable tab.
func (f Frame) FirstDraggableTab() (TabFrame, bool) {
	if f.FirstDraggable < 0 || f.FirstDraggable >= len(f.Tabs) {
		return TabFrame{}, false
	}
	return f.Tabs[f.FirstDraggable], true
}

// FindWindowAt returns the first visible, non-loading frame containing p.
func FindWindowAt(frames []Frame, p entity.Point) (Frame, bool) {
	for _, f := range frames {
		if !f.Visible || f.Loading {
			continue
		}
		if f.Bounds.Contains(p) {
			return f, true
		}
	}
	return Frame{}, false
}

// IsPointOnTopBar reports whether p falls on the tab strip, inflated by epsilon.
func IsPointOnTopBar(f Frame, p entity.Point, epsilon int) bool {
	return f.TopBar.Inflate(epsilon).Contains(p)
}

// IsPointOnTabs reports whether p falls on the draggable part of the tab strip:
// the top bar minus the fixed leading tabs and the header image.
func IsPointOnTabs(f Frame, p entity.Point, epsilon int) bool {
	if f.HeaderImage.Inflate(epsilon).Contains(p) {
		return false
	}
	for i := 0; i < f.FirstDraggable && i < len(f.Tabs); i++ {
		if f.Tabs[i].Bounds.Inflate(epsilon).Contains(p) {
			return false
		}
	}
	return IsPointOnTopBar(f, p, epsilon)
}

// FindWindowOnTopBar returns the window under p when p is also on its tab strip.
func FindWindowOnTopBar(frames []Frame, p entity.Point, epsilon int) (Frame, bool) {
	f, ok := FindWindowAt(frames, p)
	if !ok || !IsPointOnTopBar(f, p, epsilon) {
		return Frame{}, false
	}
	return f, true
}

// FindWindowOnTabs returns the window under p when p is on its draggable tabs.
func FindWindowOnTabs(frames []Frame, p entity.Point, epsilon int) (Frame, bool) {
	f, ok := FindWindowAt(frames, p)
	if !ok || !IsPointOnTabs(f, p, epsilon) {
		return Frame{}, false
	}
	return f, true
}

// CalculateTabIndexForPosition returns the slot the dragged tab should take when
// its left edge is at x. A tab moves one slot left once x passes the midpoint of
// the previous draggable tab, and one slot right once its right edge passes the
// midpoint of the next tab. Returns -1 when the tab is not in the frame.
func CalculateTabIndexForPosition(f Frame, id entity.TabID, x int) int {
	original := f.IndexOf(id)
	if original < 0 {
		return -1
	}

	// At least one more draggable tab is needed for swapping
	if len(f.Tabs) <= f.FirstDraggable+1 {
		return original
	}

	if original > f.FirstDraggable {
		prev := f.Tabs[original-1].Bounds
		if x < prev.X+prev.W/2 {
			return original - 1
		}
	}

	if original < len(f.Tabs)-1 {
		width := f.Tabs[original].Bounds.W
		next := f.Tabs[original+1].Bounds
		if x+width > next.X+next.W/2 {
			return original + 1
		}
	}

	return original
}
