package entity

import "time"

// TabID uniquely identifies a tab.
type TabID string

// ViewID is the opaque handle of the top-level content view hosted in a tab.
// It is only ever compared, never interpreted.
type ViewID string

// Tab represents one hosted top-level content view inside an aggregator window.
type Tab struct {
	ID        TabID
	Caption   string
	View      ViewID
	Closable  bool // Closable tabs are also the draggable ones; fixed tabs (home) are not
	Loading   bool // Content not attached yet; loading tabs never start or receive a drag
	CreatedAt time.Time
}

// NewTab creates a closable tab hosting the given view.
func NewTab(id TabID, caption string, view ViewID) *Tab {
	return &Tab{
		ID:        id,
		Caption:   caption,
		View:      view,
		Closable:  true,
		CreatedAt: time.Now(),
	}
}

// NewHomeTab creates the fixed, non-draggable leading tab of a window.
func NewHomeTab(id TabID, caption string, view ViewID) *Tab {
	tab := NewTab(id, caption, view)
	tab.Closable = false
	return tab
}

// IsDraggable reports whether the tab may be reordered or detached.
func (t *Tab) IsDraggable() bool {
	return t != nil && t.Closable && !t.Loading
}

// TabList manages an ordered collection of tabs.
type TabList struct {
	Tabs        []*Tab
	ActiveTabID TabID
}

// NewTabList creates an empty tab list.
func NewTabList() *TabList {
	return &TabList{
		Tabs: make([]*Tab, 0),
	}
}

// Add appends a tab to the list.
func (tl *TabList) Add(tab *Tab) {
	tl.Tabs = append(tl.Tabs, tab)
	if tl.ActiveTabID == "" {
		tl.ActiveTabID = tab.ID
	}
}

// Insert places a tab at index, clamped to the list bounds.
func (tl *TabList) Insert(tab *Tab, index int) {
	if index < 0 || index > len(tl.Tabs) {
		index = len(tl.Tabs)
	}
	tl.Tabs = append(tl.Tabs[:index], append([]*Tab{tab}, tl.Tabs[index:]...)...)
	if tl.ActiveTabID == "" {
		tl.ActiveTabID = tab.ID
	}
}

// Remove removes a tab by ID.
// When the active tab goes away the last draggable tab becomes active,
// falling back to the first (home) tab.
func (tl *TabList) Remove(id TabID) bool {
	i := tl.IndexOf(id)
	if i < 0 {
		return false
	}
	tl.Tabs = append(tl.Tabs[:i], tl.Tabs[i+1:]...)
	if tl.ActiveTabID != id {
		return true
	}
	tl.ActiveTabID = ""
	for j := len(tl.Tabs) - 1; j >= 0; j-- {
		if tl.Tabs[j].Closable {
			tl.ActiveTabID = tl.Tabs[j].ID
			return true
		}
	}
	if len(tl.Tabs) > 0 {
		tl.ActiveTabID = tl.Tabs[0].ID
	}
	return true
}

// Find returns a tab by ID.
func (tl *TabList) Find(id TabID) *Tab {
	if i := tl.IndexOf(id); i >= 0 {
		return tl.Tabs[i]
	}
	return nil
}

// FindByView returns the tab hosting the given view.
func (tl *TabList) FindByView(view ViewID) *Tab {
	for _, tab := range tl.Tabs {
		if tab.View == view {
			return tab
		}
	}
	return nil
}

// IndexOf returns the position of a tab, or -1.
func (tl *TabList) IndexOf(id TabID) int {
	for i, tab := range tl.Tabs {
		if tab.ID == id {
			return i
		}
	}
	return -1
}

// At returns the tab at index, or nil when out of range.
func (tl *TabList) At(index int) *Tab {
	if index < 0 || index >= len(tl.Tabs) {
		return nil
	}
	return tl.Tabs[index]
}

// ActiveTab returns the currently active tab.
func (tl *TabList) ActiveTab() *Tab {
	return tl.Find(tl.ActiveTabID)
}

// Select makes the tab active. Unknown IDs leave the selection untouched.
func (tl *TabList) Select(id TabID) bool {
	if tl.IndexOf(id) < 0 {
		return false
	}
	tl.ActiveTabID = id
	return true
}

// Count returns the number of tabs.
func (tl *TabList) Count() int {
	return len(tl.Tabs)
}

// Move moves a tab to a new position.
func (tl *TabList) Move(id TabID, newPos int) bool {
	if newPos < 0 || newPos >= len(tl.Tabs) {
		return false
	}
	oldPos := tl.IndexOf(id)
	if oldPos < 0 {
		return false
	}
	tab := tl.Tabs[oldPos]
	// Remove from old position
	tl.Tabs = append(tl.Tabs[:oldPos], tl.Tabs[oldPos+1:]...)
	// Insert at new position
	tl.Tabs = append(tl.Tabs[:newPos], append([]*Tab{tab}, tl.Tabs[newPos:]...)...)
	return true
}

// FirstDraggableIndex returns the index of the first closable tab.
// With no closable tab it returns Count(), the slot a dropped tab would take.
func (tl *TabList) FirstDraggableIndex() int {
	for i, tab := range tl.Tabs {
		if tab.Closable {
			return i
		}
	}
	return len(tl.Tabs)
}

// FirstDraggable returns the first closable tab, or nil.
func (tl *TabList) FirstDraggable() *Tab {
	return tl.At(tl.FirstDraggableIndex())
}

// HasDraggable reports whether any tab can be dragged.
func (tl *TabList) HasDraggable() bool {
	return tl.FirstDraggable() != nil
}
