// Package registry tracks the open aggregator windows of the shell.
//
// The registry is an explicitly owned application context: it is created once by
// the host and handed to every component that needs to enumerate windows. Lookups
// are linear scans; a shell holds tens of windows at most.
package registry

import (
	"fmt"
	"strings"

	"github.com/servicestudio/shell/internal/application/port"
	"github.com/servicestudio/shell/internal/domain/entity"
	"github.com/servicestudio/shell/internal/ui/hittest"
)

// HitTestOrder selects how windows are enumerated for hit-testing.
type HitTestOrder int

const (
	// HitTestZOrder enumerates windows front to back.
	HitTestZOrder HitTestOrder = iota
	// HitTestEnumeration enumerates windows in creation order.
	HitTestEnumeration
)

// String returns the configuration name of the order.
func (o HitTestOrder) String() string {
	if o == HitTestEnumeration {
		return "enumeration"
	}
	return "zorder"
}

// ParseHitTestOrder parses a configuration value.
func ParseHitTestOrder(s string) (HitTestOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "zorder", "z-order":
		return HitTestZOrder, nil
	case "enumeration":
		return HitTestEnumeration, nil
	default:
		return HitTestZOrder, fmt.Errorf("unknown hit test order %q", s)
	}
}

// Window pairs the domain window with the view that displays it.
type Window struct {
	Model *entity.AggregatorWindow
	View  port.WindowView
}

// ID returns the window ID.
func (w *Window) ID() entity.WindowID {
	return w.Model.ID
}

// Frame snapshots the window geometry in screen coordinates.
func (w *Window) Frame() hittest.Frame {
	strip := w.View.TabStrip()
	toScreen := func(r entity.Rect) entity.Rect {
		if r.IsEmpty() {
			return r
		}
		return entity.RectAt(w.View.PointToScreen(r.TopLeft()), r.Size())
	}

	f := hittest.Frame{
		Window:         w.Model.ID,
		Bounds:         w.View.Bounds(),
		TopBar:         toScreen(strip.Bounds()),
		HeaderImage:    toScreen(strip.HeaderImageBounds()),
		FirstDraggable: w.Model.Tabs.FirstDraggableIndex(),
		Visible:        w.View.IsVisible(),
		Loading:        w.Model.Loading,
	}
	for _, tab := range w.Model.Tabs.Tabs {
		bounds, _ := strip.TabBounds(tab.ID)
		f.Tabs = append(f.Tabs, hittest.TabFrame{
			ID:        tab.ID,
			Bounds:    toScreen(bounds),
			Draggable: tab.IsDraggable(),
		})
	}
	return f
}

// Registry holds every open aggregator window.
type Registry struct {
	windows []*Window // creation order
	zorder  []*Window // front to back
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{}
}

// Add registers a window on top of the stack. Adding a known ID is an error.
func (r *Registry) Add(model *entity.AggregatorWindow, view port.WindowView) (*Window, error) {
	if model == nil || view == nil {
		return nil, fmt.Errorf("window model and view are required")
	}
	if r.Find(model.ID) != nil {
		return nil, fmt.Errorf("window %s already registered", model.ID)
	}
	w := &Window{Model: model, View: view}
	r.windows = append(r.windows, w)
	r.zorder = append([]*Window{w}, r.zorder...)
	return w, nil
}

// Remove unregisters a window. Returns false when unknown.
func (r *Registry) Remove(id entity.WindowID) bool {
	w := r.Find(id)
	if w == nil {
		return false
	}
	r.windows = without(r.windows, w)
	r.zorder = without(r.zorder, w)
	return true
}

// Len returns the number of registered windows.
func (r *Registry) Len() int {
	return len(r.windows)
}

// Windows returns the windows front to back.
func (r *Registry) Windows() []*Window {
	out := make([]*Window, len(r.zorder))
	copy(out, r.zorder)
	return out
}

// Ordered returns the windows in the given hit-test order.
func (r *Registry) Ordered(order HitTestOrder) []*Window {
	if order == HitTestEnumeration {
		out := make([]*Window, len(r.windows))
		copy(out, r.windows)
		return out
	}
	return r.Windows()
}

// Find returns a window by ID.
func (r *Registry) Find(id entity.WindowID) *Window {
	for _, w := range r.windows {
		if w.Model.ID == id {
			return w
		}
	}
	return nil
}

// FindByView returns the window hosting the given top-level view.
func (r *Registry) FindByView(view entity.ViewID) *Window {
	w, _ := r.FindTab(view)
	return w
}

// FindTab returns the window and tab hosting the given top-level view.
func (r *Registry) FindTab(view entity.ViewID) (*Window, *entity.Tab) {
	for _, w := range r.windows {
		if tab := w.Model.Tabs.FindByView(view); tab != nil {
			return w, tab
		}
	}
	return nil, nil
}

// FindTabByID returns the window and tab with the given tab ID.
func (r *Registry) FindTabByID(id entity.TabID) (*Window, *entity.Tab) {
	for _, w := range r.windows {
		if tab := w.Model.Tabs.Find(id); tab != nil {
			return w, tab
		}
	}
	return nil, nil
}

// WindowAt returns the frontmost visible window containing the screen point.
func (r *Registry) WindowAt(p entity.Point) *Window {
	for _, w := range r.zorder {
		if w.View.IsVisible() && w.View.Bounds().Contains(p) {
			return w
		}
	}
	return nil
}

// Main returns the first main window, or nil.
func (r *Registry) Main() *Window {
	for _, w := range r.windows {
		if w.Model.Kind == entity.WindowMain {
			return w
		}
	}
	return nil
}

// Raise moves a window to the front of the stack.
func (r *Registry) Raise(id entity.WindowID) bool {
	w := r.Find(id)
	if w == nil {
		return false
	}
	r.zorder = append([]*Window{w}, without(r.zorder, w)...)
	return true
}

// Frames snapshots every window geometry in the given order.
func (r *Registry) Frames(order HitTestOrder) []hittest.Frame {
	ordered := r.Ordered(order)
	frames := make([]hittest.Frame, 0, len(ordered))
	for _, w := range ordered {
		frames = append(frames, w.Frame())
	}
	return frames
}

func without(list []*Window, w *Window) []*Window {
	out := list[:0:0]
	for _, item := range list {
		if item != w {
			out = append(out, item)
		}
	}
	return out
}
