package headless

import (
	"github.com/servicestudio/shell/internal/application/port"
	"github.com/servicestudio/shell/internal/domain/entity"
)

// Window implements port.WindowView.
type Window struct {
	id          entity.WindowID
	screen      *Screen
	bounds      entity.Rect
	minSize     entity.Size
	visible     bool
	closed      bool
	activations int
	strip       *TabStrip
}

var _ port.WindowView = (*Window)(nil)

// ID returns the window ID.
func (w *Window) ID() entity.WindowID {
	return w.id
}

// Show makes the window visible. Closed windows stay closed.
func (w *Window) Show() {
	if w.closed {
		return
	}
	w.visible = true
}

// Hide hides the window without closing it.
func (w *Window) Hide() {
	w.visible = false
}

// Close hides the window for good and drops its pointer captures.
func (w *Window) Close() {
	w.closed = true
	w.visible = false
	for id, owner := range w.screen.captures {
		if owner == w {
			delete(w.screen.captures, id)
		}
	}
}

// Activate counts activation requests.
func (w *Window) Activate() {
	w.activations++
}

// Activations returns how many times the window was activated.
func (w *Window) Activations() int {
	return w.activations
}

// IsVisible reports whether the window is shown.
func (w *Window) IsVisible() bool {
	return w.visible
}

// IsClosed reports whether the window was closed.
func (w *Window) IsClosed() bool {
	return w.closed
}

// Bounds returns the frame in screen coordinates.
func (w *Window) Bounds() entity.Rect {
	return w.bounds
}

// MinSize returns the minimum window size.
func (w *Window) MinSize() entity.Size {
	return w.minSize
}

// MoveTo places the window origin at a screen point.
func (w *Window) MoveTo(screen entity.Point) {
	w.bounds.X = screen.X
	w.bounds.Y = screen.Y
}

// Resize changes the window size.
func (w *Window) Resize(size entity.Size) {
	w.bounds.W = size.W
	w.bounds.H = size.H
}

// PointToScreen converts window-client coordinates to screen coordinates.
func (w *Window) PointToScreen(client entity.Point) entity.Point {
	return client.Add(w.bounds.TopLeft())
}

// PointToClient converts screen coordinates to window-client coordinates.
func (w *Window) PointToClient(screen entity.Point) entity.Point {
	return screen.Sub(w.bounds.TopLeft())
}

// CapturePointer routes the pointer to this window.
func (w *Window) CapturePointer(id port.PointerID) {
	if w.closed {
		return
	}
	w.screen.captures[id] = w
}

// ReleasePointer releases the pointer if this window holds it.
func (w *Window) ReleasePointer(id port.PointerID) {
	if w.screen.captures[id] == w {
		delete(w.screen.captures, id)
	}
}

// HasCapture reports whether this window holds the pointer.
func (w *Window) HasCapture(id port.PointerID) bool {
	return w.screen.captures[id] == w
}

// TabStrip returns the window tab strip.
func (w *Window) TabStrip() port.TabStripView {
	return w.strip
}

// Strip returns the concrete tab strip for inspection.
func (w *Window) Strip() *TabStrip {
	return w.strip
}

// TabAt returns the tab item under a client point.
func (w *Window) TabAt(client entity.Point) (entity.TabID, bool) {
	for _, id := range w.strip.items {
		if r, ok := w.strip.TabBounds(id); ok && r.Contains(client) {
			return id, true
		}
	}
	return "", false
}
