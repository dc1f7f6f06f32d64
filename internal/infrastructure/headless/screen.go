// Package headless provides an in-memory windowing backend.
// It implements the window, tab strip and ghost ports without any toolkit so the
// drag machinery can run in tests, in gesture replays and under the terminal host.
package headless

import (
	"context"
	"fmt"

	"github.com/servicestudio/shell/internal/application/port"
	"github.com/servicestudio/shell/internal/domain/entity"
)

// Layout drives the synthetic geometry of windows and tab strips.
type Layout struct {
	TabWidth         int
	TabHeight        int
	TabMinWidth      int
	HeaderImageWidth int
	WindowSize       entity.Size
	MinSize          entity.Size
	Foreground       string
	// Cascade offsets each new window from the previous one.
	Cascade entity.Point
}

// DefaultLayout returns a desktop-like pixel layout.
func DefaultLayout() Layout {
	return Layout{
		TabWidth:         120,
		TabHeight:        30,
		TabMinWidth:      60,
		HeaderImageWidth: 40,
		WindowSize:       entity.Size{W: 1024, H: 768},
		MinSize:          entity.Size{W: 640, H: 480},
		Foreground:       "#1F2328",
		Cascade:          entity.Point{X: 40, Y: 40},
	}
}

// Screen is the shared desktop: it owns pointer capture and creates windows
// and ghost surfaces.
type Screen struct {
	layout     Layout
	windows    []*Window
	ghosts     []*Ghost
	captures   map[port.PointerID]*Window
	nextOrigin entity.Point
}

// NewScreen creates an empty desktop.
func NewScreen(layout Layout) *Screen {
	return &Screen{
		layout:   layout,
		captures: make(map[port.PointerID]*Window),
	}
}

// Layout returns the geometry settings.
func (s *Screen) Layout() Layout {
	return s.layout
}

// NewWindowView implements port.WindowFactory. Windows cascade from the origin.
func (s *Screen) NewWindowView(_ context.Context, id entity.WindowID) (port.WindowView, error) {
	if id == "" {
		return nil, fmt.Errorf("window id is required")
	}
	origin := s.nextOrigin
	s.nextOrigin = s.nextOrigin.Add(s.layout.Cascade)
	return s.OpenWindow(id, entity.RectAt(origin, s.layout.WindowSize)), nil
}

// OpenWindow creates a hidden window at explicit screen bounds.
func (s *Screen) OpenWindow(id entity.WindowID, bounds entity.Rect) *Window {
	w := &Window{
		id:      id,
		screen:  s,
		bounds:  bounds,
		minSize: s.layout.MinSize,
	}
	w.strip = &TabStrip{window: w, layout: s.layout, opacity: make(map[entity.TabID]float64)}
	s.windows = append(s.windows, w)
	return w
}

// Windows returns every window ever created, closed ones included.
func (s *Screen) Windows() []*Window {
	return s.windows
}

// Window returns a window by ID.
func (s *Screen) Window(id entity.WindowID) *Window {
	for _, w := range s.windows {
		if w.id == id {
			return w
		}
	}
	return nil
}

// CaptureOwner returns the window holding the pointer, if any.
func (s *Screen) CaptureOwner(id port.PointerID) *Window {
	return s.captures[id]
}

// NewGhostSurface implements port.GhostFactory.
func (s *Screen) NewGhostSurface() port.GhostSurface {
	g := &Ghost{}
	s.ghosts = append(s.ghosts, g)
	return g
}

// Ghosts returns every ghost surface created so far.
func (s *Screen) Ghosts() []*Ghost {
	return s.ghosts
}

// OpenGhosts returns the ghost surfaces not closed yet.
func (s *Screen) OpenGhosts() []*Ghost {
	var open []*Ghost
	for _, g := range s.ghosts {
		if !g.closed {
			open = append(open, g)
		}
	}
	return open
}

// LoseCapture drops any capture held on the pointer, as the system does on focus
// loss. It returns the window that held it.
func (s *Screen) LoseCapture(id port.PointerID) *Window {
	owner := s.captures[id]
	delete(s.captures, id)
	return owner
}
