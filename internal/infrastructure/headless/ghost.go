package headless

import (
	"github.com/servicestudio/shell/internal/application/port"
	"github.com/servicestudio/shell/internal/domain/entity"
)

// Ghost implements port.GhostSurface and records what it was asked to show.
type Ghost struct {
	content     port.GhostContent
	decorations port.Decorations
	position    entity.Point
	visible     bool
	closed      bool
	shows       int
	measures    int
}

var _ port.GhostSurface = (*Ghost)(nil)

// SetContent swaps the ghost payload.
func (g *Ghost) SetContent(content port.GhostContent) {
	g.content = content
}

// SetDecorations changes the frame style.
func (g *Ghost) SetDecorations(d port.Decorations) {
	g.decorations = d
}

// InvalidateMeasure counts re-measure requests.
func (g *Ghost) InvalidateMeasure() {
	g.measures++
}

// Show makes the ghost visible.
func (g *Ghost) Show() {
	if g.closed {
		return
	}
	g.visible = true
	g.shows++
}

// MoveTo places the ghost at a screen point.
func (g *Ghost) MoveTo(screen entity.Point) {
	g.position = screen
}

// Close destroys the ghost.
func (g *Ghost) Close() {
	g.closed = true
	g.visible = false
}

// Content returns the current payload.
func (g *Ghost) Content() port.GhostContent {
	return g.content
}

// Decorations returns the current frame style.
func (g *Ghost) Decorations() port.Decorations {
	return g.decorations
}

// Position returns the ghost origin in screen coordinates.
func (g *Ghost) Position() entity.Point {
	return g.position
}

// Bounds returns the ghost rectangle in screen coordinates.
func (g *Ghost) Bounds() entity.Rect {
	if g.content == nil {
		return entity.Rect{X: g.position.X, Y: g.position.Y}
	}
	return entity.RectAt(g.position, g.content.GhostSize())
}

// IsVisible reports whether the ghost is shown.
func (g *Ghost) IsVisible() bool {
	return g.visible
}

// IsClosed reports whether the ghost was destroyed.
func (g *Ghost) IsClosed() bool {
	return g.closed
}
