package port

import "github.com/servicestudio/shell/internal/domain/entity"

// Decorations selects the frame drawn around the ghost surface.
type Decorations int

const (
	DecorationsNone Decorations = iota
	DecorationsBorderOnly
)

// GhostContent is the presentational payload shown by a ghost surface.
// Implementations switch on the concrete type (ghost.TabProxy, ghost.Facsimile).
type GhostContent interface {
	GhostSize() entity.Size
}

// GhostSurface is a borderless, topmost, non-focusable, hit-test invisible window
// used to float a preview under the pointer.
type GhostSurface interface {
	SetContent(content GhostContent)
	SetDecorations(d Decorations)
	InvalidateMeasure()
	Show()
	MoveTo(screen entity.Point)
	Close()
}

// GhostFactory creates ghost surfaces.
type GhostFactory interface {
	NewGhostSurface() GhostSurface
}
