package port

import (
	"context"

	"github.com/servicestudio/shell/internal/domain/entity"
)

// WindowView is the toolkit window backing an aggregator window.
type WindowView interface {
	// Lifecycle
	Show()
	Close()
	Activate()
	IsVisible() bool

	// Geometry
	// Bounds returns the window frame in screen coordinates.
	Bounds() entity.Rect
	MinSize() entity.Size
	// MoveTo places the window origin at a screen point.
	MoveTo(screen entity.Point)
	PointToScreen(client entity.Point) entity.Point
	PointToClient(screen entity.Point) entity.Point

	// Pointer capture routes every event of the pointer to this window until released.
	CapturePointer(id PointerID)
	ReleasePointer(id PointerID)
	HasCapture(id PointerID) bool

	TabStrip() TabStripView
}

// TabStripView is the tab strip ("top bar") control of a window.
// All rectangles are in the client coordinates of the owning window.
type TabStripView interface {
	Bounds() entity.Rect
	// HeaderImageBounds is the logo/icon area at the leading edge of the strip.
	HeaderImageBounds() entity.Rect
	// TabBounds returns the measured item bounds. Unmeasured items report their
	// minimum size.
	TabBounds(id entity.TabID) (entity.Rect, bool)
	Foreground() string

	InsertTab(index int, tab *entity.Tab)
	RemoveTab(id entity.TabID)
	MoveTab(id entity.TabID, index int)
	SelectTab(id entity.TabID)
	SetTabOpacity(id entity.TabID, opacity float64)
}

// WindowFactory creates toolkit windows of the aggregator kind.
type WindowFactory interface {
	NewWindowView(ctx context.Context, id entity.WindowID) (WindowView, error)
}
