package port

import "github.com/servicestudio/shell/internal/domain/entity"

// PointerID identifies a pointing device (mouse, pen, touch contact).
type PointerID int

// PointerButton is the button that changed state in a pointer event.
type PointerButton int

const (
	ButtonNone PointerButton = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// String returns the button name used in logs.
func (b PointerButton) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	default:
		return "none"
	}
}

// PointerKind is the kind of pointer event delivered by the host toolkit.
type PointerKind int

const (
	PointerPressed PointerKind = iota
	PointerMoved
	PointerReleased
	PointerLeft
	PointerCaptureLost
)

// String returns the event kind name used in logs.
func (k PointerKind) String() string {
	switch k {
	case PointerPressed:
		return "pressed"
	case PointerMoved:
		return "moved"
	case PointerReleased:
		return "released"
	case PointerLeft:
		return "left"
	case PointerCaptureLost:
		return "capture_lost"
	default:
		return "unknown"
	}
}

// PointerEvent is a pointer event routed to a window.
// Position is expressed in the client coordinates of Window; WindowView.PointToScreen
// converts it to screen space.
type PointerEvent struct {
	Kind     PointerKind
	Pointer  PointerID
	Button   PointerButton
	Window   entity.WindowID
	Tab      entity.TabID // Tab item under the pointer for Pressed events, empty otherwise
	Position entity.Point
}
