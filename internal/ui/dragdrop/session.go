package dragdrop

import (
	"context"

	"github.com/servicestudio/shell/internal/application/port"
	"github.com/servicestudio/shell/internal/domain/entity"
	"github.com/servicestudio/shell/internal/ui/ghost"
)

// Session is the state of one drag gesture, from press to release.
type Session struct {
	ID      string
	Tab     entity.TabID
	Caption string

	StartIndex  int
	TargetIndex int

	// Origin is the window the drag started from. Preview is the other window
	// currently holding the tab for the live preview, empty when none.
	Origin  entity.WindowID
	Preview entity.WindowID

	Pointer port.PointerID
	// ClickPoint is the press position in screen coordinates. ClickOffset is the
	// press position relative to the tab top-left corner.
	ClickPoint  entity.Point
	ClickOffset entity.Point

	tuning   Tuning
	ghost    *ghost.Preview
	tracking bool
	ctx      context.Context
}

// Host returns the window currently holding the dragged tab.
func (s *Session) Host() entity.WindowID {
	if s.Preview != "" {
		return s.Preview
	}
	return s.Origin
}

// IsTracking reports whether the pointer went past the drag threshold.
func (s *Session) IsTracking() bool {
	return s.tracking
}

// GhostMode returns the representation of the ghost.
func (s *Session) GhostMode() ghost.Mode {
	if s.ghost == nil {
		return ghost.ModeHidden
	}
	return s.ghost.Mode()
}

// Outcome reports how a session ended.
type Outcome struct {
	SessionID string
	Kind      OutcomeKind
	Tab       entity.TabID
	// Window holds the tab after the gesture.
	Window entity.WindowID
	Index  int
	Reason string
}
