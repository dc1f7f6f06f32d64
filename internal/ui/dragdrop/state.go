package dragdrop

import "github.com/servicestudio/shell/internal/application/port"

// State is the phase of the drag gesture.
type State int

const (
	// StateIdle has no session.
	StateIdle State = iota
	// StateArmed follows a left press on a draggable tab; the pointer is captured.
	StateArmed
	// StatePreDrag tracks moves that stay within epsilon of the anchor.
	StatePreDrag
	// StateTabPreview shows the tab ghost over a tab strip, relocating the tab live.
	StateTabPreview
	// StateWindowPreview shows the window facsimile away from any tab strip.
	StateWindowPreview
)

// String returns the state name used in logs.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateArmed:
		return "armed"
	case StatePreDrag:
		return "pre-drag"
	case StateTabPreview:
		return "tab-preview"
	case StateWindowPreview:
		return "window-preview"
	default:
		return "unknown"
	}
}

// IsTracking reports whether a ghost is alive in this state.
func (s State) IsTracking() bool {
	return s == StateTabPreview || s == StateWindowPreview
}

// subscription is the set of pointer event kinds a state listens to.
type subscription uint8

const (
	onPressed subscription = 1 << iota
	onMoved
	onReleased
	onLeft
	onCaptureLost
)

const gestureEvents = onMoved | onReleased | onLeft | onCaptureLost

// subscriptions lists, per state, the only events it handles. Entering a state
// replaces the whole set; leaving a session always returns to the Idle set.
var subscriptions = map[State]subscription{
	StateIdle:          onPressed,
	StateArmed:         gestureEvents,
	StatePreDrag:       gestureEvents,
	StateTabPreview:    gestureEvents,
	StateWindowPreview: gestureEvents,
}

func subscriptionFor(kind port.PointerKind) subscription {
	switch kind {
	case port.PointerPressed:
		return onPressed
	case port.PointerMoved:
		return onMoved
	case port.PointerReleased:
		return onReleased
	case port.PointerLeft:
		return onLeft
	case port.PointerCaptureLost:
		return onCaptureLost
	default:
		return 0
	}
}

// OutcomeKind is how a gesture ended.
type OutcomeKind int

const (
	// OutcomeAbandoned means the press never turned into a drag.
	OutcomeAbandoned OutcomeKind = iota
	// OutcomeReordered means the tab was dropped on its own window.
	OutcomeReordered
	// OutcomeMoved means the tab was dropped on another window.
	OutcomeMoved
	// OutcomeDetached means the tab was dropped away from any window.
	OutcomeDetached
	// OutcomeCancelled means the gesture was torn down without a drop.
	OutcomeCancelled
)

// String returns the outcome name used in logs and reports.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeAbandoned:
		return "abandoned"
	case OutcomeReordered:
		return "reordered"
	case OutcomeMoved:
		return "moved"
	case OutcomeDetached:
		return "detached"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}
