// Package dragdrop implements the tab drag-and-drop gesture across aggregator windows.
//
// A Machine consumes pointer events and drives one Session at a time through
// Idle, Armed, PreDrag, TabPreview and WindowPreview. While the pointer is over a
// tab strip the tab itself is relocated into that window, so the strip previews the
// drop by doing it; away from any strip a window facsimile follows the pointer and
// the tab returns to its origin. Release commits a reorder, a move or a detach.
// Every path back to Idle closes the ghost and releases the pointer.
//
// The machine runs on the UI thread. Only the tuning is safe to change from other
// goroutines; it applies from the next gesture.
package dragdrop

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/servicestudio/shell/internal/application/port"
	"github.com/servicestudio/shell/internal/application/usecase"
	"github.com/servicestudio/shell/internal/domain/entity"
	"github.com/servicestudio/shell/internal/logging"
	"github.com/servicestudio/shell/internal/ui/ghost"
	"github.com/servicestudio/shell/internal/ui/hittest"
	"github.com/servicestudio/shell/internal/ui/registry"
)

// Default tuning values, in device units.
const (
	DefaultEpsilon      = 11
	DefaultCornerAdjust = 10
)

// Tuning holds the gesture parameters.
type Tuning struct {
	// Epsilon is the drag threshold and the hit-test tolerance.
	Epsilon int
	// CornerAdjust shifts the tab ghost left to line up rounded corners.
	CornerAdjust int
	Order        registry.HitTestOrder
	Ghost        ghost.Config
}

// DefaultTuning returns the stock gesture parameters.
func DefaultTuning() Tuning {
	return Tuning{
		Epsilon:      DefaultEpsilon,
		CornerAdjust: DefaultCornerAdjust,
		Order:        registry.HitTestZOrder,
		Ghost:        ghost.DefaultConfig(),
	}
}

// Relocator applies tab operations to windows and their views.
type Relocator interface {
	SelectTab(windowID entity.WindowID, tabID entity.TabID) error
	CloseTab(windowID entity.WindowID, tabID entity.TabID) error
	Reorder(windowID entity.WindowID, tabID entity.TabID, index int) (*usecase.ReorderOutput, error)
	MoveBetween(sourceID, targetID entity.WindowID, tabID entity.TabID, index int) (*usecase.MoveOutput, error)
	Detach(sourceID entity.WindowID, tabID entity.TabID, at entity.Point) (*registry.Window, error)
	CloseIfAbandoned(windowID entity.WindowID) bool
	SetTabOpacity(windowID entity.WindowID, tabID entity.TabID, opacity float64)
}

// Machine is the drag-and-drop state machine.
type Machine struct {
	registry  *registry.Registry
	relocator Relocator
	ghosts    port.GhostFactory

	state   State
	subs    subscription
	session *Session

	onOutcome func(Outcome)

	tuningMu sync.RWMutex
	tuning   Tuning

	ctx    context.Context
	logger *zerolog.Logger
}

// NewMachine creates an idle machine.
func NewMachine(
	ctx context.Context,
	reg *registry.Registry,
	relocator Relocator,
	ghosts port.GhostFactory,
	tuning Tuning,
) *Machine {
	ctx = logging.WithComponent(ctx, "dragdrop")
	return &Machine{
		registry:  reg,
		relocator: relocator,
		ghosts:    ghosts,
		state:     StateIdle,
		subs:      subscriptions[StateIdle],
		tuning:    tuning,
		ctx:       ctx,
		logger:    logging.FromContext(ctx),
	}
}

// SetTuning replaces the gesture parameters. A gesture in progress keeps its own.
func (m *Machine) SetTuning(t Tuning) {
	m.tuningMu.Lock()
	defer m.tuningMu.Unlock()
	m.tuning = t
}

// Tuning returns the parameters the next gesture will use.
func (m *Machine) Tuning() Tuning {
	m.tuningMu.RLock()
	defer m.tuningMu.RUnlock()
	return m.tuning
}

// SetOnOutcome sets the callback invoked when a session ends.
func (m *Machine) SetOnOutcome(fn func(Outcome)) {
	m.onOutcome = fn
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Session returns a copy of the active session.
func (m *Machine) Session() (Session, bool) {
	if m.session == nil {
		return Session{}, false
	}
	return *m.session, true
}

// Accepts reports whether the current state listens to the event kind.
func (m *Machine) Accepts(kind port.PointerKind) bool {
	return m.subs&subscriptionFor(kind) != 0
}

// HandlePointer feeds one pointer event. It returns false when the current state
// does not handle the event.
func (m *Machine) HandlePointer(ev port.PointerEvent) bool {
	if !m.Accepts(ev.Kind) {
		return false
	}
	if s := m.session; s != nil && (ev.Pointer != s.Pointer || ev.Window != s.Origin) {
		return false
	}

	switch ev.Kind {
	case port.PointerPressed:
		return m.handlePressed(ev)
	case port.PointerMoved:
		m.handleMoved(ev)
	case port.PointerReleased:
		m.handleReleased(ev)
	case port.PointerLeft:
		m.recapture()
	case port.PointerCaptureLost:
		m.cancel("pointer capture lost", true)
	}
	return true
}

// OnWindowClosed must be called before a window goes away. Losing the origin
// cancels the gesture where it stands; losing the preview window first brings
// the tab back to its origin.
func (m *Machine) OnWindowClosed(id entity.WindowID) {
	s := m.session
	if s == nil {
		return
	}
	switch id {
	case s.Origin:
		m.cancel("origin window closed", false)
	case s.Preview:
		m.cancel("preview window closed", true)
	}
}

// Cancel tears down any gesture in progress and restores the dragged tab.
func (m *Machine) Cancel() {
	m.cancel("cancelled", true)
}

func (m *Machine) handlePressed(ev port.PointerEvent) bool {
	w := m.registry.Find(ev.Window)
	if w == nil || ev.Tab == "" {
		return false
	}
	tab := w.Model.Tabs.Find(ev.Tab)
	if tab == nil {
		return false
	}

	log := m.logger.With().
		Str("window_id", string(w.ID())).
		Str("tab_id", string(tab.ID)).
		Str("button", ev.Button.String()).
		Logger()

	switch ev.Button {
	case port.ButtonRight:
		if err := m.relocator.SelectTab(w.ID(), tab.ID); err != nil {
			log.Warn().Err(err).Msg("failed to select tab")
		}
		return true
	case port.ButtonMiddle:
		if err := m.relocator.CloseTab(w.ID(), tab.ID); err != nil {
			log.Debug().Err(err).Msg("tab not closed")
		}
		return true
	case port.ButtonLeft:
	default:
		return false
	}

	if w.Model.Loading || tab.Loading {
		log.Debug().Msg("drag not armed: loading")
		return true
	}
	if err := m.relocator.SelectTab(w.ID(), tab.ID); err != nil {
		log.Warn().Err(err).Msg("failed to select tab")
	}
	if !tab.IsDraggable() || !w.Model.Tabs.HasDraggable() {
		log.Debug().Msg("drag not armed: tab is fixed")
		return true
	}
	bounds, ok := w.View.TabStrip().TabBounds(tab.ID)
	if !ok {
		log.Debug().Msg("drag not armed: tab has no bounds")
		return true
	}

	click := w.View.PointToScreen(ev.Position)
	start := w.Model.Tabs.IndexOf(tab.ID)
	s := &Session{
		ID:          uuid.NewString(),
		Tab:         tab.ID,
		Caption:     tab.Caption,
		StartIndex:  start,
		TargetIndex: start,
		Origin:      w.ID(),
		Pointer:     ev.Pointer,
		ClickPoint:  click,
		ClickOffset: click.Sub(w.View.PointToScreen(bounds.TopLeft())),
		tuning:      m.Tuning(),
	}
	s.ctx = logging.WithSessionID(m.ctx, s.ID)

	w.View.CapturePointer(ev.Pointer)
	m.session = s
	m.transition(StateArmed, "pressed on draggable tab")
	return true
}

func (m *Machine) handleMoved(ev port.PointerEvent) {
	s := m.session
	origin := m.registry.Find(s.Origin)
	if origin == nil {
		m.cancel("origin window gone", false)
		return
	}

	current := origin.View.PointToScreen(ev.Position)
	if !s.tracking {
		d := current.Sub(s.ClickPoint)
		if abs(d.X) <= s.tuning.Epsilon && abs(d.Y) <= s.tuning.Epsilon {
			origin.View.CapturePointer(s.Pointer)
			if m.state == StateArmed {
				m.transition(StatePreDrag, "moved within threshold")
			}
			return
		}
		m.startTracking(origin)
	}

	adjusted := current.Sub(s.ClickOffset)
	frames := m.registry.Frames(s.tuning.Order)
	if f, ok := hittest.FindWindowOnTabs(frames, adjusted, s.tuning.Epsilon); ok {
		if m.showTabPreview(f.Window, adjusted) {
			return
		}
	}
	m.showWindowPreview(adjusted)
}

// startTracking builds the ghost once the pointer leaves the threshold.
func (m *Machine) startTracking(origin *registry.Window) {
	s := m.session
	strip := origin.View.TabStrip()
	bounds, _ := strip.TabBounds(s.Tab)

	builder := ghost.NewBuilder(s.tuning.Ghost)
	tab := builder.BuildTab(s.Caption, bounds.W, bounds.H, strip.Foreground())
	facsimile := builder.BuildFacsimile(origin.View.Bounds().W, origin.View.MinSize().W)
	s.ghost = ghost.NewPreview(m.ghosts, tab, facsimile)
	s.tracking = true

	origin.View.CapturePointer(s.Pointer)
	logging.FromContext(s.ctx).Debug().
		Str("tab_id", string(s.Tab)).
		Int("start_index", s.StartIndex).
		Msg("drag started")
}

// showTabPreview relocates the tab into the target window and pins the tab ghost
// to its strip. Returns false when the relocation failed.
func (m *Machine) showTabPreview(target entity.WindowID, adjusted entity.Point) bool {
	s := m.session
	log := logging.FromContext(s.ctx)

	relocated := false
	if host := s.Host(); target != host {
		index := s.StartIndex
		if target != s.Origin {
			w := m.registry.Find(target)
			if w == nil {
				return false
			}
			index = w.Model.Tabs.FirstDraggableIndex()
		}
		out, err := m.relocator.MoveBetween(host, target, s.Tab, index)
		if err != nil || !out.Moved {
			log.Warn().Err(err).
				Str("from_window", string(host)).
				Str("to_window", string(target)).
				Msg("live relocation skipped")
			return false
		}
		s.Preview = ""
		if target != s.Origin {
			s.Preview = target
		}
		s.TargetIndex = out.Index
		relocated = true
	}

	if s.ghost.ShowTab() || relocated {
		m.relocator.SetTabOpacity(target, s.Tab, 0)
	}

	w := m.registry.Find(target)
	if w == nil {
		return false
	}
	frame := w.Frame()
	y := frame.TopBar.Y
	if first, ok := frame.FirstDraggableTab(); ok {
		y = first.Bounds.Y
	}
	s.ghost.MoveTo(entity.Point{X: adjusted.X - s.tuning.CornerAdjust, Y: y})

	if index := hittest.CalculateTabIndexForPosition(frame, s.Tab, adjusted.X); index >= 0 {
		out, err := m.relocator.Reorder(target, s.Tab, index)
		if err != nil {
			log.Warn().Err(err).Int("index", index).Msg("live reorder failed")
		} else {
			s.TargetIndex = out.To
		}
	}

	if m.state != StateTabPreview {
		m.transition(StateTabPreview, "over tab strip of "+string(target))
	}
	return true
}

// showWindowPreview swaps to the facsimile and returns the tab to its origin.
func (m *Machine) showWindowPreview(adjusted entity.Point) {
	s := m.session
	if s.ghost.ShowFacsimile() {
		m.relocator.SetTabOpacity(s.Host(), s.Tab, 1)
		m.returnToOrigin()
	}
	s.ghost.Show()
	s.ghost.MoveTo(adjusted)

	if m.state != StateWindowPreview {
		m.transition(StateWindowPreview, "away from tab strips")
	}
}

// returnToOrigin moves a live-relocated tab back to its start slot.
func (m *Machine) returnToOrigin() {
	s := m.session
	if s.Preview == "" {
		return
	}
	out, err := m.relocator.MoveBetween(s.Preview, s.Origin, s.Tab, s.StartIndex)
	if err != nil {
		logging.FromContext(s.ctx).Warn().Err(err).
			Str("from_window", string(s.Preview)).
			Msg("failed to return tab to origin")
		return
	}
	s.Preview = ""
	if out.Moved {
		s.TargetIndex = out.Index
	}
}

func (m *Machine) handleReleased(ev port.PointerEvent) {
	s := m.session
	origin := m.registry.Find(s.Origin)
	if origin == nil {
		m.cancel("origin window gone", false)
		return
	}
	m.endTracking()

	if !s.tracking {
		m.finish(Outcome{
			Kind:   OutcomeAbandoned,
			Window: s.Origin,
			Index:  s.StartIndex,
			Reason: "released before dragging",
		})
		return
	}

	m.relocator.SetTabOpacity(s.Host(), s.Tab, 1)

	adjusted := origin.View.PointToScreen(ev.Position).Sub(s.ClickOffset)
	frames := m.registry.Frames(s.tuning.Order)
	target, onTopBar := hittest.FindWindowOnTopBar(frames, adjusted, s.tuning.Epsilon)

	var outcome Outcome
	switch {
	case onTopBar && target.Window == s.Origin:
		m.returnToOrigin()
		outcome = m.commitReorder(origin, adjusted)
	case !onTopBar:
		m.returnToOrigin()
		outcome = m.commitDetach(adjusted)
	default:
		outcome = m.commitMove(target.Window, adjusted)
	}

	m.finish(outcome)
	m.relocator.CloseIfAbandoned(s.Origin)
}

func (m *Machine) commitReorder(origin *registry.Window, adjusted entity.Point) Outcome {
	s := m.session
	if index := hittest.CalculateTabIndexForPosition(origin.Frame(), s.Tab, adjusted.X); index >= 0 {
		if _, err := m.relocator.Reorder(s.Origin, s.Tab, index); err != nil {
			logging.FromContext(s.ctx).Warn().Err(err).Msg("reorder on drop failed")
		}
	}
	return Outcome{
		Kind:   OutcomeReordered,
		Window: s.Origin,
		Index:  origin.Model.Tabs.IndexOf(s.Tab),
	}
}

func (m *Machine) commitDetach(adjusted entity.Point) Outcome {
	s := m.session
	w, err := m.relocator.Detach(s.Origin, s.Tab, adjusted)
	if err != nil || w == nil {
		logging.FromContext(s.ctx).Warn().Err(err).Msg("detach on drop skipped")
		return Outcome{
			Kind:   OutcomeCancelled,
			Window: s.Origin,
			Index:  m.indexIn(s.Origin),
			Reason: "detach failed",
		}
	}
	return Outcome{
		Kind:   OutcomeDetached,
		Window: w.ID(),
		Index:  w.Model.Tabs.IndexOf(s.Tab),
	}
}

// commitMove lands the tab on another window. The live preview normally placed
// it there already.
func (m *Machine) commitMove(target entity.WindowID, adjusted entity.Point) Outcome {
	s := m.session
	if host := s.Host(); host != target {
		if m.relocateOnDrop(host, target, adjusted) {
			s.Preview = target
		}
	}
	if s.Host() != target {
		return Outcome{
			Kind:   OutcomeCancelled,
			Window: s.Host(),
			Index:  m.indexIn(s.Host()),
			Reason: "move on drop failed",
		}
	}
	return Outcome{
		Kind:   OutcomeMoved,
		Window: target,
		Index:  m.indexIn(target),
	}
}

func (m *Machine) relocateOnDrop(host, target entity.WindowID, adjusted entity.Point) bool {
	s := m.session
	w := m.registry.Find(target)
	if w == nil {
		return false
	}
	out, err := m.relocator.MoveBetween(host, target, s.Tab, w.Model.Tabs.FirstDraggableIndex())
	if err != nil || !out.Moved {
		logging.FromContext(s.ctx).Warn().Err(err).Msg("move on drop skipped")
		return false
	}
	if index := hittest.CalculateTabIndexForPosition(w.Frame(), s.Tab, adjusted.X); index >= 0 {
		if _, err := m.relocator.Reorder(target, s.Tab, index); err != nil {
			logging.FromContext(s.ctx).Warn().Err(err).Msg("reorder on drop failed")
		}
	}
	return true
}

func (m *Machine) recapture() {
	if origin := m.registry.Find(m.session.Origin); origin != nil {
		origin.View.CapturePointer(m.session.Pointer)
	}
}

// cancel ends the session without committing. With restore set, a tab relocated
// by the preview goes back to its origin slot.
func (m *Machine) cancel(reason string, restore bool) {
	s := m.session
	if s == nil {
		return
	}
	m.endTracking()

	if s.tracking {
		m.relocator.SetTabOpacity(s.Host(), s.Tab, 1)
	}
	if s.tracking && restore {
		m.returnToOrigin()
		if _, err := m.relocator.Reorder(s.Origin, s.Tab, s.StartIndex); err != nil {
			logging.FromContext(s.ctx).Warn().Err(err).Msg("failed to restore tab slot")
		}
	}

	m.finish(Outcome{
		Kind:   OutcomeCancelled,
		Window: s.Host(),
		Index:  m.indexIn(s.Host()),
		Reason: reason,
	})
}

// endTracking drops the gesture subscriptions, closes the ghost and releases the
// pointer. The session itself survives until finish.
func (m *Machine) endTracking() {
	s := m.session
	m.subs = 0
	if s.ghost != nil {
		s.ghost.Close()
	}
	if origin := m.registry.Find(s.Origin); origin != nil {
		origin.View.ReleasePointer(s.Pointer)
	}
}

func (m *Machine) finish(outcome Outcome) {
	s := m.session
	outcome.SessionID = s.ID
	outcome.Tab = s.Tab
	m.session = nil
	m.transition(StateIdle, outcome.Kind.String())

	event := logging.FromContext(s.ctx).Debug()
	if outcome.Kind != OutcomeAbandoned && outcome.Kind != OutcomeCancelled {
		event = logging.FromContext(s.ctx).Info()
	}
	event.
		Str("tab_id", string(outcome.Tab)).
		Str("outcome", outcome.Kind.String()).
		Str("window_id", string(outcome.Window)).
		Int("index", outcome.Index).
		Str("reason", outcome.Reason).
		Msg("drag finished")

	if m.onOutcome != nil {
		m.onOutcome(outcome)
	}
}

func (m *Machine) transition(to State, reason string) {
	from := m.state
	m.state = to
	m.subs = subscriptions[to]

	log := m.logger
	if m.session != nil {
		log = logging.FromContext(m.session.ctx)
	}
	log.Debug().
		Str("from", from.String()).
		Str("to", to.String()).
		Str("reason", reason).
		Msg("drag state changed")
}

func (m *Machine) indexIn(windowID entity.WindowID) int {
	w := m.registry.Find(windowID)
	if w == nil {
		return -1
	}
	return w.Model.Tabs.IndexOf(m.session.Tab)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
