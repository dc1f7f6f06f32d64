// Package terminal hosts the shell in a terminal with Bubble Tea.
//
// Windows of the in-memory backend are drawn back to front on a cell canvas.
// Each cell stands for a fixed block of device units, so the drag machine sees
// the same geometry it would under a real toolkit. Mouse events become pointer
// events routed to the capturing window, else to the topmost window under the
// pointer.
package terminal

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/servicestudio/shell/internal/application/port"
	"github.com/servicestudio/shell/internal/domain/entity"
	"github.com/servicestudio/shell/internal/infrastructure/headless"
	"github.com/servicestudio/shell/internal/logging"
	"github.com/servicestudio/shell/internal/ui/controller"
	"github.com/servicestudio/shell/internal/ui/dragdrop"
	"github.com/servicestudio/shell/internal/ui/ghost"
	"github.com/servicestudio/shell/internal/ui/registry"
)

// MousePointer is the pointer id of the terminal mouse.
const MousePointer port.PointerID = 1

// DefaultCell is the size of one terminal cell in device units.
var DefaultCell = entity.Size{W: 10, H: 30}

var facsimileBorder = lipgloss.Border{
	Top: "┄", Bottom: "┄", Left: "┆", Right: "┆",
	TopLeft: "┌", TopRight: "┐", BottomLeft: "└", BottomRight: "┘",
}

// CellLayout fits a layout to the terminal: one row of tabs and windows small
// enough to overlap on screen.
func CellLayout(base headless.Layout, cell entity.Size) headless.Layout {
	layout := base
	layout.TabHeight = cell.H
	layout.WindowSize = entity.Size{W: 56 * cell.W, H: 12 * cell.H}
	layout.MinSize = entity.Size{W: 28 * cell.W, H: 6 * cell.H}
	layout.Cascade = entity.Point{X: 6 * cell.W, Y: 3 * cell.H}
	return layout
}

// Options holds the host dependencies.
type Options struct {
	Screen   *headless.Screen
	Windows  *controller.WindowController
	Machine  *dragdrop.Machine
	Cell     entity.Size
	Styles   Styles
	Keys     KeyMap
	TabLabel func(n int) string
}

// ReconfigureMsg hands a reloaded configuration to the host. Apply runs on the
// update loop, between gestures of the machine.
type ReconfigureMsg struct {
	Apply  func() error
	Styles Styles
}

// Model is the Bubble Tea model of the terminal host.
type Model struct {
	screen   *headless.Screen
	windows  *controller.WindowController
	registry *registry.Registry
	machine  *dragdrop.Machine
	cell     entity.Size
	styles   Styles
	keys     KeyMap
	help     help.Model
	tabLabel func(n int) string

	width, height int
	status        string
	tabSeq        int
	// inside tracks whether the pointer was within the capturing window.
	inside bool

	logger *zerolog.Logger
}

// New creates the host model and subscribes it to drag outcomes.
func New(ctx context.Context, opts Options) *Model {
	ctx = logging.WithComponent(ctx, "terminal")
	if opts.Cell.W <= 0 || opts.Cell.H <= 0 {
		opts.Cell = DefaultCell
	}
	if opts.TabLabel == nil {
		opts.TabLabel = func(n int) string { return fmt.Sprintf("Flow %d", n) }
	}
	m := &Model{
		screen:   opts.Screen,
		windows:  opts.Windows,
		registry: opts.Windows.Registry(),
		machine:  opts.Machine,
		cell:     opts.Cell,
		styles:   opts.Styles,
		keys:     opts.Keys,
		help:     help.New(),
		tabLabel: opts.TabLabel,
		logger:   logging.FromContext(ctx),
	}
	m.machine.SetOnOutcome(m.onOutcome)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.BlurMsg:
		m.loseCapture()
	case ReconfigureMsg:
		m.reconfigure(msg)
	}
	return m, nil
}

func (m *Model) reconfigure(msg ReconfigureMsg) {
	if msg.Apply != nil {
		if err := msg.Apply(); err != nil {
			m.logger.Warn().Err(err).Msg("config change rejected")
			m.status = fmt.Sprintf("config rejected: %v", err)
			return
		}
	}
	m.styles = msg.Styles
	m.status = "config reloaded"
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.machine.Cancel()
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Cancel):
		m.machine.Cancel()
	case key.Matches(msg, m.keys.NewTab):
		if front := m.front(); front != nil {
			m.openTab(front.ID())
		}
	case key.Matches(msg, m.keys.NewWindow):
		w, err := m.windows.OpenWindow(entity.WindowSatellite)
		if err != nil {
			m.fail("open window", err)
			return nil
		}
		m.openTab(w.ID())
	case key.Matches(msg, m.keys.CloseWindow):
		front := m.front()
		if front == nil {
			return nil
		}
		if !front.Model.IsSatellite() {
			m.status = "the main window stays open"
			return nil
		}
		m.windows.CloseWindow(front.ID())
	}
	return nil
}

func (m *Model) openTab(windowID entity.WindowID) {
	m.tabSeq++
	if _, err := m.windows.OpenTab(windowID, m.tabLabel(m.tabSeq), false); err != nil {
		m.fail("open tab", err)
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	p := m.ToScreen(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		button, ok := pointerButton(msg.Button)
		if !ok {
			return
		}
		m.dispatch(port.PointerPressed, button, p)
	case tea.MouseActionMotion:
		m.dispatch(port.PointerMoved, port.ButtonLeft, p)
	case tea.MouseActionRelease:
		m.dispatch(port.PointerReleased, port.ButtonLeft, p)
	}
}

func pointerButton(b tea.MouseButton) (port.PointerButton, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return port.ButtonLeft, true
	case tea.MouseButtonMiddle:
		return port.ButtonMiddle, true
	case tea.MouseButtonRight:
		return port.ButtonRight, true
	default:
		return 0, false
	}
}

// dispatch routes one pointer event. Presses the machine ignores raise the window.
func (m *Model) dispatch(kind port.PointerKind, button port.PointerButton, p entity.Point) {
	target := m.target(p)
	if target == nil {
		return
	}
	client := target.View.PointToClient(p)
	ev := port.PointerEvent{
		Kind:     kind,
		Pointer:  MousePointer,
		Button:   button,
		Window:   target.ID(),
		Position: client,
	}

	switch kind {
	case port.PointerPressed:
		if hw := m.screen.Window(target.ID()); hw != nil {
			ev.Tab, _ = hw.TabAt(client)
		}
		m.inside = true
	case port.PointerMoved:
		if target.View.HasCapture(MousePointer) {
			inside := target.View.Bounds().Contains(p)
			if m.inside && !inside {
				m.machine.HandlePointer(port.PointerEvent{
					Kind:     port.PointerLeft,
					Pointer:  MousePointer,
					Window:   target.ID(),
					Position: client,
				})
			}
			m.inside = inside
		}
	}

	if !m.machine.HandlePointer(ev) && kind == port.PointerPressed {
		m.windows.Activate(target.ID())
	}
}

// target returns the capturing window, else the topmost visible window under p.
func (m *Model) target(p entity.Point) *registry.Window {
	if owner := m.screen.CaptureOwner(MousePointer); owner != nil {
		if w := m.registry.Find(owner.ID()); w != nil {
			return w
		}
	}
	return m.registry.WindowAt(p)
}

func (m *Model) loseCapture() {
	owner := m.screen.LoseCapture(MousePointer)
	if owner == nil {
		return
	}
	m.machine.HandlePointer(port.PointerEvent{
		Kind:    port.PointerCaptureLost,
		Pointer: MousePointer,
		Window:  owner.ID(),
	})
}

func (m *Model) front() *registry.Window {
	if windows := m.registry.Windows(); len(windows) > 0 {
		return windows[0]
	}
	return nil
}

func (m *Model) onOutcome(o dragdrop.Outcome) {
	caption := string(o.Tab)
	if w, tab := m.registry.FindTabByID(o.Tab); w != nil && tab != nil {
		caption = tab.Caption
	}
	switch o.Kind {
	case dragdrop.OutcomeReordered:
		m.status = fmt.Sprintf("%s moved to slot %d", caption, o.Index)
	case dragdrop.OutcomeMoved:
		m.status = fmt.Sprintf("%s moved to window %s", caption, shortID(o.Window))
	case dragdrop.OutcomeDetached:
		m.status = fmt.Sprintf("%s detached into window %s", caption, shortID(o.Window))
	case dragdrop.OutcomeCancelled:
		m.status = fmt.Sprintf("drag of %s cancelled: %s", caption, o.Reason)
	default:
		m.status = ""
	}
}

func (m *Model) fail(op string, err error) {
	m.logger.Warn().Err(err).Str("op", op).Msg("terminal action failed")
	m.status = fmt.Sprintf("%s: %v", op, err)
}

// Status returns the last status line.
func (m *Model) Status() string {
	return m.status
}

// ToScreen maps a terminal cell to the device point at its center.
func (m *Model) ToScreen(col, row int) entity.Point {
	return entity.Point{
		X: col*m.cell.W + m.cell.W/2,
		Y: row*m.cell.H + m.cell.H/2,
	}
}

// toCells maps a device rectangle to the cells it covers.
func (m *Model) toCells(r entity.Rect) entity.Rect {
	x0, y0 := floorDiv(r.X, m.cell.W), floorDiv(r.Y, m.cell.H)
	x1, y1 := ceilDiv(r.X+r.W, m.cell.W), ceilDiv(r.Y+r.H, m.cell.H)
	return entity.Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "starting…"
	}
	footer := m.footer()
	cv := m.draw(m.width, m.height-lipgloss.Height(footer))
	return lipgloss.JoinVertical(lipgloss.Left, cv.render(m.styles.cells), footer)
}

func (m *Model) footer() string {
	state := m.machine.State().String()
	if s, ok := m.machine.Session(); ok {
		state = fmt.Sprintf("%s · %s", state, s.Caption)
	}
	line := state
	if m.status != "" {
		line += " │ " + m.status
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Status.Render(line),
		m.styles.Help.Render(m.help.View(m.keys)),
	)
}

// draw paints windows back to front, then the open ghosts on top.
func (m *Model) draw(w, h int) *canvas {
	cv := newCanvas(w, h)
	windows := m.registry.Windows()
	for i := len(windows) - 1; i >= 0; i-- {
		m.drawWindow(cv, windows[i], i == 0)
	}
	for _, g := range m.screen.OpenGhosts() {
		if g.IsVisible() {
			m.drawGhost(cv, g)
		}
	}
	return cv
}

func (m *Model) drawWindow(cv *canvas, w *registry.Window, front bool) {
	if !w.View.IsVisible() {
		return
	}
	r := m.toCells(w.View.Bounds())
	cv.fill(r, ' ', styleBody)

	border := styleBorder
	if front {
		border = styleBorderFront
	}
	frame := entity.Rect{X: r.X, Y: r.Y + 1, W: r.W, H: r.H - 1}
	cv.box(frame, lipgloss.RoundedBorder(), border)

	strip := w.View.TabStrip()
	cv.fill(entity.Rect{X: r.X, Y: r.Y, W: r.W, H: 1}, ' ', styleStrip)
	header := m.toCells(m.clientToScreen(w, strip.HeaderImageBounds()))
	if header.W > 0 {
		cv.fill(entity.Rect{X: header.X, Y: r.Y, W: header.W, H: 1}, ' ', styleHeaderImage)
		cv.set(header.X+header.W/2, r.Y, '◆', styleHeaderImage)
	}

	if hw := m.screen.Window(w.ID()); hw != nil {
		for _, id := range hw.Strip().Items() {
			m.drawTab(cv, w, hw.Strip(), id)
		}
	}

	cv.text(frame.X+2, frame.Y+1, frame.W-4, fmt.Sprintf("%s window %s", w.Model.Kind, shortID(w.ID())), styleBody)
	if active := w.Model.Tabs.ActiveTab(); active != nil {
		cv.text(frame.X+2, frame.Y+2, frame.W-4, "▸ "+active.Caption, styleBody)
	}
}

func (m *Model) drawTab(cv *canvas, w *registry.Window, strip *headless.TabStrip, id entity.TabID) {
	bounds, ok := strip.TabBounds(id)
	if !ok {
		return
	}
	r := m.toCells(m.clientToScreen(w, bounds))
	slot := entity.Rect{X: r.X, Y: r.Y, W: r.W - 1, H: 1}

	tab := w.Model.Tabs.Find(id)
	style := styleTab
	switch {
	case strip.Opacity(id) == 0:
		cv.fill(slot, ' ', styleTabHidden)
		return
	case strip.Selected() == id:
		style = styleTabActive
	case tab != nil && !tab.Closable:
		style = styleTabFixed
	}

	cv.fill(slot, ' ', style)
	width := slot.W - 1
	if tab != nil && tab.Closable {
		cv.set(slot.X+slot.W-1, slot.Y, '×', style)
		width--
	}
	cv.text(slot.X+1, slot.Y, width, strip.Caption(id), style)
}

func (m *Model) drawGhost(cv *canvas, g *headless.Ghost) {
	r := m.toCells(g.Bounds())
	switch content := g.Content().(type) {
	case ghost.TabProxy:
		slot := entity.Rect{X: r.X, Y: r.Y, W: r.W, H: 1}
		cv.fill(slot, ' ', styleGhostTab)
		cv.text(slot.X+1, slot.Y, slot.W-3, content.Caption, styleGhostTab)
		cv.set(slot.X+slot.W-1, slot.Y, '×', styleGhostTab)
	case ghost.Facsimile:
		cv.box(r, facsimileBorder, styleGhostFacsimile)
		if s, ok := m.machine.Session(); ok {
			cv.text(r.X+2, r.Y+1, r.W-4, s.Caption, styleGhostFacsimile)
		}
	}
}

func (m *Model) clientToScreen(w *registry.Window, r entity.Rect) entity.Rect {
	return entity.RectAt(w.View.PointToScreen(r.TopLeft()), r.Size())
}

func shortID(id entity.WindowID) string {
	if len(id) > 8 {
		return string(id[:8])
	}
	return string(id)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
