package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/servicestudio/shell/internal/application/port"
	"github.com/servicestudio/shell/internal/bootstrap"
	"github.com/servicestudio/shell/internal/cli/styles"
	"github.com/servicestudio/shell/internal/domain/entity"
	"github.com/servicestudio/shell/internal/infrastructure/config"
	"github.com/servicestudio/shell/internal/logging"
	"github.com/servicestudio/shell/internal/ui/dragdrop"
	"github.com/servicestudio/shell/internal/ui/registry"
)

// ReplayPointer is the pointer id used by scripted gestures.
const ReplayPointer port.PointerID = 1

// Step actions understood by Replay.
const (
	ActionPress       = "press"
	ActionMove        = "move"
	ActionRelease     = "release"
	ActionLeave       = "leave"
	ActionCaptureLost = "capture-lost"
	ActionCloseWindow = "close-window"
	ActionCancel      = "cancel"
)

// Script is a gesture script: the initial windows, then pointer steps.
//
//	[[window]]
//	name = "main"
//	tabs = ["Flow 1", "Flow 2"]
//
//	[[step]]
//	action = "press"
//	x = 175
//	y = 15
type Script struct {
	Name    string         `toml:"name"`
	Windows []ScriptWindow `toml:"window"`
	Steps   []ScriptStep   `toml:"step"`
}

// ScriptWindow describes a window open before the first step. The first one
// is the main window.
type ScriptWindow struct {
	Name string   `toml:"name"`
	Tabs []string `toml:"tabs"`
	// Loading lists tabs opened without content.
	Loading []string `toml:"loading"`
	// At moves the window to a screen point, as [x, y].
	At []int `toml:"at"`
}

// ScriptStep is one pointer event or shell action, in screen coordinates.
type ScriptStep struct {
	Action string `toml:"action"`
	X      int    `toml:"x"`
	Y      int    `toml:"y"`
	Button string `toml:"button"`
	// Window names the target of close-window, or forces the event target.
	Window string `toml:"window"`
}

// LoadScript reads and parses a gesture script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return ParseScript(data)
}

// ParseScript decodes a TOML gesture script.
func ParseScript(data []byte) (*Script, error) {
	var script Script
	if err := toml.Unmarshal(data, &script); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("parse script at line %d, column %d: %w", row, col, err)
		}
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if err := script.validate(); err != nil {
		return nil, err
	}
	return &script, nil
}

func (s *Script) validate() error {
	var problems []string
	if len(s.Windows) == 0 {
		problems = append(problems, "at least one [[window]] is required")
	}
	names := make(map[string]bool)
	for i, w := range s.Windows {
		switch {
		case w.Name == "":
			problems = append(problems, fmt.Sprintf("window %d has no name", i+1))
		case names[w.Name]:
			problems = append(problems, fmt.Sprintf("window %q is declared twice", w.Name))
		}
		names[w.Name] = true
		if w.At != nil && len(w.At) != 2 {
			problems = append(problems, fmt.Sprintf("window %q: at must be [x, y]", w.Name))
		}
	}
	for i, step := range s.Steps {
		switch step.Action {
		case ActionPress, ActionMove, ActionRelease, ActionLeave, ActionCaptureLost, ActionCancel:
		case ActionCloseWindow:
			if step.Window == "" {
				problems = append(problems, fmt.Sprintf("step %d: close-window needs a window", i+1))
			}
		default:
			problems = append(problems, fmt.Sprintf("step %d: unknown action %q", i+1, step.Action))
		}
		if _, ok := parseButton(step.Button); !ok {
			problems = append(problems, fmt.Sprintf("step %d: unknown button %q", i+1, step.Button))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid script:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return nil
}

func parseButton(name string) (port.PointerButton, bool) {
	switch strings.ToLower(name) {
	case "", "left":
		return port.ButtonLeft, true
	case "middle":
		return port.ButtonMiddle, true
	case "right":
		return port.ButtonRight, true
	default:
		return 0, false
	}
}

// WindowLayout is the final state of one window.
type WindowLayout struct {
	Name   string
	ID     entity.WindowID
	Kind   entity.WindowKind
	Bounds entity.Rect
	Tabs   []string
	Active string
}

// ReplayResult is the outcome of a replay.
type ReplayResult struct {
	Script   string
	Outcomes []dragdrop.Outcome
	// Windows are listed front to back.
	Windows []WindowLayout
	// Skipped counts steps no window received.
	Skipped int

	captions map[entity.TabID]string
}

// Replay runs a script against a fresh headless shell.
func Replay(ctx context.Context, cfg *config.Config, script *Script) (*ReplayResult, error) {
	if script == nil {
		return nil, errors.New("script is required")
	}
	log := logging.FromContext(ctx)

	shell, err := bootstrap.NewShell(bootstrap.ShellInput{Ctx: ctx, Config: cfg})
	if err != nil {
		return nil, err
	}

	r := &replayer{
		shell: shell,
		names: make(map[entity.WindowID]string),
		ids:   make(map[string]entity.WindowID),
		result: &ReplayResult{
			Script:   script.Name,
			captions: make(map[entity.TabID]string),
		},
	}
	shell.Machine.SetOnOutcome(func(o dragdrop.Outcome) {
		r.result.Outcomes = append(r.result.Outcomes, o)
	})

	if err := r.openWindows(script.Windows); err != nil {
		return nil, err
	}
	for i, step := range script.Steps {
		if !r.apply(step) {
			r.result.Skipped++
			log.Debug().Int("step", i+1).Str("action", step.Action).Msg("replay step not delivered")
		}
	}
	// A script that stops mid-gesture leaves nothing half-done.
	shell.Machine.Cancel()

	r.collect()
	log.Info().
		Str("script", script.Name).
		Int("steps", len(script.Steps)).
		Int("outcomes", len(r.result.Outcomes)).
		Int("windows", len(r.result.Windows)).
		Msg("replay finished")
	return r.result, nil
}

type replayer struct {
	shell  *bootstrap.Shell
	names  map[entity.WindowID]string
	ids    map[string]entity.WindowID
	result *ReplayResult
}

func (r *replayer) openWindows(windows []ScriptWindow) error {
	for i, sw := range windows {
		w := r.shell.Main
		if i > 0 {
			var err error
			w, err = r.shell.Windows.OpenWindow(entity.WindowSatellite)
			if err != nil {
				return fmt.Errorf("open window %q: %w", sw.Name, err)
			}
		}
		r.names[w.ID()] = sw.Name
		r.ids[sw.Name] = w.ID()

		if len(sw.At) == 2 {
			w.View.MoveTo(entity.Point{X: sw.At[0], Y: sw.At[1]})
		}
		loading := make(map[string]bool, len(sw.Loading))
		for _, caption := range sw.Loading {
			loading[caption] = true
		}
		for _, caption := range sw.Tabs {
			if _, err := r.shell.Windows.OpenTab(w.ID(), caption, loading[caption]); err != nil {
				return fmt.Errorf("open tab %q in %q: %w", caption, sw.Name, err)
			}
		}
	}
	return nil
}

// apply runs one step. It reports false when no window received it.
func (r *replayer) apply(step ScriptStep) bool {
	switch step.Action {
	case ActionCancel:
		r.shell.Machine.Cancel()
		return true
	case ActionCloseWindow:
		id, ok := r.ids[step.Window]
		if !ok || r.shell.Registry.Find(id) == nil {
			return false
		}
		r.shell.Windows.CloseWindow(id)
		return true
	case ActionCaptureLost:
		owner := r.shell.Screen.LoseCapture(ReplayPointer)
		if owner == nil {
			return false
		}
		return r.shell.Machine.HandlePointer(port.PointerEvent{
			Kind:    port.PointerCaptureLost,
			Pointer: ReplayPointer,
			Window:  owner.ID(),
		})
	}

	p := entity.Point{X: step.X, Y: step.Y}
	target := r.target(step.Window, p)
	if target == nil {
		return false
	}
	button, _ := parseButton(step.Button)
	client := target.View.PointToClient(p)
	ev := port.PointerEvent{
		Pointer:  ReplayPointer,
		Button:   button,
		Window:   target.ID(),
		Position: client,
	}
	switch step.Action {
	case ActionPress:
		ev.Kind = port.PointerPressed
		if hw := r.shell.Screen.Window(target.ID()); hw != nil {
			ev.Tab, _ = hw.TabAt(client)
		}
	case ActionMove:
		ev.Kind = port.PointerMoved
	case ActionRelease:
		ev.Kind = port.PointerReleased
	case ActionLeave:
		ev.Kind = port.PointerLeft
	}

	handled := r.shell.Machine.HandlePointer(ev)
	if !handled && ev.Kind == port.PointerPressed {
		r.shell.Windows.Activate(target.ID())
	}
	return true
}

// target resolves the receiving window: a named window, the capture owner, or
// the frontmost window under p.
func (r *replayer) target(name string, p entity.Point) *registry.Window {
	if name != "" {
		return r.shell.Registry.Find(r.ids[name])
	}
	if owner := r.shell.Screen.CaptureOwner(ReplayPointer); owner != nil {
		return r.shell.Registry.Find(owner.ID())
	}
	return r.shell.Registry.WindowAt(p)
}

func (r *replayer) collect() {
	detached := 0
	for _, w := range r.shell.Registry.Windows() {
		name, ok := r.names[w.ID()]
		if !ok {
			detached++
			name = fmt.Sprintf("detached-%d", detached)
			r.names[w.ID()] = name
		}
		layout := WindowLayout{
			Name:   name,
			ID:     w.ID(),
			Kind:   w.Model.Kind,
			Bounds: w.View.Bounds(),
		}
		for _, tab := range w.Model.Tabs.Tabs {
			layout.Tabs = append(layout.Tabs, tab.Caption)
			r.result.captions[tab.ID] = tab.Caption
		}
		if active := w.Model.Tabs.ActiveTab(); active != nil {
			layout.Active = active.Caption
		}
		r.result.Windows = append(r.result.Windows, layout)
	}
}

// WindowName returns the script name of a window in the result.
func (res *ReplayResult) WindowName(id entity.WindowID) string {
	for _, w := range res.Windows {
		if w.ID == id {
			return w.Name
		}
	}
	return string(id)
}

// Report converts the result into its printable form.
func (res *ReplayResult) Report() styles.Report {
	rep := styles.Report{Script: res.Script, Skipped: res.Skipped}
	for _, o := range res.Outcomes {
		rep.Outcomes = append(rep.Outcomes, styles.ReportOutcome{
			Kind:   o.Kind.String(),
			Tab:    res.tabCaption(o),
			Window: res.WindowName(o.Window),
			Index:  o.Index,
			Reason: o.Reason,
		})
	}
	for _, w := range res.Windows {
		rep.Windows = append(rep.Windows, styles.ReportWindow{
			Name:   w.Name,
			Kind:   w.Kind.String(),
			X:      w.Bounds.X,
			Y:      w.Bounds.Y,
			W:      w.Bounds.W,
			H:      w.Bounds.H,
			Tabs:   w.Tabs,
			Active: w.Active,
			Fixed:  1,
		})
	}
	return rep
}

func (res *ReplayResult) tabCaption(o dragdrop.Outcome) string {
	if caption, ok := res.captions[o.Tab]; ok {
		return caption
	}
	return string(o.Tab)
}
