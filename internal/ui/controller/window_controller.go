// Package controller provides controllers that bridge domain state and UI widgets.
package controller

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/servicestudio/shell/internal/application/port"
	"github.com/servicestudio/shell/internal/application/usecase"
	"github.com/servicestudio/shell/internal/domain/entity"
	"github.com/servicestudio/shell/internal/logging"
	"github.com/servicestudio/shell/internal/ui/registry"
)

// WindowController synchronizes aggregator windows and their tab lists with the
// window and tab strip views. Every mutation goes through a use case first and is
// then mirrored onto the views.
type WindowController struct {
	registry   *registry.Registry
	factory    port.WindowFactory
	windowsUC  *usecase.ManageWindowsUseCase
	tabsUC     *usecase.ManageTabsUseCase
	relocateUC *usecase.RelocateTabsUseCase

	// Callback invoked before a window is closed
	onWindowClosing func(id entity.WindowID)

	ctx    context.Context
	logger *zerolog.Logger
	mu     sync.RWMutex
}

// NewWindowController creates a controller over the given registry.
func NewWindowController(
	ctx context.Context,
	reg *registry.Registry,
	factory port.WindowFactory,
	windowsUC *usecase.ManageWindowsUseCase,
	tabsUC *usecase.ManageTabsUseCase,
	relocateUC *usecase.RelocateTabsUseCase,
) *WindowController {
	ctx = logging.WithComponent(ctx, "window-controller")
	return &WindowController{
		registry:   reg,
		factory:    factory,
		windowsUC:  windowsUC,
		tabsUC:     tabsUC,
		relocateUC: relocateUC,
		ctx:        ctx,
		logger:     logging.FromContext(ctx),
	}
}

// Registry returns the window registry.
func (wc *WindowController) Registry() *registry.Registry {
	return wc.registry
}

// SetOnWindowClosing sets the callback invoked before a window closes.
func (wc *WindowController) SetOnWindowClosing(fn func(id entity.WindowID)) {
	wc.mu.Lock()
	defer wc.mu.Unlock()
	wc.onWindowClosing = fn
}

// OpenWindow creates, registers and shows a window of the given kind.
func (wc *WindowController) OpenWindow(kind entity.WindowKind) (*registry.Window, error) {
	created, err := wc.windowsUC.Create(wc.ctx, usecase.CreateWindowInput{Kind: kind})
	if err != nil {
		return nil, err
	}
	w, err := wc.attach(created.Window, nil)
	if err != nil {
		return nil, err
	}
	wc.present(w)
	return w, nil
}

// OpenTab appends a new closable tab to a window and selects it.
func (wc *WindowController) OpenTab(windowID entity.WindowID, caption string, loading bool) (*entity.Tab, error) {
	w, err := wc.window(windowID)
	if err != nil {
		return nil, err
	}

	out, err := wc.tabsUC.Open(wc.ctx, usecase.OpenTabInput{
		Window:  w.Model,
		Caption: caption,
		Loading: loading,
	})
	if err != nil {
		return nil, err
	}

	strip := w.View.TabStrip()
	strip.InsertTab(out.Index, out.Tab)
	strip.SelectTab(out.Tab.ID)
	return out.Tab, nil
}

// SelectTab makes a tab active and brings its window to the front.
func (wc *WindowController) SelectTab(windowID entity.WindowID, tabID entity.TabID) error {
	w, err := wc.window(windowID)
	if err != nil {
		return err
	}
	if err := wc.tabsUC.Select(wc.ctx, w.Model, tabID); err != nil {
		return err
	}
	w.View.TabStrip().SelectTab(tabID)
	wc.Activate(windowID)
	return nil
}

// CloseTab closes a closable tab. A satellite window left without draggable tabs
// is closed as well.
func (wc *WindowController) CloseTab(windowID entity.WindowID, tabID entity.TabID) error {
	w, err := wc.window(windowID)
	if err != nil {
		return err
	}

	out, err := wc.tabsUC.Close(wc.ctx, w.Model, tabID)
	if err != nil {
		return err
	}
	if !out.Closed {
		return nil
	}

	strip := w.View.TabStrip()
	strip.RemoveTab(tabID)
	if active := w.Model.Tabs.ActiveTabID; active != "" {
		strip.SelectTab(active)
	}

	if out.WindowAbandoned {
		wc.CloseWindow(windowID)
	}
	return nil
}

// CloseWindow closes a window and unregisters it.
func (wc *WindowController) CloseWindow(windowID entity.WindowID) {
	w := wc.registry.Find(windowID)
	if w == nil {
		return
	}

	wc.mu.RLock()
	callback := wc.onWindowClosing
	wc.mu.RUnlock()
	if callback != nil {
		callback(windowID)
	}

	wc.registry.Remove(windowID)
	w.View.Close()

	wc.logger.Info().
		Str("window_id", string(windowID)).
		Str("kind", w.Model.Kind.String()).
		Msg("window closed")
}

// CloseIfAbandoned closes a satellite window with no draggable tab left.
func (wc *WindowController) CloseIfAbandoned(windowID entity.WindowID) bool {
	w := wc.registry.Find(windowID)
	if w == nil || !w.Model.IsAbandoned() {
		return false
	}
	wc.CloseWindow(windowID)
	return true
}

// Activate brings a window to the front.
func (wc *WindowController) Activate(windowID entity.WindowID) {
	w := wc.registry.Find(windowID)
	if w == nil {
		return
	}
	w.View.Activate()
	wc.registry.Raise(windowID)
}

// SetTabOpacity changes how a tab item is drawn in its window.
func (wc *WindowController) SetTabOpacity(windowID entity.WindowID, tabID entity.TabID, opacity float64) {
	if w := wc.registry.Find(windowID); w != nil {
		w.View.TabStrip().SetTabOpacity(tabID, opacity)
	}
}

// Reorder moves a tab to a new slot of its own window.
func (wc *WindowController) Reorder(windowID entity.WindowID, tabID entity.TabID, index int) (*usecase.ReorderOutput, error) {
	w, err := wc.window(windowID)
	if err != nil {
		return nil, err
	}

	out, err := wc.relocateUC.Reorder(wc.ctx, usecase.ReorderInput{
		Window:      w.Model,
		TabID:       tabID,
		TargetIndex: index,
	})
	if err != nil {
		return nil, err
	}
	if out.Moved {
		w.View.TabStrip().MoveTab(tabID, out.To)
	}
	return out, nil
}

// MoveBetween moves a tab into another window at the given slot. The target window
// is shown before its selection changes.
func (wc *WindowController) MoveBetween(sourceID, targetID entity.WindowID, tabID entity.TabID, index int) (*usecase.MoveOutput, error) {
	source, err := wc.window(sourceID)
	if err != nil {
		return nil, err
	}
	target, err := wc.window(targetID)
	if err != nil {
		return nil, err
	}

	out, err := wc.relocateUC.MoveBetween(wc.ctx, usecase.MoveInput{
		Source:      source.Model,
		Target:      target.Model,
		TabID:       tabID,
		TargetIndex: index,
	})
	if err != nil {
		return nil, err
	}
	if !out.Moved {
		return out, nil
	}

	sourceStrip := source.View.TabStrip()
	sourceStrip.RemoveTab(tabID)
	if active := source.Model.Tabs.ActiveTabID; active != "" {
		sourceStrip.SelectTab(active)
	}

	targetStrip := target.View.TabStrip()
	targetStrip.InsertTab(out.Index, out.Tab)
	target.View.Show()
	targetStrip.SelectTab(tabID)
	return out, nil
}

// Detach moves a tab into a new satellite window placed at the given screen point.
func (wc *WindowController) Detach(sourceID entity.WindowID, tabID entity.TabID, at entity.Point) (*registry.Window, error) {
	source, err := wc.window(sourceID)
	if err != nil {
		return nil, err
	}
	origin := source.Model.Tabs.IndexOf(tabID)
	wasActive := source.Model.Tabs.ActiveTabID == tabID

	out, err := wc.relocateUC.Detach(wc.ctx, usecase.DetachInput{
		Source: source.Model,
		TabID:  tabID,
	})
	if err != nil {
		return nil, err
	}
	if !out.Detached {
		return nil, nil
	}

	w, err := wc.attach(out.Window, &at)
	if err != nil {
		// Put the tab back where it was
		out.Window.Tabs.Remove(tabID)
		source.Model.Tabs.Insert(out.Tab, origin)
		if wasActive {
			source.Model.Tabs.Select(tabID)
		}
		return nil, err
	}

	sourceStrip := source.View.TabStrip()
	sourceStrip.RemoveTab(tabID)
	if active := source.Model.Tabs.ActiveTabID; active != "" {
		sourceStrip.SelectTab(active)
	}

	wc.present(w)
	return w, nil
}

// attach creates the view of a window model, fills its strip and registers it.
func (wc *WindowController) attach(model *entity.AggregatorWindow, at *entity.Point) (*registry.Window, error) {
	if wc.factory == nil {
		return nil, fmt.Errorf("window factory is required")
	}
	view, err := wc.factory.NewWindowView(wc.ctx, model.ID)
	if err != nil {
		return nil, fmt.Errorf("create view for window %s: %w", model.ID, err)
	}
	if at != nil {
		view.MoveTo(*at)
	}

	strip := view.TabStrip()
	for i, tab := range model.Tabs.Tabs {
		strip.InsertTab(i, tab)
	}

	w, err := wc.registry.Add(model, view)
	if err != nil {
		view.Close()
		return nil, err
	}
	return w, nil
}

// present shows a window, then selects its active tab and raises it.
func (wc *WindowController) present(w *registry.Window) {
	w.View.Show()
	if active := w.Model.Tabs.ActiveTabID; active != "" {
		w.View.TabStrip().SelectTab(active)
	}
	wc.Activate(w.ID())

	wc.logger.Debug().
		Str("window_id", string(w.ID())).
		Int("tabs", w.Model.Tabs.Count()).
		Msg("window shown")
}

func (wc *WindowController) window(id entity.WindowID) (*registry.Window, error) {
	w := wc.registry.Find(id)
	if w == nil {
		return nil, fmt.Errorf("window %s not found", id)
	}
	return w, nil
}
