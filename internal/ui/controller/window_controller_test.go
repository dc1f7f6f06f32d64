package controller

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/servicestudio/shell/internal/application/port/mocks"
	"github.com/servicestudio/shell/internal/application/usecase"
	"github.com/servicestudio/shell/internal/domain/entity"
	"github.com/servicestudio/shell/internal/infrastructure/headless"
	"github.com/servicestudio/shell/internal/ui/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestIDGen() usecase.IDGenerator {
	counter := 0
	return func() string {
		counter++
		return fmt.Sprintf("id%d", counter)
	}
}

func newTestController(t *testing.T) (*WindowController, *headless.Screen) {
	t.Helper()
	screen := headless.NewScreen(headless.DefaultLayout())
	ids := newTestIDGen()
	windowsUC := usecase.NewManageWindowsUseCase(ids, "Home")
	wc := NewWindowController(
		context.Background(),
		registry.New(),
		screen,
		windowsUC,
		usecase.NewManageTabsUseCase(ids),
		usecase.NewRelocateTabsUseCase(windowsUC),
	)
	return wc, screen
}

func stripOf(t *testing.T, screen *headless.Screen, id entity.WindowID) *headless.TabStrip {
	t.Helper()
	w := screen.Window(id)
	require.NotNil(t, w)
	return w.Strip()
}

func modelOrder(w *registry.Window) []entity.TabID {
	var out []entity.TabID
	for _, tab := range w.Model.Tabs.Tabs {
		out = append(out, tab.ID)
	}
	return out
}

func TestWindowController_OpenWindowAndTabs(t *testing.T) {
	wc, screen := newTestController(t)

	w, err := wc.OpenWindow(entity.WindowMain)
	require.NoError(t, err)
	assert.True(t, w.View.IsVisible())
	assert.Same(t, w, wc.Registry().Main())

	t1, err := wc.OpenTab(w.ID(), "T1", false)
	require.NoError(t, err)
	t2, err := wc.OpenTab(w.ID(), "T2", false)
	require.NoError(t, err)

	strip := stripOf(t, screen, w.ID())
	assert.Equal(t, modelOrder(w), strip.Items(), "strip mirrors the tab list")
	assert.Equal(t, t2.ID, strip.Selected())

	require.NoError(t, wc.SelectTab(w.ID(), t1.ID))
	assert.Equal(t, t1.ID, w.Model.Tabs.ActiveTabID)
	assert.Equal(t, t1.ID, strip.Selected())

	assert.Error(t, wc.SelectTab(w.ID(), "missing"))
	_, err = wc.OpenTab("missing", "T3", false)
	assert.Error(t, err)
}

func TestWindowController_CloseTabClosesAbandonedSatellite(t *testing.T) {
	wc, screen := newTestController(t)

	main, err := wc.OpenWindow(entity.WindowMain)
	require.NoError(t, err)
	tab, err := wc.OpenTab(main.ID(), "Doc", false)
	require.NoError(t, err)

	sat, err := wc.Detach(main.ID(), tab.ID, entity.Point{X: 300, Y: 200})
	require.NoError(t, err)
	require.NotNil(t, sat)

	var closing []entity.WindowID
	wc.SetOnWindowClosing(func(id entity.WindowID) { closing = append(closing, id) })

	require.NoError(t, wc.CloseTab(sat.ID(), tab.ID))
	assert.Nil(t, wc.Registry().Find(sat.ID()))
	assert.True(t, screen.Window(sat.ID()).IsClosed())
	assert.Equal(t, []entity.WindowID{sat.ID()}, closing)

	// Home tabs cannot be closed
	home := main.Model.Tabs.At(0)
	assert.ErrorIs(t, wc.CloseTab(main.ID(), home.ID), usecase.ErrTabNotClosable)
}

func TestWindowController_Reorder(t *testing.T) {
	wc, screen := newTestController(t)
	w, err := wc.OpenWindow(entity.WindowMain)
	require.NoError(t, err)
	t1, _ := wc.OpenTab(w.ID(), "T1", false)
	t2, _ := wc.OpenTab(w.ID(), "T2", false)

	out, err := wc.Reorder(w.ID(), t1.ID, 2)
	require.NoError(t, err)
	assert.True(t, out.Moved)

	home := w.Model.Tabs.At(0).ID
	assert.Equal(t, []entity.TabID{home, t2.ID, t1.ID}, modelOrder(w))
	assert.Equal(t, modelOrder(w), stripOf(t, screen, w.ID()).Items())
}

func TestWindowController_MoveBetweenShowsTargetAndSelects(t *testing.T) {
	wc, screen := newTestController(t)
	a, err := wc.OpenWindow(entity.WindowMain)
	require.NoError(t, err)
	b, err := wc.OpenWindow(entity.WindowMain)
	require.NoError(t, err)
	t1, _ := wc.OpenTab(a.ID(), "T1", false)
	t2, _ := wc.OpenTab(a.ID(), "T2", false)
	b1, _ := wc.OpenTab(b.ID(), "B1", false)

	bView := screen.Window(b.ID())
	bView.Hide()
	require.False(t, bView.IsVisible())

	out, err := wc.MoveBetween(a.ID(), b.ID(), t1.ID, 1)
	require.NoError(t, err)
	assert.True(t, out.Moved)
	assert.Equal(t, 1, out.Index)
	assert.True(t, bView.IsVisible(), "target is shown")

	assert.Equal(t, []entity.TabID{a.Model.Tabs.At(0).ID, t2.ID}, modelOrder(a))
	assert.Equal(t, []entity.TabID{b.Model.Tabs.At(0).ID, t1.ID, b1.ID}, modelOrder(b))
	assert.Equal(t, modelOrder(a), stripOf(t, screen, a.ID()).Items())
	assert.Equal(t, modelOrder(b), stripOf(t, screen, b.ID()).Items())
	assert.Equal(t, t1.ID, b.Model.Tabs.ActiveTabID)
	assert.Equal(t, t1.ID, stripOf(t, screen, b.ID()).Selected())

	// A missing tab is a no-op
	out, err = wc.MoveBetween(a.ID(), b.ID(), t1.ID, 1)
	require.NoError(t, err)
	assert.False(t, out.Moved)
}

func TestWindowController_DetachPlacesWindowAtDropPoint(t *testing.T) {
	wc, screen := newTestController(t)
	a, err := wc.OpenWindow(entity.WindowMain)
	require.NoError(t, err)
	t1, _ := wc.OpenTab(a.ID(), "T1", false)
	t2, _ := wc.OpenTab(a.ID(), "T2", false)

	drop := entity.Point{X: 640, Y: 420}
	sat, err := wc.Detach(a.ID(), t1.ID, drop)
	require.NoError(t, err)
	require.NotNil(t, sat)

	assert.Equal(t, entity.WindowSatellite, sat.Model.Kind)
	assert.Equal(t, drop, sat.View.Bounds().TopLeft())
	assert.True(t, sat.View.IsVisible())
	assert.Equal(t, 2, sat.Model.Tabs.Count(), "home plus the detached tab")
	assert.Equal(t, t1.ID, sat.Model.Tabs.ActiveTabID)
	assert.Equal(t, t1.ID, stripOf(t, screen, sat.ID()).Selected())
	assert.Equal(t, []entity.TabID{a.Model.Tabs.At(0).ID, t2.ID}, stripOf(t, screen, a.ID()).Items())
	assert.Equal(t, sat.ID(), wc.Registry().Windows()[0].ID(), "detached window is raised")

	// Detaching a tab that is already gone does nothing
	again, err := wc.Detach(a.ID(), t1.ID, drop)
	require.NoError(t, err)
	assert.Nil(t, again)
}

func TestWindowController_DetachRollsBackWhenViewFails(t *testing.T) {
	screen := headless.NewScreen(headless.DefaultLayout())
	factory := mocks.NewMockWindowFactory(t)
	ids := newTestIDGen()
	windowsUC := usecase.NewManageWindowsUseCase(ids, "Home")
	reg := registry.New()
	wc := NewWindowController(context.Background(), reg, factory, windowsUC,
		usecase.NewManageTabsUseCase(ids), usecase.NewRelocateTabsUseCase(windowsUC))

	// Arrange: the first window comes from the headless screen, the second fails
	factory.EXPECT().NewWindowView(mock.Anything, entity.WindowID("id1")).
		RunAndReturn(screen.NewWindowView).Once()
	factory.EXPECT().NewWindowView(mock.Anything, mock.Anything).
		Return(nil, errors.New("display gone")).Once()

	a, err := wc.OpenWindow(entity.WindowMain)
	require.NoError(t, err)
	t1, err := wc.OpenTab(a.ID(), "T1", false)
	require.NoError(t, err)

	// Act
	sat, err := wc.Detach(a.ID(), t1.ID, entity.Point{})

	// Assert
	require.Error(t, err)
	assert.Nil(t, sat)
	assert.Equal(t, 1, a.Model.Tabs.IndexOf(t1.ID))
	assert.Equal(t, t1.ID, a.Model.Tabs.ActiveTabID)
	assert.Equal(t, 1, reg.Len())
}
