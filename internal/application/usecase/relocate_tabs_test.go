package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/servicestudio/shell/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIDGen() func() string {
	counter := 0
	return func() string {
		counter++
		return fmt.Sprintf("id%d", counter)
	}
}

func newTestWindow(id entity.WindowID, kind entity.WindowKind, tabs ...entity.TabID) *entity.AggregatorWindow {
	w := entity.NewAggregatorWindow(id, kind, entity.NewHomeTab(entity.TabID(string(id)+"-home"), "Home", entity.ViewID(string(id)+"-home")))
	for _, tabID := range tabs {
		w.Tabs.Add(entity.NewTab(tabID, string(tabID), entity.ViewID("view-"+tabID)))
	}
	return w
}

func tabOrder(w *entity.AggregatorWindow) []entity.TabID {
	out := make([]entity.TabID, 0, w.Tabs.Count())
	for _, tab := range w.Tabs.Tabs {
		out = append(out, tab.ID)
	}
	return out
}

func newRelocate() *RelocateTabsUseCase {
	return NewRelocateTabsUseCase(NewManageWindowsUseCase(newTestIDGen(), ""))
}

func TestReorder_SwapsWithNext(t *testing.T) {
	uc := newRelocate()
	w := newTestWindow("a", entity.WindowMain, "t1", "t2")

	out, err := uc.Reorder(context.Background(), ReorderInput{Window: w, TabID: "t1", TargetIndex: 2})
	require.NoError(t, err)

	assert.True(t, out.Moved)
	assert.Equal(t, 1, out.From)
	assert.Equal(t, 2, out.To)
	assert.Equal(t, []entity.TabID{"a-home", "t2", "t1"}, tabOrder(w))
}

func TestReorder_NoOps(t *testing.T) {
	tests := []struct {
		name   string
		tab    entity.TabID
		target int
	}{
		{name: "same index", tab: "t1", target: 1},
		{name: "negative target", tab: "t1", target: -1},
		{name: "missing tab", tab: "nope", target: 2},
		{name: "clamped onto the fixed tab slot", tab: "t1", target: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newRelocate()
			w := newTestWindow("a", entity.WindowMain, "t1", "t2")

			out, err := uc.Reorder(context.Background(), ReorderInput{Window: w, TabID: tt.tab, TargetIndex: tt.target})
			require.NoError(t, err)

			assert.False(t, out.Moved)
			assert.Equal(t, []entity.TabID{"a-home", "t1", "t2"}, tabOrder(w))
		})
	}
}

func TestReorder_ClampsPastEnd(t *testing.T) {
	uc := newRelocate()
	w := newTestWindow("a", entity.WindowMain, "t1", "t2", "t3")

	out, err := uc.Reorder(context.Background(), ReorderInput{Window: w, TabID: "t1", TargetIndex: 42})
	require.NoError(t, err)

	assert.Equal(t, 3, out.To)
	assert.Equal(t, []entity.TabID{"a-home", "t2", "t3", "t1"}, tabOrder(w))
}

func TestReorder_NilWindow(t *testing.T) {
	_, err := newRelocate().Reorder(context.Background(), ReorderInput{TabID: "t1"})
	require.ErrorIs(t, err, ErrWindowRequired)
}

func TestMoveBetween_AppendsSelectsAndReorders(t *testing.T) {
	uc := newRelocate()
	a := newTestWindow("a", entity.WindowMain, "t1", "t2")
	b := newTestWindow("b", entity.WindowSatellite, "u1")

	out, err := uc.MoveBetween(context.Background(), MoveInput{Source: a, Target: b, TabID: "t1", TargetIndex: 1})
	require.NoError(t, err)

	require.True(t, out.Moved)
	assert.Equal(t, 1, out.Index)
	assert.Equal(t, []entity.TabID{"a-home", "t2"}, tabOrder(a))
	assert.Equal(t, []entity.TabID{"b-home", "t1", "u1"}, tabOrder(b))
	assert.Equal(t, entity.TabID("t1"), b.Tabs.ActiveTabID)
	assert.Equal(t, entity.TabID("a-home"), a.Tabs.ActiveTabID)
}

func TestMoveBetween_AbsentTabIsNoOp(t *testing.T) {
	uc := newRelocate()
	a := newTestWindow("a", entity.WindowMain, "t2")
	b := newTestWindow("b", entity.WindowSatellite, "t1")

	out, err := uc.MoveBetween(context.Background(), MoveInput{Source: a, Target: b, TabID: "t1", TargetIndex: 1})
	require.NoError(t, err)

	assert.False(t, out.Moved)
	assert.Equal(t, 2, a.Tabs.Count())
	assert.Equal(t, 2, b.Tabs.Count())
}

func TestMoveBetween_RoundTripRestoresOrder(t *testing.T) {
	uc := newRelocate()
	a := newTestWindow("a", entity.WindowMain, "t1", "t2", "t3")
	b := newTestWindow("b", entity.WindowSatellite)
	ctx := context.Background()

	_, err := uc.MoveBetween(ctx, MoveInput{Source: a, Target: b, TabID: "t2", TargetIndex: b.Tabs.FirstDraggableIndex()})
	require.NoError(t, err)
	_, err = uc.MoveBetween(ctx, MoveInput{Source: b, Target: a, TabID: "t2", TargetIndex: 2})
	require.NoError(t, err)

	assert.Equal(t, []entity.TabID{"a-home", "t1", "t2", "t3"}, tabOrder(a))
	assert.Equal(t, []entity.TabID{"b-home"}, tabOrder(b))
}

func TestMoveBetween_RequiresWindows(t *testing.T) {
	_, err := newRelocate().MoveBetween(context.Background(), MoveInput{TabID: "t1"})
	require.ErrorIs(t, err, ErrWindowRequired)
}

func TestDetach_CreatesSatelliteWithTabSelected(t *testing.T) {
	uc := newRelocate()
	a := newTestWindow("a", entity.WindowMain, "t1", "t2")

	out, err := uc.Detach(context.Background(), DetachInput{Source: a, TabID: "t2"})
	require.NoError(t, err)

	require.True(t, out.Detached)
	require.NotNil(t, out.Window)
	assert.Equal(t, entity.WindowSatellite, out.Window.Kind)
	assert.Equal(t, 2, out.Window.Tabs.Count())
	assert.Equal(t, 1, out.Index)
	assert.Equal(t, entity.TabID("t2"), out.Window.Tabs.ActiveTabID)
	assert.False(t, out.Window.Tabs.Tabs[0].Closable, "home tab stays first")
	assert.Equal(t, []entity.TabID{"a-home", "t1"}, tabOrder(a))
}

func TestDetach_AbsentTabIsNoOp(t *testing.T) {
	uc := newRelocate()
	a := newTestWindow("a", entity.WindowMain, "t1")

	out, err := uc.Detach(context.Background(), DetachInput{Source: a, TabID: "gone"})
	require.NoError(t, err)

	assert.False(t, out.Detached)
	assert.Nil(t, out.Window)
}
