package usecase

import (
	"context"
	"testing"

	"github.com/servicestudio/shell/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_AppendsAndSelects(t *testing.T) {
	uc := NewManageTabsUseCase(newTestIDGen())
	w := newTestWindow("a", entity.WindowMain, "t1")

	out, err := uc.Open(context.Background(), OpenTabInput{Window: w, Caption: "Module"})
	require.NoError(t, err)

	assert.Equal(t, 2, out.Index)
	assert.True(t, out.Tab.Closable)
	assert.NotEmpty(t, out.Tab.View)
	assert.Equal(t, out.Tab.ID, w.Tabs.ActiveTabID)
}

func TestOpen_RequiresWindow(t *testing.T) {
	_, err := NewManageTabsUseCase(newTestIDGen()).Open(context.Background(), OpenTabInput{})
	require.ErrorIs(t, err, ErrWindowRequired)
}

func TestSelect(t *testing.T) {
	uc := NewManageTabsUseCase(newTestIDGen())
	w := newTestWindow("a", entity.WindowMain, "t1", "t2")

	require.NoError(t, uc.Select(context.Background(), w, "t2"))
	assert.Equal(t, entity.TabID("t2"), w.Tabs.ActiveTabID)

	err := uc.Select(context.Background(), w, "missing")
	require.ErrorIs(t, err, ErrTabNotInWindow)
	assert.Equal(t, entity.TabID("t2"), w.Tabs.ActiveTabID)
}

func TestClose(t *testing.T) {
	uc := NewManageTabsUseCase(newTestIDGen())
	ctx := context.Background()

	t.Run("closes a draggable tab", func(t *testing.T) {
		w := newTestWindow("a", entity.WindowMain, "t1", "t2")
		out, err := uc.Close(ctx, w, "t1")
		require.NoError(t, err)
		assert.True(t, out.Closed)
		assert.False(t, out.WindowAbandoned)
		assert.Nil(t, w.Tabs.Find("t1"))
	})

	t.Run("refuses the home tab", func(t *testing.T) {
		w := newTestWindow("a", entity.WindowMain, "t1")
		_, err := uc.Close(ctx, w, "a-home")
		require.ErrorIs(t, err, ErrTabNotClosable)
	})

	t.Run("missing tab is a no-op", func(t *testing.T) {
		w := newTestWindow("a", entity.WindowMain, "t1")
		out, err := uc.Close(ctx, w, "gone")
		require.NoError(t, err)
		assert.False(t, out.Closed)
	})

	t.Run("last draggable tab abandons a satellite", func(t *testing.T) {
		w := newTestWindow("b", entity.WindowSatellite, "t1")
		out, err := uc.Close(ctx, w, "t1")
		require.NoError(t, err)
		assert.True(t, out.WindowAbandoned)
	})
}

func TestCreateWindow_SeedsCustomHomeTab(t *testing.T) {
	uc := NewManageWindowsUseCase(newTestIDGen(), "Start")

	out, err := uc.Create(context.Background(), CreateWindowInput{Kind: entity.WindowMain})
	require.NoError(t, err)

	require.Equal(t, 1, out.Window.Tabs.Count())
	assert.Equal(t, "Start", out.Home.Caption)
	assert.False(t, out.Home.Closable)
	assert.Equal(t, out.Home.ID, out.Window.Tabs.ActiveTabID)
	assert.False(t, out.Window.Tabs.HasDraggable())
}
