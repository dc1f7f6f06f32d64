package entity_test

import (
	"testing"

	"github.com/servicestudio/shell/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newList(ids ...entity.TabID) *entity.TabList {
	tl := entity.NewTabList()
	tl.Add(entity.NewHomeTab("home", "Home", "view-home"))
	for _, id := range ids {
		tl.Add(entity.NewTab(id, string(id), entity.ViewID("view-"+id)))
	}
	return tl
}

func ids(tl *entity.TabList) []entity.TabID {
	out := make([]entity.TabID, 0, tl.Count())
	for _, tab := range tl.Tabs {
		out = append(out, tab.ID)
	}
	return out
}

func TestTabList_FirstDraggable(t *testing.T) {
	tl := newList("t1", "t2")
	assert.Equal(t, 1, tl.FirstDraggableIndex())
	assert.Equal(t, entity.TabID("t1"), tl.FirstDraggable().ID)
	assert.True(t, tl.HasDraggable())

	homeOnly := newList()
	assert.Equal(t, 1, homeOnly.FirstDraggableIndex())
	assert.Nil(t, homeOnly.FirstDraggable())
	assert.False(t, homeOnly.HasDraggable())
}

func TestTabList_Move(t *testing.T) {
	tl := newList("t1", "t2", "t3")

	require.True(t, tl.Move("t1", 3))
	assert.Equal(t, []entity.TabID{"home", "t2", "t3", "t1"}, ids(tl))

	require.True(t, tl.Move("t1", 1))
	assert.Equal(t, []entity.TabID{"home", "t1", "t2", "t3"}, ids(tl))

	assert.False(t, tl.Move("t1", 4))
	assert.False(t, tl.Move("t1", -1))
	assert.False(t, tl.Move("missing", 1))
}

func TestTabList_Insert(t *testing.T) {
	tl := newList("t1")

	tl.Insert(entity.NewTab("t2", "T2", "view-t2"), 1)
	assert.Equal(t, []entity.TabID{"home", "t2", "t1"}, ids(tl))

	tl.Insert(entity.NewTab("t3", "T3", "view-t3"), 99)
	assert.Equal(t, []entity.TabID{"home", "t2", "t1", "t3"}, ids(tl))
}

func TestTabList_RemoveReselects(t *testing.T) {
	tests := []struct {
		name       string
		active     entity.TabID
		remove     entity.TabID
		wantActive entity.TabID
	}{
		{name: "inactive tab keeps selection", active: "t1", remove: "t2", wantActive: "t1"},
		{name: "active tab falls back to last draggable", active: "t1", remove: "t1", wantActive: "t3"},
		{name: "last draggable falls back to previous one", active: "t3", remove: "t3", wantActive: "t2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tl := newList("t1", "t2", "t3")
			require.True(t, tl.Select(tt.active))

			require.True(t, tl.Remove(tt.remove))

			assert.Equal(t, tt.wantActive, tl.ActiveTabID)
			assert.Nil(t, tl.Find(tt.remove))
		})
	}
}

func TestTabList_RemoveLastDraggableSelectsHome(t *testing.T) {
	tl := newList("t1")
	require.True(t, tl.Select("t1"))

	require.True(t, tl.Remove("t1"))

	assert.Equal(t, entity.TabID("home"), tl.ActiveTabID)
	assert.False(t, tl.Remove("t1"))
}

func TestTabList_FindByView(t *testing.T) {
	tl := newList("t1", "t2")

	tab := tl.FindByView("view-t2")
	require.NotNil(t, tab)
	assert.Equal(t, entity.TabID("t2"), tab.ID)
	assert.Nil(t, tl.FindByView("nope"))
}

func TestTab_IsDraggable(t *testing.T) {
	tab := entity.NewTab("t1", "T1", "v1")
	assert.True(t, tab.IsDraggable())

	tab.Loading = true
	assert.False(t, tab.IsDraggable())

	assert.False(t, entity.NewHomeTab("home", "Home", "vh").IsDraggable())

	var missing *entity.Tab
	assert.False(t, missing.IsDraggable())
}

func TestAggregatorWindow_IsAbandoned(t *testing.T) {
	satellite := entity.NewAggregatorWindow("w2", entity.WindowSatellite, entity.NewHomeTab("h2", "Home", "vh2"))
	assert.True(t, satellite.IsAbandoned())

	satellite.Tabs.Add(entity.NewTab("t1", "T1", "v1"))
	assert.False(t, satellite.IsAbandoned())

	main := entity.NewAggregatorWindow("w1", entity.WindowMain, entity.NewHomeTab("h1", "Home", "vh1"))
	assert.False(t, main.IsAbandoned())
}
