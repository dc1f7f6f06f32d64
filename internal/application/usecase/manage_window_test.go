package usecase

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/servicestudio/shell/internal/domain/entity"
	"github.com/servicestudio/shell/internal/logging"
)

func TestCreateWindow_SeedsHomeTab(t *testing.T) {
	uc := NewManageWindowsUseCase(newTestIDGen(), "")

	out, err := uc.Create(context.Background(), CreateWindowInput{Kind: entity.WindowSatellite})
	require.NoError(t, err)

	assert.Equal(t, entity.WindowID("id1"), out.Window.ID)
	assert.True(t, out.Window.IsSatellite())
	require.Equal(t, 1, out.Window.Tabs.Count())
	assert.Same(t, out.Home, out.Window.Tabs.At(0))
	assert.Equal(t, DefaultHomeCaption, out.Home.Caption)
	assert.False(t, out.Home.IsDraggable())
}

func TestCreateWindow_RequiresIDGenerator(t *testing.T) {
	_, err := NewManageWindowsUseCase(nil, "Home").Create(context.Background(), CreateWindowInput{})
	require.Error(t, err)
}

func TestCreateWindow_LogsWindowID(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	ctx := logging.WithContext(context.Background(), logger)

	out, err := NewManageWindowsUseCase(newTestIDGen(), "Home").Create(ctx, CreateWindowInput{Kind: entity.WindowMain})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"window_id":"`+string(out.Window.ID)+`"`)
	assert.Contains(t, buf.String(), `"kind":"main"`)
}
