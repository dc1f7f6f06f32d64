package bootstrap_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/servicestudio/shell/internal/bootstrap"
	"github.com/servicestudio/shell/internal/domain/entity"
	"github.com/servicestudio/shell/internal/infrastructure/config"
	"github.com/servicestudio/shell/internal/ui/registry"
)

func TestNewShell_OpensMainWindow(t *testing.T) {
	shell, err := bootstrap.NewShell(bootstrap.ShellInput{Ctx: context.Background()})
	require.NoError(t, err)

	require.NotNil(t, shell.Main)
	assert.Equal(t, entity.WindowMain, shell.Main.Model.Kind)
	assert.True(t, shell.Main.View.IsVisible())
	assert.Equal(t, 1, shell.Registry.Len())

	home := shell.Main.Model.Tabs.At(0)
	require.NotNil(t, home)
	assert.Equal(t, "Home", home.Caption)
	assert.False(t, home.IsDraggable())
}

func TestNewShell_UsesConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Drag.Epsilon = 4
	cfg.Drag.HitTestOrder = config.HitTestEnumeration
	cfg.Layout.HomeCaption = "Start"
	cfg.Layout.TabWidth = 90

	shell, err := bootstrap.NewShell(bootstrap.ShellInput{Config: cfg})
	require.NoError(t, err)

	assert.Equal(t, 4, shell.Machine.Tuning().Epsilon)
	assert.Equal(t, registry.HitTestEnumeration, shell.Machine.Tuning().Order)
	assert.Equal(t, "Start", shell.Main.Model.Tabs.At(0).Caption)
	assert.Equal(t, 90, shell.Screen.Layout().TabWidth)
}

func TestShell_ApplyConfig(t *testing.T) {
	shell, err := bootstrap.NewShell(bootstrap.ShellInput{})
	require.NoError(t, err)

	cfg := config.DefaultConfig()
	cfg.Drag.CornerAdjust = 2
	cfg.Ghost.Theme = config.GhostThemeDark
	require.NoError(t, shell.ApplyConfig(cfg))

	tuning := shell.Machine.Tuning()
	assert.Equal(t, 2, tuning.CornerAdjust)
	assert.Equal(t, "#202327", tuning.Ghost.Palette.Background)

	cfg = config.DefaultConfig()
	cfg.Drag.HitTestOrder = "sideways"
	assert.Error(t, shell.ApplyConfig(cfg))
	assert.Equal(t, 2, shell.Machine.Tuning().CornerAdjust)
}

func TestLayoutFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Layout.WindowWidth = 800
	cfg.Layout.WindowHeight = 600
	cfg.Layout.HeaderImageWidth = 24

	layout := bootstrap.LayoutFromConfig(cfg)

	assert.Equal(t, entity.Size{W: 800, H: 600}, layout.WindowSize)
	assert.Equal(t, entity.Size{W: 640, H: 480}, layout.MinSize)
	assert.Equal(t, 24, layout.HeaderImageWidth)
	assert.Equal(t, 30, layout.TabHeight)
}

func TestLoggingFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Logging.Level = "debug"
	cfg.Logging.Format = "json"
	cfg.Logging.File = "/tmp/servicestudio.log"

	out := bootstrap.LoggingFromConfig(cfg)

	assert.Equal(t, zerolog.DebugLevel, out.Level)
	assert.Equal(t, "json", out.Format)
	assert.Equal(t, "/tmp/servicestudio.log", out.File)
}
