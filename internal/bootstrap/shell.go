// Package bootstrap wires the shell components: windows, tab relocation and the
// drag machine, over the in-memory backend.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/servicestudio/shell/internal/application/usecase"
	"github.com/servicestudio/shell/internal/domain/entity"
	"github.com/servicestudio/shell/internal/infrastructure/config"
	"github.com/servicestudio/shell/internal/infrastructure/headless"
	"github.com/servicestudio/shell/internal/logging"
	"github.com/servicestudio/shell/internal/ui/controller"
	"github.com/servicestudio/shell/internal/ui/dragdrop"
	"github.com/servicestudio/shell/internal/ui/ghost"
	"github.com/servicestudio/shell/internal/ui/registry"
)

// Shell holds the assembled components.
type Shell struct {
	Config   *config.Config
	Screen   *headless.Screen
	Registry *registry.Registry
	Windows  *controller.WindowController
	Machine  *dragdrop.Machine
	// Main is the startup window.
	Main *registry.Window
}

// ShellInput holds the inputs of NewShell.
type ShellInput struct {
	Ctx    context.Context
	Config *config.Config
	// Layout overrides the geometry derived from Config when non-nil.
	Layout *headless.Layout
	// IDGenerator defaults to random UUIDs.
	IDGenerator usecase.IDGenerator
}

// NewShell builds the shell and opens the main window.
func NewShell(input ShellInput) (*Shell, error) {
	ctx := input.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := input.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	tuning, err := TuningFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	layout := LayoutFromConfig(cfg)
	if input.Layout != nil {
		layout = *input.Layout
	}
	ids := input.IDGenerator
	if ids == nil {
		ids = uuid.NewString
	}

	screen := headless.NewScreen(layout)
	reg := registry.New()

	windowsUC := usecase.NewManageWindowsUseCase(ids, cfg.Layout.HomeCaption)
	tabsUC := usecase.NewManageTabsUseCase(ids)
	relocateUC := usecase.NewRelocateTabsUseCase(windowsUC)

	windows := controller.NewWindowController(ctx, reg, screen, windowsUC, tabsUC, relocateUC)
	machine := dragdrop.NewMachine(ctx, reg, windows, screen, tuning)
	windows.SetOnWindowClosing(machine.OnWindowClosed)

	main, err := windows.OpenWindow(entity.WindowMain)
	if err != nil {
		return nil, fmt.Errorf("open main window: %w", err)
	}

	logging.FromContext(ctx).Debug().
		Str("main_window", string(main.ID())).
		Int("epsilon", tuning.Epsilon).
		Str("hit_test_order", tuning.Order.String()).
		Msg("shell ready")

	return &Shell{
		Config:   cfg,
		Screen:   screen,
		Registry: reg,
		Windows:  windows,
		Machine:  machine,
		Main:     main,
	}, nil
}

// ApplyConfig retunes the drag machine. A gesture in progress is not affected.
func (s *Shell) ApplyConfig(cfg *config.Config) error {
	tuning, err := TuningFromConfig(cfg)
	if err != nil {
		return err
	}
	s.Machine.SetTuning(tuning)
	s.Config = cfg
	return nil
}

// TuningFromConfig converts the drag and ghost sections into machine tuning.
func TuningFromConfig(cfg *config.Config) (dragdrop.Tuning, error) {
	order, err := registry.ParseHitTestOrder(string(cfg.Drag.HitTestOrder))
	if err != nil {
		return dragdrop.Tuning{}, err
	}
	palette := cfg.Ghost.Palette()
	return dragdrop.Tuning{
		Epsilon:      cfg.Drag.Epsilon,
		CornerAdjust: cfg.Drag.CornerAdjust,
		Order:        order,
		Ghost: ghost.Config{
			FacsimileShrinkage: cfg.Ghost.FacsimileShrinkage,
			FacsimileAspect:    cfg.Ghost.FacsimileAspect,
			Palette:            ghost.Palette{Background: palette.Background, Border: palette.Border},
		},
	}, nil
}

// LayoutFromConfig converts the layout section into backend geometry.
func LayoutFromConfig(cfg *config.Config) headless.Layout {
	layout := headless.DefaultLayout()
	layout.TabWidth = cfg.Layout.TabWidth
	layout.TabHeight = cfg.Layout.TabHeight
	layout.TabMinWidth = cfg.Layout.TabMinWidth
	layout.HeaderImageWidth = cfg.Layout.HeaderImageWidth
	layout.WindowSize = entity.Size{W: cfg.Layout.WindowWidth, H: cfg.Layout.WindowHeight}
	layout.MinSize = entity.Size{W: cfg.Layout.WindowMinWidth, H: cfg.Layout.WindowMinHeight}
	return layout
}

// LoggingFromConfig converts the logging section into logger settings.
func LoggingFromConfig(cfg *config.Config) logging.Config {
	out := logging.DefaultConfig()
	out.Level = logging.ParseLevel(cfg.Logging.Level)
	if cfg.Logging.Format != "" {
		out.Format = cfg.Logging.Format
	}
	out.File = cfg.Logging.File
	return out
}
