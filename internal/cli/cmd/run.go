package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/servicestudio/shell/internal/bootstrap"
	"github.com/servicestudio/shell/internal/infrastructure/config"
	"github.com/servicestudio/shell/internal/logging"
	"github.com/servicestudio/shell/internal/ui/ghost"
	"github.com/servicestudio/shell/internal/ui/terminal"
)

var runWatch bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the shell in the terminal",
	Long: `Open the shell in the terminal with the main window.

Drag tabs with the mouse: inside the strip to reorder, onto another window
to move, anywhere else to detach into a new window. Logs go to the log file
since the terminal is in use.

Keys:
  n    new tab in the front window
  w    new window
  x    close the front window
  esc  cancel the drag
  ?    toggle help
  q    quit`,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&runWatch, "watch", true, "apply config file changes while running")
}

func runShell(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := logging.WithComponent(app.Ctx(), "run")
	log := logging.FromContext(ctx)

	layout := terminal.CellLayout(bootstrap.LayoutFromConfig(app.Config), terminal.DefaultCell)
	shell, err := bootstrap.NewShell(bootstrap.ShellInput{
		Ctx:    ctx,
		Config: app.Config,
		Layout: &layout,
	})
	if err != nil {
		return fmt.Errorf("start shell: %w", err)
	}

	model := terminal.New(ctx, terminal.Options{
		Screen:  shell.Screen,
		Windows: shell.Windows,
		Machine: shell.Machine,
		Cell:    terminal.DefaultCell,
		Styles:  hostStyles(app.Config),
		Keys:    terminal.DefaultKeyMap(),
	})
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)

	if runWatch && app.Manager != nil && app.LoadErr == nil {
		app.Manager.OnConfigChange(func(cfg *config.Config) {
			program.Send(terminal.ReconfigureMsg{
				Apply:  func() error { return shell.ApplyConfig(cfg) },
				Styles: hostStyles(cfg),
			})
		})
		if err := app.Manager.Watch(); err != nil {
			log.Warn().Err(err).Msg("config watch not started")
		}
	}

	log.Info().Str("main_window", string(shell.Main.ID())).Msg("terminal shell started")
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run terminal: %w", err)
	}
	log.Info().Msg("terminal shell stopped")
	return nil
}

func hostStyles(cfg *config.Config) terminal.Styles {
	p := cfg.Ghost.Palette()
	return terminal.NewStyles(terminal.DefaultPalette(), ghost.Palette{Background: p.Background, Border: p.Border})
}
