// Package cmd provides Cobra CLI commands for servicestudio.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/servicestudio/shell/internal/cli"
	"github.com/servicestudio/shell/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	configDir string
	rootCmd   = &cobra.Command{
		Use:   "servicestudio",
		Short: "Tab drag-and-drop shell for ServiceStudio windows",
		Long: `ServiceStudio shell - tabbed aggregator windows with drag-and-drop.

Tabs can be reordered inside a window, moved to another window, or dragged
out to become a window of their own. While dragging, a ghost preview follows
the pointer.

Use 'servicestudio run' to open the shell in the terminal, or
'servicestudio replay' to run scripted gestures and print the resulting
layout.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs", "version":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.AppOptions{
				ConfigDir: configDir,
				LogToFile: cmd.Name() == runCmd.Name(),
			})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default: XDG config home)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
