package cmd

import (
	"context"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/servicestudio/shell/internal/cli"
	"github.com/servicestudio/shell/internal/cli/styles"
	"github.com/servicestudio/shell/internal/infrastructure/config"
	"github.com/servicestudio/shell/internal/logging"
)

var replayCmd = &cobra.Command{
	Use:   "replay <script.toml>...",
	Short: "Replay scripted gestures and print the resulting layout",
	Long: `Replay gesture scripts against a fresh shell each and print, per script,
how every gesture ended and the windows left open, front to back.

A script declares the windows open at the start, the first being the main
window, then pointer steps in screen coordinates:

  name = "reorder"

  [[window]]
  name = "main"
  tabs = ["Flow 1", "Flow 2"]

  [[step]]
  action = "press"     # press, move, release, leave, capture-lost,
  x = 170              # close-window or cancel
  y = 10

Scripts run concurrently; reports print in argument order.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := logging.WithComponent(app.Ctx(), "replay")

	reports, err := replayAll(ctx, app.Config, args)
	if err != nil {
		return err
	}

	renderer := styles.NewReportRenderer(app.Theme)
	for _, rep := range reports {
		fmt.Fprint(cmd.OutOrStdout(), renderer.Render(rep))
	}
	return nil
}

// replayAll runs each script on its own shell. The first failure cancels the
// scripts not started yet.
func replayAll(ctx context.Context, cfg *config.Config, paths []string) ([]styles.Report, error) {
	reports := make([]styles.Report, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			script, err := cli.LoadScript(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			if script.Name == "" {
				script.Name = path
			}
			res, err := cli.Replay(ctx, cfg, script)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			reports[i] = res.Report()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
