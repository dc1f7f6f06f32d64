// Package cli provides the command-line front end of the shell.
package cli

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/servicestudio/shell/internal/bootstrap"
	"github.com/servicestudio/shell/internal/cli/styles"
	"github.com/servicestudio/shell/internal/domain/build"
	"github.com/servicestudio/shell/internal/infrastructure/config"
	"github.com/servicestudio/shell/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config  *config.Config
	Manager *config.Manager
	Theme   *styles.Theme
	// BuildInfo is set by the root command.
	BuildInfo build.Info
	// LoadErr is the config error that made App fall back to defaults.
	LoadErr error

	ctx       context.Context
	logCloser io.Closer
}

// AppOptions tunes NewApp.
type AppOptions struct {
	// ConfigDir overrides the XDG config directory.
	ConfigDir string
	// LogToFile sends logs to a file instead of stderr, for commands that own
	// the terminal.
	LogToFile bool
}

// NewApp loads the config and sets up logging. A broken config file does not
// stop the CLI: defaults are used and LoadErr is set.
func NewApp(opts AppOptions) (*App, error) {
	mgr, cfg, loadErr := loadConfig(opts.ConfigDir)

	logCfg := bootstrap.LoggingFromConfig(cfg)
	logCfg.TimeFormat = "15:04:05"
	if opts.LogToFile && logCfg.File == "" {
		if path, err := config.GetLogFile(); err == nil {
			logCfg.File = path
		}
	}
	if !opts.LogToFile && logCfg.Level == zerolog.InfoLevel {
		// Info logs would interleave with reports printed on the terminal.
		logCfg.Level = zerolog.WarnLevel
	}

	logger, closer, err := logging.New(logCfg)
	if err != nil {
		return nil, err
	}
	ctx := logging.WithContext(context.Background(), logger)
	if loadErr != nil {
		logger.Warn().Err(loadErr).Msg("config not loaded, using defaults")
	}

	return &App{
		Config:    cfg,
		Manager:   mgr,
		Theme:     styles.NewTheme(cfg),
		LoadErr:   loadErr,
		ctx:       ctx,
		logCloser: closer,
	}, nil
}

// Close releases the log file, if any.
func (a *App) Close() error {
	if a.logCloser != nil {
		return a.logCloser.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

func loadConfig(dir string) (*config.Manager, *config.Config, error) {
	var (
		mgr *config.Manager
		err error
	)
	if dir != "" {
		mgr, err = config.NewManagerWithDir(dir)
	} else {
		mgr, err = config.NewManager()
	}
	if err != nil {
		return nil, config.DefaultConfig(), err
	}
	if err := mgr.Load(); err != nil {
		return mgr, config.DefaultConfig(), err
	}
	return mgr, mgr.Get(), nil
}
