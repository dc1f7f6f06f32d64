package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/servicestudio/shell/internal/infrastructure/config"
)

func TestNewApp_LoadsConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[drag]\nepsilon = 6\n"), 0o600))

	app, err := NewApp(AppOptions{ConfigDir: dir})
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	assert.NoError(t, app.LoadErr)
	require.NotNil(t, app.Manager)
	assert.Equal(t, 6, app.Config.Drag.Epsilon)
	assert.NotNil(t, app.Theme)
	assert.NotNil(t, app.Ctx())
}

func TestNewApp_FallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[drag]\nepsilon = -3\n"), 0o600))

	app, err := NewApp(AppOptions{ConfigDir: dir})
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	assert.Error(t, app.LoadErr)
	assert.Equal(t, config.DefaultConfig(), app.Config)
}

func TestNewApp_LogToFile(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "logs", "run.log")
	content := "[logging]\nlevel = \"debug\"\nformat = \"json\"\nfile = \"" + filepath.ToSlash(logFile) + "\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o600))

	app, err := NewApp(AppOptions{ConfigDir: dir, LogToFile: true})
	require.NoError(t, err)

	require.NoError(t, app.Close())
	_, err = os.Stat(logFile)
	assert.NoError(t, err)
}
