package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/servicestudio/shell/internal/infrastructure/config"
)

const reorderScript = `
name = "reorder"

[[window]]
name = "main"
tabs = ["T1", "T2"]

[[step]]
action = "press"
x = 170
y = 10

[[step]]
action = "move"
x = 300
y = 10

[[step]]
action = "release"
x = 300
y = 10
`

const clickScript = `
[[window]]
name = "main"
tabs = ["T1", "T2"]

[[step]]
action = "press"
x = 170
y = 10

[[step]]
action = "release"
x = 170
y = 10
`

func writeScript(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReplayAll_KeepsArgumentOrder(t *testing.T) {
	dir := t.TempDir()
	first := writeScript(t, dir, "reorder.toml", reorderScript)
	second := writeScript(t, dir, "click.toml", clickScript)

	reports, err := replayAll(context.Background(), config.DefaultConfig(), []string{first, second, first})
	require.NoError(t, err)
	require.Len(t, reports, 3)

	assert.Equal(t, "reorder", reports[0].Script)
	assert.Equal(t, second, reports[1].Script, "unnamed scripts are labelled by path")
	assert.Equal(t, "reorder", reports[2].Script)

	require.Len(t, reports[0].Outcomes, 1)
	assert.Equal(t, "reordered", reports[0].Outcomes[0].Kind)
	assert.Equal(t, "T1", reports[0].Outcomes[0].Tab)
	assert.Equal(t, []string{"Home", "T2", "T1"}, reports[0].Windows[0].Tabs)

	require.Len(t, reports[1].Outcomes, 1)
	assert.Equal(t, "abandoned", reports[1].Outcomes[0].Kind)
}

func TestReplayAll_ReportsBadScript(t *testing.T) {
	dir := t.TempDir()
	good := writeScript(t, dir, "good.toml", reorderScript)
	bad := writeScript(t, dir, "bad.toml", "[[step]]\naction = \"hover\"\n")

	_, err := replayAll(context.Background(), config.DefaultConfig(), []string{good, bad})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.toml")
}

func TestRootCommand_ReplayPrintsReport(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "reorder.toml", reorderScript)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--config-dir", filepath.Join(dir, "config"), "replay", script})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		configDir = ""
	})

	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, out.String(), "reorder")
	assert.Contains(t, out.String(), "reordered")
	assert.Contains(t, out.String(), "to slot 2")
	_, err := os.Stat(filepath.Join(dir, "config", "config.toml"))
	assert.NoError(t, err, "default config created on first use")
}
