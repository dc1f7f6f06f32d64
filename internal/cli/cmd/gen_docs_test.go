package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRoot(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		genDocsOutputDir = ""
		genDocsFormat = "man"
	})
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestGenDocs_Markdown(t *testing.T) {
	dir := t.TempDir()

	out := runRoot(t, "gen-docs", "--format", "markdown", "--output", dir)

	assert.Contains(t, out, "Generated markdown docs")
	for _, name := range []string{"servicestudio.md", "servicestudio_replay.md", "servicestudio_config_schema.md"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
	_, err := os.Stat(filepath.Join(dir, "servicestudio_gen-docs.md"))
	assert.True(t, os.IsNotExist(err), "hidden command stays out of the docs")
}

func TestGenDocs_ManPagesAreReproducible(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()

	runRoot(t, "gen-docs", "-o", first)
	runRoot(t, "gen-docs", "-o", second)

	a, err := os.ReadFile(filepath.Join(first, "servicestudio-replay.1"))
	require.NoError(t, err)
	b, err := os.ReadFile(filepath.Join(second, "servicestudio-replay.1"))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenDocs_RejectsUnknownFormat(t *testing.T) {
	rootCmd.SetArgs([]string{"gen-docs", "-f", "html", "-o", t.TempDir()})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		genDocsOutputDir = ""
		genDocsFormat = "man"
	})
	assert.Error(t, rootCmd.Execute())
}
