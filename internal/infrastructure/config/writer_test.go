package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortTOMLSections(t *testing.T) {
	input := `title = "x"

[layout]
  tab_width = 120

[drag]
  epsilon = 11

  [ghost.light_palette]
    background = "#F7F8FA"

[ghost]
  theme = "light"
`

	got := sortTOMLSections(input)

	headers := []string{}
	for _, line := range strings.Split(got, "\n") {
		if match := tomlHeaderRegex.FindStringSubmatch(line); match != nil {
			headers = append(headers, match[1])
		}
	}
	assert.Equal(t, []string{"drag", "ghost", "ghost.light_palette", "layout"}, headers)
	assert.True(t, strings.HasPrefix(got, `title = "x"`))
	assert.True(t, strings.HasSuffix(got, "tab_width = 120\n"))
}

func TestWriteConfigOrdered_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), configName)
	cfg := DefaultConfig()
	cfg.Ghost.Theme = GhostThemeDark
	cfg.Drag.HitTestOrder = HitTestEnumeration

	require.NoError(t, WriteConfigOrdered(cfg, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	decoded := &Config{}
	require.NoError(t, toml.Unmarshal(data, decoded))
	assert.Equal(t, cfg, decoded)

	text := string(data)
	assert.Less(t, strings.Index(text, "[drag]"), strings.Index(text, "[ghost]"))
	assert.Less(t, strings.Index(text, "[layout]"), strings.Index(text, "[logging]"))
}

func TestWriteConfigOrdered_NilConfig(t *testing.T) {
	assert.Error(t, WriteConfigOrdered(nil, filepath.Join(t.TempDir(), configName)))
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "ServiceStudio Shell Configuration", doc["title"])

	text := string(data)
	for _, key := range []string{"hit_test_order", "corner_adjust", "facsimile_shrinkage", "tab_min_width"} {
		assert.Contains(t, text, key)
	}
}
