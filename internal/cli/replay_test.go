package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/servicestudio/shell/internal/domain/entity"
	"github.com/servicestudio/shell/internal/ui/dragdrop"
)

// Default layout: main at the origin with [Home 40..160, T1 160..280, T2 280..400].
const twoWindows = `
name = "two windows"

[[window]]
name = "main"
tabs = ["T1", "T2"]

[[window]]
name = "side"
tabs = ["B1"]
at = [1200, 0]
`

func replayScript(t *testing.T, src string) *ReplayResult {
	t.Helper()
	script, err := ParseScript([]byte(src))
	require.NoError(t, err)
	res, err := Replay(context.Background(), nil, script)
	require.NoError(t, err)
	return res
}

func layoutOf(t *testing.T, res *ReplayResult, name string) WindowLayout {
	t.Helper()
	for _, w := range res.Windows {
		if w.Name == name {
			return w
		}
	}
	require.Failf(t, "window not in result", "%s", name)
	return WindowLayout{}
}

func TestReplay_NoSteps(t *testing.T) {
	res := replayScript(t, twoWindows)

	assert.Equal(t, "two windows", res.Script)
	assert.Empty(t, res.Outcomes)
	require.Len(t, res.Windows, 2)
	assert.Equal(t, "side", res.Windows[0].Name, "last opened is frontmost")

	main := layoutOf(t, res, "main")
	assert.Equal(t, entity.WindowMain, main.Kind)
	assert.Equal(t, []string{"Home", "T1", "T2"}, main.Tabs)
	assert.Equal(t, entity.Point{X: 0, Y: 0}, main.Bounds.TopLeft())

	side := layoutOf(t, res, "side")
	assert.Equal(t, entity.WindowSatellite, side.Kind)
	assert.Equal(t, []string{"Home", "B1"}, side.Tabs)
	assert.Equal(t, entity.Point{X: 1200, Y: 0}, side.Bounds.TopLeft())
}

func TestReplay_Reorder(t *testing.T) {
	res := replayScript(t, twoWindows+`
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
`)

	require.Len(t, res.Outcomes, 1)
	assert.Equal(t, dragdrop.OutcomeReordered, res.Outcomes[0].Kind)
	assert.Equal(t, 2, res.Outcomes[0].Index)
	assert.Equal(t, []string{"Home", "T2", "T1"}, layoutOf(t, res, "main").Tabs)
	assert.Zero(t, res.Skipped)
}

func TestReplay_MoveToOtherWindow(t *testing.T) {
	res := replayScript(t, twoWindows+`
[[step]]
action = "press"
x = 170
y = 10

[[step]]
action = "move"
x = 1400
y = 10

[[step]]
action = "release"
x = 1400
y = 10
`)

	require.Len(t, res.Outcomes, 1)
	o := res.Outcomes[0]
	assert.Equal(t, dragdrop.OutcomeMoved, o.Kind)
	assert.Equal(t, "side", res.WindowName(o.Window))
	assert.Equal(t, []string{"Home", "T2"}, layoutOf(t, res, "main").Tabs)

	side := layoutOf(t, res, "side")
	assert.Equal(t, []string{"Home", "T1", "B1"}, side.Tabs)
	assert.Equal(t, "T1", side.Active)
}

func TestReplay_Detach(t *testing.T) {
	res := replayScript(t, twoWindows+`
[[step]]
action = "press"
x = 170
y = 10

[[step]]
action = "move"
x = 1100
y = 900

[[step]]
action = "release"
x = 1100
y = 900
`)

	require.Len(t, res.Outcomes, 1)
	assert.Equal(t, dragdrop.OutcomeDetached, res.Outcomes[0].Kind)
	require.Len(t, res.Windows, 3)

	detached := res.Windows[0]
	assert.Equal(t, "detached-1", detached.Name)
	assert.Equal(t, entity.WindowSatellite, detached.Kind)
	assert.Equal(t, []string{"Home", "T1"}, detached.Tabs)
	assert.Equal(t, entity.Point{X: 1090, Y: 890}, detached.Bounds.TopLeft())
	assert.Equal(t, "detached-1", res.WindowName(res.Outcomes[0].Window))
}

func TestReplay_CaptureLostRestores(t *testing.T) {
	res := replayScript(t, twoWindows+`
[[step]]
action = "press"
x = 170
y = 10

[[step]]
action = "move"
x = 300
y = 10

[[step]]
action = "capture-lost"
`)

	require.Len(t, res.Outcomes, 1)
	assert.Equal(t, dragdrop.OutcomeCancelled, res.Outcomes[0].Kind)
	assert.Equal(t, "pointer capture lost", res.Outcomes[0].Reason)
	assert.Equal(t, []string{"Home", "T1", "T2"}, layoutOf(t, res, "main").Tabs)
}

func TestReplay_UnfinishedGestureIsCancelled(t *testing.T) {
	res := replayScript(t, twoWindows+`
[[step]]
action = "press"
x = 170
y = 10

[[step]]
action = "move"
x = 300
y = 10
`)

	require.Len(t, res.Outcomes, 1)
	assert.Equal(t, dragdrop.OutcomeCancelled, res.Outcomes[0].Kind)
	assert.Equal(t, []string{"Home", "T1", "T2"}, layoutOf(t, res, "main").Tabs)
}

func TestReplay_CloseWindowAndSkippedSteps(t *testing.T) {
	res := replayScript(t, twoWindows+`
[[step]]
action = "close-window"
window = "side"

[[step]]
action = "press"
x = 5000
y = 5000

[[step]]
action = "close-window"
window = "side"
`)

	require.Len(t, res.Windows, 1)
	assert.Equal(t, "main", res.Windows[0].Name)
	assert.Equal(t, 2, res.Skipped)
}

func TestReplay_MiddleClickClosesTab(t *testing.T) {
	res := replayScript(t, twoWindows+`
[[step]]
action = "press"
x = 170
y = 10
button = "middle"
`)

	assert.Empty(t, res.Outcomes)
	assert.Equal(t, []string{"Home", "T2"}, layoutOf(t, res, "main").Tabs)
}

func TestParseScript_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{
			name:    "no windows",
			src:     `name = "empty"`,
			wantErr: "at least one [[window]] is required",
		},
		{
			name: "duplicate window",
			src: `
[[window]]
name = "a"
[[window]]
name = "a"
`,
			wantErr: `window "a" is declared twice`,
		},
		{
			name: "bad position",
			src: `
[[window]]
name = "a"
at = [1]
`,
			wantErr: "at must be [x, y]",
		},
		{
			name: "unknown action",
			src: `
[[window]]
name = "a"
[[step]]
action = "hover"
`,
			wantErr: `unknown action "hover"`,
		},
		{
			name: "unknown button",
			src: `
[[window]]
name = "a"
[[step]]
action = "press"
button = "fourth"
`,
			wantErr: `unknown button "fourth"`,
		},
		{
			name: "close without window",
			src: `
[[window]]
name = "a"
[[step]]
action = "close-window"
`,
			wantErr: "close-window needs a window",
		},
		{
			name:    "malformed toml",
			src:     "[[window]\nname = 1",
			wantErr: "parse script",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScript([]byte(tt.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gesture.toml")
	require.NoError(t, os.WriteFile(path, []byte(twoWindows), 0o600))

	script, err := LoadScript(path)
	require.NoError(t, err)
	assert.Len(t, script.Windows, 2)
	assert.Equal(t, []int{1200, 0}, script.Windows[1].At)

	_, err = LoadScript(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
