package ghost_test

import (
	"testing"

	"github.com/servicestudio/shell/internal/domain/entity"
	"github.com/servicestudio/shell/internal/ui/ghost"
	"github.com/stretchr/testify/assert"
)

func TestBuildTab_SizesToOriginalTab(t *testing.T) {
	b := ghost.NewBuilder(ghost.DefaultConfig())

	proxy := b.BuildTab("Module A", 180, 32, "#333333")

	assert.Equal(t, "Module A", proxy.Caption)
	assert.Equal(t, entity.Size{W: 180, H: 32}, proxy.GhostSize())
	assert.Equal(t, 130, proxy.CaptionWidth)
	assert.Equal(t, 31, proxy.BodyHeight)
	assert.Equal(t, "#333333", proxy.Foreground)
	assert.Equal(t, ghost.LightPalette(), proxy.Palette)
	assert.Equal(t, entity.Point{X: 8, Y: 8}, proxy.CloseCross[0].To)
}

func TestBuildTab_TinyTabDoesNotGoNegative(t *testing.T) {
	proxy := ghost.NewBuilder(ghost.DefaultConfig()).BuildTab("x", 20, 0, "")

	assert.Equal(t, 0, proxy.CaptionWidth)
	assert.Equal(t, 0, proxy.BodyHeight)
}

func TestBuildFacsimile(t *testing.T) {
	tests := []struct {
		name      string
		width     int
		minWidth  int
		wantWidth int
	}{
		{"uses current width", 1200, 600, 400},
		{"unmeasured width falls back to min", 0, 600, 200},
		{"width below min falls back to min", 300, 600, 200},
	}

	b := ghost.NewBuilder(ghost.Config{FacsimileShrinkage: 3, FacsimileAspect: 0.5})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := b.BuildFacsimile(tt.width, tt.minWidth)

			assert.Equal(t, tt.wantWidth, f.Width)
			assert.Equal(t, tt.wantWidth/2, f.Height)
		})
	}
}

func TestNewBuilder_FillsDefaults(t *testing.T) {
	f := ghost.NewBuilder(ghost.Config{}).BuildFacsimile(900, 0)

	assert.Equal(t, 300, f.Width)
	assert.Equal(t, 187, f.Height)
}
