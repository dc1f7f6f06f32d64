// Package ghost builds the floating previews shown while a tab is dragged:
// a tab-shaped label, or a shrunk facsimile of the whole window.
// It holds no drag logic; all geometry is supplied by the caller.
package ghost

import "github.com/servicestudio/shell/internal/domain/entity"

// Tab proxy layout, in device units.
const (
	captionReserve     = 50 // close affordance plus caption margins
	captionMarginLeft  = 16
	captionMarginRight = 6
	captionFontSize    = 12
	closeCrossSize     = 8
	closeCanvasWidth   = 20
	closeCanvasHeight  = 10
	closeCanvasTop     = 12
	topBorderHeight    = 1
)

// Palette colors the tab proxy for one theme.
type Palette struct {
	Background string
	Border     string
}

// Config holds the builder settings.
type Config struct {
	// FacsimileShrinkage divides the window width to size the facsimile.
	FacsimileShrinkage int
	// FacsimileAspect is height/width of the facsimile artwork.
	FacsimileAspect float64
	Palette         Palette
	// PanelTopMargin compensates platform chrome above the tab proxy.
	PanelTopMargin int
}

// DefaultConfig returns the light theme with the stock shrinkage.
func DefaultConfig() Config {
	return Config{
		FacsimileShrinkage: 3,
		FacsimileAspect:    0.625,
		Palette:            LightPalette(),
	}
}

// LightPalette is the light theme tab palette.
func LightPalette() Palette {
	return Palette{Background: "#F7F8FA", Border: "#ffe0e2e4"}
}

// DarkPalette is the dark theme tab palette.
func DarkPalette() Palette {
	return Palette{Background: "#202327", Border: "#ff3b3d41"}
}

// Line is a stroke of the close cross.
type Line struct {
	From, To entity.Point
}

// TabProxy is the tab-shaped ghost: caption, close cross, top/left/right border.
type TabProxy struct {
	Caption    string
	Width      int
	Height     int
	Foreground string
	Palette    Palette

	CaptionWidth  int
	CaptionMargin [2]int // left, right
	FontSize      int
	BodyHeight    int // height minus the top border pixel
	CloseCanvas   entity.Rect
	CloseCross    [2]Line
	TopMargin     int
}

// GhostSize implements port.GhostContent.
func (t TabProxy) GhostSize() entity.Size {
	return entity.Size{W: t.Width, H: t.Height}
}

// Facsimile is the shrunk stand-in for a whole window.
type Facsimile struct {
	Width  int
	Height int
}

// GhostSize implements port.GhostContent.
func (f Facsimile) GhostSize() entity.Size {
	return entity.Size{W: f.Width, H: f.Height}
}

// Builder produces ghost contents from measured geometry.
type Builder struct {
	cfg Config
}

// NewBuilder creates a builder. Zero shrinkage or aspect fall back to the defaults.
func NewBuilder(cfg Config) *Builder {
	defaults := DefaultConfig()
	if cfg.FacsimileShrinkage <= 0 {
		cfg.FacsimileShrinkage = defaults.FacsimileShrinkage
	}
	if cfg.FacsimileAspect <= 0 {
		cfg.FacsimileAspect = defaults.FacsimileAspect
	}
	if cfg.Palette == (Palette{}) {
		cfg.Palette = defaults.Palette
	}
	return &Builder{cfg: cfg}
}

// BuildTab sizes a tab proxy to the original tab.
func (b *Builder) BuildTab(caption string, width, height int, foreground string) TabProxy {
	captionWidth := width - captionReserve
	if captionWidth < 0 {
		captionWidth = 0
	}
	bodyHeight := height - topBorderHeight
	if bodyHeight < 0 {
		bodyHeight = 0
	}
	return TabProxy{
		Caption:       caption,
		Width:         width,
		Height:        height,
		Foreground:    foreground,
		Palette:       b.cfg.Palette,
		CaptionWidth:  captionWidth,
		CaptionMargin: [2]int{captionMarginLeft, captionMarginRight},
		FontSize:      captionFontSize,
		BodyHeight:    bodyHeight,
		CloseCanvas:   entity.Rect{X: captionMarginLeft + captionWidth + captionMarginRight, Y: closeCanvasTop, W: closeCanvasWidth, H: closeCanvasHeight},
		CloseCross: [2]Line{
			{From: entity.Point{X: 0, Y: 0}, To: entity.Point{X: closeCrossSize, Y: closeCrossSize}},
			{From: entity.Point{X: closeCrossSize, Y: 0}, To: entity.Point{X: 0, Y: closeCrossSize}},
		},
		TopMargin: b.cfg.PanelTopMargin,
	}
}

// BuildFacsimile sizes the window facsimile. An unmeasured (zero) width or one
// below the minimum uses the minimum width.
func (b *Builder) BuildFacsimile(windowWidth, minWidth int) Facsimile {
	width := FacsimileWidth(windowWidth, minWidth, b.cfg.FacsimileShrinkage)
	return Facsimile{
		Width:  width,
		Height: int(float64(width) * b.cfg.FacsimileAspect),
	}
}

// FacsimileWidth shrinks the current width, or the minimum width when the current
// one is unset or smaller.
func FacsimileWidth(current, minimum, shrinkage int) int {
	if shrinkage <= 0 {
		shrinkage = 1
	}
	if current <= 0 || current < minimum {
		return minimum / shrinkage
	}
	return current / shrinkage
}
