package config

// Config is the shell configuration persisted as config.toml.
type Config struct {
	Drag    DragConfig    `mapstructure:"drag" toml:"drag" json:"drag"`
	Ghost   GhostConfig   `mapstructure:"ghost" toml:"ghost" json:"ghost"`
	Layout  LayoutConfig  `mapstructure:"layout" toml:"layout" json:"layout"`
	Logging LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging"`
}

// HitTestOrder selects how overlapping windows are enumerated during hit-testing.
type HitTestOrder string

const (
	// HitTestZOrder enumerates windows front to back.
	HitTestZOrder HitTestOrder = "zorder"
	// HitTestEnumeration enumerates windows in creation order.
	HitTestEnumeration HitTestOrder = "enumeration"
)

// DragConfig tunes the drag gesture.
type DragConfig struct {
	// Epsilon is the dead zone, in device units, around the press point and
	// around the tab region during hit-testing.
	Epsilon int `mapstructure:"epsilon" toml:"epsilon" json:"epsilon" jsonschema:"minimum=0,default=11"`
	// CornerAdjust shifts the tab ghost left so the pointer sits inside it.
	CornerAdjust int          `mapstructure:"corner_adjust" toml:"corner_adjust" json:"corner_adjust" jsonschema:"minimum=0,default=10"`
	HitTestOrder HitTestOrder `mapstructure:"hit_test_order" toml:"hit_test_order" json:"hit_test_order" jsonschema:"enum=zorder,enum=enumeration,default=zorder"`
}

// GhostTheme picks the tab ghost palette.
type GhostTheme string

const (
	GhostThemeLight GhostTheme = "light"
	GhostThemeDark  GhostTheme = "dark"
)

// PaletteConfig colors the tab ghost.
type PaletteConfig struct {
	Background string `mapstructure:"background" toml:"background" json:"background"`
	Border     string `mapstructure:"border" toml:"border" json:"border"`
}

// GhostConfig controls the drag previews.
type GhostConfig struct {
	Theme              GhostTheme `mapstructure:"theme" toml:"theme" json:"theme" jsonschema:"enum=light,enum=dark,default=light"`
	FacsimileShrinkage int        `mapstructure:"facsimile_shrinkage" toml:"facsimile_shrinkage" json:"facsimile_shrinkage" jsonschema:"minimum=1,default=3"`
	// FacsimileAspect is height/width of the facsimile image.
	FacsimileAspect float64       `mapstructure:"facsimile_aspect" toml:"facsimile_aspect" json:"facsimile_aspect" jsonschema:"exclusiveMinimum=0,default=0.625"`
	LightPalette    PaletteConfig `mapstructure:"light_palette" toml:"light_palette" json:"light_palette"`
	DarkPalette     PaletteConfig `mapstructure:"dark_palette" toml:"dark_palette" json:"dark_palette"`
}

// Palette returns the palette of the configured theme.
func (g GhostConfig) Palette() PaletteConfig {
	if g.Theme == GhostThemeDark {
		return g.DarkPalette
	}
	return g.LightPalette
}

// LayoutConfig sizes windows and tab strips of the built-in backends.
type LayoutConfig struct {
	TabWidth         int    `mapstructure:"tab_width" toml:"tab_width" json:"tab_width" jsonschema:"minimum=1"`
	TabHeight        int    `mapstructure:"tab_height" toml:"tab_height" json:"tab_height" jsonschema:"minimum=1"`
	TabMinWidth      int    `mapstructure:"tab_min_width" toml:"tab_min_width" json:"tab_min_width" jsonschema:"minimum=1"`
	HomeCaption      string `mapstructure:"home_caption" toml:"home_caption" json:"home_caption"`
	HeaderImageWidth int    `mapstructure:"header_image_width" toml:"header_image_width" json:"header_image_width" jsonschema:"minimum=0"`
	WindowWidth      int    `mapstructure:"window_width" toml:"window_width" json:"window_width" jsonschema:"minimum=1"`
	WindowHeight     int    `mapstructure:"window_height" toml:"window_height" json:"window_height" jsonschema:"minimum=1"`
	WindowMinWidth   int    `mapstructure:"window_min_width" toml:"window_min_width" json:"window_min_width" jsonschema:"minimum=1"`
	WindowMinHeight  int    `mapstructure:"window_min_height" toml:"window_min_height" json:"window_min_height" jsonschema:"minimum=1"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	// File receives log output instead of stderr. Empty means stderr, except
	// for the terminal host which falls back to the state directory.
	File string `mapstructure:"file" toml:"file" json:"file"`
}
