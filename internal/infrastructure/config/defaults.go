package config

const (
	defaultEpsilon            = 11
	defaultCornerAdjust       = 10
	defaultFacsimileShrinkage = 3
	defaultFacsimileAspect    = 0.625

	defaultTabWidth         = 120
	defaultTabHeight        = 30
	defaultTabMinWidth      = 60
	defaultHeaderImageWidth = 40
	defaultWindowWidth      = 1024
	defaultWindowHeight     = 768
	defaultWindowMinWidth   = 640
	defaultWindowMinHeight  = 480
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Drag: DragConfig{
			Epsilon:      defaultEpsilon,
			CornerAdjust: defaultCornerAdjust,
			HitTestOrder: HitTestZOrder,
		},
		Ghost: GhostConfig{
			Theme:              GhostThemeLight,
			FacsimileShrinkage: defaultFacsimileShrinkage,
			FacsimileAspect:    defaultFacsimileAspect,
			LightPalette:       PaletteConfig{Background: "#F7F8FA", Border: "#ffe0e2e4"},
			DarkPalette:        PaletteConfig{Background: "#202327", Border: "#ff3b3d41"},
		},
		Layout: LayoutConfig{
			TabWidth:         defaultTabWidth,
			TabHeight:        defaultTabHeight,
			TabMinWidth:      defaultTabMinWidth,
			HomeCaption:      "Home",
			HeaderImageWidth: defaultHeaderImageWidth,
			WindowWidth:      defaultWindowWidth,
			WindowHeight:     defaultWindowHeight,
			WindowMinWidth:   defaultWindowMinWidth,
			WindowMinHeight:  defaultWindowMinHeight,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setDragDefaults(defaults)
	m.setGhostDefaults(defaults)
	m.setLayoutDefaults(defaults)
	m.setLoggingDefaults(defaults)
}

func (m *Manager) setDragDefaults(defaults *Config) {
	m.viper.SetDefault("drag.epsilon", defaults.Drag.Epsilon)
	m.viper.SetDefault("drag.corner_adjust", defaults.Drag.CornerAdjust)
	m.viper.SetDefault("drag.hit_test_order", string(defaults.Drag.HitTestOrder))
}

func (m *Manager) setGhostDefaults(defaults *Config) {
	m.viper.SetDefault("ghost.theme", string(defaults.Ghost.Theme))
	m.viper.SetDefault("ghost.facsimile_shrinkage", defaults.Ghost.FacsimileShrinkage)
	m.viper.SetDefault("ghost.facsimile_aspect", defaults.Ghost.FacsimileAspect)
	m.viper.SetDefault("ghost.light_palette.background", defaults.Ghost.LightPalette.Background)
	m.viper.SetDefault("ghost.light_palette.border", defaults.Ghost.LightPalette.Border)
	m.viper.SetDefault("ghost.dark_palette.background", defaults.Ghost.DarkPalette.Background)
	m.viper.SetDefault("ghost.dark_palette.border", defaults.Ghost.DarkPalette.Border)
}

func (m *Manager) setLayoutDefaults(defaults *Config) {
	m.viper.SetDefault("layout.tab_width", defaults.Layout.TabWidth)
	m.viper.SetDefault("layout.tab_height", defaults.Layout.TabHeight)
	m.viper.SetDefault("layout.tab_min_width", defaults.Layout.TabMinWidth)
	m.viper.SetDefault("layout.home_caption", defaults.Layout.HomeCaption)
	m.viper.SetDefault("layout.header_image_width", defaults.Layout.HeaderImageWidth)
	m.viper.SetDefault("layout.window_width", defaults.Layout.WindowWidth)
	m.viper.SetDefault("layout.window_height", defaults.Layout.WindowHeight)
	m.viper.SetDefault("layout.window_min_width", defaults.Layout.WindowMinWidth)
	m.viper.SetDefault("layout.window_min_height", defaults.Layout.WindowMinHeight)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.file", defaults.Logging.File)
}
