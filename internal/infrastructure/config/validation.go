package config

import (
	"fmt"
	"regexp"
	"strings"
)

var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// validateConfig reports every invalid value at once.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateDrag(config)...)
	validationErrors = append(validationErrors, validateGhost(config)...)
	validationErrors = append(validationErrors, validateLayout(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

// Validate checks a configuration without loading it.
func Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("config is nil")
	}
	return validateConfig(config)
}

func validateDrag(config *Config) []string {
	var validationErrors []string
	if config.Drag.Epsilon < 0 {
		validationErrors = append(validationErrors, "drag.epsilon must be non-negative")
	}
	if config.Drag.CornerAdjust < 0 {
		validationErrors = append(validationErrors, "drag.corner_adjust must be non-negative")
	}
	switch config.Drag.HitTestOrder {
	case HitTestZOrder, HitTestEnumeration:
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"drag.hit_test_order must be %q or %q (got %q)",
			HitTestZOrder, HitTestEnumeration, config.Drag.HitTestOrder))
	}
	return validationErrors
}

func validateGhost(config *Config) []string {
	var validationErrors []string
	switch config.Ghost.Theme {
	case GhostThemeLight, GhostThemeDark:
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"ghost.theme must be %q or %q (got %q)", GhostThemeLight, GhostThemeDark, config.Ghost.Theme))
	}
	if config.Ghost.FacsimileShrinkage < 1 {
		validationErrors = append(validationErrors, "ghost.facsimile_shrinkage must be at least 1")
	}
	if config.Ghost.FacsimileAspect <= 0 {
		validationErrors = append(validationErrors, "ghost.facsimile_aspect must be positive")
	}
	validationErrors = append(validationErrors, validatePalette("ghost.light_palette", config.Ghost.LightPalette)...)
	validationErrors = append(validationErrors, validatePalette("ghost.dark_palette", config.Ghost.DarkPalette)...)
	return validationErrors
}

func validatePalette(name string, palette PaletteConfig) []string {
	var validationErrors []string
	if !hexColorRegex.MatchString(palette.Background) {
		validationErrors = append(validationErrors, fmt.Sprintf("%s.background must be a hex color (got %q)", name, palette.Background))
	}
	if !hexColorRegex.MatchString(palette.Border) {
		validationErrors = append(validationErrors, fmt.Sprintf("%s.border must be a hex color (got %q)", name, palette.Border))
	}
	return validationErrors
}

func validateLayout(config *Config) []string {
	var validationErrors []string
	layout := config.Layout
	positive := []struct {
		key   string
		value int
	}{
		{"layout.tab_width", layout.TabWidth},
		{"layout.tab_height", layout.TabHeight},
		{"layout.tab_min_width", layout.TabMinWidth},
		{"layout.window_width", layout.WindowWidth},
		{"layout.window_height", layout.WindowHeight},
		{"layout.window_min_width", layout.WindowMinWidth},
		{"layout.window_min_height", layout.WindowMinHeight},
	}
	for _, field := range positive {
		if field.value <= 0 {
			validationErrors = append(validationErrors, fmt.Sprintf("%s must be positive", field.key))
		}
	}
	if layout.HeaderImageWidth < 0 {
		validationErrors = append(validationErrors, "layout.header_image_width must be non-negative")
	}
	if layout.TabMinWidth > layout.TabWidth {
		validationErrors = append(validationErrors, "layout.tab_min_width must not exceed layout.tab_width")
	}
	if layout.WindowMinWidth > layout.WindowWidth || layout.WindowMinHeight > layout.WindowHeight {
		validationErrors = append(validationErrors, "layout.window_min_width/height must not exceed the window size")
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "disabled", "off":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of trace, debug, info, warn, error, disabled (got %q)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be console or json (got %q)", config.Logging.Format))
	}
	return validationErrors
}
