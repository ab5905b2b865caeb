// Package config provides validation utilities for configuration values.
package config

import (
	"fmt"
	"regexp"
	"strings"
)

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	d := config.Drawers
	if d.MaxSplitFraction <= 0 || d.MaxSplitFraction > 1 {
		validationErrors = append(validationErrors, "drawers.max_split_fraction must be in (0, 1]")
	}
	if d.DefaultSplitSize < 0 {
		validationErrors = append(validationErrors, "drawers.default_split_size must be non-negative")
	}
	if d.DividerWidth < 0 {
		validationErrors = append(validationErrors, "drawers.divider_width must be non-negative")
	}
	if d.StripThickness < 1 || d.VerticalStripThickness < 1 {
		validationErrors = append(validationErrors, "drawers.strip_thickness and drawers.vertical_strip_thickness must be at least 1")
	}
	if d.ControlSpacing < 0 {
		validationErrors = append(validationErrors, "drawers.control_spacing must be non-negative")
	}

	if config.Floating.DefaultWidth < 1 || config.Floating.DefaultHeight < 1 {
		validationErrors = append(validationErrors, "floating.default_width and floating.default_height must be positive")
	}

	validationErrors = append(validationErrors, validatePalette(config.Appearance.Palette)...)

	l := config.Logging
	if l.MaxSizeMB < 0 || l.MaxBackups < 0 || l.MaxAgeDays < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb, logging.max_backups and logging.max_age_days must be non-negative")
	}

	switch config.Logging.Format {
	case "console", "json":
		// Valid
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.format must be one of: console, json (got: %s)", config.Logging.Format))
	}

	switch strings.ToLower(config.Logging.Level) {
	case "trace", "debug", "info", "warn", "error", "disabled":
		// Valid
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level must be one of: trace, debug, info, warn, error, disabled (got: %s)", config.Logging.Level))
	}

	if len(validationErrors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validatePalette(p ColorPalette) []string {
	colors := []struct {
		key   string
		value string
	}{
		{"background", p.Background},
		{"surface", p.Surface},
		{"surface_variant", p.SurfaceVariant},
		{"text", p.Text},
		{"muted", p.Muted},
		{"accent", p.Accent},
		{"border", p.Border},
	}

	var errs []string
	for _, c := range colors {
		if !hexColor.MatchString(c.value) {
			errs = append(errs, fmt.Sprintf("appearance.palette.%s must be a hex color (got: %q)", c.key, c.value))
		}
	}
	return errs
}
