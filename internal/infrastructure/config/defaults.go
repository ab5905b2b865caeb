package config

// Default values shared with the drawer engine.
const (
	DefaultMaxSplitFraction       = 0.30
	DefaultSplitSize              = 30
	DefaultDividerWidth           = 1
	DefaultStripThickness         = 1
	DefaultVerticalStripThickness = 3
	DefaultControlSpacing         = 1
	DefaultFloatingWidth          = 40
	DefaultFloatingHeight         = 12
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Drawers: DrawersConfig{
			MaxSplitFraction:       DefaultMaxSplitFraction,
			DefaultSplitSize:       DefaultSplitSize,
			DividerWidth:           DefaultDividerWidth,
			StripThickness:         DefaultStripThickness,
			VerticalStripThickness: DefaultVerticalStripThickness,
			ControlSpacing:         DefaultControlSpacing,
			Edges: EdgesConfig{
				Top:    EdgeConfig{Visible: true},
				Right:  EdgeConfig{Visible: true},
				Bottom: EdgeConfig{Visible: true, SingleOpen: true},
				Left:   EdgeConfig{Visible: true},
			},
		},
		Floating: FloatingConfig{
			DefaultWidth:     DefaultFloatingWidth,
			DefaultHeight:    DefaultFloatingHeight,
			PersistPositions: true,
		},
		Appearance: AppearanceConfig{
			Palette: DefaultDarkPalette(),
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 14,
			Compress:   true,
		},
	}
}

// DefaultDarkPalette returns the built-in dark colors.
func DefaultDarkPalette() ColorPalette {
	return ColorPalette{
		Background:     "#0a0a0b",
		Surface:        "#1a1a1b",
		SurfaceVariant: "#2d2d2d",
		Text:           "#ffffff",
		Muted:          "#909090",
		Accent:         "#4ade80",
		Border:         "#333333",
	}
}
