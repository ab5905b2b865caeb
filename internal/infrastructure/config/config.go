// Package config provides configuration management for drawerpane with Viper integration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// File permission constants
const (
	dirPerm  = 0755 // Standard directory permissions (rwxr-xr-x)
	filePerm = 0644 // Standard file permissions (rw-r--r--)
)

// Config represents the complete configuration for drawerpane.
type Config struct {
	Drawers    DrawersConfig    `mapstructure:"drawers" yaml:"drawers"`
	Floating   FloatingConfig   `mapstructure:"floating" yaml:"floating"`
	Appearance AppearanceConfig `mapstructure:"appearance" yaml:"appearance"`
	Database   DatabaseConfig   `mapstructure:"database" yaml:"database"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging"`
}

// DrawersConfig holds per-edge geometry and policy.
type DrawersConfig struct {
	// MaxSplitFraction caps the docked region relative to the container's
	// perpendicular dimension.
	MaxSplitFraction       float64     `mapstructure:"max_split_fraction" yaml:"max_split_fraction"`
	DefaultSplitSize       float64     `mapstructure:"default_split_size" yaml:"default_split_size"`
	DividerWidth           float64     `mapstructure:"divider_width" yaml:"divider_width"`
	StripThickness         float64     `mapstructure:"strip_thickness" yaml:"strip_thickness"`
	VerticalStripThickness float64     `mapstructure:"vertical_strip_thickness" yaml:"vertical_strip_thickness"`
	ControlSpacing         float64     `mapstructure:"control_spacing" yaml:"control_spacing"`
	Edges                  EdgesConfig `mapstructure:"edges" yaml:"edges"`
}

// EdgesConfig holds the initial policy of each edge.
type EdgesConfig struct {
	Top    EdgeConfig `mapstructure:"top" yaml:"top"`
	Right  EdgeConfig `mapstructure:"right" yaml:"right"`
	Bottom EdgeConfig `mapstructure:"bottom" yaml:"bottom"`
	Left   EdgeConfig `mapstructure:"left" yaml:"left"`
}

// EdgeConfig holds the initial policy of one edge.
type EdgeConfig struct {
	Visible    bool `mapstructure:"visible" yaml:"visible"`
	SingleOpen bool `mapstructure:"single_open" yaml:"single_open"`
}

// FloatingConfig holds floating surface preferences.
type FloatingConfig struct {
	DefaultWidth     int  `mapstructure:"default_width" yaml:"default_width"`
	DefaultHeight    int  `mapstructure:"default_height" yaml:"default_height"`
	PersistPositions bool `mapstructure:"persist_positions" yaml:"persist_positions"`
}

// AppearanceConfig holds the terminal colors.
type AppearanceConfig struct {
	Palette ColorPalette `mapstructure:"palette" yaml:"palette"`
}

// ColorPalette holds hex colors for the terminal host.
type ColorPalette struct {
	Background     string `mapstructure:"background" yaml:"background"`
	Surface        string `mapstructure:"surface" yaml:"surface"`
	SurfaceVariant string `mapstructure:"surface_variant" yaml:"surface_variant"`
	Text           string `mapstructure:"text" yaml:"text"`
	Muted          string `mapstructure:"muted" yaml:"muted"`
	Accent         string `mapstructure:"accent" yaml:"accent"`
	Border         string `mapstructure:"border" yaml:"border"`
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
	// File is where interactive sessions log. Empty means the XDG state dir.
	File       string `mapstructure:"file" yaml:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days" yaml:"max_age_days"`
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	configDir string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// ManagerOption customizes a Manager.
type ManagerOption func(*Manager)

// WithConfigDir reads the config file from dir instead of the XDG directory.
func WithConfigDir(dir string) ManagerOption {
	return func(m *Manager) { m.configDir = dir }
}

// NewManager creates a new configuration manager.
func NewManager(opts ...ManagerOption) (*Manager, error) {
	m := &Manager{
		viper:     viper.New(),
		callbacks: make([]func(*Config), 0),
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.configDir == "" {
		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get config directory: %w", err)
		}
		m.configDir = configDir
	}

	v := m.viper
	// Supports yaml, json, toml automatically
	v.SetConfigName("config")
	v.AddConfigPath(m.configDir)

	v.SetEnvPrefix("DRAWERPANE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindings := map[string]string{
		"drawers.max_split_fraction": "MAX_SPLIT_FRACTION",
		"drawers.default_split_size": "DEFAULT_SPLIT_SIZE",
		"database.path":              "DATABASE_PATH",
		"logging.level":              "LOG_LEVEL",
		"logging.format":             "LOG_FORMAT",
		"logging.file":               "LOG_FILE",
	}

	for key, env := range bindings {
		if err := v.BindEnv(key, "DRAWERPANE_"+env); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable %s: %w", env, err)
		}
	}

	return m, nil
}

// Load loads the configuration from file and environment variables.
// A missing config file is created from the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		if err := m.createDefaultConfig(); err != nil {
			return fmt.Errorf("failed to create default config: %w", err)
		}
	}

	config, err := m.decode()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}

func (m *Manager) decode() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.Database.Path == "" {
		dbPath, err := GetDatabaseFile()
		if err != nil {
			return nil, fmt.Errorf("failed to get database path: %w", err)
		}
		config.Database.Path = dbPath
	}
	if config.Logging.File == "" {
		logPath, err := GetLogFile()
		if err != nil {
			return nil, fmt.Errorf("failed to get log path: %w", err)
		}
		config.Logging.File = logPath
	}
	config.Logging.Level = strings.ToLower(config.Logging.Level)

	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// Watch starts watching the config file for changes and reloads automatically.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}

	m.viper.OnConfigChange(func(_ fsnotify.Event) {
		if err := m.reload(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to reload config: %v\n", err)
			return
		}

		m.mu.RLock()
		config := m.config
		callbacks := make([]func(*Config), len(m.callbacks))
		copy(callbacks, m.callbacks)
		m.mu.RUnlock()

		for _, callback := range callbacks {
			callback(config)
		}
	})
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

// OnConfigChange registers a callback function to be called when config changes.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

func (m *Manager) reload() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}
	config, err := m.decode()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("drawers.max_split_fraction", defaults.Drawers.MaxSplitFraction)
	m.viper.SetDefault("drawers.default_split_size", defaults.Drawers.DefaultSplitSize)
	m.viper.SetDefault("drawers.divider_width", defaults.Drawers.DividerWidth)
	m.viper.SetDefault("drawers.strip_thickness", defaults.Drawers.StripThickness)
	m.viper.SetDefault("drawers.vertical_strip_thickness", defaults.Drawers.VerticalStripThickness)
	m.viper.SetDefault("drawers.control_spacing", defaults.Drawers.ControlSpacing)

	edges := map[string]EdgeConfig{
		"top":    defaults.Drawers.Edges.Top,
		"right":  defaults.Drawers.Edges.Right,
		"bottom": defaults.Drawers.Edges.Bottom,
		"left":   defaults.Drawers.Edges.Left,
	}
	for name, e := range edges {
		m.viper.SetDefault("drawers.edges."+name+".visible", e.Visible)
		m.viper.SetDefault("drawers.edges."+name+".single_open", e.SingleOpen)
	}

	m.viper.SetDefault("floating.default_width", defaults.Floating.DefaultWidth)
	m.viper.SetDefault("floating.default_height", defaults.Floating.DefaultHeight)
	m.viper.SetDefault("floating.persist_positions", defaults.Floating.PersistPositions)

	p := defaults.Appearance.Palette
	m.viper.SetDefault("appearance.palette.background", p.Background)
	m.viper.SetDefault("appearance.palette.surface", p.Surface)
	m.viper.SetDefault("appearance.palette.surface_variant", p.SurfaceVariant)
	m.viper.SetDefault("appearance.palette.text", p.Text)
	m.viper.SetDefault("appearance.palette.muted", p.Muted)
	m.viper.SetDefault("appearance.palette.accent", p.Accent)
	m.viper.SetDefault("appearance.palette.border", p.Border)

	m.viper.SetDefault("database.path", defaults.Database.Path)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.file", defaults.Logging.File)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)
}

// createDefaultConfig writes the default configuration as YAML and points
// viper at it.
func (m *Manager) createDefaultConfig() error {
	configFile := filepath.Join(m.configDir, "config.yaml")

	if err := os.MkdirAll(m.configDir, dirPerm); err != nil {
		return err
	}

	configData, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(configFile, configData, filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	m.viper.SetConfigFile(configFile)
	return m.viper.ReadInConfig()
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// Marshal renders a configuration as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}
