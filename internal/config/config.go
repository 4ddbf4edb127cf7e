// Package config loads launchtheme configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/launchtime/launchtheme/internal/argb"
)

// Config is the top-level configuration.
type Config struct {
	Database  DatabaseConfig    `mapstructure:"database"`
	Logging   LoggingConfig     `mapstructure:"logging"`
	Icons     IconsConfig       `mapstructure:"icons"`
	Themes    ThemesConfig      `mapstructure:"themes"`
	Resources map[string]string `mapstructure:"resources"`

	// Path is the config file that was read, if any.
	Path string `mapstructure:"-"`
}

// DatabaseConfig locates the preference database.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// IconsConfig controls icon resolution.
type IconsConfig struct {
	// Pack is the icon pack selected when none has been stored yet.
	Pack string `mapstructure:"pack"`

	// Size is the edge length of rendered and placeholder icons.
	Size int `mapstructure:"size"`

	// Cache enables the in-process drawable cache.
	Cache bool `mapstructure:"cache"`
}

// ThemesConfig lists extra theme pack directories.
type ThemesConfig struct {
	Dirs []string `mapstructure:"dirs"`
}

// DefaultResources are the launcher's stock chrome colors.
var DefaultResources = map[string]string{
	"cattab_background":         "#ff303030",
	"cattabselected_background": "#ff505050",
	"cattabselected_text":       "#ffffffff",
	"textcolor":                 "#ffffffff",
	"textcolorinv":              "#ff000000",
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	resources := make(map[string]string, len(DefaultResources))
	for k, v := range DefaultResources {
		resources[k] = v
	}
	return &Config{
		Database:  DatabaseConfig{Path: defaultDatabasePath()},
		Logging:   LoggingConfig{Level: "warn", Format: "console"},
		Icons:     IconsConfig{Pack: "default", Size: 96, Cache: true},
		Themes:    ThemesConfig{},
		Resources: resources,
	}
}

// Validate checks value ranges and color syntax.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.Path) == "" {
		return fmt.Errorf("database.path is required")
	}
	switch strings.ToLower(c.Logging.Level) {
	case "", "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
	default:
		return fmt.Errorf("logging.level %q is not a valid level", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	if c.Icons.Size <= 0 || c.Icons.Size > 1024 {
		return fmt.Errorf("icons.size must be between 1 and 1024, got %d", c.Icons.Size)
	}
	if _, err := c.ResourceColors(); err != nil {
		return err
	}
	return nil
}

// ResourceColors parses the resource color table.
func (c *Config) ResourceColors() (map[string]argb.Color, error) {
	out := make(map[string]argb.Color, len(c.Resources))
	for name, value := range c.Resources {
		parsed, err := argb.Parse(value)
		if err != nil {
			return nil, fmt.Errorf("resources.%s: %w", name, err)
		}
		out[name] = parsed
	}
	return out, nil
}

func defaultDatabasePath() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "launchtheme", "launchtheme.db")
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return filepath.Join(home, ".local", "share", "launchtheme", "launchtheme.db")
	}
	return "launchtheme.db"
}

// DefaultConfigPath returns the config file consulted when none is given.
func DefaultConfigPath() string {
	if dir, err := os.UserConfigDir(); err == nil && dir != "" {
		return filepath.Join(dir, "launchtheme", "config.yaml")
	}
	return ""
}
