package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/launchtime/launchtheme/internal/argb"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	colors, err := cfg.ResourceColors()
	require.NoError(t, err)
	require.Len(t, colors, 5)
	require.Equal(t, argb.White, colors["textcolor"])
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte(`
database:
  path: /tmp/prefs.db
logging:
  level: debug
  format: json
icons:
  pack: bwicon
  size: 48
themes:
  dirs:
    - /opt/themes
resources:
  textcolor: "#ff00ff00"
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, path, cfg.Path)
	require.Equal(t, "/tmp/prefs.db", cfg.Database.Path)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, "json", cfg.Logging.Format)
	require.Equal(t, "bwicon", cfg.Icons.Pack)
	require.Equal(t, 48, cfg.Icons.Size)
	require.Equal(t, []string{"/opt/themes"}, cfg.Themes.Dirs)

	colors, err := cfg.ResourceColors()
	require.NoError(t, err)
	require.Equal(t, argb.Color(0xff00ff00), colors["textcolor"])
	require.Equal(t, argb.Black, colors["textcolorinv"])
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("LAUNCHTHEME_ICONS_PACK", "termcap")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "termcap", cfg.Icons.Pack)
	require.Empty(t, cfg.Path)
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "level", mutate: func(c *Config) { c.Logging.Level = "loud" }},
		{name: "format", mutate: func(c *Config) { c.Logging.Format = "xml" }},
		{name: "size", mutate: func(c *Config) { c.Icons.Size = 0 }},
		{name: "color", mutate: func(c *Config) { c.Resources["textcolor"] = "white" }},
		{name: "db", mutate: func(c *Config) { c.Database.Path = " " }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			require.Error(t, cfg.Validate())
		})
	}
}
