package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. LAUNCHTHEME_LOGGING_LEVEL.
const EnvPrefix = "LAUNCHTHEME"

// Load reads configuration from path, or from DefaultConfigPath when path is
// empty. A missing default file is not an error; a missing explicit file is.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, DefaultConfig())

	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = DefaultConfigPath()
	}

	used := ""
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			switch {
			case explicit:
				return nil, fmt.Errorf("read config %s: %w", path, err)
			case errors.As(err, &notFound), errors.Is(err, os.ErrNotExist):
			default:
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		} else {
			used = path
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Path = used

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("database.path", cfg.Database.Path)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("icons.pack", cfg.Icons.Pack)
	v.SetDefault("icons.size", cfg.Icons.Size)
	v.SetDefault("icons.cache", cfg.Icons.Cache)
	v.SetDefault("themes.dirs", cfg.Themes.Dirs)
	for name, value := range cfg.Resources {
		v.SetDefault("resources."+name, value)
	}
}
