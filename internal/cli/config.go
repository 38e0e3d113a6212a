package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/azmapper/azmap/pkg/model"
)

// fileConfig is the on-disk configuration, read from a TOML file.
// All sections are optional; flags override file values.
type fileConfig struct {
	// Visualization holds default rendering settings.
	Visualization model.VisualizationConfig `toml:"visualization"`

	// IconDir points at a directory of service icons.
	IconDir string `toml:"icon_dir"`

	// Server holds settings for the serve command.
	Server serverFileConfig `toml:"server"`
}

type serverFileConfig struct {
	Addr          string `toml:"addr"`
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
	MongoURI      string `toml:"mongo_uri"`
}

// configPath returns the default config file location (~/.config/azmap/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// loadConfig reads the config file at path, or the default location when
// path is empty. A missing default file yields zero-value config; a missing
// explicit file is an error.
func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	cfg.Visualization = model.DefaultConfig()

	explicit := path != ""
	if !explicit {
		defaultPath, err := configPath()
		if err != nil {
			return cfg, nil
		}
		path = defaultPath
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if explicit {
			return cfg, fmt.Errorf("config file not found: %s", path)
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}
