package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/penwyp/go-timesheet/internal/util"
	"github.com/spf13/viper"
)

// DefaultPath returns ~/.go-timesheet/config.yaml
func DefaultPath() string {
	return filepath.Join("~", HomeDirName, "config.yaml")
}

// Load reads configuration from path over the defaults. An empty path means DefaultPath, which
// may be absent; an explicitly named file must exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	path = util.ExpandPath(path)

	if err := loadFile(path, cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			util.LogDebugf("No config file at %s, using defaults", path)
		} else {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return err
	}

	return v.Unmarshal(cfg)
}
