package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/penwyp/go-timesheet/internal/core/color"
	"github.com/penwyp/go-timesheet/internal/core/session"
	"github.com/penwyp/go-timesheet/internal/core/timeline"
	"github.com/penwyp/go-timesheet/internal/presentation/render"
	"github.com/penwyp/go-timesheet/internal/util"
	"gopkg.in/yaml.v3"
)

const (
	// HomeDirName is the per-user directory holding config and logs
	HomeDirName = ".go-timesheet"

	DefaultRefreshInterval = time.Second
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		DataDir: ".",
		Color: ColorConfig{
			Saturation: color.DefaultSaturation,
			Value:      color.DefaultValue,
		},
		Session: SessionConfig{
			FinalExtension: session.DefaultFinalExtension,
		},
		Timeline: TimelineConfig{
			CutoffHour:    timeline.DefaultCutoffHour,
			LabelMinHours: timeline.DefaultLabelMinHours,
		},
		Chart: ChartConfig{
			Format:       render.FormatTerminal,
			Width:        render.DefaultSVGWidth,
			Height:       render.DefaultSVGHeight,
			FillOpacity:  render.DefaultFillOpacity,
			OutlineColor: render.DefaultOutlineColor,
			OutlineWidth: render.DefaultOutlineWidth,
			SlotsPerHour: render.DefaultSlotsPerHour,
			BandWidth:    render.DefaultBandWidth,
		},
		Dashboard: DashboardConfig{
			RefreshInterval: DefaultRefreshInterval,
		},
		Log: LogConfig{
			Level:  "info",
			Format: string(util.FormatText),
			File:   filepath.Join("~", HomeDirName, "logs", "app.log"),
		},
	}
}

// Marshal renders cfg as YAML
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// WriteDefault writes the default configuration to path, creating parent directories.
// An existing file is left alone unless force is set.
func WriteDefault(path string, force bool) error {
	path = util.ExpandPath(path)
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file %s already exists", path)
	}

	data, err := Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to encode default config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	header := []byte("# go-timesheet configuration\n")
	return os.WriteFile(path, append(header, data...), 0644)
}
