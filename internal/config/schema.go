package config

import "time"

// Config represents the full go-timesheet configuration
type Config struct {
	// DataDir holds history.json and jobs.json
	DataDir string `yaml:"data_dir" mapstructure:"data_dir"`

	Color     ColorConfig     `yaml:"color" mapstructure:"color"`
	Session   SessionConfig   `yaml:"session" mapstructure:"session"`
	Timeline  TimelineConfig  `yaml:"timeline" mapstructure:"timeline"`
	Chart     ChartConfig     `yaml:"chart" mapstructure:"chart"`
	Dashboard DashboardConfig `yaml:"dashboard" mapstructure:"dashboard"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// ColorConfig sets the HSV saturation and value of assigned project colors
type ColorConfig struct {
	Saturation float64 `yaml:"saturation" mapstructure:"saturation"`
	Value      float64 `yaml:"value" mapstructure:"value"`
}

// SessionConfig configures session reconstruction
type SessionConfig struct {
	FinalExtension time.Duration `yaml:"final_extension" mapstructure:"final_extension"`
}

// MarshalYAML writes durations in their "1h0m0s" form
func (c SessionConfig) MarshalYAML() (interface{}, error) {
	return map[string]string{"final_extension": c.FinalExtension.String()}, nil
}

// TimelineConfig configures chart geometry
type TimelineConfig struct {
	CutoffHour    float64 `yaml:"cutoff_hour" mapstructure:"cutoff_hour"`
	LabelMinHours float64 `yaml:"label_min_hours" mapstructure:"label_min_hours"`
}

// ChartConfig configures the visualizer output
type ChartConfig struct {
	Format       string  `yaml:"format" mapstructure:"format"`
	Width        int     `yaml:"width" mapstructure:"width"`
	Height       int     `yaml:"height" mapstructure:"height"`
	FillOpacity  float64 `yaml:"fill_opacity" mapstructure:"fill_opacity"`
	OutlineColor string  `yaml:"outline_color" mapstructure:"outline_color"`
	OutlineWidth float64 `yaml:"outline_width" mapstructure:"outline_width"`
	SlotsPerHour int     `yaml:"slots_per_hour" mapstructure:"slots_per_hour"`
	BandWidth    int     `yaml:"band_width" mapstructure:"band_width"`
}

// DashboardConfig configures the interactive dashboard
type DashboardConfig struct {
	RefreshInterval time.Duration `yaml:"refresh_interval" mapstructure:"refresh_interval"`
}

// MarshalYAML writes durations in their "1s" form
func (c DashboardConfig) MarshalYAML() (interface{}, error) {
	return map[string]string{"refresh_interval": c.RefreshInterval.String()}, nil
}

// LogConfig configures the application log
type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
	// Format is "text" or "json"
	Format string `yaml:"format" mapstructure:"format"`
	File   string `yaml:"file" mapstructure:"file"`
}
