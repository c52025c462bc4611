package config

import (
	"fmt"

	"github.com/penwyp/go-timesheet/internal/core/color"
	"github.com/penwyp/go-timesheet/internal/presentation/render"
	"github.com/penwyp/go-timesheet/internal/util"
)

// Validate fills zero values with defaults and rejects out-of-range settings
func (c *Config) Validate() error {
	def := DefaultConfig()

	if c.DataDir == "" {
		c.DataDir = def.DataDir
	}

	if c.Color.Saturation == 0 {
		c.Color.Saturation = def.Color.Saturation
	}
	if c.Color.Value == 0 {
		c.Color.Value = def.Color.Value
	}
	if c.Color.Saturation < 0 || c.Color.Saturation > 1 {
		return fmt.Errorf("color.saturation must be between 0 and 1, got %v", c.Color.Saturation)
	}
	if c.Color.Value < 0 || c.Color.Value > 1 {
		return fmt.Errorf("color.value must be between 0 and 1, got %v", c.Color.Value)
	}

	if c.Session.FinalExtension == 0 {
		c.Session.FinalExtension = def.Session.FinalExtension
	}
	if c.Session.FinalExtension < 0 {
		return fmt.Errorf("session.final_extension must be positive, got %v", c.Session.FinalExtension)
	}

	// a zero cutoff is midnight, so it is kept as given
	if c.Timeline.CutoffHour < 0 || c.Timeline.CutoffHour > 24 {
		return fmt.Errorf("timeline.cutoff_hour must be between 0 and 24, got %v", c.Timeline.CutoffHour)
	}
	if c.Timeline.LabelMinHours == 0 {
		c.Timeline.LabelMinHours = def.Timeline.LabelMinHours
	}
	if c.Timeline.LabelMinHours < 0 || c.Timeline.LabelMinHours > 24 {
		return fmt.Errorf("timeline.label_min_hours must be between 0 and 24, got %v", c.Timeline.LabelMinHours)
	}

	if err := c.Chart.validate(def.Chart); err != nil {
		return err
	}

	if c.Dashboard.RefreshInterval == 0 {
		c.Dashboard.RefreshInterval = def.Dashboard.RefreshInterval
	}
	if c.Dashboard.RefreshInterval < 0 {
		return fmt.Errorf("dashboard.refresh_interval must be positive, got %v", c.Dashboard.RefreshInterval)
	}

	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Log.File == "" {
		c.Log.File = def.Log.File
	}
	if c.Log.Format == "" {
		c.Log.Format = def.Log.Format
	}
	if c.Log.Format != string(util.FormatText) && c.Log.Format != string(util.FormatJSON) {
		return fmt.Errorf("log.format must be %q or %q, got %q", util.FormatText, util.FormatJSON, c.Log.Format)
	}
	return nil
}

func (c *ChartConfig) validate(def ChartConfig) error {
	if c.Format == "" {
		c.Format = def.Format
	}
	if c.Format != render.FormatSVG && c.Format != render.FormatTerminal {
		return fmt.Errorf("chart.format must be %q or %q, got %q", render.FormatSVG, render.FormatTerminal, c.Format)
	}
	if c.Width == 0 {
		c.Width = def.Width
	}
	if c.Height == 0 {
		c.Height = def.Height
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("chart size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.FillOpacity == 0 {
		c.FillOpacity = def.FillOpacity
	}
	if c.FillOpacity < 0 || c.FillOpacity > 1 {
		return fmt.Errorf("chart.fill_opacity must be between 0 and 1, got %v", c.FillOpacity)
	}
	if c.OutlineColor == "" {
		c.OutlineColor = def.OutlineColor
	}
	if _, err := color.ParseHex(c.OutlineColor); err != nil {
		return fmt.Errorf("chart.outline_color: %w", err)
	}
	if c.OutlineWidth == 0 {
		c.OutlineWidth = def.OutlineWidth
	}
	if c.SlotsPerHour == 0 {
		c.SlotsPerHour = def.SlotsPerHour
	}
	if c.SlotsPerHour < 0 || c.SlotsPerHour > 60 {
		return fmt.Errorf("chart.slots_per_hour must be between 1 and 60, got %d", c.SlotsPerHour)
	}
	if c.BandWidth == 0 {
		c.BandWidth = def.BandWidth
	}
	return nil
}
