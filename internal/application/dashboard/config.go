package dashboard

import (
	"fmt"
	"time"

	"github.com/penwyp/go-timesheet/internal/core/color"
)

// DashboardConfig contains configuration for the dashboard command
type DashboardConfig struct {
	// DataDir holds history.json and jobs.json
	DataDir string

	// Color assignment
	Saturation float64
	Value      float64

	// RefreshInterval is how often the elapsed time is redrawn
	RefreshInterval time.Duration

	// Watch reloads the job list when jobs.json changes on disk
	Watch bool
}

// Validate fills zero values with defaults and rejects unusable settings
func (c *DashboardConfig) Validate() error {
	if c.DataDir == "" {
		c.DataDir = "."
	}
	if c.Saturation == 0 {
		c.Saturation = color.DefaultSaturation
	}
	if c.Value == 0 {
		c.Value = color.DefaultValue
	}
	if c.RefreshInterval == 0 {
		c.RefreshInterval = time.Second
	}
	if c.RefreshInterval < 0 {
		return fmt.Errorf("refresh interval must be positive, got %v", c.RefreshInterval)
	}
	return nil
}
