package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/penwyp/go-timesheet/internal/config"
	"github.com/penwyp/go-timesheet/internal/core/color"
	"github.com/penwyp/go-timesheet/internal/core/model"
	"github.com/penwyp/go-timesheet/internal/data/jobs"
	"github.com/penwyp/go-timesheet/internal/util"
	"github.com/spf13/cobra"
)

var (
	// Logging related
	debug bool

	// Data path
	dataDir    string
	configPath string

	// cfg is loaded before any subcommand runs
	cfg = config.DefaultConfig()

	// clock is replaced in tests
	clock util.Clock = util.SystemClock{}

	rootCmd = &cobra.Command{
		Use:   "go-timesheet [flags]",
		Short: "Personal time tracking with a day-by-day timeline",
		Long: `go-timesheet records which job you are working on and draws a day-by-day timeline of it.

Every switch is appended to history.json in the data directory. The timeline splits sessions
that cross midnight and outlines time worked after the cutoff hour.

Examples:
  go-timesheet                                   # Draw the timeline in the terminal
  go-timesheet --format svg --output week.svg    # Write the timeline as an SVG file
  go-timesheet switch "Falcon"                   # Start working on Falcon
  go-timesheet end-day                           # Stop tracking for today
  go-timesheet dashboard                         # Pick jobs with number keys
  go-timesheet sessions --output csv             # Export sessions`,
		PersistentPreRunE: setup,
		RunE:              runVisualize,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "dir", "",
		"Directory holding history.json and jobs.json (default from config, \".\")")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Config file path (default ~/.go-timesheet/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")

	addVisualizeFlags(rootCmd)
}

// setup loads the configuration, applies flag overrides and starts logging
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg = loaded

	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	cfg.DataDir = util.ExpandPath(cfg.DataDir)

	logLevel := cfg.Log.Level
	if debug {
		logLevel = "debug"
	}

	logFile := util.ExpandPath(cfg.Log.File)
	if err := util.EnsureDir(filepath.Dir(logFile)); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	opts := util.LoggerOptions{
		Level:  logLevel,
		Format: util.LogFormat(cfg.Log.Format),
		File:   logFile,
	}
	if debug {
		opts.Console = os.Stderr
	}
	if err := util.InitLogger(opts); err != nil {
		return err
	}

	util.LogDebug("Configuration loaded", util.F("dir", cfg.DataDir), util.F("command", cmd.Name()))
	return nil
}

func Execute() error {
	defer util.CloseLogger()
	return rootCmd.Execute()
}

// Helper functions

func historyPath() string {
	return filepath.Join(cfg.DataDir, model.HistoryFileName)
}

func newAssigner() *color.Assigner {
	return color.NewAssigner(cfg.Color.Saturation, cfg.Color.Value)
}

func newJobStore(assigner *color.Assigner) *jobs.Store {
	return jobs.NewStore(filepath.Join(cfg.DataDir, model.JobsFileName), assigner)
}
