package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/penwyp/go-timesheet/internal/core/model"
	"github.com/penwyp/go-timesheet/internal/core/session"
	"github.com/penwyp/go-timesheet/internal/core/timeline"
	"github.com/penwyp/go-timesheet/internal/data/eventlog"
	"github.com/penwyp/go-timesheet/internal/data/watcher"
	"github.com/penwyp/go-timesheet/internal/presentation/render"
	"github.com/penwyp/go-timesheet/internal/util"
	"github.com/spf13/cobra"
)

// Notices printed instead of a chart
const (
	msgFileNotFound = "File '%s' not found.\n"
	msgInvalidJSON  = "Error: The file is not valid JSON."
	msgNoEvents     = "No events found in history."
)

var (
	chartFormat string
	chartOutput string
	chartTitle  string
	cutoffHour  float64
	plainChart  bool
	watchChart  bool
)

var visualizeCmd = &cobra.Command{
	Use:   "visualize",
	Short: "Draw the day-by-day timeline",
	Long: `Reads history.json and draws one column per day with a block per session.

Sessions crossing midnight are split at midnight. Time worked after the cutoff hour is
outlined. The last session is drawn one hour long when the day has not been ended.`,
	RunE: runVisualize,
}

func init() {
	rootCmd.AddCommand(visualizeCmd)
	addVisualizeFlags(visualizeCmd)
}

func addVisualizeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&chartFormat, "format", "f", "",
		"Chart format (terminal, svg); default from config")
	cmd.Flags().StringVarP(&chartOutput, "output", "o", "",
		"Write the chart to this file instead of stdout")
	cmd.Flags().StringVar(&chartTitle, "title", render.DefaultTitle,
		"Chart title")
	cmd.Flags().Float64Var(&cutoffHour, "cutoff", 0,
		"Hour of day after which work is outlined, 0 to 24 (default from config, 19)")
	cmd.Flags().BoolVar(&plainChart, "plain", false,
		"Draw the terminal chart without colors")
	cmd.Flags().BoolVarP(&watchChart, "watch", "w", false,
		"Redraw the terminal chart whenever history.json changes")
}

func runVisualize(cmd *cobra.Command, args []string) error {
	format := cfg.Chart.Format
	if chartFormat != "" {
		format = chartFormat
	}
	if cmd.Flags().Changed("cutoff") {
		if cutoffHour < 0 || cutoffHour > 24 {
			return fmt.Errorf("cutoff must be between 0 and 24, got %v", cutoffHour)
		}
		cfg.Timeline.CutoffHour = cutoffHour
	}

	renderer, err := render.New(format, chartOptions())
	if err != nil {
		return err
	}

	if !watchChart {
		return drawChart(cmd.OutOrStdout(), renderer)
	}
	if format != render.FormatTerminal || chartOutput != "" {
		return errors.New("--watch only works with the terminal format on stdout")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return watchHistory(ctx, cmd.OutOrStdout(), renderer)
}

func chartOptions() render.Options {
	return render.Options{
		SVG: render.SVGConfig{
			Width:        cfg.Chart.Width,
			Height:       cfg.Chart.Height,
			FillOpacity:  cfg.Chart.FillOpacity,
			OutlineColor: cfg.Chart.OutlineColor,
			OutlineWidth: cfg.Chart.OutlineWidth,
		},
		Terminal: render.TerminalConfig{
			SlotsPerHour: cfg.Chart.SlotsPerHour,
			BandWidth:    cfg.Chart.BandWidth,
			Plain:        plainChart,
		},
	}
}

// loadDays reads the history and builds day-grouped sessions. A missing, corrupt or empty
// history prints its notice to out and returns ok=false with a nil error.
func loadDays(out io.Writer) (groups model.DayGroups, ok bool, err error) {
	path := historyPath()

	records, err := eventlog.Read(path)
	switch {
	case errors.Is(err, eventlog.ErrNotFound):
		fmt.Fprintf(out, msgFileNotFound, path)
		return groups, false, nil
	case errors.Is(err, eventlog.ErrCorrupt):
		fmt.Fprintln(out, msgInvalidJSON)
		return groups, false, nil
	case errors.Is(err, eventlog.ErrEmpty):
		fmt.Fprintln(out, msgNoEvents)
		return groups, false, nil
	case err != nil:
		return groups, false, err
	}

	builder := session.NewBuilder(session.BuilderConfig{FinalExtension: cfg.Session.FinalExtension})
	groups, err = builder.BuildDays(records)
	if err != nil {
		return groups, false, fmt.Errorf("failed to build sessions from %s: %w", path, err)
	}
	return groups, true, nil
}

// drawChart renders the history once, to chartOutput when set
func drawChart(out io.Writer, renderer render.Renderer) error {
	groups, ok, err := loadDays(out)
	if err != nil || !ok {
		return err
	}

	layout := timeline.NewLayout(timeline.Config{
		CutoffHour:    cfg.Timeline.CutoffHour,
		LabelMinHours: cfg.Timeline.LabelMinHours,
	})
	chart := render.NewChart(groups, layout, chartTitle)
	util.LogDebug("Drawing chart", util.F("days", len(chart.Days)), util.F("rects", len(chart.Rects)))

	if chartOutput == "" {
		return renderer.Render(out, chart)
	}

	file, err := os.Create(chartOutput)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", chartOutput, err)
	}
	if err := renderer.Render(file, chart); err != nil {
		file.Close()
		return fmt.Errorf("failed to write chart: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}

	fmt.Fprintf(out, "Chart written to %s\n", chartOutput)
	return nil
}

// watchHistory redraws the chart on every change to history.json until ctx is cancelled
func watchHistory(ctx context.Context, out io.Writer, renderer render.Renderer) error {
	fw, err := watcher.NewFileWatcher(cfg.DataDir, model.HistoryFileName)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", cfg.DataDir, err)
	}
	defer fw.Close()

	redraw := func() error {
		fmt.Fprint(out, util.ClearScreen+util.MoveCursorHome)
		return drawChart(out, renderer)
	}

	if err := redraw(); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events():
			if !ok {
				return nil
			}
			util.LogDebugf("History changed: %s (%s)", event.Path, event.Operation)
			if err := redraw(); err != nil {
				return err
			}
		}
	}
}
