package commands

import (
	"fmt"
	"io"

	"github.com/penwyp/go-timesheet/internal/core/session"
	"github.com/penwyp/go-timesheet/internal/data/eventlog"
	"github.com/penwyp/go-timesheet/internal/presentation/display"
	"github.com/penwyp/go-timesheet/internal/util"
	"github.com/spf13/cobra"
)

var switchColor string

var switchCmd = &cobra.Command{
	Use:   "switch NAME",
	Short: "Start working on a job",
	Long: `Appends a switch event for NAME to history.json. Switching to the job already in progress
records nothing. The color is taken from --color, then from the job list, then derived from
the name.`,
	Args: cobra.ExactArgs(1),
	RunE: runSwitch,
}

var endDayCmd = &cobra.Command{
	Use:   "end-day",
	Short: "Stop tracking for today",
	Args:  cobra.NoArgs,
	RunE:  runEndDay,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the job in progress and for how long",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(switchCmd)
	rootCmd.AddCommand(endDayCmd)
	rootCmd.AddCommand(statusCmd)

	switchCmd.Flags().StringVarP(&switchColor, "color", "c", "",
		"Color to record for this switch (#rrggbb)")
}

// openTracker opens the history and resumes the job in progress
func openTracker() (*session.Tracker, error) {
	log, err := eventlog.Open(historyPath())
	if err != nil {
		return nil, err
	}
	tracker := session.NewTracker(log, newAssigner(), clock)
	tracker.Restore()
	return tracker, nil
}

func runSwitch(cmd *cobra.Command, args []string) error {
	project := args[0]
	tracker, err := openTracker()
	if err != nil {
		return err
	}

	override := switchColor
	if override == "" {
		for _, job := range newJobStore(newAssigner()).Load() {
			if job.Name == project {
				override = job.Color
				break
			}
		}
	}

	switched, err := tracker.SwitchTo(project, override)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !switched {
		fmt.Fprintf(out, "Already working on %s\n", project)
		return nil
	}
	fmt.Fprintln(out, display.FormatStatus(project))
	return nil
}

func runEndDay(cmd *cobra.Command, args []string) error {
	tracker, err := openTracker()
	if err != nil {
		return err
	}

	switched, err := tracker.EndDay()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !switched {
		fmt.Fprintln(out, "Day already ended")
		return nil
	}
	fmt.Fprintf(out, "Day ended at %s\n", util.FormatClock12(clock.Now()))
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	tracker, err := openTracker()
	if err != nil {
		return err
	}
	printStatus(cmd.OutOrStdout(), tracker)
	return nil
}

func printStatus(out io.Writer, tracker *session.Tracker) {
	project, startedAt, _ := tracker.Current()
	fmt.Fprintln(out, display.FormatStatus(project))
	if details := display.FormatDetails(project, startedAt, clock.Now()); details != "" {
		fmt.Fprintln(out, details)
	}
}
