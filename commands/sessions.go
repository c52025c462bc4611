package commands

import (
	"github.com/penwyp/go-timesheet/internal/presentation/formatter"
	"github.com/spf13/cobra"
)

var sessionsFormat string

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List reconstructed sessions per day",
	Long: `Prints the sessions rebuilt from history.json, grouped by day, with per-day and overall
totals. End-of-day markers are left out.`,
	Args: cobra.NoArgs,
	RunE: runSessions,
}

func init() {
	rootCmd.AddCommand(sessionsCmd)

	sessionsCmd.Flags().StringVarP(&sessionsFormat, "output", "o", formatter.FormatTable,
		"Output format (table, json, csv, summary)")
}

func runSessions(cmd *cobra.Command, args []string) error {
	f, err := formatter.New(sessionsFormat, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	groups, ok, err := loadDays(cmd.OutOrStdout())
	if err != nil || !ok {
		return err
	}
	return f.Format(formatter.FromDayGroups(groups))
}
