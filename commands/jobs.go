package commands

import (
	"fmt"
	"io"

	"github.com/penwyp/go-timesheet/internal/core/color"
	"github.com/penwyp/go-timesheet/internal/core/model"
	"github.com/penwyp/go-timesheet/internal/util"
	"github.com/spf13/cobra"
)

var jobColor string

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Manage the job list shown on the dashboard",
	Long: `Manages jobs.json. Without a stored list the dashboard offers Job1 and Job2.
The first nine jobs can be picked with the number keys on the dashboard.`,
	Args: cobra.NoArgs,
	RunE: runJobsList,
}

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List jobs",
	Args:  cobra.NoArgs,
	RunE:  runJobsList,
}

var jobsAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add a job",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateJobs(cmd.OutOrStdout(), func(store jobStore) ([]model.Job, error) {
			return store.Add(args[0], jobColor)
		})
	},
}

var jobsRemoveCmd = &cobra.Command{
	Use:   "remove NAME",
	Short: "Remove a job",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateJobs(cmd.OutOrStdout(), func(store jobStore) ([]model.Job, error) {
			return store.Remove(args[0])
		})
	},
}

var jobsColorCmd = &cobra.Command{
	Use:   "color NAME HEX",
	Short: "Change the color of a job",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateJobs(cmd.OutOrStdout(), func(store jobStore) ([]model.Job, error) {
			return store.SetColor(args[0], args[1])
		})
	},
}

var jobsRenameCmd = &cobra.Command{
	Use:   "rename OLD NEW",
	Short: "Rename a job",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateJobs(cmd.OutOrStdout(), func(store jobStore) ([]model.Job, error) {
			return store.Rename(args[0], args[1])
		})
	},
}

type jobStore interface {
	Add(name, hex string) ([]model.Job, error)
	Remove(name string) ([]model.Job, error)
	SetColor(name, hex string) ([]model.Job, error)
	Rename(oldName, newName string) ([]model.Job, error)
}

func init() {
	rootCmd.AddCommand(jobsCmd)
	jobsCmd.AddCommand(jobsListCmd, jobsAddCmd, jobsRemoveCmd, jobsColorCmd, jobsRenameCmd)

	jobsAddCmd.Flags().StringVarP(&jobColor, "color", "c", "",
		"Job color (#rrggbb); derived from the name when omitted")
}

func runJobsList(cmd *cobra.Command, args []string) error {
	printJobs(cmd.OutOrStdout(), newJobStore(newAssigner()).Load())
	return nil
}

func updateJobs(out io.Writer, update func(store jobStore) ([]model.Job, error)) error {
	jobs, err := update(newJobStore(newAssigner()))
	if err != nil {
		return err
	}
	printJobs(out, jobs)
	return nil
}

func printJobs(out io.Writer, jobs []model.Job) {
	for i, job := range jobs {
		key := " "
		if i < 9 {
			key = fmt.Sprintf("%d", i+1)
		}
		fmt.Fprintf(out, "%s  %s  %s\n", key, swatch(job.Color), job.Name)
	}
}

// swatch shows the hex code on its own color
func swatch(hex string) string {
	text, err := color.ContrastingTextColor(hex)
	if err != nil {
		return util.PadString(hex, 7, true)
	}
	return util.BackgroundHex(hex) + util.ForegroundName(text) + hex + util.ColorReset
}
