package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/penwyp/go-timesheet/internal/application/dashboard"
	"github.com/spf13/cobra"
)

var (
	dashboardRefresh time.Duration
	dashboardWatch   bool
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Pick the current job from a full-screen button grid",
	Long: `Shows one button per job in a grid, the job in progress, when it started and for how long.

Keys:
  1-9     switch to that job
  e       end the day and quit
  r       reload jobs.json
  h, ?    toggle help
  q, Esc  quit`,
	Args: cobra.NoArgs,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)

	dashboardCmd.Flags().DurationVar(&dashboardRefresh, "refresh", 0,
		"How often the elapsed time is redrawn (default from config, 1s)")
	dashboardCmd.Flags().BoolVar(&dashboardWatch, "watch", true,
		"Reload the job list when jobs.json changes")
}

func runDashboard(cmd *cobra.Command, args []string) error {
	refresh := cfg.Dashboard.RefreshInterval
	if dashboardRefresh != 0 {
		refresh = dashboardRefresh
	}

	orchestrator, err := dashboard.NewOrchestrator(&dashboard.DashboardConfig{
		DataDir:         cfg.DataDir,
		Saturation:      cfg.Color.Saturation,
		Value:           cfg.Color.Value,
		RefreshInterval: refresh,
		Watch:           dashboardWatch,
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	return orchestrator.Run(ctx)
}
