package dashboard

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/penwyp/go-timesheet/internal/core/color"
	"github.com/penwyp/go-timesheet/internal/core/model"
	"github.com/penwyp/go-timesheet/internal/core/session"
	"github.com/penwyp/go-timesheet/internal/data/eventlog"
	"github.com/penwyp/go-timesheet/internal/data/jobs"
	"github.com/penwyp/go-timesheet/internal/data/watcher"
	"github.com/penwyp/go-timesheet/internal/presentation/display"
	"github.com/penwyp/go-timesheet/internal/presentation/interaction"
	"github.com/penwyp/go-timesheet/internal/presentation/layout"
	"github.com/penwyp/go-timesheet/internal/util"
)

// Orchestrator coordinates the components of the dashboard command
type Orchestrator struct {
	config *DashboardConfig
	clock  util.Clock

	// Core components
	tracker      *session.Tracker
	jobs         JobLoader
	stateManager *StateManager

	// UI components
	screen   Screen
	keyboard KeySource

	// Monitoring
	watcher *watcher.FileWatcher
}

// NewOrchestrator opens the history and job list under config.DataDir
func NewOrchestrator(config *DashboardConfig) (*Orchestrator, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	log, err := eventlog.Open(filepath.Join(config.DataDir, model.HistoryFileName))
	if err != nil {
		return nil, fmt.Errorf("failed to open history: %w", err)
	}

	assigner := color.NewAssigner(config.Saturation, config.Value)
	clock := util.SystemClock{}

	return newOrchestrator(
		config,
		session.NewTracker(log, assigner, clock),
		jobs.NewStore(filepath.Join(config.DataDir, model.JobsFileName), assigner),
		display.NewTerminalDisplay(os.Stdout, layout.TerminalSizer()),
		clock,
	), nil
}

func newOrchestrator(config *DashboardConfig, tracker *session.Tracker, jobLoader JobLoader, screen Screen, clock util.Clock) *Orchestrator {
	return &Orchestrator{
		config:       config,
		clock:        clock,
		tracker:      tracker,
		jobs:         jobLoader,
		stateManager: NewStateManager(),
		screen:       screen,
	}
}

// Run starts the orchestrator main loop. It returns when the user quits, ends the day, or
// ctx is cancelled.
func (o *Orchestrator) Run(ctx context.Context) error {
	util.LogInfo("Starting dashboard", util.F("dir", o.config.DataDir))
	defer o.Close()

	keyboard, err := interaction.NewKeyboardReader()
	if err != nil {
		return fmt.Errorf("failed to initialize keyboard: %w", err)
	}
	o.keyboard = keyboard

	var fileEvents <-chan model.FileEvent
	if o.config.Watch {
		if err := o.startWatcher(); err != nil {
			util.LogWarn("Job list watching disabled", util.F("error", err))
		} else {
			fileEvents = o.watcher.Events()
		}
	}

	o.screen.EnterAlternateScreen()
	defer o.screen.ExitAlternateScreen()

	ticker := time.NewTicker(o.config.RefreshInterval)
	defer ticker.Stop()

	return o.loop(ctx, o.keyboard.Events(), fileEvents, ticker.C)
}

// Prepare restores the current project from the history and loads the job list
func (o *Orchestrator) Prepare() {
	o.tracker.Restore()
	o.reloadJobs()
}

func (o *Orchestrator) loop(ctx context.Context, keys <-chan interaction.KeyEvent, fileEvents <-chan model.FileEvent, ticks <-chan time.Time) error {
	o.Prepare()
	o.updateDisplay()

	for {
		select {
		case <-ctx.Done():
			util.LogInfo("Shutting down dashboard")
			return nil

		case <-ticks:
			o.updateDisplay()

		case event, ok := <-fileEvents:
			if !ok {
				fileEvents = nil
				continue
			}
			o.handleFileChange(event)
			o.updateDisplay()

		case key, ok := <-keys:
			if !ok {
				return nil
			}
			if o.handleKeyboard(key) {
				return nil
			}
			o.updateDisplay()
		}
	}
}

// handleKeyboard applies one key press and reports whether the dashboard should exit
func (o *Orchestrator) handleKeyboard(event interaction.KeyEvent) bool {
	action := interaction.ActionFor(event)

	if o.stateManager.ShowHelp() {
		switch {
		case action.Type == interaction.ActionToggleHelp,
			event.Type == interaction.KeyEscape:
			o.stateManager.ToggleHelp()
			return false
		}
	}

	switch action.Type {
	case interaction.ActionSwitchJob:
		o.switchToJob(action.Job)
	case interaction.ActionEndDay:
		if _, err := o.tracker.EndDay(); err != nil {
			util.LogError("Failed to end day", util.F("error", err))
			o.stateManager.SetStatusMessage(err.Error())
			return false
		}
		return true
	case interaction.ActionReload:
		o.reloadJobs()
		o.stateManager.SetStatusMessage(fmt.Sprintf("Reloaded %d jobs", len(o.stateManager.Jobs())))
	case interaction.ActionToggleHelp:
		o.stateManager.ToggleHelp()
	case interaction.ActionQuit:
		return true
	}
	return false
}

func (o *Orchestrator) switchToJob(index int) {
	job, ok := o.stateManager.Job(index)
	if !ok {
		o.stateManager.SetStatusMessage(fmt.Sprintf("No job on key %d", index+1))
		return
	}

	switched, err := o.tracker.SwitchTo(job.Name, job.Color)
	if err != nil {
		util.LogError("Failed to switch project", util.F("project", job.Name), util.F("error", err))
		o.stateManager.SetStatusMessage(err.Error())
		return
	}
	if switched {
		o.stateManager.SetStatusMessage("")
	}
}

func (o *Orchestrator) reloadJobs() {
	o.stateManager.SetJobs(o.jobs.Load())
}

// updateDisplay updates the terminal display
func (o *Orchestrator) updateDisplay() {
	project, startedAt, _ := o.tracker.Current()
	o.screen.Render(display.View{
		Jobs:          o.stateManager.Jobs(),
		Current:       project,
		StartedAt:     startedAt,
		Now:           o.clock.Now(),
		StatusMessage: o.stateManager.StatusMessage(),
		ShowHelp:      o.stateManager.ShowHelp(),
	})
}

// startWatcher initializes the file watcher
func (o *Orchestrator) startWatcher() error {
	fw, err := watcher.NewFileWatcher(o.config.DataDir, model.JobsFileName)
	if err != nil {
		return err
	}
	o.watcher = fw
	return nil
}

// handleFileChange handles file change events
func (o *Orchestrator) handleFileChange(event model.FileEvent) {
	util.LogDebugf("File changed: %s (%s)", event.Path, event.Operation)
	o.reloadJobs()
}

// Close cleans up all resources
func (o *Orchestrator) Close() error {
	if o.keyboard != nil {
		if err := o.keyboard.Close(); err != nil {
			util.LogError("Failed to restore terminal", util.F("error", err))
		}
	}

	if o.watcher != nil {
		if err := o.watcher.Close(); err != nil {
			return fmt.Errorf("failed to close file watcher: %w", err)
		}
	}

	return nil
}
