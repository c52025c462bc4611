package dashboard

import (
	"sync"

	"github.com/penwyp/go-timesheet/internal/core/model"
)

// StateManager manages dashboard state in a thread-safe manner
type StateManager struct {
	mu sync.RWMutex

	jobs          []model.Job
	statusMessage string
	showHelp      bool
}

// NewStateManager creates a new StateManager instance
func NewStateManager() *StateManager {
	return &StateManager{
		jobs: make([]model.Job, 0),
	}
}

// Jobs returns a copy of the job list
func (sm *StateManager) Jobs() []model.Job {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	jobs := make([]model.Job, len(sm.jobs))
	copy(jobs, sm.jobs)
	return jobs
}

// SetJobs replaces the job list
func (sm *StateManager) SetJobs(jobs []model.Job) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.jobs = jobs
}

// Job returns the job at index
func (sm *StateManager) Job(index int) (model.Job, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if index < 0 || index >= len(sm.jobs) {
		return model.Job{}, false
	}
	return sm.jobs[index], true
}

// StatusMessage returns the transient message shown under the buttons
func (sm *StateManager) StatusMessage() string {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.statusMessage
}

// SetStatusMessage sets the transient message; empty clears it
func (sm *StateManager) SetStatusMessage(message string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.statusMessage = message
}

// ShowHelp reports whether the help screen is open
func (sm *StateManager) ShowHelp() bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.showHelp
}

// ToggleHelp opens or closes the help screen
func (sm *StateManager) ToggleHelp() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.showHelp = !sm.showHelp
}
