package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/penwyp/go-timesheet/internal/core/color"
	"github.com/penwyp/go-timesheet/internal/core/model"
	"github.com/penwyp/go-timesheet/internal/util"
)

// EventStore is the append-only log the tracker writes switches to
type EventStore interface {
	Append(event model.SwitchEvent) error
	Last() (model.EventRecord, bool)
}

// ColorSource supplies the default color of a project
type ColorSource interface {
	HexFor(name string) string
}

// Tracker owns the "currently working on" state and records switches to the store
type Tracker struct {
	store  EventStore
	colors ColorSource
	clock  util.Clock

	mu        sync.RWMutex
	current   string
	startedAt time.Time
}

// NewTracker creates a Tracker with no active project. Call Restore to resume from the log.
func NewTracker(store EventStore, colors ColorSource, clock util.Clock) *Tracker {
	if clock == nil {
		clock = util.SystemClock{}
	}
	return &Tracker{
		store:  store,
		colors: colors,
		clock:  clock,
	}
}

// Restore resumes the last logged project unless the day was ended. An unparseable
// timestamp on that event restarts the timer at the current time.
func (t *Tracker) Restore() {
	t.mu.Lock()
	defer t.mu.Unlock()

	last, ok := t.store.Last()
	if !ok || last.Project == model.EndOfDay {
		t.current = ""
		t.startedAt = time.Time{}
		return
	}

	t.current = last.Project
	startedAt, err := model.ParseTimestamp(last.Timestamp)
	if err != nil {
		util.LogWarn("Unparseable timestamp on last event, restarting timer",
			util.F("timestamp", last.Timestamp), util.F("error", err))
		startedAt = t.clock.Now()
	}
	t.startedAt = startedAt
	util.LogInfo("Restored current project", util.F("project", t.current))
}

// Current returns the active project and when it started. ok is false when nothing is active.
func (t *Tracker) Current() (project string, startedAt time.Time, ok bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.current, t.startedAt, t.current != ""
}

// SwitchTo records a switch to project. It is a no-op returning false when project is already
// current. The sentinel always gets EndOfDayColor; otherwise colorOverride wins over the
// assigned color. The log is persisted before the in-memory state changes.
func (t *Tracker) SwitchTo(project, colorOverride string) (bool, error) {
	if project == "" {
		return false, fmt.Errorf("project name must not be empty")
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if project == t.current {
		return false, nil
	}

	var hex string
	switch {
	case project == model.EndOfDay:
		hex = color.EndOfDayColor
	case colorOverride != "":
		if _, err := color.ParseHex(colorOverride); err != nil {
			return false, err
		}
		hex = colorOverride
	default:
		hex = t.colors.HexFor(project)
	}

	now := t.clock.Now()
	event := model.SwitchEvent{Timestamp: now, Project: project, Color: hex}
	if err := t.store.Append(event); err != nil {
		return false, fmt.Errorf("failed to record switch to %s: %w", project, err)
	}

	util.LogInfo("Switched project", util.F("from", t.current), util.F("to", project), util.F("color", hex))
	t.current = project
	t.startedAt = now
	return true, nil
}

// EndDay records the end-of-day sentinel
func (t *Tracker) EndDay() (bool, error) {
	return t.SwitchTo(model.EndOfDay, "")
}

// Elapsed returns how long the current project has been active
func (t *Tracker) Elapsed() time.Duration {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.current == "" || t.current == model.EndOfDay {
		return 0
	}
	return t.clock.Now().Sub(t.startedAt)
}
