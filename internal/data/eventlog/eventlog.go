// Package eventlog persists the append-only switch-event history as a JSON array.
// The whole file is rewritten on every append.
package eventlog

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bytedance/sonic"

	"github.com/penwyp/go-timesheet/internal/core/model"
	"github.com/penwyp/go-timesheet/internal/util"
)

var (
	// ErrNotFound means the history file does not exist
	ErrNotFound = errors.New("history file not found")
	// ErrCorrupt means the history file exists but is not a JSON array of events
	ErrCorrupt = errors.New("history file is not valid JSON")
	// ErrEmpty means the history file holds no events
	ErrEmpty = errors.New("no events found in history")
)

// Read loads every record from path for one-shot consumers such as the visualizer.
// Each failure mode maps to its own sentinel error.
func Read(path string) ([]model.EventRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read history file %s: %w", path, err)
	}

	records, err := decode(data)
	if err != nil {
		util.LogDebugf("Failed to decode history file %s: %v", path, err)
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmpty, path)
	}

	util.LogDebugf("Read %d events from %s", len(records), path)
	return records, nil
}

func decode(data []byte) ([]model.EventRecord, error) {
	var records []model.EventRecord
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("empty document")
	}
	if err := sonic.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Log is the writable history used by the dashboard. It is not safe for use by more than
// one process at a time: the last writer wins.
type Log struct {
	path string

	mu      sync.RWMutex
	records []model.EventRecord
}

// Open loads the history at path. A missing or corrupt file yields an empty log; other read
// errors are returned.
func Open(path string) (*Log, error) {
	l := &Log{path: path}

	records, err := Read(path)
	switch {
	case err == nil:
		l.records = records
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrEmpty):
	case errors.Is(err, ErrCorrupt):
		util.LogWarn("History file is corrupt, starting from an empty log", util.F("path", path))
	default:
		return nil, err
	}
	return l, nil
}

// Path returns the file backing the log
func (l *Log) Path() string {
	return l.path
}

// Append adds event and immediately rewrites the file. On failure the in-memory log is left
// unchanged and the error is returned.
func (l *Log) Append(event model.SwitchEvent) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	records := append(append(make([]model.EventRecord, 0, len(l.records)+1), l.records...), event.Record())
	if err := write(l.path, records); err != nil {
		return err
	}
	l.records = records
	return nil
}

// Records returns a copy of every record in append order
func (l *Log) Records() []model.EventRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	records := make([]model.EventRecord, len(l.records))
	copy(records, l.records)
	return records
}

// Last returns the most recently appended record
func (l *Log) Last() (model.EventRecord, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.records) == 0 {
		return model.EventRecord{}, false
	}
	return l.records[len(l.records)-1], true
}

// Len returns the number of records
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}

// write replaces path with records through a temp file and rename
func write(path string, records []model.EventRecord) error {
	data, err := sonic.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write history: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to save history: %w", err)
	}

	util.LogDebug("Saved history", util.F("path", path), util.F("events", len(records)))
	return nil
}
