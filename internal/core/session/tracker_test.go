package session

import (
	"errors"
	"testing"
	"time"

	"github.com/penwyp/go-timesheet/internal/core/color"
	"github.com/penwyp/go-timesheet/internal/core/model"
	"github.com/penwyp/go-timesheet/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	records []model.EventRecord
	err     error
}

func (m *memoryStore) Append(event model.SwitchEvent) error {
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, event.Record())
	return nil
}

func (m *memoryStore) Last() (model.EventRecord, bool) {
	if len(m.records) == 0 {
		return model.EventRecord{}, false
	}
	return m.records[len(m.records)-1], true
}

func newTestTracker(store *memoryStore) (*Tracker, *util.FixedClock) {
	clock := util.NewFixedClock(at("2024-01-01T09:00"))
	return NewTracker(store, color.NewAssigner(color.DefaultSaturation, color.DefaultValue), clock), clock
}

func TestTracker_SwitchTo(t *testing.T) {
	store := &memoryStore{}
	tracker, clock := newTestTracker(store)

	_, _, ok := tracker.Current()
	assert.False(t, ok)

	switched, err := tracker.SwitchTo("Job1", "")
	require.NoError(t, err)
	assert.True(t, switched)
	require.Len(t, store.records, 1)
	assert.Equal(t, model.EventRecord{Timestamp: "2024-01-01T09:00:00", Project: "Job1", Color: "#5bdee5"}, store.records[0])

	clock.Advance(30 * time.Minute)
	switched, err = tracker.SwitchTo("Job1", "#000000")
	require.NoError(t, err)
	assert.False(t, switched, "switching to the current project is a no-op")
	assert.Len(t, store.records, 1)
	assert.Equal(t, 30*time.Minute, tracker.Elapsed())

	switched, err = tracker.SwitchTo("Job2", "#abcdef")
	require.NoError(t, err)
	assert.True(t, switched)
	assert.Equal(t, "#abcdef", store.records[1].Color)

	project, startedAt, ok := tracker.Current()
	assert.True(t, ok)
	assert.Equal(t, "Job2", project)
	assert.Equal(t, at("2024-01-01T09:30"), startedAt)

	clock.Advance(time.Hour)
	switched, err = tracker.EndDay()
	require.NoError(t, err)
	assert.True(t, switched)
	assert.Equal(t, model.EventRecord{Timestamp: "2024-01-01T10:30:00", Project: model.EndOfDay, Color: color.EndOfDayColor}, store.records[2])
	assert.Equal(t, time.Duration(0), tracker.Elapsed())
}

func TestTracker_SwitchToRejectsBadInput(t *testing.T) {
	store := &memoryStore{}
	tracker, _ := newTestTracker(store)

	_, err := tracker.SwitchTo("", "")
	assert.Error(t, err)

	_, err = tracker.SwitchTo("Job1", "blue")
	assert.Error(t, err)
	assert.Empty(t, store.records)
}

func TestTracker_PersistenceFailureKeepsState(t *testing.T) {
	store := &memoryStore{err: errors.New("disk full")}
	tracker, _ := newTestTracker(store)

	switched, err := tracker.SwitchTo("Job1", "")
	assert.False(t, switched)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	_, _, ok := tracker.Current()
	assert.False(t, ok)
}

func TestTracker_Restore(t *testing.T) {
	tests := []struct {
		name        string
		records     []model.EventRecord
		wantOK      bool
		wantProject string
		wantStart   time.Time
	}{
		{
			name:   "empty log",
			wantOK: false,
		},
		{
			name: "day was ended",
			records: []model.EventRecord{
				{Timestamp: "2024-01-01T08:00:00", Project: "Job1"},
				{Timestamp: "2024-01-01T08:30:00", Project: model.EndOfDay},
			},
			wantOK: false,
		},
		{
			name: "resumes last project",
			records: []model.EventRecord{
				{Timestamp: "2024-01-01T08:00:00", Project: "Job1"},
			},
			wantOK:      true,
			wantProject: "Job1",
			wantStart:   at("2024-01-01T08:00"),
		},
		{
			name: "bad timestamp restarts timer",
			records: []model.EventRecord{
				{Timestamp: "garbage", Project: "Job2"},
			},
			wantOK:      true,
			wantProject: "Job2",
			wantStart:   at("2024-01-01T09:00"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker, _ := newTestTracker(&memoryStore{records: tt.records})
			tracker.Restore()

			project, startedAt, ok := tracker.Current()
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantProject, project)
				assert.Equal(t, tt.wantStart, startedAt)
			}
		})
	}
}

func TestTracker_RestoredProjectIsNoOp(t *testing.T) {
	store := &memoryStore{records: []model.EventRecord{{Timestamp: "2024-01-01T08:00:00", Project: "Job1"}}}
	tracker, _ := newTestTracker(store)
	tracker.Restore()

	switched, err := tracker.SwitchTo("Job1", "")
	require.NoError(t, err)
	assert.False(t, switched)
	assert.Len(t, store.records, 1)
}
