package eventlog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/penwyp/go-timesheet/internal/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), model.HistoryFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRead(t *testing.T) {
	tests := []struct {
		name    string
		content *string
		wantErr error
		wantLen int
	}{
		{name: "missing file", content: nil, wantErr: ErrNotFound},
		{name: "invalid json", content: strPtr("{not json"), wantErr: ErrCorrupt},
		{name: "blank file", content: strPtr("  \n"), wantErr: ErrCorrupt},
		{name: "object instead of array", content: strPtr(`{"timestamp": "x"}`), wantErr: ErrCorrupt},
		{name: "empty array", content: strPtr("[]"), wantErr: ErrEmpty},
		{name: "null document", content: strPtr("null"), wantErr: ErrEmpty},
		{
			name:    "numeric timestamp is left for decoding",
			content: strPtr(`[{"timestamp": 1704099600, "project": "Job1", "color": "#5bdee5"}]`),
			wantLen: 1,
		},
		{
			name:    "non-object element is left for decoding",
			content: strPtr(`[{"timestamp": "2024-01-01T09:00:00", "project": "Job1"}, 42]`),
			wantLen: 2,
		},
		{
			name: "valid events",
			content: strPtr(`[
    {"timestamp": "2024-01-01T09:00:00.123456", "project": "Job1", "color": "#5bdee5"},
    {"timestamp": "2024-01-01T12:00:00", "project": "END_OF_DAY", "color": "#ff6666"}
]`),
			wantLen: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), model.HistoryFileName)
			if tt.content != nil {
				path = writeFile(t, *tt.content)
			}

			records, err := Read(path)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				for _, other := range []error{ErrNotFound, ErrCorrupt, ErrEmpty} {
					if other != tt.wantErr {
						assert.False(t, errors.Is(err, other))
					}
				}
				return
			}
			require.NoError(t, err)
			assert.Len(t, records, tt.wantLen)
		})
	}
}

func TestRead_KeepsNonStringTimestampText(t *testing.T) {
	records, err := Read(writeFile(t, `[{"timestamp": 1704099600, "project": "Job1", "color": "#5bdee5"}]`))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "1704099600", records[0].Timestamp)

	_, err = records[0].Decode()
	var tsErr *model.TimestampError
	assert.True(t, errors.As(err, &tsErr))
}

func TestOpen_TolerantOfMissingAndCorrupt(t *testing.T) {
	l, err := Open(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Equal(t, 0, l.Len())

	l, err = Open(writeFile(t, "garbage"))
	require.NoError(t, err)
	assert.Equal(t, 0, l.Len())
	_, ok := l.Last()
	assert.False(t, ok)
}

func TestLog_AppendPersistsImmediately(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", model.HistoryFileName)
	l, err := Open(path)
	require.NoError(t, err)

	first := model.SwitchEvent{Timestamp: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC), Project: "Job1", Color: "#5bdee5"}
	require.NoError(t, l.Append(first))

	records, err := Read(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, model.EventRecord{Timestamp: "2024-01-01T09:00:00", Project: "Job1", Color: "#5bdee5"}, records[0])

	second := model.SwitchEvent{Timestamp: time.Date(2024, 1, 1, 9, 30, 0, 500000000, time.UTC), Project: "Job2", Color: "#b55be5"}
	require.NoError(t, l.Append(second))

	reopened, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, l.Records(), reopened.Records())
	last, ok := reopened.Last()
	require.True(t, ok)
	assert.Equal(t, "2024-01-01T09:30:00.500000", last.Timestamp)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestLog_AppendKeepsUnparseableRecords(t *testing.T) {
	path := writeFile(t, `[{"timestamp": "not a time", "project": "Legacy"}]`)
	l, err := Open(path)
	require.NoError(t, err)

	require.NoError(t, l.Append(model.SwitchEvent{Timestamp: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC), Project: "Job1", Color: "#000000"}))

	records, err := Read(path)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "not a time", records[0].Timestamp)
}

func TestLog_AppendFailurePropagates(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	l := &Log{path: filepath.Join(blocker, model.HistoryFileName)}

	err := l.Append(model.SwitchEvent{Timestamp: time.Now(), Project: "Job1", Color: "#000000"})
	require.Error(t, err)
	assert.Equal(t, 0, l.Len())
}

func strPtr(s string) *string {
	return &s
}
