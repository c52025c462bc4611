package model

import (
	"errors"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventRecord_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected EventRecord
	}{
		{
			name:     "strings",
			input:    `{"timestamp": "2024-01-01T09:00:00", "project": "Job1", "color": "#5bdee5"}`,
			expected: EventRecord{Timestamp: "2024-01-01T09:00:00", Project: "Job1", Color: "#5bdee5"},
		},
		{
			name:     "numeric timestamp",
			input:    `{"timestamp": 1704099600, "project": "Job1", "color": "#5bdee5"}`,
			expected: EventRecord{Timestamp: "1704099600", Project: "Job1", Color: "#5bdee5"},
		},
		{
			name:     "non-string fields",
			input:    `{"timestamp": true, "project": 42, "color": null}`,
			expected: EventRecord{Timestamp: "true", Project: "42"},
		},
		{
			name:     "nested timestamp",
			input:    `{"timestamp": ["2024-01-01"]}`,
			expected: EventRecord{Timestamp: `["2024-01-01"]`},
		},
		{
			name:     "not an object",
			input:    `"2024-01-01T09:00:00"`,
			expected: EventRecord{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var record EventRecord
			require.NoError(t, sonic.Unmarshal([]byte(tt.input), &record))
			assert.Equal(t, tt.expected, record)
		})
	}
}

func TestEventRecord_DecodeRejectsNonStringTimestamp(t *testing.T) {
	var records []EventRecord
	require.NoError(t, sonic.Unmarshal([]byte(`[{"timestamp": 1704099600, "project": "Job1"}, 7]`), &records))
	require.Len(t, records, 2)

	_, err := records[0].Decode()
	var tsErr *TimestampError
	require.True(t, errors.As(err, &tsErr))
	assert.Equal(t, "1704099600", tsErr.Value)

	_, err = records[1].Decode()
	require.True(t, errors.As(err, &tsErr))
	assert.Contains(t, err.Error(), "missing timestamp")
}
