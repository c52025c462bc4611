package jobs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/penwyp/go-timesheet/internal/core/color"
	"github.com/penwyp/go-timesheet/internal/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, content *string) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), model.JobsFileName)
	if content != nil {
		require.NoError(t, os.WriteFile(path, []byte(*content), 0644))
	}
	return NewStore(path, color.NewAssigner(color.DefaultSaturation, color.DefaultValue))
}

func TestStore_Load(t *testing.T) {
	defaults := []model.Job{{Name: "Job1", Color: "#5bdee5"}, {Name: "Job2", Color: "#b55be5"}}

	tests := []struct {
		name     string
		content  *string
		expected []model.Job
	}{
		{name: "missing file", expected: defaults},
		{name: "invalid json", content: ptr("[oops"), expected: defaults},
		{name: "empty list", content: ptr("[]"), expected: defaults},
		{name: "only malformed entries", content: ptr(`[{"name": "NoColor"}, 42, ""]`), expected: defaults},
		{
			name:    "legacy strings upgraded",
			content: ptr(`["Falcon", "Toyota"]`),
			expected: []model.Job{
				{Name: "Falcon", Color: "#5be56e"},
				{Name: "Toyota", Color: "#e5b95b"},
			},
		},
		{
			name:    "mixed forms",
			content: ptr(`["Falcon", {"name": "Client", "color": "#123456"}, {"color": "#000000"}]`),
			expected: []model.Job{
				{Name: "Falcon", Color: "#5be56e"},
				{Name: "Client", Color: "#123456"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStore(t, tt.content)
			assert.Equal(t, tt.expected, s.Load())
		})
	}
}

func TestStore_SaveRoundTripAndFallback(t *testing.T) {
	s := newStore(t, nil)

	require.NoError(t, s.Save([]model.Job{{Name: "  Falcon  "}, {Name: "   "}, {Name: "Client", Color: "#123456"}}))
	assert.Equal(t, []model.Job{{Name: "Falcon", Color: "#5be56e"}, {Name: "Client", Color: "#123456"}}, s.Load())

	require.NoError(t, s.Save(nil))
	assert.Equal(t, s.Defaults(), s.Load())
}

func TestStore_CRUD(t *testing.T) {
	s := newStore(t, nil)

	jobs, err := s.Add("Falcon", "")
	require.NoError(t, err)
	assert.Len(t, jobs, 3)

	_, err = s.Add("Falcon", "")
	assert.Error(t, err, "duplicates are rejected")
	_, err = s.Add("Bad", "#zzzzzz")
	assert.Error(t, err)
	_, err = s.Add(" ", "")
	assert.Error(t, err)

	jobs, err = s.SetColor("Falcon", "#010203")
	require.NoError(t, err)
	assert.Equal(t, model.Job{Name: "Falcon", Color: "#010203"}, jobs[2])

	jobs, err = s.Rename("Falcon", "Hawk")
	require.NoError(t, err)
	assert.Equal(t, model.Job{Name: "Hawk", Color: "#010203"}, jobs[2])
	_, err = s.Rename("Hawk", "Job1")
	assert.Error(t, err)

	jobs, err = s.Remove("Hawk")
	require.NoError(t, err)
	assert.Equal(t, s.Defaults(), jobs)

	_, err = s.Remove("Hawk")
	assert.Error(t, err)

	_, err = s.Remove("Job1")
	require.NoError(t, err)
	jobs, err = s.Remove("Job2")
	require.NoError(t, err)
	assert.Equal(t, s.Defaults(), jobs, "removing every job falls back to the defaults")
}

func ptr(s string) *string {
	return &s
}
