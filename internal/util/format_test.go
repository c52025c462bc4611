package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Duration
		expected string
	}{
		{"zero", 0, "0m"},
		{"negative clamps", -time.Minute, "0m"},
		{"minutes only", 45 * time.Minute, "45m"},
		{"hours and minutes", 2*time.Hour + 5*time.Minute, "2h 5m"},
		{"whole hours", 3 * time.Hour, "3h 0m"},
		{"seconds dropped", time.Hour + 59*time.Second, "1h 0m"},
		{"more than a day", 26 * time.Hour, "26h 0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDuration(tt.input))
		})
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Duration
		expected string
	}{
		{"zero", 0, "0hrs 0mins"},
		{"two hours five", 2*time.Hour + 5*time.Minute + 30*time.Second, "2hrs 5mins"},
		{"whole days dropped", 25*time.Hour + 10*time.Minute, "1hrs 10mins"},
		{"negative clamps", -time.Hour, "0hrs 0mins"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatElapsed(tt.input))
		})
	}
}

func TestFormatClock12(t *testing.T) {
	assert.Equal(t, "09:05am", FormatClock12(time.Date(2024, 1, 1, 9, 5, 0, 0, time.UTC)))
	assert.Equal(t, "12:00pm", FormatClock12(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, "11:59pm", FormatClock12(time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC)))
	assert.Equal(t, "12:00am", FormatClock12(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "1.50", FormatHours(90*time.Minute))
	assert.Equal(t, "0.33", FormatHours(20*time.Minute))
}
