package model

import (
	"fmt"
	"strings"
	"time"
)

// TimestampLayout is the on-disk form of event timestamps: local date-time, no offset.
// TimestampMicroLayout is used instead when the time has a sub-second part.
const (
	TimestampLayout      = "2006-01-02T15:04:05"
	TimestampMicroLayout = "2006-01-02T15:04:05.000000"
)

var timestampLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// TimestampError reports an event whose timestamp could not be parsed
type TimestampError struct {
	Index int // position in the log, -1 when unknown
	Value string
	Err   error
}

func (e *TimestampError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("event %d: missing timestamp", e.Index)
	}
	return fmt.Sprintf("event %d: invalid timestamp %q: %v", e.Index, e.Value, e.Err)
}

func (e *TimestampError) Unwrap() error {
	return e.Err
}

// ParseTimestamp parses an ISO-8601 local date-time. Offsets, when present, are dropped and the
// wall clock is kept. A non-zero-padded hour ("2024-01-01T9:05:00") is padded before giving up.
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	t, err := parseLayouts(value)
	if err == nil {
		return t, nil
	}

	if fixed, ok := padHour(value); ok {
		if t, fixErr := parseLayouts(fixed); fixErr == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// FormatTimestamp renders t at microsecond precision: six fraction digits, or none when the
// microseconds are zero.
func FormatTimestamp(t time.Time) string {
	if t.Nanosecond()/int(time.Microsecond) == 0 {
		return t.Format(TimestampLayout)
	}
	return t.Format(TimestampMicroLayout)
}

func parseLayouts(value string) (time.Time, error) {
	var firstErr error
	for _, layout := range timestampLayouts {
		t, err := time.ParseInLocation(layout, value, time.UTC)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}

	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC), nil
	}
	return time.Time{}, firstErr
}

func padHour(value string) (string, bool) {
	datePart, timePart, found := strings.Cut(value, "T")
	if !found {
		datePart, timePart, found = strings.Cut(value, " ")
		if !found {
			return "", false
		}
	}
	if len(timePart) < 2 || timePart[1] != ':' {
		return "", false
	}
	return datePart + "T0" + timePart, true
}
