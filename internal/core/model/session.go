package model

import (
	"time"
)

// Session is a derived interval attributed to one project. After midnight splitting a session
// lies within one calendar date, except that End may be exactly the following midnight.
type Session struct {
	Start   time.Time
	End     time.Time
	Project string
	Color   string
}

// Duration returns End - Start
func (s Session) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// Day returns the calendar date key of the session start
func (s Session) Day() string {
	return s.Start.Format("2006-01-02")
}

// DayGroups buckets sessions by start date. Days is sorted ascending and is the chart's column axis.
type DayGroups struct {
	Days  []string
	ByDay map[string][]Session
}

// Len returns the total number of sessions across all days
func (g DayGroups) Len() int {
	n := 0
	for _, sessions := range g.ByDay {
		n += len(sessions)
	}
	return n
}

// Empty reports whether no day holds a session
func (g DayGroups) Empty() bool {
	return len(g.Days) == 0
}

// FileEvent represents a file system event
type FileEvent struct {
	Path      string
	Operation string
}
