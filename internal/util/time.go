package util

import (
	"sync"
	"time"
)

// DateLayout is the calendar-date key used to group sessions by day
const DateLayout = "2006-01-02"

// Clock supplies the current naive local time
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock of the machine
type SystemClock struct{}

// Now returns the local wall-clock time as a naive value
func (SystemClock) Now() time.Time {
	return Naive(time.Now())
}

// FixedClock returns a settable instant, for tests and replays
type FixedClock struct {
	mu sync.RWMutex
	t  time.Time
}

// NewFixedClock creates a clock frozen at t
func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{t: Naive(t)}
}

func (c *FixedClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.t
}

// Set moves the clock to t
func (c *FixedClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = Naive(t)
}

// Advance moves the clock forward by d
func (c *FixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// Naive keeps the wall-clock fields of t and drops its zone. Naive values live in UTC so
// calendar arithmetic never crosses a DST transition.
func Naive(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// StartOfDay returns midnight at the start of t's calendar date
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// NextMidnight returns midnight at the start of the day after t's calendar date
func NextMidnight(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1)
}

// SameDate reports whether a and b fall on the same calendar date
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DateKey formats t's calendar date as YYYY-MM-DD
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// FractionalHour returns hour + minute/60 + second/3600
func FractionalHour(t time.Time) float64 {
	return float64(t.Hour()) + float64(t.Minute())/60 + float64(t.Second())/3600
}
