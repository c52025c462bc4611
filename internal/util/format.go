package util

import (
	"fmt"
	"strings"
	"time"
)

// FormatDuration renders d as "2h 5m", or "5m" below an hour
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// FormatElapsed renders the time-of-day part of d as "2hrs 5mins". Whole days are dropped,
// matching what the dashboard has always shown for sessions left open overnight.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d/time.Second) % 86400
	return fmt.Sprintf("%dhrs %dmins", secs/3600, (secs%3600)/60)
}

// FormatClock12 renders t as "09:05am"
func FormatClock12(t time.Time) string {
	return strings.ToLower(t.Format("03:04PM"))
}

// FormatHours renders fractional hours with two decimals
func FormatHours(d time.Duration) string {
	return fmt.Sprintf("%.2f", d.Hours())
}
