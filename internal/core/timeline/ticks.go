package timeline

import (
	"math"
	"time"
)

// Ticks returns tick positions from 0 to 24 hours inclusive, every step hours
func Ticks(step float64) []float64 {
	if step <= 0 {
		step = 0.5
	}
	n := int(math.Round(24 / step))
	ticks := make([]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		ticks = append(ticks, float64(i)*step)
	}
	return ticks
}

// FormatHourTick renders a fractional hour as "9:30 AM". 24:00 and beyond wrap to "12:00 AM".
func FormatHourTick(hour float64) string {
	totalMinutes := int(math.Round(hour * 60))
	if totalMinutes >= 24*60 {
		return "12:00 AM"
	}
	if totalMinutes < 0 {
		totalMinutes = 0
	}
	return time.Date(2000, 1, 1, totalMinutes/60, totalMinutes%60, 0, 0, time.UTC).Format("3:04 PM")
}
