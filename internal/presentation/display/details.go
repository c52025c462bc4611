package display

import (
	"fmt"
	"time"

	"github.com/penwyp/go-timesheet/internal/core/model"
	"github.com/penwyp/go-timesheet/internal/util"
)

// NoProjectStatus is shown before any project has been picked
const NoProjectStatus = "No project selected"

// FormatStatus renders the status line for the current project
func FormatStatus(project string) string {
	if project == "" {
		return NoProjectStatus
	}
	return "Current project: " + project
}

// FormatDetails renders the start time and elapsed duration of the current project, e.g.
// "Start Time: 09:05am\nDuration: 2hrs 5mins". It is empty when nothing is active or the day
// has been ended.
func FormatDetails(project string, start, now time.Time) string {
	if project == "" || project == model.EndOfDay || start.IsZero() {
		return ""
	}
	return fmt.Sprintf("Start Time: %s\nDuration: %s", util.FormatClock12(start), util.FormatElapsed(now.Sub(start)))
}
