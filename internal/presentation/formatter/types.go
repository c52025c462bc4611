package formatter

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/penwyp/go-timesheet/internal/core/model"
	"github.com/penwyp/go-timesheet/internal/util"
)

// SessionRow is one exported work session
type SessionRow struct {
	Date     string        `json:"date"`
	Project  string        `json:"project"`
	Color    string        `json:"color"`
	Start    string        `json:"start"`
	End      string        `json:"end"`
	Hours    float64       `json:"hours"`
	Duration time.Duration `json:"-"`
}

// DayData holds the sessions of one calendar date and their total
type DayData struct {
	Date       string        `json:"date"`
	Sessions   []SessionRow  `json:"sessions"`
	TotalHours float64       `json:"total_hours"`
	Total      time.Duration `json:"-"`
}

// Formatter writes exported sessions
type Formatter interface {
	Format(data []DayData) error
}

const (
	FormatTable   = "table"
	FormatJSON    = "json"
	FormatCSV     = "csv"
	FormatSummary = "summary"
)

// New returns the formatter for format writing to w
func New(format string, w io.Writer) (Formatter, error) {
	switch format {
	case FormatTable, "":
		return NewTableFormatter(w), nil
	case FormatJSON:
		return NewJSONFormatter(w), nil
	case FormatCSV:
		return NewCSVFormatter(w), nil
	case FormatSummary:
		return NewSummaryFormatter(w), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// FromDayGroups flattens grouped sessions into export rows. End-of-day markers carry no work
// and are left out; days left with no sessions are dropped.
func FromDayGroups(groups model.DayGroups) []DayData {
	data := make([]DayData, 0, len(groups.Days))
	for _, day := range groups.Days {
		entry := DayData{Date: day}
		for _, s := range groups.ByDay[day] {
			if s.Project == model.EndOfDay {
				continue
			}
			entry.Sessions = append(entry.Sessions, SessionRow{
				Date:     day,
				Project:  s.Project,
				Color:    s.Color,
				Start:    s.Start.Format("15:04"),
				End:      clockEnd(s),
				Hours:    roundHours(s.Duration()),
				Duration: s.Duration(),
			})
			entry.Total += s.Duration()
		}
		if len(entry.Sessions) == 0 {
			continue
		}
		entry.TotalHours = roundHours(entry.Total)
		data = append(data, entry)
	}
	return data
}

// clockEnd shows a fragment that runs to the following midnight as 24:00
func clockEnd(s model.Session) string {
	if !util.SameDate(s.Start, s.End) {
		return "24:00"
	}
	return s.End.Format("15:04")
}

func roundHours(d time.Duration) float64 {
	return math.Round(d.Hours()*100) / 100
}
