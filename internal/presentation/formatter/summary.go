package formatter

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/penwyp/go-timesheet/internal/util"
)

// SummaryFormatter prints time spent per project over the exported range
type SummaryFormatter struct {
	w io.Writer
}

// NewSummaryFormatter creates a new instance of SummaryFormatter.
func NewSummaryFormatter(w io.Writer) *SummaryFormatter {
	return &SummaryFormatter{w: w}
}

// ProjectTotal is the accumulated time of one project
type ProjectTotal struct {
	Project  string
	Duration time.Duration
	Sessions int
}

// ProjectTotals sums durations per project, longest first, ties by name
func ProjectTotals(data []DayData) []ProjectTotal {
	byProject := make(map[string]*ProjectTotal)
	for _, day := range data {
		for _, row := range day.Sessions {
			total, ok := byProject[row.Project]
			if !ok {
				total = &ProjectTotal{Project: row.Project}
				byProject[row.Project] = total
			}
			total.Duration += row.Duration
			total.Sessions++
		}
	}

	totals := make([]ProjectTotal, 0, len(byProject))
	for _, total := range byProject {
		totals = append(totals, *total)
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Duration != totals[j].Duration {
			return totals[i].Duration > totals[j].Duration
		}
		return totals[i].Project < totals[j].Project
	})
	return totals
}

func (f *SummaryFormatter) Format(data []DayData) error {
	var b strings.Builder
	b.WriteString(strings.Repeat("=", 60) + "\n")
	b.WriteString("Timesheet Summary Report\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	if len(data) == 0 {
		b.WriteString("No data to summarize\n\n")
		b.WriteString(strings.Repeat("=", 60) + "\n")
		_, err := io.WriteString(f.w, b.String())
		return err
	}

	firstDate, lastDate := data[0].Date, data[len(data)-1].Date
	if firstDate == lastDate {
		fmt.Fprintf(&b, "Date Range: %s\n", firstDate)
	} else {
		fmt.Fprintf(&b, "Date Range: %s to %s\n", firstDate, lastDate)
	}
	b.WriteString("\n")

	var grand time.Duration
	for _, day := range data {
		grand += day.Total
	}
	fmt.Fprintf(&b, "Days worked: %d\n", len(data))
	fmt.Fprintf(&b, "Total time:  %s\n\n", util.FormatDuration(grand))

	b.WriteString("Projects:\n")
	b.WriteString(strings.Repeat("-", 60) + "\n")
	for _, total := range ProjectTotals(data) {
		share := 0.0
		if grand > 0 {
			share = float64(total.Duration) / float64(grand) * 100
		}
		fmt.Fprintf(&b, "  %s %10s %6.1f%%  (%d sessions)\n",
			util.PadString(total.Project, 24, true), util.FormatDuration(total.Duration), share, total.Sessions)
	}

	b.WriteString("\n" + strings.Repeat("=", 60) + "\n")
	_, err := io.WriteString(f.w, b.String())
	return err
}
