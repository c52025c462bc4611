package timeline

import (
	"math"
	"time"

	"github.com/penwyp/go-timesheet/internal/core/model"
	"github.com/penwyp/go-timesheet/internal/util"
)

// Layout maps day-grouped sessions onto chart geometry
type Layout struct {
	config Config
}

// NewLayout creates a Layout. Values outside [0, 24] fall back to the defaults.
func NewLayout(config Config) *Layout {
	if config.CutoffHour < 0 || config.CutoffHour > 24 {
		config.CutoffHour = DefaultCutoffHour
	}
	if config.LabelMinHours < 0 || config.LabelMinHours > 24 {
		config.LabelMinHours = DefaultLabelMinHours
	}
	return &Layout{config: config}
}

// Config returns the effective thresholds
func (l *Layout) Config() Config {
	return l.config
}

// Build returns one fill rect per session in day order, each followed by its late-work overlay
// when the block ends after the cutoff hour.
func (l *Layout) Build(groups model.DayGroups) []Rect {
	rects := make([]Rect, 0, groups.Len())
	for column, day := range groups.Days {
		for _, s := range groups.ByDay[day] {
			fill := l.fillRect(column, day, s)
			rects = append(rects, fill)
			if overlay, ok := l.overlayRect(fill); ok {
				rects = append(rects, overlay)
			}
		}
	}
	return rects
}

func (l *Layout) fillRect(column int, day string, s model.Session) Rect {
	yStart := util.FractionalHour(s.Start)
	yEnd := EndHour(s.Start, s.End)
	return Rect{
		Column:    column,
		Day:       day,
		YStart:    yStart,
		YEnd:      yEnd,
		Project:   s.Project,
		Color:     s.Color,
		Kind:      KindFill,
		ShowLabel: yEnd-yStart >= l.config.LabelMinHours,
	}
}

func (l *Layout) overlayRect(fill Rect) (Rect, bool) {
	if fill.YEnd <= l.config.CutoffHour {
		return Rect{}, false
	}
	return Rect{
		Column:  fill.Column,
		Day:     fill.Day,
		YStart:  math.Max(fill.YStart, l.config.CutoffHour),
		YEnd:    fill.YEnd,
		Project: fill.Project,
		Color:   fill.Color,
		Kind:    KindOverlay,
	}, true
}

// EndHour is the fractional end hour of a session starting at start, or 24.0 when end falls on
// a later date than start.
func EndHour(start, end time.Time) float64 {
	if !util.SameDate(start, end) {
		return 24.0
	}
	return util.FractionalHour(end)
}
