package session

import (
	"errors"
	"fmt"
	"sort"

	"github.com/penwyp/go-timesheet/internal/core/model"
	"github.com/penwyp/go-timesheet/internal/util"
)

// Builder turns a flat switch-event log into day-bounded sessions
type Builder struct {
	config BuilderConfig
}

// NewBuilder creates a Builder. A non-positive FinalExtension falls back to the default.
func NewBuilder(config BuilderConfig) *Builder {
	if config.FinalExtension <= 0 {
		config.FinalExtension = DefaultFinalExtension
	}
	return &Builder{config: config}
}

// DecodeRecords validates every record, failing on the first bad timestamp
func DecodeRecords(records []model.EventRecord) ([]model.SwitchEvent, error) {
	events := make([]model.SwitchEvent, 0, len(records))
	for i, record := range records {
		event, err := record.Decode()
		if err != nil {
			var tsErr *model.TimestampError
			if errors.As(err, &tsErr) {
				tsErr.Index = i
				return nil, tsErr
			}
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		events = append(events, event)
	}
	return events, nil
}

// Build reconstructs sessions from events. The input is not modified and may be unsorted.
// The result is ordered by start time and every session lies within one calendar date,
// ending at the following midnight at the latest.
func (b *Builder) Build(events []model.SwitchEvent) []model.Session {
	if len(events) == 0 {
		return []model.Session{}
	}

	sorted := make([]model.SwitchEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	raw := make([]model.Session, 0, len(sorted))
	for i := 0; i < len(sorted)-1; i++ {
		current, next := sorted[i], sorted[i+1]
		end := next.Timestamp
		if !util.SameDate(current.Timestamp, next.Timestamp) {
			end = util.NextMidnight(current.Timestamp)
		}
		raw = append(raw, model.Session{
			Start:   current.Timestamp,
			End:     end,
			Project: current.Project,
			Color:   current.Color,
		})
	}
	raw = append(raw, b.finalSession(sorted[len(sorted)-1]))

	sessions := make([]model.Session, 0, len(raw))
	for _, s := range raw {
		sessions = append(sessions, SplitAtMidnight(s)...)
	}

	util.LogDebugf("Built %d sessions from %d events", len(sessions), len(events))
	return sessions
}

// BuildDays decodes records, builds sessions and groups them by day
func (b *Builder) BuildDays(records []model.EventRecord) (model.DayGroups, error) {
	events, err := DecodeRecords(records)
	if err != nil {
		return model.DayGroups{}, err
	}
	return GroupByDay(b.Build(events)), nil
}

// finalSession synthesizes the session of the last event, which has no successor
func (b *Builder) finalSession(last model.SwitchEvent) model.Session {
	end := last.Timestamp
	if !last.IsEndOfDay() {
		end = last.Timestamp.Add(b.config.FinalExtension)
	}
	return model.Session{
		Start:   last.Timestamp,
		End:     end,
		Project: last.Project,
		Color:   last.Color,
	}
}

// SplitAtMidnight cuts s at every midnight it crosses. A fragment may end exactly at the next
// midnight; an empty tail after the last cut is dropped. Sessions within one date come back as is.
func SplitAtMidnight(s model.Session) []model.Session {
	if util.SameDate(s.Start, s.End) || !s.End.After(s.Start) {
		return []model.Session{s}
	}

	var fragments []model.Session
	current := s.Start
	for util.StartOfDay(current).Before(util.StartOfDay(s.End)) {
		midnight := util.NextMidnight(current)
		fragments = append(fragments, model.Session{
			Start:   current,
			End:     midnight,
			Project: s.Project,
			Color:   s.Color,
		})
		current = midnight
	}
	if current.Before(s.End) {
		fragments = append(fragments, model.Session{
			Start:   current,
			End:     s.End,
			Project: s.Project,
			Color:   s.Color,
		})
	}
	return fragments
}

// GroupByDay buckets sessions by start date, keeping their relative order within a day
func GroupByDay(sessions []model.Session) model.DayGroups {
	groups := model.DayGroups{
		Days:  []string{},
		ByDay: make(map[string][]model.Session),
	}
	for _, s := range sessions {
		day := util.DateKey(s.Start)
		if _, ok := groups.ByDay[day]; !ok {
			groups.Days = append(groups.Days, day)
		}
		groups.ByDay[day] = append(groups.ByDay[day], s)
	}
	sort.Strings(groups.Days)
	return groups
}
