package model

import (
	"fmt"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
)

// NeutralColor is used for events stored without a color
const NeutralColor = "#cccccc"

// EventRecord is a switch event exactly as persisted in the history file
type EventRecord struct {
	Timestamp string `json:"timestamp"`
	Project   string `json:"project"`
	Color     string `json:"color"`
}

// UnmarshalJSON accepts any JSON value for each field. Non-string values are kept as their JSON
// text so a numeric timestamp surfaces as a TimestampError rather than a document error, and a
// non-object element decodes as a record with no timestamp.
func (r *EventRecord) UnmarshalJSON(data []byte) error {
	var fields map[string]interface{}
	if err := sonic.Unmarshal(data, &fields); err != nil {
		*r = EventRecord{}
		return nil
	}

	*r = EventRecord{
		Timestamp: fieldText(fields["timestamp"]),
		Project:   fieldText(fields["project"]),
		Color:     fieldText(fields["color"]),
	}
	return nil
}

func fieldText(v interface{}) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		text, err := sonic.Marshal(value)
		if err != nil {
			return fmt.Sprint(value)
		}
		return string(text)
	}
}

// SwitchEvent is a decoded, validated EventRecord
type SwitchEvent struct {
	Timestamp time.Time
	Project   string
	Color     string
}

// Decode validates the record. Missing project and color fall back to UnknownProject and
// NeutralColor; a missing or malformed timestamp is an error.
func (r EventRecord) Decode() (SwitchEvent, error) {
	ts, err := ParseTimestamp(r.Timestamp)
	if err != nil {
		return SwitchEvent{}, &TimestampError{Index: -1, Value: r.Timestamp, Err: err}
	}

	project := r.Project
	if project == "" {
		project = UnknownProject
	}
	color := r.Color
	if color == "" {
		color = NeutralColor
	}

	return SwitchEvent{Timestamp: ts, Project: project, Color: color}, nil
}

// Record converts the event back to its persisted form
func (e SwitchEvent) Record() EventRecord {
	return EventRecord{
		Timestamp: FormatTimestamp(e.Timestamp),
		Project:   e.Project,
		Color:     e.Color,
	}
}

// IsEndOfDay reports whether the event closes the tracked day
func (e SwitchEvent) IsEndOfDay() bool {
	return e.Project == EndOfDay
}

// Job is one entry of the job list shown on the dashboard
type Job struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// JobEntry decodes one job-list element, which is either a legacy bare string or a
// {"name", "color"} object. Legacy entries come back with an empty Color.
type JobEntry struct {
	Job
	Legacy bool
	Valid  bool
}

func (je *JobEntry) UnmarshalJSON(data []byte) error {
	var name string
	if err := sonic.Unmarshal(data, &name); err == nil {
		*je = JobEntry{Job: Job{Name: name}, Legacy: true, Valid: name != ""}
		return nil
	}

	var fields map[string]interface{}
	if err := sonic.Unmarshal(data, &fields); err != nil {
		// numbers, arrays and the like are skipped rather than failing the whole list
		*je = JobEntry{}
		return nil
	}

	name, nameOK := fields["name"].(string)
	color, colorOK := fields["color"].(string)
	*je = JobEntry{Job: Job{Name: name, Color: color}, Valid: nameOK && colorOK && name != ""}
	return nil
}

func (je JobEntry) MarshalJSON() ([]byte, error) {
	if !je.Valid {
		return nil, fmt.Errorf("cannot marshal invalid job entry")
	}
	return sonic.Marshal(je.Job)
}
