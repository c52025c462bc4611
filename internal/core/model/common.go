package model

// Reserved project labels
const (
	// EndOfDay marks the end of a tracked day. Its session always has zero duration.
	EndOfDay = "END_OF_DAY"
	// UnknownProject labels events whose project field is missing
	UnknownProject = "Unknown"
)

// Persisted file names inside the data directory
const (
	HistoryFileName = "history.json"
	JobsFileName    = "jobs.json"
)
