package session

import "time"

// DefaultFinalExtension is how long the still-open last session is drawn for
const DefaultFinalExtension = time.Hour

// BuilderConfig controls session reconstruction
type BuilderConfig struct {
	// FinalExtension is the synthetic duration given to the last event of the log when it is
	// not the end-of-day sentinel, so that "still working" has visible width on the chart.
	FinalExtension time.Duration
}

// DefaultBuilderConfig returns the default configuration
func DefaultBuilderConfig() BuilderConfig {
	return BuilderConfig{
		FinalExtension: DefaultFinalExtension,
	}
}
