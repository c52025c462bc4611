package timeline

// RectKind distinguishes filled session blocks from late-work outlines
type RectKind int

const (
	// KindFill is a session block filled with the project color
	KindFill RectKind = iota
	// KindOverlay is an unfilled outline over the part of a block past the cutoff hour
	KindOverlay
)

func (k RectKind) String() string {
	switch k {
	case KindFill:
		return "fill"
	case KindOverlay:
		return "overlay"
	default:
		return "unknown"
	}
}

// Rect is one renderable rectangle. Column indexes the sorted day list; YStart and YEnd are
// fractional hours in [0, 24].
type Rect struct {
	Column  int
	Day     string
	YStart  float64
	YEnd    float64
	Project string
	Color   string
	Kind    RectKind
	// ShowLabel tells renderers whether the block is tall enough to carry its project label.
	// Overlays never carry labels.
	ShowLabel bool
}

// Height returns YEnd - YStart
func (r Rect) Height() float64 {
	return r.YEnd - r.YStart
}

// Config holds the layout thresholds
type Config struct {
	// CutoffHour is the hour after which work is flagged as late
	CutoffHour float64
	// LabelMinHours is the minimum block height, in hours, that gets a text label
	LabelMinHours float64
}

const (
	DefaultCutoffHour    = 19.0
	DefaultLabelMinHours = 0.2
)

// DefaultConfig returns the default thresholds
func DefaultConfig() Config {
	return Config{
		CutoffHour:    DefaultCutoffHour,
		LabelMinHours: DefaultLabelMinHours,
	}
}
