package render

import (
	"fmt"
	"io"

	"github.com/penwyp/go-timesheet/internal/core/model"
	"github.com/penwyp/go-timesheet/internal/core/timeline"
)

// DefaultTitle is the chart heading
const DefaultTitle = "Timesheet Visualisation"

const (
	FormatSVG      = "svg"
	FormatTerminal = "terminal"
)

// Chart is everything a renderer needs: the day axis and the laid-out rectangles
type Chart struct {
	Days  []string
	Rects []timeline.Rect
	Title string
}

// NewChart lays out groups into a Chart
func NewChart(groups model.DayGroups, layout *timeline.Layout, title string) Chart {
	if title == "" {
		title = DefaultTitle
	}
	return Chart{
		Days:  append([]string(nil), groups.Days...),
		Rects: layout.Build(groups),
		Title: title,
	}
}

// Renderer draws a chart onto w
type Renderer interface {
	Render(w io.Writer, chart Chart) error
}

// Options configures the renderer returned by New
type Options struct {
	SVG      SVGConfig
	Terminal TerminalConfig
}

// New returns the renderer for format
func New(format string, opts Options) (Renderer, error) {
	switch format {
	case FormatSVG:
		return NewSVGRenderer(opts.SVG), nil
	case FormatTerminal, "":
		return NewTerminalRenderer(opts.Terminal), nil
	default:
		return nil, fmt.Errorf("unsupported chart format: %s", format)
	}
}
