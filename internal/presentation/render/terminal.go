package render

import (
	"io"
	"strings"

	"github.com/penwyp/go-timesheet/internal/core/color"
	"github.com/penwyp/go-timesheet/internal/core/timeline"
	"github.com/penwyp/go-timesheet/internal/presentation/layout"
	"github.com/penwyp/go-timesheet/internal/util"
)

// TerminalConfig sizes the character chart
type TerminalConfig struct {
	// Width is the available width in cells; zero measures the terminal
	Width        int
	SlotsPerHour int
	BandWidth    int
	// Plain disables ANSI colors; blocks are drawn with shade characters instead
	Plain bool
}

const (
	DefaultSlotsPerHour = 2
	DefaultBandWidth    = 12

	gutterWidth = 9
	bandGap     = 1

	plainFill     = "░"
	overlayMarker = "┃"
)

// TerminalRenderer draws the chart as a character grid, one row per time slot and one band
// per day. When the terminal is too narrow the most recent days are kept.
type TerminalRenderer struct {
	config TerminalConfig
}

// NewTerminalRenderer creates a TerminalRenderer, filling zero fields from the defaults
func NewTerminalRenderer(config TerminalConfig) *TerminalRenderer {
	if config.SlotsPerHour <= 0 {
		config.SlotsPerHour = DefaultSlotsPerHour
	}
	if config.BandWidth < 2 {
		config.BandWidth = DefaultBandWidth
	}
	return &TerminalRenderer{config: config}
}

func (r *TerminalRenderer) sizer() *layout.Sizer {
	if r.config.Width > 0 {
		return layout.NewSizer(r.config.Width, 0)
	}
	return layout.TerminalSizer()
}

// Render writes the chart to w
func (r *TerminalRenderer) Render(w io.Writer, chart Chart) error {
	visible := r.sizer().Columns(gutterWidth, r.config.BandWidth, bandGap)
	offset := 0
	if len(chart.Days) > visible {
		offset = len(chart.Days) - visible
		util.LogDebugf("Terminal chart showing last %d of %d days", visible, len(chart.Days))
	}
	days := chart.Days[offset:]

	byColumn := make(map[int][]timeline.Rect)
	for _, rect := range chart.Rects {
		if rect.Column < offset {
			continue
		}
		byColumn[rect.Column-offset] = append(byColumn[rect.Column-offset], rect)
	}

	var b strings.Builder
	b.WriteString(r.title(chart.Title))
	b.WriteString("\n\n")
	b.WriteString(r.header(days))
	b.WriteString("\n")

	slots := 24 * r.config.SlotsPerHour
	for slot := 0; slot < slots; slot++ {
		b.WriteString(r.gutter(slot))
		for column := range days {
			b.WriteString(r.cell(byColumn[column], slot))
			b.WriteString(strings.Repeat(" ", bandGap))
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (r *TerminalRenderer) title(title string) string {
	if r.config.Plain {
		return title
	}
	return util.FormatHeaderTitle(title)
}

func (r *TerminalRenderer) header(days []string) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", gutterWidth))
	for _, day := range days {
		b.WriteString(util.CenterText(day, r.config.BandWidth))
		b.WriteString(strings.Repeat(" ", bandGap))
	}
	return b.String()
}

func (r *TerminalRenderer) gutter(slot int) string {
	if slot%r.config.SlotsPerHour != 0 {
		return strings.Repeat(" ", gutterWidth)
	}
	hour := float64(slot / r.config.SlotsPerHour)
	return util.PadString(timeline.FormatHourTick(hour), gutterWidth-1, false) + " "
}

// cell renders one band cell. The fill with the largest share of the slot wins; the project
// label goes on the slot where the block starts.
func (r *TerminalRenderer) cell(rects []timeline.Rect, slot int) string {
	slotStart := float64(slot) / float64(r.config.SlotsPerHour)
	slotEnd := float64(slot+1) / float64(r.config.SlotsPerHour)

	var fill *timeline.Rect
	best := 0.0
	late := false
	for i := range rects {
		rect := &rects[i]
		overlap := min(rect.YEnd, slotEnd) - max(rect.YStart, slotStart)
		if overlap <= 0 {
			continue
		}
		switch rect.Kind {
		case timeline.KindFill:
			if overlap > best {
				fill, best = rect, overlap
			}
		case timeline.KindOverlay:
			late = true
		}
	}

	body := r.config.BandWidth - 1
	if fill == nil {
		return strings.Repeat(" ", r.config.BandWidth)
	}

	text := strings.Repeat(" ", body)
	if fill.ShowLabel && slot == r.labelSlot(*fill) {
		text = util.PadString(fill.Project, body, true)
	} else if r.config.Plain {
		text = strings.Repeat(plainFill, body)
	}

	marker := " "
	if late {
		marker = overlayMarker
	}

	if r.config.Plain {
		return text + marker
	}

	fg, err := color.ContrastingTextColor(fill.Color)
	if err != nil {
		fg = color.TextDark
	}
	styled := util.BackgroundHex(fill.Color) + util.ForegroundName(fg) + text + util.ColorReset
	if late {
		return styled + util.ColorRed + util.ColorBold + marker + util.ColorReset
	}
	return styled + util.BackgroundHex(fill.Color) + marker + util.ColorReset
}

func (r *TerminalRenderer) labelSlot(rect timeline.Rect) int {
	slot := int(rect.YStart * float64(r.config.SlotsPerHour))
	if last := 24*r.config.SlotsPerHour - 1; slot > last {
		return last
	}
	return slot
}
