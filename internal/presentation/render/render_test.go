package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/penwyp/go-timesheet/internal/core/model"
	"github.com/penwyp/go-timesheet/internal/core/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(value string) time.Time {
	t, err := time.ParseInLocation("2006-01-02T15:04", value, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func sampleChart() Chart {
	groups := model.DayGroups{
		Days: []string{"2024-01-01", "2024-01-02"},
		ByDay: map[string][]model.Session{
			"2024-01-01": {
				{Start: at("2024-01-01T09:00"), End: at("2024-01-01T12:00"), Project: "Falcon", Color: "#5be56e"},
				{Start: at("2024-01-01T12:00"), End: at("2024-01-01T12:06"), Project: "Tiny", Color: "#e5b95b"},
				{Start: at("2024-01-01T18:00"), End: at("2024-01-01T20:00"), Project: "Toyota", Color: "#e5b95b"},
			},
			"2024-01-02": {
				{Start: at("2024-01-02T10:00"), End: at("2024-01-02T11:00"), Project: "R&D <x>", Color: "#5bdee5"},
			},
		},
	}
	return NewChart(groups, timeline.NewLayout(timeline.DefaultConfig()), "")
}

func TestNewChart(t *testing.T) {
	chart := sampleChart()
	assert.Equal(t, DefaultTitle, chart.Title)
	assert.Equal(t, []string{"2024-01-01", "2024-01-02"}, chart.Days)
	assert.Len(t, chart.Rects, 5)
}

func TestNew(t *testing.T) {
	r, err := New(FormatSVG, Options{})
	require.NoError(t, err)
	assert.IsType(t, &SVGRenderer{}, r)

	r, err = New(FormatTerminal, Options{})
	require.NoError(t, err)
	assert.IsType(t, &TerminalRenderer{}, r)

	_, err = New("png", Options{})
	assert.Error(t, err)
}

func TestSVGRenderer_Render(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewSVGRenderer(SVGConfig{}).Render(&buf, sampleChart()))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<svg "))
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))
	assert.Contains(t, out, ">Timesheet Visualisation</text>")

	assert.Equal(t, 4, strings.Count(out, `fill-opacity="0.70"`), "one filled rect per session")
	assert.Equal(t, 1, strings.Count(out, `stroke="#ff0000" stroke-width="2.0"`), "one late-work outline")
	assert.Contains(t, out, `fill="#5be56e"`)

	assert.Contains(t, out, ">Falcon</text>")
	assert.Contains(t, out, ">Toyota</text>")
	assert.NotContains(t, out, ">Tiny</text>", "short blocks are unlabelled")
	assert.Contains(t, out, ">R&amp;D &lt;x&gt;</text>")

	assert.Contains(t, out, ">12:00 AM</text>")
	assert.Contains(t, out, ">9:30 AM</text>")
	assert.Contains(t, out, ">11:30 PM</text>")
	assert.Contains(t, out, `rotate(-45`)
	assert.Contains(t, out, ">2024-01-02</text>")
}

func TestSVGRenderer_Geometry(t *testing.T) {
	r := NewSVGRenderer(SVGConfig{Width: 1000 + marginLeft + marginRight, Height: 2400 + marginTop + marginBottom})
	g := r.geometry(4)

	assert.InDelta(t, float64(marginTop), g.y(0), 1e-9)
	assert.InDelta(t, float64(marginTop+900), g.y(9), 1e-9)
	assert.InDelta(t, float64(marginTop+2400), g.y(24), 1e-9)
	assert.InDelta(t, 250.0, g.slotWidth, 1e-9)
	assert.InDelta(t, float64(marginLeft)+125, g.columnCenter(0), 1e-9)

	empty := r.geometry(0)
	assert.InDelta(t, 1000.0, empty.slotWidth, 1e-9)
}

func TestSVGRenderer_Defaults(t *testing.T) {
	r := NewSVGRenderer(SVGConfig{OutlineColor: "#00ff00", FillOpacity: 2})
	assert.Equal(t, "#00ff00", r.config.OutlineColor)
	assert.Equal(t, DefaultFillOpacity, r.config.FillOpacity)
	assert.Equal(t, DefaultSVGWidth, r.config.Width)
}

func TestTerminalRenderer_Render(t *testing.T) {
	r := NewTerminalRenderer(TerminalConfig{Width: 80, Plain: true})

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, sampleChart()))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

	require.Len(t, lines, 3+48)
	assert.Equal(t, DefaultTitle, lines[0])
	assert.Contains(t, lines[2], "2024-01-01")
	assert.Contains(t, lines[2], "2024-01-02")

	row := func(hour float64) string { return lines[3+int(hour*2)] }

	assert.True(t, strings.HasPrefix(row(9), " 9:00 AM "))
	assert.Contains(t, row(9), "Falcon")
	assert.Contains(t, row(9.5), plainFill)
	assert.NotContains(t, row(8), plainFill)
	assert.Contains(t, row(18), "Toyota")
	assert.NotContains(t, row(18), overlayMarker)
	assert.Contains(t, row(19), overlayMarker)
	assert.Contains(t, row(19.5), overlayMarker)
	assert.NotContains(t, row(20), overlayMarker)
	assert.Contains(t, row(10), "R&D <x>")
}

func TestTerminalRenderer_KeepsMostRecentDays(t *testing.T) {
	r := NewTerminalRenderer(TerminalConfig{Width: gutterWidth + DefaultBandWidth + bandGap, Plain: true})

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, sampleChart()))
	out := buf.String()

	assert.NotContains(t, out, "2024-01-01")
	assert.Contains(t, out, "2024-01-02")
	assert.NotContains(t, out, "Falcon")
	assert.Contains(t, out, "R&D <x>")
}

func TestTerminalRenderer_Colors(t *testing.T) {
	r := NewTerminalRenderer(TerminalConfig{Width: 80})

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, sampleChart()))
	out := buf.String()

	assert.Contains(t, out, "\033[48;2;91;229;110m")
	assert.Contains(t, out, "\033[31m\033[1m"+overlayMarker)
}
