package render

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/penwyp/go-timesheet/internal/core/timeline"
)

// SVGConfig sizes and styles the SVG chart
type SVGConfig struct {
	Width        int
	Height       int
	FillOpacity  float64
	OutlineColor string
	OutlineWidth float64
	TickStep     float64
	FontFamily   string
}

const (
	DefaultSVGWidth     = 1200
	DefaultSVGHeight    = 1000
	DefaultFillOpacity  = 0.7
	DefaultOutlineColor = "#ff0000"
	DefaultOutlineWidth = 2.0
	DefaultTickStep     = 0.5

	columnWidth = 0.8

	marginLeft   = 90
	marginRight  = 30
	marginTop    = 60
	marginBottom = 100
)

// DefaultSVGConfig returns the default SVG styling
func DefaultSVGConfig() SVGConfig {
	return SVGConfig{
		Width:        DefaultSVGWidth,
		Height:       DefaultSVGHeight,
		FillOpacity:  DefaultFillOpacity,
		OutlineColor: DefaultOutlineColor,
		OutlineWidth: DefaultOutlineWidth,
		TickStep:     DefaultTickStep,
		FontFamily:   "sans-serif",
	}
}

// SVGRenderer draws the chart as a standalone SVG document. Days run left to right and the
// hour axis runs from midnight at the top to the following midnight at the bottom.
type SVGRenderer struct {
	config SVGConfig
}

// NewSVGRenderer creates an SVGRenderer, filling zero fields from the defaults
func NewSVGRenderer(config SVGConfig) *SVGRenderer {
	def := DefaultSVGConfig()
	if config.Width <= marginLeft+marginRight {
		config.Width = def.Width
	}
	if config.Height <= marginTop+marginBottom {
		config.Height = def.Height
	}
	if config.FillOpacity <= 0 || config.FillOpacity > 1 {
		config.FillOpacity = def.FillOpacity
	}
	if config.OutlineColor == "" {
		config.OutlineColor = def.OutlineColor
	}
	if config.OutlineWidth <= 0 {
		config.OutlineWidth = def.OutlineWidth
	}
	if config.TickStep <= 0 {
		config.TickStep = def.TickStep
	}
	if config.FontFamily == "" {
		config.FontFamily = def.FontFamily
	}
	return &SVGRenderer{config: config}
}

type svgGeometry struct {
	plotWidth  float64
	plotHeight float64
	slotWidth  float64
}

func (r *SVGRenderer) geometry(days int) svgGeometry {
	if days < 1 {
		days = 1
	}
	plotWidth := float64(r.config.Width - marginLeft - marginRight)
	return svgGeometry{
		plotWidth:  plotWidth,
		plotHeight: float64(r.config.Height - marginTop - marginBottom),
		slotWidth:  plotWidth / float64(days),
	}
}

func (g svgGeometry) y(hour float64) float64 {
	return marginTop + hour/24*g.plotHeight
}

func (g svgGeometry) columnCenter(column int) float64 {
	return marginLeft + (float64(column)+0.5)*g.slotWidth
}

// Render writes the SVG document to w
func (r *SVGRenderer) Render(w io.Writer, chart Chart) error {
	g := r.geometry(len(chart.Days))
	var svg strings.Builder

	svg.WriteString(fmt.Sprintf(`<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg" font-family="%s">`+"\n",
		r.config.Width, r.config.Height, html.EscapeString(r.config.FontFamily)))
	svg.WriteString(`<rect width="100%" height="100%" fill="#ffffff"/>` + "\n")
	svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" text-anchor="middle" font-size="18" font-weight="bold">%s</text>`+"\n",
		r.config.Width/2, marginTop/2, html.EscapeString(chart.Title)))

	r.drawGrid(&svg, g)
	r.drawDays(&svg, g, chart.Days)

	for _, rect := range chart.Rects {
		switch rect.Kind {
		case timeline.KindFill:
			r.drawFill(&svg, g, rect)
		case timeline.KindOverlay:
			r.drawOverlay(&svg, g, rect)
		}
	}

	svg.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%.2f" height="%.2f" fill="none" stroke="#000000" stroke-width="1"/>`+"\n",
		marginLeft, marginTop, g.plotWidth, g.plotHeight))
	svg.WriteString("</svg>\n")

	_, err := io.WriteString(w, svg.String())
	return err
}

func (r *SVGRenderer) drawGrid(svg *strings.Builder, g svgGeometry) {
	for _, hour := range timeline.Ticks(r.config.TickStep) {
		y := g.y(hour)
		svg.WriteString(fmt.Sprintf(`<line x1="%d" y1="%.2f" x2="%.2f" y2="%.2f" stroke="#dddddd" stroke-width="0.5"/>`+"\n",
			marginLeft, y, marginLeft+g.plotWidth, y))
		svg.WriteString(fmt.Sprintf(`<text x="%d" y="%.2f" text-anchor="end" dominant-baseline="middle" font-size="9">%s</text>`+"\n",
			marginLeft-6, y, timeline.FormatHourTick(hour)))
	}
}

func (r *SVGRenderer) drawDays(svg *strings.Builder, g svgGeometry, days []string) {
	baseline := float64(marginTop) + g.plotHeight + 14
	for i, day := range days {
		x := g.columnCenter(i)
		svg.WriteString(fmt.Sprintf(`<text x="%.2f" y="%.2f" text-anchor="end" font-size="10" transform="rotate(-45 %.2f %.2f)">%s</text>`+"\n",
			x, baseline, x, baseline, html.EscapeString(day)))
	}
}

func (r *SVGRenderer) drawFill(svg *strings.Builder, g svgGeometry, rect timeline.Rect) {
	width := g.slotWidth * columnWidth
	x := g.columnCenter(rect.Column) - width/2
	y := g.y(rect.YStart)
	height := g.y(rect.YEnd) - y

	svg.WriteString(fmt.Sprintf(`<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" fill-opacity="%.2f" stroke="#000000" stroke-width="1"/>`+"\n",
		x, y, width, height, html.EscapeString(rect.Color), r.config.FillOpacity))

	if rect.ShowLabel {
		svg.WriteString(fmt.Sprintf(`<text x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="middle" font-size="8">%s</text>`+"\n",
			g.columnCenter(rect.Column), y+height/2, html.EscapeString(rect.Project)))
	}
}

func (r *SVGRenderer) drawOverlay(svg *strings.Builder, g svgGeometry, rect timeline.Rect) {
	width := g.slotWidth * columnWidth
	x := g.columnCenter(rect.Column) - width/2
	y := g.y(rect.YStart)

	svg.WriteString(fmt.Sprintf(`<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="none" stroke="%s" stroke-width="%.1f"/>`+"\n",
		x, y, width, g.y(rect.YEnd)-y, html.EscapeString(r.config.OutlineColor), r.config.OutlineWidth))
}
