package layout

import (
	"os"

	"github.com/mattn/go-runewidth"
	"github.com/penwyp/go-timesheet/internal/util"
	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Sizer holds the character dimensions available to a terminal view
type Sizer struct {
	Width  int
	Height int
}

// NewSizer creates a Sizer of a fixed size. Non-positive values use the defaults.
func NewSizer(width, height int) *Sizer {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &Sizer{Width: width, Height: height}
}

// TerminalSizer measures stdout, falling back to 80x24 when it is not a terminal
func TerminalSizer() *Sizer {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		util.LogDebugf("Terminal size unavailable, using defaults: %v", err)
		return NewSizer(0, 0)
	}
	return NewSizer(width, height)
}

// displayWidth calculates the actual display width of a string containing wide runes
func (s Sizer) displayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// Fits reports whether text fits on one line
func (s Sizer) Fits(text string) bool {
	return s.displayWidth(text) <= s.Width
}

// Columns returns how many bands of bandWidth cells, each followed by gap cells, fit after a
// gutter of gutter cells. At least one band is always returned.
func (s Sizer) Columns(gutter, bandWidth, gap int) int {
	if bandWidth <= 0 {
		return 1
	}
	n := (s.Width - gutter) / (bandWidth + gap)
	if n < 1 {
		return 1
	}
	return n
}

// BodyLines returns the lines left for content after header and footer lines
func (s Sizer) BodyLines(header, footer int) int {
	n := s.Height - header - footer
	if n < 0 {
		return 0
	}
	return n
}
