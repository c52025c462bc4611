package util

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Terminal control sequences
const (
	ColorReset  = "\033[0m"
	ColorCyan   = "\033[36m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorRed    = "\033[31m"
	ColorBold   = "\033[1m"
	ColorDim    = "\033[2m"

	ClearScreen    = "\033[2J"
	ClearLine      = "\033[2K"
	MoveCursorHome = "\033[H"
	HideCursor     = "\033[?25l"
	ShowCursor     = "\033[?25h"

	EnterAlternateScreen = "\033[?1049h"
	ExitAlternateScreen  = "\033[?1049l"
)

// GetDisplayWidth calculates the display width of a string, accounting for wide runes
func GetDisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// PadString pads or truncates s to exactly width display cells
func PadString(s string, width int, leftAlign bool) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) > width {
		return runewidth.Truncate(s, width, "…")
	}
	if leftAlign {
		return runewidth.FillRight(s, width)
	}
	return runewidth.FillLeft(s, width)
}

// CenterText centers text within width display cells
func CenterText(text string, width int) string {
	w := runewidth.StringWidth(text)
	if w >= width {
		return PadString(text, width, true)
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", width-left-w)
}

// hexChannels decodes #rrggbb into 0-255 channels
func hexChannels(hex string) (int, int, int, bool) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), true
}

// BackgroundHex returns the truecolor escape selecting hex as background, or "" if hex is invalid
func BackgroundHex(hex string) string {
	r, g, b, ok := hexChannels(hex)
	if !ok {
		return ""
	}
	return fmt.Sprintf("\033[48;2;%d;%d;%dm", r, g, b)
}

// ForegroundHex returns the truecolor escape selecting hex as foreground, or "" if hex is invalid
func ForegroundHex(hex string) string {
	r, g, b, ok := hexChannels(hex)
	if !ok {
		return ""
	}
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", r, g, b)
}

// ForegroundName maps the contrast names used by the color package to escapes
func ForegroundName(name string) string {
	switch name {
	case "white":
		return "\033[97m"
	case "black":
		return "\033[30m"
	default:
		return ""
	}
}

// FormatHeaderTitle formats main header titles (Cyan + Bold)
func FormatHeaderTitle(title string) string {
	return ColorBold + ColorCyan + title + ColorReset
}
