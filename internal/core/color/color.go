// Package color maps project names to stable display colors and provides the hex helpers the
// dashboard and renderers share.
package color

import (
	"crypto/md5"
	"fmt"
	"math"
	"strconv"
	"sync"

	"github.com/penwyp/go-timesheet/internal/core/model"
)

const (
	// EndOfDayColor is reserved for the end-of-day sentinel
	EndOfDayColor = "#ff6666"
	// NeutralColor is used when an event carries no color
	NeutralColor = model.NeutralColor

	DefaultSaturation = 0.6
	DefaultValue      = 0.9

	// TextLight and TextDark are the two text colors ContrastingTextColor chooses between
	TextLight = "white"
	TextDark  = "black"

	brightnessThreshold = 128
)

// RGB holds channels in the 0-1 range
type RGB struct {
	R, G, B float64
}

// Assigner hashes project names to hues at fixed saturation and value. Results are memoized
// for the lifetime of the Assigner and never evicted.
type Assigner struct {
	saturation float64
	value      float64

	mu    sync.RWMutex
	cache map[string]RGB
}

// NewAssigner creates an Assigner. Out-of-range saturation or value fall back to the defaults.
func NewAssigner(saturation, value float64) *Assigner {
	if saturation <= 0 || saturation > 1 {
		saturation = DefaultSaturation
	}
	if value <= 0 || value > 1 {
		value = DefaultValue
	}
	return &Assigner{
		saturation: saturation,
		value:      value,
		cache:      make(map[string]RGB),
	}
}

// ColorFor returns the color for name
func (a *Assigner) ColorFor(name string) RGB {
	a.mu.RLock()
	c, ok := a.cache[name]
	a.mu.RUnlock()
	if ok {
		return c
	}

	c = HSVToRGB(float64(Hue(name))/360, a.saturation, a.value)

	a.mu.Lock()
	a.cache[name] = c
	a.mu.Unlock()
	return c
}

// HexFor returns ColorFor(name) as #rrggbb
func (a *Assigner) HexFor(name string) string {
	return ToHex(a.ColorFor(name))
}

// Hue returns the MD5 digest of name, read as a big-endian integer, modulo 360
func Hue(name string) int {
	sum := md5.Sum([]byte(name))
	rem := 0
	for _, b := range sum {
		rem = (rem*256 + int(b)) % 360
	}
	return rem
}

// HSVToRGB converts h, s, v in [0,1] to RGB
func HSVToRGB(h, s, v float64) RGB {
	if s == 0 {
		return RGB{v, v, v}
	}
	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	switch int(i) % 6 {
	case 0:
		return RGB{v, t, p}
	case 1:
		return RGB{q, v, p}
	case 2:
		return RGB{p, v, t}
	case 3:
		return RGB{p, q, v}
	case 4:
		return RGB{t, p, v}
	default:
		return RGB{v, p, q}
	}
}

// ToHex renders c as #rrggbb, truncating each channel toward zero
func ToHex(c RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) int {
	n := int(v * 255)
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return n
}

// ParseHex decodes #rrggbb
func ParseHex(hex string) (RGB, error) {
	r, g, b, err := parseChannels(hex)
	if err != nil {
		return RGB{}, err
	}
	return RGB{float64(r) / 255, float64(g) / 255, float64(b) / 255}, nil
}

func parseChannels(hex string) (int, int, int, error) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0, fmt.Errorf("invalid hex color %q: want #rrggbb", hex)
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), nil
}

// Brightness returns the perceptual brightness of hex on the 0-255 scale
func Brightness(hex string) (float64, error) {
	r, g, b, err := parseChannels(hex)
	if err != nil {
		return 0, err
	}
	return float64(r*299+g*587+b*114) / 1000, nil
}

// ContrastingTextColor picks TextLight for dark backgrounds and TextDark otherwise
func ContrastingTextColor(hex string) (string, error) {
	brightness, err := Brightness(hex)
	if err != nil {
		return "", err
	}
	if brightness < brightnessThreshold {
		return TextLight, nil
	}
	return TextDark, nil
}
