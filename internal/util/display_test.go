package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPadString(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		width     int
		leftAlign bool
		expected  string
	}{
		{"pad right", "ab", 4, true, "ab  "},
		{"pad left", "ab", 4, false, "  ab"},
		{"exact", "abcd", 4, true, "abcd"},
		{"truncate", "abcdef", 4, true, "abc…"},
		{"wide runes", "日本", 6, true, "日本  "},
		{"zero width", "abc", 0, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PadString(tt.input, tt.width, tt.leftAlign))
		})
	}
}

func TestCenterText(t *testing.T) {
	assert.Equal(t, "  ab  ", CenterText("ab", 6))
	assert.Equal(t, " ab  ", CenterText("ab", 5))
	assert.Equal(t, "abc", CenterText("abc", 3))
}

func TestGetDisplayWidth(t *testing.T) {
	assert.Equal(t, 3, GetDisplayWidth("abc"))
	assert.Equal(t, 4, GetDisplayWidth("日本"))
}

func TestHexEscapes(t *testing.T) {
	assert.Equal(t, "\033[48;2;255;102;102m", BackgroundHex("#ff6666"))
	assert.Equal(t, "\033[38;2;0;0;0m", ForegroundHex("#000000"))
	assert.Empty(t, BackgroundHex("red"))
	assert.Empty(t, ForegroundHex("#12345"))
	assert.Empty(t, BackgroundHex("#gggggg"))
}

func TestForegroundName(t *testing.T) {
	assert.Equal(t, "\033[97m", ForegroundName("white"))
	assert.Equal(t, "\033[30m", ForegroundName("black"))
	assert.Empty(t, ForegroundName("purple"))
}
