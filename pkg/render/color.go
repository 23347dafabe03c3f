package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is an opaque RGB colour. The zero value is black.
type Color struct {
	R, G, B uint8
}

var (
	Black = Color{}
	White = Color{R: 0xff, G: 0xff, B: 0xff}
)

// ParseColor parses a #RRGGBB hex string.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if len(s) != 7 || s[0] != '#' {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Hex returns the colour as lowercase #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}

func (c Color) rgba() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

type backgroundMode uint8

const (
	backgroundDefault backgroundMode = iota
	backgroundSolid
	backgroundTransparent
)

// Background is either the default white, a solid colour or fully
// transparent. The zero value is the default.
type Background struct {
	mode  backgroundMode
	color Color
}

func DefaultBackground() Background {
	return Background{}
}

func SolidBackground(c Color) Background {
	return Background{mode: backgroundSolid, color: c}
}

func TransparentBackground() Background {
	return Background{mode: backgroundTransparent}
}

// Transparent reports whether no background should be painted.
func (b Background) Transparent() bool {
	return b.mode == backgroundTransparent
}

// Color returns the fill colour; white for default and transparent backgrounds.
func (b Background) Color() Color {
	if b.mode == backgroundSolid {
		return b.color
	}
	return White
}

func (b Background) String() string {
	switch b.mode {
	case backgroundSolid:
		return b.color.Hex()
	case backgroundTransparent:
		return "transparent"
	}
	return "default"
}

func (b Background) paint() color.Color {
	if b.Transparent() {
		return color.RGBA{}
	}
	return b.Color().rgba()
}
