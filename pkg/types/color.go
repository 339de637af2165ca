package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidColor is returned when a colour name or hex code is not recognised.
var ErrInvalidColor = errors.New("cubescramble: invalid color")

// Color is an RGB fill colour.
type Color struct {
	R, G, B uint8
}

// Named colours accepted by ParseColor.
var (
	Red    = Color{255, 0, 0}
	Green  = Color{0, 255, 0}
	Blue   = Color{0, 0, 255}
	White  = Color{255, 255, 255}
	Black  = Color{0, 0, 0}
	Gray   = Color{128, 128, 128}
	Yellow = Color{255, 255, 0}
	Orange = Color{255, 128, 0}
)

var namedColors = map[string]Color{
	"red":    Red,
	"green":  Green,
	"blue":   Blue,
	"white":  White,
	"black":  Black,
	"gray":   Gray,
	"grey":   Gray,
	"yellow": Yellow,
	"orange": Orange,
}

// Hex returns the colour as #RRGGBB.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}

// ParseColor accepts a colour name (case-insensitive) or a #RRGGBB code.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}

	hex, ok := strings.CutPrefix(s, "#")
	if !ok || len(hex) != 6 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ColorScheme maps each face to its sticker colour.
// Faces without an entry are painted black.
type ColorScheme map[Face]Color

// DefaultColorScheme returns the standard scheme: R red, U white, F green,
// L orange, D yellow, B blue.
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		FaceR: Red,
		FaceU: White,
		FaceF: Green,
		FaceL: Orange,
		FaceD: Yellow,
		FaceB: Blue,
	}
}

// Fill returns the colour for a facelet value.
func (s ColorScheme) Fill(f Face) Color {
	if c, ok := s[f]; ok {
		return c
	}
	return Black
}

// Clone returns a copy of the scheme.
func (s ColorScheme) Clone() ColorScheme {
	out := make(ColorScheme, len(s))
	for f, c := range s {
		out[f] = c
	}
	return out
}

// Merge returns a copy of s with the entries of override applied on top.
func (s ColorScheme) Merge(override ColorScheme) ColorScheme {
	out := s.Clone()
	for f, c := range override {
		out[f] = c
	}
	return out
}
