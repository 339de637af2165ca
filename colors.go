package cubescramble

import (
	"github.com/SeamusWaldron/cubescramble/internal/render"
	"github.com/SeamusWaldron/cubescramble/pkg/types"
)

// Color is an RGB sticker colour.
type Color = types.Color

// ColorScheme maps faces to colours. Missing faces are drawn black.
type ColorScheme = types.ColorScheme

// Named colours.
var (
	Red    = types.Red
	Green  = types.Green
	Blue   = types.Blue
	White  = types.White
	Black  = types.Black
	Gray   = types.Gray
	Yellow = types.Yellow
	Orange = types.Orange
)

// Layout controls SVG geometry.
type Layout = render.Layout

// DefaultColorScheme returns R red, U white, F green, L orange, D yellow,
// B blue.
func DefaultColorScheme() ColorScheme {
	return types.DefaultColorScheme()
}

// ParseColor parses a colour name or #RRGGBB code.
func ParseColor(s string) (Color, error) {
	return types.ParseColor(s)
}
