package palette

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ErrInvalidHex is returned by ParseHex for strings that are not six hex digits.
var ErrInvalidHex = errors.New("invalid hex color")

// RGB is a color split into its channels.
type RGB struct {
	R, G, B uint8
}

// FromRGB packs an RGB record.
func FromRGB(rgb RGB) Color {
	return Color(rgb.R)<<16 | Color(rgb.G)<<8 | Color(rgb.B)
}

// FromColor packs any color.Color, dropping alpha.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return FromRGB(RGB{n.R, n.G, n.B})
}

// ParseHex parses "rrggbb" or "#rrggbb".
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	v, e := strconv.ParseUint(h, 16, 32)
	if e != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	return Color(v), nil
}

// RGB unpacks c.
func (c Color) RGB() RGB {
	return RGB{uint8(c >> 16), uint8(c >> 8), uint8(c)}
}

// Hex formats c as "#rrggbb".
func (c Color) Hex() string {
	rgb := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

func (c Color) String() string { return c.Hex() }

// RGBA implements color.Color; packed colors are always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	rgb := c.RGB()
	return color.RGBA{rgb.R, rgb.G, rgb.B, 0xff}.RGBA()
}
