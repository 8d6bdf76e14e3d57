package statsring

import (
	"errors"
	"fmt"
	"image/color"
	"math/rand/v2"
	"strconv"
	"strings"
)

// Color is a 32-bit color packed as 0xAARRGGBB (non-premultiplied).
// It implements color.Color so it can be handed to image and gg APIs directly.
type Color uint32

// Common colors.
const (
	Black       Color = 0xFF000000
	White       Color = 0xFFFFFFFF
	Transparent Color = 0x00000000
)

// PaletteSize is the number of seed colors a View is configured with.
const PaletteSize = 4

// Palette is the ordered set of colors assigned to segments by index.
type Palette [PaletteSize]Color

// ErrInvalidColor is returned by ParseColor for malformed input.
var ErrInvalidColor = errors.New("statsring: invalid color")

// ARGB creates a color from 8-bit components.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// A returns the alpha component.
func (c Color) A() uint8 { return uint8(c >> 24) }

// R returns the red component.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green component.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue component.
func (c Color) B() uint8 { return uint8(c) }

// Opaque reports whether the alpha component is 0xFF.
func (c Color) Opaque() bool { return c.A() == 0xFF }

// WithAlpha returns c with its alpha component replaced.
func (c Color) WithAlpha(a uint8) Color {
	return Color(uint32(c)&0x00FFFFFF | uint32(a)<<24)
}

// NRGBA converts c to the standard non-premultiplied color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// Hex returns the color as "#RRGGBB", ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R(), c.G(), c.B())
}

// String returns the color as "#AARRGGBB".
func (c Color) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// ParseColor parses "#RRGGBB" or "#AARRGGBB" (the leading '#' is optional).
// Six-digit colors are opaque.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 6, 8:
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	if len(hex) == 6 {
		v |= 0xFF000000
	}
	return Color(v), nil
}

// RandomColor returns a random opaque color drawn from rng.
// A nil rng uses the global source.
func RandomColor(rng *rand.Rand) Color {
	var rgb uint32
	if rng == nil {
		rgb = rand.Uint32N(0xFFFFFF)
	} else {
		rgb = rng.Uint32N(0xFFFFFF)
	}
	return Color(0xFF000000 | rgb)
}
