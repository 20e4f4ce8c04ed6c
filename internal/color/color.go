package color

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidHex is returned (wrapped) when a string is not a 3, 6 or 8 digit hex color.
var ErrInvalidHex = errors.New("invalid hex color")

// RGBA is an sRGB color with normalized channels. Values are nominally in [0, 1]
// but are not clamped on construction; use Clamped when a valid color is required.
type RGBA struct {
	R, G, B, A float64
}

// New returns an opaque color.
func New(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// Clamp limits v to [0, 1].
func Clamp(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Clamped returns c with every channel limited to [0, 1].
func (c RGBA) Clamped() RGBA {
	return RGBA{R: Clamp(c.R), G: Clamp(c.G), B: Clamp(c.B), A: Clamp(c.A)}
}

// WithAlpha returns c with its alpha channel replaced.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

// Lerp interpolates every channel, alpha included, between a and b.
func Lerp(a, b RGBA, t float64) RGBA {
	return RGBA{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}

// ParseHex parses "#RGB", "#RRGGBB" or "#RRGGBBAA" (the leading # is optional,
// surrounding whitespace is ignored and case does not matter).
func ParseHex(s string) (RGBA, error) {
	cleaned := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "#", ""))

	switch len(cleaned) {
	case 3:
		var ch [3]float64
		for i := range 3 {
			v, err := parseByte(strings.Repeat(cleaned[i:i+1], 2))
			if err != nil {
				return RGBA{}, fmt.Errorf("%w %q: %w", ErrInvalidHex, s, err)
			}
			ch[i] = v
		}
		return New(ch[0], ch[1], ch[2]), nil
	case 6, 8:
		ch := [4]float64{3: 1}
		for i := 0; i < len(cleaned); i += 2 {
			v, err := parseByte(cleaned[i : i+2])
			if err != nil {
				return RGBA{}, fmt.Errorf("%w %q: %w", ErrInvalidHex, s, err)
			}
			ch[i/2] = v
		}
		return RGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
	default:
		return RGBA{}, fmt.Errorf("%w %q: must be 3, 6 or 8 hex digits", ErrInvalidHex, s)
	}
}

func parseByte(s string) (float64, error) {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, err
	}
	return float64(v) / 255.0, nil
}

// Format renders c as "#RRGGBB", or "#RRGGBBAA" when includeAlpha is set.
// Channels are rounded to the nearest byte and clamped to [0, 255].
func Format(c RGBA, includeAlpha bool) string {
	if includeAlpha {
		return fmt.Sprintf("#%02X%02X%02X%02X", toByte(c.R), toByte(c.G), toByte(c.B), toByte(c.A))
	}
	return fmt.Sprintf("#%02X%02X%02X", toByte(c.R), toByte(c.G), toByte(c.B))
}

func toByte(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(v*255.0))))
}

// Hex returns the color as "#RRGGBB".
func (c RGBA) Hex() string {
	return Format(c, false)
}

// HexAlpha returns the color as "#RRGGBBAA".
func (c RGBA) HexAlpha() string {
	return Format(c, true)
}

// RGB returns the color as an rgb() string, e.g. "rgb(235, 111, 146)".
func (c RGBA) RGB() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", toByte(c.R), toByte(c.G), toByte(c.B))
}

// Bytes returns the channels rounded to 8-bit values.
func (c RGBA) Bytes() (r, g, b, a uint8) {
	return toByte(c.R), toByte(c.G), toByte(c.B), toByte(c.A)
}

// FormatAll formats a sequence of colors without alpha.
func FormatAll(colors []RGBA) []string {
	out := make([]string, len(colors))
	for i, c := range colors {
		out[i] = Format(c, false)
	}
	return out
}
