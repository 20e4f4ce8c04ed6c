// Package blend implements the separable blend modes of the W3C Compositing
// and Blending specification.
package blend

import (
	"fmt"
	"math"
	"strings"

	"github.com/jsvensson/colorkit/internal/color"
)

// Mode is a separable blend mode.
type Mode int

const (
	Normal Mode = iota
	Multiply
	Screen
	Overlay
	Darken
	Lighten
	ColorDodge
	ColorBurn
	HardLight
	SoftLight
	Difference
	Exclusion
)

var modeNames = [...]string{
	Normal:     "normal",
	Multiply:   "multiply",
	Screen:     "screen",
	Overlay:    "overlay",
	Darken:     "darken",
	Lighten:    "lighten",
	ColorDodge: "color-dodge",
	ColorBurn:  "color-burn",
	HardLight:  "hard-light",
	SoftLight:  "soft-light",
	Difference: "difference",
	Exclusion:  "exclusion",
}

// Modes lists every blend mode in declaration order.
func Modes() []Mode {
	out := make([]Mode, len(modeNames))
	for i := range modeNames {
		out[i] = Mode(i)
	}
	return out
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode resolves a mode name. Case is ignored and "colorDodge",
// "color_dodge" and "color-dodge" are equivalent.
func ParseMode(s string) (Mode, error) {
	norm := func(v string) string {
		return strings.NewReplacer("-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(v)))
	}
	key := norm(s)
	for i, n := range modeNames {
		if norm(n) == key {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown blend mode %q", s)
}

// channel applies the blend function B(cb, cs) for one channel.
func (m Mode) channel(cb, cs float64) float64 {
	switch m {
	case Multiply:
		return cb * cs
	case Screen:
		return screen(cb, cs)
	case Overlay:
		return hardLight(cs, cb)
	case Darken:
		return math.Min(cb, cs)
	case Lighten:
		return math.Max(cb, cs)
	case ColorDodge:
		switch {
		case cb == 0:
			return 0
		case cs >= 1:
			return 1
		default:
			return math.Min(1, cb/(1-cs))
		}
	case ColorBurn:
		switch {
		case cb >= 1:
			return 1
		case cs <= 0:
			return 0
		default:
			return 1 - math.Min(1, (1-cb)/cs)
		}
	case HardLight:
		return hardLight(cb, cs)
	case SoftLight:
		if cs <= 0.5 {
			return cb - (1-2*cs)*cb*(1-cb)
		}
		var d float64
		if cb <= 0.25 {
			d = ((16*cb-12)*cb + 4) * cb
		} else {
			d = math.Sqrt(cb)
		}
		return cb + (2*cs-1)*(d-cb)
	case Difference:
		return math.Abs(cb - cs)
	case Exclusion:
		return cb + cs - 2*cb*cs
	default:
		return cs
	}
}

func screen(cb, cs float64) float64 {
	return cb + cs - cb*cs
}

func hardLight(cb, cs float64) float64 {
	if cs <= 0.5 {
		return cb * 2 * cs
	}
	return screen(cb, 2*cs-1)
}

// Apply blends top (the source) over bottom (the backdrop). The blend result
// replaces top where bottom is opaque, and the outcome is composited
// source-over using the alpha of both colors.
func Apply(top, bottom color.RGBA, m Mode) color.RGBA {
	top, bottom = top.Clamped(), bottom.Clamped()
	mix := func(cb, cs float64) float64 {
		return (1-bottom.A)*cs + bottom.A*m.channel(cb, cs)
	}
	src := color.RGBA{
		R: mix(bottom.R, top.R),
		G: mix(bottom.G, top.G),
		B: mix(bottom.B, top.B),
		A: top.A,
	}
	return color.Composite(src, bottom)
}

// ApplyHex is Apply for hex colors.
func ApplyHex(top, bottom string, m Mode) (string, error) {
	t, err := color.ParseHex(top)
	if err != nil {
		return "", fmt.Errorf("top color: %w", err)
	}
	b, err := color.ParseHex(bottom)
	if err != nil {
		return "", fmt.Errorf("bottom color: %w", err)
	}
	return Apply(t, b, m).Hex(), nil
}
