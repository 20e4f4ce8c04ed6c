package color

import "math"

// HSL is a hue/saturation/lightness triple. H is in degrees [0, 360), S and L in [0, 1].
type HSL struct {
	H, S, L float64
}

// NormalizeHue wraps h into [0, 360).
func NormalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// ToHSL converts the RGB channels of c to HSL. Achromatic colors get hue 0.
func ToHSL(c RGBA) HSL {
	r, g, b := c.R, c.G, c.B
	hi := max(r, g, b)
	lo := min(r, g, b)
	d := hi - lo
	l := (hi + lo) / 2.0

	if d == 0 {
		return HSL{H: 0, S: 0, L: l}
	}

	var s float64
	if l > 0.5 {
		s = d / (2.0 - hi - lo)
	} else {
		s = d / (hi + lo)
	}

	var h float64
	switch hi {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6.0
		}
	case g:
		h = (b-r)/d + 2.0
	default:
		h = (r-g)/d + 4.0
	}

	return HSL{H: h * 60.0, S: s, L: l}
}

// FromHSL converts an HSL triple to an opaque RGBA color.
func FromHSL(hsl HSL) RGBA {
	h := NormalizeHue(hsl.H) / 360.0
	s, l := hsl.S, hsl.L

	if s == 0 {
		return New(l, l, l)
	}

	var q float64
	if l < 0.5 {
		q = l * (1.0 + s)
	} else {
		q = l + s - l*s
	}
	p := 2.0*l - q

	return New(
		hueToRGB(p, q, h+1.0/3.0),
		hueToRGB(p, q, h),
		hueToRGB(p, q, h-1.0/3.0),
	)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1.0
	}
	if t > 1 {
		t -= 1.0
	}
	if t < 1.0/6.0 {
		return p + (q-p)*6.0*t
	}
	if t < 1.0/2.0 {
		return q
	}
	if t < 2.0/3.0 {
		return p + (q-p)*(2.0/3.0-t)*6.0
	}
	return p
}

// Brighten raises the HSL lightness of c by amount (capped at 1). Alpha is kept.
func Brighten(c RGBA, amount float64) RGBA {
	hsl := ToHSL(c)
	hsl.L = math.Min(1.0, hsl.L+amount)
	return FromHSL(hsl).WithAlpha(c.A)
}

// Darken lowers the HSL lightness of c by amount (floored at 0). Alpha is kept.
func Darken(c RGBA, amount float64) RGBA {
	hsl := ToHSL(c)
	hsl.L = math.Max(0.0, hsl.L-amount)
	return FromHSL(hsl).WithAlpha(c.A)
}

// AdjustBrightness adds amount (clamped to [-1, 1]) to every RGB channel.
func AdjustBrightness(c RGBA, amount float64) RGBA {
	amt := math.Max(-1, math.Min(1, amount))
	return RGBA{R: Clamp(c.R + amt), G: Clamp(c.G + amt), B: Clamp(c.B + amt), A: c.A}
}

// Composite places top over bottom using source-over alpha compositing.
func Composite(top, bottom RGBA) RGBA {
	a := top.A + bottom.A*(1-top.A)
	if a <= 0 {
		return RGBA{}
	}
	mix := func(t, b float64) float64 {
		return (t*top.A + b*bottom.A*(1-top.A)) / a
	}
	return RGBA{R: mix(top.R, bottom.R), G: mix(top.G, bottom.G), B: mix(top.B, bottom.B), A: a}
}
