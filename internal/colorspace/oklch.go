package colorspace

import (
	"math"

	"github.com/jsvensson/colorkit/internal/color"
)

// OKLCH is the cylindrical form of OKLab. L is lightness [0, 1], C is chroma
// [0, ~0.37] and H is the hue in degrees [0, 360).
type OKLCH struct {
	L, C, H float64
}

// RGBAToOKLCH converts an sRGB color to OKLCH. Alpha is ignored.
func RGBAToOKLCH(c color.RGBA) OKLCH {
	L, a, b := linearRGBToOKLAB(Linearize(c.R), Linearize(c.G), Linearize(c.B))

	hue := math.Atan2(b, a) * (180.0 / math.Pi)
	if hue < 0 {
		hue += 360.0
	}
	return OKLCH{L: L, C: math.Sqrt(a*a + b*b), H: hue}
}

// OKLCHToRGBA converts OKLCH to an opaque sRGB color, clamping out-of-gamut channels.
func OKLCHToRGBA(o OKLCH) color.RGBA {
	hRad := o.H * (math.Pi / 180.0)
	lr, lg, lb := oklabToLinearRGB(o.L, o.C*math.Cos(hRad), o.C*math.Sin(hRad))

	return color.RGBA{
		R: color.Clamp(Delinearize(color.Clamp(lr))),
		G: color.Clamp(Delinearize(color.Clamp(lg))),
		B: color.Clamp(Delinearize(color.Clamp(lb))),
		A: 1,
	}
}

// linearRGBToOKLAB converts linear RGB to OKLab (L, a, b).
func linearRGBToOKLAB(r, g, b float64) (float64, float64, float64) {
	// linear RGB → LMS
	l := 0.4122214708*r + 0.5363325363*g + 0.0514459929*b
	m := 0.2119034982*r + 0.6806995451*g + 0.1073969566*b
	s := 0.0883024619*r + 0.2817188376*g + 0.6299787005*b

	lp, mp, sp := math.Cbrt(l), math.Cbrt(m), math.Cbrt(s)

	return 0.2104542553*lp + 0.7936177850*mp - 0.0040720468*sp,
		1.9779984951*lp - 2.4285922050*mp + 0.4505937099*sp,
		0.0259040371*lp + 0.7827717662*mp - 0.8086757660*sp
}

// oklabToLinearRGB converts OKLab (L, a, b) to linear RGB.
func oklabToLinearRGB(L, a, b float64) (float64, float64, float64) {
	lp := L + 0.3963377774*a + 0.2158037573*b
	mp := L - 0.1055613458*a - 0.0638541728*b
	sp := L - 0.0894841775*a - 1.2914855480*b

	l, m, s := lp*lp*lp, mp*mp*mp, sp*sp*sp

	return +4.0767416621*l - 3.3077115913*m + 0.2309699292*s,
		-1.2684380046*l + 2.6097574011*m - 0.3413193965*s,
		-0.0041960863*l - 0.7034186147*m + 1.7076147010*s
}

// gamutEpsilon is the slack allowed on linear channels before a color counts
// as out of gamut.
const gamutEpsilon = 1e-7

// InGamut reports whether o maps to sRGB without clipping.
func InGamut(o OKLCH) bool {
	hRad := o.H * (math.Pi / 180.0)
	r, g, b := oklabToLinearRGB(o.L, o.C*math.Cos(hRad), o.C*math.Sin(hRad))
	for _, v := range [...]float64{r, g, b} {
		if v < -gamutEpsilon || v > 1+gamutEpsilon {
			return false
		}
	}
	return true
}

// GamutMap reduces the chroma of o until it fits in sRGB, keeping lightness
// and hue. L is clamped to [0, 1] first.
func GamutMap(o OKLCH) OKLCH {
	o.L = color.Clamp(o.L)
	if InGamut(o) {
		return o
	}
	lo, hi := 0.0, o.C
	for range 32 {
		mid := (lo + hi) / 2
		if InGamut(OKLCH{L: o.L, C: mid, H: o.H}) {
			lo = mid
		} else {
			hi = mid
		}
	}
	o.C = lo
	return o
}

// WithLightness returns c with the given absolute OKLCH lightness, keeping its
// hue and alpha. Chroma is reduced when the result would leave the sRGB gamut,
// so the lightness is kept exactly. Lightness is clamped to [0, 1].
func WithLightness(c color.RGBA, lightness float64) color.RGBA {
	o := RGBAToOKLCH(c)
	o.L = lightness
	return OKLCHToRGBA(GamutMap(o)).WithAlpha(c.A)
}
