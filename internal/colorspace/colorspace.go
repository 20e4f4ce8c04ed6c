// Package colorspace converts between sRGB, CIE XYZ, CIE L*a*b* and CIE L*u*v*.
// Every conversion is anchored to the D65 standard illuminant and is a total
// function: degenerate inputs produce defined outputs instead of errors.
package colorspace

import (
	"math"

	"github.com/jsvensson/colorkit/internal/color"
)

// D65 reference white, scaled so that Y = 100.
const (
	WhiteX = 95.047
	WhiteY = 100.0
	WhiteZ = 108.883
)

// delta is the CIE L*a*b* / L*u*v* breakpoint 6/29.
const delta = 6.0 / 29.0

// XYZ is a CIE 1931 XYZ tristimulus value scaled to [0, ~100].
type XYZ struct {
	X, Y, Z float64
}

// LAB is a CIE L*a*b* color. L is in [0, 100]; a and b are roughly [-128, 127].
type LAB struct {
	L, A, B float64
}

// Chroma returns the LCh chroma √(a² + b²).
func (l LAB) Chroma() float64 {
	return math.Hypot(l.A, l.B)
}

// Hue returns the LCh hue angle in degrees [0, 360).
func (l LAB) Hue() float64 {
	return color.NormalizeHue(math.Atan2(l.B, l.A) * 180.0 / math.Pi)
}

// LUV is a CIE L*u*v* color. L is in [0, 100], u roughly [-134, 220], v roughly [-140, 122].
type LUV struct {
	L, U, V float64
}

// White is the D65 reference white point.
var White = XYZ{X: WhiteX, Y: WhiteY, Z: WhiteZ}

// srgbToXYZ maps linear sRGB to XYZ (D65).
var srgbToXYZ = [3][3]float64{
	{0.4124564, 0.3575761, 0.1804375},
	{0.2126729, 0.7151522, 0.0721750},
	{0.0193339, 0.1191920, 0.9503041},
}

// xyzToSRGB maps XYZ (D65) to linear sRGB.
var xyzToSRGB = [3][3]float64{
	{3.2404542, -1.5371385, -0.4985314},
	{-0.9692660, 1.8760108, 0.0415560},
	{0.0556434, -0.2040259, 1.0572252},
}

func mul(m [3][3]float64, a, b, c float64) (float64, float64, float64) {
	return m[0][0]*a + m[0][1]*b + m[0][2]*c,
		m[1][0]*a + m[1][1]*b + m[1][2]*c,
		m[2][0]*a + m[2][1]*b + m[2][2]*c
}

// Linearize applies the inverse sRGB transfer function to one channel.
func Linearize(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// Delinearize applies the sRGB transfer function to one linear channel.
func Delinearize(v float64) float64 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1.0/2.4) - 0.055
}

// RGBAToXYZ converts an sRGB color to XYZ. Alpha is ignored.
func RGBAToXYZ(c color.RGBA) XYZ {
	x, y, z := mul(srgbToXYZ, Linearize(c.R), Linearize(c.G), Linearize(c.B))
	return XYZ{X: x * 100, Y: y * 100, Z: z * 100}
}

// XYZToRGBA converts XYZ to an opaque sRGB color, clamping out-of-gamut channels.
func XYZToRGBA(xyz XYZ) color.RGBA {
	r, g, b := mul(xyzToSRGB, xyz.X/100, xyz.Y/100, xyz.Z/100)
	// Clamp before delinearizing so Pow never sees a negative base.
	return color.RGBA{
		R: color.Clamp(Delinearize(color.Clamp(r))),
		G: color.Clamp(Delinearize(color.Clamp(g))),
		B: color.Clamp(Delinearize(color.Clamp(b))),
		A: 1,
	}
}

func labF(t float64) float64 {
	if t > delta*delta*delta {
		return math.Cbrt(t)
	}
	return t/(3*delta*delta) + 4.0/29.0
}

func labFInv(t float64) float64 {
	if t > delta {
		return t * t * t
	}
	return 3 * delta * delta * (t - 4.0/29.0)
}

// XYZToLAB converts XYZ to CIE L*a*b*.
func XYZToLAB(xyz XYZ) LAB {
	fx := labF(xyz.X / WhiteX)
	fy := labF(xyz.Y / WhiteY)
	fz := labF(xyz.Z / WhiteZ)
	return LAB{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// LABToXYZ converts CIE L*a*b* to XYZ.
func LABToXYZ(lab LAB) XYZ {
	fy := (lab.L + 16) / 116
	fx := fy + lab.A/500
	fz := fy - lab.B/200
	return XYZ{
		X: WhiteX * labFInv(fx),
		Y: WhiteY * labFInv(fy),
		Z: WhiteZ * labFInv(fz),
	}
}

// chromaticity returns u', v' for an XYZ value; ok is false when the
// denominator is zero.
func chromaticity(xyz XYZ) (u, v float64, ok bool) {
	d := xyz.X + 15*xyz.Y + 3*xyz.Z
	if d == 0 {
		return 0, 0, false
	}
	return 4 * xyz.X / d, 9 * xyz.Y / d, true
}

// whiteU and whiteV are the u', v' chromaticities of the D65 white point.
var whiteU, whiteV, _ = chromaticity(White)

func luvL(y float64) float64 {
	yr := y / WhiteY
	if yr > delta*delta*delta {
		return 116*math.Cbrt(yr) - 16
	}
	return math.Pow(29.0/3.0, 3) * yr
}

// XYZToLUV converts XYZ to CIE L*u*v*. Black (zero denominator) maps to u = v = 0.
func XYZToLUV(xyz XYZ) LUV {
	l := luvL(xyz.Y)
	u, v, ok := chromaticity(xyz)
	if !ok {
		return LUV{L: l}
	}
	return LUV{
		L: l,
		U: 13 * l * (u - whiteU),
		V: 13 * l * (v - whiteV),
	}
}

// LUVToXYZ converts CIE L*u*v* to XYZ. L = 0 yields black; a non-positive v'
// keeps only the Y component.
func LUVToXYZ(luv LUV) XYZ {
	if luv.L == 0 {
		return XYZ{}
	}

	var y float64
	if luv.L > 8 {
		y = WhiteY * math.Pow((luv.L+16)/116, 3)
	} else {
		y = WhiteY * luv.L * math.Pow(3.0/29.0, 3)
	}

	u := luv.U/(13*luv.L) + whiteU
	v := luv.V/(13*luv.L) + whiteV
	if v <= 0 {
		return XYZ{Y: y}
	}

	x := y * 9 * u / (4 * v)
	z := y * (12 - 3*u - 20*v) / (4 * v)
	return XYZ{X: x, Y: y, Z: z}
}

// RGBAToLAB converts sRGB to CIE L*a*b*.
func RGBAToLAB(c color.RGBA) LAB {
	return XYZToLAB(RGBAToXYZ(c))
}

// LABToRGBA converts CIE L*a*b* to an opaque sRGB color.
func LABToRGBA(lab LAB) color.RGBA {
	return XYZToRGBA(LABToXYZ(lab))
}

// RGBAToLUV converts sRGB to CIE L*u*v*.
func RGBAToLUV(c color.RGBA) LUV {
	return XYZToLUV(RGBAToXYZ(c))
}

// LUVToRGBA converts CIE L*u*v* to an opaque sRGB color.
func LUVToRGBA(luv LUV) color.RGBA {
	return XYZToRGBA(LUVToXYZ(luv))
}
