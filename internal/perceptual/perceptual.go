// Package perceptual measures and mixes colors in CIE L*a*b* space.
package perceptual

import (
	"math"

	"github.com/jsvensson/colorkit/internal/color"
	"github.com/jsvensson/colorkit/internal/colorspace"
)

// DeltaE2000 returns a simplified CIEDE2000-style distance between c1 and c2.
//
// Lightness is unweighted (Sl = 1) and the chroma and hue weights are derived
// from c1 alone (Sc = 1 + 0.045·C1, Sh = 1 + 0.015·C1), so the result is not
// symmetric in its arguments. There is no hue rotation term.
func DeltaE2000(c1, c2 color.RGBA) float64 {
	lab1 := colorspace.RGBAToLAB(c1)
	lab2 := colorspace.RGBAToLAB(c2)

	dL := lab2.L - lab1.L
	da := lab2.A - lab1.A
	db := lab2.B - lab1.B

	chroma1 := lab1.Chroma()
	chroma2 := lab2.Chroma()
	dC := chroma2 - chroma1

	// Rounding can push the radicand slightly below zero for near-identical hues.
	dH := math.Sqrt(math.Max(0, da*da+db*db-dC*dC))

	const sl = 1.0
	sc := 1 + 0.045*chroma1
	sh := 1 + 0.015*chroma1

	return math.Sqrt(math.Pow(dL/sl, 2) + math.Pow(dC/sc, 2) + math.Pow(dH/sh, 2))
}

// Blend mixes c1 and c2 in L*a*b* space. Ratio is clamped to [0, 1]; 0 yields
// c1 and 1 yields c2. The result is opaque: alpha is not interpolated.
func Blend(c1, c2 color.RGBA, ratio float64) color.RGBA {
	t := color.Clamp(ratio)
	lab1 := colorspace.RGBAToLAB(c1)
	lab2 := colorspace.RGBAToLAB(c2)

	return colorspace.LABToRGBA(colorspace.LAB{
		L: lab1.L + (lab2.L-lab1.L)*t,
		A: lab1.A + (lab2.A-lab1.A)*t,
		B: lab1.B + (lab2.B-lab1.B)*t,
	})
}

// Gradient returns steps colors blended evenly from start to end. Fewer than
// two steps yields just start.
func Gradient(start, end color.RGBA, steps int) []color.RGBA {
	if steps <= 1 {
		return []color.RGBA{start}
	}
	out := make([]color.RGBA, steps)
	for i := range steps {
		out[i] = Blend(start, end, float64(i)/float64(steps-1))
	}
	return out
}

// Closest returns the index of the candidate with the smallest DeltaE2000
// from target, or -1 when candidates is empty.
func Closest(target color.RGBA, candidates []color.RGBA) int {
	best, bestDist := -1, math.Inf(1)
	for i, c := range candidates {
		if d := DeltaE2000(target, c); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
