// Package vision approximates how colors appear with common forms of
// color-vision deficiency.
package vision

import (
	"fmt"
	"strings"

	"github.com/jsvensson/colorkit/internal/color"
)

// Deficiency is a type of dichromacy.
type Deficiency int

const (
	Protanopia Deficiency = iota
	Deuteranopia
	Tritanopia
)

var deficiencyNames = [...]string{
	Protanopia:   "protanopia",
	Deuteranopia: "deuteranopia",
	Tritanopia:   "tritanopia",
}

// Simple approximations applied directly to sRGB values. They are suitable
// for previews, not for clinical use.
var matrices = [...][3][3]float64{
	Protanopia: {
		{0.56667, 0.43333, 0.0},
		{0.55833, 0.44167, 0.0},
		{0.0, 0.24167, 0.75833},
	},
	Deuteranopia: {
		{0.625, 0.375, 0.0},
		{0.7, 0.3, 0.0},
		{0.0, 0.3, 0.7},
	},
	Tritanopia: {
		{0.95, 0.05, 0.0},
		{0.0, 0.433, 0.567},
		{0.0, 0.475, 0.525},
	},
}

// Deficiencies lists every supported deficiency.
func Deficiencies() []Deficiency {
	return []Deficiency{Protanopia, Deuteranopia, Tritanopia}
}

func (d Deficiency) String() string {
	if d < 0 || int(d) >= len(deficiencyNames) {
		return fmt.Sprintf("Deficiency(%d)", int(d))
	}
	return deficiencyNames[d]
}

// ParseDeficiency resolves a deficiency name, ignoring case.
func ParseDeficiency(s string) (Deficiency, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, n := range deficiencyNames {
		if n == key {
			return Deficiency(i), nil
		}
	}
	return 0, fmt.Errorf("unknown deficiency %q (expected one of %s)", s, strings.Join(deficiencyNames[:], ", "))
}

// Simulate returns c as seen with deficiency d. Alpha is preserved.
func Simulate(d Deficiency, c color.RGBA) color.RGBA {
	if d < 0 || int(d) >= len(matrices) {
		return c
	}
	m := matrices[d]
	return color.RGBA{
		R: color.Clamp(m[0][0]*c.R + m[0][1]*c.G + m[0][2]*c.B),
		G: color.Clamp(m[1][0]*c.R + m[1][1]*c.G + m[1][2]*c.B),
		B: color.Clamp(m[2][0]*c.R + m[2][1]*c.G + m[2][2]*c.B),
		A: c.A,
	}
}

// SimulateHex is Simulate for a hex color.
func SimulateHex(d Deficiency, hex string) (string, error) {
	c, err := color.ParseHex(hex)
	if err != nil {
		return "", err
	}
	return Simulate(d, c).Hex(), nil
}
