// Package harmony derives related colors from a base color, either by rotating
// its hue or by blending it toward fixed light and neutral anchors.
package harmony

import (
	"fmt"
	"strings"

	"github.com/jsvensson/colorkit/internal/color"
	"github.com/jsvensson/colorkit/internal/perceptual"
)

// Type is a color harmony rule.
type Type int

const (
	Complementary Type = iota
	Analogous
	Triadic
	Tetradic
	SplitComplementary
	Monochromatic
)

var typeNames = [...]string{
	Complementary:      "complementary",
	Analogous:          "analogous",
	Triadic:            "triadic",
	Tetradic:           "tetradic",
	SplitComplementary: "split-complementary",
	Monochromatic:      "monochromatic",
}

// Types lists every harmony type in declaration order.
func Types() []Type {
	return []Type{Complementary, Analogous, Triadic, Tetradic, SplitComplementary, Monochromatic}
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// ParseType resolves a harmony name. Case, hyphens and underscores are
// ignored, so "splitComplementary" and "split_complementary" both work.
func ParseType(s string) (Type, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("-", "", "_", "").Replace(key)
	for i, n := range typeNames {
		if strings.ReplaceAll(n, "-", "") == key {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("unknown harmony %q (expected one of %s)", s, strings.Join(typeNames[:], ", "))
}

// hueOffsets are the rotations applied to the base hue, in output order.
var hueOffsets = map[Type][]float64{
	Complementary:      {0, 180},
	Analogous:          {-30, 0, 30},
	Triadic:            {0, 120, 240},
	Tetradic:           {0, 90, 180, 270},
	SplitComplementary: {0, 150, 210},
}

// monochromaticLightness holds the fixed lightness levels; the negative
// entry is replaced by the base lightness.
var monochromaticLightness = []float64{0.2, 0.4, -1, 0.7, 0.9}

// Generate returns the harmony of base. Hue rotations keep the base
// saturation and lightness; Monochromatic keeps hue and saturation and
// varies lightness. All results are opaque.
func Generate(base color.RGBA, t Type) []color.RGBA {
	hsl := color.ToHSL(base)

	if t == Monochromatic {
		out := make([]color.RGBA, len(monochromaticLightness))
		for i, l := range monochromaticLightness {
			if l < 0 {
				l = hsl.L
			}
			out[i] = color.FromHSL(color.HSL{H: hsl.H, S: hsl.S, L: l})
		}
		return out
	}

	offsets := hueOffsets[t]
	out := make([]color.RGBA, len(offsets))
	for i, off := range offsets {
		out[i] = color.FromHSL(color.HSL{H: color.NormalizeHue(hsl.H + off), S: hsl.S, L: hsl.L})
	}
	return out
}

// GenerateHex is Generate for a hex base. On a parse failure it returns
// []string{baseHex} and the error.
func GenerateHex(baseHex string, t Type) ([]string, error) {
	base, err := color.ParseHex(baseHex)
	if err != nil {
		return []string{baseHex}, fmt.Errorf("harmony base: %w", err)
	}
	return color.FormatAll(Generate(base, t)), nil
}

var (
	sequentialLight = color.New(0.98, 0.98, 0.98)
	divergingCenter = color.New(0.97, 0.97, 0.97)
)

// Sequential blends from a near-white anchor to base in steps evenly spaced
// perceptual stops. Fewer than two steps yields just base.
func Sequential(base color.RGBA, steps int) []color.RGBA {
	if steps <= 1 {
		return []color.RGBA{base}
	}
	return perceptual.Gradient(sequentialLight, base, steps)
}

// SequentialHex is Sequential for a hex base. On a parse failure it returns
// []string{baseHex} and the error.
func SequentialHex(baseHex string, steps int) ([]string, error) {
	base, err := color.ParseHex(baseHex)
	if err != nil {
		return []string{baseHex}, fmt.Errorf("sequential base: %w", err)
	}
	return color.FormatAll(Sequential(base, steps)), nil
}

// Diverging blends start toward a light neutral over the first steps/2
// colors and the neutral toward end over the last steps/2. An odd steps puts
// the neutral itself in the middle.
func Diverging(start, end color.RGBA, steps int) []color.RGBA {
	half := steps / 2
	out := make([]color.RGBA, 0, max(0, steps))

	for i := range half {
		out = append(out, perceptual.Blend(start, divergingCenter, float64(i)/float64(half)))
	}
	if steps%2 == 1 {
		out = append(out, divergingCenter)
	}
	for i := range half {
		out = append(out, perceptual.Blend(divergingCenter, end, float64(i+1)/float64(half)))
	}
	return out
}

// DivergingHex is Diverging for hex endpoints. On a parse failure it returns
// []string{startHex, endHex} and the error.
func DivergingHex(startHex, endHex string, steps int) ([]string, error) {
	start, err := color.ParseHex(startHex)
	if err != nil {
		return []string{startHex, endHex}, fmt.Errorf("diverging start: %w", err)
	}
	end, err := color.ParseHex(endHex)
	if err != nil {
		return []string{startHex, endHex}, fmt.Errorf("diverging end: %w", err)
	}
	return color.FormatAll(Diverging(start, end, steps)), nil
}
