// Package temperature shifts colors along the warm/cool and green/magenta
// axes and converts between colors and correlated color temperature.
package temperature

import (
	"fmt"
	"math"
	"sort"

	"github.com/jsvensson/colorkit/internal/color"
	"github.com/jsvensson/colorkit/internal/colorspace"
	"github.com/jsvensson/colorkit/internal/perceptual"
)

// Daylight is the temperature reported for colors that cannot be parsed.
const Daylight = 6500.0

// shift adds offsets to each channel in linear light and returns the result
// clamped to sRGB.
func shift(c color.RGBA, dr, dg, db float64) color.RGBA {
	return color.RGBA{
		R: color.Clamp(colorspace.Delinearize(colorspace.Linearize(c.R) + dr)),
		G: color.Clamp(colorspace.Delinearize(colorspace.Linearize(c.G) + dg)),
		B: color.Clamp(colorspace.Delinearize(colorspace.Linearize(c.B) + db)),
		A: c.A,
	}
}

func factor(amount float64) float64 {
	return math.Max(-100, math.Min(100, amount)) / 100
}

// AdjustTemperature warms (positive) or cools (negative) c. Amount is in
// [-100, 100]; values outside are clamped.
func AdjustTemperature(c color.RGBA, amount float64) color.RGBA {
	f := factor(amount)
	if f > 0 {
		return shift(c, f*0.3, f*0.1, -f*0.2)
	}
	return shift(c, f*0.2, f*0.1, -f*0.3)
}

// AdjustTint moves c toward magenta (positive) or green (negative). Amount is
// in [-100, 100]; values outside are clamped.
func AdjustTint(c color.RGBA, amount float64) color.RGBA {
	f := factor(amount)
	if f > 0 {
		return shift(c, f*0.2, -f*0.1, f*0.1)
	}
	return shift(c, f*0.1, -f*0.2, f*0.05)
}

// Adjust applies a temperature shift followed by a tint shift.
func Adjust(c color.RGBA, temperature, tint float64) color.RGBA {
	return AdjustTint(AdjustTemperature(c, temperature), tint)
}

// Estimate returns a rough color temperature in Kelvin from the red/blue
// ratio of c. It is a heuristic, not a colorimetric CCT calculation.
func Estimate(c color.RGBA) float64 {
	ratio := c.R / math.Max(c.B, 0.001)
	switch {
	case ratio > 1.5:
		return 2000 + (ratio-1.5)*1000
	case ratio < 0.8:
		return 6500 + (0.8-ratio)*7000
	default:
		return 5500 + (ratio-1.0)*2000
	}
}

// EstimateHex is Estimate for a hex color. Invalid input reports Daylight
// along with the parse error.
func EstimateHex(hex string) (float64, error) {
	c, err := color.ParseHex(hex)
	if err != nil {
		return Daylight, err
	}
	return Estimate(c), nil
}

// KelvinToRGBA approximates the color of a black body at the given
// temperature, clamped to [1000, 40000] K.
func KelvinToRGBA(kelvin float64) color.RGBA {
	temp := math.Max(1000, math.Min(40000, kelvin)) / 100

	var r, g, b float64
	if temp <= 66 {
		r = 255
		g = 99.4708025861*math.Log(temp) - 161.1195681661
	} else {
		r = 329.698727446 * math.Pow(temp-60, -0.1332047592)
		g = 288.1221695283 * math.Pow(temp-60, -0.0755148492)
	}

	switch {
	case temp >= 66:
		b = 255
	case temp <= 19:
		b = 0
	default:
		b = 138.5177312231*math.Log(temp-10) - 305.0447927307
	}

	clamp := func(v float64) float64 { return math.Max(0, math.Min(255, v)) / 255 }
	return color.New(clamp(r), clamp(g), clamp(b))
}

// Presets maps white-balance preset names to their Kelvin temperature.
var Presets = map[string]float64{
	"candlelight":            1900,
	"tungsten":               2700,
	"warm-fluorescent":       3000,
	"cool-white-fluorescent": 4100,
	"daylight":               5500,
	"flash":                  5500,
	"cloudy":                 6500,
	"shade":                  7500,
}

// PresetNames returns the preset names sorted by temperature, then name.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for n := range Presets {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool {
		ki, kj := Presets[names[i]], Presets[names[j]]
		if ki != kj {
			return ki < kj
		}
		return names[i] < names[j]
	})
	return names
}

// ApplyPreset tints c toward the light color of a white-balance preset.
// Strength is clamped to [0, 1]; full strength blends 30% of the way.
func ApplyPreset(c color.RGBA, preset string, strength float64) (color.RGBA, error) {
	k, ok := Presets[preset]
	if !ok {
		return c, fmt.Errorf("unknown white balance preset %q", preset)
	}
	return perceptual.Blend(c, KelvinToRGBA(k), color.Clamp(strength)*0.3), nil
}
