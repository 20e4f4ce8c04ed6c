package gradient

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/jsvensson/colorkit/internal/color"
	"github.com/jsvensson/colorkit/internal/palette"
)

// MultiStopRGBA spreads steps colors across the segments between consecutive
// stops. Each segment gets steps/(len(stops)-1) colors (at least one) and the
// last segment takes the remainder. Segment boundaries appear once, and the
// result always starts at the first stop and ends at the last. When there are
// more stops than steps the trailing intermediate stops are dropped.
//
// A single stop yields just that stop. Fewer than two steps yields the first
// and last stops.
func MultiStopRGBA(stops []color.RGBA, steps int, mode Interpolation) []color.RGBA {
	switch {
	case len(stops) == 0:
		return nil
	case len(stops) == 1:
		return []color.RGBA{stops[0]}
	case steps <= 1:
		return []color.RGBA{stops[0], stops[len(stops)-1]}
	}

	segments := len(stops) - 1
	perSegment := max(1, steps/segments)
	last := max(1, steps-perSegment*(segments-1))

	out := make([]color.RGBA, 0, steps+1)
	for i := range segments {
		n := perSegment
		if i == segments-1 {
			n = last
		}
		if i == 0 {
			out = append(out, GenerateRGBA(stops[0], stops[1], max(2, n), mode)...)
			continue
		}
		out = append(out, GenerateRGBA(stops[i], stops[i+1], n+1, mode)[1:]...)
	}

	if len(out) > steps {
		out = out[:steps]
		out[steps-1] = stops[len(stops)-1]
	}
	return out
}

// MultiStop is MultiStopRGBA formatted as "#RRGGBB" strings.
func MultiStop(stops []color.RGBA, steps int, mode Interpolation) []string {
	return color.FormatAll(MultiStopRGBA(stops, steps, mode))
}

// MultiStopHex parses every stop and generates a multi-stop gradient. If any
// stop fails to parse, the stops are returned unchanged with the error.
func MultiStopHex(stops []string, steps int, mode Interpolation) ([]string, error) {
	parsed, err := parseAll(stops)
	if err != nil {
		return stops, err
	}
	return MultiStop(parsed, steps, mode), nil
}

func parseAll(hexes []string) ([]color.RGBA, error) {
	out := make([]color.RGBA, len(hexes))
	for i, h := range hexes {
		c, err := color.ParseHex(h)
		if err != nil {
			return nil, fmt.Errorf("stop %d: %w", i, err)
		}
		out[i] = c
	}
	return out, nil
}

// Scheme names a fixed stop list for data visualization.
type Scheme int

const (
	SchemeSequential Scheme = iota
	SchemeDiverging
	SchemeHeatmap
	SchemeViridis
	SchemePlasma
	SchemeTemperature
)

type schemeInfo struct {
	name        string
	description string
	stops       []string
}

var schemes = [...]schemeInfo{
	SchemeSequential: {
		name:        "sequential",
		description: "Progression from low to high values using a single hue with varying lightness.",
		stops:       palette.MustLookup("blues").Colors,
	},
	SchemeDiverging: {
		name:        "diverging",
		description: "Deviations from a central value, two contrasting hues meeting at a neutral midpoint.",
		stops:       palette.MustLookup("red-blue").Colors,
	},
	SchemeHeatmap: {
		name:        "heatmap",
		description: "Classic blue-to-red spectrum for intensity or density data.",
		stops:       palette.MustLookup("heatmap").Colors,
	},
	SchemeViridis: {
		name:        "viridis",
		description: "Perceptually uniform, colorblind-friendly colormap for scientific data.",
		stops:       palette.MustLookup("viridis").Colors,
	},
	SchemePlasma: {
		name:        "plasma",
		description: "High-contrast perceptually uniform colormap for highlighting patterns and outliers.",
		stops:       palette.MustLookup("plasma").Colors,
	},
	SchemeTemperature: {
		name:        "temperature",
		description: "Thermal imaging from cool blues through warm reds to hot white.",
		stops:       Presets["thermal"].Stops,
	},
}

// Schemes lists every data-visualization scheme in declaration order.
func Schemes() []Scheme {
	return []Scheme{SchemeSequential, SchemeDiverging, SchemeHeatmap, SchemeViridis, SchemePlasma, SchemeTemperature}
}

func (s Scheme) String() string {
	if s < 0 || int(s) >= len(schemes) {
		return fmt.Sprintf("Scheme(%d)", int(s))
	}
	return schemes[s].name
}

// Description is a one-sentence summary used in help and hover text.
func (s Scheme) Description() string {
	if s < 0 || int(s) >= len(schemes) {
		return ""
	}
	return schemes[s].description
}

// Stops returns the scheme's fixed color stops.
func (s Scheme) Stops() []string {
	if s < 0 || int(s) >= len(schemes) {
		return nil
	}
	return schemes[s].stops
}

// ParseScheme resolves a scheme name, ignoring case.
func ParseScheme(name string) (Scheme, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	names := make([]string, len(schemes))
	for i, info := range schemes {
		if info.name == key {
			return Scheme(i), nil
		}
		names[i] = info.name
	}
	return 0, fmt.Errorf("unknown scheme %q (expected one of %s)", name, strings.Join(names, ", "))
}

// DataVisualizationRGBA runs the scheme's stops through a perceptual
// multi-stop gradient of the requested length.
func DataVisualizationRGBA(s Scheme, steps int) []color.RGBA {
	stops, err := parseAll(s.Stops())
	if err != nil {
		panic(fmt.Sprintf("scheme %s: %v", s, err))
	}
	return MultiStopRGBA(stops, steps, Perceptual)
}

// DataVisualization is DataVisualizationRGBA formatted as "#RRGGBB" strings.
func DataVisualization(s Scheme, steps int) []string {
	return color.FormatAll(DataVisualizationRGBA(s, steps))
}

// Preset is a named stop list for temperature-style gradients.
type Preset struct {
	Name  string
	Stops []string
}

// Presets are the built-in temperature gradients keyed by identifier.
var Presets = map[string]Preset{
	"cool-to-warm": {Name: "Cool to Warm", Stops: []string{"#0066CC", "#FFFFFF", "#FF3366"}},
	"thermal":      {Name: "Thermal", Stops: []string{"#000080", "#0000FF", "#00FFFF", "#00FF00", "#FFFF00", "#FF0000", "#FFFFFF"}},
	"arctic":       {Name: "Arctic", Stops: []string{"#001122", "#003366", "#0066CC", "#66CCFF", "#FFFFFF"}},
	"sunset":       {Name: "Sunset", Stops: []string{"#FF6B35", "#F7931E", "#FFD23F", "#FF6B6B", "#C44569"}},
	"ocean":        {Name: "Ocean Depths", Stops: []string{"#000080", "#0033AA", "#0066CC", "#0099FF", "#66CCFF"}},
	"fire":         {Name: "Fire", Stops: []string{"#8B0000", "#FF0000", "#FF4500", "#FFA500", "#FFFF00", "#FFFFFF"}},
}

// AnimationSteps is the number of frames needed for duration at fps.
func AnimationSteps(duration time.Duration, fps int) int {
	return int(math.Round(duration.Seconds() * float64(fps)))
}

// AnimationRGBA returns one eased color per frame from from to to.
func AnimationRGBA(from, to color.RGBA, duration time.Duration, fps int) []color.RGBA {
	return GenerateRGBA(from, to, AnimationSteps(duration, fps), Ease)
}

// Animation is AnimationRGBA formatted as "#RRGGBB" strings.
func Animation(from, to color.RGBA, duration time.Duration, fps int) []string {
	return color.FormatAll(AnimationRGBA(from, to, duration, fps))
}

// AnimationHex parses both endpoints and generates animation frames. On a
// parse failure the inputs are returned unchanged with the error.
func AnimationHex(from, to string, duration time.Duration, fps int) ([]string, error) {
	start, err := color.ParseHex(from)
	if err != nil {
		return []string{from, to}, fmt.Errorf("animation start: %w", err)
	}
	end, err := color.ParseHex(to)
	if err != nil {
		return []string{from, to}, fmt.Errorf("animation end: %w", err)
	}
	return Animation(start, end, duration, fps), nil
}
