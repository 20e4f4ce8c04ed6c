// Package access implements WCAG 2 contrast checks.
package access

import (
	"fmt"
	"math"

	"github.com/jsvensson/colorkit/internal/color"
)

// Level is a WCAG conformance level for normal-size text.
type Level int

const (
	AA Level = iota
	AAA
)

func (l Level) String() string {
	switch l {
	case AA:
		return "AA"
	case AAA:
		return "AAA"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// MinRatio is the minimum contrast ratio the level requires.
func (l Level) MinRatio() float64 {
	if l == AAA {
		return 7.0
	}
	return 4.5
}

// RelativeLuminance is the WCAG relative luminance of c in [0, 1].
func RelativeLuminance(c color.RGBA) float64 {
	linearize := func(v float64) float64 {
		if v <= 0.03928 {
			return v / 12.92
		}
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B)
}

// ContrastRatio is the WCAG contrast ratio between two colors, from 1 to 21.
// Argument order does not matter.
func ContrastRatio(c1, c2 color.RGBA) float64 {
	l1, l2 := RelativeLuminance(c1), RelativeLuminance(c2)
	hi, lo := math.Max(l1, l2), math.Min(l1, l2)
	return (hi + 0.05) / (lo + 0.05)
}

// Meets reports whether foreground on background satisfies level.
func Meets(level Level, foreground, background color.RGBA) bool {
	return ContrastRatio(foreground, background) >= level.MinRatio()
}

// ContrastRatioHex is ContrastRatio for hex strings.
func ContrastRatioHex(hex1, hex2 string) (float64, error) {
	c1, err := color.ParseHex(hex1)
	if err != nil {
		return 0, err
	}
	c2, err := color.ParseHex(hex2)
	if err != nil {
		return 0, err
	}
	return ContrastRatio(c1, c2), nil
}

// MeetsHex is Meets for hex strings. Unparseable input never meets a level.
func MeetsHex(level Level, foreground, background string) (bool, error) {
	ratio, err := ContrastRatioHex(foreground, background)
	if err != nil {
		return false, err
	}
	return ratio >= level.MinRatio(), nil
}

// Report summarizes the contrast between two colors.
type Report struct {
	Ratio float64
	AA    bool
	AAA   bool
}

// Check builds a Report for foreground on background.
func Check(foreground, background color.RGBA) Report {
	r := ContrastRatio(foreground, background)
	return Report{Ratio: r, AA: r >= AA.MinRatio(), AAA: r >= AAA.MinRatio()}
}
