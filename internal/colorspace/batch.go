package colorspace

import (
	"github.com/jsvensson/colorkit/internal/color"
	"github.com/kovidgoyal/go-parallel"
)

// Map applies fn to every color, spreading the work across CPUs. Conversions are
// pure so no coordination is needed; the error only reports a recovered panic.
func Map[T any](colors []color.RGBA, fn func(color.RGBA) T) ([]T, error) {
	out := make([]T, len(colors))
	if len(colors) == 0 {
		return out, nil
	}
	err := parallel.Run_in_parallel_over_range(0, func(start, limit int) {
		for i := start; i < limit; i++ {
			out[i] = fn(colors[i])
		}
	}, 0, len(colors))
	return out, err
}

// XYZs converts a batch of colors to XYZ.
func XYZs(colors []color.RGBA) ([]XYZ, error) {
	return Map(colors, RGBAToXYZ)
}

// LABs converts a batch of colors to CIE L*a*b*.
func LABs(colors []color.RGBA) ([]LAB, error) {
	return Map(colors, RGBAToLAB)
}

// LUVs converts a batch of colors to CIE L*u*v*.
func LUVs(colors []color.RGBA) ([]LUV, error) {
	return Map(colors, RGBAToLUV)
}
