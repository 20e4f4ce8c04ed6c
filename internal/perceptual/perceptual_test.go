package perceptual

import (
	"math"
	"testing"

	"github.com/jsvensson/colorkit/internal/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red   = color.New(1, 0, 0)
	green = color.New(0, 1, 0)
	blue  = color.New(0, 0, 1)
	black = color.New(0, 0, 0)
	white = color.New(1, 1, 1)
)

func palette() []color.RGBA {
	return []color.RGBA{
		red, green, blue, black, white,
		color.New(0.5, 0.5, 0.5),
		color.New(0.92, 0.44, 0.57),
		color.New(0.19, 0.45, 0.56),
		color.New(0.61, 0.81, 0.85),
		color.New(0.01, 0.01, 0.012),
	}
}

func TestDeltaE2000_Identity(t *testing.T) {
	assert.Equal(t, 0.0, DeltaE2000(red, red))

	for _, c := range palette() {
		assert.Equal(t, 0.0, DeltaE2000(c, c), "DeltaE2000(%v, %v)", c, c)
	}
}

func TestDeltaE2000_NonNegative(t *testing.T) {
	colors := palette()
	for _, a := range colors {
		for _, b := range colors {
			d := DeltaE2000(a, b)
			assert.False(t, math.IsNaN(d), "NaN for %v, %v", a, b)
			assert.GreaterOrEqual(t, d, 0.0, "%v, %v", a, b)
		}
	}
}

func TestDeltaE2000_BothOrders(t *testing.T) {
	// The weights depend on the first argument's chroma, so swapping the
	// arguments changes the result for a chromatic/achromatic pair.
	forward := DeltaE2000(red, white)
	backward := DeltaE2000(white, red)

	assert.Greater(t, forward, 0.0)
	assert.Greater(t, backward, 0.0)
	assert.NotEqual(t, forward, backward)

	// White has no chroma, so Sc = Sh = 1 and the distance is plain Euclidean in LCh.
	assert.Greater(t, backward, forward)
}

func TestDeltaE2000_LightnessOnly(t *testing.T) {
	// Neutral grays differ only in L*, so the distance is |ΔL|.
	got := DeltaE2000(black, white)
	assert.InDelta(t, 100, got, 0.5)
}

func TestBlend(t *testing.T) {
	t.Run("endpoints", func(t *testing.T) {
		assert.Equal(t, red.Hex(), Blend(red, blue, 0).Hex())
		assert.Equal(t, blue.Hex(), Blend(red, blue, 1).Hex())
	})

	t.Run("ratio is clamped", func(t *testing.T) {
		assert.Equal(t, Blend(red, blue, 0), Blend(red, blue, -3))
		assert.Equal(t, Blend(red, blue, 1), Blend(red, blue, 7))
	})

	t.Run("alpha is not interpolated", func(t *testing.T) {
		got := Blend(red.WithAlpha(0.2), blue.WithAlpha(0.4), 0.5)
		assert.Equal(t, 1.0, got.A)
	})

	t.Run("midpoint of black and white is mid lightness", func(t *testing.T) {
		got := Blend(black, white, 0.5)
		assert.InDelta(t, got.R, got.G, 1e-3)
		assert.InDelta(t, got.G, got.B, 1e-3)
		// L* = 50 is sRGB ~0.466.
		assert.InDelta(t, 0.466, got.R, 0.01)
	})
}

func TestGradient(t *testing.T) {
	t.Run("single step", func(t *testing.T) {
		assert.Equal(t, []color.RGBA{red}, Gradient(red, blue, 1))
		assert.Equal(t, []color.RGBA{red}, Gradient(red, blue, 0))
	})

	for _, steps := range []int{2, 3, 7, 20} {
		got := Gradient(red, blue, steps)
		require.Len(t, got, steps)
		assert.Equal(t, red.Hex(), got[0].Hex())
		assert.Equal(t, blue.Hex(), got[steps-1].Hex())
	}
}

func TestClosest(t *testing.T) {
	candidates := []color.RGBA{black, white, color.New(0.9, 0.1, 0.1)}
	assert.Equal(t, 2, Closest(red, candidates))
	assert.Equal(t, 1, Closest(color.New(0.95, 0.95, 0.95), candidates))
	assert.Equal(t, -1, Closest(red, nil))
}
