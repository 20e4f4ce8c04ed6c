package psychology

import "math"

// Hue affinity curves. Each returns 1 inside its core range and falls off
// linearly to 0 across the surrounding band.

func warmHue(h float64) float64 {
	switch {
	case h <= 60 || h >= 300:
		return 1
	case h <= 120:
		return 1 - (h-60)/60
	case h >= 240:
		return (h - 240) / 60
	}
	return 0
}

func coolHue(h float64) float64 {
	switch {
	case h >= 180 && h <= 240:
		return 1
	case h >= 120 && h < 180:
		return (h - 120) / 60
	case h > 240 && h <= 300:
		return 1 - (h-240)/60
	}
	return 0
}

func greenHue(h float64) float64 {
	switch {
	case h >= 90 && h <= 150:
		return 1
	case h >= 60 && h < 90:
		return (h - 60) / 30
	case h > 150 && h <= 180:
		return 1 - (h-150)/30
	}
	return 0
}

func blueHue(h float64) float64 {
	switch {
	case h >= 200 && h <= 260:
		return 1
	case h >= 180 && h < 200:
		return (h - 180) / 20
	case h > 260 && h <= 280:
		return 1 - (h-260)/20
	}
	return 0
}

func purpleHue(h float64) float64 {
	switch {
	case h >= 260 && h <= 320:
		return 1
	case h >= 240 && h < 260:
		return (h - 240) / 20
	case h > 320 && h <= 340:
		return 1 - (h-320)/20
	}
	return 0
}

func pinkRedHue(h float64) float64 {
	switch {
	case h >= 320 || h <= 20:
		return 1
	case h >= 300 && h < 320:
		return (h - 300) / 20
	case h > 20 && h <= 40:
		return 1 - (h-20)/20
	}
	return 0
}

// luxuryHue favors purples and golds.
func luxuryHue(h float64) float64 {
	gold := 0.0
	if h >= 40 && h <= 60 {
		gold = 1
	}
	return math.Max(purpleHue(h), gold)
}
