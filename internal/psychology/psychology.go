// Package psychology scores colors against a heuristic model of emotional
// associations and builds palettes for a desired mood.
package psychology

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"strings"

	"github.com/jsvensson/colorkit/internal/color"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Emotion is an emotional association a color can evoke.
type Emotion int

const (
	Calm Emotion = iota
	Energetic
	Warm
	Cool
	Professional
	Creative
	Trustworthy
	Luxurious
	Playful
	Natural
	Romantic
	Mysterious
	Confident
	Peaceful
	Exciting
	Sophisticated
	Friendly
	Powerful
	Fresh
	Elegant
)

var emotionNames = [...]string{
	Calm:          "calm",
	Energetic:     "energetic",
	Warm:          "warm",
	Cool:          "cool",
	Professional:  "professional",
	Creative:      "creative",
	Trustworthy:   "trustworthy",
	Luxurious:     "luxurious",
	Playful:       "playful",
	Natural:       "natural",
	Romantic:      "romantic",
	Mysterious:    "mysterious",
	Confident:     "confident",
	Peaceful:      "peaceful",
	Exciting:      "exciting",
	Sophisticated: "sophisticated",
	Friendly:      "friendly",
	Powerful:      "powerful",
	Fresh:         "fresh",
	Elegant:       "elegant",
}

// Emotions lists every emotion in declaration order.
func Emotions() []Emotion {
	out := make([]Emotion, len(emotionNames))
	for i := range emotionNames {
		out[i] = Emotion(i)
	}
	return out
}

func (e Emotion) String() string {
	if e < 0 || int(e) >= len(emotionNames) {
		return fmt.Sprintf("Emotion(%d)", int(e))
	}
	return emotionNames[e]
}

// DisplayName is the title-cased name, e.g. "Trustworthy".
func (e Emotion) DisplayName() string {
	return cases.Title(language.English).String(e.String())
}

// ParseEmotion resolves an emotion name, ignoring case.
func ParseEmotion(s string) (Emotion, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, n := range emotionNames {
		if n == key {
			return Emotion(i), nil
		}
	}
	return 0, fmt.Errorf("unknown emotion %q", s)
}

var associated = [...][]string{
	Calm:          {"#E8F4FD", "#B3D9F2", "#7FB8D3", "#4F94CD", "#2E8B57", "#87CEEB", "#F0F8FF", "#E6E6FA"},
	Energetic:     {"#FF6B35", "#F7931E", "#FFD23F", "#EE4B2B", "#FF4500", "#FF1493", "#32CD32", "#ADFF2F"},
	Warm:          {"#FF6347", "#FF7F50", "#FFA500", "#FFD700", "#F4A460", "#DEB887", "#CD853F", "#D2691E"},
	Cool:          {"#4169E1", "#00CED1", "#20B2AA", "#48D1CC", "#87CEEB", "#B0E0E6", "#E0FFFF", "#F0F8FF"},
	Professional:  {"#2C3E50", "#34495E", "#7F8C8D", "#95A5A6", "#BDC3C7", "#1ABC9C", "#3498DB", "#9B59B6"},
	Creative:      {"#E74C3C", "#F39C12", "#F1C40F", "#2ECC71", "#3498DB", "#9B59B6", "#E67E22", "#1ABC9C"},
	Trustworthy:   {"#3498DB", "#2980B9", "#1ABC9C", "#16A085", "#27AE60", "#2ECC71", "#34495E", "#2C3E50"},
	Luxurious:     {"#8E44AD", "#9B59B6", "#2C3E50", "#34495E", "#F39C12", "#E67E22", "#C0392B", "#A93226"},
	Playful:       {"#FF69B4", "#FF1493", "#00FF7F", "#FFD700", "#FF6347", "#32CD32", "#FF4500", "#DA70D6"},
	Natural:       {"#228B22", "#32CD32", "#9ACD32", "#6B8E23", "#556B2F", "#8FBC8F", "#98FB98", "#F0FFF0"},
	Romantic:      {"#FFB6C1", "#FFC0CB", "#FF69B4", "#FF1493", "#DC143C", "#B22222", "#CD5C5C", "#F08080"},
	Mysterious:    {"#2F1B69", "#4B0082", "#483D8B", "#2E2E2E", "#36454F", "#1C1C1C", "#191970", "#000080"},
	Confident:     {"#DC143C", "#B22222", "#8B0000", "#FF4500", "#FF6347", "#2F4F4F", "#000000", "#800000"},
	Peaceful:      {"#E6E6FA", "#F0F8FF", "#F5F5DC", "#FFF8DC", "#FFFACD", "#F0FFF0", "#F5FFFA", "#FFFFF0"},
	Exciting:      {"#FF0000", "#FF4500", "#FF6347", "#FF1493", "#FF69B4", "#ADFF2F", "#00FF00", "#FFD700"},
	Sophisticated: {"#2C2C2C", "#36454F", "#708090", "#2F4F4F", "#696969", "#A9A9A9", "#C0C0C0", "#D3D3D3"},
	Friendly:      {"#FFA500", "#FFD700", "#FFFF00", "#ADFF2F", "#32CD32", "#00CED1", "#87CEEB", "#DDA0DD"},
	Powerful:      {"#000000", "#8B0000", "#B22222", "#2F4F4F", "#36454F", "#191970", "#4B0082", "#800080"},
	Fresh:         {"#00FF7F", "#32CD32", "#98FB98", "#90EE90", "#ADFF2F", "#7CFC00", "#00FA9A", "#00FF00"},
	Elegant:       {"#2C2C2C", "#36454F", "#C0C0C0", "#D3D3D3", "#E6E6FA", "#F5F5DC", "#FFF8DC", "#FFFFF0"},
}

var complements = [...][]Emotion{
	Calm:          {Peaceful, Trustworthy, Professional},
	Energetic:     {Exciting, Confident, Playful},
	Warm:          {Friendly, Romantic, Natural},
	Cool:          {Calm, Trustworthy, Professional},
	Professional:  {Trustworthy, Sophisticated, Confident},
	Creative:      {Playful, Energetic, Exciting},
	Trustworthy:   {Professional, Calm, Confident},
	Luxurious:     {Sophisticated, Elegant, Mysterious},
	Playful:       {Creative, Friendly, Energetic},
	Natural:       {Fresh, Calm, Peaceful},
	Romantic:      {Warm, Elegant, Luxurious},
	Mysterious:    {Sophisticated, Powerful, Luxurious},
	Confident:     {Powerful, Professional, Trustworthy},
	Peaceful:      {Calm, Natural, Fresh},
	Exciting:      {Energetic, Playful, Creative},
	Sophisticated: {Elegant, Luxurious, Professional},
	Friendly:      {Warm, Playful, Trustworthy},
	Powerful:      {Confident, Mysterious, Sophisticated},
	Fresh:         {Natural, Energetic, Peaceful},
	Elegant:       {Sophisticated, Luxurious, Romantic},
}

// ColorsFor returns the hex colors associated with e.
func ColorsFor(e Emotion) []string {
	if e < 0 || int(e) >= len(associated) {
		return nil
	}
	return associated[e]
}

// Complementary returns emotions that pair well with e.
func Complementary(e Emotion) []Emotion {
	if e < 0 || int(e) >= len(complements) {
		return nil
	}
	return complements[e]
}

// Primary classifies c into a single emotion from its HSL coordinates.
func Primary(c color.RGBA) Emotion {
	hsl := color.ToHSL(c)
	h, s, l := hsl.H, hsl.S, hsl.L

	switch {
	case l > 0.8 && s < 0.3:
		return Peaceful
	case s > 0.8 && l > 0.5:
		switch {
		case h < 60:
			return Energetic
		case h < 120:
			return Fresh
		case h < 180:
			return Natural
		case h < 240:
			return Cool
		case h < 300:
			return Mysterious
		default:
			return Romantic
		}
	case l < 0.3:
		if s > 0.5 {
			return Powerful
		}
		return Sophisticated
	case s < 0.2:
		return Professional
	case h < 60:
		return Warm
	case h >= 180 && h < 240:
		return Trustworthy
	default:
		return Friendly
	}
}

// PrimaryHex is Primary for a hex color.
func PrimaryHex(hex string) (Emotion, error) {
	c, err := color.ParseHex(hex)
	if err != nil {
		return 0, err
	}
	return Primary(c), nil
}

// Score is an emotion paired with a confidence in [0, 1].
type Score struct {
	Emotion    Emotion
	Confidence float64
}

// Profile scores c against the emotions the model can rate and returns those
// above 0.1, highest confidence first.
func Profile(c color.RGBA) []Score {
	hsl := color.ToHSL(c)
	h, s, l := hsl.H, hsl.S, hsl.L

	raw := []Score{
		{Calm, l*0.4 + (1-s)*0.3 + coolHue(h)*0.3},
		{Energetic, s*0.5 + warmHue(h)*0.5},
		{Professional, (1-math.Abs(l-0.5))*0.4 + (1-s)*0.6},
		{Luxurious, (1-l)*0.4 + s*0.3 + luxuryHue(h)*0.3},
		{Natural, greenHue(h)*0.7 + s*0.3},
		{Trustworthy, blueHue(h)*0.8 + s*0.2},
		{Romantic, pinkRedHue(h)*0.6 + l*0.4},
		{Mysterious, (1-l)*0.6 + purpleHue(h)*0.4},
		{Peaceful, l*0.5 + (1-s)*0.5},
		{Powerful, (1-l)*0.7 + s*0.3},
	}

	out := raw[:0]
	for _, sc := range raw {
		sc.Confidence = math.Min(1, sc.Confidence)
		if sc.Confidence > 0.1 {
			out = append(out, sc)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Confidence > out[j].Confidence })
	return out
}

// ProfileHex is Profile for a hex color.
func ProfileHex(hex string) ([]Score, error) {
	c, err := color.ParseHex(hex)
	if err != nil {
		return nil, err
	}
	return Profile(c), nil
}

// Palette picks count visually diverse colors associated with emotions. The
// first associated color is taken first; each following pick is the
// candidate farthest (in RGB) from everything already chosen.
func Palette(emotions []Emotion, count int) []string {
	if count <= 0 {
		return nil
	}

	seen := make(map[string]bool)
	var candidates []string
	for _, e := range emotions {
		for _, h := range ColorsFor(e) {
			if !seen[h] {
				seen[h] = true
				candidates = append(candidates, h)
			}
		}
	}
	if len(candidates) <= count {
		return candidates
	}

	parsed := make(map[string]color.RGBA, len(candidates))
	for _, h := range candidates {
		c, err := color.ParseHex(h)
		if err != nil {
			panic(fmt.Sprintf("psychology: %v", err))
		}
		parsed[h] = c
	}

	selected := []string{candidates[0]}
	remaining := candidates[1:]
	for len(selected) < count && len(remaining) > 0 {
		best, bestDist := 0, -1.0
		for i, cand := range remaining {
			minDist := math.Inf(1)
			for _, sel := range selected {
				minDist = math.Min(minDist, distance(parsed[cand], parsed[sel]))
			}
			if minDist > bestDist {
				best, bestDist = i, minDist
			}
		}
		selected = append(selected, remaining[best])
		remaining = slices.Delete(remaining, best, best+1)
	}
	return selected
}

func distance(a, b color.RGBA) float64 {
	dr, dg, db := a.R-b.R, a.G-b.G, a.B-b.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}
