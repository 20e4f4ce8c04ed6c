package harmony

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jsvensson/colorkit/internal/color"
	"github.com/jsvensson/colorkit/internal/colorspace"
)

func TestGenerateHex(t *testing.T) {
	tests := []struct {
		name string
		base string
		typ  Type
		want []string
	}{
		{"complementary red", "#FF0000", Complementary, []string{"#FF0000", "#00FFFF"}},
		{"triadic red", "#FF0000", Triadic, []string{"#FF0000", "#00FF00", "#0000FF"}},
		{"monochromatic red", "#FF0000", Monochromatic, []string{"#660000", "#CC0000", "#FF0000", "#FF6666", "#FFCCCC"}},
		{"complementary gray", "#808080", Complementary, []string{"#808080", "#808080"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GenerateHex(tt.base, tt.typ)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("GenerateHex mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGenerateHex_InvalidBase(t *testing.T) {
	got, err := GenerateHex("not-a-color", Triadic)
	if !errors.Is(err, color.ErrInvalidHex) {
		t.Errorf("error = %v, want ErrInvalidHex", err)
	}
	if diff := cmp.Diff([]string{"not-a-color"}, got); diff != "" {
		t.Errorf("fallback mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerate_HueOffsets(t *testing.T) {
	base := color.FromHSL(color.HSL{H: 200, S: 0.6, L: 0.45})

	tests := []struct {
		typ  Type
		want []float64
	}{
		{Complementary, []float64{200, 20}},
		{Analogous, []float64{170, 200, 230}},
		{Triadic, []float64{200, 320, 80}},
		{Tetradic, []float64{200, 290, 20, 110}},
		{SplitComplementary, []float64{200, 350, 50}},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			got := Generate(base, tt.typ)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i, c := range got {
				hsl := color.ToHSL(c)
				if math.Abs(hsl.H-tt.want[i]) > 0.01 {
					t.Errorf("[%d] hue = %f, want %f", i, hsl.H, tt.want[i])
				}
				if math.Abs(hsl.S-0.6) > 1e-9 || math.Abs(hsl.L-0.45) > 1e-9 {
					t.Errorf("[%d] saturation/lightness changed: %+v", i, hsl)
				}
			}
		})
	}
}

func TestGenerate_Monochromatic(t *testing.T) {
	base := color.FromHSL(color.HSL{H: 200, S: 0.6, L: 0.45})
	want := []float64{0.2, 0.4, 0.45, 0.7, 0.9}

	got := Generate(base, Monochromatic)
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, c := range got {
		hsl := color.ToHSL(c)
		if math.Abs(hsl.L-want[i]) > 1e-9 {
			t.Errorf("[%d] lightness = %f, want %f", i, hsl.L, want[i])
		}
		if math.Abs(hsl.H-200) > 0.01 {
			t.Errorf("[%d] hue = %f, want 200", i, hsl.H)
		}
	}
}

func TestGenerate_HueWraps(t *testing.T) {
	base := color.FromHSL(color.HSL{H: 350, S: 0.8, L: 0.5})
	for _, typ := range Types() {
		for _, c := range Generate(base, typ) {
			h := color.ToHSL(c).H
			if h < 0 || h >= 360 || math.IsNaN(h) {
				t.Errorf("%s: hue %f out of range", typ, h)
			}
			if c.A != 1 {
				t.Errorf("%s: alpha = %f, want 1", typ, c.A)
			}
		}
	}
}

func TestParseType(t *testing.T) {
	for _, typ := range Types() {
		got, err := ParseType(typ.String())
		if err != nil || got != typ {
			t.Errorf("ParseType(%q) = %v, %v", typ, got, err)
		}
	}

	for _, alias := range []string{"splitComplementary", "split_complementary", "SPLIT-COMPLEMENTARY"} {
		if got, err := ParseType(alias); err != nil || got != SplitComplementary {
			t.Errorf("ParseType(%q) = %v, %v", alias, got, err)
		}
	}

	if _, err := ParseType("square"); err == nil {
		t.Error("expected error for unknown harmony")
	}
}

func TestSequential(t *testing.T) {
	got, err := SequentialHex("#08519C", 9)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 9 {
		t.Fatalf("len = %d, want 9", len(got))
	}
	if got[0] != "#FAFAFA" {
		t.Errorf("first = %s, want the near-white anchor #FAFAFA", got[0])
	}
	if got[8] != "#08519C" {
		t.Errorf("last = %s, want #08519C", got[8])
	}

	// L* decreases monotonically toward the base.
	prev := math.Inf(1)
	for _, h := range got {
		c, _ := color.ParseHex(h)
		l := colorspace.RGBAToLAB(c).L
		if l > prev {
			t.Errorf("lightness increased at %s", h)
		}
		prev = l
	}
}

func TestSequential_FewSteps(t *testing.T) {
	for _, steps := range []int{0, 1} {
		got, err := SequentialHex("#08519C", steps)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff([]string{"#08519C"}, got); diff != "" {
			t.Errorf("steps=%d mismatch (-want +got):\n%s", steps, diff)
		}
	}

	got, err := SequentialHex("#zz", 5)
	if err == nil {
		t.Error("expected error for invalid base")
	}
	if diff := cmp.Diff([]string{"#zz"}, got); diff != "" {
		t.Errorf("fallback mismatch (-want +got):\n%s", diff)
	}
}

func TestDiverging(t *testing.T) {
	tests := []struct {
		steps      int
		wantLen    int
		wantCenter bool
	}{
		{11, 11, true},
		{10, 10, false},
		{3, 3, true},
		{2, 2, false},
		{1, 1, true},
		{0, 0, false},
	}

	for _, tt := range tests {
		got, err := DivergingHex("#B2182B", "#2166AC", tt.steps)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != tt.wantLen {
			t.Fatalf("steps=%d: len = %d, want %d", tt.steps, len(got), tt.wantLen)
		}
		if tt.wantCenter && got[tt.steps/2] != "#F7F7F7" {
			t.Errorf("steps=%d: center = %s, want #F7F7F7", tt.steps, got[tt.steps/2])
		}
		if tt.steps >= 2 {
			if got[0] != "#B2182B" {
				t.Errorf("steps=%d: first = %s, want #B2182B", tt.steps, got[0])
			}
			if got[len(got)-1] != "#2166AC" {
				t.Errorf("steps=%d: last = %s, want #2166AC", tt.steps, got[len(got)-1])
			}
		}
	}
}

func TestDivergingHex_InvalidInput(t *testing.T) {
	for _, in := range [][2]string{{"#B2182B", "blue"}, {"red", "#2166AC"}} {
		got, err := DivergingHex(in[0], in[1], 7)
		if !errors.Is(err, color.ErrInvalidHex) {
			t.Errorf("DivergingHex(%q, %q) error = %v", in[0], in[1], err)
		}
		if diff := cmp.Diff([]string{in[0], in[1]}, got); diff != "" {
			t.Errorf("fallback mismatch (-want +got):\n%s", diff)
		}
	}
}
