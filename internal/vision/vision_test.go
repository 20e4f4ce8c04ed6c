package vision

import (
	"testing"

	"github.com/jsvensson/colorkit/internal/color"
)

func TestSimulateHex(t *testing.T) {
	tests := []struct {
		d    Deficiency
		in   string
		want string
	}{
		{Protanopia, "#FF0000", "#918E00"},
		{Deuteranopia, "#FF8000", "#CFD926"},
		{Tritanopia, "#0000FF", "#009186"},
		{Protanopia, "#FFFFFF", "#FFFFFF"},
		{Tritanopia, "#000000", "#000000"},
	}

	for _, tt := range tests {
		t.Run(tt.d.String()+" "+tt.in, func(t *testing.T) {
			got, err := SimulateHex(tt.d, tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("SimulateHex(%s, %s) = %s, want %s", tt.d, tt.in, got, tt.want)
			}
		})
	}
}

func TestSimulate_PreservesAlpha(t *testing.T) {
	for _, d := range Deficiencies() {
		got := Simulate(d, color.RGBA{R: 0.2, G: 0.4, B: 0.6, A: 0.3})
		if got.A != 0.3 {
			t.Errorf("%s: alpha = %f, want 0.3", d, got.A)
		}
	}
}

func TestSimulateHex_Invalid(t *testing.T) {
	if _, err := SimulateHex(Protanopia, "#12"); err == nil {
		t.Error("expected error")
	}
}

func TestParseDeficiency(t *testing.T) {
	for _, d := range Deficiencies() {
		got, err := ParseDeficiency(d.String())
		if err != nil || got != d {
			t.Errorf("ParseDeficiency(%q) = %v, %v", d, got, err)
		}
	}
	if _, err := ParseDeficiency("achromatopsia"); err == nil {
		t.Error("expected error")
	}
}
