package color

import (
	"errors"
	"math"
	"testing"
)

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RGBA
		wantErr bool
	}{
		{"with hash", "#ff0000", RGBA{1, 0, 0, 1}, false},
		{"without hash", "00ff00", RGBA{0, 1, 0, 1}, false},
		{"black", "#000000", RGBA{0, 0, 0, 1}, false},
		{"white", "#FFFFFF", RGBA{1, 1, 1, 1}, false},
		{"short form", "#0af", RGBA{0, 170.0 / 255.0, 1, 1}, false},
		{"with alpha", "336699CC", RGBA{0x33 / 255.0, 0x66 / 255.0, 0x99 / 255.0, 0xCC / 255.0}, false},
		{"surrounding whitespace", "  #ffffff\n", RGBA{1, 1, 1, 1}, false},
		{"too short", "#ff", RGBA{}, true},
		{"five digits", "#fffff", RGBA{}, true},
		{"invalid chars", "#zzzzzz", RGBA{}, true},
		{"invalid short chars", "#xyz", RGBA{}, true},
		{"empty", "", RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseHex(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidHex) {
					t.Errorf("ParseHex(%q) error = %v, want ErrInvalidHex", tt.input, err)
				}
				return
			}
			for _, ch := range []struct{ got, want float64 }{
				{got.R, tt.want.R}, {got.G, tt.want.G}, {got.B, tt.want.B}, {got.A, tt.want.A},
			} {
				if !approxEqual(ch.got, ch.want, 1e-9) {
					t.Errorf("ParseHex(%q) = %v, want %v", tt.input, got, tt.want)
					break
				}
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name         string
		color        RGBA
		includeAlpha bool
		want         string
	}{
		{"red", RGBA{1, 0, 0, 1}, false, "#FF0000"},
		{"rounds half up", RGBA{0.5, 0.5, 0.5, 1}, false, "#808080"},
		{"with alpha", RGBA{1, 0.5, 0, 0.75}, true, "#FF8000BF"},
		{"clamps out of range", RGBA{1.4, -0.2, 0.5, 1}, false, "#FF0080"},
		{"zero padding", RGBA{0, 5.0 / 255.0, 10.0 / 255.0, 1}, false, "#00050A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.color, tt.includeAlpha); got != tt.want {
				t.Errorf("Format(%v, %v) = %q, want %q", tt.color, tt.includeAlpha, got, tt.want)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, hex := range []string{"#000000", "#FFFFFF", "#0A84FF", "#EB6F92", "#191724"} {
		c, err := ParseHex(hex)
		if err != nil {
			t.Fatalf("ParseHex(%q) error: %v", hex, err)
		}
		if got := c.Hex(); got != hex {
			t.Errorf("ParseHex(%q).Hex() = %q", hex, got)
		}
	}
}

func TestRGB(t *testing.T) {
	c, _ := ParseHex("#eb6f92")
	want := "rgb(235, 111, 146)"
	if got := c.RGB(); got != want {
		t.Errorf("RGB() = %q, want %q", got, want)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-0.5, 0}, {0, 0}, {0.25, 0.25}, {1, 1}, {3, 1},
	}
	for _, tt := range tests {
		if got := Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}

	c := RGBA{R: 1.2, G: -0.1, B: 0.5, A: 2}
	want := RGBA{R: 1, G: 0, B: 0.5, A: 1}
	if got := c.Clamped(); got != want {
		t.Errorf("Clamped() = %v, want %v", got, want)
	}
}

func TestNewDoesNotClamp(t *testing.T) {
	c := New(1.5, -1, 0.5)
	if c.R != 1.5 || c.G != -1 {
		t.Errorf("New(1.5, -1, 0.5) = %v, construction must not clamp", c)
	}
}

func TestLerp(t *testing.T) {
	a := RGBA{0, 0, 0, 0}
	b := RGBA{1, 0.5, 0.2, 1}
	got := Lerp(a, b, 0.5)
	want := RGBA{0.5, 0.25, 0.1, 0.5}
	if got != want {
		t.Errorf("Lerp(%v, %v, 0.5) = %v, want %v", a, b, got, want)
	}
}

func TestHSLRoundTrip(t *testing.T) {
	for _, hex := range []string{"#FF0000", "#00FF00", "#0000FF", "#EB6F92", "#31748F", "#808080", "#FFFFFF", "#000000"} {
		t.Run(hex, func(t *testing.T) {
			c, _ := ParseHex(hex)
			got := FromHSL(ToHSL(c))
			if got.Hex() != hex {
				t.Errorf("FromHSL(ToHSL(%s)) = %s", hex, got.Hex())
			}
		})
	}
}

func TestToHSL(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want HSL
	}{
		{"red", "#FF0000", HSL{0, 1, 0.5}},
		{"green", "#00FF00", HSL{120, 1, 0.5}},
		{"blue", "#0000FF", HSL{240, 1, 0.5}},
		{"magenta wraps", "#FF00FF", HSL{300, 1, 0.5}},
		{"gray is achromatic", "#808080", HSL{0, 0, 128.0 / 255.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := ParseHex(tt.hex)
			got := ToHSL(c)
			if !approxEqual(got.H, tt.want.H, 1e-9) || !approxEqual(got.S, tt.want.S, 1e-9) || !approxEqual(got.L, tt.want.L, 1e-9) {
				t.Errorf("ToHSL(%s) = %+v, want %+v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestNormalizeHue(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0}, {360, 0}, {370, 10}, {-30, 330}, {-390, 330}, {179.5, 179.5},
	}
	for _, tt := range tests {
		if got := NormalizeHue(tt.in); !approxEqual(got, tt.want, 1e-9) {
			t.Errorf("NormalizeHue(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBrightenDarken(t *testing.T) {
	tests := []struct {
		name   string
		fn     func(RGBA, float64) RGBA
		hex    string
		amount float64
		want   string
	}{
		{"brighten red", Brighten, "#FF0000", 0.1, "#FF3333"},
		{"brighten white stays white", Brighten, "#FFFFFF", 0.5, "#FFFFFF"},
		{"brighten black", Brighten, "#000000", 0.5, "#808080"},
		{"darken red", Darken, "#FF0000", 0.1, "#CC0000"},
		{"darken black stays black", Darken, "#000000", 0.5, "#000000"},
		{"darken white", Darken, "#FFFFFF", 0.5, "#808080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := ParseHex(tt.hex)
			if got := tt.fn(c, tt.amount).Hex(); got != tt.want {
				t.Errorf("%s(%s, %v) = %s, want %s", tt.name, tt.hex, tt.amount, got, tt.want)
			}
		})
	}
}

func TestBrightenKeepsAlpha(t *testing.T) {
	c := RGBA{R: 0.2, G: 0.4, B: 0.6, A: 0.3}
	if got := Brighten(c, 0.1); got.A != 0.3 {
		t.Errorf("Brighten alpha = %v, want 0.3", got.A)
	}
}

func TestAdjustBrightness(t *testing.T) {
	c := RGBA{R: 0.5, G: 0.9, B: 0.1, A: 0.5}
	got := AdjustBrightness(c, 0.2)
	want := RGBA{R: 0.7, G: 1, B: 0.30000000000000004, A: 0.5}
	if !approxEqual(got.R, want.R, 1e-12) || got.G != want.G || !approxEqual(got.B, want.B, 1e-12) || got.A != want.A {
		t.Errorf("AdjustBrightness(%v, 0.2) = %v, want %v", c, got, want)
	}

	if got := AdjustBrightness(c, -5); got != (RGBA{0, 0, 0, 0.5}) {
		t.Errorf("AdjustBrightness(%v, -5) = %v, want black with alpha kept", c, got)
	}
}

func TestComposite(t *testing.T) {
	t.Run("opaque top wins", func(t *testing.T) {
		top := RGBA{1, 0, 0, 1}
		bottom := RGBA{0, 0, 1, 1}
		if got := Composite(top, bottom); got != top {
			t.Errorf("Composite = %v, want %v", got, top)
		}
	})
	t.Run("half transparent top", func(t *testing.T) {
		got := Composite(RGBA{1, 0, 0, 0.5}, RGBA{0, 0, 1, 1})
		if !approxEqual(got.R, 0.5, 1e-12) || !approxEqual(got.B, 0.5, 1e-12) || got.A != 1 {
			t.Errorf("Composite = %v, want {0.5 0 0.5 1}", got)
		}
	})
	t.Run("both transparent", func(t *testing.T) {
		if got := Composite(RGBA{1, 1, 1, 0}, RGBA{1, 1, 1, 0}); got != (RGBA{}) {
			t.Errorf("Composite = %v, want transparent black", got)
		}
	})
}

func TestNode_Lookup(t *testing.T) {
	black, _ := ParseHex("#000000")
	gray, _ := ParseHex("#c0c0c0")
	low, _ := ParseHex("#21202e")

	root := &Node{
		Children: map[string]*Node{
			"black": {Color: &black},
			"surface": {
				Color: &gray,
				Children: map[string]*Node{
					"low": {Color: &low},
				},
			},
			"nocolor": {
				Children: map[string]*Node{
					"child": {Color: &black},
				},
			},
		},
	}

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{"flat leaf", "black", "#000000", false},
		{"group with color", "surface", "#C0C0C0", false},
		{"nested child", "surface.low", "#21202E", false},
		{"not found", "missing", "", true},
		{"through a leaf", "black.deeper", "", true},
		{"group only", "nocolor", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := root.LookupPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("LookupPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
				return
			}
			if err == nil && got.Hex() != tt.want {
				t.Errorf("LookupPath(%q) = %q, want %q", tt.path, got.Hex(), tt.want)
			}
		})
	}
}

func TestNode_Walk(t *testing.T) {
	root := &Node{}
	root.Set("b", New(0, 0, 1))
	root.Set("a", New(1, 0, 0))
	root.Child("g").Set("inner", New(0, 1, 0))

	var paths []string
	root.Walk(func(path string, _ RGBA) {
		paths = append(paths, path)
	})

	want := []string{"a", "b", "g.inner"}
	if len(paths) != len(want) {
		t.Fatalf("Walk visited %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("Walk[%d] = %q, want %q", i, paths[i], want[i])
		}
	}
}
