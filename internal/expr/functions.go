package expr

import (
	"sort"

	"github.com/jsvensson/colorkit/internal/access"
	"github.com/jsvensson/colorkit/internal/blend"
	"github.com/jsvensson/colorkit/internal/color"
	"github.com/jsvensson/colorkit/internal/colorspace"
	"github.com/jsvensson/colorkit/internal/perceptual"
	"github.com/jsvensson/colorkit/internal/temperature"
	"github.com/jsvensson/colorkit/internal/vision"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// Func describes a palette document function for editors and docs.
type Func struct {
	Name        string
	Signature   string
	Snippet     string
	Description string
	Returns     cty.Type
	Params      []function.Parameter
	impl        func(args []cty.Value) (cty.Value, error)
}

var (
	colorParam = colorParamNamed("color")
	otherParam = colorParamNamed("other")
)

// colorParamNamed accepts a hex string or a color group with its own color.
func colorParamNamed(name string) function.Parameter {
	return function.Parameter{Name: name, Type: cty.DynamicPseudoType}
}

func numParam(name string) function.Parameter {
	return function.Parameter{Name: name, Type: cty.Number}
}

func strParam(name string) function.Parameter {
	return function.Parameter{Name: name, Type: cty.String}
}

var funcs = []Func{
	{
		Name:        "brighten",
		Signature:   "brighten(color, amount)",
		Snippet:     "brighten(${1:color}, ${2:0.1})",
		Description: "Raises HSL lightness by amount (0.0 to 1.0)",
		Params:      []function.Parameter{colorParam, numParam("amount")},
		impl: unary(func(c color.RGBA, args []cty.Value) (color.RGBA, error) {
			return color.Brighten(c, number(args[1])), nil
		}),
	},
	{
		Name:        "darken",
		Signature:   "darken(color, amount)",
		Snippet:     "darken(${1:color}, ${2:0.1})",
		Description: "Lowers HSL lightness by amount (0.0 to 1.0)",
		Params:      []function.Parameter{colorParam, numParam("amount")},
		impl: unary(func(c color.RGBA, args []cty.Value) (color.RGBA, error) {
			return color.Darken(c, number(args[1])), nil
		}),
	},
	{
		Name:        "mix",
		Signature:   "mix(color, other, ratio)",
		Snippet:     "mix(${1:color}, ${2:other}, ${3:0.5})",
		Description: "Blends two colors in CIE L*a*b* space",
		Params:      []function.Parameter{colorParam, otherParam, numParam("ratio")},
		impl: binary(func(a, b color.RGBA, args []cty.Value) (color.RGBA, error) {
			return perceptual.Blend(a, b, number(args[2])), nil
		}),
	},
	{
		Name:        "lighten_lab",
		Signature:   "lighten_lab(color, lightness)",
		Snippet:     "lighten_lab(${1:color}, ${2:0.7})",
		Description: "Sets absolute OKLCH lightness (0.0 to 1.0), keeping hue; chroma drops only to stay in gamut",
		Params:      []function.Parameter{colorParam, numParam("lightness")},
		impl: unary(func(c color.RGBA, args []cty.Value) (color.RGBA, error) {
			return colorspace.WithLightness(c, number(args[1])), nil
		}),
	},
	{
		Name:        "simulate",
		Signature:   "simulate(color, deficiency)",
		Snippet:     "simulate(${1:color}, \"${2:protanopia}\")",
		Description: "Simulates protanopia, deuteranopia or tritanopia",
		Params:      []function.Parameter{colorParam, strParam("deficiency")},
		impl: unary(func(c color.RGBA, args []cty.Value) (color.RGBA, error) {
			d, err := vision.ParseDeficiency(args[1].AsString())
			if err != nil {
				return color.RGBA{}, err
			}
			return vision.Simulate(d, c), nil
		}),
	},
	{
		Name:        "temperature",
		Signature:   "temperature(color, amount)",
		Snippet:     "temperature(${1:color}, ${2:20})",
		Description: "Warms (positive) or cools (negative) a color, -100 to 100",
		Params:      []function.Parameter{colorParam, numParam("amount")},
		impl: unary(func(c color.RGBA, args []cty.Value) (color.RGBA, error) {
			return temperature.AdjustTemperature(c, number(args[1])), nil
		}),
	},
	{
		Name:        "tint",
		Signature:   "tint(color, amount)",
		Snippet:     "tint(${1:color}, ${2:10})",
		Description: "Shifts toward magenta (positive) or green (negative), -100 to 100",
		Params:      []function.Parameter{colorParam, numParam("amount")},
		impl: unary(func(c color.RGBA, args []cty.Value) (color.RGBA, error) {
			return temperature.AdjustTint(c, number(args[1])), nil
		}),
	},
	{
		Name:        "kelvin",
		Signature:   "kelvin(k)",
		Snippet:     "kelvin(${1:6500})",
		Description: "Approximate color of a black body at k Kelvin",
		Returns:     cty.String,
		Params:      []function.Parameter{numParam("k")},
		impl: func(args []cty.Value) (cty.Value, error) {
			return cty.StringVal(temperature.KelvinToRGBA(number(args[0])).Hex()), nil
		},
	},
	{
		Name:        "blend",
		Signature:   "blend(top, bottom, mode)",
		Snippet:     "blend(${1:top}, ${2:bottom}, \"${3:multiply}\")",
		Description: "Combines two colors with a blend mode such as multiply or screen",
		Params:      []function.Parameter{colorParamNamed("top"), colorParamNamed("bottom"), strParam("mode")},
		impl: binary(func(top, bottom color.RGBA, args []cty.Value) (color.RGBA, error) {
			m, err := blend.ParseMode(args[2].AsString())
			if err != nil {
				return color.RGBA{}, err
			}
			return blend.Apply(top, bottom, m), nil
		}),
	},
	{
		Name:        "contrast",
		Signature:   "contrast(color, other)",
		Snippet:     "contrast(${1:color}, ${2:other})",
		Description: "WCAG contrast ratio between two colors (1 to 21)",
		Returns:     cty.Number,
		Params:      []function.Parameter{colorParam, otherParam},
		impl: measure(access.ContrastRatio),
	},
	{
		Name:        "delta_e",
		Signature:   "delta_e(color, other)",
		Snippet:     "delta_e(${1:color}, ${2:other})",
		Description: "Perceptual difference between two colors",
		Returns:     cty.Number,
		Params:      []function.Parameter{colorParam, otherParam},
		impl: measure(perceptual.DeltaE2000),
	},
}

// Funcs returns the function descriptions sorted by name.
func Funcs() []Func {
	out := make([]Func, len(funcs))
	copy(out, funcs)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Functions builds the HCL function table.
func Functions() map[string]function.Function {
	m := make(map[string]function.Function, len(funcs))
	for _, f := range funcs {
		m[f.Name] = f.function()
	}
	return m
}

func (f Func) function() function.Function {
	ret := f.Returns
	if ret == cty.NilType {
		ret = cty.String
	}
	impl := f.impl
	return function.New(&function.Spec{
		Description: f.Description,
		Params:      f.Params,
		Type:        function.StaticReturnType(ret),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			return impl(args)
		},
	})
}

func number(v cty.Value) float64 {
	f, _ := v.AsBigFloat().Float64()
	return f
}

// unary adapts a transform of the first (color) argument.
func unary(fn func(color.RGBA, []cty.Value) (color.RGBA, error)) func([]cty.Value) (cty.Value, error) {
	return func(args []cty.Value) (cty.Value, error) {
		c, err := ParseValue(args[0])
		if err != nil {
			return cty.NilVal, function.NewArgError(0, err)
		}
		out, err := fn(c, args)
		if err != nil {
			return cty.NilVal, err
		}
		return cty.StringVal(hexOf(out)), nil
	}
}

// binary adapts a function of the first two (color) arguments.
func binary(fn func(a, b color.RGBA, args []cty.Value) (color.RGBA, error)) func([]cty.Value) (cty.Value, error) {
	return func(args []cty.Value) (cty.Value, error) {
		a, err := ParseValue(args[0])
		if err != nil {
			return cty.NilVal, function.NewArgError(0, err)
		}
		b, err := ParseValue(args[1])
		if err != nil {
			return cty.NilVal, function.NewArgError(1, err)
		}
		out, err := fn(a, b, args)
		if err != nil {
			return cty.NilVal, err
		}
		return cty.StringVal(hexOf(out)), nil
	}
}

func measure(fn func(a, b color.RGBA) float64) func([]cty.Value) (cty.Value, error) {
	return func(args []cty.Value) (cty.Value, error) {
		a, err := ParseValue(args[0])
		if err != nil {
			return cty.NilVal, function.NewArgError(0, err)
		}
		b, err := ParseValue(args[1])
		if err != nil {
			return cty.NilVal, function.NewArgError(1, err)
		}
		return cty.NumberFloatVal(fn(a, b)), nil
	}
}
