package parser

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/jsvensson/colorkit/internal/color"
	"github.com/jsvensson/colorkit/internal/expr"
	"github.com/jsvensson/colorkit/internal/gradient"
	"github.com/jsvensson/colorkit/internal/harmony"
	"github.com/jsvensson/colorkit/internal/palette"
)

// Generator block types.
const (
	KindGradient   = "gradient"
	KindHarmony    = "harmony"
	KindScale      = "scale"
	KindSequential = "sequential"
	KindDiverging  = "diverging"
	KindAnimation  = "animation"
	KindShades     = "shades"
)

// Kinds lists the generator block types in documentation order.
var Kinds = []string{
	KindGradient, KindHarmony, KindScale, KindSequential, KindDiverging, KindAnimation, KindShades,
}

// Step counts used when neither the block nor Options set one.
var defaultSteps = map[string]int{
	KindGradient:   10,
	KindScale:      9,
	KindSequential: 9,
	KindDiverging:  11,
}

// Generator is a decoded generator block.
type Generator interface {
	Generate(ctx *hcl.EvalContext, opts Options) ([]color.RGBA, error)
}

// DecodeGenerator decodes the body of a generator block of the given kind.
// The block label is not part of body; callers that need it read it from
// the block itself.
func DecodeGenerator(kind string, body hcl.Body, ctx *hcl.EvalContext) (Generator, hcl.Diagnostics) {
	var (
		g     Generator
		diags hcl.Diagnostics
	)
	switch kind {
	case KindGradient:
		var b GradientBlock
		diags = gohcl.DecodeBody(body, ctx, &b)
		g = b
	case KindHarmony:
		var b HarmonyBlock
		diags = gohcl.DecodeBody(body, ctx, &b)
		g = b
	case KindScale:
		var b ScaleBlock
		diags = gohcl.DecodeBody(body, ctx, &b)
		g = b
	case KindSequential:
		var b SequentialBlock
		diags = gohcl.DecodeBody(body, ctx, &b)
		g = b
	case KindDiverging:
		var b DivergingBlock
		diags = gohcl.DecodeBody(body, ctx, &b)
		g = b
	case KindAnimation:
		var b AnimationBlock
		diags = gohcl.DecodeBody(body, ctx, &b)
		g = b
	case KindShades:
		var b ShadesBlock
		diags = gohcl.DecodeBody(body, ctx, &b)
		g = b
	default:
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Unknown generator",
			Detail:   fmt.Sprintf("%q is not a generator block type", kind),
		}}
	}
	return g, diags
}

// IsKind reports whether name is a generator block type.
func IsKind(name string) bool {
	return slices.Contains(Kinds, name)
}

// GradientBlock interpolates between two or more stops.
type GradientBlock struct {
	Name          string         `hcl:"name,label"`
	Stops         hcl.Expression `hcl:"stops"`
	Steps         int            `hcl:"steps,optional"`
	Interpolation string         `hcl:"interpolation,optional"`
}

func (b GradientBlock) Generate(ctx *hcl.EvalContext, opts Options) ([]color.RGBA, error) {
	stops, err := evalColorList(b.Stops, ctx, "stops")
	if err != nil {
		return nil, err
	}
	if len(stops) < 2 {
		return nil, fmt.Errorf("stops: need at least 2 colors, got %d", len(stops))
	}
	mode := opts.Interpolation
	if b.Interpolation != "" {
		if mode, err = gradient.ParseInterpolation(b.Interpolation); err != nil {
			return nil, err
		}
	}
	steps, err := resolveSteps(KindGradient, b.Steps, opts)
	if err != nil {
		return nil, err
	}
	if len(stops) == 2 {
		return gradient.GenerateRGBA(stops[0], stops[1], steps, mode), nil
	}
	return gradient.MultiStopRGBA(stops, steps, mode), nil
}

// HarmonyBlock derives a color-wheel harmony from a base color.
type HarmonyBlock struct {
	Name string         `hcl:"name,label"`
	Base hcl.Expression `hcl:"base"`
	Type string         `hcl:"type"`
}

func (b HarmonyBlock) Generate(ctx *hcl.EvalContext, _ Options) ([]color.RGBA, error) {
	base, err := evalColor(b.Base, ctx, "base")
	if err != nil {
		return nil, err
	}
	t, err := harmony.ParseType(b.Type)
	if err != nil {
		return nil, err
	}
	return harmony.Generate(base, t), nil
}

// ScaleBlock samples a data-visualization scheme, a static palette table or
// a temperature gradient preset. Exactly one source must be set.
type ScaleBlock struct {
	Name   string `hcl:"name,label"`
	Scheme string `hcl:"scheme,optional"`
	Table  string `hcl:"table,optional"`
	Preset string `hcl:"preset,optional"`
	Steps  int    `hcl:"steps,optional"`
}

func (b ScaleBlock) Generate(_ *hcl.EvalContext, opts Options) ([]color.RGBA, error) {
	set := 0
	for _, s := range []string{b.Scheme, b.Table, b.Preset} {
		if s != "" {
			set++
		}
	}
	if set != 1 {
		return nil, errors.New("exactly one of scheme, table or preset must be set")
	}

	steps, err := resolveSteps(KindScale, b.Steps, opts)
	if err != nil {
		return nil, err
	}

	switch {
	case b.Scheme != "":
		s, err := gradient.ParseScheme(b.Scheme)
		if err != nil {
			return nil, err
		}
		return gradient.DataVisualizationRGBA(s, steps), nil
	case b.Table != "":
		t, ok := palette.Lookup(b.Table)
		if !ok {
			return nil, fmt.Errorf("unknown palette table %q", b.Table)
		}
		if b.Steps == 0 {
			return t.RGBA(), nil
		}
		return parseAll(palette.Subset(t.Colors, steps))
	default:
		p, ok := gradient.Presets[b.Preset]
		if !ok {
			return nil, fmt.Errorf("unknown gradient preset %q", b.Preset)
		}
		stops, err := parseAll(p.Stops)
		if err != nil {
			return nil, err
		}
		return gradient.MultiStopRGBA(stops, steps, gradient.Perceptual), nil
	}
}

// SequentialBlock runs from near-white to a base color.
type SequentialBlock struct {
	Name  string         `hcl:"name,label"`
	Base  hcl.Expression `hcl:"base"`
	Steps int            `hcl:"steps,optional"`
}

func (b SequentialBlock) Generate(ctx *hcl.EvalContext, opts Options) ([]color.RGBA, error) {
	base, err := evalColor(b.Base, ctx, "base")
	if err != nil {
		return nil, err
	}
	steps, err := resolveSteps(KindSequential, b.Steps, opts)
	if err != nil {
		return nil, err
	}
	return harmony.Sequential(base, steps), nil
}

// DivergingBlock runs from start through a light neutral to end.
type DivergingBlock struct {
	Name  string         `hcl:"name,label"`
	Start hcl.Expression `hcl:"start"`
	End   hcl.Expression `hcl:"end"`
	Steps int            `hcl:"steps,optional"`
}

func (b DivergingBlock) Generate(ctx *hcl.EvalContext, opts Options) ([]color.RGBA, error) {
	start, err := evalColor(b.Start, ctx, "start")
	if err != nil {
		return nil, err
	}
	end, err := evalColor(b.End, ctx, "end")
	if err != nil {
		return nil, err
	}
	steps, err := resolveSteps(KindDiverging, b.Steps, opts)
	if err != nil {
		return nil, err
	}
	return harmony.Diverging(start, end, steps), nil
}

// AnimationBlock produces one eased frame per tick of duration at fps.
type AnimationBlock struct {
	Name     string         `hcl:"name,label"`
	From     hcl.Expression `hcl:"from"`
	To       hcl.Expression `hcl:"to"`
	Duration string         `hcl:"duration"`
	FPS      int            `hcl:"fps,optional"`
}

func (b AnimationBlock) Generate(ctx *hcl.EvalContext, opts Options) ([]color.RGBA, error) {
	from, err := evalColor(b.From, ctx, "from")
	if err != nil {
		return nil, err
	}
	to, err := evalColor(b.To, ctx, "to")
	if err != nil {
		return nil, err
	}
	d, err := time.ParseDuration(b.Duration)
	if err != nil {
		return nil, fmt.Errorf("duration: %w", err)
	}
	if d <= 0 {
		return nil, fmt.Errorf("duration must be positive, got %s", b.Duration)
	}
	fps := b.FPS
	if fps == 0 {
		fps = opts.FPS
	}
	if fps <= 0 {
		return nil, fmt.Errorf("fps must be positive, got %d", fps)
	}
	return gradient.AnimationRGBA(from, to, d, fps), nil
}

// ShadesBlock spreads darker shades and lighter tints around a base color.
type ShadesBlock struct {
	Name    string         `hcl:"name,label"`
	Base    hcl.Expression `hcl:"base"`
	PerSide int            `hcl:"per_side,optional"`
	Spread  *float64       `hcl:"spread,optional"`
}

func (b ShadesBlock) Generate(ctx *hcl.EvalContext, _ Options) ([]color.RGBA, error) {
	base, err := evalColor(b.Base, ctx, "base")
	if err != nil {
		return nil, err
	}
	perSide := b.PerSide
	if perSide == 0 {
		perSide = 2
	}
	spread := 0.4
	if b.Spread != nil {
		spread = *b.Spread
	}
	return palette.TintsAndShades(base, perSide, spread), nil
}

func resolveSteps(kind string, steps int, opts Options) (int, error) {
	switch {
	case steps < 0:
		return 0, fmt.Errorf("steps must not be negative, got %d", steps)
	case steps > 0:
		return steps, nil
	case opts.Steps > 0:
		return opts.Steps, nil
	default:
		return defaultSteps[kind], nil
	}
}

func evalColor(e hcl.Expression, ctx *hcl.EvalContext, what string) (color.RGBA, error) {
	val, diags := e.Value(ctx)
	if diags.HasErrors() {
		return color.RGBA{}, fmt.Errorf("evaluating %s: %s", what, diags.Error())
	}
	c, err := expr.ParseValue(val)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%s: %w", what, err)
	}
	return c, nil
}

func evalColorList(e hcl.Expression, ctx *hcl.EvalContext, what string) ([]color.RGBA, error) {
	val, diags := e.Value(ctx)
	if diags.HasErrors() {
		return nil, fmt.Errorf("evaluating %s: %s", what, diags.Error())
	}
	if val.IsNull() || !val.CanIterateElements() || val.Type().IsObjectType() || val.Type().IsMapType() {
		return nil, fmt.Errorf("%s: expected a list of colors, got %s", what, val.Type().FriendlyName())
	}

	var out []color.RGBA
	for it := val.ElementIterator(); it.Next(); {
		_, v := it.Element()
		c, err := expr.ParseValue(v)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", what, len(out), err)
		}
		out = append(out, c)
	}
	return out, nil
}

func parseAll(hexes []string) ([]color.RGBA, error) {
	out := make([]color.RGBA, len(hexes))
	for i, h := range hexes {
		c, err := color.ParseHex(h)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}
