// Package parser reads palette documents: HCL files with a colors block and
// named generator blocks (gradient, harmony, scale, ...).
package parser

import (
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/colorkit/internal/color"
	"github.com/jsvensson/colorkit/internal/expr"
	"github.com/jsvensson/colorkit/internal/gradient"
)

// Result holds the resolved contents of a palette document.
type Result struct {
	Meta     Meta
	Colors   *color.Node
	Swatches []color.Swatch // source order
}

// Meta holds document metadata.
type Meta struct {
	Name        string `hcl:"name,optional"`
	Author      string `hcl:"author,optional"`
	Description string `hcl:"description,optional"`
	Version     string `hcl:"version,optional"`
}

// Options supplies defaults for generator blocks that omit them.
type Options struct {
	// Steps overrides the per-kind default step count when positive.
	Steps         int
	Interpolation gradient.Interpolation
	FPS           int
}

// DefaultOptions returns the built-in generator defaults.
func DefaultOptions() Options {
	return Options{Interpolation: gradient.Perceptual, FPS: 30}
}

// ColorsBlock wraps the colors block for gohcl decoding.
type ColorsBlock struct {
	Entries hcl.Body `hcl:",remain"`
}

// RawConfig captures the colors block first (no EvalContext needed).
type RawConfig struct {
	Colors *ColorsBlock `hcl:"colors,block"`
	Remain hcl.Body     `hcl:",remain"`
}

// ResolvedConfig decodes the blocks that may reference colors.
type ResolvedConfig struct {
	Meta       *Meta             `hcl:"meta,block"`
	Gradients  []GradientBlock   `hcl:"gradient,block"`
	Harmonies  []HarmonyBlock    `hcl:"harmony,block"`
	Scales     []ScaleBlock      `hcl:"scale,block"`
	Sequential []SequentialBlock `hcl:"sequential,block"`
	Diverging  []DivergingBlock  `hcl:"diverging,block"`
	Animations []AnimationBlock  `hcl:"animation,block"`
	Shades     []ShadesBlock     `hcl:"shades,block"`
}

// Loader handles two-pass HCL decoding with colors resolution.
type Loader struct {
	body   hcl.Body
	syntax *hclsyntax.Body
	ctx    *hcl.EvalContext
	colors *color.Node
}

// NewLoader parses src and resolves its colors block.
func NewLoader(src []byte, filename string) (*Loader, error) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing HCL: %s", diags.Error())
	}

	// First pass: extract colors. Entries are evaluated in source order so
	// later ones may reference earlier ones.
	var raw RawConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("decoding colors: %s", diags.Error())
	}

	colors := &color.Node{}
	if raw.Colors != nil {
		body, ok := raw.Colors.Entries.(*hclsyntax.Body)
		if !ok {
			return nil, fmt.Errorf("colors block is not an hclsyntax.Body")
		}
		if err := parseColorsBody(body, colors, colors, expr.RootName); err != nil {
			return nil, fmt.Errorf("parsing colors: %w", err)
		}
	}

	syntax, _ := file.Body.(*hclsyntax.Body)
	return &Loader{
		body:   raw.Remain,
		syntax: syntax,
		ctx:    expr.EvalContext(colors),
		colors: colors,
	}, nil
}

// Decode decodes the remaining blocks using the colors context.
func (l *Loader) Decode(target any) error {
	if diags := gohcl.DecodeBody(l.body, l.ctx, target); diags.HasErrors() {
		return fmt.Errorf("decoding: %s", diags.Error())
	}
	return nil
}

// Colors returns the resolved color tree.
func (l *Loader) Colors() *color.Node {
	return l.colors
}

// Context returns the EvalContext for manual evaluation.
func (l *Loader) Context() *hcl.EvalContext {
	return l.ctx
}

// order returns the source index of each labeled top-level block, keyed by
// "type/label".
func (l *Loader) order() map[string]int {
	idx := make(map[string]int)
	if l.syntax == nil {
		return idx
	}
	for i, b := range l.syntax.Blocks {
		if len(b.Labels) > 0 {
			idx[b.Type+"/"+b.Labels[0]] = i
		}
	}
	return idx
}

// Parse reads and resolves the palette document at path.
func Parse(path string, opts Options) (*Result, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading palette file: %w", err)
	}
	return ParseSource(src, path, opts)
}

// ParseSource resolves a palette document held in memory.
func ParseSource(src []byte, filename string, opts Options) (*Result, error) {
	loader, err := NewLoader(src, filename)
	if err != nil {
		return nil, err
	}

	var resolved ResolvedConfig
	if err := loader.Decode(&resolved); err != nil {
		return nil, err
	}

	type pending struct {
		kind, name string
		gen        Generator
	}
	var all []pending
	add := func(kind, name string, g Generator) {
		all = append(all, pending{kind: kind, name: name, gen: g})
	}
	for _, b := range resolved.Gradients {
		add(KindGradient, b.Name, b)
	}
	for _, b := range resolved.Harmonies {
		add(KindHarmony, b.Name, b)
	}
	for _, b := range resolved.Scales {
		add(KindScale, b.Name, b)
	}
	for _, b := range resolved.Sequential {
		add(KindSequential, b.Name, b)
	}
	for _, b := range resolved.Diverging {
		add(KindDiverging, b.Name, b)
	}
	for _, b := range resolved.Animations {
		add(KindAnimation, b.Name, b)
	}
	for _, b := range resolved.Shades {
		add(KindShades, b.Name, b)
	}

	pos := loader.order()
	sort.SliceStable(all, func(i, j int) bool {
		return pos[all[i].kind+"/"+all[i].name] < pos[all[j].kind+"/"+all[j].name]
	})

	swatches := make([]color.Swatch, 0, len(all))
	seen := make(map[string]string, len(all))
	for _, p := range all {
		if prev, ok := seen[p.name]; ok {
			return nil, fmt.Errorf("%s %q: name already used by a %s block", p.kind, p.name, prev)
		}
		seen[p.name] = p.kind

		colors, err := p.gen.Generate(loader.Context(), opts)
		if err != nil {
			return nil, fmt.Errorf("%s %q: %w", p.kind, p.name, err)
		}
		swatches = append(swatches, color.Swatch{Name: p.name, Kind: p.kind, Colors: colors})
	}

	meta := Meta{}
	if resolved.Meta != nil {
		meta = *resolved.Meta
	}

	return &Result{
		Meta:     meta,
		Colors:   loader.Colors(),
		Swatches: swatches,
	}, nil
}
