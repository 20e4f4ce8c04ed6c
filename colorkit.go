// Package colorkit loads palette documents: HCL files that define named
// colors and derive gradients, harmonies and scales from them.
package colorkit

import (
	"fmt"

	"github.com/jsvensson/colorkit/internal/color"
	"github.com/jsvensson/colorkit/internal/gradient"
	"github.com/jsvensson/colorkit/internal/parser"
)

// Document is a fully-resolved palette document, ready for template rendering.
type Document struct {
	Meta     Meta
	Colors   *color.Node
	Swatches []color.Swatch
}

// Meta holds document metadata.
type Meta struct {
	Name        string
	Author      string
	Description string
	Version     string
}

// Options sets defaults for generator blocks that leave them out.
type Options struct {
	Steps         int    // 0 keeps the per-block default
	Interpolation string // gradient interpolation name, "" for perceptual
	FPS           int    // animation frame rate, 0 for 30
}

func (o Options) parserOptions() (parser.Options, error) {
	opts := parser.DefaultOptions()
	if o.Steps > 0 {
		opts.Steps = o.Steps
	}
	if o.FPS > 0 {
		opts.FPS = o.FPS
	}
	if o.Interpolation != "" {
		mode, err := gradient.ParseInterpolation(o.Interpolation)
		if err != nil {
			return opts, err
		}
		opts.Interpolation = mode
	}
	return opts, nil
}

// Load parses a palette document with default options.
func Load(path string) (*Document, error) {
	return LoadWithOptions(path, Options{})
}

// LoadWithOptions parses a palette document at path.
func LoadWithOptions(path string, o Options) (*Document, error) {
	opts, err := o.parserOptions()
	if err != nil {
		return nil, fmt.Errorf("loading palette: %w", err)
	}
	raw, err := parser.Parse(path, opts)
	if err != nil {
		return nil, fmt.Errorf("loading palette: %w", err)
	}
	return fromResult(raw), nil
}

// LoadSource parses a palette document held in memory.
func LoadSource(src []byte, filename string, o Options) (*Document, error) {
	opts, err := o.parserOptions()
	if err != nil {
		return nil, fmt.Errorf("loading palette: %w", err)
	}
	raw, err := parser.ParseSource(src, filename, opts)
	if err != nil {
		return nil, fmt.Errorf("loading palette: %w", err)
	}
	return fromResult(raw), nil
}

func fromResult(raw *parser.Result) *Document {
	return &Document{
		Meta: Meta{
			Name:        raw.Meta.Name,
			Author:      raw.Meta.Author,
			Description: raw.Meta.Description,
			Version:     raw.Meta.Version,
		},
		Colors:   raw.Colors,
		Swatches: raw.Swatches,
	}
}

// Color resolves a dot path such as "surface.dim" in the colors tree.
func (d *Document) Color(path string) (color.RGBA, error) {
	return d.Colors.LookupPath(path)
}

// Swatch returns the generated swatch with the given name.
func (d *Document) Swatch(name string) (color.Swatch, bool) {
	for _, s := range d.Swatches {
		if s.Name == name {
			return s, true
		}
	}
	return color.Swatch{}, false
}

