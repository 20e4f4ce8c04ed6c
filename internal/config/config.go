// Package config loads the optional colorkit.hcl project file, which sets
// defaults for the generate command and for generator blocks.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/colorkit/internal/gradient"
)

// FileName is the project file looked up in the working directory.
const FileName = "colorkit.hcl"

// Config is the decoded project file.
type Config struct {
	Defaults Defaults
	Generate Generate
}

// Defaults apply to generator blocks that leave a value out.
type Defaults struct {
	Steps         int    `hcl:"steps,optional"`
	Interpolation string `hcl:"interpolation,optional"`
	FPS           int    `hcl:"fps,optional"`
	IncludeAlpha  bool   `hcl:"include_alpha,optional"`
}

// Generate holds the inputs and outputs of the generate command.
type Generate struct {
	Document  string   `hcl:"document,optional"`
	Templates string   `hcl:"templates,optional"`
	Output    string   `hcl:"output,optional"`
	Apps      []string `hcl:"apps,optional"`
}

type file struct {
	Defaults *Defaults `hcl:"defaults,block"`
	Generate *Generate `hcl:"generate,block"`
}

// Default returns the configuration used when no project file exists.
func Default() *Config {
	return &Config{
		Defaults: Defaults{Interpolation: gradient.Perceptual.String(), FPS: 30},
		Generate: Generate{
			Document:  "palette.ckpal",
			Templates: "templates",
			Output:    "output",
		},
	}
}

// Load reads the project file at path. A missing file is not an error and
// yields Default.
func Load(path string) (*Config, error) {
	src, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(src, path)
}

// Parse decodes a project file held in memory. Values left out keep their
// defaults.
func Parse(src []byte, filename string) (*Config, error) {
	f, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing HCL: %s", diags.Error())
	}

	var raw file
	if diags := gohcl.DecodeBody(f.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("decoding config: %s", diags.Error())
	}

	cfg := Default()
	if d := raw.Defaults; d != nil {
		if d.Steps < 0 {
			return nil, fmt.Errorf("defaults.steps must not be negative, got %d", d.Steps)
		}
		if d.FPS < 0 {
			return nil, fmt.Errorf("defaults.fps must not be negative, got %d", d.FPS)
		}
		if d.Interpolation != "" {
			if _, err := gradient.ParseInterpolation(d.Interpolation); err != nil {
				return nil, fmt.Errorf("defaults.interpolation: %w", err)
			}
			cfg.Defaults.Interpolation = d.Interpolation
		}
		if d.Steps > 0 {
			cfg.Defaults.Steps = d.Steps
		}
		if d.FPS > 0 {
			cfg.Defaults.FPS = d.FPS
		}
		cfg.Defaults.IncludeAlpha = d.IncludeAlpha
	}

	if g := raw.Generate; g != nil {
		if g.Document != "" {
			cfg.Generate.Document = g.Document
		}
		if g.Templates != "" {
			cfg.Generate.Templates = g.Templates
		}
		if g.Output != "" {
			cfg.Generate.Output = g.Output
		}
		cfg.Generate.Apps = g.Apps
	}

	return cfg, nil
}
