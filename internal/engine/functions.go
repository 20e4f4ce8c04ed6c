package engine

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/jsvensson/colorkit"
	"github.com/jsvensson/colorkit/internal/access"
	"github.com/jsvensson/colorkit/internal/color"
	"github.com/jsvensson/colorkit/internal/colorspace"
)

// Entry is one named color of the document, flattened to its dot path.
type Entry struct {
	Path  string
	Color color.RGBA
}

// templateData is the data passed to templates.
type templateData struct {
	Meta     colorkit.Meta
	Colors   []Entry
	Swatches []color.Swatch
	FuncMap  template.FuncMap
}

var (
	black = color.New(0, 0, 0)
	white = color.New(1, 1, 1)
)

func buildTemplateData(doc *colorkit.Document, includeAlpha bool) templateData {
	var entries []Entry
	if doc.Colors != nil {
		doc.Colors.Walk(func(path string, c color.RGBA) {
			entries = append(entries, Entry{Path: path, Color: c})
		})
	}

	// resolve accepts a color value or a "colors.x.y" path.
	resolve := func(v any) (color.RGBA, error) {
		switch c := v.(type) {
		case color.RGBA:
			return c, nil
		case *color.RGBA:
			if c == nil {
				return color.RGBA{}, fmt.Errorf("nil color")
			}
			return *c, nil
		case Entry:
			return c.Color, nil
		case string:
			return resolveColorPath(doc, c)
		default:
			return color.RGBA{}, fmt.Errorf("expected a color or a colors path, got %T", v)
		}
	}

	return templateData{
		Meta:     doc.Meta,
		Colors:   entries,
		Swatches: doc.Swatches,
		FuncMap: template.FuncMap{
			"hex": func(v any) (string, error) {
				c, err := resolve(v)
				if err != nil {
					return "", err
				}
				return color.Format(c, includeAlpha && c.A < 1), nil
			},
			"hexAlpha": func(v any) (string, error) {
				c, err := resolve(v)
				if err != nil {
					return "", err
				}
				return c.HexAlpha(), nil
			},
			"hexBare": func(v any) (string, error) {
				c, err := resolve(v)
				if err != nil {
					return "", err
				}
				return strings.TrimPrefix(c.Hex(), "#"), nil
			},
			"rgb": func(v any) (string, error) {
				c, err := resolve(v)
				if err != nil {
					return "", err
				}
				return c.RGB(), nil
			},
			"lab": func(v any) (string, error) {
				c, err := resolve(v)
				if err != nil {
					return "", err
				}
				return formatLAB(colorspace.RGBAToLAB(c)), nil
			},
			"color": func(path string) (color.RGBA, error) {
				return resolveColorPath(doc, path)
			},
			"swatch": func(name string) ([]color.RGBA, error) {
				s, ok := doc.Swatch(name)
				if !ok {
					return nil, fmt.Errorf("swatch not found: %s", name)
				}
				return s.Colors, nil
			},
			"contrast": func(a, b any) (float64, error) {
				ca, err := resolve(a)
				if err != nil {
					return 0, err
				}
				cb, err := resolve(b)
				if err != nil {
					return 0, err
				}
				return access.ContrastRatio(ca, cb), nil
			},
			"readable": func(v any) (color.RGBA, error) {
				c, err := resolve(v)
				if err != nil {
					return color.RGBA{}, err
				}
				if access.ContrastRatio(c, black) >= access.ContrastRatio(c, white) {
					return black, nil
				}
				return white, nil
			},
		},
	}
}

// resolveColorPath resolves a dot-notation path like "colors.surface.dim".
func resolveColorPath(doc *colorkit.Document, path string) (color.RGBA, error) {
	rest, ok := strings.CutPrefix(path, "colors.")
	if !ok || rest == "" {
		return color.RGBA{}, fmt.Errorf("invalid path %q: must be colors.name format", path)
	}
	if doc.Colors == nil {
		return color.RGBA{}, fmt.Errorf("colors path not found: %s", path)
	}
	c, err := doc.Colors.LookupPath(rest)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func formatLAB(l colorspace.LAB) string {
	return fmt.Sprintf("lab(%.2f%% %.2f %.2f)", l.L, l.A, l.B)
}
