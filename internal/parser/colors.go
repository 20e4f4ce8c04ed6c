package parser

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/colorkit/internal/color"
	"github.com/jsvensson/colorkit/internal/colorspace"
	"github.com/jsvensson/colorkit/internal/expr"
)

// TransformBlockName is the reserved block that derives extra colors from
// every color in its group.
const TransformBlockName = "transform"

// TransformBlock describes derived colors.
type TransformBlock struct {
	Lightness *LightnessTransform `hcl:"lightness,block"`
}

// LightnessTransform adds children l1..lN to each color, stepping OKLCH
// lightness evenly across Range.
type LightnessTransform struct {
	Range []float64 `hcl:"range"`
	Steps int       `hcl:"steps"`
}

// colorsItem represents an attribute or block in source order.
type colorsItem struct {
	pos   hcl.Pos
	attr  *hclsyntax.Attribute
	block *hclsyntax.Block
}

// sourceOrder returns the attributes and blocks of body sorted by position.
func sourceOrder(body *hclsyntax.Body) []colorsItem {
	items := make([]colorsItem, 0, len(body.Attributes)+len(body.Blocks))
	for _, attr := range body.Attributes {
		items = append(items, colorsItem{pos: attr.SrcRange.Start, attr: attr})
	}
	for _, block := range body.Blocks {
		items = append(items, colorsItem{pos: block.DefRange().Start, block: block})
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].pos.Byte < items[j].pos.Byte
	})
	return items
}

// parseColorsBody resolves a colors block body. Items are evaluated in source
// order against the tree built so far, so an entry may reference any entry
// above it but not below.
func parseColorsBody(body *hclsyntax.Body, root, node *color.Node, prefix string) error {
	var transform *TransformBlock

	for _, item := range sourceOrder(body) {
		if item.block != nil {
			if item.block.Type == TransformBlockName {
				var t TransformBlock
				if diags := gohcl.DecodeBody(item.block.Body, nil, &t); diags.HasErrors() {
					return fmt.Errorf("%s.%s: %s", prefix, TransformBlockName, diags.Error())
				}
				transform = &t
				continue
			}
			if len(item.block.Labels) > 0 {
				return fmt.Errorf("%s.%s: color groups take no labels", prefix, item.block.Type)
			}
			child := node.Child(item.block.Type)
			if err := parseColorsBody(item.block.Body, root, child, prefix+"."+item.block.Type); err != nil {
				return err
			}
			continue
		}

		name := item.attr.Name
		path := prefix + "." + name
		val, diags := item.attr.Expr.Value(expr.EvalContext(root))
		if diags.HasErrors() {
			return fmt.Errorf("evaluating %s: %s", path, diags.Error())
		}
		c, err := expr.ParseValue(val)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		if name == "color" {
			node.Color = &c
		} else {
			node.Set(name, c)
		}
	}

	if transform != nil && transform.Lightness != nil {
		if err := ApplyLightness(node, *transform.Lightness); err != nil {
			return fmt.Errorf("%s.%s: %w", prefix, TransformBlockName, err)
		}
	}
	return nil
}

// LightnessSteps returns the OKLCH lightness targets of t.
func LightnessSteps(t LightnessTransform) ([]float64, error) {
	if len(t.Range) != 2 {
		return nil, fmt.Errorf("lightness range must have 2 values, got %d", len(t.Range))
	}
	if t.Steps < 1 {
		return nil, fmt.Errorf("lightness steps must be at least 1, got %d", t.Steps)
	}
	lo, hi := t.Range[0], t.Range[1]
	if lo < 0 || hi > 1 || lo > hi {
		return nil, fmt.Errorf("lightness range must satisfy 0 <= low <= high <= 1, got [%g, %g]", lo, hi)
	}
	if t.Steps == 1 {
		return []float64{lo}, nil
	}
	out := make([]float64, t.Steps)
	for i := range out {
		out[i] = lo + (hi-lo)*float64(i)/float64(t.Steps-1)
	}
	return out, nil
}

// ApplyLightness adds the lightness steps of t under every leaf color in node.
func ApplyLightness(node *color.Node, t LightnessTransform) error {
	steps, err := LightnessSteps(t)
	if err != nil {
		return err
	}
	var walk func(n *color.Node)
	walk = func(n *color.Node) {
		for _, child := range n.Children {
			if child.Children == nil && child.Color != nil {
				for i, l := range steps {
					child.Set(fmt.Sprintf("l%d", i+1), colorspace.WithLightness(*child.Color, l))
				}
				continue
			}
			walk(child)
		}
	}
	walk(node)
	return nil
}
