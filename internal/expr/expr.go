// Package expr exposes the color tree and color functions to HCL expressions
// in palette documents.
package expr

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/jsvensson/colorkit/internal/color"
	"github.com/zclconf/go-cty/cty"
)

// RootName is the variable under which the color tree is exposed.
const RootName = "colors"

// ResolveColor extracts a color hex string from a cty.Value.
// If the value is a string, return it directly.
// If the value is an object, extract the "color" key.
func ResolveColor(val cty.Value) (string, error) {
	if val.IsNull() {
		return "", fmt.Errorf("expected a color, got null")
	}
	if val.Type() == cty.String {
		return val.AsString(), nil
	}
	if val.Type().IsObjectType() {
		if val.Type().HasAttribute("color") {
			colorVal := val.GetAttr("color")
			if colorVal.Type() == cty.String {
				return colorVal.AsString(), nil
			}
		}
		return "", fmt.Errorf("object has no 'color' attribute; reference a specific child or add a color attribute")
	}
	return "", fmt.Errorf("expected string or object with color attribute, got %s", val.Type().FriendlyName())
}

// ParseValue resolves val with ResolveColor and parses the result.
func ParseValue(val cty.Value) (color.RGBA, error) {
	hex, err := ResolveColor(val)
	if err != nil {
		return color.RGBA{}, err
	}
	return color.ParseHex(hex)
}

// NodeToCty converts a color.Node to a cty.Value for HCL evaluation context.
// Leaf nodes become strings. Nodes with children become objects, with "color"
// as a sibling key if the node has its own color. Translucent colors keep
// their alpha digits.
func NodeToCty(node *color.Node) cty.Value {
	if node == nil {
		return cty.EmptyObjectVal
	}
	if node.Children == nil {
		if node.Color != nil {
			return cty.StringVal(hexOf(*node.Color))
		}
		return cty.EmptyObjectVal
	}

	vals := make(map[string]cty.Value, len(node.Children)+1)
	if node.Color != nil {
		vals["color"] = cty.StringVal(hexOf(*node.Color))
	}

	keys := make([]string, 0, len(node.Children))
	for k := range node.Children {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		vals[k] = NodeToCty(node.Children[k])
	}

	return cty.ObjectVal(vals)
}

func hexOf(c color.RGBA) string {
	return color.Format(c, c.A < 1)
}

// EvalContext creates an HCL evaluation context with the color tree and every
// color function.
func EvalContext(colors *color.Node) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			RootName: NodeToCty(colors),
		},
		Functions: Functions(),
	}
}
