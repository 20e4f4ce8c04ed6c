package color

import (
	"fmt"
	"sort"
	"strings"
)

// Node is an entry in a document's color tree. It can be both a color and a group.
// Color is nil for group-only nodes; Children is nil for leaves.
type Node struct {
	Color    *RGBA
	Children map[string]*Node
}

// Lookup resolves a dot-path (as segments) to a color.
// Returns an error if the path is not found or the target node has no color.
func (n *Node) Lookup(path []string) (RGBA, error) {
	current := n
	for _, part := range path {
		if current.Children == nil {
			return RGBA{}, fmt.Errorf("path not found: %s is a leaf, cannot traverse further", part)
		}
		child, ok := current.Children[part]
		if !ok {
			return RGBA{}, fmt.Errorf("path not found: %q does not exist", part)
		}
		current = child
	}
	if current.Color == nil {
		return RGBA{}, fmt.Errorf("path is a group, not a color; add a color attribute or reference a specific child")
	}
	return *current.Color, nil
}

// LookupPath is Lookup with a dot-separated path, e.g. "surface.dim".
func (n *Node) LookupPath(path string) (RGBA, error) {
	return n.Lookup(strings.Split(path, "."))
}

// Set stores c at name, creating the children map if needed.
func (n *Node) Set(name string, c RGBA) {
	if n.Children == nil {
		n.Children = make(map[string]*Node)
	}
	n.Children[name] = &Node{Color: &c}
}

// Child returns the named child, creating an empty group if it does not exist.
func (n *Node) Child(name string) *Node {
	if n.Children == nil {
		n.Children = make(map[string]*Node)
	}
	child, ok := n.Children[name]
	if !ok {
		child = &Node{}
		n.Children[name] = child
	}
	return child
}

// Walk visits every colored node in lexical path order.
func (n *Node) Walk(fn func(path string, c RGBA)) {
	n.walk("", fn)
}

func (n *Node) walk(prefix string, fn func(string, RGBA)) {
	if n.Color != nil && prefix != "" {
		fn(prefix, *n.Color)
	}
	keys := make([]string, 0, len(n.Children))
	for k := range n.Children {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		n.Children[k].walk(path, fn)
	}
}

// Swatch is a named, ordered set of colors produced by a generator
// (gradient, harmony, scale, ...).
type Swatch struct {
	Name   string
	Kind   string
	Colors []RGBA
}

// Hex returns the swatch colors formatted as "#RRGGBB".
func (s Swatch) Hex() []string {
	return FormatAll(s.Colors)
}
