package palette

import (
	"fmt"
	"sort"
	"sync"

	"github.com/jsvensson/colorkit/internal/color"
)

// Theme maps design tokens such as "primary" to hex colors.
type Theme struct {
	Name   string
	Colors map[string]string
}

// RGBA resolves a token. ok is false if the token is missing or its value
// is not a valid color.
func (t Theme) RGBA(key string) (c color.RGBA, ok bool) {
	h, ok := t.Colors[key]
	if !ok {
		return color.RGBA{}, false
	}
	c, err := color.ParseHex(h)
	if err != nil {
		return color.RGBA{}, false
	}
	return c, true
}

// Keys returns the theme's tokens in sorted order.
func (t Theme) Keys() []string {
	keys := make([]string, 0, len(t.Colors))
	for k := range t.Colors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var (
	DefaultLight = Theme{Name: "Light", Colors: map[string]string{
		"primary":       "#007AFF",
		"secondary":     "#5856D6",
		"success":       "#34C759",
		"warning":       "#FF9500",
		"danger":        "#FF3B30",
		"background":    "#FFFFFF",
		"surface":       "#F2F2F7",
		"text":          "#000000",
		"textSecondary": "#8E8E93",
	}}

	DefaultDark = Theme{Name: "Dark", Colors: map[string]string{
		"primary":       "#0A84FF",
		"secondary":     "#5E5CE6",
		"success":       "#30D158",
		"warning":       "#FF9F0A",
		"danger":        "#FF453A",
		"background":    "#000000",
		"surface":       "#1C1C1E",
		"text":          "#FFFFFF",
		"textSecondary": "#8E8E93",
	}}

	MaterialBlue = Theme{Name: "Material Blue", Colors: map[string]string{
		"primary":       "#2196F3",
		"primaryLight":  "#BBDEFB",
		"primaryDark":   "#1976D2",
		"accent":        "#FF4081",
		"background":    "#FAFAFA",
		"surface":       "#FFFFFF",
		"text":          "#212121",
		"textSecondary": "#757575",
	}}

	// Default is the theme a new Context starts with.
	Default = Theme{Name: "Default", Colors: map[string]string{
		"primary":    "#0A84FF",
		"secondary":  "#5E5CE6",
		"background": "#FFFFFF",
		"text":       "#000000",
		"danger":     "#FF3B30",
	}}
)

// Themes lists the built-in themes.
func Themes() []Theme {
	return []Theme{Default, DefaultLight, DefaultDark, MaterialBlue}
}

// ThemeByName finds a built-in theme by its display name.
func ThemeByName(name string) (Theme, error) {
	for _, t := range Themes() {
		if t.Name == name {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("unknown theme %q", name)
}

// Context holds the active theme and an optional dark-mode variant. It is
// passed explicitly to whatever needs theme colors and is safe for
// concurrent use.
type Context struct {
	mu      sync.RWMutex
	current Theme
	dark    *Theme
}

// NewContext returns a Context whose active theme is initial.
func NewContext(initial Theme) *Context {
	return &Context{current: initial}
}

// Apply makes t the active theme.
func (c *Context) Apply(t Theme) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = t
}

// SetDark sets the theme used when dark mode is requested. nil clears it.
func (c *Context) SetDark(t *Theme) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dark = t
}

// Current returns the active theme.
func (c *Context) Current() Theme {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// Resolve looks up a token in the active theme, or in the dark variant when
// dark is set and one is configured. The dark variant falls back to the
// active theme for tokens it does not define.
func (c *Context) Resolve(key string, dark bool) (color.RGBA, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if dark && c.dark != nil {
		if col, ok := c.dark.RGBA(key); ok {
			return col, true
		}
	}
	return c.current.RGBA(key)
}
