// Package palette holds named color tables for data visualization and UI
// themes, and helpers for deriving palettes from a single color.
package palette

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/jsvensson/colorkit/internal/color"
)

// Category groups tables by the kind of data they suit.
type Category string

const (
	Sequential    Category = "sequential"
	Diverging     Category = "diverging"
	Qualitative   Category = "qualitative"
	Accessibility Category = "accessibility"
	Specialized   Category = "specialized"
)

// Table is a fixed, ordered list of hex colors.
type Table struct {
	Name     string
	Category Category
	Colors   []string
}

// RGBA parses the table colors. Tables are constant, so a parse failure is a bug.
func (t Table) RGBA() []color.RGBA {
	out := make([]color.RGBA, len(t.Colors))
	for i, h := range t.Colors {
		c, err := color.ParseHex(h)
		if err != nil {
			panic(fmt.Sprintf("palette %s: %v", t.Name, err))
		}
		out[i] = c
	}
	return out
}

var tables = []Table{
	{"blues", Sequential, []string{
		"#F7FBFF", "#DEEBF7", "#C6DBEF", "#9ECAE1",
		"#6BAED6", "#4292C6", "#2171B5", "#08519C", "#08306B",
	}},
	{"greens", Sequential, []string{
		"#F7FCF5", "#E5F5E0", "#C7E9C0", "#A1D99B",
		"#74C476", "#41AB5D", "#238B45", "#006D2C", "#00441B",
	}},
	{"reds", Sequential, []string{
		"#FFF5F0", "#FEE0D2", "#FCBBA1", "#FC9272",
		"#FB6A4A", "#EF3B2C", "#CB181D", "#A50F15", "#67000D",
	}},
	{"purples", Sequential, []string{
		"#FCFBFD", "#EFEDF5", "#DADAEB", "#BCBDDC",
		"#9E9AC8", "#807DBA", "#6A51A3", "#54278F", "#3F007D",
	}},
	{"oranges", Sequential, []string{
		"#FFF5EB", "#FEE6CE", "#FDD0A2", "#FDAE6B",
		"#FD8D3C", "#F16913", "#D94801", "#A63603", "#7F2704",
	}},
	{"red-blue", Diverging, []string{
		"#67001F", "#B2182B", "#D6604D", "#F4A582", "#FDDBC7",
		"#F7F7F7", "#D1E5F0", "#92C5DE", "#4393C3", "#2166AC", "#053061",
	}},
	{"red-yellow-blue", Diverging, []string{
		"#A50026", "#D73027", "#F46D43", "#FDAE61", "#FEE090",
		"#FFFFBF", "#E0F3F8", "#ABD9E9", "#74ADD1", "#4575B4", "#313695",
	}},
	{"purple-green", Diverging, []string{
		"#40004B", "#762A83", "#9970AB", "#C2A5CF", "#E7D4E8",
		"#F7F7F7", "#D9F0D3", "#A6DBA0", "#5AAE61", "#1B7837", "#00441B",
	}},
	{"brown-teal", Diverging, []string{
		"#8C510A", "#BF812D", "#DFC27D", "#F6E8C3", "#F5F5F5",
		"#C7EAE5", "#80CDC1", "#35978F", "#01665E", "#003C30",
	}},
	{"set1", Qualitative, []string{
		"#E41A1C", "#377EB8", "#4DAF4A", "#984EA3",
		"#FF7F00", "#FFFF33", "#A65628", "#F781BF", "#999999",
	}},
	{"set2", Qualitative, []string{
		"#66C2A5", "#FC8D62", "#8DA0CB", "#E78AC3",
		"#A6D854", "#FFD92F", "#E5C494", "#B3B3B3",
	}},
	{"set3", Qualitative, []string{
		"#8DD3C7", "#FFFFB3", "#BEBADA", "#FB8072",
		"#80B1D3", "#FDB462", "#B3DE69", "#FCCDE5",
		"#D9D9D9", "#BC80BD", "#CCEBC5", "#FFED6F",
	}},
	{"dark2", Qualitative, []string{
		"#1B9E77", "#D95F02", "#7570B3", "#E7298A",
		"#66A61E", "#E6AB02", "#A6761D", "#666666",
	}},
	{"tableau10", Qualitative, []string{
		"#4E79A7", "#F28E2C", "#E15759", "#76B7B2",
		"#59A14F", "#EDC949", "#AF7AA1", "#FF9DA7",
		"#9C755F", "#BAB0AB",
	}},
	{"colorblind-safe", Accessibility, []string{
		"#1F77B4", "#FF7F0E", "#2CA02C", "#D62728",
		"#9467BD", "#8C564B", "#E377C2", "#7F7F7F",
		"#BCBD22", "#17BECF",
	}},
	{"high-contrast", Accessibility, []string{
		"#000000", "#FFFFFF", "#FF0000", "#00FF00",
		"#0000FF", "#FFFF00", "#FF00FF", "#00FFFF",
	}},
	{"traffic-light", Specialized, []string{"#FF4444", "#FFAA00", "#00AA00"}},
	{"heatmap", Specialized, []string{
		"#000428", "#004CFF", "#009FFF", "#00FFFF",
		"#5AFF00", "#FFFF00", "#FF9500", "#FF0000",
	}},
	{"viridis", Specialized, []string{
		"#440154", "#482777", "#3F4A8A", "#31678E",
		"#26838F", "#1F9D8A", "#6CCE5A", "#B6DE2B", "#FEE825",
	}},
	{"plasma", Specialized, []string{
		"#0C0786", "#40039A", "#6A00A7", "#8F0DA4",
		"#B12A90", "#CC4678", "#E16462", "#F1834C", "#FCA636", "#FCCE25",
	}},
}

// Lookup returns the named table. Names are case-insensitive and accept
// underscores in place of hyphens.
func Lookup(name string) (Table, bool) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for _, t := range tables {
		if t.Name == key {
			return t, true
		}
	}
	return Table{}, false
}

// MustLookup is Lookup for names known at compile time.
func MustLookup(name string) Table {
	t, ok := Lookup(name)
	if !ok {
		panic("palette: unknown table " + name)
	}
	return t
}

// Names returns every table name in sorted order.
func Names() []string {
	names := make([]string, len(tables))
	for i, t := range tables {
		names[i] = t.Name
	}
	sort.Strings(names)
	return names
}

// Subset picks count colors spread evenly across colors, always including
// both ends. Asking for at least as many colors as exist returns all of them.
func Subset(colors []string, count int) []string {
	if count <= 0 || len(colors) == 0 {
		return nil
	}
	if count >= len(colors) {
		return colors
	}
	if count == 1 {
		return colors[:1]
	}

	out := make([]string, count)
	step := float64(len(colors)-1) / float64(count-1)
	for i := range count {
		out[i] = colors[int(math.Round(float64(i)*step))]
	}
	return out
}

// TintsAndShades returns perSide darker shades, base, then perSide lighter
// tints (2·perSide+1 colors). spread is the brightness offset reached at
// each end.
func TintsAndShades(base color.RGBA, perSide int, spread float64) []color.RGBA {
	if perSide <= 0 {
		return []color.RGBA{base}
	}

	out := make([]color.RGBA, 0, 2*perSide+1)
	for i := perSide; i >= 1; i-- {
		out = append(out, color.AdjustBrightness(base, -spread*float64(i)/float64(perSide)))
	}
	out = append(out, base)
	for i := 1; i <= perSide; i++ {
		out = append(out, color.AdjustBrightness(base, spread*float64(i)/float64(perSide)))
	}
	return out
}
