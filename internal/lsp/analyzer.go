package lsp

import (
	"fmt"
	"sort"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/colorkit/internal/color"
	"github.com/jsvensson/colorkit/internal/expr"
	"github.com/jsvensson/colorkit/internal/gradient"
	"github.com/jsvensson/colorkit/internal/harmony"
	"github.com/jsvensson/colorkit/internal/palette"
	"github.com/jsvensson/colorkit/internal/parser"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/zclconf/go-cty/cty"
)

var (
	DiagError   = protocol.DiagnosticSeverityError
	DiagWarning = protocol.DiagnosticSeverityWarning
	DiagInfo    = protocol.DiagnosticSeverityInformation
)

const diagSource = "colorkit"

// BlockTypes are the top-level names an expression can reference.
var BlockTypes = map[string]struct{}{
	expr.RootName: {},
}

// metaBlockName is the optional document metadata block.
const metaBlockName = "meta"

// colorAttributes name generator attributes that hold a single color.
var colorAttributes = map[string]bool{
	"base": true, "start": true, "end": true, "from": true, "to": true,
}

// AnalysisResult holds all information produced by analyzing a palette document.
type AnalysisResult struct {
	Diagnostics []protocol.Diagnostic
	Colors      *color.Node
	Symbols     map[string]protocol.Range // "colors.base", "colors.highlight.low" -> definition range
	Locations   []ColorLocation
	Swatches    []SwatchLocation
}

// ColorLocation records a resolved color at a specific source position.
type ColorLocation struct {
	Range protocol.Range
	Color color.RGBA
	IsRef bool // true if this is a colors reference (not a hex literal)
}

// SwatchLocation records the output of a generator block.
type SwatchLocation struct {
	Range  protocol.Range // block header
	Swatch color.Swatch
}

// hclPosToLSP converts an HCL position to an LSP position.
// HCL positions are 1-based; LSP positions are 0-based.
func hclPosToLSP(pos hcl.Pos) protocol.Position {
	return protocol.Position{
		Line:      uint32(pos.Line - 1),
		Character: uint32(pos.Column - 1),
	}
}

// hclRangeToLSP converts an HCL range to an LSP range.
func hclRangeToLSP(r hcl.Range) protocol.Range {
	return protocol.Range{
		Start: hclPosToLSP(r.Start),
		End:   hclPosToLSP(r.End),
	}
}

// Analyze parses HCL content from memory and produces diagnostics, a symbol table,
// color locations and generated swatches. It collects ALL errors rather than
// short-circuiting on the first.
func Analyze(filename, content string) *AnalysisResult {
	result := &AnalysisResult{
		Colors:  &color.Node{},
		Symbols: make(map[string]protocol.Range),
	}

	file, diags := hclsyntax.ParseConfig([]byte(content), filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		result.addDiagnostics(diags)
		// Cannot proceed with semantic analysis if syntax is broken
		return result
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		result.addError(hcl.Range{}, "internal error: parsed body is not *hclsyntax.Body")
		return result
	}

	for _, attr := range body.Attributes {
		result.addError(attr.SrcRange, fmt.Sprintf("unexpected attribute %q; palette documents contain only blocks", attr.Name))
	}

	var generators []*hclsyntax.Block
	seenBlocks := make(map[string]bool)
	for _, block := range body.Blocks {
		switch {
		case block.Type == metaBlockName || block.Type == expr.RootName:
			if seenBlocks[block.Type] {
				result.addError(block.DefRange(), fmt.Sprintf("duplicate %s block", block.Type))
				continue
			}
			seenBlocks[block.Type] = true
			if len(block.Labels) > 0 {
				result.addError(block.DefRange(), fmt.Sprintf("%s block takes no labels", block.Type))
				continue
			}
			if block.Type == metaBlockName {
				var meta parser.Meta
				result.addDiagnostics(gohcl.DecodeBody(block.Body, nil, &meta))
				continue
			}
			result.analyzeColorsBody(block.Body, result.Colors, result.Colors, expr.RootName)
		case parser.IsKind(block.Type):
			generators = append(generators, block)
		default:
			result.addError(block.DefRange(), fmt.Sprintf("unknown block type %q", block.Type))
		}
	}

	// Generators see the complete color tree.
	ctx := expr.EvalContext(result.Colors)
	names := make(map[string]string, len(generators))
	for _, block := range generators {
		result.analyzeGenerator(block, ctx, names)
	}

	return result
}

// hclDiagToLSP converts an HCL diagnostic to an LSP diagnostic.
func hclDiagToLSP(d *hcl.Diagnostic) protocol.Diagnostic {
	sev := DiagError
	if d.Severity == hcl.DiagWarning {
		sev = DiagWarning
	}

	diag := protocol.Diagnostic{
		Severity: &sev,
		Message:  d.Summary,
		Source:   strPtr(diagSource),
	}

	if d.Detail != "" {
		diag.Message = d.Summary + ": " + d.Detail
	}

	if d.Subject != nil {
		diag.Range = hclRangeToLSP(*d.Subject)
	}

	return diag
}

func (r *AnalysisResult) addDiagnostics(diags hcl.Diagnostics) {
	for _, d := range diags {
		r.Diagnostics = append(r.Diagnostics, hclDiagToLSP(d))
	}
}

// addError adds an error-level diagnostic at the given range.
func (r *AnalysisResult) addError(rng hcl.Range, msg string) {
	r.Diagnostics = append(r.Diagnostics, protocol.Diagnostic{
		Range:    hclRangeToLSP(rng),
		Severity: &DiagError,
		Source:   strPtr(diagSource),
		Message:  msg,
	})
}

// addWarning adds a warning-level diagnostic at the given range.
func (r *AnalysisResult) addWarning(rng hcl.Range, msg string) {
	r.Diagnostics = append(r.Diagnostics, protocol.Diagnostic{
		Range:    hclRangeToLSP(rng),
		Severity: &DiagWarning,
		Source:   strPtr(diagSource),
		Message:  msg,
	})
}

func (r *AnalysisResult) errorCount() int {
	n := 0
	for _, d := range r.Diagnostics {
		if d.Severity != nil && *d.Severity == DiagError {
			n++
		}
	}
	return n
}

func strPtr(s string) *string {
	return &s
}

// colorsItem represents an attribute or block in source order.
type colorsItem struct {
	pos   hcl.Pos
	attr  *hclsyntax.Attribute
	block *hclsyntax.Block
}

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

// analyzeColorsBody parses a colors block body, collecting diagnostics and building
// the symbol table and color locations. Items are processed in source order so later
// entries can reference earlier ones.
func (r *AnalysisResult) analyzeColorsBody(body *hclsyntax.Body, root *color.Node, node *color.Node, prefix string) {
	var (
		transform      *parser.TransformBlock
		transformRange hcl.Range
	)

	for _, item := range sourceOrder(body) {
		if item.block != nil {
			block := item.block
			if block.Type == parser.TransformBlockName {
				var t parser.TransformBlock
				if diags := gohcl.DecodeBody(block.Body, nil, &t); diags.HasErrors() {
					r.addDiagnostics(diags)
					continue
				}
				transform, transformRange = &t, block.DefRange()
				continue
			}
			if len(block.Labels) > 0 {
				r.addError(block.DefRange(), fmt.Sprintf("%s.%s: color groups take no labels", prefix, block.Type))
				continue
			}
			path := prefix + "." + block.Type
			r.Symbols[path] = hclRangeToLSP(block.DefRange())
			r.analyzeColorsBody(block.Body, root, node.Child(block.Type), path)
			continue
		}

		attr := item.attr
		symbolName := prefix + "." + attr.Name

		// Record symbol for non-"color" attributes
		if attr.Name != "color" {
			r.Symbols[symbolName] = hclRangeToLSP(attr.SrcRange)
		}

		// Rebuild eval context with current state of the color tree
		c, ok := r.evalColorAttr(attr, expr.EvalContext(root), symbolName)
		if !ok {
			continue
		}

		if attr.Name == "color" {
			node.Color = &c
		} else {
			node.Set(attr.Name, c)
		}
	}

	if transform != nil && transform.Lightness != nil {
		if err := parser.ApplyLightness(node, *transform.Lightness); err != nil {
			r.addError(transformRange, fmt.Sprintf("%s.%s: %s", prefix, parser.TransformBlockName, err))
			return
		}
		// Derived colors jump to the transform that made them.
		node.Walk(func(path string, _ color.RGBA) {
			full := prefix + "." + path
			if _, ok := r.Symbols[full]; !ok {
				r.Symbols[full] = hclRangeToLSP(transformRange)
			}
		})
	}
}

// evalColorAttr evaluates attr as a color and records its location.
func (r *AnalysisResult) evalColorAttr(attr *hclsyntax.Attribute, ctx *hcl.EvalContext, name string) (color.RGBA, bool) {
	val, diags := attr.Expr.Value(ctx)
	if diags.HasErrors() {
		r.addError(attr.SrcRange, fmt.Sprintf("evaluating %s: %s", name, diags.Error()))
		return color.RGBA{}, false
	}

	c, err := expr.ParseValue(val)
	if err != nil {
		r.addError(attr.SrcRange, fmt.Sprintf("%s: %s", name, err))
		return color.RGBA{}, false
	}

	r.Locations = append(r.Locations, ColorLocation{
		Range: hclRangeToLSP(attr.Expr.Range()),
		Color: c,
		IsRef: isReferenceExpr(attr.Expr),
	})
	return c, true
}

// analyzeGenerator checks one generator block and, when it is valid, records
// the swatch it produces.
func (r *AnalysisResult) analyzeGenerator(block *hclsyntax.Block, ctx *hcl.EvalContext, names map[string]string) {
	if len(block.Labels) != 1 {
		r.addError(block.DefRange(), fmt.Sprintf("%s block needs exactly one name label", block.Type))
		return
	}
	name := block.Labels[0]
	if prev, ok := names[name]; ok {
		r.addError(block.LabelRanges[0], fmt.Sprintf("%s %q: name already used by a %s block", block.Type, name, prev))
	} else {
		names[name] = block.Type
	}

	before := r.errorCount()
	for _, item := range sourceOrder(block.Body) {
		if item.attr != nil {
			r.analyzeGeneratorAttr(block.Type, item.attr, ctx)
		}
	}
	if r.errorCount() > before {
		return
	}

	g, diags := parser.DecodeGenerator(block.Type, block.Body, ctx)
	if diags.HasErrors() {
		r.addDiagnostics(diags)
		return
	}
	colors, err := g.Generate(ctx, parser.DefaultOptions())
	if err != nil {
		r.addError(block.DefRange(), fmt.Sprintf("%s %q: %s", block.Type, name, err))
		return
	}
	r.Swatches = append(r.Swatches, SwatchLocation{
		Range:  hclRangeToLSP(block.DefRange()),
		Swatch: color.Swatch{Name: name, Kind: block.Type, Colors: colors},
	})
}

// analyzeGeneratorAttr validates a single generator attribute with a precise range.
func (r *AnalysisResult) analyzeGeneratorAttr(kind string, attr *hclsyntax.Attribute, ctx *hcl.EvalContext) {
	name := kind + "." + attr.Name

	if colorAttributes[attr.Name] {
		r.evalColorAttr(attr, ctx, name)
		return
	}

	if attr.Name == "stops" {
		r.analyzeStops(attr, ctx, name)
		return
	}

	val, diags := attr.Expr.Value(ctx)
	if diags.HasErrors() {
		r.addError(attr.SrcRange, fmt.Sprintf("evaluating %s: %s", name, diags.Error()))
		return
	}
	if val.IsNull() || !val.IsKnown() {
		return
	}

	rng := attr.Expr.Range()
	switch attr.Name {
	case "steps", "fps", "per_side":
		if val.Type() != cty.Number {
			return
		}
		n, _ := val.AsBigFloat().Int64()
		switch {
		case n < 0:
			r.addError(rng, fmt.Sprintf("%s must not be negative", name))
		case n == 1 && attr.Name == "steps":
			r.addWarning(rng, fmt.Sprintf("%s below 2 produces a degenerate swatch", name))
		}
		return
	}

	if val.Type() != cty.String {
		return
	}
	s := val.AsString()
	var err error
	switch attr.Name {
	case "interpolation":
		_, err = gradient.ParseInterpolation(s)
	case "type":
		_, err = harmony.ParseType(s)
	case "scheme":
		_, err = gradient.ParseScheme(s)
	case "table":
		if _, ok := palette.Lookup(s); !ok {
			err = fmt.Errorf("unknown palette table %q", s)
		}
	case "preset":
		if _, ok := gradient.Presets[s]; !ok {
			err = fmt.Errorf("unknown gradient preset %q", s)
		}
	case "duration":
		var d time.Duration
		if d, err = time.ParseDuration(s); err == nil && d <= 0 {
			err = fmt.Errorf("duration must be positive, got %s", s)
		}
	}
	if err != nil {
		r.addError(rng, fmt.Sprintf("%s: %s", name, err))
	}
}

// analyzeStops records a location for each literal element of a stops list.
func (r *AnalysisResult) analyzeStops(attr *hclsyntax.Attribute, ctx *hcl.EvalContext, name string) {
	tuple, ok := attr.Expr.(*hclsyntax.TupleConsExpr)
	if !ok {
		// A reference to a list; the decoder reports type problems.
		if _, diags := attr.Expr.Value(ctx); diags.HasErrors() {
			r.addError(attr.SrcRange, fmt.Sprintf("evaluating %s: %s", name, diags.Error()))
		}
		return
	}

	if len(tuple.Exprs) < 2 {
		r.addError(attr.Expr.Range(), fmt.Sprintf("%s: need at least 2 colors, got %d", name, len(tuple.Exprs)))
	}
	for i, e := range tuple.Exprs {
		val, diags := e.Value(ctx)
		if diags.HasErrors() {
			r.addError(e.Range(), fmt.Sprintf("evaluating %s[%d]: %s", name, i, diags.Error()))
			continue
		}
		c, err := expr.ParseValue(val)
		if err != nil {
			r.addError(e.Range(), fmt.Sprintf("%s[%d]: %s", name, i, err))
			continue
		}
		r.Locations = append(r.Locations, ColorLocation{
			Range: hclRangeToLSP(e.Range()),
			Color: c,
			IsRef: isReferenceExpr(e),
		})
	}
}

// isReferenceExpr returns true if the expression is a scope traversal
// (e.g. colors.base) rather than a literal value.
func isReferenceExpr(e hclsyntax.Expression) bool {
	switch e.(type) {
	case *hclsyntax.ScopeTraversalExpr:
		return true
	case *hclsyntax.RelativeTraversalExpr:
		return true
	default:
		return false
	}
}
