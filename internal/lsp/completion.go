package lsp

import (
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/jsvensson/colorkit/internal/color"
	"github.com/jsvensson/colorkit/internal/expr"
	"github.com/jsvensson/colorkit/internal/gradient"
	"github.com/jsvensson/colorkit/internal/harmony"
	"github.com/jsvensson/colorkit/internal/palette"
	"github.com/jsvensson/colorkit/internal/parser"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// splitLines splits content into lines, preserving empty trailing lines.
func splitLines(content string) []string {
	return strings.Split(content, "\n")
}

// blockContext represents the kind of block the cursor is in.
type blockContext int

const (
	contextRoot      blockContext = iota
	contextMeta                   // inside meta {}
	contextColors                 // inside colors {} or one of its groups
	contextTransform              // inside colors { transform {} }
	contextLightness              // inside transform { lightness {} }
	contextGenerator              // inside a generator block
)

// blockSchemas maps block types to the struct their body decodes into.
var blockSchemas = map[string]any{
	metaBlockName:             parser.Meta{},
	parser.KindGradient:       parser.GradientBlock{},
	parser.KindHarmony:        parser.HarmonyBlock{},
	parser.KindScale:          parser.ScaleBlock{},
	parser.KindSequential:     parser.SequentialBlock{},
	parser.KindDiverging:      parser.DivergingBlock{},
	parser.KindAnimation:      parser.AnimationBlock{},
	parser.KindShades:         parser.ShadesBlock{},
	parser.TransformBlockName: parser.TransformBlock{},
	"lightness":               parser.LightnessTransform{},
}

// blockAttributes returns the attribute names accepted by a block type, sorted.
func blockAttributes(blockType string) []string {
	v, ok := blockSchemas[blockType]
	if !ok {
		return nil
	}
	schema, _ := gohcl.ImpliedBodySchema(v)
	names := make([]string, 0, len(schema.Attributes))
	for _, a := range schema.Attributes {
		names = append(names, a.Name)
	}
	return names
}

// enumValues returns the accepted string values of an enumerated attribute.
func enumValues(attr string) []string {
	var out []string
	switch attr {
	case "interpolation":
		for _, m := range gradient.Interpolations() {
			out = append(out, m.String())
		}
	case "type":
		for _, t := range harmony.Types() {
			out = append(out, t.String())
		}
	case "scheme":
		for _, s := range gradient.Schemes() {
			out = append(out, s.String())
		}
	case "table":
		out = palette.Names()
	case "preset":
		for name := range gradient.Presets {
			out = append(out, name)
		}
		sort.Strings(out)
	}
	return out
}

// complete produces completion items given an analysis result, document content,
// and cursor position. This is the core logic, decoupled from the LSP protocol
// handler for testability.
func complete(result *AnalysisResult, content string, pos protocol.Position) []protocol.CompletionItem {
	lines := splitLines(content)
	if int(pos.Line) >= len(lines) {
		return nil
	}

	line := lines[pos.Line]
	charPos := min(int(pos.Character), len(line))
	textBeforeCursor := line[:charPos]

	// Check for colors path completion: look for "colors." or "colors.xxx."
	if colorItems := tryColorsCompletion(result, textBeforeCursor); colorItems != nil {
		return colorItems
	}

	// After "=": enumerated values, or functions and the colors tree.
	if attr, quoted, ok := valuePosition(textBeforeCursor); ok {
		if values := enumValues(attr); values != nil {
			return enumCompletions(values, quoted)
		}
		if !quoted {
			return valueCompletions()
		}
		return nil
	}
	// Somewhere inside a value that is not a colors path.
	if strings.Contains(textBeforeCursor, "=") {
		return nil
	}

	ctx, blockType := determineBlockContext(lines, int(pos.Line))

	switch ctx {
	case contextRoot:
		return topLevelCompletions()
	case contextColors:
		return colorsCompletions(lines, int(pos.Line))
	case contextMeta, contextTransform, contextLightness, contextGenerator:
		return attributeCompletions(lines, int(pos.Line), blockType)
	}

	return nil
}

// tryColorsCompletion checks if the text before the cursor ends with a colors
// path prefix (e.g., "colors." or "colors.highlight.") and returns completion
// items for the children at that node in the color tree.
func tryColorsCompletion(result *AnalysisResult, textBeforeCursor string) []protocol.CompletionItem {
	if result == nil || result.Colors == nil {
		return nil
	}

	prefix := expr.RootName + "."
	idx := strings.LastIndex(textBeforeCursor, prefix)
	if idx == -1 {
		return nil
	}
	// "mycolors." is not a reference.
	if idx > 0 && isIdentChar(textBeforeCursor[idx-1]) {
		return nil
	}

	pathStr := textBeforeCursor[idx+len(prefix):]

	// Walk the color tree based on the path segments.
	// - "colors."              -> children of root (segments = nil)
	// - "colors.highlight."    -> children of "highlight" node
	// - "colors.high"          -> children of root (client filters partial match)
	// - "colors.highlight.lo"  -> children of "highlight" (client filters "lo")
	var segments []string
	if before, ok := strings.CutSuffix(pathStr, "."); ok && before != "" {
		segments = strings.Split(before, ".")
	} else if strings.Contains(pathStr, ".") {
		parts := strings.Split(pathStr, ".")
		segments = parts[:len(parts)-1]
	}

	node := result.Colors
	for _, seg := range segments {
		if node.Children == nil {
			return nil
		}
		child, ok := node.Children[seg]
		if !ok {
			return nil
		}
		node = child
	}

	if node.Children == nil {
		return nil
	}

	return nodeChildrenToCompletionItems(node)
}

// nodeChildrenToCompletionItems converts a node's children into completion items,
// sorted by name.
func nodeChildrenToCompletionItems(node *color.Node) []protocol.CompletionItem {
	names := make([]string, 0, len(node.Children))
	for name := range node.Children {
		names = append(names, name)
	}
	sort.Strings(names)

	items := make([]protocol.CompletionItem, 0, len(names))
	for _, name := range names {
		child := node.Children[name]
		item := protocol.CompletionItem{
			Label: name,
			Kind:  completionKindPtr(protocol.CompletionItemKindColor),
		}

		switch {
		case child.Children != nil:
			item.Kind = completionKindPtr(protocol.CompletionItemKindModule)
			detail := "color group"
			if child.Color != nil {
				detail += " " + child.Color.Hex()
			}
			item.Detail = &detail
		case child.Color != nil:
			hex := color.Format(*child.Color, child.Color.A < 1)
			item.Detail = &hex
		}

		items = append(items, item)
	}

	return items
}

// valuePosition reports whether the cursor sits at the value of an attribute:
// right after "=" or inside a string opened after it. It returns the attribute
// name and whether a quote is already open.
func valuePosition(textBeforeCursor string) (attr string, quoted, ok bool) {
	eqIdx := strings.LastIndex(textBeforeCursor, "=")
	if eqIdx == -1 {
		return "", false, false
	}

	fields := strings.Fields(textBeforeCursor[:eqIdx])
	if len(fields) > 0 {
		attr = fields[len(fields)-1]
	}

	afterEq := strings.TrimSpace(textBeforeCursor[eqIdx+1:])
	switch {
	case afterEq == "":
		return attr, false, true
	case strings.HasPrefix(afterEq, `"`) && !strings.Contains(afterEq[1:], `"`):
		return attr, true, true
	}
	return "", false, false
}

// valueCompletions returns completion items for a value position, including
// function snippets and a colors reference trigger.
func valueCompletions() []protocol.CompletionItem {
	snippetFormat := protocol.InsertTextFormatSnippet

	var items []protocol.CompletionItem
	for _, f := range expr.Funcs() {
		snippet := f.Snippet
		items = append(items, protocol.CompletionItem{
			Label:            f.Name,
			Kind:             completionKindPtr(protocol.CompletionItemKindFunction),
			Detail:           strPtr(f.Signature),
			Documentation:    f.Description,
			InsertText:       &snippet,
			InsertTextFormat: &snippetFormat,
		})
	}

	colorsSnippet := expr.RootName + "."
	items = append(items, protocol.CompletionItem{
		Label:      expr.RootName,
		Kind:       completionKindPtr(protocol.CompletionItemKindVariable),
		Detail:     strPtr("colors reference"),
		InsertText: &colorsSnippet,
	})

	return items
}

// enumCompletions offers the accepted values of an attribute, quoting them
// unless the user already opened a string.
func enumCompletions(values []string, quoted bool) []protocol.CompletionItem {
	items := make([]protocol.CompletionItem, 0, len(values))
	for _, v := range values {
		insert := v
		if !quoted {
			insert = `"` + v + `"`
		}
		items = append(items, protocol.CompletionItem{
			Label:      v,
			Kind:       completionKindPtr(protocol.CompletionItemKindEnumMember),
			InsertText: &insert,
		})
	}
	return items
}

// determineBlockContext scans from the top of the file down to the cursor line
// to determine which block the cursor is in, using brace nesting. It also
// returns the innermost block type.
func determineBlockContext(lines []string, cursorLine int) (blockContext, string) {
	var stack []string

	for i := 0; i <= cursorLine; i++ {
		line := strings.TrimSpace(lines[i])

		opens := strings.Count(line, "{")
		closes := strings.Count(line, "}")

		// Process opening braces: extract the block name (first word on the line)
		if opens > 0 {
			parts := strings.Fields(line)
			if len(parts) >= 1 {
				for range opens {
					stack = append(stack, parts[0])
				}
			}
		}

		for range closes {
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	if len(stack) == 0 {
		return contextRoot, ""
	}

	current := stack[len(stack)-1]
	switch root := stack[0]; {
	case root == metaBlockName:
		return contextMeta, current
	case root == expr.RootName:
		switch {
		case current == parser.TransformBlockName:
			return contextTransform, current
		case current == "lightness" && len(stack) >= 2 && stack[len(stack)-2] == parser.TransformBlockName:
			return contextLightness, current
		}
		return contextColors, current
	case parser.IsKind(root) && len(stack) == 1:
		return contextGenerator, current
	}
	return contextRoot, ""
}

// colorsCompletions offers the transform block inside colors and its groups.
func colorsCompletions(lines []string, cursorLine int) []protocol.CompletionItem {
	if findDefinedBlocks(lines, cursorLine)[parser.TransformBlockName] {
		return nil
	}
	snippetFormat := protocol.InsertTextFormatSnippet
	snippet := parser.TransformBlockName + " {\n  lightness {\n    range = [${1:0.2}, ${2:0.9}]\n    steps = ${3:5}\n  }\n}"
	return []protocol.CompletionItem{{
		Label:            parser.TransformBlockName,
		Kind:             completionKindPtr(protocol.CompletionItemKindSnippet),
		Detail:           strPtr("derive lightness steps for every color in this group"),
		InsertText:       &snippet,
		InsertTextFormat: &snippetFormat,
	}}
}

// attributeCompletions returns the attributes of blockType, excluding
// attributes already defined in the current block.
func attributeCompletions(lines []string, cursorLine int, blockType string) []protocol.CompletionItem {
	defined := findDefinedAttributes(lines, cursorLine)
	kind := protocol.CompletionItemKindProperty

	var items []protocol.CompletionItem
	for _, name := range blockAttributes(blockType) {
		if !defined[name] {
			items = append(items, protocol.CompletionItem{
				Label: name,
				Kind:  &kind,
			})
		}
	}
	if blockType == parser.TransformBlockName {
		snippetFormat := protocol.InsertTextFormatSnippet
		snippet := "lightness {\n  range = [${1:0.2}, ${2:0.9}]\n  steps = ${3:5}\n}"
		items = append(items, protocol.CompletionItem{
			Label:            "lightness",
			Kind:             completionKindPtr(protocol.CompletionItemKindSnippet),
			InsertText:       &snippet,
			InsertTextFormat: &snippetFormat,
		})
	}

	return items
}

// currentBlockStart scans backwards to the opening brace of the block that
// encloses cursorLine.
func currentBlockStart(lines []string, cursorLine int) int {
	depth := 0
	for i := cursorLine; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		closes := strings.Count(line, "}")
		opens := strings.Count(line, "{")
		depth += closes - opens
		if depth < 0 {
			return i
		}
	}
	return 0
}

// findDefinedAttributes scans the current block (from the nearest opening brace
// before cursorLine to cursorLine) and returns attribute names already defined
// (lines containing "name = ...").
func findDefinedAttributes(lines []string, cursorLine int) map[string]bool {
	defined := make(map[string]bool)

	for i := currentBlockStart(lines, cursorLine); i <= cursorLine; i++ {
		line := strings.TrimSpace(lines[i])
		if eqIdx := strings.Index(line, "="); eqIdx > 0 {
			name := strings.TrimSpace(line[:eqIdx])
			if !strings.Contains(name, " ") && !strings.Contains(name, "{") {
				defined[name] = true
			}
		}
	}

	return defined
}

// findDefinedBlocks returns the names of blocks opened directly inside the
// block enclosing cursorLine, up to the cursor.
func findDefinedBlocks(lines []string, cursorLine int) map[string]bool {
	defined := make(map[string]bool)

	start := currentBlockStart(lines, cursorLine)
	depth := 0
	for i := start + 1; i <= cursorLine; i++ {
		line := strings.TrimSpace(lines[i])
		if depth == 0 && strings.HasSuffix(line, "{") {
			if parts := strings.Fields(line); len(parts) > 0 {
				defined[parts[0]] = true
			}
		}
		depth += strings.Count(line, "{") - strings.Count(line, "}")
	}

	return defined
}

// topLevelCompletions returns completion items for top-level block names.
func topLevelCompletions() []protocol.CompletionItem {
	snippetFormat := protocol.InsertTextFormatSnippet
	kind := protocol.CompletionItemKindSnippet

	var items []protocol.CompletionItem
	for _, name := range []string{metaBlockName, expr.RootName} {
		snippet := name + " {\n  $0\n}"
		items = append(items, protocol.CompletionItem{
			Label:            name,
			Kind:             &kind,
			InsertText:       &snippet,
			InsertTextFormat: &snippetFormat,
		})
	}
	for _, name := range parser.Kinds {
		snippet := name + " \"${1:name}\" {\n  $0\n}"
		items = append(items, protocol.CompletionItem{
			Label:            name,
			Kind:             &kind,
			Detail:           strPtr("generator"),
			InsertText:       &snippet,
			InsertTextFormat: &snippetFormat,
		})
	}

	return items
}

// completionKindPtr returns a pointer to a CompletionItemKind.
func completionKindPtr(k protocol.CompletionItemKind) *protocol.CompletionItemKind {
	return &k
}

// textDocumentCompletion is the LSP handler for textDocument/completion requests.
func (s *Server) textDocumentCompletion(_ *glsp.Context, params *protocol.CompletionParams) (any, error) {
	uri := string(params.TextDocument.URI)

	content, ok := s.docs.Get(uri)
	if !ok {
		return nil, nil
	}

	result := s.getResult(uri)
	if result == nil {
		return nil, nil
	}

	items := complete(result, content, params.Position)
	return items, nil
}
