package lsp

import (
	"slices"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/colorkit/internal/color"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/zclconf/go-cty/cty"
)

// tokenType indexes semanticTokenTypes.
type tokenType = uint32

const (
	tokKeyword   tokenType = iota // block types
	tokProperty                   // attribute names and path segments
	tokVariable                   // unused; reserved in the legend
	tokNamespace                  // the colors root
	tokString                     // hex color literals
	tokFunction
	tokNumber
	tokComment
	tokClass // generator names
)

const modDeclaration uint32 = 1 << 0

// Legend sent to the client; order must follow the tokenType constants.
var (
	semanticTokenTypes = []string{
		"keyword", "property", "variable", "namespace", "string",
		"function", "number", "comment", "class",
	}
	semanticTokenModifiers = []string{"declaration"}
)

// SemanticToken is one token in absolute, 0-based coordinates.
type SemanticToken struct {
	Line      uint32
	StartChar uint32
	Length    uint32
	Type      uint32
	Modifiers uint32
}

// encodeTokens sorts tokens by position and applies the LSP relative
// encoding: five integers per token, lines and columns as deltas.
func encodeTokens(tokens []SemanticToken) []uint32 {
	slices.SortFunc(tokens, func(a, b SemanticToken) int {
		if a.Line != b.Line {
			return int(a.Line) - int(b.Line)
		}
		return int(a.StartChar) - int(b.StartChar)
	})

	data := make([]uint32, 0, len(tokens)*5)
	var line, char uint32
	for _, tok := range tokens {
		if tok.Line != line {
			char = 0
		}
		data = append(data, tok.Line-line, tok.StartChar-char, tok.Length, tok.Type, tok.Modifiers)
		line, char = tok.Line, tok.StartChar
	}
	return data
}

// tokenizer collects tokens while walking a parsed document.
type tokenizer struct {
	tokens []SemanticToken
}

func (t *tokenizer) add(start hcl.Pos, length int, typ tokenType, mods uint32) {
	if length <= 0 {
		return
	}
	t.tokens = append(t.tokens, SemanticToken{
		Line:      uint32(start.Line - 1),
		StartChar: uint32(start.Column - 1),
		Length:    uint32(length),
		Type:      typ,
		Modifiers: mods,
	})
}

// visit emits the tokens owned by a single syntax node; children are reached
// by the walk itself.
func (t *tokenizer) visit(node hclsyntax.Node) hcl.Diagnostics {
	switch n := node.(type) {
	case *hclsyntax.Block:
		t.add(n.TypeRange.Start, len(n.Type), tokKeyword, 0)
		for _, r := range n.LabelRanges {
			// Skip the opening quote; the length drops both quotes.
			start := r.Start
			start.Column++
			t.add(start, r.End.Column-r.Start.Column-2, tokClass, modDeclaration)
		}
	case *hclsyntax.Attribute:
		t.add(n.NameRange.Start, len(n.Name), tokProperty, modDeclaration)
	case *hclsyntax.FunctionCallExpr:
		t.add(n.NameRange.Start, len(n.Name), tokFunction, 0)
	case *hclsyntax.ScopeTraversalExpr:
		t.traversal(n.Traversal)
	case *hclsyntax.LiteralValueExpr:
		t.literal(n)
	}
	return nil
}

// traversal marks colors.a.b as a namespace followed by properties. Other
// roots are left to the client's default highlighting.
func (t *tokenizer) traversal(trav hcl.Traversal) {
	if len(trav) == 0 || trav.IsRelative() {
		return
	}
	root := trav.RootName()
	if _, ok := BlockTypes[root]; !ok {
		return
	}
	t.add(trav[0].SourceRange().Start, len(root), tokNamespace, 0)
	for _, step := range trav[1:] {
		attr, ok := step.(hcl.TraverseAttr)
		if !ok {
			continue
		}
		// Count back from the end; the step range also covers the dot.
		start := attr.SrcRange.End
		start.Column -= len(attr.Name)
		t.add(start, len(attr.Name), tokProperty, 0)
	}
}

func (t *tokenizer) literal(lit *hclsyntax.LiteralValueExpr) {
	val := lit.Val
	if val.IsNull() || !val.IsKnown() {
		return
	}
	switch val.Type() {
	case cty.String:
		s := val.AsString()
		if !strings.HasPrefix(s, "#") {
			return
		}
		if _, err := color.ParseHex(s); err == nil {
			t.add(lit.SrcRange.Start, len(s), tokString, 0)
		}
	case cty.Number:
		r := lit.SrcRange
		if r.Start.Line == r.End.Line {
			t.add(r.Start, r.End.Column-r.Start.Column, tokNumber, 0)
		}
	}
}

// semanticTokensFull tokenizes a whole document. Documents that fail to parse
// yield no tokens.
func semanticTokensFull(content string) []uint32 {
	file, diags := hclsyntax.ParseConfig([]byte(content), "", hcl.InitialPos)
	if diags.HasErrors() {
		return []uint32{}
	}
	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return []uint32{}
	}

	var t tokenizer
	hclsyntax.VisitAll(body, t.visit)
	return encodeTokens(t.tokens)
}

// textDocumentSemanticTokensFull handles textDocument/semanticTokens/full requests.
func (s *Server) textDocumentSemanticTokensFull(_ *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	content, ok := s.docs.Get(string(params.TextDocument.URI))
	if !ok {
		return &protocol.SemanticTokens{Data: []protocol.UInteger{}}, nil
	}
	return &protocol.SemanticTokens{Data: semanticTokensFull(content)}, nil
}
