package lsp

import (
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// referenceAt returns the reference path under pos, cut after the segment the
// cursor is on: on "highlight" in colors.highlight.low it returns
// "colors.highlight". It returns "" when pos is not on a reference.
func referenceAt(content string, pos protocol.Position) string {
	file, diags := hclsyntax.ParseConfig([]byte(content), "", hcl.InitialPos)
	if !diags.HasErrors() {
		if body, ok := file.Body.(*hclsyntax.Body); ok {
			return traversalAt(body, pos)
		}
	}

	// Half-typed documents rarely parse; read the reference off the line.
	lines := strings.Split(content, "\n")
	if int(pos.Line) >= len(lines) {
		return ""
	}
	return refInLine(lines[pos.Line], pos.Character)
}

// traversalAt finds the scope traversal containing pos.
func traversalAt(body *hclsyntax.Body, pos protocol.Position) string {
	var found hcl.Traversal
	hclsyntax.VisitAll(body, func(n hclsyntax.Node) hcl.Diagnostics {
		if t, ok := n.(*hclsyntax.ScopeTraversalExpr); ok && posInRange(pos, hclRangeToLSP(t.SrcRange)) {
			found = t.Traversal
		}
		return nil
	})
	if len(found) == 0 {
		return ""
	}
	if _, ok := BlockTypes[found.RootName()]; !ok {
		return ""
	}

	parts := []string{found.RootName()}
	for _, step := range found[1:] {
		if comparePos(pos, hclPosToLSP(step.SourceRange().Start)) < 0 {
			break
		}
		attr, ok := step.(hcl.TraverseAttr)
		if !ok {
			break
		}
		parts = append(parts, attr.Name)
	}
	return strings.Join(parts, ".")
}

// refInLine extracts a reference from a single line of text.
func refInLine(line string, character uint32) string {
	col := int(character)
	if col >= len(line) || !isIdentChar(line[col]) {
		return ""
	}

	start, end := col, col
	for start > 0 && isIdentChar(line[start-1]) {
		start--
	}
	for end < len(line) && isIdentChar(line[end]) {
		end++
	}
	word := line[start:end]

	root, _, ok := strings.Cut(word, ".")
	if !ok {
		return ""
	}
	if _, known := BlockTypes[root]; !known {
		return ""
	}

	if i := strings.IndexByte(word[col-start:], '.'); i >= 0 {
		word = word[:col-start+i]
	}
	return strings.TrimSuffix(word, ".")
}

// isIdentChar returns true if the byte is a valid identifier character
// (letter, digit, underscore, or dot for dotted paths).
func isIdentChar(b byte) bool {
	return (b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9') ||
		b == '_' || b == '.'
}

// definition returns where the color or group referenced at pos is defined,
// or nil when pos is not on a known reference.
func definition(result *AnalysisResult, content string, uri string, pos protocol.Position) *protocol.Location {
	if result == nil {
		return nil
	}

	ref := referenceAt(content, pos)
	if ref == "" {
		return nil
	}

	symRange, ok := result.Symbols[ref]
	if !ok {
		return nil
	}

	return &protocol.Location{
		URI:   protocol.DocumentUri(uri),
		Range: symRange,
	}
}

// textDocumentDefinition handles textDocument/definition requests.
func (s *Server) textDocumentDefinition(_ *glsp.Context, params *protocol.DefinitionParams) (any, error) {
	uri := string(params.TextDocument.URI)

	result := s.getResult(uri)
	if result == nil {
		return nil, nil
	}

	content, ok := s.docs.Get(uri)
	if !ok {
		return nil, nil
	}

	return definition(result, content, uri, params.Position), nil
}
