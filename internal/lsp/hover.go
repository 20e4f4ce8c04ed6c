package lsp

import (
	"fmt"
	"strings"

	"github.com/jsvensson/colorkit/internal/access"
	"github.com/jsvensson/colorkit/internal/color"
	"github.com/jsvensson/colorkit/internal/colorspace"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// comparePos orders two positions: negative when a comes first.
func comparePos(a, b protocol.Position) int {
	if a.Line != b.Line {
		return int(a.Line) - int(b.Line)
	}
	return int(a.Character) - int(b.Character)
}

// posInRange reports whether pos lies in the half-open range [r.Start, r.End).
func posInRange(pos protocol.Position, r protocol.Range) bool {
	return comparePos(pos, r.Start) >= 0 && comparePos(pos, r.End) < 0
}

// byteOffset maps pos to an offset into content, clamping the character to
// the end of its line. ok is false when the line does not exist.
func byteOffset(content string, pos protocol.Position) (offset int, ok bool) {
	for line := uint32(0); line < pos.Line; line++ {
		nl := strings.IndexByte(content[offset:], '\n')
		if nl < 0 {
			return len(content), false
		}
		offset += nl + 1
	}
	end := len(content)
	if nl := strings.IndexByte(content[offset:], '\n'); nl >= 0 {
		end = offset + nl
	}
	return min(offset+int(pos.Character), end), true
}

// extractText returns the source text covered by r.
func extractText(content string, r protocol.Range) string {
	start, ok := byteOffset(content, r.Start)
	if !ok {
		return ""
	}
	end, _ := byteOffset(content, r.End)
	if end < start {
		return ""
	}
	return content[start:end]
}

var (
	white = color.New(1, 1, 1)
	black = color.New(0, 0, 0)
)

// describeColor renders hex, RGB and CIE L*a*b* for a hover, followed by the
// WCAG contrast against white and black.
func describeColor(c color.RGBA) string {
	lab := colorspace.RGBAToLAB(c)
	return fmt.Sprintf("`%s` \u00b7 `%s` \u00b7 `L*a*b* %.1f %.1f %.1f`\n\ncontrast %.2f:1 on white, %.2f:1 on black",
		color.Format(c, c.A < 1), c.RGB(), lab.L, lab.A, lab.B,
		access.ContrastRatio(c, white), access.ContrastRatio(c, black))
}

// hover produces a Hover response for the given cursor position.
// A position inside a ColorLocation shows that color; references also show
// their source text. A position on a generator block header lists the swatch
// it produces. Returns nil if neither applies.
func hover(result *AnalysisResult, content string, pos protocol.Position) *protocol.Hover {
	if result == nil {
		return nil
	}

	for _, cl := range result.Locations {
		if !posInRange(pos, cl.Range) {
			continue
		}

		md := describeColor(cl.Color)
		if cl.IsRef {
			md = fmt.Sprintf("**%s**\n\n%s", extractText(content, cl.Range), md)
		}

		return &protocol.Hover{
			Contents: protocol.MarkupContent{
				Kind:  protocol.MarkupKindMarkdown,
				Value: md,
			},
			Range: &cl.Range,
		}
	}

	for _, sl := range result.Swatches {
		if !posInRange(pos, sl.Range) {
			continue
		}

		hexes := sl.Swatch.Hex()
		var b strings.Builder
		fmt.Fprintf(&b, "**%s %s** (%d colors)\n\n", sl.Swatch.Kind, sl.Swatch.Name, len(hexes))
		for i, h := range hexes {
			if i > 0 {
				b.WriteString(" ")
			}
			fmt.Fprintf(&b, "`%s`", h)
		}

		return &protocol.Hover{
			Contents: protocol.MarkupContent{
				Kind:  protocol.MarkupKindMarkdown,
				Value: b.String(),
			},
			Range: &sl.Range,
		}
	}

	return nil
}

// textDocumentHover handles textDocument/hover requests.
func (s *Server) textDocumentHover(_ *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	uri := string(params.TextDocument.URI)

	result := s.getResult(uri)
	if result == nil {
		return nil, nil
	}

	content, ok := s.docs.Get(uri)
	if !ok {
		return nil, nil
	}

	return hover(result, content, params.Position), nil
}
