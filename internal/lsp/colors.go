package lsp

import (
	"strings"

	"github.com/jsvensson/colorkit/internal/color"
	"github.com/jsvensson/colorkit/internal/expr"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// colorToLSP converts a color.RGBA to a protocol.Color.
func colorToLSP(c color.RGBA) protocol.Color {
	c = c.Clamped()
	return protocol.Color{
		Red:   float32(c.R),
		Green: float32(c.G),
		Blue:  float32(c.B),
		Alpha: float32(c.A),
	}
}

// colorFromLSP converts an editor color back to color.RGBA.
func colorFromLSP(c protocol.Color) color.RGBA {
	return color.RGBA{
		R: float64(c.Red),
		G: float64(c.Green),
		B: float64(c.Blue),
		A: float64(c.Alpha),
	}.Clamped()
}

// documentColors converts the analysis result's color locations into LSP ColorInformation items.
func documentColors(result *AnalysisResult) []protocol.ColorInformation {
	if result == nil {
		return []protocol.ColorInformation{}
	}

	infos := make([]protocol.ColorInformation, 0, len(result.Locations))
	for _, cl := range result.Locations {
		infos = append(infos, protocol.ColorInformation{
			Range: cl.Range,
			Color: colorToLSP(cl.Color),
		})
	}
	return infos
}

// colorPresentation produces color presentation options for a given color and range.
// For hex literals (text starting with `"` or `#`), it returns a presentation with a TextEdit
// to replace the old value. For colors references and function calls it returns an empty
// slice so that derived values are never overwritten with literals.
func colorPresentation(content string, params *protocol.ColorPresentationParams) []protocol.ColorPresentation {
	c := colorFromLSP(params.Color)
	hexStr := color.Format(c, c.A < 1)

	// Extract the text at the given range to determine if this is a hex literal or a reference
	text := extractText(content, params.Range)

	if strings.HasPrefix(text, expr.RootName+".") {
		return []protocol.ColorPresentation{}
	}

	if strings.HasPrefix(text, "\"") || strings.HasPrefix(text, "#") {
		// Keep the quotes when the replaced range has them.
		newText := hexStr
		if strings.HasPrefix(text, "\"") {
			newText = "\"" + hexStr + "\""
		}

		return []protocol.ColorPresentation{
			{
				Label: hexStr,
				TextEdit: &protocol.TextEdit{
					Range:   params.Range,
					NewText: newText,
				},
			},
		}
	}

	return []protocol.ColorPresentation{}
}

// textDocumentDocumentColor handles textDocument/documentColor requests.
func (s *Server) textDocumentDocumentColor(_ *glsp.Context, params *protocol.DocumentColorParams) ([]protocol.ColorInformation, error) {
	uri := string(params.TextDocument.URI)
	result := s.getResult(uri)
	return documentColors(result), nil
}

// textDocumentColorPresentation handles textDocument/colorPresentation requests.
func (s *Server) textDocumentColorPresentation(_ *glsp.Context, params *protocol.ColorPresentationParams) ([]protocol.ColorPresentation, error) {
	uri := string(params.TextDocument.URI)
	content, ok := s.docs.Get(uri)
	if !ok {
		return []protocol.ColorPresentation{}, nil
	}
	return colorPresentation(content, params), nil
}
