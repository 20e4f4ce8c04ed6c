package lsp

import (
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// documentForCompletion is a valid document used to produce an AnalysisResult
// for completion tests.
const documentForCompletion = `meta {
  name = "Test Palette"
}

colors {
  base    = "#191724"
  surface = "#1f1d2e"
  love    = "#eb6f92"

  highlight {
    low  = "#21202e"
    high = "#6e6a86"
  }
}

harmony "pair" {
  base = colors.love
  type = "complementary"
}
`

func completionLabels(items []protocol.CompletionItem) []string {
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	sort.Strings(labels)
	return labels
}

func hasLabel(items []protocol.CompletionItem, label string) bool {
	for _, item := range items {
		if item.Label == label {
			return true
		}
	}
	return false
}

func analyzedForCompletion(t *testing.T) *AnalysisResult {
	t.Helper()
	result := Analyze("test.ckpal", documentForCompletion)
	if result.Colors == nil {
		t.Fatal("expected non-nil colors from analysis")
	}
	return result
}

func TestCompletion_ColorsTopLevel(t *testing.T) {
	result := analyzedForCompletion(t)

	content := "gradient \"g\" {\n  stops = [colors.\n}\n"
	pos := protocol.Position{Line: 1, Character: uint32(len("  stops = [colors."))}

	items := complete(result, content, pos)

	want := []string{"base", "highlight", "love", "surface"}
	if diff := cmp.Diff(want, completionLabels(items)); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}

	for _, item := range items {
		if item.Label == "highlight" {
			if item.Kind == nil || *item.Kind != protocol.CompletionItemKindModule {
				t.Errorf("expected highlight to be a module item, got %v", item.Kind)
			}
			if item.Detail == nil || !strings.HasPrefix(*item.Detail, "color group") {
				t.Errorf("expected highlight detail to describe a group, got %v", item.Detail)
			}
			continue
		}
		if item.Kind == nil || *item.Kind != protocol.CompletionItemKindColor {
			t.Errorf("expected %s to be a color item, got %v", item.Label, item.Kind)
		}
	}
}

func TestCompletion_ColorsDetailIsHex(t *testing.T) {
	result := analyzedForCompletion(t)

	content := "  x = colors."
	items := complete(result, content, protocol.Position{Line: 0, Character: uint32(len(content))})

	for _, item := range items {
		if item.Label != "love" {
			continue
		}
		if item.Detail == nil || *item.Detail != "#EB6F92" {
			t.Errorf("expected love detail #EB6F92, got %v", item.Detail)
		}
		return
	}
	t.Fatal("love not offered")
}

func TestCompletion_ColorsNested(t *testing.T) {
	result := analyzedForCompletion(t)

	content := "  base = colors.highlight."
	items := complete(result, content, protocol.Position{Line: 0, Character: uint32(len(content))})

	want := []string{"high", "low"}
	if diff := cmp.Diff(want, completionLabels(items)); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
}

func TestCompletion_ColorsPartial(t *testing.T) {
	result := analyzedForCompletion(t)

	// The client filters on the partial segment; the server returns siblings.
	content := "  base = colors.highlight.hi"
	items := complete(result, content, protocol.Position{Line: 0, Character: uint32(len(content))})

	if !hasLabel(items, "high") || !hasLabel(items, "low") {
		t.Errorf("expected highlight children, got %v", completionLabels(items))
	}
}

func TestCompletion_ColorsUnknownPath(t *testing.T) {
	result := analyzedForCompletion(t)

	for _, content := range []string{
		"  base = colors.nope.",
		"  base = colors.love.",
	} {
		items := complete(result, content, protocol.Position{Line: 0, Character: uint32(len(content))})
		if len(items) != 0 {
			t.Errorf("%q: expected no items, got %v", content, completionLabels(items))
		}
	}
}

func TestCompletion_ColorsRequiresWordBoundary(t *testing.T) {
	result := analyzedForCompletion(t)

	content := "  base = mycolors."
	items := complete(result, content, protocol.Position{Line: 0, Character: uint32(len(content))})

	if hasLabel(items, "base") {
		t.Error("mycolors. should not be treated as a colors reference")
	}
}

func TestCompletion_TopLevel(t *testing.T) {
	result := analyzedForCompletion(t)

	content := "colors {\n  base = \"#000000\"\n}\n\n"
	items := complete(result, content, protocol.Position{Line: 4, Character: 0})

	want := []string{
		"animation", "colors", "diverging", "gradient", "harmony",
		"meta", "scale", "sequential", "shades",
	}
	if diff := cmp.Diff(want, completionLabels(items)); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}

	for _, item := range items {
		if item.InsertTextFormat == nil || *item.InsertTextFormat != protocol.InsertTextFormatSnippet {
			t.Errorf("%s: expected snippet insert format", item.Label)
		}
		if item.Label == "gradient" && (item.InsertText == nil || !strings.HasPrefix(*item.InsertText, `gradient "${1:name}" {`)) {
			t.Errorf("gradient snippet should carry a name placeholder, got %v", item.InsertText)
		}
	}
}

func TestCompletion_MetaAttributes(t *testing.T) {
	result := analyzedForCompletion(t)

	content := "meta {\n  name = \"x\"\n  \n}\n"
	items := complete(result, content, protocol.Position{Line: 2, Character: 2})

	want := []string{"author", "description", "version"}
	if diff := cmp.Diff(want, completionLabels(items)); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
}

func TestCompletion_GeneratorAttributes(t *testing.T) {
	result := analyzedForCompletion(t)

	tests := []struct {
		name    string
		content string
		line    uint32
		want    []string
	}{
		{
			name:    "gradient",
			content: "gradient \"g\" {\n  \n}\n",
			line:    1,
			want:    []string{"interpolation", "steps", "stops"},
		},
		{
			name:    "gradient with stops defined",
			content: "gradient \"g\" {\n  stops = [\"#000\", \"#fff\"]\n  \n}\n",
			line:    2,
			want:    []string{"interpolation", "steps"},
		},
		{
			name:    "animation",
			content: "animation \"a\" {\n  \n}\n",
			line:    1,
			want:    []string{"duration", "fps", "from", "to"},
		},
		{
			name:    "shades",
			content: "shades \"s\" {\n  base = colors.love\n  \n}\n",
			line:    2,
			want:    []string{"per_side", "spread"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := complete(result, tt.content, protocol.Position{Line: tt.line, Character: 2})
			if diff := cmp.Diff(tt.want, completionLabels(items)); diff != "" {
				t.Errorf("labels mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompletion_EnumValues(t *testing.T) {
	result := analyzedForCompletion(t)

	tests := []struct {
		name       string
		line       string
		wantLabel  string
		wantInsert string
	}{
		{"harmony type", "  type = ", "triadic", `"triadic"`},
		{"harmony type quoted", `  type = "`, "triadic", "triadic"},
		{"interpolation", "  interpolation = ", "perceptual", `"perceptual"`},
		{"preset", `  preset = "`, "sunset", "sunset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := complete(result, tt.line, protocol.Position{Line: 0, Character: uint32(len(tt.line))})
			for _, item := range items {
				if item.Label != tt.wantLabel {
					continue
				}
				if item.InsertText == nil || *item.InsertText != tt.wantInsert {
					t.Errorf("insert text = %v, want %q", item.InsertText, tt.wantInsert)
				}
				return
			}
			t.Errorf("expected %q among %v", tt.wantLabel, completionLabels(items))
		})
	}
}

func TestCompletion_ValuePosition(t *testing.T) {
	result := analyzedForCompletion(t)

	content := "colors {\n  dim = \n}\n"
	items := complete(result, content, protocol.Position{Line: 1, Character: uint32(len("  dim = "))})

	for _, name := range []string{"colors", "brighten", "darken", "mix", "blend"} {
		if !hasLabel(items, name) {
			t.Errorf("expected %q in value completions", name)
		}
	}

	for _, item := range items {
		if item.Label == "darken" {
			if item.InsertText == nil || !strings.HasPrefix(*item.InsertText, "darken(") {
				t.Errorf("darken snippet = %v", item.InsertText)
			}
		}
	}
}

func TestCompletion_InsideOpenStringOffersNothing(t *testing.T) {
	result := analyzedForCompletion(t)

	content := `  base = "#19`
	items := complete(result, content, protocol.Position{Line: 0, Character: uint32(len(content))})
	if len(items) != 0 {
		t.Errorf("expected no completions inside a hex literal, got %v", completionLabels(items))
	}
}

func TestCompletion_ColorsBlockOffersTransform(t *testing.T) {
	result := analyzedForCompletion(t)

	content := "colors {\n  base = \"#000000\"\n  \n}\n"
	items := complete(result, content, protocol.Position{Line: 2, Character: 2})
	if !hasLabel(items, "transform") {
		t.Errorf("expected transform snippet, got %v", completionLabels(items))
	}

	defined := "colors {\n  transform {\n    lightness {\n      range = [0.2, 0.8]\n      steps = 3\n    }\n  }\n  \n}\n"
	items = complete(result, defined, protocol.Position{Line: 7, Character: 2})
	if hasLabel(items, "transform") {
		t.Error("transform should not be offered twice")
	}
}

func TestCompletion_TransformAndLightness(t *testing.T) {
	result := analyzedForCompletion(t)

	content := "colors {\n  transform {\n    \n  }\n}\n"
	items := complete(result, content, protocol.Position{Line: 2, Character: 4})
	if diff := cmp.Diff([]string{"lightness"}, completionLabels(items)); diff != "" {
		t.Errorf("transform labels mismatch (-want +got):\n%s", diff)
	}

	content = "colors {\n  transform {\n    lightness {\n      steps = 3\n      \n    }\n  }\n}\n"
	items = complete(result, content, protocol.Position{Line: 4, Character: 6})
	if diff := cmp.Diff([]string{"range"}, completionLabels(items)); diff != "" {
		t.Errorf("lightness labels mismatch (-want +got):\n%s", diff)
	}
}

func TestCompletion_OutOfRange(t *testing.T) {
	result := analyzedForCompletion(t)
	if items := complete(result, "colors {}\n", protocol.Position{Line: 10, Character: 0}); items != nil {
		t.Errorf("expected nil for a line past the end, got %v", items)
	}
}

func TestDetermineBlockContext(t *testing.T) {
	lines := splitLines(documentForCompletion)

	tests := []struct {
		line      int
		wantCtx   blockContext
		wantBlock string
	}{
		{1, contextMeta, "meta"},
		{3, contextRoot, ""},
		{5, contextColors, "colors"},
		{10, contextColors, "highlight"},
		{16, contextGenerator, "harmony"},
		{19, contextRoot, ""},
	}

	for _, tt := range tests {
		ctx, block := determineBlockContext(lines, tt.line)
		if ctx != tt.wantCtx || block != tt.wantBlock {
			t.Errorf("line %d: got (%d, %q), want (%d, %q)", tt.line, ctx, block, tt.wantCtx, tt.wantBlock)
		}
	}
}
