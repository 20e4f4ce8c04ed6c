package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/colorkit/internal/color"
	"github.com/jsvensson/colorkit/internal/expr"
)

func firstBlock(t *testing.T, src string) *hclsyntax.Block {
	t.Helper()
	file, diags := hclsyntax.ParseConfig([]byte(src), "test.ckpal", hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		t.Fatalf("parse error: %s", diags.Error())
	}
	body := file.Body.(*hclsyntax.Body)
	if len(body.Blocks) == 0 {
		t.Fatal("no blocks")
	}
	return body.Blocks[0]
}

func TestDecodeGenerator(t *testing.T) {
	colors := &color.Node{}
	colors.Set("red", color.New(1, 0, 0))
	ctx := expr.EvalContext(colors)

	block := firstBlock(t, `
harmony "pair" {
  base = colors.red
  type = "complementary"
}
`)
	g, diags := DecodeGenerator(block.Type, block.Body, ctx)
	if diags.HasErrors() {
		t.Fatalf("DecodeGenerator() diags: %s", diags.Error())
	}
	got, err := g.Generate(ctx, DefaultOptions())
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if diff := cmp.Diff([]string{"#FF0000", "#00FFFF"}, color.Swatch{Colors: got}.Hex()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeGenerator_Diagnostics(t *testing.T) {
	ctx := expr.EvalContext(&color.Node{})

	t.Run("missing attribute", func(t *testing.T) {
		block := firstBlock(t, `
harmony "pair" {
  base = "#FF0000"
}
`)
		_, diags := DecodeGenerator(block.Type, block.Body, ctx)
		if !diags.HasErrors() {
			t.Fatal("expected diagnostics for missing type")
		}
		if diags[0].Subject == nil {
			t.Error("diagnostic should carry a source range")
		}
	})

	t.Run("unknown attribute", func(t *testing.T) {
		block := firstBlock(t, `
sequential "blues" {
  base  = "#0000FF"
  color = "#FF0000"
}
`)
		if _, diags := DecodeGenerator(block.Type, block.Body, ctx); !diags.HasErrors() {
			t.Fatal("expected diagnostics for unsupported attribute")
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		block := firstBlock(t, `
palette "x" {
}
`)
		if _, diags := DecodeGenerator(block.Type, block.Body, ctx); !diags.HasErrors() {
			t.Fatal("expected diagnostics for unknown kind")
		}
	})
}

func TestIsKind(t *testing.T) {
	for _, k := range Kinds {
		if !IsKind(k) {
			t.Errorf("IsKind(%q) = false", k)
		}
	}
	for _, k := range []string{"colors", "meta", "transform", ""} {
		if IsKind(k) {
			t.Errorf("IsKind(%q) = true", k)
		}
	}
}
