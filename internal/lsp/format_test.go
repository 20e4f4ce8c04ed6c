package lsp

import (
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestFormatEdits(t *testing.T) {
	content := "colors {\nbase=\"#eb6f92\"\n}\n"

	edits, err := formatEdits(content)
	if err != nil {
		t.Fatalf("formatEdits() error = %v", err)
	}
	if len(edits) != 1 {
		t.Fatalf("expected 1 edit, got %d", len(edits))
	}

	want := "colors {\n  base = \"#EB6F92\"\n}\n"
	if edits[0].NewText != want {
		t.Errorf("NewText = %q, want %q", edits[0].NewText, want)
	}

	// The edit spans the whole document; the trailing newline leaves an empty last line.
	wantRange := protocol.Range{
		Start: protocol.Position{Line: 0, Character: 0},
		End:   protocol.Position{Line: 3, Character: 0},
	}
	if edits[0].Range != wantRange {
		t.Errorf("Range = %+v, want %+v", edits[0].Range, wantRange)
	}
}

func TestFormatEdits_NoTrailingNewline(t *testing.T) {
	content := "meta{name=\"x\"}"

	edits, err := formatEdits(content)
	if err != nil {
		t.Fatalf("formatEdits() error = %v", err)
	}
	if len(edits) != 1 {
		t.Fatalf("expected 1 edit, got %d", len(edits))
	}
	if end := edits[0].Range.End; end.Line != 0 || end.Character != uint32(len(content)) {
		t.Errorf("edit should end at the last character, got %+v", end)
	}
}

func TestFormatEdits_AlreadyFormatted(t *testing.T) {
	content := "colors {\n  base = \"#EB6F92\"\n}\n"

	edits, err := formatEdits(content)
	if err != nil {
		t.Fatalf("formatEdits() error = %v", err)
	}
	if edits == nil || len(edits) != 0 {
		t.Errorf("expected an empty non-nil edit list, got %+v", edits)
	}
}

func TestFormatEdits_IncompleteDocument(t *testing.T) {
	// The formatter must cope with documents that are still being typed.
	if _, err := formatEdits(`colors { base = "#191724"`); err != nil {
		t.Errorf("formatEdits() on incomplete HCL should not error, got: %v", err)
	}
}
