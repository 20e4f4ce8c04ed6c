package lsp

import (
	"sync"
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

const testURI = "file:///palette.ckpal"

func TestDocumentStore_Update(t *testing.T) {
	store := NewDocumentStore()

	store.Open(testURI, 1, "initial content")

	content, ok := store.Get(testURI)
	if !ok {
		t.Fatal("Document not found after opening")
	}
	if content != "initial content" {
		t.Errorf("Expected 'initial content', got '%s'", content)
	}

	if !store.Update(testURI, 2, "updated content") {
		t.Fatal("Update() rejected a newer version")
	}

	content, _ = store.Get(testURI)
	if content != "updated content" {
		t.Errorf("Expected 'updated content', got '%s'", content)
	}
	if v, _ := store.Version(testURI); v != 2 {
		t.Errorf("Version() = %d, want 2", v)
	}
}

func TestDocumentStore_RejectedUpdates(t *testing.T) {
	tests := []struct {
		name    string
		open    bool
		version protocol.Integer
	}{
		{"unopened", false, 1},
		{"stale version", true, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewDocumentStore()
			if tt.open {
				store.Open(testURI, 5, "current")
			}

			if store.Update(testURI, tt.version, "rejected") {
				t.Fatal("Update() should report false")
			}
			if content, ok := store.Get(testURI); ok && content != "current" {
				t.Errorf("content = %q after rejected update", content)
			}
			if !tt.open {
				if _, ok := store.Get(testURI); ok {
					t.Error("Update() must not create documents")
				}
			}
		})
	}
}

func TestDocumentStore_Close(t *testing.T) {
	store := NewDocumentStore()
	store.Open(testURI, 1, "content")
	store.Close(testURI)

	if _, ok := store.Get(testURI); ok {
		t.Error("Document still present after Close()")
	}
	if _, ok := store.Version(testURI); ok {
		t.Error("Version() still reported after Close()")
	}
	if store.Analysis(testURI) != nil {
		t.Error("Analysis() of a closed document should be nil")
	}
	if store.Update(testURI, 2, "late change") {
		t.Error("Update() after Close() should report false")
	}
}

func TestDocumentStore_AnalysisCache(t *testing.T) {
	store := NewDocumentStore()
	store.Open(testURI, 1, "colors {\n  base = \"#191724\"\n}\n")

	first := store.Analysis(testURI)
	if first == nil {
		t.Fatal("Analysis() returned nil for an open document")
	}
	if len(first.Diagnostics) != 0 {
		t.Errorf("unexpected diagnostics: %v", first.Diagnostics)
	}
	if store.Analysis(testURI) != first {
		t.Error("Analysis() re-ran for unchanged text")
	}

	// A version bump with identical text keeps the analysis.
	store.Update(testURI, 2, "colors {\n  base = \"#191724\"\n}\n")
	if store.Analysis(testURI) != first {
		t.Error("Analysis() re-ran after a no-op change")
	}

	store.Update(testURI, 3, "colors {\n  base = \"#zzzzzz\"\n}\n")
	second := store.Analysis(testURI)
	if second == first {
		t.Fatal("Analysis() was not refreshed after the text changed")
	}
	if len(second.Diagnostics) == 0 {
		t.Error("expected a diagnostic for the invalid color")
	}
}

func TestDocumentStore_MultipleUpdates(t *testing.T) {
	store := NewDocumentStore()
	store.Open(testURI, 1, "version 1")

	updates := []string{
		"version 2",
		"version 3",
		"version 4",
	}

	for i, update := range updates {
		version := protocol.Integer(i + 2)
		store.Update(testURI, version, update)
		content, ok := store.Get(testURI)
		if !ok {
			t.Fatalf("Document not found after update %d", version)
		}
		if content != update {
			t.Errorf("Update %d: expected '%s', got '%s'", version, update, content)
		}
	}
}

func TestDocumentStore_ConcurrentAccess(t *testing.T) {
	store := NewDocumentStore()
	store.Open(testURI, 0, "initial")

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			store.Update(testURI, protocol.Integer(n), string(rune('0'+n)))
			store.Get(testURI)
			store.Analysis(testURI)
		}(i)
	}
	wg.Wait()

	content, ok := store.Get(testURI)
	if !ok {
		t.Error("Document not found after concurrent updates")
	}
	if content == "" {
		t.Error("Document content is empty after concurrent updates")
	}
}
