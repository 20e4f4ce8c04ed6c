package lsp

import (
	"sync"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// document is one open file and the analysis of its current text.
type document struct {
	version  protocol.Integer
	text     string
	analysis *AnalysisResult
}

// DocumentStore holds open documents keyed by URI. Analysis is computed on
// first request and dropped whenever the text changes.
type DocumentStore struct {
	mu   sync.Mutex
	docs map[string]*document
}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: make(map[string]*document)}
}

// Open starts tracking uri, replacing anything already stored for it.
func (s *DocumentStore) Open(uri string, version protocol.Integer, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uri] = &document{version: version, text: text}
}

// Update replaces the text of an open document. Changes for unopened
// documents and changes older than the stored version are dropped and
// reported as false.
func (s *DocumentStore) Update(uri string, version protocol.Integer, text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[uri]
	if !ok || version < doc.version {
		return false
	}
	doc.version = version
	if doc.text != text {
		doc.text = text
		doc.analysis = nil
	}
	return true
}

func (s *DocumentStore) Close(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}

// Get returns the latest text of an open document.
func (s *DocumentStore) Get(uri string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[uri]
	if !ok {
		return "", false
	}
	return doc.text, true
}

// Version returns the editor's version number for an open document.
func (s *DocumentStore) Version(uri string) (protocol.Integer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[uri]
	if !ok {
		return 0, false
	}
	return doc.version, true
}

// Analysis returns the analysis of the current text of uri, running the
// analyzer if the text changed since the last call. It returns nil for
// documents that are not open.
func (s *DocumentStore) Analysis(uri string) *AnalysisResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[uri]
	if !ok {
		return nil
	}
	if doc.analysis == nil {
		doc.analysis = Analyze(uri, doc.text)
		log.Debugf("analyzed %s v%d: %d diagnostics", uri, doc.version, len(doc.analysis.Diagnostics))
	}
	return doc.analysis
}
