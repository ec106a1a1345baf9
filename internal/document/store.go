// Package document owns the text of every open document and keeps it
// synchronized with the edits the client reports. Columns in protocol
// coordinates are counted in the position encoding negotiated at session
// start, either UTF-16 code units or UTF-8 bytes.
package document

import (
	"errors"
	"sync"

	"github.com/tliron/commonlog"
)

// ErrNotFound is returned for operations on a URI with no open document.
var ErrNotFound = errors.New("document not open")

// Position is a protocol coordinate: 0-based line, column in the
// session's position encoding.
type Position struct {
	Line      uint32
	Character uint32
}

// Range is a half-open protocol coordinate range.
type Range struct {
	Start Position
	End   Position
}

// Change is one client-reported edit. A nil Range replaces the whole
// document.
type Change struct {
	Range *Range
	Text  string
}

// Document is the current state of one open document.
type Document struct {
	URI     string
	Text    string
	Version int32
}

// Store holds all open documents for a session.
type Store struct {
	mu   sync.RWMutex
	enc  Encoding
	docs map[string]*Document
	log  commonlog.Logger
}

// NewStore creates an empty store counting columns in enc.
func NewStore(enc Encoding) *Store {
	return &Store{
		enc:  enc,
		docs: make(map[string]*Document),
		log:  commonlog.GetLogger("document"),
	}
}

// SetEncoding fixes the position encoding for the session. Called once
// after initialization, before any document is opened.
func (s *Store) SetEncoding(enc Encoding) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enc = enc
}

// Encoding returns the session's position encoding.
func (s *Store) Encoding() Encoding {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.enc
}

// Open inserts a new document. Opening a URI that is already open
// overwrites the stored text and logs a warning.
func (s *Store) Open(uri, text string, version int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[uri]; ok {
		s.log.Warningf("open for already open document %s, overwriting", uri)
	}
	s.docs[uri] = &Document{URI: uri, Text: text, Version: version}
}

// Apply applies an ordered list of edits to the stored text. Each edit is
// applied against the result of the previous one.
func (s *Store) Apply(uri string, version int32, changes []Change) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[uri]
	if !ok {
		return ErrNotFound
	}
	for _, change := range changes {
		if change.Range == nil {
			doc.Text = change.Text
			continue
		}
		start := PositionToOffset(doc.Text, change.Range.Start, s.enc)
		end := PositionToOffset(doc.Text, change.Range.End, s.enc)
		if end < start {
			start, end = end, start
		}
		doc.Text = doc.Text[:start] + change.Text + doc.Text[end:]
	}
	doc.Version = version
	return nil
}

// Text returns the current full text of a document.
func (s *Store) Text(uri string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[uri]
	if !ok {
		return "", ErrNotFound
	}
	return doc.Text, nil
}

// Get returns a copy of the current document state.
func (s *Store) Get(uri string) (Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[uri]
	if !ok {
		return Document{}, ErrNotFound
	}
	return *doc, nil
}

// Close removes a document. Closing an unknown URI is a no-op.
func (s *Store) Close(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}
