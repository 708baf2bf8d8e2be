// Package json provides the JSON encoding of opcode documentation indexes
// and snippet type files.
package json

import (
	"encoding/json"
	"io"
	"os"

	"github.com/fwojciec/opdoc"
)

// Ensure Writer implements opdoc.IndexWriter at compile time.
var _ opdoc.IndexWriter = (*Writer)(nil)

// indentFunc has the signature of json.MarshalIndent.
type indentFunc func(v any, prefix, indent string) ([]byte, error)

// Marshal returns the pretty-printed JSON encoding of doc.
func Marshal(doc *opdoc.IndexedDocumentation) ([]byte, error) {
	return marshal(json.MarshalIndent, doc)
}

func marshal(fn indentFunc, doc *opdoc.IndexedDocumentation) ([]byte, error) {
	data, err := fn(doc, "", "  ")
	if err != nil {
		return nil, opdoc.Errorf(opdoc.EINTERNAL, "could not serialize index to JSON: %s", err)
	}
	return data, nil
}

// ReadIndex decodes an index previously written by Writer.
func ReadIndex(r io.Reader) (*opdoc.IndexedDocumentation, error) {
	doc := opdoc.NewIndexedDocumentation()
	if err := json.NewDecoder(r).Decode(doc); err != nil {
		return nil, opdoc.Errorf(opdoc.EINVALID, "could not decode index: %s", err)
	}
	return doc, nil
}

// LoadSnippetTypes decodes a category file mapping each snippet type to its
// member keywords and returns the inverted index.
func LoadSnippetTypes(r io.Reader) (*opdoc.SnippetTypes, error) {
	var categories map[string][]string
	if err := json.NewDecoder(r).Decode(&categories); err != nil {
		return nil, opdoc.Errorf(opdoc.EINVALID, "could not deserialize snippet type json: %s", err)
	}
	return opdoc.NewSnippetTypes(categories)
}

// Writer writes indexes as JSON to a fixed path.
type Writer struct {
	path   string
	indent indentFunc
}

// NewWriter creates a new Writer that writes to path.
func NewWriter(path string) *Writer {
	return &Writer{path: path, indent: json.MarshalIndent}
}

// Path returns the destination path.
func (w *Writer) Path() string {
	return w.path
}

// WriteIndex serializes doc and writes it to the destination path.
func (w *Writer) WriteIndex(doc *opdoc.IndexedDocumentation) error {
	data, err := marshal(w.indent, doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(w.path, data, 0644); err != nil {
		return opdoc.Errorf(opdoc.EINTERNAL, "could not write to JSON file at %s", w.path)
	}
	return nil
}
