package opdoc

import (
	"bytes"
	"encoding/json"
	"io"
)

// KeywordInfo holds the documentation stored for a canonical keyword.
//
// SnippetType is only set by annotated indexes. A KeywordInfo without a
// snippet type serializes as the bare documentation string.
type KeywordInfo struct {
	Documentation string `json:"documentation"`
	SnippetType   string `json:"snippet_type"`
}

// keywordInfo avoids MarshalJSON recursion.
type keywordInfo KeywordInfo

// MarshalJSON encodes plain entries as a string and annotated entries as an object.
func (k KeywordInfo) MarshalJSON() ([]byte, error) {
	if k.SnippetType == "" {
		return json.Marshal(k.Documentation)
	}
	return json.Marshal(keywordInfo(k))
}

// UnmarshalJSON accepts both encodings produced by MarshalJSON.
func (k *KeywordInfo) UnmarshalJSON(data []byte) error {
	if b := bytes.TrimSpace(data); len(b) > 0 && b[0] == '"' {
		*k = KeywordInfo{}
		return json.Unmarshal(b, &k.Documentation)
	}
	var v keywordInfo
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*k = KeywordInfo(v)
	return nil
}

// IndexedDocumentation maps opcode keywords to their documentation.
//
// Keywords that share a documentation block with another keyword are stored
// in KeysWithSharedDoc and point at the canonical keyword whose entry lives
// in KeysToDoc.
type IndexedDocumentation struct {
	KeysToDoc         map[string]KeywordInfo `json:"keys_to_doc"`
	KeysWithSharedDoc map[string]string      `json:"keys_with_shared_doc"`
}

// NewIndexedDocumentation returns an empty index.
func NewIndexedDocumentation() *IndexedDocumentation {
	return &IndexedDocumentation{
		KeysToDoc:         make(map[string]KeywordInfo),
		KeysWithSharedDoc: make(map[string]string),
	}
}

// Lookup returns the entry for keyword, following a shared-doc alias to its
// canonical keyword when keyword has no entry of its own. The canonical
// keyword is returned alongside the entry.
func (d *IndexedDocumentation) Lookup(keyword string) (canonical string, info KeywordInfo, ok bool) {
	if info, ok := d.KeysToDoc[keyword]; ok {
		return keyword, info, true
	}
	canonical, shared := d.KeysWithSharedDoc[keyword]
	if !shared {
		return keyword, KeywordInfo{}, false
	}
	info, ok = d.KeysToDoc[canonical]
	return canonical, info, ok
}

// Indexer builds an index from an opcode documentation document.
type Indexer interface {
	Index(r io.Reader) (*IndexedDocumentation, error)
}

// IndexWriter persists a built index.
type IndexWriter interface {
	WriteIndex(doc *IndexedDocumentation) error
}

// Classifier returns the snippet type of a canonical keyword.
// Returns ENOTFOUND if the keyword has no snippet type.
type Classifier interface {
	Classify(keyword string) (string, error)
}
