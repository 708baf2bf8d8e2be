package mock

import "github.com/fwojciec/opdoc"

var _ opdoc.IndexWriter = (*IndexWriter)(nil)

// IndexWriter is a mock implementation of opdoc.IndexWriter.
type IndexWriter struct {
	WriteIndexFn func(doc *opdoc.IndexedDocumentation) error
}

func (w *IndexWriter) WriteIndex(doc *opdoc.IndexedDocumentation) error {
	return w.WriteIndexFn(doc)
}
