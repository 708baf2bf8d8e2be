package mock

import (
	"io"

	"github.com/fwojciec/opdoc"
)

var _ opdoc.Indexer = (*Indexer)(nil)

// Indexer is a mock implementation of opdoc.Indexer.
type Indexer struct {
	IndexFn func(r io.Reader) (*opdoc.IndexedDocumentation, error)
}

func (i *Indexer) Index(r io.Reader) (*opdoc.IndexedDocumentation, error) {
	return i.IndexFn(r)
}
