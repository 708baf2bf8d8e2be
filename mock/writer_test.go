package mock_test

import (
	"testing"

	"github.com/fwojciec/opdoc"
	"github.com/fwojciec/opdoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexWriter_ImplementsInterface(t *testing.T) {
	t.Parallel()

	// Verify mock can be used where IndexWriter is expected
	var _ opdoc.IndexWriter = &mock.IndexWriter{}
}

func TestIndexWriter_WriteIndex(t *testing.T) {
	t.Parallel()

	t.Run("delegates to WriteIndexFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *opdoc.IndexedDocumentation
		w := &mock.IndexWriter{
			WriteIndexFn: func(doc *opdoc.IndexedDocumentation) error {
				calledWith = doc
				return nil
			},
		}

		doc := opdoc.NewIndexedDocumentation()
		doc.KeysToDoc["LDA"] = opdoc.KeywordInfo{Documentation: "Load accumulator.\n"}

		err := w.WriteIndex(doc)

		require.NoError(t, err)
		assert.Equal(t, doc, calledWith)
	})
}
