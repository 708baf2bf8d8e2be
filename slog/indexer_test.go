package slog_test

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/fwojciec/opdoc"
	"github.com/fwojciec/opdoc/mock"
	opslog "github.com/fwojciec/opdoc/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingIndexer_Index(t *testing.T) {
	t.Parallel()

	t.Run("logs keyword counts and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Indexer{
			IndexFn: func(r io.Reader) (*opdoc.IndexedDocumentation, error) {
				doc := opdoc.NewIndexedDocumentation()
				doc.KeysToDoc["BRL"] = opdoc.KeywordInfo{Documentation: "Branch always.\n"}
				doc.KeysWithSharedDoc["BRA"] = "BRL"
				doc.KeysWithSharedDoc["JMP.l"] = "BRL"
				return doc, nil
			},
		}

		indexer := opslog.NewLoggingIndexer(inner, logger)
		doc, err := indexer.Index(strings.NewReader(""))

		require.NoError(t, err)
		assert.Len(t, doc.KeysToDoc, 1)
		output := buf.String()
		assert.Contains(t, output, "index document")
		assert.Contains(t, output, "opcodes=1")
		assert.Contains(t, output, "aliases=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Indexer{
			IndexFn: func(r io.Reader) (*opdoc.IndexedDocumentation, error) {
				return nil, errors.New("malformed block")
			},
		}

		indexer := opslog.NewLoggingIndexer(inner, logger)
		_, err := indexer.Index(strings.NewReader(""))

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "opcodes=0")
		assert.Contains(t, output, "err=\"malformed block\"")
	})
}
