// Package slog provides log/slog decorators for opdoc services.
package slog

import (
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/opdoc"
)

// Ensure LoggingIndexer implements opdoc.Indexer.
var _ opdoc.Indexer = (*LoggingIndexer)(nil)

// LoggingIndexer wraps an Indexer with debug logging.
type LoggingIndexer struct {
	next   opdoc.Indexer
	logger *slog.Logger
}

// NewLoggingIndexer creates a new LoggingIndexer.
func NewLoggingIndexer(next opdoc.Indexer, logger *slog.Logger) *LoggingIndexer {
	return &LoggingIndexer{next: next, logger: logger}
}

// Index delegates to the wrapped indexer and logs the keyword counts.
func (i *LoggingIndexer) Index(r io.Reader) (doc *opdoc.IndexedDocumentation, err error) {
	defer func(begin time.Time) {
		var opcodes, aliases int
		if doc != nil {
			opcodes, aliases = len(doc.KeysToDoc), len(doc.KeysWithSharedDoc)
		}
		i.logger.Info("index document",
			"opcodes", opcodes,
			"aliases", aliases,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return i.next.Index(r)
}
