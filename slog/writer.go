package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/opdoc"
)

// Ensure LoggingIndexWriter implements opdoc.IndexWriter.
var _ opdoc.IndexWriter = (*LoggingIndexWriter)(nil)

// LoggingIndexWriter wraps an IndexWriter with debug logging.
type LoggingIndexWriter struct {
	next   opdoc.IndexWriter
	path   string
	logger *slog.Logger
}

// NewLoggingIndexWriter creates a new LoggingIndexWriter. The path is only
// used as a log attribute.
func NewLoggingIndexWriter(next opdoc.IndexWriter, path string, logger *slog.Logger) *LoggingIndexWriter {
	return &LoggingIndexWriter{next: next, path: path, logger: logger}
}

// WriteIndex delegates to the wrapped writer and logs the operation.
func (w *LoggingIndexWriter) WriteIndex(doc *opdoc.IndexedDocumentation) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write index",
			"path", w.path,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteIndex(doc)
}
