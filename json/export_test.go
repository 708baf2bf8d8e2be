package json

// SetIndent replaces the encoder used by WriteIndex.
func (w *Writer) SetIndent(fn func(v any, prefix, indent string) ([]byte, error)) {
	w.indent = fn
}
