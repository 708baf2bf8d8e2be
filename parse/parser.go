// Package parse reads opcode documentation blocks from the line-oriented
// source format:
//
//	{ADC}
//	{ADC.b}
//	{:}
//	Add with carry.
//	{.}
//
// Alias lines name the opcodes of a block, {:} starts the shared
// description and {.} ends it.
package parse

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/opdoc"
)

// Sentinel lines delimiting a description.
const (
	DescriptionStart = "{:}"
	DescriptionEnd   = "{.}"
)

// Ensure Parser implements opdoc.Indexer at compile time.
var _ opdoc.Indexer = (*Parser)(nil)

// Parser builds an opdoc.IndexedDocumentation from a documentation source.
type Parser struct {
	classifier opdoc.Classifier
}

// Option configures a Parser.
type Option func(*Parser)

// WithClassifier attaches a snippet type to every canonical keyword.
// Without a classifier the parser produces a plain index.
func WithClassifier(c opdoc.Classifier) Option {
	return func(p *Parser) {
		p.classifier = c
	}
}

// NewParser creates a new Parser.
func NewParser(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

type state int

const (
	stateOpcodes state = iota
	stateDescription
)

// block accumulates the block currently being read.
type block struct {
	state       state
	opcodes     []string
	description strings.Builder
}

// Index reads r to the end and returns the indexed documentation.
//
// Lines that are not valid UTF-8 are skipped. A read error ends the input as
// if the file ended there. A block still open at the end of input is dropped.
func (p *Parser) Index(r io.Reader) (*opdoc.IndexedDocumentation, error) {
	doc := opdoc.NewIndexedDocumentation()
	br := bufio.NewReader(r)

	var b block
	for lineNo := 1; ; lineNo++ {
		line, err := br.ReadString('\n')
		complete := err == nil || err == io.EOF
		if complete && line != "" && utf8.ValidString(line) {
			if ferr := p.feed(doc, &b, trimEOL(line), lineNo); ferr != nil {
				return nil, ferr
			}
		}
		if err != nil {
			// io.EOF, or an unreadable remainder which is treated as absent,
			// including the partial line read before the failure.
			break
		}
	}
	return doc, nil
}

func (p *Parser) feed(doc *opdoc.IndexedDocumentation, b *block, line string, lineNo int) error {
	switch b.state {
	case stateOpcodes:
		if line == DescriptionStart {
			b.state = stateDescription
		} else if opcode, ok := alias(line); ok {
			b.opcodes = append(b.opcodes, opcode)
		}
	case stateDescription:
		if line == DescriptionEnd {
			if err := p.finalize(doc, b, lineNo); err != nil {
				return err
			}
			b.state = stateOpcodes
		} else {
			b.description.WriteString(line)
			b.description.WriteByte('\n')
		}
	}
	return nil
}

// finalize commits the current block. The most recently read alias owns the
// documentation and the others share it.
func (p *Parser) finalize(doc *opdoc.IndexedDocumentation, b *block, lineNo int) error {
	if len(b.opcodes) == 0 {
		return opdoc.Errorf(opdoc.EINVALID, "no opcodes preceded the documentation block ending on line %d", lineNo)
	}
	last := len(b.opcodes) - 1
	canonical := b.opcodes[last]

	info := opdoc.KeywordInfo{Documentation: b.description.String()}
	if p.classifier != nil {
		snippetType, err := p.classifier.Classify(canonical)
		if err != nil {
			return err
		}
		info.SnippetType = snippetType
	}
	doc.KeysToDoc[canonical] = info
	delete(doc.KeysWithSharedDoc, canonical)

	for _, opcode := range b.opcodes[:last] {
		if opcode == canonical {
			continue
		}
		doc.KeysWithSharedDoc[opcode] = canonical
		if _, ok := doc.KeysToDoc[opcode]; !ok {
			continue
		}
		// A keyword demoted to an alias takes its own aliases with it.
		delete(doc.KeysToDoc, opcode)
		for shared, target := range doc.KeysWithSharedDoc {
			if target == opcode {
				doc.KeysWithSharedDoc[shared] = canonical
			}
		}
	}

	b.opcodes = b.opcodes[:0]
	b.description.Reset()
	return nil
}

// alias returns the name of an alias line of the form {name}.
func alias(line string) (string, bool) {
	if len(line) < 2 || line[0] != '{' || line[len(line)-1] != '}' {
		return "", false
	}
	return line[1 : len(line)-1], true
}

func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
