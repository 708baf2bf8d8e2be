package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/opdoc"
	opjson "github.com/fwojciec/opdoc/json"
	"github.com/fwojciec/opdoc/parse"
	opslog "github.com/fwojciec/opdoc/slog"
)

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	doc, err := c.build(deps)
	if err != nil {
		return err
	}

	writer := opslog.NewLoggingIndexWriter(opjson.NewWriter(deps.OutputPath), deps.OutputPath, deps.Logger)
	if err := writer.WriteIndex(doc); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s%s\n", colorize(deps.Stdout, ansiGreen, "Successfully wrote JSON to "), deps.OutputPath)
	return nil
}

// build parses the documentation file, annotating keywords when a snippet
// type file is configured.
func (s *Sources) build(deps *Dependencies) (*opdoc.IndexedDocumentation, error) {
	var opts []parse.Option
	if s.SnippetTypes != "" {
		types, err := loadSnippetTypes(s.SnippetTypes)
		if err != nil {
			return nil, err
		}
		deps.Logger.Info("snippet types loaded", "path", s.SnippetTypes, "keywords", types.Len())
		opts = append(opts, parse.WithClassifier(types))
	}

	f, err := os.Open(s.Doc)
	if err != nil {
		return nil, opdoc.Errorf(opdoc.EINTERNAL, "could not open opcode documentation file %s: %s", s.Doc, err)
	}
	defer f.Close()

	indexer := opslog.NewLoggingIndexer(parse.NewParser(opts...), deps.Logger)
	return indexer.Index(f)
}

func loadSnippetTypes(path string) (*opdoc.SnippetTypes, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, opdoc.Errorf(opdoc.EINTERNAL, "could not open snippet type file %s: %s", path, err)
	}
	defer f.Close()

	return opjson.LoadSnippetTypes(f)
}
