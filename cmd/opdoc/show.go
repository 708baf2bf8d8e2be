package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/opdoc"
	opjson "github.com/fwojciec/opdoc/json"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	f, err := os.Open(deps.OutputPath)
	if err != nil {
		return opdoc.Errorf(opdoc.EINTERNAL, "could not open index at %s. Run 'opdoc index' first.", deps.OutputPath)
	}
	defer f.Close()

	doc, err := opjson.ReadIndex(f)
	if err != nil {
		return err
	}

	canonical, info, ok := doc.Lookup(c.Keyword)
	if !ok {
		return opdoc.Errorf(opdoc.ENOTFOUND, "keyword %q not found", c.Keyword)
	}

	header := canonical
	if canonical != c.Keyword {
		header = c.Keyword + " (see " + canonical + ")"
	}
	if info.SnippetType != "" {
		header += " [" + info.SnippetType + "]"
	}

	fmt.Fprintln(deps.Stdout, header)
	fmt.Fprint(deps.Stdout, info.Documentation)
	return nil
}
