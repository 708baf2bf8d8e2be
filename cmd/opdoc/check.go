package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/opdoc"
	opjson "github.com/fwojciec/opdoc/json"
)

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	doc, err := c.build(deps)
	if err != nil {
		return err
	}

	want, err := opjson.Marshal(doc)
	if err != nil {
		return err
	}

	got, err := os.ReadFile(deps.OutputPath)
	if errors.Is(err, fs.ErrNotExist) {
		return opdoc.Errorf(opdoc.ECONFLICT, "no index at %s; run 'opdoc index'", deps.OutputPath)
	} else if err != nil {
		return opdoc.Errorf(opdoc.EINTERNAL, "could not read index at %s: %s", deps.OutputPath, err)
	}

	wantHash, gotHash := xxhash.Sum64(want), xxhash.Sum64(got)
	deps.Logger.Info("compare index",
		"path", deps.OutputPath,
		"want", fmt.Sprintf("%x", wantHash),
		"got", fmt.Sprintf("%x", gotHash),
	)
	if wantHash != gotHash {
		return opdoc.Errorf(opdoc.ECONFLICT, "index at %s is out of date; run 'opdoc index'", deps.OutputPath)
	}

	fmt.Fprintf(deps.Stdout, "Index at %s is up to date\n", deps.OutputPath)
	return nil
}
