package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/opdoc"
	"github.com/mattn/go-isatty"
)

const (
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
	ansiReset = "\x1b[0m"
)

// Terminal is implemented by writers that know whether they render ANSI
// colors.
type Terminal interface {
	IsTerminal() bool
}

func isTerminal(w io.Writer) bool {
	switch w := w.(type) {
	case Terminal:
		return w.IsTerminal()
	case *os.File:
		return isatty.IsTerminal(w.Fd()) || isatty.IsCygwinTerminal(w.Fd())
	}
	return false
}

// colorize wraps s in an ANSI color when w is a terminal.
func colorize(w io.Writer, color, s string) string {
	if !isTerminal(w) {
		return s
	}
	return color + s + ansiReset
}

// ReportError writes err to w behind an ERROR tag.
func ReportError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %s\n", colorize(w, ansiRed, "ERROR"), opdoc.ErrorMessage(err))
}
