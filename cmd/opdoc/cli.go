package main

import (
	"context"
	"io"
	"log/slog"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	OutputPath string
	Logger     *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log indexing steps to stderr"`

	Index IndexCmd `cmd:"" default:"withargs" help:"Build the keyword index and write it to the configured output path"`
	Check CheckCmd `cmd:"" help:"Verify the written index matches the documentation sources"`
	Show  ShowCmd  `cmd:"" help:"Print the documentation indexed for a keyword"`
}

// Sources names the documentation inputs shared by index and check.
type Sources struct {
	Doc          string `short:"d" default:"65816-opcodes.md" help:"Opcode documentation file"`
	SnippetTypes string `short:"s" name:"snippet-types" help:"Snippet type JSON file; annotates every keyword when set"`
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct {
	Sources `embed:""`
}

// CheckCmd is the "check" subcommand.
type CheckCmd struct {
	Sources `embed:""`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Keyword string `arg:"" help:"Opcode keyword"`
}
