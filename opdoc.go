// Package opdoc builds a keyword index from processor opcode documentation.
// It reads a line-oriented document of opcode blocks and produces a JSON
// index that editor integrations use for hover documentation and
// autocompletion.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., json/, slog/).
package opdoc
