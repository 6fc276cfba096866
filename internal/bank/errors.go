package bank

import "fmt"

// FormatError describes a malformed question record. Index is the record's
// zero-based position in the bank document, Field names the offending field.
type FormatError struct {
	Index  int
	Field  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("question %d: field %q: %s", e.Index, e.Field, e.Reason)
}

// SchemaError indicates the bank document itself is not valid, before any
// per-record check runs (broken JSON or a shape the schema rejects).
type SchemaError struct {
	Err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("invalid question bank: %v", e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }
