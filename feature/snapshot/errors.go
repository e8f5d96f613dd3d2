package snapshot

import (
	"fmt"
	"strings"
)

// SchemaError reports a non-identifier column whose name does not parse
// as a calendar date. It aborts the merge of the offending snapshot
// before any write.
type SchemaError struct {
	// File is the snapshot identifier.
	File string
	// Column is the offending column name.
	Column string
	// Err is the underlying parse failure.
	Err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("snapshot %s: column %q is not a date: %v", e.File, e.Column, e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// MissingIdentifierError reports absent categorical identifier columns.
type MissingIdentifierError struct {
	// File is the snapshot identifier.
	File string
	// Missing lists the identifier columns not found in the header.
	Missing []string
}

func (e *MissingIdentifierError) Error() string {
	return fmt.Sprintf("snapshot %s: missing identifier columns: %s",
		e.File, strings.Join(e.Missing, ", "))
}
