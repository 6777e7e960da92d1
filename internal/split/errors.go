package split

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidIdentifier is for record identifiers that can't be used as a file name
	ErrInvalidIdentifier = errors.New("invalid record identifier")

	// ErrDuplicateIdentifier is for identifiers seen earlier in the same run
	ErrDuplicateIdentifier = errors.New("duplicate record identifier")
)

// InputNotFoundError is returned when an input FASTA file is missing or unreadable
type InputNotFoundError struct {
	Path string
	Err  error
}

func (e *InputNotFoundError) Error() string {
	return fmt.Sprintf("failed to open input %s: %v", e.Path, e.Err)
}

func (e *InputNotFoundError) Unwrap() error { return e.Err }

// ParseError is returned when the input doesn't conform to the FASTA format.
// Record is the number of records read successfully before the failure
type ParseError struct {
	Path   string
	Record int
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s after %d record(s): %v", e.Path, e.Record, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// OutputWriteError is returned when a record's file can't be written. ID is
// empty for errors about the output directory itself
type OutputWriteError struct {
	Path string
	ID   string
	Err  error
}

func (e *OutputWriteError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("failed to write to %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("failed to write record %q to %s: %v", e.ID, e.Path, e.Err)
}

func (e *OutputWriteError) Unwrap() error { return e.Err }
