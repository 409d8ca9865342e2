package phasespace

import "errors"

// Domain errors for table construction and parsing.
var (
	// ErrEmpty indicates a table with no rows where at least one is required.
	ErrEmpty = errors.New("phasespace: table has no rows")

	// ErrShape indicates ragged rows or a label/column count mismatch.
	ErrShape = errors.New("phasespace: inconsistent table shape")

	// ErrParse indicates malformed tabular input.
	ErrParse = errors.New("phasespace: malformed tabular data")

	// ErrNoColumn indicates a lookup of a column label the table does not have.
	ErrNoColumn = errors.New("phasespace: no such column")
)
