package types

import (
	"errors"
	"fmt"
)

// Catalog errors.
var (
	ErrDuplicateID       = errors.New("food ID already exists")
	ErrFoodNotFound      = errors.New("food not found")
	ErrCyclicComposition = errors.New("composite food contains itself")
	ErrInvalidFood       = errors.New("invalid food")
	ErrWrongKind         = errors.New("wrong food kind")
	ErrClosed            = errors.New("store is closed")
)

// Ledger errors.
var (
	ErrInvalidDate     = errors.New("invalid date, expected DD-MM-YYYY")
	ErrIndexOutOfRange = errors.New("entry index out of range")
	ErrNothingToUndo   = errors.New("nothing to undo")
)

// Persisted data errors.
var (
	ErrMalformedLine = errors.New("malformed line")
)

// ParseError describes a single persisted line that could not be loaded.
// Loaders report it and continue with the next line.
type ParseError struct {
	File string // Path of the file being loaded.
	Line int    // 1-based line number.
	Text string // The offending line.
	Err  error  // Underlying cause, usually one of the sentinel errors.
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
