package logstore

import (
	"errors"
	"fmt"
)

// ErrInvalidTimeFormat flags an unparsable or inconsistent query time
// parameter. It is always reported before any partition is scanned.
var ErrInvalidTimeFormat = errors.New("invalid time format")

// ValidationError rejects a log entry before anything is written.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid log entry: %s %s", e.Field, e.Reason)
}

// StorageError wraps an I/O failure on a partition file or the partition
// directory.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("log storage: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
