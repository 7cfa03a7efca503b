package lookup

import (
	"errors"
	"io/fs"
)

var (
	// ErrFileNotFound indicates the index path passed to LoadFrom does not exist.
	ErrFileNotFound = errors.New("index file not found")

	// ErrDisposed indicates a query against a store that has been closed.
	ErrDisposed = errors.New("source store has been disposed")
)

// notFoundError wraps ErrFileNotFound and fs.ErrNotExist so callers can
// match either.
type notFoundError struct {
	path string
}

func (e *notFoundError) Error() string {
	return ErrFileNotFound.Error() + ": " + e.path
}

func (e *notFoundError) Is(target error) bool {
	return target == ErrFileNotFound || target == fs.ErrNotExist
}
