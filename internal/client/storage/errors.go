package storage

import "errors"

// Common client storage errors
var (
	// ErrSaveNotFound indicates that no save is cached locally
	ErrSaveNotFound = errors.New("local save not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
