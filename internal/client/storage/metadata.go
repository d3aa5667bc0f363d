package storage

import "context"

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines interface for storing client metadata
type MetadataStorage interface {
	// SaveLastFlushTimestamp saves the unix time of the last local save flush
	SaveLastFlushTimestamp(ctx context.Context, timestamp int64) error

	// GetLastFlushTimestamp retrieves the unix time of the last local save flush
	// Returns 0 if nothing has been flushed yet
	GetLastFlushTimestamp(ctx context.Context) (int64, error)
}
