package storage

import (
	"context"

	"github.com/iudanet/gophsave/internal/models"
)

//go:generate moq -out savestorage_mock.go . SaveStorage

// SaveStorage is the local save cache.
// One blob under a single well-known key, no expiry, last write wins.
type SaveStorage interface {
	// LoadSave returns the cached blob
	// Returns ErrSaveNotFound if nothing is cached
	LoadSave(ctx context.Context) (models.SaveBlob, error)

	// StoreSave overwrites the cached blob
	StoreSave(ctx context.Context, blob models.SaveBlob) error
}
