package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/gophsave/internal/client/storage"
)

const (
	keyLastFlushTimestamp = "last_flush_timestamp"
)

// SaveLastFlushTimestamp saves the unix time of the last local save flush
func (s *Storage) SaveLastFlushTimestamp(ctx context.Context, timestamp int64) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		// Конвертируем int64 в bytes
		timestampBytes := make([]byte, 8)
		binary.BigEndian.PutUint64(timestampBytes, uint64(timestamp))

		if err := bucket.Put([]byte(keyLastFlushTimestamp), timestampBytes); err != nil {
			return fmt.Errorf("failed to save last flush timestamp: %w", err)
		}

		return nil
	})
}

// GetLastFlushTimestamp retrieves the unix time of the last local save flush
// Returns 0 if nothing has been flushed yet
func (s *Storage) GetLastFlushTimestamp(ctx context.Context) (int64, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var timestamp int64

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		timestampBytes := bucket.Get([]byte(keyLastFlushTimestamp))
		if timestampBytes == nil {
			// Ещё ни одного сохранения
			timestamp = 0
			return nil
		}

		timestamp = int64(binary.BigEndian.Uint64(timestampBytes))
		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("failed to get last flush timestamp: %w", err)
	}

	return timestamp, nil
}
