package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/gophsave/internal/client/storage"
	"github.com/iudanet/gophsave/internal/models"
)

// keySave единственный ключ, под которым лежит сохранение
var keySave = []byte("data")

// LoadSave returns the cached save blob
func (s *Storage) LoadSave(ctx context.Context) (models.SaveBlob, error) {
	if s.db == nil {
		return "", storage.ErrStorageClosed
	}

	var blob models.SaveBlob

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSaves)
		if bucket == nil {
			return fmt.Errorf("saves bucket not found")
		}

		data := bucket.Get(keySave)
		if data == nil {
			return storage.ErrSaveNotFound
		}

		// Get возвращает срез, валидный только внутри транзакции
		blob = models.SaveBlob(string(data))
		return nil
	})
	if err != nil {
		return "", err
	}

	return blob, nil
}

// StoreSave overwrites the cached save blob
func (s *Storage) StoreSave(ctx context.Context, blob models.SaveBlob) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSaves)
		if bucket == nil {
			return fmt.Errorf("saves bucket not found")
		}

		if err := bucket.Put(keySave, []byte(blob)); err != nil {
			return fmt.Errorf("failed to save data: %w", err)
		}

		return nil
	})
}
