package boltdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/gophsave/internal/client/storage"
	"github.com/iudanet/gophsave/internal/models"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	store, err := New(context.Background(), filepath.Join(t.TempDir(), "save_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func TestLoadSave_NotFound(t *testing.T) {
	store := newTestStorage(t)

	_, err := store.LoadSave(context.Background())
	assert.ErrorIs(t, err, storage.ErrSaveNotFound)
}

func TestStoreAndLoadSave(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	require.NoError(t, store.StoreSave(ctx, "1,2,3"))

	blob, err := store.LoadSave(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SaveBlob("1,2,3"), blob)

	// Последняя запись побеждает
	require.NoError(t, store.StoreSave(ctx, "9,9"))
	blob, err = store.LoadSave(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SaveBlob("9,9"), blob)
}

func TestStoreSave_EmptyBlob(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	require.NoError(t, store.StoreSave(ctx, ""))

	// Пустое значение хранится, а не считается отсутствующим
	blob, err := store.LoadSave(ctx)
	require.NoError(t, err)
	assert.True(t, blob.IsEmpty())
}

func TestSave_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "reopen.db")

	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.StoreSave(ctx, "4,5,6"))
	require.NoError(t, store.Close())

	reopened, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, reopened.Close())
	}()

	blob, err := reopened.LoadSave(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SaveBlob("4,5,6"), blob)
}

func TestSave_ClosedStorage(t *testing.T) {
	ctx := context.Background()
	store, err := New(ctx, filepath.Join(t.TempDir(), "closed.db"))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	_, err = store.LoadSave(ctx)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
	assert.ErrorIs(t, store.StoreSave(ctx, "1"), storage.ErrStorageClosed)
}

func TestSave_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket(bucketSaves)
	})
	require.NoError(t, err)

	_, err = store.LoadSave(ctx)
	assert.ErrorContains(t, err, "saves bucket not found")
	assert.ErrorContains(t, store.StoreSave(ctx, "1"), "saves bucket not found")
}
