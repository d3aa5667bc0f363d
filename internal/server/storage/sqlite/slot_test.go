package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophsave/internal/models"
	"github.com/iudanet/gophsave/internal/server/storage"
)

func TestSlotStorage_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	accountID := createTestAccount(t, ctx, s)

	tests := []struct {
		name string
		slot *models.SaveSlot
	}{
		{
			name: "first save",
			slot: &models.SaveSlot{
				AccountID: accountID,
				Slot:      0,
				Label:     "Cloud Save",
				Data:      "1,2,3",
				UpdatedAt: time.Now().UTC(),
			},
		},
		{
			name: "overwrite same slot",
			slot: &models.SaveSlot{
				AccountID: accountID,
				Slot:      0,
				Label:     "Renamed",
				Data:      "4,5,6",
				UpdatedAt: time.Now().UTC().Add(time.Minute),
			},
		},
		{
			name: "empty blob is stored as is",
			slot: &models.SaveSlot{
				AccountID: accountID,
				Slot:      1,
				Data:      "",
				UpdatedAt: time.Now().UTC(),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, s.SaveSlot(ctx, tt.slot))

			got, err := s.GetSlot(ctx, tt.slot.AccountID, tt.slot.Slot)
			require.NoError(t, err)
			assert.Equal(t, tt.slot.Data, got.Data)
			assert.Equal(t, tt.slot.Label, got.Label)
			assert.Equal(t, tt.slot.Slot, got.Slot)
			assert.WithinDuration(t, tt.slot.UpdatedAt, got.UpdatedAt, time.Second)
		})
	}
}

func TestSlotStorage_GetSlot_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	accountID := createTestAccount(t, ctx, s)

	slot, err := s.GetSlot(ctx, accountID, 0)
	assert.ErrorIs(t, err, storage.ErrSlotNotFound)
	assert.Nil(t, slot)
}

func TestSlotStorage_SlotsAreIsolatedPerAccount(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	alice := createTestAccount(t, ctx, s)
	bob := createTestAccount(t, ctx, s)

	require.NoError(t, s.SaveSlot(ctx, &models.SaveSlot{
		AccountID: alice, Slot: 0, Data: "1", UpdatedAt: time.Now(),
	}))

	_, err := s.GetSlot(ctx, bob, 0)
	assert.ErrorIs(t, err, storage.ErrSlotNotFound)
}

func TestSlotStorage_SaveSlot_UnknownAccount(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	err := s.SaveSlot(ctx, &models.SaveSlot{
		AccountID: uuid.New().String(), Slot: 0, Data: "1", UpdatedAt: time.Now(),
	})
	assert.Error(t, err)
}

func TestSlotStorage_ListSlots(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	accountID := createTestAccount(t, ctx, s)

	for _, n := range []int{2, 0, 1} {
		require.NoError(t, s.SaveSlot(ctx, &models.SaveSlot{
			AccountID: accountID,
			Slot:      n,
			Data:      models.JoinFields([]string{"1", "2"}),
			UpdatedAt: time.Now(),
		}))
	}

	slots, err := s.ListSlots(ctx, accountID)
	require.NoError(t, err)
	require.Len(t, slots, 3)
	for i, slot := range slots {
		assert.Equal(t, i, slot.Slot)
	}

	empty, err := s.ListSlots(ctx, createTestAccount(t, ctx, s))
	require.NoError(t, err)
	assert.Empty(t, empty)
}
