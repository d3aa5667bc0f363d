package storage

import (
	"context"

	"github.com/iudanet/gophsave/internal/models"
)

//go:generate moq -out slot_mock.go . SlotStorage

// SlotStorage defines interface for cloud save slots
type SlotStorage interface {
	// SaveSlot inserts or replaces the slot content of an account
	SaveSlot(ctx context.Context, slot *models.SaveSlot) error

	// GetSlot retrieves slot content
	// Returns ErrSlotNotFound if nothing was saved there yet
	GetSlot(ctx context.Context, accountID string, slot int) (*models.SaveSlot, error)

	// ListSlots returns all slots of an account ordered by slot number
	ListSlots(ctx context.Context, accountID string) ([]*models.SaveSlot, error)
}
