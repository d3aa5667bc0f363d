package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/gophsave/internal/models"
	"github.com/iudanet/gophsave/internal/server/storage"
)

// SaveSlot inserts or replaces the slot content of an account
func (s *Storage) SaveSlot(ctx context.Context, slot *models.SaveSlot) error {
	query := `
		INSERT INTO save_slots (account_id, slot, label, data, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (account_id, slot) DO UPDATE SET
			label = excluded.label,
			data = excluded.data,
			updated_at = excluded.updated_at
	`

	_, err := s.db.ExecContext(ctx, query,
		slot.AccountID,
		slot.Slot,
		slot.Label,
		slot.Data.String(),
		slot.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save slot: %w", err)
	}

	return nil
}

// GetSlot retrieves slot content
func (s *Storage) GetSlot(ctx context.Context, accountID string, slot int) (*models.SaveSlot, error) {
	query := `
		SELECT account_id, slot, label, data, updated_at
		FROM save_slots
		WHERE account_id = ? AND slot = ?
	`

	result, err := scanSlot(s.db.QueryRowContext(ctx, query, accountID, slot))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrSlotNotFound
		}
		return nil, fmt.Errorf("failed to get slot: %w", err)
	}

	return result, nil
}

// ListSlots returns all slots of an account ordered by slot number
func (s *Storage) ListSlots(ctx context.Context, accountID string) ([]*models.SaveSlot, error) {
	query := `
		SELECT account_id, slot, label, data, updated_at
		FROM save_slots
		WHERE account_id = ?
		ORDER BY slot ASC
	`

	rows, err := s.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query slots: %w", err)
	}
	defer rows.Close()

	var slots []*models.SaveSlot
	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan slot: %w", err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return slots, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSlot(row scanner) (*models.SaveSlot, error) {
	var (
		slot models.SaveSlot
		data string
	)

	if err := row.Scan(&slot.AccountID, &slot.Slot, &slot.Label, &data, &slot.UpdatedAt); err != nil {
		return nil, err
	}
	slot.Data = models.SaveBlob(data)

	return &slot, nil
}
