package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/iudanet/gophsave/internal/models"
	"github.com/iudanet/gophsave/internal/server/storage"
)

// CreateAccount creates a new account in the storage
func (s *Storage) CreateAccount(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO accounts (id, name, created_at)
		VALUES (?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query, account.ID, account.Name, account.CreatedAt)
	if err != nil {
		// Проверяем на duplicate name
		if strings.Contains(err.Error(), "UNIQUE constraint failed: accounts.name") {
			return storage.ErrAccountAlreadyExists
		}
		return fmt.Errorf("failed to insert account: %w", err)
	}

	return nil
}

// GetAccountByName retrieves account by name
func (s *Storage) GetAccountByName(ctx context.Context, name string) (*models.Account, error) {
	return s.getAccount(ctx, `SELECT id, name, created_at FROM accounts WHERE name = ?`, name)
}

// GetAccountByID retrieves account by ID
func (s *Storage) GetAccountByID(ctx context.Context, id string) (*models.Account, error) {
	return s.getAccount(ctx, `SELECT id, name, created_at FROM accounts WHERE id = ?`, id)
}

func (s *Storage) getAccount(ctx context.Context, query string, arg string) (*models.Account, error) {
	account := &models.Account{}

	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&account.ID,
		&account.Name,
		&account.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return account, nil
}
