package storage

import (
	"context"

	"github.com/iudanet/gophsave/internal/models"
)

//go:generate moq -out account_mock.go . AccountStorage

// AccountStorage defines interface for account persistence
type AccountStorage interface {
	// CreateAccount creates a new account
	// Returns ErrAccountAlreadyExists if the name is taken
	CreateAccount(ctx context.Context, account *models.Account) error

	// GetAccountByName retrieves account by name
	// Returns ErrAccountNotFound if account doesn't exist
	GetAccountByName(ctx context.Context, name string) (*models.Account, error)

	// GetAccountByID retrieves account by ID
	// Returns ErrAccountNotFound if account doesn't exist
	GetAccountByID(ctx context.Context, id string) (*models.Account, error)
}
