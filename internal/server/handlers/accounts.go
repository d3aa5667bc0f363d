package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/gophsave/internal/models"
	"github.com/iudanet/gophsave/internal/server/storage"
	"github.com/iudanet/gophsave/internal/validation"
)

// IssuedToken токен доступа, выданный аккаунту
type IssuedToken struct {
	Account   *models.Account
	Token     string
	ExpiresIn int64
	Created   bool
}

// IssueAccountToken finds the account by name, creating it on first use,
// and signs an access token for it.
func IssueAccountToken(ctx context.Context, accounts storage.AccountStorage, cfg JWTConfig, name string) (*IssuedToken, error) {
	if err := validation.ValidateAccountName(name); err != nil {
		return nil, err
	}

	created := false
	account, err := accounts.GetAccountByName(ctx, name)
	if errors.Is(err, storage.ErrAccountNotFound) {
		account = &models.Account{
			ID:        uuid.New().String(),
			Name:      name,
			CreatedAt: time.Now().UTC(),
		}
		err = accounts.CreateAccount(ctx, account)
		created = err == nil
		// Аккаунт мог появиться между чтением и вставкой
		if errors.Is(err, storage.ErrAccountAlreadyExists) {
			account, err = accounts.GetAccountByName(ctx, name)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve account %q: %w", name, err)
	}

	token, expiresIn, err := GenerateAccessToken(cfg, account.ID, account.Name)
	if err != nil {
		return nil, err
	}

	return &IssuedToken{
		Account:   account,
		Token:     token,
		ExpiresIn: expiresIn,
		Created:   created,
	}, nil
}
