package handlers

import "context"

// contextKey тип для ключей контекста
type contextKey string

const (
	// AccountIDKey ключ для хранения account_id в контексте
	AccountIDKey contextKey = "account_id"
	// AccountNameKey ключ для хранения имени аккаунта в контексте
	AccountNameKey contextKey = "account_name"
)

// WithAccount returns a copy of ctx carrying the resolved account
func WithAccount(ctx context.Context, accountID, name string) context.Context {
	ctx = context.WithValue(ctx, AccountIDKey, accountID)
	return context.WithValue(ctx, AccountNameKey, name)
}

// GetAccountID извлекает account_id из контекста запроса
func GetAccountID(ctx context.Context) (string, bool) {
	accountID, ok := ctx.Value(AccountIDKey).(string)
	return accountID, ok && accountID != ""
}

// GetAccountName извлекает имя аккаунта из контекста запроса
func GetAccountName(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(AccountNameKey).(string)
	return name, ok
}
