package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/gophsave/internal/server/handlers"
	"github.com/iudanet/gophsave/internal/server/storage"
)

// tokenQueryParam query-параметр с токеном для браузерных WebSocket клиентов,
// которые не умеют ставить заголовок Authorization
const tokenQueryParam = "token"

// AccountMiddleware создает middleware, который определяет аккаунт по JWT.
// Запрос без токена проходит дальше без аккаунта, плохой токен получает 401.
func AccountMiddleware(logger *slog.Logger, jwtConfig handlers.JWTConfig, accounts storage.AccountStorage) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := extractToken(r)
			if !ok {
				logger.Warn("Invalid Authorization header format")
				http.Error(w, "Unauthorized: invalid token format", http.StatusUnauthorized)
				return
			}
			if tokenString == "" {
				// Аккаунта нет, платформа ответит no_account
				next.ServeHTTP(w, r)
				return
			}

			// Валидируем токен
			claims, err := handlers.ValidateAccessToken(jwtConfig, tokenString)
			if err != nil {
				logger.Warn("Invalid access token", "error", err)
				http.Error(w, "Unauthorized: invalid token", http.StatusUnauthorized)
				return
			}

			account, err := accounts.GetAccountByID(r.Context(), claims.AccountID)
			if err != nil {
				if errors.Is(err, storage.ErrAccountNotFound) {
					logger.Warn("Token for unknown account", "account_id", claims.AccountID)
					http.Error(w, "Unauthorized: unknown account", http.StatusUnauthorized)
					return
				}
				logger.Error("Failed to resolve account", "account_id", claims.AccountID, "error", err)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}

			logger.Debug("Account resolved", "account_id", account.ID, "account_name", account.Name)

			// Передаем запрос дальше с обновленным контекстом
			next.ServeHTTP(w, r.WithContext(handlers.WithAccount(r.Context(), account.ID, account.Name)))
		})
	}
}

// extractToken достает токен из заголовка "Bearer <token>" или из query.
// Пустая строка без ошибки означает, что токен не передан.
func extractToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return r.URL.Query().Get(tokenQueryParam), true
	}

	// Ожидаем формат: "Bearer <token>"
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
