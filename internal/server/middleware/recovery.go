package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
)

// RecoveryMiddleware создает middleware для восстановления после паники.
// Перехватывает panic, логирует стек вызовов и отвечает 500, если ответ
// еще не начат. После WebSocket upgrade соединение просто закрывается.
// http.ErrAbortHandler пробрасывается дальше серверу.
func RecoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// statusCode 0 значит, что обработчик еще ничего не отправил
			tracked := &responseWriter{ResponseWriter: w}

			defer func() {
				err := recover()
				if err == nil {
					return
				}
				if e, ok := err.(error); ok && errors.Is(e, http.ErrAbortHandler) {
					panic(err)
				}

				// Логируем критическую ошибку со стеком
				logger.Error("Panic recovered",
					"error", err,
					"method", r.Method,
					"path", r.URL.Path,
					"remote_addr", r.RemoteAddr,
					"committed", tracked.committed(),
					"stack", string(debug.Stack()),
				)

				if tracked.committed() {
					return
				}

				// Возвращаем generic ошибку клиенту (не раскрываем детали)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"error":"internal server error"}`))
			}()

			// Передаем управление следующему обработчику
			next.ServeHTTP(tracked, r)
		})
	}
}
