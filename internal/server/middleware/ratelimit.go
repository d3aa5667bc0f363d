package middleware

import (
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// RateLimiter ограничивает число подключений к каналу сохранений с одного адреса
// за фиксированное окно. Неактивные окна периодически вычищаются фоновой горутиной.
type RateLimiter struct {
	now      func() time.Time
	windows  map[string]*rateWindow
	logger   *slog.Logger
	done     chan struct{}
	limit    int
	window   time.Duration
	mu       sync.Mutex
	stopOnce sync.Once
}

// rateWindow хранит остаток попыток для одного ключа в текущем окне.
type rateWindow struct {
	startedAt time.Time
	remaining int
}

// NewRateLimiter создает лимитер на limit запросов за window.
func NewRateLimiter(limit int, window time.Duration, logger *slog.Logger) *RateLimiter {
	rl := &RateLimiter{
		now:     time.Now,
		windows: make(map[string]*rateWindow),
		logger:  logger,
		done:    make(chan struct{}),
		limit:   limit,
		window:  window,
	}

	go rl.sweepLoop()

	return rl
}

func (rl *RateLimiter) sweepLoop() {
	ticker := time.NewTicker(rl.window * 2)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.sweep()
		case <-rl.done:
			return
		}
	}
}

// sweep удаляет окна, к которым не обращались дольше двух периодов.
func (rl *RateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, w := range rl.windows {
		if now.Sub(w.startedAt) > rl.window*2 {
			delete(rl.windows, key)
		}
	}
}

// Stop останавливает фоновую очистку. Повторный вызов безопасен.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.done) })
}

// Allow списывает попытку для key и сообщает, уложился ли он в лимит.
func (rl *RateLimiter) Allow(key string) bool {
	ok, _ := rl.take(key)
	return ok
}

// take возвращает результат попытки и время до начала следующего окна при отказе.
func (rl *RateLimiter) take(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	w, ok := rl.windows[key]
	if !ok || now.Sub(w.startedAt) >= rl.window {
		w = &rateWindow{startedAt: now, remaining: rl.limit}
		rl.windows[key] = w
	}

	if w.remaining == 0 {
		return false, w.startedAt.Add(rl.window).Sub(now)
	}
	w.remaining--
	return true, 0
}

// RateLimitMiddleware отклоняет запросы сверх лимита с 429 и заголовком Retry-After.
// Лимитер живёт дольше middleware, вызывающий останавливает его через Stop.
func RateLimitMiddleware(limiter *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := getClientIP(r)

			allowed, wait := limiter.take(ip)
			if !allowed {
				limiter.logger.Warn("Rate limit exceeded",
					"ip", ip,
					"method", r.Method,
					"path", r.URL.Path,
					"retry_after", wait,
				)

				seconds := int(math.Ceil(wait.Seconds()))
				w.Header().Set("Retry-After", strconv.Itoa(max(seconds, 1)))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error":"rate limit exceeded, please try again later"}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// getClientIP определяет адрес клиента с учётом прокси (X-Forwarded-For, X-Real-IP).
// Порт отбрасывается: переподключения идут с новых портов.
func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
