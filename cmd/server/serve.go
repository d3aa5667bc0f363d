package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/iudanet/gophsave/internal/server/handlers"
	"github.com/iudanet/gophsave/internal/server/middleware"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 10 * time.Second
	healthPath        = "/api/v1/health"
	wsPath            = "/api/v1/ws"
)

// serve запускает HTTP сервер и останавливает его по отмене ctx
func (o *serverOptions) serve(ctx context.Context, env *environment) error {
	router, stop := newRouter(env, o.version.Version)
	defer stop()

	srv := &http.Server{
		Addr:              env.cfg.Listen,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
		// WebSocket соединения живут в контексте запроса и закрываются вместе с ctx
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		env.logger.Info("Server starting", "listen", env.cfg.Listen, "version", o.version.Version)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	env.logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}

// newRouter собирает маршруты и middleware. stop освобождает rate limiter.
func newRouter(env *environment, version string) (http.Handler, func()) {
	logger := env.logger

	health := handlers.NewHealthHandler(logger, env.store, version)
	slots := handlers.NewSlotHandler(logger, env.store, handlers.OriginPatterns(env.cfg.Origin))

	var ws http.Handler = http.HandlerFunc(slots.HandleWebSocket)
	ws = middleware.AccountMiddleware(logger, env.jwtConfig(), env.store)(ws)

	stop := func() {}
	if env.cfg.RateRequests > 0 {
		limiter := middleware.NewRateLimiter(env.cfg.RateRequests, env.cfg.RateWindow, logger)
		ws = middleware.RateLimitMiddleware(limiter)(ws)
		stop = limiter.Stop
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET "+healthPath, health.Health)
	mux.Handle("GET "+wsPath, ws)

	var handler http.Handler = mux
	handler = middleware.LoggingWithSkip(logger, []string{healthPath})(handler)
	handler = middleware.RecoveryMiddleware(logger)(handler)

	return handler, stop
}
