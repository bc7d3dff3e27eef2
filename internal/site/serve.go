package site

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/travisdwitt/oakview/internal/config"
)

const shutdownTimeout = 10 * time.Second

// ListenAndServe serves the preview on cfg.Serve.Port until ctx is done, then
// shuts down gracefully.
func ListenAndServe(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	ln, err := net.Listen("tcp", ":"+cfg.Serve.Port)
	if err != nil {
		return fmt.Errorf("listen on port %s: %w", cfg.Serve.Port, err)
	}
	return Serve(ctx, ln, cfg, log)
}

// Serve is ListenAndServe on an existing listener.
func Serve(ctx context.Context, ln net.Listener, cfg *config.Config, log *slog.Logger) error {
	srv := NewServer(cfg, log)
	httpServer := &http.Server{
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		srv.log.Info("starting preview", "addr", ln.Addr().String())
		errCh <- httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	srv.log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
