package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"syncboard/internal/app/server/api"
	"syncboard/internal/config"
	"syncboard/internal/domain/identity"
	"syncboard/internal/infrastructure/migration"
	"syncboard/internal/infrastructure/storage/postgres"

	"golang.org/x/exp/slog"
)

const shutdownTimeout = 10 * time.Second

// Run starts the HTTP server and blocks until SIGINT/SIGTERM or a
// listener failure.
func Run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	storage, err := postgres.New(cfg, migration.DefaultEngine)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}
	defer storage.Close()

	creds, err := identity.LoadUsersFile(cfg.Auth.UsersFile)
	if err != nil {
		return fmt.Errorf("load users file %s: %w", cfg.Auth.UsersFile, err)
	}
	users := identity.NewStaticProvider(creds)

	srv := &http.Server{
		Addr:    cfg.Server.RunAddress,
		Handler: api.New(cfg, storage, users, log),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "address", cfg.Server.RunAddress)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
