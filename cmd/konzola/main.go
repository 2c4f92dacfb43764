package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/erazemk/konzola/internal/backend"
	"github.com/erazemk/konzola/internal/config"
	"github.com/erazemk/konzola/internal/logger"
	"github.com/erazemk/konzola/internal/state"
	"github.com/erazemk/konzola/internal/storage"
	"github.com/erazemk/konzola/internal/web"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: loading config: %v\n", err)
		os.Exit(1)
	}

	slog.SetDefault(logger.New(cfg.App.Env))

	if err := run(cfg); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	defer store.Close()
	slog.Info("storage ready", "path", cfg.Storage.Path)

	ctx := context.Background()

	// The session signing secret is generated once and kept in storage, so
	// cookies survive restarts.
	jwtSecret, err := store.SessionSecret(ctx, func() (string, error) {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		return hex.EncodeToString(buf), nil
	})
	if err != nil {
		return fmt.Errorf("loading session secret: %w", err)
	}

	client := backend.New(cfg.Backend.BaseURL)
	slog.Info("inventory service configured", "base_url", cfg.Backend.BaseURL)

	// Restore persisted client state: theme preference and the signed-in
	// user, when they survived the last run.
	themeMode, _, err := store.Get(ctx, storage.KeyTheme)
	if err != nil {
		return fmt.Errorf("restoring theme: %w", err)
	}
	theme := state.NewThemeStore(themeMode)

	session := state.NewSessionStore(store)
	if err := session.Restore(ctx); err != nil {
		return fmt.Errorf("restoring session: %w", err)
	}
	if snapshot := session.Snapshot(); snapshot.User != nil {
		slog.Info("session restored", "email", snapshot.User.Email)
	}

	router, err := web.NewRouter(web.Deps{
		Backend:        client,
		Storage:        store,
		Session:        session,
		Theme:          theme,
		Filters:        state.NewFilterStore(),
		JWTSecret:      jwtSecret,
		MetricsEnabled: cfg.Metrics.Enabled,
	})
	if err != nil {
		return fmt.Errorf("setting up router: %w", err)
	}

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("console listening", "addr", cfg.HTTP.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		slog.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
