package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-adoption/internal/adapters/auth/static"
	localmedia "pet-adoption/internal/adapters/media/local"
	mem "pet-adoption/internal/adapters/storage/memory"
	pg "pet-adoption/internal/adapters/storage/postgres"
	sqlitestore "pet-adoption/internal/adapters/storage/sqlite"
	"pet-adoption/internal/config"
	"pet-adoption/internal/domain/adoptions"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/router"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	lg, err := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = lg.Sync() }()

	petRepo, adoptionRepo, closeDB, err := openStorage(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeDB(); err != nil {
			lg.Warn("close database", map[string]any{"error": err})
		}
	}()

	store, err := localmedia.NewStore(cfg.UploadDir, lg.With(map[string]any{"module": "media"}))
	if err != nil {
		return err
	}

	verifier, err := static.NewVerifier(static.Config{
		Username:     cfg.AdminUsername,
		Password:     cfg.AdminPassword,
		PasswordHash: cfg.AdminPasswordHash,
	})
	if err != nil {
		return fmt.Errorf("admin credentials: %w", err)
	}
	if cfg.IsProduction() && cfg.AdminPasswordHash == "" {
		lg.Warn("admin password configured in plain text", nil)
	}

	sessions := middleware.NewSessionManager(middleware.SessionOptions{
		Lifetime:     cfg.SessionLifetime,
		CookieSecure: cfg.SessionCookieSecure,
	})

	r := router.NewRouter(router.Options{
		Pets:           petRepo,
		Adoptions:      adoptionRepo,
		Media:          store,
		Verifier:       verifier,
		Sessions:       sessions,
		Logger:         lg,
		MaxUploadBytes: cfg.MaxUploadBytes,
	})

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		lg.Info("starting server", map[string]any{
			"addr":       cfg.ListenAddr,
			"db_backend": cfg.DBBackend,
			"upload_dir": cfg.UploadDir,
			"env":        cfg.Environment,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	lg.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openStorage elige el backend según DB_BACKEND.
func openStorage(cfg *config.Config) (pets.Repository, adoptions.Repository, func() error, error) {
	noop := func() error { return nil }

	switch cfg.DBBackend {
	case config.BackendMemory:
		db := mem.New()
		return mem.NewPetRepo(db), mem.NewAdoptionRepo(db), noop, nil

	case config.BackendPostgres:
		db, err := pg.Open(cfg.DBDSN)
		if err != nil {
			return nil, nil, noop, fmt.Errorf("open postgres: %w", err)
		}
		return pg.NewPetsRepo(db), pg.NewAdoptionsRepo(db), closer(db), nil

	default:
		db, err := sqlitestore.Open(cfg.DBPath)
		if err != nil {
			return nil, nil, noop, fmt.Errorf("open sqlite: %w", err)
		}
		return sqlitestore.NewPetsRepo(db), sqlitestore.NewAdoptionsRepo(db), closer(db), nil
	}
}

func closer(db *sql.DB) func() error {
	return db.Close
}
