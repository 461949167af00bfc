package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-api/internal/adapters/auth/gotrue"
	"pet-api/internal/adapters/source/wikipedia"
	pg "pet-api/internal/adapters/storage/postgres"
	"pet-api/internal/domain/breeds"
	"pet-api/internal/platform/config"
	"pet-api/internal/platform/logger"
	"pet-api/internal/ports/auth"
	"pet-api/internal/router"
)

// @title Pet API
// @version 1.0
// @description Catálogo de razas de perro sincronizado desde Wikipedia.
// @BasePath /
func main() {
	// .env se carga antes de armar el logger; si falla, se reporta con uno armado desde el entorno.
	cfg, err := config.Load()
	if err != nil {
		logger.NewFromEnv().Error("config error", map[string]any{"err": err})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	mode, err := breeds.ParseMode(cfg.SyncMode)
	if err != nil {
		log.Error("config error", map[string]any{"err": err})
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var db *sql.DB
	if cfg.DBDSN != "" {
		db, err = pg.Open(ctx, cfg.DBDSN)
		if err != nil {
			log.Error("postgres unavailable", map[string]any{"err": err})
			os.Exit(1)
		}
		defer db.Close()

		if err := pg.Migrate(ctx, db); err != nil {
			log.Error("migration failed", map[string]any{"err": err})
			os.Exit(1)
		}
		log.Info("using postgres store", nil)
	} else {
		log.Warn("DB_DSN not set, using in-memory store", nil)
	}

	// Sin AUTH_BASE_URL => modo dev (X-Debug-User-ID).
	var (
		verifier auth.AuthVerifier
		signer   auth.CredentialsVerifier
	)
	if cfg.AuthBaseURL != "" {
		client, err := gotrue.NewClient(gotrue.Config{
			BaseURL: cfg.AuthBaseURL,
			APIKey:  cfg.AuthAPIKey,
			Timeout: cfg.AuthTimeout,
		})
		if err != nil {
			log.Error("auth client error", map[string]any{"err": err})
			os.Exit(1)
		}
		v := gotrue.NewVerifier(client)
		verifier, signer = v, v
	} else {
		log.Warn("AUTH_BASE_URL not set, running in dev auth mode", nil)
	}

	r := router.NewRouter(router.Options{
		AuthVerifier: verifier,
		Signer:       signer,
		DB:           db,
		Fetcher:      wikipedia.NewFetcher(cfg.HarvestTimeout),
		SourceURL:    cfg.HarvestSourceURL,
		SyncMode:     mode,
		Log:          log,
	})

	// El sync descarga y reconcilia la página completa; el write timeout lo contempla.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.HarvestTimeout + 40*time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("starting server", map[string]any{"addr": srv.Addr, "sync_mode": mode})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server error", map[string]any{"err": err})
		os.Exit(1)
	}
	log.Info("server stopped", nil)
}
