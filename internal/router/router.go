package router

import (
	"database/sql"
	"net/http"
	"time"

	_ "pet-api/docs"
	"pet-api/internal/adapters/source/wikipedia"
	mem "pet-api/internal/adapters/storage/memory"
	pg "pet-api/internal/adapters/storage/postgres"
	"pet-api/internal/domain/breeds"
	"pet-api/internal/middleware"
	"pet-api/internal/platform/config"
	"pet-api/internal/platform/logger"
	"pet-api/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier       // puede ser nil (modo dev)
	Signer       auth.CredentialsVerifier // credenciales en el body del trigger; nil => 401

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Fuente de la cosecha. Vacíos => página real de Wikipedia.
	Fetcher        breeds.Fetcher
	SourceURL      string
	HarvestTimeout time.Duration
	SyncMode       breeds.Mode

	Log logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLog(log))

	r.Use(middleware.AuthContext(opts.AuthVerifier, log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var breedRepo breeds.Repository
	if opts.DB != nil {
		breedRepo = pg.NewBreedsRepo(opts.DB)
	} else {
		breedRepo = mem.NewBreedRepo()
	}

	fetcher := opts.Fetcher
	if fetcher == nil {
		timeout := opts.HarvestTimeout
		if timeout <= 0 {
			timeout = config.DefaultHarvestTimeout
		}
		fetcher = wikipedia.NewFetcher(timeout)
	}
	sourceURL := opts.SourceURL
	if sourceURL == "" {
		sourceURL = config.DefaultSourceURL
	}

	harvester := breeds.NewHarvester(fetcher, sourceURL, log)
	breedsSvc := breeds.NewService(breedRepo, harvester, opts.SyncMode, log)

	breeds.RegisterRoutes(r, breedsSvc, opts.Signer)

	return r
}
