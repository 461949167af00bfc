package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPort           = "8080"
	DefaultSourceURL      = "https://pt.wikipedia.org/wiki/Ra%C3%A7as_de_c%C3%A3es_por_ordem_alfab%C3%A9tica"
	DefaultHarvestTimeout = 20 * time.Second
	DefaultAuthTimeout    = 5 * time.Second
)

// Config agrupa todo lo que main necesita para armar el servicio.
type Config struct {
	Port  string
	DBDSN string // vacío => store in-memory

	HarvestSourceURL string
	HarvestTimeout   time.Duration
	SyncMode         string // full | first

	AuthBaseURL string
	AuthAPIKey  string
	AuthTimeout time.Duration

	// Se leen acá para que también valgan desde .env.
	LogLevel  string
	LogFormat string
	AppName   string
}

// Load carga .env (si existe) y lee las variables de entorno.
// Orden de .env: ENV_FILE si está seteado; si no, .env.local y luego .env.
// godotenv no pisa variables ya presentes en el entorno.
func Load() (Config, error) {
	if err := loadEnvFiles(); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:             envOr("PORT", DefaultPort),
		DBDSN:            strings.TrimSpace(os.Getenv("DB_DSN")),
		HarvestSourceURL: envOr("HARVEST_SOURCE_URL", DefaultSourceURL),
		SyncMode:         strings.ToLower(envOr("SYNC_MODE", "full")),
		AuthBaseURL:      strings.TrimSpace(os.Getenv("AUTH_BASE_URL")),
		AuthAPIKey:       strings.TrimSpace(os.Getenv("AUTH_API_KEY")),
		LogLevel:         strings.TrimSpace(os.Getenv("LOG_LEVEL")),
		LogFormat:        strings.TrimSpace(os.Getenv("LOG_FORMAT")),
		AppName:          strings.TrimSpace(os.Getenv("APP_NAME")),
	}

	var err error
	if cfg.HarvestTimeout, err = durationOr("HARVEST_TIMEOUT", DefaultHarvestTimeout); err != nil {
		return Config{}, err
	}
	if cfg.AuthTimeout, err = durationOr("AUTH_TIMEOUT", DefaultAuthTimeout); err != nil {
		return Config{}, err
	}

	switch cfg.SyncMode {
	case "full", "first":
	default:
		return Config{}, fmt.Errorf("config: SYNC_MODE must be full or first, got %q", cfg.SyncMode)
	}

	return cfg, nil
}

// Addr devuelve la dirección de escucha para http.Server.
func (c Config) Addr() string {
	return ":" + c.Port
}

func loadEnvFiles() error {
	if f := strings.TrimSpace(os.Getenv("ENV_FILE")); f != "" {
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("config: load %s: %w", f, err)
		}
		return nil
	}

	for _, f := range []string{".env.local", ".env"} {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	return nil
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func durationOr(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	if d <= 0 {
		return def, nil
	}
	return d, nil
}
