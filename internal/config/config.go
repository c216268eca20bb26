package config

import (
	"os"
	"strconv"
	"time"

	"health-records/internal/ratelimit"
)

// Config junta todo lo que se lee de env al arrancar.
type Config struct {
	Addr  string
	DBDSN string

	// Secreto compartido para callers externos (header X-API-Key).
	// Vacío = ningún caller externo queda autorizado (fail closed).
	APIKey string

	RateLimit  int
	RateWindow time.Duration
}

// FromEnv lee la configuración del proceso:
// - PORT (default 8080)
// - DB_DSN (vacío = storage in-memory, modo dev)
// - API_KEY
// - RATE_LIMIT (requests por ventana, default 100)
// - RATE_WINDOW (duración Go, ej "60s", default 60s)
func FromEnv() Config {
	cfg := Config{
		Addr:       ":8080",
		DBDSN:      os.Getenv("DB_DSN"),
		APIKey:     os.Getenv("API_KEY"),
		RateLimit:  ratelimit.DefaultLimit,
		RateWindow: ratelimit.DefaultWindow,
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Addr = ":" + v
	}
	if v := os.Getenv("RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RateLimit = n
		}
	}
	if v := os.Getenv("RATE_WINDOW"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.RateWindow = d
		}
	}

	return cfg
}
