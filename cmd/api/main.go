package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"time"

	"health-records/internal/adapters/storage/postgres"
	"health-records/internal/config"
	"health-records/internal/platform/logger"
	"health-records/internal/router"
)

func main() {
	cfg := config.FromEnv()
	log := logger.NewFromEnv()

	var db *sql.DB
	if cfg.DBDSN != "" {
		opened, err := postgres.Open(cfg.DBDSN)
		if err != nil {
			log.Error("db open failed", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		defer opened.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err = postgres.EnsureSchema(ctx, opened)
		cancel()
		if err != nil {
			log.Error("schema apply failed", map[string]any{"error": err.Error()})
			os.Exit(1)
		}

		db = opened
	}

	r := router.NewRouter(router.Options{
		DB:         db,
		APIKey:     cfg.APIKey,
		RateLimit:  cfg.RateLimit,
		RateWindow: cfg.RateWindow,
		Log:        log,
	})

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": cfg.Addr, "storage": storageKind(db)})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}

func storageKind(db *sql.DB) string {
	if db != nil {
		return "postgres"
	}
	return "memory"
}
