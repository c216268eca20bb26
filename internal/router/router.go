package router

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"time"

	mem "health-records/internal/adapters/storage/memory"
	pg "health-records/internal/adapters/storage/postgres"
	"health-records/internal/domain/patients"
	"health-records/internal/domain/reports"
	"health-records/internal/domain/visits"
	"health-records/internal/middleware"
	"health-records/internal/platform/logger"
	"health-records/internal/ratelimit"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Secreto compartido del access gate. Vacío = solo callers internos.
	APIKey string

	// Rate limiting; cero usa los defaults (100 req / 60s).
	RateLimit  int
	RateWindow time.Duration

	Log logger.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	// El health check queda fuera del rate limit y del gate.
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err != nil {
				log.Warn("db open failed, falling back to in-memory", map[string]any{"error": err.Error()})
			} else if err := pg.EnsureSchema(context.Background(), opened); err != nil {
				log.Warn("schema apply failed, falling back to in-memory", map[string]any{"error": err.Error()})
				_ = opened.Close()
			} else {
				db = opened
			}
		}
	}

	var (
		patientRepo patients.Repository
		visitRepo   visits.Repository
		reportsRepo reports.Repository
	)

	if db != nil {
		patientRepo = pg.NewPatientsRepo(db)
		visitRepo = pg.NewVisitsRepo(db)
		reportsRepo = pg.NewReportsRepo(db)
	} else {
		store := mem.NewStore()
		patientRepo = store.Patients()
		visitRepo = store.Visits()
		reportsRepo = store.Reports()
	}

	// Services por módulo
	patientsSvc := patients.NewService(patientRepo)
	visitsSvc := visits.NewService(visitRepo, patientsSvc)
	reportsSvc := reports.NewService(reportsRepo)

	// Estado del rate limiter: explícito, arranca vacío, vive en el router.
	limiter := ratelimit.New(opts.RateLimit, opts.RateWindow)

	// Pipeline por request: rate limit -> access gate -> handler.
	r.Group(func(api chi.Router) {
		api.Use(middleware.RateLimit(limiter))
		api.Use(middleware.APIKeyGate(opts.APIKey))

		patients.RegisterRoutes(api, patientsSvc)
		visits.RegisterRoutes(api, visitsSvc)
		reports.RegisterRoutes(api, reportsSvc)
	})

	return r
}
