// Package server wires config, storage, domain services, and the HTTP
// surface together and runs the process.
package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pms/internal/domain/employee"
	"pms/internal/domain/goals"
	"pms/internal/domain/roles"
	"pms/internal/domain/weekly"
	"pms/internal/platform/config"
	"pms/internal/platform/db"
	authhandler "pms/internal/transport/http/handlers/auth"
	employeehandler "pms/internal/transport/http/handlers/employee"
	goalshandler "pms/internal/transport/http/handlers/goals"
	reporthandler "pms/internal/transport/http/handlers/report"
	roleshandler "pms/internal/transport/http/handlers/roles"
	weeklyhandler "pms/internal/transport/http/handlers/weekly"
	"pms/internal/transport/http/middleware"
)

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      NewRouter(cfg, pool),
		ReadTimeout:  cfg.RequestTimeout,
		WriteTimeout: cfg.RequestTimeout,
	}

	log.Printf("performance service listening on %s", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

// NewRouter builds the full route tree. Split out from Run so tests can
// mount it on httptest servers.
func NewRouter(cfg config.Config, pool *pgxpool.Pool) http.Handler {
	employees := employee.NewService(employee.NewStore(pool), cfg.JWTSecret)
	weeks := weekly.NewService(weekly.NewStore(pool))
	goalSvc := goals.NewService(goals.NewStore(pool))
	roleSvc := roles.NewService(roles.NewStore(pool))

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(cfg.JWTSecret))

	health := func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
	router.Get("/health", health)

	router.Route("/pms/api", func(r chi.Router) {
		r.Get("/health", health)
		authhandler.NewHandler(employees).RegisterRoutes(r)
		employeehandler.NewHandler(employees).RegisterRoutes(r)
		weeklyhandler.NewHandler(weeks).RegisterRoutes(r)
		goalshandler.NewHandler(goalSvc).RegisterRoutes(r)
		roleshandler.NewHandler(roleSvc).RegisterRoutes(r)
		reporthandler.NewHandler(employees, weeks, goalSvc, cfg.ReportDir).RegisterRoutes(r)
	})

	return router
}
