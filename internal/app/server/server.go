package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dharanesh-official/hr-payroll-app/internal/db"
	"github.com/dharanesh-official/hr-payroll-app/internal/domain/announcement"
	"github.com/dharanesh-official/hr-payroll-app/internal/domain/calendar"
	"github.com/dharanesh-official/hr-payroll-app/internal/domain/directory"
	"github.com/dharanesh-official/hr-payroll-app/internal/domain/leave"
	"github.com/dharanesh-official/hr-payroll-app/internal/domain/payroll"
	"github.com/dharanesh-official/hr-payroll-app/internal/domain/reports"
	"github.com/dharanesh-official/hr-payroll-app/internal/platform/config"
	"github.com/dharanesh-official/hr-payroll-app/internal/platform/metrics"
	announcementhandler "github.com/dharanesh-official/hr-payroll-app/internal/transport/http/handlers/announcement"
	authhandler "github.com/dharanesh-official/hr-payroll-app/internal/transport/http/handlers/auth"
	calendarhandler "github.com/dharanesh-official/hr-payroll-app/internal/transport/http/handlers/calendar"
	directoryhandler "github.com/dharanesh-official/hr-payroll-app/internal/transport/http/handlers/directory"
	leavehandler "github.com/dharanesh-official/hr-payroll-app/internal/transport/http/handlers/leave"
	payrollhandler "github.com/dharanesh-official/hr-payroll-app/internal/transport/http/handlers/payroll"
	reportshandler "github.com/dharanesh-official/hr-payroll-app/internal/transport/http/handlers/reports"
	"github.com/dharanesh-official/hr-payroll-app/internal/transport/http/middleware"
)

type App struct {
	Config config.Config
	Pool   *pgxpool.Pool
	Router http.Handler
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
			pool.Close()
			return nil, err
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			pool.Close()
			return nil, err
		}
	}

	app := &App{Config: cfg, Pool: pool}
	app.Router = app.buildRouter()
	return app, nil
}

func (a *App) Close() {
	a.Pool.Close()
}

func (a *App) buildRouter() http.Handler {
	directoryStore := directory.NewStore(a.Pool)
	leaveStore := leave.NewStore(a.Pool)

	directoryService := directory.NewService(directoryStore)
	leaveService := leave.NewService(leaveStore)
	payrollService := payroll.NewService(directoryStore, leaveStore)
	calendarService := calendar.NewService(leaveStore)
	reportsService := reports.NewService(reports.NewStore(a.Pool))
	announcementService := announcement.NewService(a.Pool)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(a.Config.Environment == "production"))
	router.Use(middleware.BodyLimit(a.Config.MaxBodyBytes))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   a.Config.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	var collector *metrics.Collector
	if a.Config.MetricsEnabled {
		collector = metrics.New()
		router.Use(middleware.Metrics(collector))
	}
	router.Use(middleware.Auth(a.Config.JWTSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := a.Pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if collector != nil {
		router.Handle("/metrics", collector.Handler())
	}

	router.Route("/api/v1", func(r chi.Router) {
		authHandler := authhandler.NewHandler(directoryStore, a.Config.JWTSecret, a.Config.TokenTTL, a.Config.RootEmployeeNumber)
		r.Post("/auth/login", authHandler.HandleLogin)
		r.With(middleware.RequireActor).Get("/auth/me", authHandler.HandleMe)

		directoryhandler.NewHandler(directoryService).RegisterRoutes(r)
		leavehandler.NewHandler(leaveService).RegisterRoutes(r)
		payrollhandler.NewHandler(payrollService).RegisterRoutes(r)
		calendarhandler.NewHandler(calendarService).RegisterRoutes(r)
		reportshandler.NewHandler(reportsService).RegisterRoutes(r)
		announcementhandler.NewHandler(announcementService).RegisterRoutes(r)
	})

	return router
}
