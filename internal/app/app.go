// Package app assembles the application: configuration, logging, session
// store, analytics service, HTTP router and graceful shutdown.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"storelens/internal/config"
	apierrors "storelens/internal/errors"
	"storelens/internal/infrastructure"
	"storelens/internal/middleware"
	"storelens/internal/reviews"
	"storelens/internal/services"
	"storelens/internal/session"
	transport "storelens/internal/transport/http"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// Application holds the assembled components.
type Application struct {
	cfg     *config.Config
	logger  *slog.Logger
	store   *session.Store
	service *services.AnalyticsService
	server  *http.Server
}

// New assembles the application from configuration.
func New(cfg *config.Config) (*Application, error) {
	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	categories := reviews.DefaultCategoryTable()
	if cfg.Analytics.CategoriesFile != "" {
		categories, err = reviews.LoadCategoryTable(cfg.Analytics.CategoriesFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load category table: %w", err)
		}
	}

	store := session.NewStore(cfg.Session.TTL, logger)
	service := services.NewAnalyticsService(store, categories,
		cfg.Analytics.TopWords, cfg.Analytics.TopOptions, logger)
	if cfg.Analytics.EnglishFallback {
		service.EnableEnglishFallback()
	}

	app := &Application{
		cfg:     cfg,
		logger:  logger,
		store:   store,
		service: service,
	}
	app.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      app.router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
	return app, nil
}

// router builds the chi router with the full middleware chain and all
// API routes.
func (a *Application) router() chi.Router {
	errorHandler := apierrors.NewHandler(a.logger)

	dataHandler := transport.NewDataHandler(a.service, a.cfg.Server.MaxUploadBytes, a.logger, errorHandler)
	reviewsHandler := transport.NewReviewsHandler(a.service, a.logger, errorHandler)
	optionsHandler := transport.NewOptionsHandler(a.service, a.logger, errorHandler)
	salesHandler := transport.NewSalesHandler(a.service, a.logger, errorHandler)
	healthHandler := transport.NewHealthHandler(Version)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.StructuredLogger(a.logger))
	r.Use(middleware.Recoverer(a.logger))
	if a.cfg.Security.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(
			a.cfg.Security.RateLimit.RPS,
			a.cfg.Security.RateLimit.Burst,
			a.logger,
		)
		r.Use(limiter.Handler)
	}

	r.Mount("/healthz", healthHandler.Routes())
	r.Route("/api", func(r chi.Router) {
		r.Mount("/healthz", healthHandler.Routes())
		r.Mount("/sessions", dataHandler.SessionRoutes())
		r.Mount("/data", dataHandler.DataRoutes())
		r.Mount("/stopwords", dataHandler.StopwordRoutes())
		r.Mount("/reviews", reviewsHandler.Routes())
		r.Mount("/options", optionsHandler.Routes())
		r.Mount("/sales", salesHandler.Routes())
	})
	return r
}

// Run starts the session sweeper and the HTTP server, blocking until ctx is
// cancelled, then shuts down gracefully.
func (a *Application) Run(ctx context.Context) error {
	a.store.StartSweeper(ctx, a.cfg.Session.SweepInterval)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server starting",
			slog.String("addr", a.server.Addr),
			slog.String("version", Version),
		)
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	a.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}

// Handler exposes the assembled router, mainly for tests.
func (a *Application) Handler() http.Handler {
	return a.server.Handler
}
