package core

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"matchdash/internal/activity"
	c "matchdash/internal/cache"
	"matchdash/internal/configuration"
	"matchdash/internal/handlers"
	h "matchdash/internal/helpers"
	m "matchdash/internal/middlewares"
	"matchdash/internal/models"
	"matchdash/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateAdminUser provisions the configured admin account, replacing the
// password and display name of an existing account with the same username.
func CreateAdminUser(db *gorm.DB, config models.AppConfiguration) error {
	if config.AdminUsername == "" {
		zap.L().Info("No admin account configured, skipping bootstrap")
		return nil
	}

	hash, err := h.CreateHash(config.AdminPassword)
	if err != nil {
		return err
	}

	admin := models.AdminUser{
		Username: config.AdminUsername,
		Password: hash,
		Name:     config.AdminName,
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoUpdates: clause.AssignmentColumns([]string{"password", "name", "updated_at"}),
	}).Create(&admin).Error
}

// Dependencies are the shared components the HTTP routes are built from.
type Dependencies struct {
	Config         models.Configuration
	DB             *gorm.DB
	Cache          c.ICache
	ActivityLogger activity.IActivityLogger
	// Registry receives the HTTP and dashboard metrics. Nil disables /metrics.
	Registry *prometheus.Registry
}

func NewRouter(deps Dependencies) http.Handler {
	config := deps.Config
	m.InitValidator()

	r := chi.NewRouter()

	r.Use(middleware.Timeout(time.Duration(config.App.RequestTimeout) * time.Second))
	r.Use(m.Logger)
	r.Use(middleware.Recoverer)
	r.Use(m.ClientIP(config.App.TrustedProxies))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   config.App.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", m.RequestIDHeader},
		ExposedHeaders:   []string{m.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	dashboardService := services.DashboardService{
		DB:          deps.DB,
		Location:    configuration.Location(config.App),
		Parallelism: config.App.QueryParallelism,
	}

	if deps.Registry != nil {
		httpMetrics := m.NewHTTPMetrics(deps.Registry)
		r.Use(httpMetrics.Middleware)

		snapshotDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "matchdash",
			Name:      "kpi_snapshot_duration_seconds",
			Help:      "Duration of successful KPI snapshot computations.",
			Buckets:   prometheus.DefBuckets,
		})
		deps.Registry.MustRegister(snapshotDuration)
		dashboardService.SnapshotDuration = snapshotDuration

		r.Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	authConfig := config.App.GetAuthConfig()

	r.Route("/api", func(apiRouter chi.Router) {
		apiRouter.Use(m.Authenticate(authConfig.JWTSecret))

		apiRouter.Mount("/health", services.HealthService{DB: deps.DB}.Routes())

		apiRouter.With(m.RateLimit(deps.Cache, config.App.TrustedProxies, config.App.LoginRateLimit)).
			Mount("/auth", services.AuthService{
				DB:             deps.DB,
				Cache:          deps.Cache,
				AuthConfig:     authConfig,
				ActivityLogger: deps.ActivityLogger,
			}.Routes())

		apiRouter.Mount("/dashboard", dashboardService.Routes())
		apiRouter.Get("/countries", handlers.GetListHandler(dashboardService.ListCountries))

		apiRouter.Mount("/users", services.UserService{DB: deps.DB}.Routes())

		apiRouter.Mount("/activity", services.ActivityService{
			ActivityLogger: deps.ActivityLogger,
		}.Routes())
	})

	return r
}

// StartHTTPServer serves the API until SIGINT or SIGTERM.
func StartHTTPServer(deps Dependencies) {
	port := deps.Config.App.Port
	requestTimeout := time.Duration(deps.Config.App.RequestTimeout) * time.Second

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      otelhttp.NewHandler(NewRouter(deps), configuration.AppName),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: requestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			zap.L().Error("Failed to shut down the HTTP server", zap.Error(err))
		}
	}()

	zap.L().Info("HTTP server starting", zap.Int("port", port))

	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		zap.L().Error("Failed to start the app", zap.Error(err))
		return
	}
	zap.L().Info("HTTP server stopped")
}
