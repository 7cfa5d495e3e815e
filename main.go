package main

import (
	"context"

	"matchdash/internal/configuration"
	"matchdash/internal/core"
	"matchdash/internal/database"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	zap.ReplaceGlobals(zap.Must(zap.NewProduction()))

	config := configuration.Read()
	core.NewLogger(config.App.LogLevel)
	defer func() { _ = zap.L().Sync() }()

	profile := configuration.GetProfile(config.App.Profile)
	ctx := context.Background()

	db := database.InitDB(config.Database)

	if profile.Migrations {
		if err := database.Migrate(ctx, db); err != nil {
			zap.L().Fatal("Failed to apply migrations", zap.Error(err))
		}
	}

	if !profile.HTTPServer {
		zap.L().Info("Migrations applied, exiting")
		return
	}

	if err := core.CreateAdminUser(db, config.App); err != nil {
		zap.L().Fatal("Failed to create the admin account", zap.Error(err))
	}

	shutdownTracing, err := core.InitTracing(ctx, config.Telemetry.Tracing)
	if err != nil {
		zap.L().Fatal("Failed to initialize tracing", zap.Error(err))
	}
	defer func() { _ = shutdownTracing(context.Background()) }()

	profiler, err := core.StartProfiler(config.Telemetry.Profiling)
	if err != nil {
		zap.L().Error("Failed to start profiler", zap.Error(err))
	}
	if profiler != nil {
		defer func() { _ = profiler.Stop() }()
	}

	var registry *prometheus.Registry
	if config.Telemetry.Metrics.Enabled {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	cache := core.NewCache(config.Cache)
	if cache != nil {
		defer func() { _ = cache.Close() }()
	}

	activityLogger := core.NewActivityLogger(config.Activity)
	defer func() { _ = activityLogger.Close() }()

	core.StartHTTPServer(core.Dependencies{
		Config:         config,
		DB:             db,
		Cache:          cache,
		ActivityLogger: activityLogger,
		Registry:       registry,
	})
}
