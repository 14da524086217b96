package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"landmark-route-service/internal/adapters/cache"
	"landmark-route-service/internal/adapters/repositories"
	"landmark-route-service/internal/adapters/roads"
	"landmark-route-service/internal/api"
	"landmark-route-service/internal/config"
	"landmark-route-service/internal/platform/db"
	"landmark-route-service/internal/platform/obs"
	"landmark-route-service/internal/ports"
	"landmark-route-service/internal/services"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
)

// main is the application composition root.
// It wires concrete adapters (SQL or JSON landmarks, OSRM or ORS roads,
// SQL or Redis geometry cache) behind ports and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}

	slog.SetDefault(obs.NewLogger(os.Stdout, cfg.LogLevel, cfg.LogFormat))

	if err := run(cfg); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	ctx := context.Background()

	conn, repo, err := openLandmarkStore(ctx, cfg)
	if err != nil {
		return err
	}
	if conn != nil {
		defer conn.Close()
	}

	provider, closeProvider, err := newRoadProvider(cfg, conn)
	if err != nil {
		return err
	}
	defer closeProvider()

	opts := services.Options{
		PathCacheLimit:     cfg.PathCacheLimit,
		NearbyRadiusKm:     cfg.NearbyRadiusKm,
		AugmentMax:         cfg.AugmentMax,
		AugmentThresholdKm: cfg.AugmentThresholdKm,
		ProviderTimeout:    cfg.RoadTimeout,
	}
	svc := services.NewRouteService(repo, provider, opts)
	router := api.NewRouter(svc, cfg.NearbyRadiusKm)

	// The write timeout leaves room for one provider call at its full timeout.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.RoadTimeout + 30*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", srv.Addr, "store", cfg.LandmarkStore,
			"provider", cfg.RoadProvider, "route_cache", cfg.RouteCache)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case s := <-sig:
		slog.Info("shutting down", "signal", s.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// openLandmarkStore returns the landmark repository and, for SQL stores, the
// connection shared with the route cache.
func openLandmarkStore(ctx context.Context, cfg config.Config) (*sql.DB, ports.LandmarkRepository, error) {
	switch cfg.LandmarkStore {
	case "json":
		return nil, repositories.NewJSONLandmarkRepository(cfg.SeedPath), nil

	case "postgres":
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		// Schema and data are managed by cmd/dbtool.
		return conn, repositories.NewSQLLandmarkRepository(conn), nil

	default:
		conn, err := db.OpenSQLite(cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}

		// Initialize schema and seed demo data on startup for local runs.
		if err := repositories.InitSQLiteSchema(ctx, conn); err != nil {
			conn.Close()
			return nil, nil, err
		}
		n, err := repositories.SeedFromJSON(ctx, conn, repositories.SQLite, cfg.SeedPath)
		if err != nil {
			conn.Close()
			return nil, nil, err
		}
		slog.Info("seeded landmarks", "count", n, "path", cfg.SeedPath)

		return conn, repositories.NewSQLLandmarkRepository(conn), nil
	}
}

func newRoadProvider(cfg config.Config, conn *sql.DB) (ports.RoadRouteProvider, func(), error) {
	noop := func() {}

	var (
		provider ports.RoadRouteProvider
		name     string
		err      error
	)
	switch cfg.RoadProvider {
	case "none":
		return nil, noop, nil
	case "ors":
		name = "ors"
		provider, err = roads.NewORSProvider(cfg.ORSAPIKey, "", cfg.RoadTimeout, cfg.RoadMaxAttempts)
	default:
		name = "osrm"
		provider, err = roads.NewOSRMProvider(cfg.OSRMBaseURL, cfg.RoadTimeout, cfg.RoadMaxAttempts)
	}
	if err != nil {
		return nil, noop, err
	}

	switch cfg.RouteCache {
	case "redis":
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		cached := roads.NewCachedProvider(provider, cache.NewRedisRouteCache(rdb, cfg.RouteCacheTTL), name)
		return cached, func() { _ = rdb.Close() }, nil
	case "sql":
		var c ports.RouteGeometryCache = cache.NewSqliteRouteCache(conn)
		if cfg.LandmarkStore == "postgres" {
			c = cache.NewSQLRouteCache(conn)
		}
		return roads.NewCachedProvider(provider, c, name), noop, nil
	default:
		return provider, noop, nil
	}
}
