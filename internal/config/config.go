// Package config loads service settings from the environment, after an
// optional .env file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	LandmarkStore string // sqlite | postgres | json
	DBPath        string
	DatabaseURL   string
	SeedPath      string

	RoadProvider    string // osrm | ors | none
	OSRMBaseURL     string
	ORSAPIKey       string
	RoadTimeout     time.Duration
	RoadMaxAttempts int

	RouteCache    string // none | sql | redis
	RedisAddr     string
	RouteCacheTTL time.Duration

	PathCacheLimit     int
	NearbyRadiusKm     float64
	AugmentMax         int
	AugmentThresholdKm float64

	LogLevel  string
	LogFormat string
}

// Load reads .env (if present) and the environment, applying defaults.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found (using environment variables)")
	}

	cfg := Config{
		Port:          Get("PORT", "8080"),
		LandmarkStore: strings.ToLower(Get("LANDMARK_STORE", "sqlite")),
		DBPath:        Get("DB_PATH", "data/app.db"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SeedPath:      Get("SEED_PATH", "data/seeds/landmarks.json"),
		RoadProvider:  strings.ToLower(Get("ROAD_PROVIDER", "osrm")),
		OSRMBaseURL:   Get("OSRM_BASE_URL", "https://router.project-osrm.org"),
		ORSAPIKey:     os.Getenv("ORS_API_KEY"),
		RouteCache:    strings.ToLower(Get("ROUTE_CACHE", "sql")),
		RedisAddr:     Get("REDIS_ADDR", "localhost:6379"),
		LogLevel:      Get("LOG_LEVEL", "info"),
		LogFormat:     Get("LOG_FORMAT", "text"),
	}

	var err error
	if cfg.RoadTimeout, err = durationEnv("ROAD_TIMEOUT", 12*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.RouteCacheTTL, err = durationEnv("ROUTE_CACHE_TTL", 24*time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.RoadMaxAttempts, err = intEnv("ROAD_MAX_ATTEMPTS", 1); err != nil {
		return Config{}, err
	}
	if cfg.PathCacheLimit, err = intEnv("PATH_CACHE_LIMIT", 256); err != nil {
		return Config{}, err
	}
	if cfg.AugmentMax, err = intEnv("AUGMENT_MAX_ADDITIONS", 3); err != nil {
		return Config{}, err
	}
	if cfg.NearbyRadiusKm, err = floatEnv("NEARBY_RADIUS_KM", 1.0); err != nil {
		return Config{}, err
	}
	if cfg.AugmentThresholdKm, err = floatEnv("AUGMENT_THRESHOLD_KM", 0.35); err != nil {
		return Config{}, err
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	switch c.LandmarkStore {
	case "sqlite", "json":
	case "postgres":
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return fmt.Errorf("config: DATABASE_URL is required for LANDMARK_STORE=postgres")
		}
	default:
		return fmt.Errorf("config: unknown LANDMARK_STORE %q", c.LandmarkStore)
	}

	switch c.RoadProvider {
	case "osrm", "none":
	case "ors":
		if strings.TrimSpace(c.ORSAPIKey) == "" {
			return fmt.Errorf("config: ORS_API_KEY is required for ROAD_PROVIDER=ors")
		}
	default:
		return fmt.Errorf("config: unknown ROAD_PROVIDER %q", c.RoadProvider)
	}

	switch c.RouteCache {
	case "none", "redis":
	case "sql":
		if c.LandmarkStore == "json" {
			return fmt.Errorf("config: ROUTE_CACHE=sql needs a sqlite or postgres LANDMARK_STORE")
		}
	default:
		return fmt.Errorf("config: unknown ROUTE_CACHE %q", c.RouteCache)
	}

	if c.RoadMaxAttempts < 1 {
		return fmt.Errorf("config: ROAD_MAX_ATTEMPTS must be at least 1")
	}
	if c.NearbyRadiusKm <= 0 || c.AugmentThresholdKm < 0 || c.AugmentMax < 0 || c.PathCacheLimit < 0 {
		return fmt.Errorf("config: routing limits must not be negative")
	}

	return nil
}

// Get returns the environment value for key, or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s: %w", key, err)
	}
	return d, nil
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s value %q: %w", key, v, err)
	}
	return n, nil
}

func floatEnv(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s value %q: %w", key, v, err)
	}
	return f, nil
}
