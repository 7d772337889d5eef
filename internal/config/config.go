// Package config centralises environment-driven configuration for stravastats.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lildude/stravastats/internal/strava"
)

// Config captures the runtime configuration for a single analysis run.
type Config struct {
	AccessToken     string        // STRAVA_ACCESS_TOKEN
	RedisURL        string        // REDIS_URL, optional fallback token store
	StravaBaseURL   string        // STRAVA_BASE_URL, override for tests
	PerPage         int           // STRAVA_PER_PAGE, activities per page
	MaxPages        int           // STRAVA_MAX_PAGES, pagination safety cap
	HTTPTimeout     time.Duration // HTTP_TIMEOUT
	TargetDistances []float64     // TARGET_DISTANCES, km
	ReportPath      string        // REPORT_PATH
}

// Load reads environment variables into Config, applying defaults and
// validating the values that bound the fetch loop. A missing access
// token is not an error here: the token may still come from the Redis
// store, and resolution is the tokens package's job.
func Load() (Config, error) {
	cfg := Config{
		AccessToken:   os.Getenv("STRAVA_ACCESS_TOKEN"),
		RedisURL:      os.Getenv("REDIS_URL"),
		StravaBaseURL: getEnv("STRAVA_BASE_URL", "https://www.strava.com"),
		ReportPath:    getEnv("REPORT_PATH", "stravastats.html"),
	}

	perPage, err := getIntEnv("STRAVA_PER_PAGE", 200)
	if err != nil {
		return Config{}, err
	}
	if perPage < 1 || perPage > strava.MaxPerPage {
		return Config{}, fmt.Errorf("config: STRAVA_PER_PAGE must be between 1 and %d, got %d", strava.MaxPerPage, perPage)
	}
	cfg.PerPage = perPage

	maxPages, err := getIntEnv("STRAVA_MAX_PAGES", 1000)
	if err != nil {
		return Config{}, err
	}
	if maxPages < 1 {
		return Config{}, fmt.Errorf("config: STRAVA_MAX_PAGES must be at least 1, got %d", maxPages)
	}
	cfg.MaxPages = maxPages

	timeout, err := getDurationEnv("HTTP_TIMEOUT", 30*time.Second)
	if err != nil {
		return Config{}, err
	}
	cfg.HTTPTimeout = timeout

	distances, err := parseDistances(getEnv("TARGET_DISTANCES", "5,10"))
	if err != nil {
		return Config{}, err
	}
	cfg.TargetDistances = distances

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getIntEnv(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return parsed, nil
}

func getDurationEnv(key string, fallback time.Duration) (time.Duration, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	if parsed <= 0 {
		return 0, fmt.Errorf("config: %s must be positive, got %s", key, parsed)
	}
	return parsed, nil
}

// parseDistances parses a comma-separated list of target distances in
// kilometres, e.g. "5,10,21.1".
func parseDistances(value string) ([]float64, error) {
	parts := strings.Split(value, ",")
	out := make([]float64, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		km, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil, fmt.Errorf("config: TARGET_DISTANCES: %w", err)
		}
		if km <= 0 {
			return nil, fmt.Errorf("config: TARGET_DISTANCES must be positive, got %v", km)
		}
		out = append(out, km)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("config: TARGET_DISTANCES is empty")
	}
	return out, nil
}
