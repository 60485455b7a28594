package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"
)

// Config aggregates application configuration values.
type Config struct {
	Search  SearchConfig
	HTTP    HTTPConfig
	Logging LoggingConfig
}

// SearchConfig bounds every search started by the tools.
type SearchConfig struct {
	MaxExpansions int
	Timeout       time.Duration
	Workers       int
}

// HTTPConfig governs the visualiser server.
type HTTPConfig struct {
	Addr string
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string
	Format        string // text|json
	IncludeCaller bool
}

const (
	defaultAddr          = ":8080"
	defaultLoggingLevel  = "info"
	defaultLoggingFormat = "text"
)

// Load reads configuration from environment variables, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		HTTP: HTTPConfig{
			Addr: valueOrDefault("GRIDPATH_HTTP_ADDR", defaultAddr),
		},
		Logging: LoggingConfig{
			Level:         valueOrDefault("GRIDPATH_LOG_LEVEL", defaultLoggingLevel),
			Format:        valueOrDefault("GRIDPATH_LOG_FORMAT", defaultLoggingFormat),
			IncludeCaller: parseBoolWithDefault("GRIDPATH_LOG_INCLUDE_CALLER", false),
		},
		Search: SearchConfig{
			Workers: runtime.NumCPU(),
		},
	}

	maxExpansions, err := parseNonNegativeInt("GRIDPATH_MAX_EXPANSIONS", 0)
	if err != nil {
		return Config{}, err
	}
	cfg.Search.MaxExpansions = maxExpansions

	workers, err := parseNonNegativeInt("GRIDPATH_WORKERS", cfg.Search.Workers)
	if err != nil {
		return Config{}, err
	}
	if workers > 0 {
		cfg.Search.Workers = workers
	}

	if v := os.Getenv("GRIDPATH_SEARCH_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid GRIDPATH_SEARCH_TIMEOUT: %w", err)
		}
		if d < 0 {
			return Config{}, fmt.Errorf("GRIDPATH_SEARCH_TIMEOUT %s is negative", d)
		}
		cfg.Search.Timeout = d
	}

	return cfg, nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBoolWithDefault(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.ParseBool(v)
		if err != nil {
			return fallback
		}
		return val
	}
	return fallback
}

func parseNonNegativeInt(key string, fallback int) (int, error) {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
		}
		if n < 0 {
			return 0, fmt.Errorf("%s must not be negative, got %d", key, n)
		}
		return n, nil
	}
	return fallback, nil
}
