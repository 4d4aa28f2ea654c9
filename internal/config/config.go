package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress         string
	DatabaseURI        string
	IntakeAddress      string
	TokenSecret        string
	StatusPollInterval time.Duration
	WorkerPoolSize     int
	ShutdownTimeout    time.Duration
	RefreshBatchSize   int
	IntakeRateLimit    float64
	CatalogCacheTTL    time.Duration
}

const (
	defaultRunAddress         = ":8080"
	defaultTokenSecret        = "change-me-in-production"
	defaultStatusPollInterval = 30 * time.Second
	defaultWorkerPoolSize     = 4
	defaultShutdownTimeout    = 10 * time.Second
	defaultRefreshBatchSize   = 32
	defaultIntakeRateLimit    = 10
	defaultCatalogCacheTTL    = 5 * time.Minute
)

// Load parses configuration from a .env file (when present), environment
// variables, and flags, in ascending precedence.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:         getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:        getString(lookup, "DATABASE_URI", ""),
		IntakeAddress:      getString(lookup, "INTAKE_ADDRESS", ""),
		TokenSecret:        getString(lookup, "TOKEN_SECRET", defaultTokenSecret),
		StatusPollInterval: getDuration(lookup, "STATUS_POLL_INTERVAL", defaultStatusPollInterval),
		WorkerPoolSize:     getInt(lookup, "WORKER_POOL_SIZE", defaultWorkerPoolSize),
		ShutdownTimeout:    getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		RefreshBatchSize:   getInt(lookup, "REFRESH_BATCH_SIZE", defaultRefreshBatchSize),
		IntakeRateLimit:    getFloat(lookup, "INTAKE_RATE_LIMIT", defaultIntakeRateLimit),
		CatalogCacheTTL:    getDuration(lookup, "CATALOG_CACHE_TTL", defaultCatalogCacheTTL),
	}

	fs := flag.NewFlagSet("storefront", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		pollIntervalStr    = cfg.StatusPollInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.IntakeAddress, "r", cfg.IntakeAddress, "Order intake system base URL")
	fs.StringVar(&cfg.TokenSecret, "token-secret", cfg.TokenSecret, "Secret for signing auth tokens")
	fs.IntVar(&cfg.WorkerPoolSize, "worker-pool", cfg.WorkerPoolSize, "Number of concurrent status refresh workers")
	fs.StringVar(&pollIntervalStr, "poll-interval", pollIntervalStr, "Interval between status refresh sweeps")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.IntVar(&cfg.RefreshBatchSize, "refresh-batch", cfg.RefreshBatchSize, "Maximum orders and returns per refresh sweep")
	fs.Float64Var(&cfg.IntakeRateLimit, "intake-rate", cfg.IntakeRateLimit, "Maximum intake requests per second")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.StatusPollInterval, err = time.ParseDuration(pollIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid poll interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("TOKEN_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read token secret file: %w", err)
		}
		cfg.TokenSecret = string(content)
	}

	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}

	if cfg.RefreshBatchSize <= 0 {
		cfg.RefreshBatchSize = defaultRefreshBatchSize
	}

	if cfg.StatusPollInterval <= 0 {
		cfg.StatusPollInterval = defaultStatusPollInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.IntakeRateLimit <= 0 {
		cfg.IntakeRateLimit = defaultIntakeRateLimit
	}

	if cfg.CatalogCacheTTL <= 0 {
		cfg.CatalogCacheTTL = defaultCatalogCacheTTL
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.IntakeAddress == "" {
		return nil, fmt.Errorf("intake address must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getFloat(lookup envLookup, key string, def float64) float64 {
	if v, ok := lookup(key); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
