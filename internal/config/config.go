// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

// Package config loads Filmgraph configuration with Koanf v2.
//
// Sources are layered with clear precedence: environment variables override
// the optional YAML file, which overrides the built-in defaults.
//
// Environment Variables:
//   - HTTP_HOST, HTTP_PORT: listen address (default 0.0.0.0:8080)
//   - HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_IDLE_TIMEOUT, HTTP_SHUTDOWN_TIMEOUT
//   - DB_DRIVER: duckdb, mysql or memory (default duckdb)
//   - DUCKDB_PATH, DUCKDB_MAX_MEMORY, DUCKDB_THREADS: embedded store settings
//   - MYSQL_DSN: go-sql-driver DSN when DB_DRIVER=mysql
//   - DB_MAX_OPEN_CONNS, DB_QUERY_TIMEOUT, DB_CHECKPOINT_INTERVAL
//   - SEED_FILE: YAML fixtures applied at startup
//   - LOG_LEVEL, LOG_FORMAT, LOG_CALLER
//   - CORS_ORIGINS, RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT
//   - API_DEFAULT_REVIEW_LIMIT, API_MAX_LIST_LIMIT
package config

import "time"

// Config is the complete application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Logging  LoggingConfig  `koanf:"logging"`
	API      APIConfig      `koanf:"api"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// DatabaseConfig holds fact store settings
type DatabaseConfig struct {
	// Driver selects the backend: "duckdb" (embedded, default), "mysql"
	// or "memory" (volatile, for demos and tests).
	Driver string `koanf:"driver"`

	// Path is the DuckDB file; ":memory:" keeps everything in process.
	Path      string `koanf:"path"`
	MaxMemory string `koanf:"max_memory"`
	Threads   int    `koanf:"threads"` // Number of DuckDB threads (0 = use NumCPU)

	// DSN is the go-sql-driver/mysql data source name.
	DSN string `koanf:"dsn"`

	MaxOpenConns int `koanf:"max_open_conns"` // 0 = use NumCPU

	// QueryTimeout bounds every store call whose context has no deadline.
	QueryTimeout time.Duration `koanf:"query_timeout"`

	// CheckpointInterval schedules DuckDB checkpoints; 0 disables them.
	CheckpointInterval time.Duration `koanf:"checkpoint_interval"`

	// SeedFile is an optional YAML fixture file applied at startup.
	SeedFile string `koanf:"seed_file"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// APIConfig holds HTTP API limits
type APIConfig struct {
	// DefaultReviewLimit is used when a review listing omits count.
	DefaultReviewLimit int `koanf:"default_review_limit"`

	// MaxListLimit caps count parameters on popular and review listings.
	MaxListLimit int `koanf:"max_list_limit"`

	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}
