package config

import (
	"time"
)

// Supported document-store drivers.
const (
	// StorageDriverRedis persists into a Redis instance. Default.
	StorageDriverRedis = "redis"

	// StorageDriverMemory keeps everything in process memory. Intended for
	// local development only; data does not survive a restart.
	StorageDriverMemory = "memory"
)

// StructuredConfig is the top-level configuration container for the todo
// service. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds the document-store driver selection and its connection
	// settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:3000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds the configuration of the document-store backend.
type Storage struct {
	// Driver selects the document-store implementation: "redis" (default)
	// or "memory".
	// Env: STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	// Redis holds the Redis connection settings, used when Driver is
	// "redis" or empty.
	Redis Redis `envPrefix:"REDIS_"`
}

// Redis holds connection settings for the Redis document-store driver.
type Redis struct {
	// Addr is the TCP address of the Redis instance in "host:port" format
	// (e.g. "localhost:6379").
	// Env: STORAGE_REDIS_ADDR
	Addr string `env:"ADDR"`

	// Password is the optional Redis AUTH password.
	// Env: STORAGE_REDIS_PASSWORD
	Password string `env:"PASSWORD"`

	// DB is the Redis logical database number.
	// Env: STORAGE_REDIS_DB
	DB int `env:"DB"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first non-zero value wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
