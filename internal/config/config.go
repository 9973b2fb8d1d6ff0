// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-face-keeper application. It aggregates all sub-configurations and is
// populated by merging values from a .env file, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds face-matching policy, cryptographic material and token
	// validation parameters.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the face record store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds configuration for the external embedding oracle.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// SimilarityThreshold is the minimum similarity (0..1] at which two
	// embeddings are treated as the same person. Tunable, not derived.
	// Env: APP_SIMILARITY_THRESHOLD
	SimilarityThreshold float64 `env:"SIMILARITY_THRESHOLD"`

	// EmbeddingDim is the expected embedding length. Zero disables the check.
	// Env: APP_EMBEDDING_DIM
	EmbeddingDim int `env:"EMBEDDING_DIM"`

	// InferenceTimeout bounds a single call to the embedding oracle.
	// Env: APP_INFERENCE_TIMEOUT
	InferenceTimeout time.Duration `env:"INFERENCE_TIMEOUT"`

	// EncryptionSecret is the passphrase the embedding key is derived from.
	// Must be kept confidential.
	// Env: APP_ENCRYPTION_SECRET
	EncryptionSecret string `env:"ENCRYPTION_SECRET"`

	// EncryptionSalt is the KDF salt paired with EncryptionSecret. It must
	// stay stable for the lifetime of the stored records.
	// Env: APP_ENCRYPTION_SALT
	EncryptionSalt string `env:"ENCRYPTION_SALT"`

	// EncryptionKeyFile is a path to a file holding a raw 32-byte key
	// (binary, hex or base64). Takes precedence over EncryptionSecret.
	// Env: APP_ENCRYPTION_KEY_FILE
	EncryptionKeyFile string `env:"ENCRYPTION_KEY_FILE"`

	// TokenSignKey is the secret used to verify bearer JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim of bearer tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the face store connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the face store.
type DB struct {
	// Driver selects the backend: "memory", "sqlite" or "postgres".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the connection string. A file path for sqlite,
	// a postgres URL for postgres, ignored for memory.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address on which the gRPC server listens,
	// in "host:port" format (e.g. "0.0.0.0:9090").
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds configuration for outbound integrations.
type Adapter struct {
	// OracleURL is the base URL of the face embedding server.
	// Env: ADAPTER_ORACLE_URL
	OracleURL string `env:"ORACLE_URL"`

	// RequestTimeout is the transport timeout of oracle HTTP calls.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// StatsInterval is how often store statistics are exported as metrics.
	// Env: WORKERS_STATS_INTERVAL
	StatsInterval time.Duration `env:"STATS_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. .env file and environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Unset fields are then filled from [Defaults].
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(osArgs()).
		withJSON().
		build()
}
