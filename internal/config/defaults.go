// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Default values applied to fields left empty by every source.
const (
	DefaultSimilarityThreshold = 0.95
	DefaultInferenceTimeout    = 5 * time.Second
	DefaultDriver              = DriverMemory
	DefaultRequestTimeout      = 30 * time.Second
	DefaultOracleTimeout       = 10 * time.Second
	DefaultStatsInterval       = time.Minute
	DefaultLogLevel            = "info"
	DefaultTokenIssuer         = "go-face-keeper"
)

// Supported storage drivers.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Defaults returns the configuration used for every field no source set.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SimilarityThreshold: DefaultSimilarityThreshold,
			InferenceTimeout:    DefaultInferenceTimeout,
			TokenIssuer:         DefaultTokenIssuer,
			LogLevel:            DefaultLogLevel,
		},
		Storage: Storage{
			DB: DB{Driver: DefaultDriver},
		},
		Server: Server{
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			RequestTimeout: DefaultOracleTimeout,
		},
		Workers: Workers{
			StatsInterval: DefaultStatsInterval,
		},
	}
}
