// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.SimilarityThreshold <= 0 || cfg.App.SimilarityThreshold > 1 {
		return fmt.Errorf("%w: similarity threshold %v is outside (0, 1]", ErrInvalidAppConfigs, cfg.App.SimilarityThreshold)
	}
	if cfg.App.EmbeddingDim < 0 {
		return fmt.Errorf("%w: negative embedding dimension", ErrInvalidAppConfigs)
	}
	if cfg.App.InferenceTimeout <= 0 {
		return fmt.Errorf("%w: inference timeout must be positive", ErrInvalidAppConfigs)
	}
	if cfg.App.EncryptionKeyFile == "" && (cfg.App.EncryptionSecret == "" || cfg.App.EncryptionSalt == "") {
		return fmt.Errorf("%w: either encryption key file or encryption secret and salt are required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	switch cfg.Storage.DB.Driver {
	case DriverMemory:
	case DriverSQLite, DriverPostgres:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: dsn is required for driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return fmt.Errorf("%w: no server address configured", ErrInvalidServerConfigs)
	}

	if cfg.Adapter.OracleURL == "" {
		return fmt.Errorf("%w: embedding oracle url is required", ErrInvalidAdapterConfigs)
	}

	if cfg.Workers.StatsInterval <= 0 {
		return fmt.Errorf("%w: stats interval must be positive", ErrInvalidWorkerConfigs)
	}

	return nil
}
