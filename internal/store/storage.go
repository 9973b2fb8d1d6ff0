// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-face-keeper/internal/config"
	"github.com/MKhiriev/go-face-keeper/internal/logger"
)

// NewStorage builds the [FaceStore] selected by cfg.DB.Driver. SQL backends
// are connected and migrated before they are returned.
func NewStorage(ctx context.Context, cfg config.Storage, log *logger.Logger) (FaceStore, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.DB.Driver {
	case config.DriverMemory, "":
		log.Warn().Msg("using in-memory face store, records are lost on restart")
		return NewMemoryFaceStore(), nil
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.DB.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("driver", cfg.DB.Driver).Msg("database migration failed")
		_ = db.Close()
		return nil, err
	}

	return NewFaceRepository(db), nil
}
