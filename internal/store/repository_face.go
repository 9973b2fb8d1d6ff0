// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-face-keeper/internal/logger"
	"github.com/MKhiriev/go-face-keeper/models"
)

// faceRepository is the SQL implementation of [FaceStore]. It runs on any
// dialect supported by [DB].
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so database failures are traced with the request's
// fields.
type faceRepository struct {
	*DB
	queries faceQueries
}

// NewFaceRepository constructs a SQL-backed [FaceStore] over db.
func NewFaceRepository(db *DB) FaceStore {
	return &faceRepository{
		DB:      db,
		queries: faceQueries{sb: db.builder},
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFaceRecord(row rowScanner) (models.FaceRecord, error) {
	var (
		record       models.FaceRecord
		lastVerified sql.NullTime
	)
	if err := row.Scan(&record.UserID, &record.EncryptedEmbedding, &record.CreatedAt, &lastVerified); err != nil {
		return models.FaceRecord{}, err
	}
	if lastVerified.Valid {
		at := lastVerified.Time
		record.LastVerifiedAt = &at
	}
	return record, nil
}

func (f *faceRepository) GetFaceRecord(ctx context.Context, userID string) (models.FaceRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := f.queries.selectFaceRecord(userID)
	if err != nil {
		return models.FaceRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var record models.FaceRecord
	err = f.withRetry(ctx, func() error {
		var scanErr error
		record, scanErr = scanFaceRecord(f.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.FaceRecord{}, ErrFaceRecordNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "faceRepository.GetFaceRecord").
			Str("user_id", userID).
			Msg("failed to get face record")
		return models.FaceRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return record, nil
}

func (f *faceRepository) PutFaceRecord(ctx context.Context, record models.FaceRecord) error {
	if record.UserID == "" {
		return ErrEmptyUserID
	}
	log := logger.FromContext(ctx)

	query, args, err := f.queries.upsertFaceRecord(record)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = f.exec(ctx, query, args); err != nil {
		log.Err(err).
			Str("func", "faceRepository.PutFaceRecord").
			Str("user_id", record.UserID).
			Msg("failed to save face record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (f *faceRepository) DeleteFaceRecord(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	query, args, err := f.queries.deleteFaceRecord(userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = f.exec(ctx, query, args); err != nil {
		log.Err(err).
			Str("func", "faceRepository.DeleteFaceRecord").
			Str("user_id", userID).
			Msg("failed to delete face record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (f *faceRepository) ListFaceRecords(ctx context.Context) ([]models.FaceRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := f.queries.selectAllFaceRecords()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var records []models.FaceRecord
	err = f.withRetry(ctx, func() error {
		rows, queryErr := f.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
		}
		defer rows.Close()

		records = make([]models.FaceRecord, 0, 64)
		for rows.Next() {
			record, scanErr := scanFaceRecord(rows)
			if scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			records = append(records, record)
		}
		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "faceRepository.ListFaceRecords").
			Msg("failed to list face records")
		return nil, err
	}

	return records, nil
}

func (f *faceRepository) CountFaceRecords(ctx context.Context) (int, error) {
	query, args, err := f.queries.countFaceRecords()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return f.count(ctx, query, args)
}

func (f *faceRepository) MarkVerified(ctx context.Context, userID string, at time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := f.queries.markVerified(userID, at)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = f.withRetry(ctx, func() error {
		res, execErr := f.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr = res.RowsAffected()
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "faceRepository.MarkVerified").
			Str("user_id", userID).
			Msg("failed to update last verification time")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrFaceRecordNotFound
	}

	return nil
}

func (f *faceRepository) TerminateAccount(ctx context.Context, termination models.TerminationRecord) error {
	if termination.UserID == "" {
		return ErrEmptyUserID
	}
	log := logger.FromContext(ctx)

	deleteQuery, deleteArgs, err := f.queries.deleteFaceRecord(termination.UserID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	insertQuery, insertArgs, err := f.queries.insertTermination(termination)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = f.withRetry(ctx, func() error {
		tx, txErr := f.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("%w: %w", ErrBeginningTransaction, txErr)
		}
		defer tx.Rollback()

		if _, txErr = tx.ExecContext(ctx, deleteQuery, deleteArgs...); txErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, txErr)
		}
		if _, txErr = tx.ExecContext(ctx, insertQuery, insertArgs...); txErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, txErr)
		}
		if txErr = tx.Commit(); txErr != nil {
			return fmt.Errorf("%w: %w", ErrCommitingTransaction, txErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "faceRepository.TerminateAccount").
			Str("user_id", termination.UserID).
			Msg("failed to terminate account")
		return err
	}

	return nil
}

func (f *faceRepository) IsTerminated(ctx context.Context, userID string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := f.queries.selectTerminated(userID)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	err = f.withRetry(ctx, func() error {
		return f.QueryRowContext(ctx, query, args...).Scan(&one)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "faceRepository.IsTerminated").
			Str("user_id", userID).
			Msg("failed to check termination log")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return true, nil
}

func (f *faceRepository) ListTerminations(ctx context.Context) ([]models.TerminationRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := f.queries.selectAllTerminations()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var terminations []models.TerminationRecord
	err = f.withRetry(ctx, func() error {
		rows, queryErr := f.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
		}
		defer rows.Close()

		terminations = make([]models.TerminationRecord, 0, 16)
		for rows.Next() {
			var (
				t      models.TerminationRecord
				reason string
			)
			if scanErr := rows.Scan(&t.ID, &t.UserID, &t.TerminatedAt, &reason); scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			t.Reason = models.TerminationReason(reason)
			terminations = append(terminations, t)
		}
		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "faceRepository.ListTerminations").
			Msg("failed to list terminations")
		return nil, err
	}

	return terminations, nil
}

func (f *faceRepository) CountTerminations(ctx context.Context) (int, error) {
	query, args, err := f.queries.countTerminations()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return f.count(ctx, query, args)
}

func (f *faceRepository) Close() error {
	return f.DB.Close()
}

func (f *faceRepository) exec(ctx context.Context, query string, args []any) error {
	return f.withRetry(ctx, func() error {
		_, err := f.ExecContext(ctx, query, args...)
		return err
	})
}

func (f *faceRepository) count(ctx context.Context, query string, args []any) (int, error) {
	var n int
	err := f.withRetry(ctx, func() error {
		return f.QueryRowContext(ctx, query, args...).Scan(&n)
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return n, nil
}
