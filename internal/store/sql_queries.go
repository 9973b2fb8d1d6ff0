// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	"github.com/MKhiriev/go-face-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

var (
	faceRecordsTable  = models.FaceRecord{}.TableName()
	terminationsTable = models.TerminationRecord{}.TableName()

	faceRecordColumns  = []string{"user_id", "encrypted_embedding", "created_at", "last_verified_at"}
	terminationColumns = []string{"id", "user_id", "terminated_at", "reason"}
)

const (
	upsertFaceRecordSuffix = `ON CONFLICT (user_id) DO UPDATE SET
		encrypted_embedding = excluded.encrypted_embedding,
		created_at = excluded.created_at,
		last_verified_at = excluded.last_verified_at`

	insertTerminationSuffix = `ON CONFLICT (user_id) DO NOTHING`
)

// faceQueries builds every statement the SQL face store runs. Both supported
// dialects understand the ON CONFLICT clauses, only placeholders differ.
type faceQueries struct {
	sb sq.StatementBuilderType
}

func (q faceQueries) selectFaceRecord(userID string) (string, []any, error) {
	return q.sb.Select(faceRecordColumns...).
		From(faceRecordsTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func (q faceQueries) selectAllFaceRecords() (string, []any, error) {
	return q.sb.Select(faceRecordColumns...).
		From(faceRecordsTable).
		OrderBy("created_at", "user_id").
		ToSql()
}

func (q faceQueries) countFaceRecords() (string, []any, error) {
	return q.sb.Select("COUNT(*)").From(faceRecordsTable).ToSql()
}

func (q faceQueries) upsertFaceRecord(r models.FaceRecord) (string, []any, error) {
	var lastVerified any
	if r.LastVerifiedAt != nil {
		lastVerified = r.LastVerifiedAt.UTC()
	}

	return q.sb.Insert(faceRecordsTable).
		Columns(faceRecordColumns...).
		Values(r.UserID, r.EncryptedEmbedding, r.CreatedAt.UTC(), lastVerified).
		Suffix(upsertFaceRecordSuffix).
		ToSql()
}

func (q faceQueries) deleteFaceRecord(userID string) (string, []any, error) {
	return q.sb.Delete(faceRecordsTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func (q faceQueries) markVerified(userID string, at time.Time) (string, []any, error) {
	return q.sb.Update(faceRecordsTable).
		Set("last_verified_at", at.UTC()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func (q faceQueries) insertTermination(t models.TerminationRecord) (string, []any, error) {
	return q.sb.Insert(terminationsTable).
		Columns(terminationColumns...).
		Values(t.ID, t.UserID, t.TerminatedAt.UTC(), string(t.Reason)).
		Suffix(insertTerminationSuffix).
		ToSql()
}

func (q faceQueries) selectTerminated(userID string) (string, []any, error) {
	return q.sb.Select("1").
		From(terminationsTable).
		Where(sq.Eq{"user_id": userID}).
		Limit(1).
		ToSql()
}

func (q faceQueries) selectAllTerminations() (string, []any, error) {
	return q.sb.Select(terminationColumns...).
		From(terminationsTable).
		OrderBy("terminated_at", "id").
		ToSql()
}

func (q faceQueries) countTerminations() (string, []any, error) {
	return q.sb.Select("COUNT(*)").From(terminationsTable).ToSql()
}
