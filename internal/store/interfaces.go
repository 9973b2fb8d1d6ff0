package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-face-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// FaceStore persists face records and the termination log.
//
// Implementations must be safe for concurrent use. Every method either
// completes fully or leaves the store unchanged.
type FaceStore interface {
	// GetFaceRecord returns the record of userID or [ErrFaceRecordNotFound].
	GetFaceRecord(ctx context.Context, userID string) (models.FaceRecord, error)

	// PutFaceRecord inserts record or replaces the existing record of the
	// same user.
	PutFaceRecord(ctx context.Context, record models.FaceRecord) error

	// DeleteFaceRecord removes the record of userID. Deleting a missing
	// record is not an error.
	DeleteFaceRecord(ctx context.Context, userID string) error

	// ListFaceRecords returns every stored record ordered by enrollment time.
	ListFaceRecords(ctx context.Context) ([]models.FaceRecord, error)

	// CountFaceRecords returns the number of stored records.
	CountFaceRecords(ctx context.Context) (int, error)

	// MarkVerified sets LastVerifiedAt of an existing record. It returns
	// [ErrFaceRecordNotFound] if the record does not exist, so a record
	// deleted concurrently is never brought back.
	MarkVerified(ctx context.Context, userID string, at time.Time) error

	// TerminateAccount deletes the face record of termination.UserID and
	// appends termination to the log in one atomic step. Terminating an
	// already terminated account keeps the original log entry.
	TerminateAccount(ctx context.Context, termination models.TerminationRecord) error

	// IsTerminated reports whether userID appears in the termination log.
	IsTerminated(ctx context.Context, userID string) (bool, error)

	// ListTerminations returns the termination log in append order.
	ListTerminations(ctx context.Context) ([]models.TerminationRecord, error)

	// CountTerminations returns the number of terminated accounts.
	CountTerminations(ctx context.Context) (int, error)

	// Close releases the underlying resources.
	Close() error
}

// ErrorClassificator decides whether a failed database operation is worth
// repeating.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
