package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-face-keeper/internal/service"
	"github.com/MKhiriev/go-face-keeper/internal/store"
	"github.com/MKhiriev/go-face-keeper/internal/validators"
	"github.com/MKhiriev/go-face-keeper/models"
)

var errorStatusMap = map[error]int{
	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrMissingUserID:              http.StatusUnauthorized,
	ErrMalformedBody:              http.StatusBadRequest,
	ErrInvalidGzipBody:            http.StatusBadRequest,

	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	validators.ErrInvalidFrame:           http.StatusBadRequest,
	validators.ErrEmptyFrame:             http.StatusBadRequest,
	validators.ErrUnknownField:           http.StatusBadRequest,
	validators.ErrFrameTooLarge:          http.StatusRequestEntityTooLarge,
	validators.ErrUnsupportedContentType: http.StatusUnsupportedMediaType,

	store.ErrBuildingSQLQuery:     http.StatusServiceUnavailable,
	store.ErrExecutingQuery:       http.StatusServiceUnavailable,
	store.ErrBeginningTransaction: http.StatusServiceUnavailable,
	store.ErrCommitingTransaction: http.StatusServiceUnavailable,
	store.ErrExecutingStatement:   http.StatusServiceUnavailable,
	store.ErrScanningRow:          http.StatusServiceUnavailable,
	store.ErrScanningRows:         http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return http.StatusRequestEntityTooLarge
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

var resultStatusMap = map[models.Status]int{
	models.StatusSuccess:               http.StatusOK,
	models.StatusFailure:               http.StatusUnauthorized,
	models.StatusNoFaceDetected:        http.StatusUnprocessableEntity,
	models.StatusMultipleFacesDetected: http.StatusUnprocessableEntity,
	models.StatusDuplicateFaceDetected: http.StatusConflict,
	models.StatusNotEnrolled:           http.StatusNotFound,
	models.StatusAccountTerminated:     http.StatusForbidden,
}

// statusFromResult derives the response code from the result kind.
// Retryable failures are reported as 503 so clients know to try again.
func statusFromResult(result models.VerificationResult) int {
	if result.Status == models.StatusFailure && result.Retryable {
		return http.StatusServiceUnavailable
	}
	if status, ok := resultStatusMap[result.Status]; ok {
		return status
	}
	return http.StatusInternalServerError
}
