package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-face-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEnroll(t *testing.T) {
	tests := []struct {
		name       string
		result     models.VerificationResult
		wantStatus int
	}{
		{
			name:       "success",
			result:     models.Succeeded("Face registered successfully"),
			wantStatus: http.StatusOK,
		},
		{
			name:       "duplicate face",
			result:     models.Rejected(models.StatusDuplicateFaceDetected, "duplicate").WithConfidence(97),
			wantStatus: http.StatusConflict,
		},
		{
			name:       "no face",
			result:     models.Rejected(models.StatusNoFaceDetected, "no face"),
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "terminated",
			result:     models.Rejected(models.StatusAccountTerminated, "terminated"),
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "oracle unavailable",
			result:     models.Unavailable("try again"),
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, nil)
			env.face.EXPECT().
				Enroll(gomock.Any(), testUserID, models.Frame{Data: jpegFrame, ContentType: "image/jpeg"}).
				Return(tt.result)

			req := withUser(httptest.NewRequest(http.MethodPost, "/api/face/enroll", strings.NewReader(faceBody(t, jpegFrame, "image/jpeg"))), testUserID)
			rec := httptest.NewRecorder()

			env.handler.enroll(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var got models.VerificationResult
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.result, got)
		})
	}
}

func TestVerify(t *testing.T) {
	tests := []struct {
		name       string
		result     models.VerificationResult
		wantStatus int
	}{
		{
			name:       "match",
			result:     models.Succeeded("Face verified successfully").WithConfidence(99),
			wantStatus: http.StatusOK,
		},
		{
			name:       "mismatch",
			result:     models.Rejected(models.StatusFailure, "Face verification failed").WithConfidence(40),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not enrolled",
			result:     models.Rejected(models.StatusNotEnrolled, "not enrolled"),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "multiple faces",
			result:     models.Rejected(models.StatusMultipleFacesDetected, "multiple"),
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, nil)
			env.face.EXPECT().
				Verify(gomock.Any(), testUserID, gomock.Any()).
				Return(tt.result)

			req := withUser(httptest.NewRequest(http.MethodPost, "/api/face/verify", strings.NewReader(faceBody(t, jpegFrame, ""))), testUserID)
			rec := httptest.NewRecorder()

			env.handler.verify(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var got models.VerificationResult
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.result.Status, got.Status)
			assert.Equal(t, tt.result.Confidence, got.Confidence)
		})
	}
}

func TestHandleFace_RejectedBeforeService(t *testing.T) {
	pngFrame := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

	tests := []struct {
		name       string
		body       string
		userID     string
		wantStatus int
	}{
		{
			name:       "no authenticated user",
			body:       faceBody(t, jpegFrame, ""),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed json",
			body:       `{"frame":`,
			userID:     testUserID,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing frame",
			body:       `{"content_type":"image/jpeg"}`,
			userID:     testUserID,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "frame is not base64",
			body:       `{"frame":"not base64!"}`,
			userID:     testUserID,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "content type outside allowed set",
			body:       faceBody(t, jpegFrame, "image/gif"),
			userID:     testUserID,
			wantStatus: http.StatusUnsupportedMediaType,
		},
		{
			name:       "declared type differs from payload",
			body:       faceBody(t, pngFrame, "image/jpeg"),
			userID:     testUserID,
			wantStatus: http.StatusUnsupportedMediaType,
		},
		{
			name:       "payload is not an image",
			body:       faceBody(t, []byte("just some text"), ""),
			userID:     testUserID,
			wantStatus: http.StatusUnsupportedMediaType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no expectations: the service must not be reached
			env := newTestEnv(t, nil)

			req := httptest.NewRequest(http.MethodPost, "/api/face/enroll", strings.NewReader(tt.body))
			if tt.userID != "" {
				req = withUser(req, tt.userID)
			}
			rec := httptest.NewRecorder()

			env.handler.enroll(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandleFace_BodyTooLarge(t *testing.T) {
	env := newTestEnv(t, nil)

	body := `{"frame":"` + strings.Repeat("A", maxFaceRequestBytes) + `"}`
	req := withUser(httptest.NewRequest(http.MethodPost, "/api/face/verify", strings.NewReader(body)), testUserID)
	rec := httptest.NewRecorder()

	env.handler.verify(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestStatus(t *testing.T) {
	t.Run("reports both flags", func(t *testing.T) {
		env := newTestEnv(t, nil)
		want := models.AccountStatus{UserID: testUserID, Terminated: true, Enrolled: false}
		env.face.EXPECT().AccountStatus(gomock.Any(), testUserID).Return(want, nil)

		rec := httptest.NewRecorder()
		env.handler.status(rec, withUser(httptest.NewRequest(http.MethodGet, "/api/face/status", nil), testUserID))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"user_id":"user-42","is_terminated":true,"has_face_registered":false}`, rec.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		env := newTestEnv(t, nil)
		env.face.EXPECT().
			AccountStatus(gomock.Any(), testUserID).
			Return(models.AccountStatus{}, errors.New("connection reset"))

		rec := httptest.NewRecorder()
		env.handler.status(rec, withUser(httptest.NewRequest(http.MethodGet, "/api/face/status", nil), testUserID))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("no authenticated user", func(t *testing.T) {
		env := newTestEnv(t, nil)

		rec := httptest.NewRecorder()
		env.handler.status(rec, httptest.NewRequest(http.MethodGet, "/api/face/status", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
