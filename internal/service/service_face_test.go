// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-face-keeper/internal/adapter"
	"github.com/MKhiriev/go-face-keeper/internal/config"
	"github.com/MKhiriev/go-face-keeper/internal/crypto"
	"github.com/MKhiriev/go-face-keeper/internal/logger"
	"github.com/MKhiriev/go-face-keeper/internal/mock"
	"github.com/MKhiriev/go-face-keeper/internal/store"
	"github.com/MKhiriev/go-face-keeper/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

var fixedNow = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

// fakeOracle maps frame bytes to a prepared detection list, so tests
// control the embedding distance exactly.
type fakeOracle struct {
	mu    sync.Mutex
	faces map[string][]models.FaceDetection
	err   error
	calls int
}

func newFakeOracle() *fakeOracle {
	return &fakeOracle{faces: map[string][]models.FaceDetection{}}
}

func (o *fakeOracle) withFace(frame string, embedding []float32) *fakeOracle {
	o.faces[frame] = []models.FaceDetection{{Index: 0, Embedding: embedding, Score: 0.99}}
	return o
}

func (o *fakeOracle) withFaces(frame string, embeddings ...[]float32) *fakeOracle {
	detections := make([]models.FaceDetection, 0, len(embeddings))
	for i, e := range embeddings {
		detections = append(detections, models.FaceDetection{Index: i, Embedding: e, Score: 0.9})
	}
	o.faces[frame] = detections
	return o
}

func (o *fakeOracle) DetectFaces(ctx context.Context, frame models.Frame) ([]models.FaceDetection, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls++

	if o.err != nil {
		return nil, o.err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return o.faces[string(frame.Data)], nil
}

func frame(name string) models.Frame {
	return models.Frame{Data: []byte(name), ContentType: "image/jpeg"}
}

// unit returns a vector of the given dimension with value at index i.
func unit(dim, i int, value float32) []float32 {
	v := make([]float32, dim)
	v[i] = value
	return v
}

// shifted returns a copy of base moved by delta along the first axis,
// i.e. at euclidean distance |delta| from base.
func shifted(base []float32, delta float32) []float32 {
	v := append([]float32(nil), base...)
	v[0] += delta
	return v
}

type testEnv struct {
	svc    *faceIdentityService
	store  store.FaceStore
	oracle *fakeOracle
	cipher crypto.EmbeddingCipher
}

func newTestEnv(t *testing.T, oracle *fakeOracle, cfg config.App) testEnv {
	t.Helper()

	faces := store.NewMemoryFaceStore()
	cipher := crypto.NewEmbeddingCipher(crypto.NewPassphraseKeyProvider("test-secret", "test-salt"))
	svc := NewFaceIdentityService(faces, oracle, cipher, nil, cfg, logger.Nop()).(*faceIdentityService)
	svc.now = func() time.Time { return fixedNow }

	return testEnv{svc: svc, store: faces, oracle: oracle, cipher: cipher}
}

func snapshot(t *testing.T, faces store.FaceStore) ([]models.FaceRecord, []models.TerminationRecord) {
	t.Helper()
	records, err := faces.ListFaceRecords(context.Background())
	require.NoError(t, err)
	terminations, err := faces.ListTerminations(context.Background())
	require.NoError(t, err)
	return records, terminations
}

// ─────────────────────────────────────────────
// similarity
// ─────────────────────────────────────────────

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name    string
		a, b    []float32
		want    float64
		wantErr error
	}{
		{name: "identical", a: []float32{0.1, 0.2, 0.3}, b: []float32{0.1, 0.2, 0.3}, want: 1},
		{name: "close", a: []float32{1, 0}, b: []float32{1.03, 0}, want: 0.97},
		{name: "far is clamped to zero", a: []float32{0, 0}, b: []float32{3, 4}, want: 0},
		{name: "length mismatch", a: []float32{1}, b: []float32{1, 2}, wantErr: ErrEmbeddingLengthMismatch},
		{name: "empty", a: nil, b: []float32{1}, wantErr: ErrEmptyEmbedding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := similarity(tt.a, tt.b)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-6)
		})
	}
}

func TestConfidence(t *testing.T) {
	assert.Equal(t, 100, confidence(1))
	assert.Equal(t, 97, confidence(0.9651))
	assert.Equal(t, 96, confidence(0.9649))
	assert.Equal(t, 0, confidence(0))
}

// ─────────────────────────────────────────────
// Enroll / Verify against the memory store
// ─────────────────────────────────────────────

func TestVerify_SameFaceTwice_Succeeds(t *testing.T) {
	alice := unit(8, 0, 1)
	oracle := newFakeOracle().
		withFace("alice-1", alice).
		withFace("alice-2", shifted(alice, 0.02))
	env := newTestEnv(t, oracle, config.App{})
	ctx := context.Background()

	res := env.svc.Enroll(ctx, "alice", frame("alice-1"))
	require.True(t, res.Success, res.Message)
	assert.Equal(t, models.StatusSuccess, res.Status)
	assert.Equal(t, "Face registered successfully", res.Message)

	res = env.svc.Verify(ctx, "alice", frame("alice-2"))
	require.True(t, res.Success, res.Message)
	require.NotNil(t, res.Confidence)
	assert.GreaterOrEqual(t, *res.Confidence, 95)
	assert.Equal(t, "Face verified successfully (98% match)", res.Message)

	record, err := env.store.GetFaceRecord(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, record.LastVerifiedAt)
	assert.True(t, fixedNow.Equal(*record.LastVerifiedAt))
	assert.True(t, fixedNow.Equal(record.CreatedAt))
}

func TestVerify_DifferentFace_FailsWithConfidence(t *testing.T) {
	alice := unit(8, 0, 1)
	oracle := newFakeOracle().
		withFace("alice", alice).
		withFace("mallory", shifted(alice, 0.2))
	env := newTestEnv(t, oracle, config.App{})
	ctx := context.Background()

	require.True(t, env.svc.Enroll(ctx, "alice", frame("alice")).Success)
	before, _ := snapshot(t, env.store)

	res := env.svc.Verify(ctx, "alice", frame("mallory"))
	assert.False(t, res.Success)
	assert.Equal(t, models.StatusFailure, res.Status)
	assert.False(t, res.Retryable)
	require.NotNil(t, res.Confidence)
	assert.Equal(t, 80, *res.Confidence)
	assert.Equal(t, "Face verification failed (80% match). Please try again or use alternate authentication.", res.Message)

	after, _ := snapshot(t, env.store)
	assert.Equal(t, before, after, "a failed verification must not touch the store")
}

func TestEnroll_DifferentFaces_NoDuplicate(t *testing.T) {
	oracle := newFakeOracle().
		withFace("alice", unit(4, 0, 1)).
		withFace("bob", unit(4, 1, 1))
	env := newTestEnv(t, oracle, config.App{})
	ctx := context.Background()

	require.True(t, env.svc.Enroll(ctx, "alice", frame("alice")).Success)
	res := env.svc.Enroll(ctx, "bob", frame("bob"))
	require.True(t, res.Success, res.Message)

	records, terminations := snapshot(t, env.store)
	assert.Len(t, records, 2)
	assert.Empty(t, terminations)
}

func TestEnroll_DuplicateFace_TerminatesPreExistingAccount(t *testing.T) {
	face := unit(8, 2, 1)
	oracle := newFakeOracle().
		withFace("first", face).
		withFace("second", shifted(face, 0.01))

	var buf bytes.Buffer
	env := newTestEnv(t, oracle, config.App{})
	env.svc.logger = &logger.Logger{Logger: zerolog.New(&buf)}
	ctx := context.Background()

	require.True(t, env.svc.Enroll(ctx, "first", frame("first")).Success)
	buf.Reset()

	res := env.svc.Enroll(ctx, "second", frame("second"))
	assert.False(t, res.Success)
	assert.Equal(t, models.StatusDuplicateFaceDetected, res.Status)
	assert.False(t, res.Retryable)
	require.NotNil(t, res.Confidence)
	assert.Equal(t, 99, *res.Confidence)
	assert.Equal(t, "Duplicate face detected. The account first registered with this face has been terminated. Only the first registered account is allowed.", res.Message)

	terminated, err := env.svc.IsTerminated(ctx, "first")
	require.NoError(t, err)
	assert.True(t, terminated, "the pre-existing account is terminated")

	terminated, err = env.svc.IsTerminated(ctx, "second")
	require.NoError(t, err)
	assert.False(t, terminated, "the enrolling account is not terminated")

	enrolled, err := env.svc.HasEnrolled(ctx, "first")
	require.NoError(t, err)
	assert.False(t, enrolled)
	enrolled, err = env.svc.HasEnrolled(ctx, "second")
	require.NoError(t, err)
	assert.False(t, enrolled, "a duplicate enrollment stores nothing")

	_, terminations := snapshot(t, env.store)
	require.Len(t, terminations, 1)
	assert.Equal(t, "first", terminations[0].UserID)
	assert.Equal(t, models.ReasonDuplicateFace, terminations[0].Reason)
	assert.True(t, fixedNow.Equal(terminations[0].TerminatedAt))
	assert.NotEmpty(t, terminations[0].ID)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, true, entry["audit"])
	assert.Equal(t, "first", entry["terminated_user_id"])
	assert.Equal(t, "second", entry["enrolling_user_id"])
}

func TestEnroll_DuplicateFace_TerminatesBestMatchOnly(t *testing.T) {
	face := unit(4, 0, 1)
	oracle := newFakeOracle().
		withFace("a", shifted(face, 0.04)).
		withFace("b", shifted(face, 0.01)).
		withFace("new", face)
	env := newTestEnv(t, oracle, config.App{SimilarityThreshold: 0.5})
	ctx := context.Background()

	// a and b are within threshold of each other too, so enroll them with a
	// stricter service first
	strict := NewFaceIdentityService(env.store, oracle, env.cipher, nil, config.App{SimilarityThreshold: 0.999}, logger.Nop())
	require.True(t, strict.Enroll(ctx, "a", frame("a")).Success)
	require.True(t, strict.Enroll(ctx, "b", frame("b")).Success)

	res := env.svc.Enroll(ctx, "new", frame("new"))
	require.Equal(t, models.StatusDuplicateFaceDetected, res.Status)

	status, err := env.svc.AccountStatus(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, models.AccountStatus{UserID: "b", Terminated: true, Enrolled: false}, status)

	status, err = env.svc.AccountStatus(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, models.AccountStatus{UserID: "a", Terminated: false, Enrolled: true}, status)
}

func TestEnroll_ReEnrollSameUser_OverwritesOwnRecord(t *testing.T) {
	face := unit(4, 0, 1)
	oracle := newFakeOracle().
		withFace("v1", face).
		withFace("v2", shifted(face, 0.01))
	env := newTestEnv(t, oracle, config.App{})
	ctx := context.Background()

	require.True(t, env.svc.Enroll(ctx, "alice", frame("v1")).Success)
	res := env.svc.Enroll(ctx, "alice", frame("v2"))
	require.True(t, res.Success, "own stale record is excluded from the duplicate scan")

	records, terminations := snapshot(t, env.store)
	assert.Len(t, records, 1)
	assert.Empty(t, terminations)
}

func TestTerminatedAccount_VerifyAndEnrollAreBlocked(t *testing.T) {
	face := unit(4, 0, 1)
	oracle := newFakeOracle().
		withFace("first", face).
		withFace("second", face)
	env := newTestEnv(t, oracle, config.App{})
	ctx := context.Background()

	require.True(t, env.svc.Enroll(ctx, "first", frame("first")).Success)
	require.Equal(t, models.StatusDuplicateFaceDetected, env.svc.Enroll(ctx, "second", frame("second")).Status)

	calls := oracle.calls
	res := env.svc.Verify(ctx, "first", frame("first"))
	assert.Equal(t, models.StatusAccountTerminated, res.Status, "termination wins over not-enrolled")
	assert.False(t, res.Success)
	assert.False(t, res.Retryable)

	res = env.svc.Enroll(ctx, "first", frame("first"))
	assert.Equal(t, models.StatusAccountTerminated, res.Status)
	assert.Equal(t, calls, oracle.calls, "terminated accounts never reach the oracle")
}

func TestVerify_NotEnrolled(t *testing.T) {
	oracle := newFakeOracle().withFace("alice", unit(4, 0, 1))
	env := newTestEnv(t, oracle, config.App{})

	res := env.svc.Verify(context.Background(), "alice", frame("alice"))
	assert.Equal(t, models.StatusNotEnrolled, res.Status)
	assert.Equal(t, "No registered face found. Please register your face first.", res.Message)
	assert.Nil(t, res.Confidence)
}

func TestNoFace_LeavesStoreUnchanged(t *testing.T) {
	face := unit(4, 0, 1)
	oracle := newFakeOracle().withFace("alice", face)
	env := newTestEnv(t, oracle, config.App{})
	ctx := context.Background()

	require.True(t, env.svc.Enroll(ctx, "alice", frame("alice")).Success)
	records, terminations := snapshot(t, env.store)

	for _, op := range []struct {
		name string
		fn   func(context.Context, string, models.Frame) models.VerificationResult
	}{
		{"enroll", env.svc.Enroll},
		{"verify", env.svc.Verify},
	} {
		t.Run(op.name, func(t *testing.T) {
			res := op.fn(ctx, "alice", frame("empty-room"))
			assert.Equal(t, models.StatusNoFaceDetected, res.Status)
			assert.Equal(t, "No face detected. Please ensure your face is clearly visible.", res.Message)

			res = op.fn(ctx, "alice", models.Frame{})
			assert.Equal(t, models.StatusNoFaceDetected, res.Status)

			gotRecords, gotTerminations := snapshot(t, env.store)
			assert.Equal(t, records, gotRecords)
			assert.Equal(t, terminations, gotTerminations)
		})
	}
}

func TestMultipleFaces_Rejected(t *testing.T) {
	oracle := newFakeOracle().withFaces("crowd", unit(4, 0, 1), unit(4, 1, 1))
	env := newTestEnv(t, oracle, config.App{})
	ctx := context.Background()

	res := env.svc.Enroll(ctx, "alice", frame("crowd"))
	assert.Equal(t, models.StatusMultipleFacesDetected, res.Status)
	assert.False(t, res.Retryable)

	enrolled, err := env.svc.HasEnrolled(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, enrolled)

	res = env.svc.Verify(ctx, "alice", frame("crowd"))
	assert.Equal(t, models.StatusMultipleFacesDetected, res.Status)
}

func TestEmptyUserID_Failure(t *testing.T) {
	env := newTestEnv(t, newFakeOracle(), config.App{})
	ctx := context.Background()

	for _, res := range []models.VerificationResult{
		env.svc.Enroll(ctx, "", frame("x")),
		env.svc.Verify(ctx, "", frame("x")),
	} {
		assert.Equal(t, models.StatusFailure, res.Status)
		assert.False(t, res.Retryable)
	}
	assert.Zero(t, env.oracle.calls)

	_, err := env.svc.IsTerminated(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	_, err = env.svc.HasEnrolled(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	_, err = env.svc.AccountStatus(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestOracleErrors(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantStatus    models.Status
		wantRetryable bool
	}{
		{name: "unavailable", err: adapter.ErrOracleUnavailable, wantStatus: models.StatusFailure, wantRetryable: true},
		{name: "internal error", err: adapter.ErrInternalServerError, wantStatus: models.StatusFailure, wantRetryable: true},
		{name: "deadline", err: context.DeadlineExceeded, wantStatus: models.StatusFailure, wantRetryable: true},
		{name: "bad frame", err: fmt.Errorf("wrap: %w", adapter.ErrBadRequest), wantStatus: models.StatusFailure, wantRetryable: false},
		{name: "empty frame", err: adapter.ErrEmptyFrame, wantStatus: models.StatusNoFaceDetected, wantRetryable: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oracle := newFakeOracle()
			oracle.err = tt.err
			env := newTestEnv(t, oracle, config.App{})

			res := env.svc.Enroll(context.Background(), "alice", frame("alice"))
			assert.Equal(t, tt.wantStatus, res.Status)
			assert.Equal(t, tt.wantRetryable, res.Retryable)

			records, _ := snapshot(t, env.store)
			assert.Empty(t, records)
		})
	}
}

// slowOracle blocks until the inference deadline passes.
type slowOracle struct{}

func (slowOracle) DetectFaces(ctx context.Context, _ models.Frame) ([]models.FaceDetection, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestEnroll_InferenceTimeout(t *testing.T) {
	faces := store.NewMemoryFaceStore()
	cipher := crypto.NewEmbeddingCipher(crypto.NewPassphraseKeyProvider("s", "salt"))
	svc := NewFaceIdentityService(faces, slowOracle{}, cipher, nil, config.App{InferenceTimeout: 20 * time.Millisecond}, logger.Nop())

	start := time.Now()
	res := svc.Enroll(context.Background(), "alice", frame("alice"))

	assert.Less(t, time.Since(start), 2*time.Second)
	assert.Equal(t, models.StatusFailure, res.Status)
	assert.True(t, res.Retryable)
}

func TestEmbeddingDimensionCheck(t *testing.T) {
	oracle := newFakeOracle().withFace("alice", unit(3, 0, 1))
	env := newTestEnv(t, oracle, config.App{EmbeddingDim: 512})

	res := env.svc.Enroll(context.Background(), "alice", frame("alice"))
	assert.Equal(t, models.StatusFailure, res.Status)
	assert.False(t, res.Retryable)
}

func TestEnroll_ConcurrentDuplicates_OneSurvives(t *testing.T) {
	face := unit(16, 0, 1)
	oracle := newFakeOracle().withFace("same", face)
	env := newTestEnv(t, oracle, config.App{})
	ctx := context.Background()

	const n = 10
	var wg sync.WaitGroup
	results := make([]models.VerificationResult, n)
	for i := range n {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = env.svc.Enroll(ctx, fmt.Sprintf("user-%d", i), frame("same"))
		}(i)
	}
	wg.Wait()

	var succeeded, duplicates int
	for _, res := range results {
		switch res.Status {
		case models.StatusSuccess:
			succeeded++
		case models.StatusDuplicateFaceDetected:
			duplicates++
		}
	}
	assert.Equal(t, n, succeeded+duplicates)

	records, terminations := snapshot(t, env.store)
	assert.LessOrEqual(t, len(records), 1, "the critical section never lets two matching faces coexist")
	assert.Equal(t, duplicates, len(terminations))
}

// ─────────────────────────────────────────────
// Enroll / Verify with mocked collaborators
// ─────────────────────────────────────────────

type mockedEnv struct {
	svc      *faceIdentityService
	store    *mock.MockFaceStore
	oracle   *mock.MockEmbeddingOracle
	cipher   *mock.MockEmbeddingCipher
	recorder *mock.MockOutcomeRecorder
}

func newMockedEnv(t *testing.T) mockedEnv {
	ctrl := gomock.NewController(t)
	env := mockedEnv{
		store:    mock.NewMockFaceStore(ctrl),
		oracle:   mock.NewMockEmbeddingOracle(ctrl),
		cipher:   mock.NewMockEmbeddingCipher(ctrl),
		recorder: mock.NewMockOutcomeRecorder(ctrl),
	}
	env.svc = NewFaceIdentityService(env.store, env.oracle, env.cipher, env.recorder, config.App{}, logger.Nop()).(*faceIdentityService)
	env.svc.now = func() time.Time { return fixedNow }
	env.recorder.EXPECT().ObserveExtraction(gomock.Any()).AnyTimes()
	return env
}

func (e mockedEnv) expectFace(embedding []float32) {
	e.oracle.EXPECT().DetectFaces(gomock.Any(), gomock.Any()).
		Return([]models.FaceDetection{{Embedding: embedding}}, nil)
}

func TestEnroll_StoreFailures_AreRetryable(t *testing.T) {
	errDB := errors.New("connection reset")
	face := []float32{1, 0}

	tests := []struct {
		name  string
		setup func(e mockedEnv)
	}{
		{
			name: "termination lookup",
			setup: func(e mockedEnv) {
				e.store.EXPECT().IsTerminated(gomock.Any(), "alice").Return(false, errDB)
			},
		},
		{
			name: "listing records",
			setup: func(e mockedEnv) {
				e.store.EXPECT().IsTerminated(gomock.Any(), "alice").Return(false, nil).Times(2)
				e.expectFace(face)
				e.store.EXPECT().ListFaceRecords(gomock.Any()).Return(nil, errDB)
			},
		},
		{
			name: "decrypting a stored record",
			setup: func(e mockedEnv) {
				e.store.EXPECT().IsTerminated(gomock.Any(), "alice").Return(false, nil).Times(2)
				e.expectFace(face)
				e.store.EXPECT().ListFaceRecords(gomock.Any()).
					Return([]models.FaceRecord{{UserID: "bob", EncryptedEmbedding: "blob"}}, nil)
				e.cipher.EXPECT().DecryptEmbedding(gomock.Any(), "blob").Return(nil, crypto.ErrDecryptionFailed)
			},
		},
		{
			name: "encrypting",
			setup: func(e mockedEnv) {
				e.store.EXPECT().IsTerminated(gomock.Any(), "alice").Return(false, nil).Times(2)
				e.expectFace(face)
				e.store.EXPECT().ListFaceRecords(gomock.Any()).Return(nil, nil)
				e.cipher.EXPECT().EncryptEmbedding(gomock.Any(), face).Return("", crypto.ErrEmptyKeyMaterial)
			},
		},
		{
			name: "saving",
			setup: func(e mockedEnv) {
				e.store.EXPECT().IsTerminated(gomock.Any(), "alice").Return(false, nil).Times(2)
				e.expectFace(face)
				e.store.EXPECT().ListFaceRecords(gomock.Any()).Return(nil, nil)
				e.cipher.EXPECT().EncryptEmbedding(gomock.Any(), face).Return("blob", nil)
				e.store.EXPECT().PutFaceRecord(gomock.Any(), models.FaceRecord{
					UserID:             "alice",
					EncryptedEmbedding: "blob",
					CreatedAt:          fixedNow,
				}).Return(errDB)
			},
		},
		{
			name: "terminating the match",
			setup: func(e mockedEnv) {
				e.store.EXPECT().IsTerminated(gomock.Any(), "alice").Return(false, nil).Times(2)
				e.expectFace(face)
				e.store.EXPECT().ListFaceRecords(gomock.Any()).
					Return([]models.FaceRecord{{UserID: "bob", EncryptedEmbedding: "blob"}}, nil)
				e.cipher.EXPECT().DecryptEmbedding(gomock.Any(), "blob").Return(face, nil)
				e.store.EXPECT().TerminateAccount(gomock.Any(), gomock.Any()).Return(errDB)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newMockedEnv(t)
			tt.setup(e)
			e.recorder.EXPECT().ObserveOutcome(OperationEnroll, models.StatusFailure)

			res := e.svc.Enroll(context.Background(), "alice", frame("alice"))
			assert.Equal(t, models.StatusFailure, res.Status)
			assert.True(t, res.Retryable)
			assert.Equal(t, msgEnrollUnavailable, res.Message)
		})
	}
}

func TestEnroll_TerminatedWhileExtracting(t *testing.T) {
	e := newMockedEnv(t)

	gomock.InOrder(
		e.store.EXPECT().IsTerminated(gomock.Any(), "alice").Return(false, nil),
		e.oracle.EXPECT().DetectFaces(gomock.Any(), gomock.Any()).
			Return([]models.FaceDetection{{Embedding: []float32{1}}}, nil),
		e.store.EXPECT().IsTerminated(gomock.Any(), "alice").Return(true, nil),
	)
	e.recorder.EXPECT().ObserveOutcome(OperationEnroll, models.StatusAccountTerminated)

	res := e.svc.Enroll(context.Background(), "alice", frame("alice"))
	assert.Equal(t, models.StatusAccountTerminated, res.Status)
}

func TestEnroll_CancelledAfterExtraction_CommitsNothing(t *testing.T) {
	e := newMockedEnv(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	e.store.EXPECT().IsTerminated(gomock.Any(), "alice").Return(false, nil)
	e.oracle.EXPECT().DetectFaces(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.Frame) ([]models.FaceDetection, error) {
			cancel()
			return []models.FaceDetection{{Embedding: []float32{1, 0}}}, nil
		})
	e.recorder.EXPECT().ObserveOutcome(OperationEnroll, models.StatusFailure)

	res := e.svc.Enroll(ctx, "alice", frame("alice"))
	assert.Equal(t, models.StatusFailure, res.Status)
	assert.True(t, res.Retryable)
}

func TestEnroll_CancelledWhileWaitingForLock(t *testing.T) {
	oracle := newFakeOracle().withFace("alice", unit(4, 0, 1))
	env := newTestEnv(t, oracle, config.App{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	env.svc.mu.Lock()
	done := make(chan models.VerificationResult, 1)
	go func() { done <- env.svc.Enroll(ctx, "alice", frame("alice")) }()

	require.Eventually(t, func() bool {
		oracle.mu.Lock()
		defer oracle.mu.Unlock()
		return oracle.calls == 1
	}, time.Second, time.Millisecond)
	cancel()
	env.svc.mu.Unlock()

	res := <-done
	assert.Equal(t, models.StatusFailure, res.Status)
	assert.True(t, res.Retryable)

	records, terminations := snapshot(t, env.store)
	assert.Empty(t, records)
	assert.Empty(t, terminations)
}

func TestEnroll_SkipsIncomparableRecords(t *testing.T) {
	e := newMockedEnv(t)
	face := []float32{1, 0}

	e.store.EXPECT().IsTerminated(gomock.Any(), "alice").Return(false, nil).Times(2)
	e.expectFace(face)
	e.store.EXPECT().ListFaceRecords(gomock.Any()).Return([]models.FaceRecord{
		{UserID: "legacy", EncryptedEmbedding: "old"},
	}, nil)
	e.cipher.EXPECT().DecryptEmbedding(gomock.Any(), "old").Return([]float32{1, 0, 0}, nil)
	e.cipher.EXPECT().EncryptEmbedding(gomock.Any(), face).Return("new", nil)
	e.store.EXPECT().PutFaceRecord(gomock.Any(), gomock.Any()).Return(nil)
	e.recorder.EXPECT().ObserveOutcome(OperationEnroll, models.StatusSuccess)

	res := e.svc.Enroll(context.Background(), "alice", frame("alice"))
	assert.True(t, res.Success)
}

func TestVerify_RecordVanishedDuringComparison(t *testing.T) {
	face := []float32{1, 0}

	tests := []struct {
		name       string
		terminated bool
		want       models.Status
	}{
		{name: "terminated concurrently", terminated: true, want: models.StatusAccountTerminated},
		{name: "deleted concurrently", terminated: false, want: models.StatusNotEnrolled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newMockedEnv(t)

			gomock.InOrder(
				e.store.EXPECT().IsTerminated(gomock.Any(), "alice").Return(false, nil),
				e.oracle.EXPECT().DetectFaces(gomock.Any(), gomock.Any()).
					Return([]models.FaceDetection{{Embedding: face}}, nil),
				e.store.EXPECT().GetFaceRecord(gomock.Any(), "alice").
					Return(models.FaceRecord{UserID: "alice", EncryptedEmbedding: "blob"}, nil),
				e.cipher.EXPECT().DecryptEmbedding(gomock.Any(), "blob").Return(face, nil),
				e.store.EXPECT().MarkVerified(gomock.Any(), "alice", fixedNow).
					Return(store.ErrFaceRecordNotFound),
				e.store.EXPECT().IsTerminated(gomock.Any(), "alice").Return(tt.terminated, nil),
			)
			e.recorder.EXPECT().ObserveOutcome(OperationVerify, tt.want)

			res := e.svc.Verify(context.Background(), "alice", frame("alice"))
			assert.Equal(t, tt.want, res.Status)
			assert.False(t, res.Success)
		})
	}
}

func TestVerify_InfrastructureFailures(t *testing.T) {
	errDB := errors.New("db down")
	face := []float32{1, 0}

	tests := []struct {
		name  string
		setup func(e mockedEnv)
	}{
		{
			name: "record lookup",
			setup: func(e mockedEnv) {
				e.store.EXPECT().GetFaceRecord(gomock.Any(), "alice").Return(models.FaceRecord{}, errDB)
			},
		},
		{
			name: "decryption",
			setup: func(e mockedEnv) {
				e.store.EXPECT().GetFaceRecord(gomock.Any(), "alice").
					Return(models.FaceRecord{UserID: "alice", EncryptedEmbedding: "blob"}, nil)
				e.cipher.EXPECT().DecryptEmbedding(gomock.Any(), "blob").Return(nil, crypto.ErrDecryptionFailed)
			},
		},
		{
			name: "marking verified",
			setup: func(e mockedEnv) {
				e.store.EXPECT().GetFaceRecord(gomock.Any(), "alice").
					Return(models.FaceRecord{UserID: "alice", EncryptedEmbedding: "blob"}, nil)
				e.cipher.EXPECT().DecryptEmbedding(gomock.Any(), "blob").Return(face, nil)
				e.store.EXPECT().MarkVerified(gomock.Any(), "alice", fixedNow).Return(errDB)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newMockedEnv(t)
			e.store.EXPECT().IsTerminated(gomock.Any(), "alice").Return(false, nil)
			e.expectFace(face)
			tt.setup(e)
			e.recorder.EXPECT().ObserveOutcome(OperationVerify, models.StatusFailure)

			res := e.svc.Verify(context.Background(), "alice", frame("alice"))
			assert.Equal(t, models.StatusFailure, res.Status)
			assert.True(t, res.Retryable)
			assert.Equal(t, msgVerifyUnavailable, res.Message)
		})
	}
}

func TestAccountStatus_StoreError(t *testing.T) {
	e := newMockedEnv(t)
	errDB := errors.New("db down")

	e.store.EXPECT().IsTerminated(gomock.Any(), "alice").Return(false, nil)
	e.store.EXPECT().GetFaceRecord(gomock.Any(), "alice").Return(models.FaceRecord{}, errDB)

	_, err := e.svc.AccountStatus(context.Background(), "alice")
	require.ErrorIs(t, err, errDB)
}

func TestNewFaceIdentityService_Defaults(t *testing.T) {
	svc := NewFaceIdentityService(nil, nil, nil, nil, config.App{}, logger.Nop()).(*faceIdentityService)

	assert.Equal(t, config.DefaultSimilarityThreshold, svc.threshold)
	assert.Equal(t, config.DefaultInferenceTimeout, svc.inferenceTimeout)
	assert.IsType(t, nopRecorder{}, svc.recorder)
}
