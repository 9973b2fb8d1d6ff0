// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-face-keeper/internal/adapter"
	"github.com/MKhiriev/go-face-keeper/internal/config"
	"github.com/MKhiriev/go-face-keeper/internal/crypto"
	"github.com/MKhiriev/go-face-keeper/internal/logger"
	"github.com/MKhiriev/go-face-keeper/internal/store"
	"github.com/MKhiriev/go-face-keeper/internal/utils"
	"github.com/MKhiriev/go-face-keeper/models"
)

// idGenerator produces identifiers of termination log entries.
type idGenerator interface {
	Generate() string
}

// faceIdentityService is the concrete implementation of FaceIdentityService.
//
// Enrollment scans the whole face table for duplicates, so the
// read-compare-write part of Enroll runs under a single service-wide mutex.
// The mutex only covers one process: several replicas sharing a database
// still race on that section.
type faceIdentityService struct {
	faces    store.FaceStore
	oracle   adapter.EmbeddingOracle
	cipher   crypto.EmbeddingCipher
	recorder OutcomeRecorder

	// threshold is the minimum similarity treated as the same person.
	threshold float64

	// embeddingDim is the expected embedding length, 0 disables the check.
	embeddingDim int

	// inferenceTimeout bounds a single oracle call.
	inferenceTimeout time.Duration

	ids idGenerator
	now func() time.Time

	mu sync.Mutex

	logger *logger.Logger
}

// NewFaceIdentityService wires a FaceIdentityService from its collaborators.
// recorder may be nil. Zero threshold and timeout fall back to the package
// defaults of config.
func NewFaceIdentityService(
	faces store.FaceStore,
	oracle adapter.EmbeddingOracle,
	cipher crypto.EmbeddingCipher,
	recorder OutcomeRecorder,
	cfg config.App,
	logger *logger.Logger,
) FaceIdentityService {
	if recorder == nil {
		recorder = nopRecorder{}
	}

	threshold := cfg.SimilarityThreshold
	if threshold <= 0 {
		threshold = config.DefaultSimilarityThreshold
	}
	timeout := cfg.InferenceTimeout
	if timeout <= 0 {
		timeout = config.DefaultInferenceTimeout
	}

	return &faceIdentityService{
		faces:            faces,
		oracle:           oracle,
		cipher:           cipher,
		recorder:         recorder,
		threshold:        threshold,
		embeddingDim:     cfg.EmbeddingDim,
		inferenceTimeout: timeout,
		ids:              utils.NewUUIDGenerator(),
		now:              time.Now,
		logger:           logger,
	}
}

// Enroll registers the face in frame as the credential of userID.
//
// Terminated accounts cannot enroll. If the new face matches the credential
// of another account at or above the threshold, the other (pre-existing)
// account is terminated and the result is duplicate-face-detected; the
// enrolling account is left untouched.
func (s *faceIdentityService) Enroll(ctx context.Context, userID string, frame models.Frame) models.VerificationResult {
	result := s.enroll(ctx, userID, frame)
	s.recorder.ObserveOutcome(OperationEnroll, result.Status)
	return result
}

func (s *faceIdentityService) enroll(ctx context.Context, userID string, frame models.Frame) models.VerificationResult {
	log := logger.FromContextOr(ctx, s.logger)

	if userID == "" {
		log.Error().Msg("enroll called without user id")
		return models.Rejected(models.StatusFailure, msgMissingUserID)
	}

	if result, blocked := s.checkTerminated(ctx, userID, msgEnrollUnavailable); blocked {
		return result
	}

	embedding, result, ok := s.extract(ctx, userID, frame, msgEnrollUnavailable)
	if !ok {
		return result
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		log.Err(err).Str("user_id", userID).Msg("enrollment cancelled while waiting for the face table")
		return models.Unavailable(msgEnrollUnavailable)
	}

	// a concurrent enrollment may have terminated this account while the
	// oracle was running
	if result, blocked := s.checkTerminated(ctx, userID, msgEnrollUnavailable); blocked {
		return result
	}

	match, err := s.bestMatch(ctx, userID, embedding)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("duplicate face scan failed")
		return models.Unavailable(msgEnrollUnavailable)
	}

	if match.found && match.similarity >= s.threshold {
		return s.terminateDuplicate(ctx, userID, match)
	}

	encrypted, err := s.cipher.EncryptEmbedding(ctx, embedding)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("embedding encryption failed")
		return models.Unavailable(msgEnrollUnavailable)
	}

	record := models.FaceRecord{
		UserID:             userID,
		EncryptedEmbedding: encrypted,
		CreatedAt:          s.now().UTC(),
	}
	if err = s.faces.PutFaceRecord(ctx, record); err != nil {
		log.Err(err).Str("user_id", userID).Msg("face record was not saved")
		return models.Unavailable(msgEnrollUnavailable)
	}

	log.Info().Str("user_id", userID).Msg("face enrolled")
	return models.Succeeded(msgEnrolled)
}

func (s *faceIdentityService) terminateDuplicate(ctx context.Context, enrollingUserID string, match faceMatch) models.VerificationResult {
	log := logger.FromContextOr(ctx, s.logger)

	termination := models.TerminationRecord{
		ID:           s.ids.Generate(),
		UserID:       match.userID,
		TerminatedAt: s.now().UTC(),
		Reason:       models.ReasonDuplicateFace,
	}
	if err := s.faces.TerminateAccount(ctx, termination); err != nil {
		log.Err(err).
			Str("user_id", enrollingUserID).
			Str("matched_user_id", match.userID).
			Msg("duplicate account was not terminated")
		return models.Unavailable(msgEnrollUnavailable)
	}

	score := confidence(match.similarity)
	log.Audit().
		Str("event", "account_terminated").
		Str("terminated_user_id", match.userID).
		Str("enrolling_user_id", enrollingUserID).
		Str("termination_id", termination.ID).
		Str("reason", string(termination.Reason)).
		Float64("similarity", match.similarity).
		Int("confidence", score).
		Msg("account terminated due to duplicate face")

	return models.Rejected(models.StatusDuplicateFaceDetected, msgDuplicateFace).
		WithConfidence(score)
}

// Verify authenticates userID with the face in frame.
//
// Termination is checked first, so a terminated account gets
// account-terminated rather than not-enrolled.
func (s *faceIdentityService) Verify(ctx context.Context, userID string, frame models.Frame) models.VerificationResult {
	result := s.verify(ctx, userID, frame)
	s.recorder.ObserveOutcome(OperationVerify, result.Status)
	return result
}

func (s *faceIdentityService) verify(ctx context.Context, userID string, frame models.Frame) models.VerificationResult {
	log := logger.FromContextOr(ctx, s.logger)

	if userID == "" {
		log.Error().Msg("verify called without user id")
		return models.Rejected(models.StatusFailure, msgMissingUserID)
	}

	if result, blocked := s.checkTerminated(ctx, userID, msgVerifyUnavailable); blocked {
		return result
	}

	embedding, result, ok := s.extract(ctx, userID, frame, msgVerifyUnavailable)
	if !ok {
		return result
	}

	record, err := s.faces.GetFaceRecord(ctx, userID)
	if errors.Is(err, store.ErrFaceRecordNotFound) {
		return models.Rejected(models.StatusNotEnrolled, msgNotEnrolled)
	}
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("face record lookup failed")
		return models.Unavailable(msgVerifyUnavailable)
	}

	stored, err := s.cipher.DecryptEmbedding(ctx, record.EncryptedEmbedding)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("stored embedding could not be decrypted")
		return models.Unavailable(msgVerifyUnavailable)
	}

	sim, err := similarity(stored, embedding)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("embeddings are not comparable")
		return models.Rejected(models.StatusFailure, msgUnexpectedEmbedding)
	}

	score := confidence(sim)
	if sim < s.threshold {
		log.Info().Str("user_id", userID).Int("confidence", score).Msg("face did not match")
		return models.Rejected(models.StatusFailure, fmt.Sprintf(msgVerificationFailed, score)).WithConfidence(score)
	}

	if err = s.faces.MarkVerified(ctx, userID, s.now().UTC()); err != nil {
		if errors.Is(err, store.ErrFaceRecordNotFound) {
			// the record was removed while comparing, most likely by a
			// duplicate termination
			if result, blocked := s.checkTerminated(ctx, userID, msgVerifyUnavailable); blocked {
				return result
			}
			return models.Rejected(models.StatusNotEnrolled, msgNotEnrolled)
		}
		log.Err(err).Str("user_id", userID).Msg("verification time was not saved")
		return models.Unavailable(msgVerifyUnavailable)
	}

	log.Info().Str("user_id", userID).Int("confidence", score).Msg("face verified")
	return models.Succeeded(fmt.Sprintf(msgVerified, score)).WithConfidence(score)
}

func (s *faceIdentityService) IsTerminated(ctx context.Context, userID string) (bool, error) {
	if userID == "" {
		return false, ErrInvalidDataProvided
	}

	terminated, err := s.faces.IsTerminated(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("termination lookup failed: %w", err)
	}
	return terminated, nil
}

func (s *faceIdentityService) HasEnrolled(ctx context.Context, userID string) (bool, error) {
	if userID == "" {
		return false, ErrInvalidDataProvided
	}

	_, err := s.faces.GetFaceRecord(ctx, userID)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, store.ErrFaceRecordNotFound):
		return false, nil
	default:
		return false, fmt.Errorf("face record lookup failed: %w", err)
	}
}

func (s *faceIdentityService) AccountStatus(ctx context.Context, userID string) (models.AccountStatus, error) {
	terminated, err := s.IsTerminated(ctx, userID)
	if err != nil {
		return models.AccountStatus{}, err
	}
	enrolled, err := s.HasEnrolled(ctx, userID)
	if err != nil {
		return models.AccountStatus{}, err
	}

	return models.AccountStatus{UserID: userID, Terminated: terminated, Enrolled: enrolled}, nil
}

// checkTerminated returns (result, true) when the attempt must stop here,
// either because the account is terminated or the lookup failed.
func (s *faceIdentityService) checkTerminated(ctx context.Context, userID, unavailableMsg string) (models.VerificationResult, bool) {
	terminated, err := s.faces.IsTerminated(ctx, userID)
	if err != nil {
		logger.FromContextOr(ctx, s.logger).Err(err).Str("user_id", userID).Msg("termination lookup failed")
		return models.Unavailable(unavailableMsg), true
	}
	if terminated {
		return models.Rejected(models.StatusAccountTerminated, msgAccountTerminated), true
	}
	return models.VerificationResult{}, false
}

// extract asks the oracle for the single face in frame. When ok is false
// the returned result is final.
func (s *faceIdentityService) extract(ctx context.Context, userID string, frame models.Frame, unavailableMsg string) ([]float32, models.VerificationResult, bool) {
	log := logger.FromContextOr(ctx, s.logger)

	if frame.IsEmpty() {
		return nil, models.Rejected(models.StatusNoFaceDetected, msgNoFaceDetected), false
	}

	inferCtx, cancel := context.WithTimeout(ctx, s.inferenceTimeout)
	defer cancel()

	started := time.Now()
	faces, err := s.oracle.DetectFaces(inferCtx, frame)
	s.recorder.ObserveExtraction(time.Since(started))

	switch {
	case err == nil:
	case errors.Is(err, adapter.ErrEmptyFrame):
		return nil, models.Rejected(models.StatusNoFaceDetected, msgNoFaceDetected), false
	case errors.Is(err, adapter.ErrBadRequest):
		log.Warn().Err(err).Str("user_id", userID).Msg("frame rejected by embedding oracle")
		return nil, models.Rejected(models.StatusFailure, msgUnreadableFrame), false
	default:
		log.Err(err).Str("user_id", userID).Msg("face extraction failed")
		return nil, models.Unavailable(unavailableMsg), false
	}

	switch len(faces) {
	case 0:
		return nil, models.Rejected(models.StatusNoFaceDetected, msgNoFaceDetected), false
	case 1:
	default:
		log.Info().Str("user_id", userID).Int("faces", len(faces)).Msg("more than one face in frame")
		return nil, models.Rejected(models.StatusMultipleFacesDetected, msgMultipleFaces), false
	}

	embedding := faces[0].Embedding
	if len(embedding) == 0 {
		log.Error().Str("user_id", userID).Msg("oracle returned an empty embedding")
		return nil, models.Unavailable(unavailableMsg), false
	}
	if s.embeddingDim > 0 && len(embedding) != s.embeddingDim {
		log.Error().
			Str("user_id", userID).
			Int("expected", s.embeddingDim).
			Int("actual", len(embedding)).
			Msg("unexpected embedding dimension")
		return nil, models.Rejected(models.StatusFailure, msgUnexpectedEmbedding), false
	}

	return embedding, models.VerificationResult{}, true
}

type faceMatch struct {
	found      bool
	userID     string
	similarity float64
}

// bestMatch compares embedding with every stored credential except the one
// of userID. Records of a different dimension cannot be compared and are
// skipped.
func (s *faceIdentityService) bestMatch(ctx context.Context, userID string, embedding []float32) (faceMatch, error) {
	log := logger.FromContextOr(ctx, s.logger)

	records, err := s.faces.ListFaceRecords(ctx)
	if err != nil {
		return faceMatch{}, fmt.Errorf("listing face records failed: %w", err)
	}

	var best faceMatch
	for _, record := range records {
		if record.UserID == userID {
			continue
		}

		stored, err := s.cipher.DecryptEmbedding(ctx, record.EncryptedEmbedding)
		if err != nil {
			return faceMatch{}, fmt.Errorf("decrypting embedding of %s failed: %w", record.UserID, err)
		}

		sim, err := similarity(stored, embedding)
		if err != nil {
			log.Warn().Err(err).Str("stored_user_id", record.UserID).Msg("skipping incomparable face record")
			continue
		}

		if !best.found || sim > best.similarity {
			best = faceMatch{found: true, userID: record.UserID, similarity: sim}
		}
	}

	return best, nil
}

type nopRecorder struct{}

func (nopRecorder) ObserveOutcome(string, models.Status) {}
func (nopRecorder) ObserveExtraction(time.Duration)      {}
