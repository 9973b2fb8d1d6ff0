// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-face-keeper/internal/logger"
	"github.com/MKhiriev/go-face-keeper/internal/utils"
	"github.com/MKhiriev/go-face-keeper/models"
)

// faceOperation is the shape shared by Enroll and Verify.
type faceOperation func(ctx context.Context, userID string, frame models.Frame) models.VerificationResult

// enroll handles POST /api/face/enroll.
func (h *Handler) enroll(w http.ResponseWriter, r *http.Request) {
	h.handleFace(w, r, h.services.FaceIdentityService.Enroll)
}

// verify handles POST /api/face/verify.
func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	h.handleFace(w, r, h.services.FaceIdentityService.Verify)
}

// handleFace decodes and validates the frame, runs op and writes the
// tagged result. The response code follows the result kind.
func (h *Handler) handleFace(w http.ResponseWriter, r *http.Request, op faceOperation) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Err(ErrMissingUserID).Send()
		http.Error(w, ErrMissingUserID.Error(), statusFromError(ErrMissingUserID))
		return
	}

	frame, err := h.decodeFrame(w, r)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("invalid face request")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	result := op(ctx, userID, frame)

	if _, err = utils.WriteJSON(w, result, statusFromResult(result)); err != nil {
		log.Err(err).Msg("error writing face result")
	}
}

func (h *Handler) decodeFrame(w http.ResponseWriter, r *http.Request) (models.Frame, error) {
	ctx := r.Context()
	r.Body = http.MaxBytesReader(w, r.Body, maxFaceRequestBytes)

	var request models.FaceRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		return models.Frame{}, fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}

	if err := h.validator.Validate(ctx, request); err != nil {
		return models.Frame{}, err
	}

	data, err := base64.StdEncoding.DecodeString(request.Frame)
	if err != nil {
		return models.Frame{}, fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}

	frame := models.Frame{Data: data, ContentType: request.ContentType}
	if err = h.validator.Validate(ctx, frame); err != nil {
		return models.Frame{}, err
	}

	return frame, nil
}

// status handles GET /api/face/status.
func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Err(ErrMissingUserID).Send()
		http.Error(w, ErrMissingUserID.Error(), statusFromError(ErrMissingUserID))
		return
	}

	accountStatus, err := h.services.FaceIdentityService.AccountStatus(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("account status lookup failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	if _, err = utils.WriteJSON(w, accountStatus, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing account status")
	}
}
