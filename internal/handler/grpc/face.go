package grpc

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-face-keeper/internal/logger"
	"github.com/MKhiriev/go-face-keeper/internal/service"
	"github.com/MKhiriev/go-face-keeper/internal/utils"
	"github.com/MKhiriev/go-face-keeper/internal/validators"
	"github.com/MKhiriev/go-face-keeper/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Enroll answers with the tagged result. Only requests that never reach the
// service fail with a gRPC status.
func (h *Handler) Enroll(ctx context.Context, request *models.FaceRequest) (*models.VerificationResult, error) {
	return h.handleFace(ctx, request, service.FaceIdentityService.Enroll)
}

func (h *Handler) Verify(ctx context.Context, request *models.FaceRequest) (*models.VerificationResult, error) {
	return h.handleFace(ctx, request, service.FaceIdentityService.Verify)
}

func (h *Handler) handleFace(
	ctx context.Context,
	request *models.FaceRequest,
	op func(svc service.FaceIdentityService, ctx context.Context, userID string, frame models.Frame) models.VerificationResult,
) (*models.VerificationResult, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, ErrMissingUserID.Error())
	}

	frame, err := h.decodeFrame(ctx, request)
	if err != nil {
		logger.FromContextOr(ctx, h.logger).Err(err).Str("user_id", userID).Msg("invalid face request")
		return nil, status.Error(codeFromError(err), err.Error())
	}

	result := op(h.services.FaceIdentityService, ctx, userID, frame)
	return &result, nil
}

func (h *Handler) decodeFrame(ctx context.Context, request *models.FaceRequest) (models.Frame, error) {
	if err := h.validator.Validate(ctx, request); err != nil {
		return models.Frame{}, err
	}

	data, err := base64.StdEncoding.DecodeString(request.Frame)
	if err != nil {
		return models.Frame{}, fmt.Errorf("%w: %w", validators.ErrInvalidFrame, err)
	}

	frame := models.Frame{Data: data, ContentType: request.ContentType}
	if err = h.validator.Validate(ctx, frame); err != nil {
		return models.Frame{}, err
	}
	return frame, nil
}

func (h *Handler) Status(ctx context.Context, _ *StatusRequest) (*models.AccountStatus, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, ErrMissingUserID.Error())
	}

	accountStatus, err := h.services.FaceIdentityService.AccountStatus(ctx, userID)
	if err != nil {
		logger.FromContextOr(ctx, h.logger).Err(err).Str("user_id", userID).Msg("account status lookup failed")
		return nil, status.Error(codeFromError(err), "account status lookup failed")
	}
	return &accountStatus, nil
}

func codeFromError(err error) codes.Code {
	switch {
	case errors.Is(err, validators.ErrFrameTooLarge):
		return codes.ResourceExhausted
	case errors.Is(err, validators.ErrInvalidFrame),
		errors.Is(err, validators.ErrEmptyFrame),
		errors.Is(err, validators.ErrUnsupportedContentType),
		errors.Is(err, service.ErrInvalidDataProvided):
		return codes.InvalidArgument
	default:
		return codes.Unavailable
	}
}
