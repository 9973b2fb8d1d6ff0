// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-face-keeper/models"
	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"
)

// Field names accepted by Validate for field-level scoping.
const (
	// FieldFrame targets the base64 frame of a FaceRequest or the bytes of a Frame.
	FieldFrame = "Frame"

	// FieldContentType targets the declared MIME type.
	FieldContentType = "ContentType"
)

// MaxFrameBytes is the largest decoded frame accepted.
const MaxFrameBytes = 6 << 20

// allowedContentTypes is the exhaustive set of frame formats the embedding
// oracle decodes.
var allowedContentTypes = []string{
	"image/jpeg",
	"image/png",
	"image/webp",
}

// FaceValidator validates models.FaceRequest and models.Frame.
//
// Struct tags of FaceRequest are checked with go-playground/validator.
// Frames are checked by content: size limit and sniffed image format.
type FaceValidator struct {
	validate *validator.Validate
}

// NewFaceValidator constructs a FaceValidator and returns it as the
// Validator interface.
func NewFaceValidator() Validator {
	return &FaceValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate dispatches to the type-specific method. Pointers and values are
// both accepted.
func (v *FaceValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.FaceRequest:
		return v.validateFaceRequest(ctx, value, fields...)
	case *models.FaceRequest:
		return v.validateFaceRequest(ctx, *value, fields...)

	case models.Frame:
		return v.validateFrame(ctx, value, fields...)
	case *models.Frame:
		return v.validateFrame(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *FaceValidator) validateFaceRequest(ctx context.Context, request models.FaceRequest, fields ...string) error {
	for _, f := range fields {
		if f != FieldFrame && f != FieldContentType {
			return ErrUnknownField
		}
	}

	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, request)
	} else {
		err = v.validate.StructPartialCtx(ctx, request, fields...)
	}
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("face request validation failed: %w", err)
	}

	// report the first failing field
	switch validationErrors[0].StructField() {
	case FieldFrame:
		return ErrInvalidFrame
	case FieldContentType:
		return fmt.Errorf("%w: %q", ErrUnsupportedContentType, request.ContentType)
	default:
		return fmt.Errorf("face request validation failed: %w", err)
	}
}

func (v *FaceValidator) validateFrame(_ context.Context, frame models.Frame, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFrame, FieldContentType}
	}

	for _, f := range fields {
		switch f {
		case FieldFrame:
			if frame.IsEmpty() {
				return ErrEmptyFrame
			}
			if len(frame.Data) > MaxFrameBytes {
				return ErrFrameTooLarge
			}
		case FieldContentType:
			if frame.IsEmpty() {
				return ErrEmptyFrame
			}
			detected := mimetype.Detect(frame.Data).String()
			if !slices.Contains(allowedContentTypes, detected) {
				return fmt.Errorf("%w: detected %q", ErrUnsupportedContentType, detected)
			}
			if frame.ContentType != "" && frame.ContentType != detected {
				return fmt.Errorf("%w: declared %q, detected %q", ErrUnsupportedContentType, frame.ContentType, detected)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
