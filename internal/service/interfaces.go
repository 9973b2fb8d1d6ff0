// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-face-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// FaceIdentityService enrolls face credentials and verifies live captures
// against them.
//
// Enroll and Verify never return Go errors: every attempt resolves to a
// tagged [models.VerificationResult] the caller branches on.
type FaceIdentityService interface {
	// Enroll stores the face found in frame as the credential of userID.
	// A face matching another account terminates that other account.
	Enroll(ctx context.Context, userID string, frame models.Frame) models.VerificationResult

	// Verify compares the face found in frame with the credential of userID.
	Verify(ctx context.Context, userID string, frame models.Frame) models.VerificationResult

	// IsTerminated reports whether userID is in the termination log.
	IsTerminated(ctx context.Context, userID string) (bool, error)

	// HasEnrolled reports whether userID has a stored face credential.
	HasEnrolled(ctx context.Context, userID string) (bool, error)

	// AccountStatus returns both flags of userID.
	AccountStatus(ctx context.Context, userID string) (models.AccountStatus, error)
}

// AuthService validates bearer tokens issued by the identity provider.
type AuthService interface {
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService exposes build metadata of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// OutcomeRecorder receives operational measurements of the face service.
// Implementations must be safe for concurrent use.
type OutcomeRecorder interface {
	// ObserveOutcome counts one finished operation by its result kind.
	ObserveOutcome(operation string, status models.Status)

	// ObserveExtraction records the latency of one oracle call.
	ObserveExtraction(elapsed time.Duration)
}
