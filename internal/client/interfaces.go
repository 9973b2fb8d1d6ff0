// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-face-keeper/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the command in args and blocks until it completes.
	Run(ctx context.Context, args []string) error
}

// FaceAPI is the remote face identity service as seen by the client.
type FaceAPI interface {
	Enroll(ctx context.Context, frame models.Frame) (models.VerificationResult, error)
	Verify(ctx context.Context, frame models.Frame) (models.VerificationResult, error)
	Status(ctx context.Context) (models.AccountStatus, error)
}
