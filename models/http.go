// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FaceRequest is the JSON body of the enroll and verify endpoints.
// The account is never taken from the body: it comes from the bearer token.
type FaceRequest struct {
	// Frame is the base64 (standard encoding) captured image.
	Frame string `json:"frame" validate:"required,base64"`

	// ContentType is the optional MIME type of the frame.
	ContentType string `json:"content_type,omitempty" validate:"omitempty,oneof=image/jpeg image/png image/webp"`
}

// VersionResponse is returned by the version endpoint.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"build_date"`
	Commit  string `json:"build_commit"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}
