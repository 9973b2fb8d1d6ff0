// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// FaceRecord is the persisted face credential of a single account.
// There is at most one FaceRecord per UserID.
type FaceRecord struct {
	// UserID is the opaque, stable identifier of the account.
	UserID string `json:"user_id"`

	// EncryptedEmbedding is the base64 blob (nonce || ciphertext) of the
	// face embedding. The plaintext never leaves the service.
	EncryptedEmbedding string `json:"-"`

	// CreatedAt is the moment of the most recent successful enrollment.
	CreatedAt time.Time `json:"created_at"`

	// LastVerifiedAt is the moment of the most recent successful
	// verification, nil if the account never verified since enrollment.
	LastVerifiedAt *time.Time `json:"last_verified_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the FaceRecord model.
func (FaceRecord) TableName() string {
	return "face_records"
}

// TerminationReason is the closed set of reasons an account can be
// terminated for.
type TerminationReason string

const (
	// ReasonDuplicateFace means a different account enrolled a face that
	// matched this account's stored embedding.
	ReasonDuplicateFace TerminationReason = "duplicate-face-detected"
)

// TerminationRecord is an append-only log entry. Once a UserID appears in
// the log the account is permanently blocked from face verification.
type TerminationRecord struct {
	ID           string            `json:"id"`
	UserID       string            `json:"user_id"`
	TerminatedAt time.Time         `json:"terminated_at"`
	Reason       TerminationReason `json:"reason"`
}

// TableName returns the name of the database table
// associated with the TerminationRecord model.
func (TerminationRecord) TableName() string {
	return "terminated_accounts"
}

// AccountStatus reports the face-identity flags of a single account.
type AccountStatus struct {
	UserID     string `json:"user_id"`
	Terminated bool   `json:"is_terminated"`
	Enrolled   bool   `json:"has_face_registered"`
}
