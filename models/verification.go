// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Status is the kind of a [VerificationResult]. Callers branch on it.
type Status string

// Result kinds. They are mutually exclusive.
const (
	StatusSuccess               Status = "success"
	StatusFailure               Status = "failure"
	StatusNoFaceDetected        Status = "no-face-detected"
	StatusMultipleFacesDetected Status = "multiple-faces-detected"
	StatusDuplicateFaceDetected Status = "duplicate-face-detected"
	StatusNotEnrolled           Status = "not-enrolled"
	StatusAccountTerminated     Status = "account-terminated"
)

// String implements [fmt.Stringer].
func (s Status) String() string {
	return string(s)
}

// VerificationResult is the tagged outcome of an enroll or verify attempt.
//
// Enrollment and verification never return Go errors to their callers:
// every attempt resolves to exactly one Status, and the caller presents
// Message and branches on Status.
type VerificationResult struct {
	// Success is true only when Status is [StatusSuccess].
	Success bool `json:"success"`

	// Status is the result kind.
	Status Status `json:"status"`

	// Confidence is round(similarity*100) when a comparison took place.
	Confidence *int `json:"confidence,omitempty"`

	// Message is a human readable explanation suitable for end users.
	Message string `json:"message"`

	// Retryable marks infrastructure failures (oracle, storage, cipher,
	// timeouts) that may succeed on a later attempt. Policy and state
	// outcomes are never retryable.
	Retryable bool `json:"retryable"`
}

// Succeeded builds a successful result.
func Succeeded(message string) VerificationResult {
	return VerificationResult{Success: true, Status: StatusSuccess, Message: message}
}

// Rejected builds a failed, non-retryable result of the given kind.
func Rejected(status Status, message string) VerificationResult {
	return VerificationResult{Status: status, Message: message}
}

// Unavailable builds a retryable infrastructure failure.
func Unavailable(message string) VerificationResult {
	return VerificationResult{Status: StatusFailure, Message: message, Retryable: true}
}

// WithConfidence returns a copy of r carrying the given confidence.
func (r VerificationResult) WithConfidence(confidence int) VerificationResult {
	r.Confidence = &confidence
	return r
}
