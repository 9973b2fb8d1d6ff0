// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the HTTP transport. Callers can match against them
// with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrMissingUserID means a face route was reached without an
	// authenticated account in the request context.
	ErrMissingUserID = errors.New("no authenticated user in request")

	// ErrMalformedBody is returned when the request body is not valid JSON.
	ErrMalformedBody = errors.New("malformed request body")

	// ErrInvalidGzipBody is returned when a gzip encoded body cannot be read.
	ErrInvalidGzipBody = errors.New("invalid gzip data")
)
