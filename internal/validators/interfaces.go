// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks transport payloads before they reach the face
// service.
//
// A Validator accepts any value it knows and optional field names that
// restrict validation to part of the value. FaceValidator covers face
// requests (structural checks via struct tags) and decoded frames (size and
// sniffed image format).
package validators

import "context"

// Validator validates the provided input, optionally restricted to the
// named fields. Unknown types yield ErrUnsupportedType and unknown field
// names ErrUnknownField.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
