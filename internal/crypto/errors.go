// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	ErrInvalidKeyLength   = errors.New("encryption key must be 32 bytes")
	ErrEmptyKeyMaterial   = errors.New("encryption secret and salt are required")
	ErrUnreadableKeyFile  = errors.New("unable to read encryption key file")
	ErrCiphertextTooShort = errors.New("ciphertext too short")
	ErrDecryptionFailed   = errors.New("embedding decryption failed")
	ErrMalformedEmbedding = errors.New("decrypted embedding has invalid length")
)
