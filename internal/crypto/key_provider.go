// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"os"
	"sync"

	"golang.org/x/crypto/argon2"
)

const keyLen = 32

// passphraseKeyProvider derives the key from a secret and a salt with
// Argon2id. The derivation is expensive so it happens once, lazily.
type passphraseKeyProvider struct {
	secret []byte
	salt   []byte

	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8

	once sync.Once
	key  []byte
	err  error
}

// NewPassphraseKeyProvider returns a [KeyProvider] deriving a 256-bit key
// with the OWASP (2024) Argon2id parameters: 1 iteration, 64 MiB, 4 threads.
func NewPassphraseKeyProvider(secret, salt string) KeyProvider {
	return &passphraseKeyProvider{
		secret:       []byte(secret),
		salt:         []byte(salt),
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
	}
}

func (p *passphraseKeyProvider) Key(_ context.Context) ([]byte, error) {
	p.once.Do(func() {
		if len(p.secret) == 0 || len(p.salt) == 0 {
			p.err = ErrEmptyKeyMaterial
			return
		}
		p.key = argon2.IDKey(p.secret, p.salt, p.argonTime, p.argonMemory, p.argonThreads, keyLen)
	})
	return p.key, p.err
}

// fileKeyProvider reads the key from a file, typically a mounted secret.
type fileKeyProvider struct {
	path string

	once sync.Once
	key  []byte
	err  error
}

// NewFileKeyProvider returns a [KeyProvider] reading a 32-byte key from path.
// The file may hold the raw bytes, 64 hex characters or standard base64.
// Surrounding whitespace is ignored for the textual forms.
func NewFileKeyProvider(path string) KeyProvider {
	return &fileKeyProvider{path: path}
}

func (p *fileKeyProvider) Key(_ context.Context) ([]byte, error) {
	p.once.Do(func() {
		raw, err := os.ReadFile(p.path)
		if err != nil {
			p.err = fmt.Errorf("%w: %w", ErrUnreadableKeyFile, err)
			return
		}
		p.key, p.err = decodeKey(raw)
	})
	return p.key, p.err
}

func decodeKey(raw []byte) ([]byte, error) {
	if len(raw) == keyLen {
		return raw, nil
	}

	text := string(bytes.TrimSpace(raw))
	if decoded, err := hex.DecodeString(text); err == nil && len(decoded) == keyLen {
		return decoded, nil
	}
	if decoded, err := base64.StdEncoding.DecodeString(text); err == nil && len(decoded) == keyLen {
		return decoded, nil
	}

	return nil, ErrInvalidKeyLength
}
