// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

type aesEmbeddingCipher struct {
	keys KeyProvider
}

// NewEmbeddingCipher returns an AES-256-GCM [EmbeddingCipher] whose key comes
// from keys.
func NewEmbeddingCipher(keys KeyProvider) EmbeddingCipher {
	return &aesEmbeddingCipher{keys: keys}
}

func (c *aesEmbeddingCipher) gcm(ctx context.Context) (cipher.AEAD, error) {
	key, err := c.keys.Key(ctx)
	if err != nil {
		return nil, fmt.Errorf("get key: %w", err)
	}
	if len(key) != keyLen {
		return nil, ErrInvalidKeyLength
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

// EncryptEmbedding implements [EmbeddingCipher].
func (c *aesEmbeddingCipher) EncryptEmbedding(ctx context.Context, embedding []float32) (string, error) {
	gcm, err := c.gcm(ctx)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	// nonce || ciphertext
	blob := gcm.Seal(nonce, nonce, encodeFloats(embedding), nil)
	return base64.StdEncoding.EncodeToString(blob), nil
}

// DecryptEmbedding implements [EmbeddingCipher].
func (c *aesEmbeddingCipher) DecryptEmbedding(ctx context.Context, encrypted string) ([]float32, error) {
	blob, err := base64.StdEncoding.DecodeString(encrypted)
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}

	gcm, err := c.gcm(ctx)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return nil, ErrCiphertextTooShort
	}
	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	return decodeFloats(plaintext)
}

func encodeFloats(v []float32) []byte {
	buf := make([]byte, 4*len(v))
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(f))
	}
	return buf
}

func decodeFloats(b []byte) ([]float32, error) {
	if len(b)%4 != 0 {
		return nil, ErrMalformedEmbedding
	}
	v := make([]float32, len(b)/4)
	for i := range v {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[4*i:]))
	}
	return v, nil
}
