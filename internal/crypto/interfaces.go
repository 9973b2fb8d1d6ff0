package crypto

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyProvider supplies the symmetric key that protects stored embeddings.
// Implementations must return the same 32-byte key for the lifetime of the
// stored records.
type KeyProvider interface {
	// Key returns the 256-bit AES key.
	Key(ctx context.Context) ([]byte, error)
}

// EmbeddingCipher encrypts face embeddings before they reach storage.
// Decrypt(Encrypt(v)) must reproduce v bit for bit.
type EmbeddingCipher interface {
	// EncryptEmbedding seals the little-endian float32 encoding of embedding
	// with AES-256-GCM and returns base64(nonce || ciphertext).
	EncryptEmbedding(ctx context.Context, embedding []float32) (string, error)

	// DecryptEmbedding reverses EncryptEmbedding. It fails if the blob is
	// malformed or was sealed with a different key.
	DecryptEmbedding(ctx context.Context, encrypted string) ([]float32, error)
}
