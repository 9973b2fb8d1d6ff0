package service

import "errors"

var (
	ErrInvalidDataProvided     = errors.New("invalid data provided")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")

	ErrEmbeddingLengthMismatch = errors.New("embeddings have different lengths")
	ErrEmptyEmbedding          = errors.New("embedding is empty")
	ErrInvalidEmbedding        = errors.New("embedding holds non-numeric values")
)
