package grpc

import "errors"

var (
	ErrMissingMetadata            = errors.New("missing request metadata")
	ErrEmptyAuthorizationMetadata = errors.New("empty `authorization` metadata")
	ErrMissingUserID              = errors.New("no authenticated user in request")
)
