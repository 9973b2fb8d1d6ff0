package adapter

import "errors"

var (
	ErrEmptyFrame          = errors.New("frame has no image data")
	ErrInvalidOracleURL    = errors.New("invalid embedding oracle url")
	ErrBadRequest          = errors.New("oracle rejected the frame")
	ErrOracleUnavailable   = errors.New("embedding oracle unavailable")
	ErrInternalServerError = errors.New("embedding oracle internal error")
	ErrUnexpectedResponse  = errors.New("unexpected embedding oracle response")
)
