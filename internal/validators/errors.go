package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidFrame           = errors.New("frame must be non-empty standard base64")
	ErrEmptyFrame             = errors.New("frame is empty")
	ErrFrameTooLarge          = errors.New("frame is too large")
	ErrUnsupportedContentType = errors.New("unsupported frame content type")
)
