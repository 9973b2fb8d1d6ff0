package client

import "errors"

var (
	ErrUnknownCommand    = errors.New("unknown command")
	ErrMissingImage      = errors.New("image path is required")
	ErrUnexpectedReply   = errors.New("unexpected reply from face service")
	ErrResultNotAccepted = errors.New("face service did not accept the frame")
)
