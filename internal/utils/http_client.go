package utils

import (
	"github.com/go-resty/resty/v2"
)

// UserAgent identifies the service on outbound requests.
const UserAgent = "go-face-keeper"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with its own connection pool
// that announces itself with [UserAgent].
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New().SetHeader("User-Agent", UserAgent)}
}
