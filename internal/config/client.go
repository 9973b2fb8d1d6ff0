package config

import (
	"fmt"
	"time"
)

// ClientConfig configures the faceid command line client.
type ClientConfig struct {
	// ServerURL is the base URL of the face service HTTP API.
	// Env: FACEID_SERVER_URL
	ServerURL string `env:"FACEID_SERVER_URL" envDefault:"http://localhost:8080"`

	// Token is the bearer token identifying the account.
	// Env: FACEID_TOKEN
	Token string `env:"FACEID_TOKEN"`

	// Timeout bounds a single API call.
	// Env: FACEID_TIMEOUT
	Timeout time.Duration `env:"FACEID_TIMEOUT" envDefault:"30s"`
}

// GetClientConfig reads the client configuration from the .env file and the
// environment.
func GetClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}

	if cfg.ServerURL == "" {
		return nil, fmt.Errorf("%w: server url is required", ErrInvalidClientConfigs)
	}
	if cfg.Token == "" {
		return nil, fmt.Errorf("%w: FACEID_TOKEN is required", ErrInvalidClientConfigs)
	}
	return cfg, nil
}
