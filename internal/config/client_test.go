package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClientConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		useDotEnv(t, filepath.Join(t.TempDir(), "missing.env"))
		t.Setenv("FACEID_SERVER_URL", "")
		os.Unsetenv("FACEID_SERVER_URL")
		t.Setenv("FACEID_TOKEN", "jwt")

		cfg, err := GetClientConfig()

		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080", cfg.ServerURL)
		assert.Equal(t, "jwt", cfg.Token)
		assert.Equal(t, 30*time.Second, cfg.Timeout)
	})

	t.Run("from dotenv", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("FACEID_SERVER_URL=https://faces.example\nFACEID_TOKEN=from-file\nFACEID_TIMEOUT=5s\n"), 0o600))
		useDotEnv(t, path)
		for _, key := range []string{"FACEID_SERVER_URL", "FACEID_TOKEN", "FACEID_TIMEOUT"} {
			t.Setenv(key, "")
			os.Unsetenv(key)
		}

		cfg, err := GetClientConfig()

		require.NoError(t, err)
		assert.Equal(t, "https://faces.example", cfg.ServerURL)
		assert.Equal(t, "from-file", cfg.Token)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
	})

	t.Run("token required", func(t *testing.T) {
		useDotEnv(t, filepath.Join(t.TempDir(), "missing.env"))
		t.Setenv("FACEID_TOKEN", "")

		_, err := GetClientConfig()

		assert.ErrorIs(t, err, ErrInvalidClientConfigs)
	})
}
