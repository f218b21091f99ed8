package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTConfig(t *testing.T) {
	t.Setenv(accessTokenKeyEnvName, "secret")
	t.Setenv(accessTokenDurationEnvName, "15m")
	t.Setenv(refreshTokenDurationEnvName, "720h")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, []byte("secret"), cfg.AccessTokenSecretKey())
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenDuration())
	assert.Equal(t, 720*time.Hour, cfg.RefreshTokenDuration())
}

func TestNewJWTConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		access  string
		refresh string
	}{
		{"no key", "", "15m", "1h"},
		{"bad duration", "secret", "soon", "1h"},
		{"negative duration", "secret", "-1m", "1h"},
		{"refresh shorter than access", "secret", "1h", "15m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(accessTokenKeyEnvName, tt.key)
			t.Setenv(accessTokenDurationEnvName, tt.access)
			t.Setenv(refreshTokenDurationEnvName, tt.refresh)

			_, err := NewJWTConfig()
			assert.Error(t, err)
		})
	}
}

func TestNewPGConfig(t *testing.T) {
	t.Setenv(pgDSNEnvName, "")
	_, err := NewPGConfig()
	assert.Error(t, err)

	t.Setenv(pgDSNEnvName, "postgres://u:p@localhost:5432/db?sslmode=disable")
	cfg, err := NewPGConfig()
	require.NoError(t, err)
	assert.Contains(t, cfg.DSN(), "localhost:5432")
}

func TestNewHTTPConfig(t *testing.T) {
	t.Setenv(httpHostEnvName, "127.0.0.1")
	t.Setenv(httpPortEnvName, "8080")

	cfg, err := NewHTTPConfig()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", cfg.Address())

	t.Setenv(httpPortEnvName, "")
	_, err = NewHTTPConfig()
	assert.Error(t, err)
}

func TestNewLoggerConfig_Defaults(t *testing.T) {
	t.Setenv(logLevelEnvName, "")
	t.Setenv(logFormatEnvName, "")

	cfg := NewLoggerConfig()
	assert.Equal(t, "info", cfg.Level())
	assert.Equal(t, "text", cfg.Format())
}
