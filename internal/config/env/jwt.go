package env

import (
	"errors"
	"fmt"
	"mining_backend/internal/config"
	"os"
	"time"
)

const (
	accessTokenKeyEnvName       = "ACCESS_TOKEN"
	accessTokenDurationEnvName  = "ACCESS_TOKEN_DURATION"
	refreshTokenDurationEnvName = "REFRESH_TOKEN_DURATION"
)

type jwtConfig struct {
	secretKey  []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewJWTConfig Ключ подписи access токенов и сроки жизни обоих токенов
func NewJWTConfig() (config.JWTConfig, error) {
	key := os.Getenv(accessTokenKeyEnvName)
	if len(key) == 0 {
		return nil, errors.New("access token secret key not found")
	}

	accessTTL, err := positiveDuration(accessTokenDurationEnvName)
	if err != nil {
		return nil, err
	}

	refreshTTL, err := positiveDuration(refreshTokenDurationEnvName)
	if err != nil {
		return nil, err
	}

	if refreshTTL <= accessTTL {
		return nil, errors.New("refresh token must outlive access token")
	}

	return &jwtConfig{
		secretKey:  []byte(key),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}, nil
}

func positiveDuration(name string) (time.Duration, error) {
	raw := os.Getenv(name)
	if len(raw) == 0 {
		return 0, fmt.Errorf("%s not found", name)
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive", name)
	}
	return d, nil
}

func (j *jwtConfig) AccessTokenSecretKey() []byte {
	return j.secretKey
}

func (j *jwtConfig) AccessTokenDuration() time.Duration {
	return j.accessTTL
}

func (j *jwtConfig) RefreshTokenDuration() time.Duration {
	return j.refreshTTL
}
