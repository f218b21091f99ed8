package auth

import (
	"context"
	"errors"
	"fmt"
	"mining_backend/internal/repository"
	"mining_backend/pkg/token"
)

func (s *serv) Refresh(ctx context.Context, sessionID, refreshToken string) (string, error) {
	// Хэш refresh токена живой сессии
	refreshTokenHash, err := s.authRepo.GetRefreshTokenBySessionID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidRefreshToken
		}
		return "", fmt.Errorf("get session: %w", err)
	}

	if !token.VerifyRefreshToken(refreshToken, refreshTokenHash) {
		return "", ErrInvalidRefreshToken
	}

	user, err := s.authRepo.GetUserBySessionID(ctx, sessionID)
	if err != nil {
		return "", fmt.Errorf("get session user: %w", err)
	}

	return token.GenerateAccessToken(user, s.jwtConfig.AccessTokenSecretKey(), s.jwtConfig.AccessTokenDuration())
}

func (s *serv) Logout(ctx context.Context, sessionID string) error {
	if err := s.authRepo.DeleteSession(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
