package auth

import (
	"context"
	"errors"
	"mining_backend/internal/config"
	"mining_backend/internal/model"
	"mining_backend/internal/repository"
	"mining_backend/internal/service"
	"mining_backend/pkg/token"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials  = errors.New("invalid login or password")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrLoginTaken          = errors.New("login already taken")
)

type serv struct {
	txManager trm.Manager
	userRepo  repository.UserRepository
	authRepo  repository.AuthRepository
	jwtConfig config.JWTConfig
	now       func() time.Time
}

func NewAuthService(
	txManager trm.Manager,
	userRepo repository.UserRepository,
	authRepo repository.AuthRepository,
	jwtConfig config.JWTConfig,
) service.AuthService {
	return &serv{
		txManager: txManager,
		userRepo:  userRepo,
		authRepo:  authRepo,
		jwtConfig: jwtConfig,
		now:       time.Now,
	}
}

// openSession Создать сессию с новым refresh токеном и выдать access токен
func (s *serv) openSession(ctx context.Context, user *model.User) (*model.AuthData, error) {
	refreshToken, err := token.GenerateRefreshToken()
	if err != nil {
		return nil, err
	}

	sessionID := uuid.NewString()
	err = s.authRepo.CreateSession(ctx, &model.Session{
		ID:          sessionID,
		UserID:      user.ID,
		RefreshHash: token.HashRefreshToken(refreshToken),
		ExpiresAt:   s.now().Add(s.jwtConfig.RefreshTokenDuration()),
	})
	if err != nil {
		return nil, err
	}

	accessToken, err := token.GenerateAccessToken(user, s.jwtConfig.AccessTokenSecretKey(), s.jwtConfig.AccessTokenDuration())
	if err != nil {
		return nil, err
	}

	return &model.AuthData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		SessionID:    sessionID,
	}, nil
}
