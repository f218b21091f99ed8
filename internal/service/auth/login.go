package auth

import (
	"context"
	"errors"
	"fmt"
	"mining_backend/internal/model"
	"mining_backend/internal/repository"
	"mining_backend/pkg/pass"
)

func (s *serv) Login(ctx context.Context, login, password string) (*model.AuthData, error) {
	user, err := s.userRepo.GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if !pass.VerifyPassword(user.Password, password) {
		return nil, ErrInvalidCredentials
	}

	data, err := s.openSession(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}
	return data, nil
}
