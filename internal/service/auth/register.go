package auth

import (
	"context"
	"errors"
	"fmt"
	"mining_backend/internal/model"
	"mining_backend/internal/repository"
	"mining_backend/pkg/pass"
)

func (s *serv) Register(ctx context.Context, user *model.User) (*model.AuthData, error) {
	// Хэширование пароля пользователя
	passwordHash, err := pass.HashPassword(user.Password)
	if err != nil {
		return nil, err
	}
	user.Password = passwordHash

	var data *model.AuthData

	// Пользователь и его первая сессия создаются вместе
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		_, err := s.userRepo.GetUserByLogin(txCtx, user.Login)
		if err == nil {
			return ErrLoginTaken
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("check login: %w", err)
		}

		user.ID, err = s.userRepo.CreateUser(txCtx, user)
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		data, err = s.openSession(txCtx, user)
		if err != nil {
			return fmt.Errorf("open session: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return data, nil
}
