package service

import (
	"context"
	"mining_backend/internal/model"

	"github.com/shopspring/decimal"
)

type CascadeService interface {
	Spin(ctx context.Context, userID int, req model.CascadeSpin) (*model.CascadeSpinResult, error)
	Balance(ctx context.Context, userID int) (decimal.Decimal, error)
	Deposit(ctx context.Context, userID int, amount decimal.Decimal) (decimal.Decimal, error)
}

type MiningService interface {
	StartRound(ctx context.Context, userID int) (*model.RoundSnapshot, error)
	Spin(ctx context.Context, userID int) (*model.MiningSpinResult, error)
	State(ctx context.Context, userID int) (*model.RoundSnapshot, error)
	Reset(ctx context.Context, userID int) error
	History(ctx context.Context, userID int, limit uint64) ([]model.RoundFinish, error)
}

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, login, password string) (*model.AuthData, error)
	Refresh(ctx context.Context, sessionID, refreshToken string) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}

type StatsService interface {
	All() []model.GameStats
}
