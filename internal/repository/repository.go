package repository

import (
	"context"
	"errors"
	"mining_backend/internal/model"

	"github.com/shopspring/decimal"
)

// ErrNotFound Запись не найдена
var ErrNotFound = errors.New("not found")

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)

	GetBalance(ctx context.Context, id int) (decimal.Decimal, error)
	UpdateBalance(ctx context.Context, id int, balance decimal.Decimal) error
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (refreshToken string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error)
}

// BonusRepository Выигранные в основной игре бонусы, по одному на игрока
type BonusRepository interface {
	SaveAward(ctx context.Context, award *model.BonusAward) error
	GetAward(ctx context.Context, userID int) (*model.BonusAward, error)
	TakeAward(ctx context.Context, userID int) (*model.BonusAward, error)
}

// RoundRepository История завершённых бонусных раундов
type RoundRepository interface {
	SaveRound(ctx context.Context, round *model.RoundFinish) error
	ListRounds(ctx context.Context, userID int, limit uint64) ([]model.RoundFinish, error)
}

type StatsRepository interface {
	Record(game string, bet, payout decimal.Decimal)
	Stats(game string) model.GameStats
}
