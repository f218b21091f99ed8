package mocks

import (
	"context"
	"mining_backend/internal/model"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// TxManager Выполняет функцию без настоящей транзакции
type TxManager struct {
	Calls int
}

func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Calls++
	return fn(ctx)
}

func (m *TxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) CreateUser(ctx context.Context, user *model.User) (int, error) {
	args := m.Called(ctx, user)
	return args.Int(0), args.Error(1)
}

func (m *UserRepository) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	args := m.Called(ctx, login)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) GetBalance(ctx context.Context, id int) (decimal.Decimal, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *UserRepository) UpdateBalance(ctx context.Context, id int, balance decimal.Decimal) error {
	args := m.Called(ctx, id, balance)
	return args.Error(0)
}

type AuthRepository struct {
	mock.Mock
}

func (m *AuthRepository) CreateSession(ctx context.Context, session *model.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *AuthRepository) GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (string, error) {
	args := m.Called(ctx, sessionID)
	return args.String(0), args.Error(1)
}

func (m *AuthRepository) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *AuthRepository) GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error) {
	args := m.Called(ctx, sessionID)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type BonusRepository struct {
	mock.Mock
}

func (m *BonusRepository) SaveAward(ctx context.Context, award *model.BonusAward) error {
	args := m.Called(ctx, award)
	return args.Error(0)
}

func (m *BonusRepository) GetAward(ctx context.Context, userID int) (*model.BonusAward, error) {
	args := m.Called(ctx, userID)
	if a := args.Get(0); a != nil {
		return a.(*model.BonusAward), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *BonusRepository) TakeAward(ctx context.Context, userID int) (*model.BonusAward, error) {
	args := m.Called(ctx, userID)
	if a := args.Get(0); a != nil {
		return a.(*model.BonusAward), args.Error(1)
	}
	return nil, args.Error(1)
}

type RoundRepository struct {
	mock.Mock
}

func (m *RoundRepository) SaveRound(ctx context.Context, round *model.RoundFinish) error {
	args := m.Called(ctx, round)
	return args.Error(0)
}

func (m *RoundRepository) ListRounds(ctx context.Context, userID int, limit uint64) ([]model.RoundFinish, error) {
	args := m.Called(ctx, userID, limit)
	if r := args.Get(0); r != nil {
		return r.([]model.RoundFinish), args.Error(1)
	}
	return nil, args.Error(1)
}

type StatsRepository struct {
	mock.Mock
}

func (m *StatsRepository) Record(game string, bet, payout decimal.Decimal) {
	m.Called(game, bet, payout)
}

func (m *StatsRepository) Stats(game string) model.GameStats {
	args := m.Called(game)
	return args.Get(0).(model.GameStats)
}
