package cascade

import (
	"context"
	"fmt"
	"mining_backend/internal/metrics"
	"mining_backend/internal/model"
	"mining_backend/pkg/logger"
	"slices"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Spin Списать ставку, разыграть поле с каскадами, зачислить выигрыш.
// Три и больше scatter на итоговом поле дают бонус на текущей ставке.
func (s *serv) Spin(ctx context.Context, userID int, req model.CascadeSpin) (*model.CascadeSpinResult, error) {
	bet := req.Bet
	if !bet.IsPositive() || !bet.Equal(bet.Round(2)) {
		return nil, ErrInvalidBet
	}
	if levels := s.cfg.BetLevels(); len(levels) > 0 && !slices.ContainsFunc(levels, bet.Equal) {
		return nil, ErrBetNotAllowed
	}

	var (
		res     *outcome
		balance decimal.Decimal
		awarded bool
	)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		current, err := s.userRepo.GetBalance(txCtx, userID)
		if err != nil {
			return fmt.Errorf("get balance: %w", err)
		}
		if current.LessThan(bet) {
			return ErrNotEnoughBalance
		}

		res, err = newGame(s.cfg, s.newRand()).play(bet)
		if err != nil {
			return fmt.Errorf("play cascade: %w", err)
		}

		balance = current.Sub(bet).Add(res.payout)
		if err := s.userRepo.UpdateBalance(txCtx, userID, balance); err != nil {
			return fmt.Errorf("update balance: %w", err)
		}

		if res.scatters >= s.cfg.ScatterTrigger() {
			award := &model.BonusAward{
				UserID:    userID,
				Bet:       bet,
				Spins:     s.cfg.BonusSpins(),
				CreatedAt: s.now(),
			}
			if err := s.bonusRepo.SaveAward(txCtx, award); err != nil {
				return fmt.Errorf("save bonus award: %w", err)
			}
			awarded = true
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.statsRepo.Record(model.GameCascade, bet, res.payout)
	metrics.CascadeSpins.Inc()
	metrics.CascadeSteps.Observe(float64(len(res.steps)))
	metrics.MoneyWagered.WithLabelValues(model.GameCascade).Add(bet.InexactFloat64())
	metrics.MoneyPaid.WithLabelValues(model.GameCascade).Add(res.payout.InexactFloat64())

	result := &model.CascadeSpinResult{
		InitialBoard: res.initial,
		Board:        res.final,
		Cascades:     res.steps,
		TotalPayout:  res.payout,
		Balance:      balance,
		ScatterCount: res.scatters,
		BonusAwarded: awarded,
	}

	if awarded {
		result.BonusSpins = s.cfg.BonusSpins()
		metrics.CascadeBonuses.Inc()
		logger.FromContext(ctx).WithFields(logrus.Fields{
			"user_id":  userID,
			"bet":      bet.StringFixed(2),
			"scatters": res.scatters,
			"spins":    result.BonusSpins,
		}).Info("mining bonus awarded")
	}

	return result, nil
}

// Balance Текущий баланс игрока
func (s *serv) Balance(ctx context.Context, userID int) (decimal.Decimal, error) {
	balance, err := s.userRepo.GetBalance(ctx, userID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("get balance: %w", err)
	}
	return balance, nil
}

// Deposit Пополнить баланс
func (s *serv) Deposit(ctx context.Context, userID int, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() || !amount.Equal(amount.Round(2)) {
		return decimal.Zero, ErrInvalidBet
	}

	var balance decimal.Decimal
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		current, err := s.userRepo.GetBalance(txCtx, userID)
		if err != nil {
			return fmt.Errorf("get balance: %w", err)
		}
		balance = current.Add(amount)
		if err := s.userRepo.UpdateBalance(txCtx, userID, balance); err != nil {
			return fmt.Errorf("update balance: %w", err)
		}
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}

	return balance, nil
}
