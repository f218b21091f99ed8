package mining

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"mining_backend/internal/config"
	"mining_backend/internal/metrics"
	"mining_backend/internal/model"
	"mining_backend/internal/repository"
	"mining_backend/internal/service"
	"mining_backend/pkg/logger"
	"sync"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/sirupsen/logrus"
)

// liveRound Раунд игрока. Все операции с ним идут под mu.
type liveRound struct {
	mu     sync.Mutex
	userID int
	round  *Round
}

type serv struct {
	cfg       config.MiningConfig
	settings  Settings
	txManager trm.Manager
	userRepo  repository.UserRepository
	bonusRepo repository.BonusRepository
	roundRepo repository.RoundRepository
	statsRepo repository.StatsRepository

	clock   Clock
	newRand func() Rand

	startMu sync.Mutex

	// Раунды до выплаты живут в active и не вытесняются,
	// в finished попадают уже выплаченные, чтобы игрок мог посмотреть итог.
	mu       sync.Mutex
	active   map[int]*liveRound
	finished *expirable.LRU[int, *liveRound]
}

// NewMiningService Создать сервис бонусной игры
func NewMiningService(
	cfg config.MiningConfig,
	txManager trm.Manager,
	userRepo repository.UserRepository,
	bonusRepo repository.BonusRepository,
	roundRepo repository.RoundRepository,
	statsRepo repository.StatsRepository,
) service.MiningService {
	return newServ(cfg, txManager, userRepo, bonusRepo, roundRepo, statsRepo)
}

func newServ(
	cfg config.MiningConfig,
	txManager trm.Manager,
	userRepo repository.UserRepository,
	bonusRepo repository.BonusRepository,
	roundRepo repository.RoundRepository,
	statsRepo repository.StatsRepository,
) *serv {
	s := &serv{
		cfg:       cfg,
		settings:  SettingsFromConfig(cfg),
		txManager: txManager,
		userRepo:  userRepo,
		bonusRepo: bonusRepo,
		roundRepo: roundRepo,
		statsRepo: statsRepo,
		clock:     SystemClock{},
		newRand: func() Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		},
	}

	s.active = make(map[int]*liveRound)
	s.finished = expirable.NewLRU[int, *liveRound](cfg.RoundCacheSize(), s.onEvict, cfg.RoundCacheTTL())
	return s
}

// StartRound Забрать выигранный бонус и начать раунд
func (s *serv) StartRound(ctx context.Context, userID int) (*model.RoundSnapshot, error) {
	s.startMu.Lock()
	defer s.startMu.Unlock()

	if lr, ok := s.lookup(userID); ok {
		lr.mu.Lock()
		err := s.sync(ctx, lr)
		state := lr.round.State()
		lr.mu.Unlock()
		if err != nil {
			return nil, err
		}
		if state == model.StatePlaying {
			return nil, ErrRoundInProgress
		}
	}

	round := NewRound(s.settings, s.newRand(), s.clock, WithLogger(logger.L().WithField("user_id", userID)))

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		award, err := s.bonusRepo.TakeAward(txCtx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrNoBonusAvailable
			}
			return fmt.Errorf("take bonus award: %w", err)
		}

		return round.StartGame(award.Bet, award.Spins)
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.finished.Remove(userID)
	s.active[userID] = &liveRound{userID: userID, round: round}
	s.mu.Unlock()

	metrics.MiningRounds.WithLabelValues(metrics.RoundStarted).Inc()
	metrics.LiveRounds.Set(float64(s.liveCount()))

	snap := round.Snapshot()
	return &snap, nil
}

// Spin Запланировать спин. В мгновенном режиме раунд сразу доигрывается.
func (s *serv) Spin(ctx context.Context, userID int) (*model.MiningSpinResult, error) {
	lr, ok := s.lookup(userID)
	if !ok {
		return nil, ErrNoActiveRound
	}

	lr.mu.Lock()
	defer lr.mu.Unlock()

	if err := s.sync(ctx, lr); err != nil {
		return nil, err
	}

	plan, accepted := lr.round.Spin()
	if !accepted {
		metrics.MiningSpins.WithLabelValues(metrics.SpinIgnored).Inc()
		return &model.MiningSpinResult{Accepted: false, Round: lr.round.Snapshot()}, nil
	}

	metrics.MiningSpins.WithLabelValues(metrics.SpinAccepted).Inc()
	metrics.MiningSpinDuration.Observe(plan.Duration.Seconds())
	for _, ev := range plan.Events {
		for _, d := range ev.Destroyed {
			metrics.MiningBlocksDestroyed.WithLabelValues(string(d.Type)).Inc()
		}
	}

	if !s.cfg.Realtime() {
		lr.round.Drain()
	}
	if err := s.sync(ctx, lr); err != nil {
		return nil, err
	}

	return &model.MiningSpinResult{
		Accepted: true,
		Plan:     plan,
		Round:    lr.round.Snapshot(),
	}, nil
}

// State Текущее состояние раунда
func (s *serv) State(ctx context.Context, userID int) (*model.RoundSnapshot, error) {
	lr, ok := s.lookup(userID)
	if !ok {
		return nil, ErrNoActiveRound
	}

	lr.mu.Lock()
	defer lr.mu.Unlock()

	if err := s.sync(ctx, lr); err != nil {
		return nil, err
	}

	snap := lr.round.Snapshot()
	return &snap, nil
}

// Reset Сбросить раунд. Уже завершённый раунд перед этим выплачивается.
func (s *serv) Reset(ctx context.Context, userID int) error {
	lr, ok := s.lookup(userID)
	if !ok {
		return ErrNoActiveRound
	}

	lr.mu.Lock()
	defer lr.mu.Unlock()

	if err := s.sync(ctx, lr); err != nil {
		return err
	}

	if lr.round.State() == model.StatePlaying {
		logger.FromContext(ctx).WithFields(logrus.Fields{
			"user_id":  userID,
			"round_id": lr.round.Snapshot().RoundID,
		}).Info("mining round reset before finish")
	}

	lr.round.ResetGame()
	s.forget(userID, lr)
	metrics.MiningRounds.WithLabelValues(metrics.RoundReset).Inc()
	metrics.LiveRounds.Set(float64(s.liveCount()))

	return nil
}

// History Последние завершённые раунды игрока
func (s *serv) History(ctx context.Context, userID int, limit uint64) ([]model.RoundFinish, error) {
	rounds, err := s.roundRepo.ListRounds(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list rounds: %w", err)
	}
	return rounds, nil
}

// sync Применить наступившие события и выплатить завершённый раунд. Вызывается под lr.mu.
func (s *serv) sync(ctx context.Context, lr *liveRound) error {
	lr.round.Process()
	return s.settle(ctx, lr)
}

// settle Зачислить выигрыш и сохранить раунд одной транзакцией, ровно один раз
func (s *serv) settle(ctx context.Context, lr *liveRound) error {
	f := lr.round.PendingFinish()
	if f == nil {
		return nil
	}
	f.UserID = lr.userID

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		balance, err := s.userRepo.GetBalance(txCtx, lr.userID)
		if err != nil {
			return fmt.Errorf("get balance: %w", err)
		}
		if err := s.userRepo.UpdateBalance(txCtx, lr.userID, balance.Add(f.TotalWin)); err != nil {
			return fmt.Errorf("update balance: %w", err)
		}
		if err := s.roundRepo.SaveRound(txCtx, f); err != nil {
			return fmt.Errorf("save round: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("settle mining round: %w", err)
	}

	lr.round.MarkSettled()
	s.archive(lr)

	s.statsRepo.Record(model.GameMining, f.BetAmount, f.TotalWin)
	metrics.MiningRounds.WithLabelValues(metrics.RoundFinished).Inc()
	metrics.MoneyPaid.WithLabelValues(model.GameMining).Add(f.TotalWin.InexactFloat64())

	logger.FromContext(ctx).WithFields(logrus.Fields{
		"user_id":   lr.userID,
		"round_id":  f.RoundID,
		"total_win": f.TotalWin.StringFixed(2),
	}).Info("mining round settled")

	return nil
}

func (s *serv) lookup(userID int) (*liveRound, bool) {
	s.mu.Lock()
	lr, ok := s.active[userID]
	s.mu.Unlock()
	if ok {
		return lr, true
	}
	return s.finished.Get(userID)
}

// archive Перенести выплаченный раунд из active в finished
func (s *serv) archive(lr *liveRound) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Игрок мог уже начать следующий раунд
	if s.active[lr.userID] != lr {
		return
	}
	delete(s.active, lr.userID)
	s.finished.Add(lr.userID, lr)
}

func (s *serv) forget(userID int, lr *liveRound) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active[userID] == lr {
		delete(s.active, userID)
	}
	if cur, ok := s.finished.Peek(userID); ok && cur == lr {
		s.finished.Remove(userID)
	}
}

func (s *serv) liveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active) + s.finished.Len()
}

// onEvict Вытесняются только выплаченные раунды
func (s *serv) onEvict(userID int, lr *liveRound) {
	metrics.MiningRounds.WithLabelValues(metrics.RoundEvicted).Inc()
	logger.L().WithFields(logrus.Fields{
		"user_id": userID,
	}).Debug("mining round dropped from memory")
}
