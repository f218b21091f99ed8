package cascade

import (
	"errors"
	"math/rand/v2"
	"mining_backend/internal/config"
	"mining_backend/internal/repository"
	"mining_backend/internal/service"
	"mining_backend/internal/service/mining"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

var (
	ErrInvalidBet       = errors.New("amount must be positive with at most 2 decimal places")
	ErrBetNotAllowed    = errors.New("bet is not one of the allowed bet levels")
	ErrNotEnoughBalance = errors.New("not enough balance")
)

type serv struct {
	cfg       config.CascadeConfig
	txManager trm.Manager
	userRepo  repository.UserRepository
	bonusRepo repository.BonusRepository
	statsRepo repository.StatsRepository

	newRand func() mining.Rand
	now     func() time.Time
}

// NewCascadeService Создать сервис основной игры
func NewCascadeService(
	cfg config.CascadeConfig,
	txManager trm.Manager,
	userRepo repository.UserRepository,
	bonusRepo repository.BonusRepository,
	statsRepo repository.StatsRepository,
) service.CascadeService {
	return newServ(cfg, txManager, userRepo, bonusRepo, statsRepo)
}

func newServ(
	cfg config.CascadeConfig,
	txManager trm.Manager,
	userRepo repository.UserRepository,
	bonusRepo repository.BonusRepository,
	statsRepo repository.StatsRepository,
) *serv {
	return &serv{
		cfg:       cfg,
		txManager: txManager,
		userRepo:  userRepo,
		bonusRepo: bonusRepo,
		statsRepo: statsRepo,
		newRand: func() mining.Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		},
		now: time.Now,
	}
}
