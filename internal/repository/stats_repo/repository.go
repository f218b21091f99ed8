package stats_repo

import (
	"math"
	"mining_backend/internal/model"
	"mining_backend/internal/repository"
	repoModel "mining_backend/internal/repository/stats_repo/model"
	"mining_backend/pkg/logger"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	defaultWindowSize = 500
	defaultTargetRTP  = 95.0

	// Порог, после которого окно считается ушедшим от целевого RTP
	criticalRTPDeviation = 10.0
	// Порог возврата в норму
	normalRTPDeviation = 5.0
	// Меньше спинов в окне - не оцениваем
	minSpinsToCheck = 50
)

type repo struct {
	mtx    sync.RWMutex
	states map[string]*repoModel.GameState
}

// NewStatsRepository In-memory трекер RTP по играм
func NewStatsRepository() repository.StatsRepository {
	return &repo{
		states: make(map[string]*repoModel.GameState),
	}
}

// Record Учесть ставку и выплату спина (или раунда бонуса)
func (r *repo) Record(game string, bet, payout decimal.Decimal) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	st := r.state(game)

	b := bet.InexactFloat64()
	p := payout.InexactFloat64()

	st.TotalSpins++
	st.TotalBet += b
	st.TotalPayout += p
	if st.TotalBet > 0 {
		st.CurrentRTP = st.TotalPayout / st.TotalBet * 100
	}

	st.SpinWindow = append(st.SpinWindow, repoModel.SpinResult{Bet: b, Payout: p})
	if len(st.SpinWindow) > st.WindowSize {
		st.SpinWindow = st.SpinWindow[1:]
	}

	var windowBet, windowPayout float64
	for _, spin := range st.SpinWindow {
		windowBet += spin.Bet
		windowPayout += spin.Payout
	}
	if windowBet > 0 {
		st.WindowRTP = windowPayout / windowBet * 100
	} else {
		st.WindowRTP = 0
	}

	r.checkDrift(game, st)
}

// Stats Копия статистики игры
func (r *repo) Stats(game string) model.GameStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	st, ok := r.states[game]
	if !ok {
		return model.GameStats{
			Game:       game,
			WindowSize: defaultWindowSize,
			TargetRTP:  defaultTargetRTP,
		}
	}

	return model.GameStats{
		Game:        game,
		TotalSpins:  st.TotalSpins,
		TotalBet:    st.TotalBet,
		TotalPayout: st.TotalPayout,
		CurrentRTP:  st.CurrentRTP,
		WindowRTP:   st.WindowRTP,
		WindowSize:  st.WindowSize,
		TargetRTP:   st.TargetRTP,
		Drifting:    st.Drifting,
	}
}

func (r *repo) state(game string) *repoModel.GameState {
	st, ok := r.states[game]
	if !ok {
		st = &repoModel.GameState{
			TargetRTP:  defaultTargetRTP,
			WindowSize: defaultWindowSize,
			SpinWindow: make([]repoModel.SpinResult, 0, defaultWindowSize),
		}
		r.states[game] = st
	}
	return st
}

// checkDrift Включает флаг при сильном отклонении окна и снимает при возврате
func (r *repo) checkDrift(game string, st *repoModel.GameState) {
	if len(st.SpinWindow) < minSpinsToCheck {
		return
	}

	diff := math.Abs(st.WindowRTP - st.TargetRTP)

	if !st.Drifting && diff > criticalRTPDeviation {
		st.Drifting = true
		logger.L().WithFields(logrus.Fields{
			"game":       game,
			"window_rtp": st.WindowRTP,
			"target_rtp": st.TargetRTP,
		}).Warn("window RTP drifted from target")
		return
	}

	if st.Drifting && diff < normalRTPDeviation {
		st.Drifting = false
		logger.L().WithFields(logrus.Fields{
			"game":       game,
			"window_rtp": st.WindowRTP,
		}).Info("window RTP back to normal")
	}
}
