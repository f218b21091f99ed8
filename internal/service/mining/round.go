package mining

import (
	"fmt"
	"mining_backend/internal/model"
	"mining_backend/pkg/logger"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	FinishSpinsExhausted = "spins_exhausted"
	FinishBoardCleared   = "board_cleared"
)

// Round Бонусный раунд: BETTING -> PLAYING -> FINISHED.
//
// Мутации сетки идут через очередь событий с виртуальным временем,
// Process применяет наступившие, Drain - все сразу.
// Не потокобезопасен, вызовы сериализует владелец.
type Round struct {
	id       string
	settings Settings
	rng      Rand
	clock    Clock
	log      logrus.FieldLogger

	state          model.GameState
	bet            decimal.Decimal
	spinsTotal     int
	spinsRemaining int
	accumulated    decimal.Decimal
	totalWin       decimal.Decimal
	multiplierSum  int
	grid           model.Grid
	multipliers    []int
	busy           bool

	generation uint64
	spinSeq    uint64
	activeSpin uint64
	queueSeq   uint64
	queue      eventQueue

	finish  *model.RoundFinish
	settled bool
}

type RoundOption func(*Round)

// WithLogger Свой логгер раунда
func WithLogger(l logrus.FieldLogger) RoundOption {
	return func(r *Round) {
		r.log = l
	}
}

// NewRound Раунд в состоянии BETTING
func NewRound(settings Settings, rng Rand, clock Clock, opts ...RoundOption) *Round {
	r := &Round{
		settings:    settings,
		rng:         rng,
		clock:       clock,
		log:         logger.L(),
		state:       model.StateBetting,
		accumulated: decimal.Zero,
		totalWin:    decimal.Zero,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// StartGame Новая стена и множители, переход в PLAYING
func (r *Round) StartGame(bet decimal.Decimal, spins int) error {
	if r.state == model.StatePlaying {
		return ErrRoundInProgress
	}
	if !bet.IsPositive() {
		return ErrInvalidBet
	}
	if spins < 1 || (r.settings.MaxSpins > 0 && spins > r.settings.MaxSpins) {
		return fmt.Errorf("%w: %d", ErrInvalidSpinCount, spins)
	}

	grid, err := CreateBoard(r.rng, r.settings.Tables, r.settings.Rows, r.settings.Cols, bet)
	if err != nil {
		return fmt.Errorf("create board: %w", err)
	}
	multipliers, err := GenerateMultipliers(r.rng, r.settings.Tables, r.settings.Cols)
	if err != nil {
		return fmt.Errorf("generate multipliers: %w", err)
	}

	r.ResetGame()
	r.id = uuid.NewString()
	r.bet = bet
	r.spinsTotal = spins
	r.spinsRemaining = spins
	r.grid = grid
	r.multipliers = multipliers
	r.state = model.StatePlaying

	r.log.WithFields(logrus.Fields{
		"round_id": r.id,
		"bet":      bet.StringFixed(2),
		"spins":    spins,
	}).Debug("mining round started")

	return nil
}

// Spin Запланировать спин. false - запрос проигнорирован
// (раунд не в PLAYING, спин уже идёт или спины кончились).
func (r *Round) Spin() (*model.SpinPlan, bool) {
	if r.state != model.StatePlaying || r.busy || r.spinsRemaining <= 0 {
		return nil, false
	}

	slots, err := CreateTools(r.rng, r.settings.Tables, r.settings.ToolRows, r.settings.Cols)
	if err != nil {
		r.log.WithError(err).Error("create tools")
		return nil, false
	}

	timing := r.settings.Timing
	plan := PlanSpin(r.grid, slots, timing)

	r.spinsRemaining--
	r.busy = true
	r.spinSeq++
	r.activeSpin = r.spinSeq

	now := r.clock.Now()
	for _, ev := range plan.Events {
		r.schedule(now.Add(ev.At), actionEvent, ev)
	}
	r.schedule(now.Add(max(timing.MinSpin, plan.Duration+timing.Settle)), actionSpinEnd, model.SpinEvent{})
	r.schedule(now.Add(timing.Watchdog), actionWatchdog, model.SpinEvent{})

	r.log.WithFields(logrus.Fields{
		"round_id":         r.id,
		"spin":             r.spinsTotal - r.spinsRemaining,
		"events":           len(plan.Events),
		"normal_phase_end": plan.NormalPhaseEnd,
		"duration":         plan.Duration,
		"money":            plan.MoneyEarned.StringFixed(2),
	}).Debug("mining spin planned")

	return plan, true
}

// Process Применить события, время которых уже наступило
func (r *Round) Process() {
	now := r.clock.Now()
	for {
		next := r.queue.peek()
		if next == nil || next.at.After(now) {
			return
		}
		r.fire(r.queue.pop())
	}
}

// Drain Применить все запланированные события, не дожидаясь времени
func (r *Round) Drain() {
	for r.queue.Len() > 0 {
		r.fire(r.queue.pop())
	}
}

// ResetGame Сбросить раунд в BETTING. Отложенные события старого раунда отбрасываются.
func (r *Round) ResetGame() {
	r.generation++
	r.queue.clear()

	r.id = ""
	r.state = model.StateBetting
	r.bet = decimal.Zero
	r.spinsTotal = 0
	r.spinsRemaining = 0
	r.accumulated = decimal.Zero
	r.totalWin = decimal.Zero
	r.multiplierSum = 0
	r.grid = nil
	r.multipliers = nil
	r.busy = false
	r.activeSpin = 0
	r.finish = nil
	r.settled = false
}

// State Текущее состояние
func (r *Round) State() model.GameState {
	return r.state
}

// Snapshot Состояние для клиента. Множители видны только у очищенных колонок.
func (r *Round) Snapshot() model.RoundSnapshot {
	cols := r.grid.Cols()
	visible := make([]int, len(r.multipliers))
	for c := range r.multipliers {
		if c < cols && r.grid.ColumnCleared(c) {
			visible[c] = r.multipliers[c]
		}
	}

	return model.RoundSnapshot{
		RoundID:        r.id,
		State:          r.state,
		BetAmount:      r.bet,
		SpinsTotal:     r.spinsTotal,
		SpinsRemaining: r.spinsRemaining,
		AccumulatedWin: r.accumulated,
		TotalWin:       r.totalWin,
		Grid:           r.grid.Clone(),
		Multipliers:    visible,
		ClearedColumns: r.grid.ClearedColumns(),
		Busy:           r.busy,
	}
}

// PendingFinish Итог раунда, ещё не отмеченный как выплаченный
func (r *Round) PendingFinish() *model.RoundFinish {
	if r.finish == nil || r.settled {
		return nil
	}
	f := *r.finish
	return &f
}

// MarkSettled Итог выплачен
func (r *Round) MarkSettled() {
	r.settled = true
}

// MultiplierSum Сумма множителей полностью очищенных колонок
func MultiplierSum(grid model.Grid, multipliers []int) int {
	sum := 0
	for _, c := range grid.ClearedColumns() {
		if c < len(multipliers) {
			sum += multipliers[c]
		}
	}
	return sum
}

// TotalWin accumulated x max(multiplierSum, 1)
func TotalWin(accumulated decimal.Decimal, multiplierSum int) decimal.Decimal {
	return accumulated.Mul(decimal.NewFromInt(int64(max(multiplierSum, 1)))).Round(2)
}

func (r *Round) schedule(at time.Time, kind actionKind, ev model.SpinEvent) {
	r.queueSeq++
	r.queue.push(&scheduled{
		at:         at,
		seq:        r.queueSeq,
		generation: r.generation,
		spinID:     r.activeSpin,
		kind:       kind,
		event:      ev,
	})
}

func (r *Round) fire(s *scheduled) {
	// Событие от сброшенного раунда
	if s.generation != r.generation {
		return
	}

	switch s.kind {
	case actionEvent:
		r.applyEvent(s.event)
	case actionSpinEnd:
		if s.spinID == r.activeSpin {
			r.completeSpin()
		}
	case actionWatchdog:
		if s.spinID == r.activeSpin && r.busy {
			r.log.WithFields(logrus.Fields{
				"round_id": r.id,
				"spin_id":  s.spinID,
			}).Warn("mining spin watchdog fired, forcing completion")
			r.forceComplete(s.spinID)
		}
	}
}

func (r *Round) applyEvent(ev model.SpinEvent) {
	if r.state != model.StatePlaying {
		return
	}
	var money decimal.Decimal
	r.grid, money = ApplyEvent(r.grid, ev)
	r.accumulated = r.accumulated.Add(money)
}

// forceComplete Доиграть оставшиеся события спина и завершить его
func (r *Round) forceComplete(spinID uint64) {
	for r.queue.Len() > 0 {
		s := r.queue.pop()
		if s.generation == r.generation && s.spinID == spinID && s.kind == actionEvent {
			r.applyEvent(s.event)
		}
	}
	r.completeSpin()
}

func (r *Round) completeSpin() {
	r.busy = false
	r.activeSpin = 0

	if r.state != model.StatePlaying {
		return
	}

	switch {
	case r.grid.AllDestroyed():
		r.finishRound(FinishBoardCleared)
	case r.spinsRemaining == 0:
		r.finishRound(FinishSpinsExhausted)
	}
}

func (r *Round) finishRound(reason string) {
	r.multiplierSum = MultiplierSum(r.grid, r.multipliers)
	r.totalWin = TotalWin(r.accumulated, r.multiplierSum)
	r.state = model.StateFinished

	r.finish = &model.RoundFinish{
		RoundID:        r.id,
		BetAmount:      r.bet,
		SpinsTotal:     r.spinsTotal,
		SpinsUsed:      r.spinsTotal - r.spinsRemaining,
		AccumulatedWin: r.accumulated,
		MultiplierSum:  r.multiplierSum,
		TotalWin:       r.totalWin,
		ClearedColumns: r.grid.ClearedColumns(),
		Reason:         reason,
		FinishedAt:     r.clock.Now(),
	}

	r.log.WithFields(logrus.Fields{
		"round_id":       r.id,
		"bet":            r.bet.StringFixed(2),
		"spins_used":     r.finish.SpinsUsed,
		"accumulated":    r.accumulated.StringFixed(2),
		"multiplier_sum": r.multiplierSum,
		"total_win":      r.totalWin.StringFixed(2),
		"reason":         reason,
	}).Info("mining round finished")
}
