package mining

import "errors"

var (
	ErrInvalidBet       = errors.New("bet must be positive")
	ErrInvalidSpinCount = errors.New("spin count out of range")
	ErrRoundInProgress  = errors.New("round already in progress")
	ErrNoActiveRound    = errors.New("no active round")
	ErrNoBonusAvailable = errors.New("no bonus available")
	ErrEmptyWeights     = errors.New("weight table is empty or sums to zero")
)
