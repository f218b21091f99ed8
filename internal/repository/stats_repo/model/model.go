package model

// GameState Накопленная статистика одной игры
type GameState struct {
	TotalSpins  int     // Сколько всего спинов/раундов сыграно
	TotalBet    float64 // Сумма всех ставок
	TotalPayout float64 // Сумма всех выплат

	CurrentRTP float64 // (TotalPayout/TotalBet)*100
	TargetRTP  float64

	Drifting bool // RTP окна за критическим порогом

	SpinWindow []SpinResult // Окно последних спинов
	WindowRTP  float64
	WindowSize int
}

// SpinResult Результат спина для окна
type SpinResult struct {
	Bet    float64
	Payout float64
}
