package stats

type GameStats struct {
	Game        string  `json:"game"`
	TotalSpins  int     `json:"total_spins"`
	TotalBet    float64 `json:"total_bet"`
	TotalPayout float64 `json:"total_payout"`
	CurrentRTP  float64 `json:"current_rtp"`
	WindowRTP   float64 `json:"window_rtp"`
	WindowSize  int     `json:"window_size"`
	TargetRTP   float64 `json:"target_rtp"`
	Drifting    bool    `json:"drifting"`
}
