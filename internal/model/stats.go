package model

const (
	GameCascade = "cascade"
	GameMining  = "mining"
)

// GameStats Статистика RTP одной игры
type GameStats struct {
	Game        string
	TotalSpins  int
	TotalBet    float64
	TotalPayout float64
	CurrentRTP  float64
	WindowRTP   float64
	WindowSize  int
	TargetRTP   float64
	Drifting    bool // RTP окна ушёл от целевого дальше критического порога
}
