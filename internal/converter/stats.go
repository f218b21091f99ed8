package converter

import (
	"mining_backend/internal/api/dto/stats"
	"mining_backend/internal/model"
)

func ToStatsResponse(all []model.GameStats) []stats.GameStats {
	out := make([]stats.GameStats, 0, len(all))
	for _, s := range all {
		out = append(out, stats.GameStats{
			Game:        s.Game,
			TotalSpins:  s.TotalSpins,
			TotalBet:    s.TotalBet,
			TotalPayout: s.TotalPayout,
			CurrentRTP:  s.CurrentRTP,
			WindowRTP:   s.WindowRTP,
			WindowSize:  s.WindowSize,
			TargetRTP:   s.TargetRTP,
			Drifting:    s.Drifting,
		})
	}
	return out
}
