package stats

import (
	"mining_backend/internal/model"
	"mining_backend/internal/repository"
	"mining_backend/internal/service"
)

var games = []string{model.GameCascade, model.GameMining}

type serv struct {
	repo repository.StatsRepository
}

// NewStatsService Создать сервис RTP-статистики
func NewStatsService(repo repository.StatsRepository) service.StatsService {
	return &serv{repo: repo}
}

// All Статистика по всем играм
func (s *serv) All() []model.GameStats {
	out := make([]model.GameStats, 0, len(games))
	for _, g := range games {
		out = append(out, s.repo.Stats(g))
	}
	return out
}
