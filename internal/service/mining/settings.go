package mining

import (
	"mining_backend/internal/config"
	"mining_backend/internal/model"

	"github.com/shopspring/decimal"
)

// Tables Таблицы генерации блоков, инструментов и множителей
type Tables struct {
	Blocks          map[model.BlockType]config.BlockSpec
	Tools           map[model.ToolType]config.ToolSpec
	Multipliers     map[int]float64
	BaseBetUnit     decimal.Decimal
	EmptySlotChance float64
}

// Settings Всё, что нужно раунду
type Settings struct {
	Rows     int
	Cols     int
	ToolRows int
	MaxSpins int
	Tables   Tables
	Timing   config.MiningTiming
}

// SettingsFromConfig Собрать настройки движка из конфига
func SettingsFromConfig(cfg config.MiningConfig) Settings {
	return Settings{
		Rows:     cfg.GridRows(),
		Cols:     cfg.GridCols(),
		ToolRows: cfg.ToolRows(),
		MaxSpins: cfg.MaxSpins(),
		Tables: Tables{
			Blocks:          cfg.Blocks(),
			Tools:           cfg.Tools(),
			Multipliers:     cfg.MultiplierWeights(),
			BaseBetUnit:     cfg.BaseBetUnit(),
			EmptySlotChance: cfg.EmptySlotChance(),
		},
		Timing: cfg.Timing(),
	}
}

func (t Tables) blockWeights() map[model.BlockType]float64 {
	w := make(map[model.BlockType]float64, len(t.Blocks))
	for bt, spec := range t.Blocks {
		w[bt] = spec.Weight
	}
	return w
}

func (t Tables) toolWeights() map[model.ToolType]float64 {
	w := make(map[model.ToolType]float64, len(t.Tools))
	for tt, spec := range t.Tools {
		w[tt] = spec.Weight
	}
	return w
}
