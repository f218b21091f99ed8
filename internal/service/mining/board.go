package mining

import (
	"fmt"
	"mining_backend/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateBoard Создать стену rows x cols.
// Стоимость каждого блока умножается на bet / BaseBetUnit и округляется до 2 знаков.
func CreateBoard(rng Rand, t Tables, rows, cols int, bet decimal.Decimal) (model.Grid, error) {
	weights := t.blockWeights()
	scale := bet.Div(t.BaseBetUnit)

	grid := make(model.Grid, rows)
	for r := 0; r < rows; r++ {
		grid[r] = make([]model.Block, cols)
		for c := 0; c < cols; c++ {
			bt, err := PickWeighted(rng, weights)
			if err != nil {
				return nil, fmt.Errorf("pick block type: %w", err)
			}
			spec := t.Blocks[bt]
			grid[r][c] = model.Block{
				ID:            uuid.NewString(),
				Type:          bt,
				MaxHealth:     spec.Health,
				CurrentHealth: spec.Health,
				Value:         spec.Value.Mul(scale).Round(2),
			}
		}
	}

	return grid, nil
}

// GenerateMultipliers По одному множителю на колонку
func GenerateMultipliers(rng Rand, t Tables, cols int) ([]int, error) {
	out := make([]int, cols)
	for c := range out {
		m, err := PickWeighted(rng, t.Multipliers)
		if err != nil {
			return nil, fmt.Errorf("pick multiplier: %w", err)
		}
		out[c] = m
	}
	return out, nil
}
