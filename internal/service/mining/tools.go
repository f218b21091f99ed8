package mining

import (
	"fmt"
	"mining_backend/internal/model"

	"github.com/google/uuid"
)

// CreateTools Сетка инструментов toolRows x cols на один спин.
// Слот пуст с вероятностью EmptySlotChance.
func CreateTools(rng Rand, t Tables, toolRows, cols int) ([][]model.ToolSlot, error) {
	weights := t.toolWeights()

	slots := make([][]model.ToolSlot, toolRows)
	for r := 0; r < toolRows; r++ {
		slots[r] = make([]model.ToolSlot, cols)
		for c := 0; c < cols; c++ {
			if rng.Float64() < t.EmptySlotChance {
				continue
			}
			tt, err := PickWeighted(rng, weights)
			if err != nil {
				return nil, fmt.Errorf("pick tool type: %w", err)
			}
			slots[r][c].Tool = NewTool(tt, t.Tools[tt].Uses, t.Tools[tt].Damage)
		}
	}

	return slots, nil
}

// NewTool Создать инструмент
func NewTool(tt model.ToolType, uses, damage int) *model.Tool {
	return &model.Tool{
		ID:           uuid.NewString(),
		Type:         tt,
		Uses:         uses,
		DamagePerHit: damage,
	}
}
