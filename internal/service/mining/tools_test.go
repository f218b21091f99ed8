package mining

import (
	"mining_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTools_Rectangular(t *testing.T) {
	rng := seeded(5)
	tables := testTables()
	for i := 0; i < 50; i++ {
		slots, err := CreateTools(rng, tables, 2, 5)
		require.NoError(t, err)
		require.Len(t, slots, 2)
		for _, row := range slots {
			require.Len(t, row, 5)
			for _, s := range row {
				if s.Tool == nil {
					continue
				}
				spec := tables.Tools[s.Tool.Type]
				assert.Equal(t, spec.Uses, s.Tool.Uses)
				assert.Equal(t, spec.Damage, s.Tool.DamagePerHit)
				assert.NotEmpty(t, s.Tool.ID)
			}
		}
	}
}

func TestCreateTools_EmptyChance(t *testing.T) {
	tables := testTables()
	tables.EmptySlotChance = 0.5

	// 0.1 < 0.5 -> пусто; 0.9 -> инструмент, затем 0.0 выбирает первый ключ по порядку
	rng := &scriptedRand{vals: []float64{0.1, 0.9, 0.0}}
	slots, err := CreateTools(rng, tables, 1, 2)
	require.NoError(t, err)

	assert.Nil(t, slots[0][0].Tool)
	require.NotNil(t, slots[0][1].Tool)
	assert.Equal(t, model.ToolDiamond, slots[0][1].Tool.Type)
}

func TestCreateTools_EmptyTable(t *testing.T) {
	tables := testTables()
	tables.Tools = nil
	tables.EmptySlotChance = 0
	_, err := CreateTools(seeded(1), tables, 2, 2)
	assert.ErrorIs(t, err, ErrEmptyWeights)
}
