package mining

import (
	"mining_backend/internal/model"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slotsOf(rows ...[]*model.Tool) [][]model.ToolSlot {
	out := make([][]model.ToolSlot, len(rows))
	for r, row := range rows {
		out[r] = make([]model.ToolSlot, len(row))
		for c, tl := range row {
			out[r][c].Tool = tl
		}
	}
	return out
}

func TestPlanSpin_ColumnTimers(t *testing.T) {
	grid := gridFromHealth([][]int{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	})
	wood := tool(model.ToolWood, 2, 1)
	stone := tool(model.ToolStone, 3, 2)

	slots := slotsOf(
		[]*model.Tool{wood, nil, nil},  // верхний ряд
		[]*model.Tool{stone, wood, nil}, // нижний ряд
	)

	plan := PlanSpin(grid, slots, testTiming)

	// Колонка 0: сначала нижний stone (3 удара), потом верхний wood по пустой колонке
	bottom := plan.Slots[1][0]
	top := plan.Slots[0][0]
	assert.Equal(t, time.Duration(0), bottom.StartDelay)
	assert.Equal(t, []int{0, 1, 2}, bottom.PlannedPath)
	assert.Equal(t, 3*800*time.Millisecond+200*time.Millisecond, top.StartDelay)
	assert.Empty(t, top.PlannedPath)

	// Колонка 1: один wood, 2 удара
	assert.Equal(t, []int{0, 1}, plan.Slots[1][1].PlannedPath)

	// 2.6s + пустой путь 0.3s + зазор 0.2s
	assert.Equal(t, 3100*time.Millisecond, plan.NormalPhaseEnd)
	assert.Equal(t, plan.NormalPhaseEnd, plan.Duration)

	// Пустая колонка без инструментов ничего не даёт
	assert.False(t, plan.Grid[0][2].IsDestroyed)

	var fizzles int
	for _, ev := range plan.Events {
		if ev.Kind == model.EventFizzle {
			fizzles++
			assert.Equal(t, 2600*time.Millisecond+300*time.Millisecond, ev.At)
		}
	}
	assert.Equal(t, 1, fizzles)
	assert.Equal(t, "5", plan.MoneyEarned.String())
}

func TestPlanSpin_DoesNotMutateInput(t *testing.T) {
	grid := gridFromHealth([][]int{{2, 2}, {2, 2}})
	before := healths(grid)
	slots := slotsOf([]*model.Tool{tool(model.ToolDiamond, 8, 4), tool(model.ToolTNT, 1, 10)})

	PlanSpin(grid, slots, testTiming)

	assert.Equal(t, before, healths(grid))
	assert.Nil(t, slots[0][0].PlannedPath)
	assert.Zero(t, slots[0][1].StartDelay)
}

func TestPlanSpin_TNTAfterGlobalNormalPhase(t *testing.T) {
	grid := gridFromHealth([][]int{
		{5, 1, 5},
		{5, 1, 5},
		{5, 1, 5},
	})
	slots := slotsOf(
		[]*model.Tool{nil, nil, tool(model.ToolTNT, 1, 10)},
		[]*model.Tool{tool(model.ToolDiamond, 8, 1), nil, nil},
	)

	plan := PlanSpin(grid, slots, testTiming)

	// Алмаз в колонке 0: 8 ударов
	assert.Equal(t, 8*800*time.Millisecond+200*time.Millisecond, plan.NormalPhaseEnd)

	tnt := plan.Slots[0][2]
	assert.Equal(t, plan.NormalPhaseEnd, tnt.StartDelay, "TNT waits for the whole board")
	assert.Equal(t, tnt.StartDelay+testTiming.Explosion+testTiming.PostExplosionGap, plan.Duration)

	last := plan.Events[len(plan.Events)-1]
	assert.Equal(t, model.EventExplosion, last.Kind)
	assert.Equal(t, tnt.StartDelay+testTiming.Explosion, last.At)
}

func TestPlanSpin_PhaseOrderingProperty(t *testing.T) {
	rng := seeded(99)
	tables := testTables()

	for i := 0; i < 300; i++ {
		grid, err := CreateBoard(rng, tables, 5, 5, decimal.NewFromInt(1))
		require.NoError(t, err)
		slots, err := CreateTools(rng, tables, 2, 5)
		require.NoError(t, err)

		plan := PlanSpin(grid, slots, testTiming)

		var normalEnds []time.Duration
		var tntStarts []time.Duration
		for _, row := range plan.Slots {
			for _, s := range row {
				if s.Tool == nil {
					continue
				}
				if s.Tool.Type.IsExplosive() {
					tntStarts = append(tntStarts, s.StartDelay)
					continue
				}
				d := time.Duration(len(s.PlannedPath)) * testTiming.Hit
				if len(s.PlannedPath) == 0 {
					d = testTiming.EmptyPath
				}
				normalEnds = append(normalEnds, s.StartDelay+d)
			}
		}
		for _, ts := range tntStarts {
			for _, ne := range normalEnds {
				require.GreaterOrEqual(t, ts, ne)
			}
			require.GreaterOrEqual(t, ts, plan.NormalPhaseEnd)
		}

		for j := 1; j < len(plan.Events); j++ {
			require.LessOrEqual(t, plan.Events[j-1].At, plan.Events[j].At)
			require.Equal(t, j+1, plan.Events[j].Seq)
		}
		if len(plan.Events) > 0 {
			require.LessOrEqual(t, plan.Events[len(plan.Events)-1].At, plan.Duration)
		}
	}
}

func TestPlanSpin_ReplayMatchesPlan(t *testing.T) {
	rng := seeded(123)
	tables := testTables()
	tables.EmptySlotChance = 0.1

	for i := 0; i < 300; i++ {
		grid, err := CreateBoard(rng, tables, 5, 5, decimal.NewFromInt(1))
		require.NoError(t, err)
		slots, err := CreateTools(rng, tables, 2, 5)
		require.NoError(t, err)

		plan := PlanSpin(grid, slots, testTiming)
		replayed, money := replay(grid, plan.Events)

		require.Equal(t, healths(plan.Grid), healths(replayed))
		require.True(t, plan.MoneyEarned.Equal(money))
	}
}

func TestPlanSpin_TwoTNTsInOneColumnKeepOrder(t *testing.T) {
	// Колонка 0 с двумя TNT, колонка 1 с одним в верхнем ряду.
	// Взрывы применяются в порядке расчёта.
	grid := gridFromHealth([][]int{
		{10, 10},
		{10, 10},
		{10, 10},
	})
	slots := slotsOf(
		[]*model.Tool{tool(model.ToolTNT, 1, 10), tool(model.ToolTNT, 1, 10)},
		[]*model.Tool{tool(model.ToolTNT, 1, 10), nil},
	)

	plan := PlanSpin(grid, slots, testTiming)

	bottom := plan.Slots[1][0]
	topLeft := plan.Slots[0][0]
	topRight := plan.Slots[0][1]
	assert.Equal(t, time.Duration(0), bottom.StartDelay)
	assert.Equal(t, testTiming.Explosion+testTiming.PostExplosionGap, topLeft.StartDelay)
	assert.GreaterOrEqual(t, topRight.StartDelay, topLeft.StartDelay)

	replayed, _ := replay(grid, plan.Events)
	assert.Equal(t, healths(plan.Grid), healths(replayed))
}

func TestPlanSpin_DistantTNTKeepsOwnStart(t *testing.T) {
	// Зоны колонок 0 и 3 не пересекаются, TNT в колонке 3 не ждёт второй взрыв колонки 0
	grid := gridFromHealth([][]int{
		{10, 10, 10, 10, 10},
		{10, 10, 10, 10, 10},
		{10, 10, 10, 10, 10},
	})
	slots := slotsOf(
		[]*model.Tool{tool(model.ToolTNT, 1, 10), nil, nil, tool(model.ToolTNT, 1, 10), nil},
		[]*model.Tool{tool(model.ToolTNT, 1, 10), nil, nil, nil, nil},
	)

	plan := PlanSpin(grid, slots, testTiming)

	require.Equal(t, time.Duration(0), plan.NormalPhaseEnd)
	assert.Equal(t, time.Duration(0), plan.Slots[1][0].StartDelay)
	assert.Equal(t, testTiming.Explosion+testTiming.PostExplosionGap, plan.Slots[0][0].StartDelay)
	assert.Equal(t, plan.NormalPhaseEnd, plan.Slots[0][3].StartDelay)

	replayed, money := replay(grid, plan.Events)
	assert.Equal(t, healths(plan.Grid), healths(replayed))
	assert.True(t, plan.MoneyEarned.Equal(money))
}

func TestPlanSpin_NeighbourTNTWaitsForOverlappingBlast(t *testing.T) {
	grid := gridFromHealth([][]int{
		{10, 10, 10, 10, 10},
		{10, 10, 10, 10, 10},
		{10, 10, 10, 10, 10},
	})
	slots := slotsOf(
		[]*model.Tool{tool(model.ToolTNT, 1, 10), nil, tool(model.ToolTNT, 1, 10), nil, nil},
		[]*model.Tool{tool(model.ToolTNT, 1, 10), nil, nil, nil, nil},
	)

	plan := PlanSpin(grid, slots, testTiming)

	second := plan.Slots[0][0].StartDelay
	assert.Equal(t, testTiming.Explosion+testTiming.PostExplosionGap, second)
	assert.Equal(t, second, plan.Slots[0][2].StartDelay)

	replayed, _ := replay(grid, plan.Events)
	assert.Equal(t, healths(plan.Grid), healths(replayed))
}

func TestPlanSpin_ComposesToolDamage(t *testing.T) {
	grid := gridFromHealth([][]int{{1}, {3}, {5}, {2}})
	tl := tool(model.ToolStone, 3, 2)

	plan := PlanSpin(grid, slotsOf([]*model.Tool{tl}), testTiming)
	direct := ApplyToolDamage(grid, 0, tl.DamagePerHit, tl.Uses)

	assert.Equal(t, healths(direct.Grid), healths(plan.Grid))
	assert.True(t, direct.Money.Equal(plan.MoneyEarned))
}

func TestPlanSpin_NoTools(t *testing.T) {
	grid := gridFromHealth([][]int{{1, 1}})
	plan := PlanSpin(grid, slotsOf([]*model.Tool{nil, nil}, []*model.Tool{nil, nil}), testTiming)

	assert.Empty(t, plan.Events)
	assert.Zero(t, plan.Duration)
	assert.True(t, plan.MoneyEarned.IsZero())
}
