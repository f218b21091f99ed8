package mining

import (
	"math/rand/v2"
	"mining_backend/internal/config"
	"mining_backend/internal/model"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

// scriptedRand Отдаёт значения по кругу
type scriptedRand struct {
	vals []float64
	i    int
}

func (r *scriptedRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

var testTiming = config.MiningTiming{
	Hit:              800 * time.Millisecond,
	InterToolGap:     200 * time.Millisecond,
	Explosion:        800 * time.Millisecond,
	PostExplosionGap: 200 * time.Millisecond,
	EmptyPath:        300 * time.Millisecond,
	MinSpin:          time.Second,
	Settle:           500 * time.Millisecond,
	Watchdog:         20 * time.Second,
}

func testTables() Tables {
	return Tables{
		Blocks: map[model.BlockType]config.BlockSpec{
			model.BlockDirt:       {Health: 1, Value: decimal.RequireFromString("0.02"), Weight: 0.35},
			model.BlockStone:      {Health: 3, Value: decimal.RequireFromString("0.05"), Weight: 0.25},
			model.BlockIronOre:    {Health: 5, Value: decimal.RequireFromString("0.10"), Weight: 0.18},
			model.BlockGoldOre:    {Health: 8, Value: decimal.RequireFromString("0.25"), Weight: 0.12},
			model.BlockDiamondOre: {Health: 12, Value: decimal.RequireFromString("0.50"), Weight: 0.07},
			model.BlockObsidian:   {Health: 24, Value: decimal.RequireFromString("1.00"), Weight: 0.03},
		},
		Tools: map[model.ToolType]config.ToolSpec{
			model.ToolWood:    {Uses: 2, Damage: 1, Weight: 0.35},
			model.ToolStone:   {Uses: 3, Damage: 2, Weight: 0.25},
			model.ToolGold:    {Uses: 5, Damage: 1, Weight: 0.15},
			model.ToolDiamond: {Uses: 8, Damage: 4, Weight: 0.05},
			model.ToolTNT:     {Uses: 1, Damage: 10, Weight: 0.10},
			model.ToolEye:     {Uses: 0, Damage: 0, Weight: 0.10},
		},
		Multipliers:     map[int]float64{1: 30, 2: 22, 3: 15, 4: 10, 5: 8, 6: 6, 7: 4, 8: 2.5, 9: 1.5, 10: 1},
		BaseBetUnit:     decimal.RequireFromString("0.20"),
		EmptySlotChance: 0.3,
	}
}

func testSettings() Settings {
	return Settings{
		Rows:     5,
		Cols:     5,
		ToolRows: 2,
		MaxSpins: 10,
		Tables:   testTables(),
		Timing:   testTiming,
	}
}

// gridFromHealth Сетка по матрице прочности, стоимость блока = его прочность
func gridFromHealth(health [][]int) model.Grid {
	g := make(model.Grid, len(health))
	for r := range health {
		g[r] = make([]model.Block, len(health[r]))
		for c, h := range health[r] {
			g[r][c] = model.Block{
				ID:            "b",
				Type:          model.BlockStone,
				MaxHealth:     h,
				CurrentHealth: h,
				Value:         decimal.NewFromInt(int64(h)),
				IsDestroyed:   h == 0,
			}
		}
	}
	return g
}

func healths(g model.Grid) [][]int {
	out := make([][]int, len(g))
	for r := range g {
		out[r] = make([]int, len(g[r]))
		for c := range g[r] {
			out[r][c] = g[r][c].CurrentHealth
		}
	}
	return out
}

func tool(tt model.ToolType, uses, damage int) *model.Tool {
	return &model.Tool{ID: string(tt), Type: tt, Uses: uses, DamagePerHit: damage}
}

func quietLogger() (*logrus.Logger, *test.Hook) {
	l, hook := test.NewNullLogger()
	l.SetLevel(logrus.DebugLevel)
	return l, hook
}

// replay Применить события плана по порядку Seq
func replay(grid model.Grid, events []model.SpinEvent) (model.Grid, decimal.Decimal) {
	money := decimal.Zero
	for _, ev := range events {
		var m decimal.Decimal
		grid, m = ApplyEvent(grid, ev)
		money = money.Add(m)
	}
	return grid, money
}
