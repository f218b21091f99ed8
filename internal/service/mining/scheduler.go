package mining

import (
	"cmp"
	"mining_backend/internal/config"
	"mining_backend/internal/model"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// blastReach Взрыв задевает col-1..col+1, зоны двух взрывов пересекаются при |dcol| <= 2
const blastReach = 2

type explosionStart struct {
	col   int
	start time.Duration
}

func latestOverlapping(blasts []explosionStart, col int) time.Duration {
	var latest time.Duration
	for _, b := range blasts {
		if abs(b.col-col) <= blastReach {
			latest = max(latest, b.start)
		}
	}
	return latest
}

type explosiveSlot struct {
	row int
	col int
}

// PlanSpin Расписание одного спина.
//
// Фаза 1: обычные инструменты, в каждой колонке от нижнего ряда к верхнему,
// каждый стартует с таймера своей колонки.
// Фаза 2: TNT от нижнего ряда к верхнему, не раньше конца фазы 1 на всей доске
// и не раньше предыдущего взрыва в пределах двух колонок.
//
// События отсортированы по времени; применение их по порядку Seq даёт plan.Grid.
// Входные grid и slots не меняются.
func PlanSpin(grid model.Grid, slots [][]model.ToolSlot, timing config.MiningTiming) *model.SpinPlan {
	cols := grid.Cols()
	planned := cloneSlots(slots)
	sim := grid.Clone()
	colTimer := make([]time.Duration, cols)
	money := decimal.Zero

	var (
		events     []model.SpinEvent
		explosives []explosiveSlot
	)

	// Фаза 1
	for c := 0; c < cols; c++ {
		for r := len(planned) - 1; r >= 0; r-- {
			if c >= len(planned[r]) || planned[r][c].Tool == nil {
				continue
			}
			slot := &planned[r][c]
			tool := slot.Tool
			if tool.Type.IsExplosive() {
				explosives = append(explosives, explosiveSlot{row: r, col: c})
				continue
			}

			slot.PlannedPath = SimulatePath(sim, c, tool)
			slot.StartDelay = colTimer[c]

			if len(slot.PlannedPath) == 0 {
				events = append(events, fizzleEvent(r, c, tool, colTimer[c]+timing.EmptyPath))
				colTimer[c] += timing.EmptyPath + timing.InterToolGap
				continue
			}

			for i, row := range slot.PlannedPath {
				hit := ApplySingleHit(sim, row, c, tool.DamagePerHit)
				sim = hit.Grid
				money = money.Add(hit.Value)

				ev := model.SpinEvent{
					At:       colTimer[c] + time.Duration(i+1)*timing.Hit,
					Kind:     model.EventHit,
					ToolRow:  r,
					Col:      c,
					ToolType: tool.Type,
					Cells:    []model.Position{{Row: row, Col: c}},
					Damage:   tool.DamagePerHit,
					Money:    hit.Value,
				}
				if hit.Destroyed != nil {
					ev.Destroyed = []model.DestroyedBlock{*hit.Destroyed}
				}
				events = append(events, ev)
			}
			colTimer[c] += time.Duration(len(slot.PlannedPath))*timing.Hit + timing.InterToolGap
		}
	}

	normalEnd := maxDuration(colTimer)

	// Фаза 2
	slices.SortStableFunc(explosives, func(a, b explosiveSlot) int {
		return cmp.Compare(b.row, a.row)
	})

	var blasts []explosionStart
	for _, x := range explosives {
		slot := &planned[x.row][x.col]
		tool := slot.Tool

		// Взрыв не раньше предыдущих взрывов, чьи зоны пересекаются с его зоной
		start := max(colTimer[x.col], normalEnd, latestOverlapping(blasts, x.col))

		slot.PlannedPath = SimulatePath(sim, x.col, tool)
		slot.StartDelay = start

		if len(slot.PlannedPath) == 0 {
			events = append(events, fizzleEvent(x.row, x.col, tool, start+timing.EmptyPath))
			colTimer[x.col] = start + timing.EmptyPath + timing.PostExplosionGap
			continue
		}

		res := ApplyTntDamage(sim, x.col, tool.DamagePerHit)
		sim = res.Grid
		money = money.Add(res.Money)
		blasts = append(blasts, explosionStart{col: x.col, start: start})

		events = append(events, model.SpinEvent{
			At:        start + timing.Explosion,
			Kind:      model.EventExplosion,
			ToolRow:   x.row,
			Col:       x.col,
			ToolType:  tool.Type,
			Cells:     res.Cells,
			Damage:    tool.DamagePerHit,
			Destroyed: res.Destroyed,
			Money:     res.Money,
		})
		colTimer[x.col] = start + timing.Explosion + timing.PostExplosionGap
	}

	// Стабильная сортировка сохраняет порядок расчёта при равном времени
	slices.SortStableFunc(events, func(a, b model.SpinEvent) int {
		return cmp.Compare(a.At, b.At)
	})
	for i := range events {
		events[i].Seq = i + 1
	}

	return &model.SpinPlan{
		Slots:          planned,
		Events:         events,
		NormalPhaseEnd: normalEnd,
		Duration:       maxDuration(colTimer),
		Grid:           sim,
		MoneyEarned:    money,
	}
}

// ApplyEvent Применить событие расписания к сетке
func ApplyEvent(grid model.Grid, ev model.SpinEvent) (model.Grid, decimal.Decimal) {
	switch ev.Kind {
	case model.EventHit:
		if len(ev.Cells) == 0 {
			return grid, decimal.Zero
		}
		res := ApplySingleHit(grid, ev.Cells[0].Row, ev.Cells[0].Col, ev.Damage)
		return res.Grid, res.Value
	case model.EventExplosion:
		res := ApplyTntDamage(grid, ev.Col, ev.Damage)
		return res.Grid, res.Money
	default:
		return grid, decimal.Zero
	}
}

func fizzleEvent(row, col int, tool *model.Tool, at time.Duration) model.SpinEvent {
	return model.SpinEvent{
		At:       at,
		Kind:     model.EventFizzle,
		ToolRow:  row,
		Col:      col,
		ToolType: tool.Type,
		Money:    decimal.Zero,
	}
}

func cloneSlots(slots [][]model.ToolSlot) [][]model.ToolSlot {
	out := make([][]model.ToolSlot, len(slots))
	for r := range slots {
		out[r] = make([]model.ToolSlot, len(slots[r]))
		for c, s := range slots[r] {
			out[r][c] = model.ToolSlot{
				Tool:        s.Tool,
				PlannedPath: slices.Clone(s.PlannedPath),
				StartDelay:  s.StartDelay,
			}
		}
	}
	return out
}

func maxDuration(ds []time.Duration) time.Duration {
	var m time.Duration
	for _, d := range ds {
		m = max(m, d)
	}
	return m
}
