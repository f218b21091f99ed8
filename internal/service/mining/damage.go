package mining

import (
	"mining_backend/internal/model"

	"github.com/shopspring/decimal"
)

// DamageResult Итог действия инструмента: новая сетка, деньги, задетые и разрушенные ячейки
type DamageResult struct {
	Grid      model.Grid
	Money     decimal.Decimal
	Cells     []model.Position
	Destroyed []model.DestroyedBlock
}

// HitResult Итог одного удара по ячейке
type HitResult struct {
	Grid      model.Grid
	Value     decimal.Decimal
	Destroyed *model.DestroyedBlock
}

// ApplyToolDamage Инструмент бьёт колонку сверху вниз totalUses раз.
// Входная сетка не меняется.
func ApplyToolDamage(grid model.Grid, col, damagePerHit, totalUses int) DamageResult {
	res := DamageResult{
		Grid:  grid.Clone(),
		Money: decimal.Zero,
	}

	for i := 0; i < totalUses; i++ {
		top := res.Grid.TopRow(col)
		if top < 0 {
			break
		}
		res.Cells = append(res.Cells, model.Position{Row: top, Col: col})
		if d, ok := hitCell(res.Grid, top, col, damagePerHit); ok {
			res.Money = res.Money.Add(d.Value)
			res.Destroyed = append(res.Destroyed, d)
		}
	}

	return res
}

// ApplyTntDamage Взрыв в колонке col. Соседние колонки получают урон,
// только если их верхний блок не дальше одной строки от точки взрыва.
func ApplyTntDamage(grid model.Grid, col, damage int) DamageResult {
	res := DamageResult{
		Grid:  grid.Clone(),
		Money: decimal.Zero,
	}

	hitRow := grid.TopRow(col)
	if hitRow < 0 {
		return res
	}

	for c := col - 1; c <= col+1; c++ {
		r := grid.TopRow(c)
		if r < 0 || abs(r-hitRow) > 1 {
			continue
		}
		res.Cells = append(res.Cells, model.Position{Row: r, Col: c})
		if d, ok := hitCell(res.Grid, r, c, damage); ok {
			res.Money = res.Money.Add(d.Value)
			res.Destroyed = append(res.Destroyed, d)
		}
	}

	return res
}

// ApplySingleHit Один удар по конкретной ячейке
func ApplySingleHit(grid model.Grid, row, col, damage int) HitResult {
	res := HitResult{
		Grid:  grid.Clone(),
		Value: decimal.Zero,
	}
	if !res.Grid.InBounds(row, col) {
		return res
	}

	if d, ok := hitCell(res.Grid, row, col, damage); ok {
		res.Value = d.Value
		res.Destroyed = &d
	}

	return res
}

// hitCell Мутирует g. true, если блок разрушен именно этим ударом.
func hitCell(g model.Grid, row, col, damage int) (model.DestroyedBlock, bool) {
	b := &g[row][col]
	if b.IsDestroyed || damage <= 0 {
		return model.DestroyedBlock{}, false
	}

	b.CurrentHealth = max(b.CurrentHealth-damage, 0)
	if b.CurrentHealth > 0 {
		return model.DestroyedBlock{}, false
	}

	b.IsDestroyed = true
	return model.DestroyedBlock{Row: row, Col: col, Type: b.Type, Value: b.Value}, true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
