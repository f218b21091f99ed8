package mining

import "mining_backend/internal/model"

// SimulatePath Строки, по которым ударит инструмент. Работает на копии сетки.
func SimulatePath(grid model.Grid, col int, tool *model.Tool) []int {
	path := []int{}
	if tool == nil {
		return path
	}

	if tool.Type.IsExplosive() {
		if top := grid.TopRow(col); top >= 0 {
			path = append(path, top)
		}
		return path
	}

	sim := grid.Clone()
	for remaining := tool.Uses; remaining > 0; remaining-- {
		top := sim.TopRow(col)
		if top < 0 {
			break
		}
		path = append(path, top)
		hitCell(sim, top, col, tool.DamagePerHit)
	}

	return path
}
