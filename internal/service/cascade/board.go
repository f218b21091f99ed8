package cascade

import (
	"maps"
	"mining_backend/internal/config"
	"mining_backend/internal/model"
	"mining_backend/internal/service/mining"
	"slices"

	"github.com/shopspring/decimal"
)

// Пустая ячейка после удаления выигравших символов
const emptyCell = ""

type board [][]string

func newBoard(rows, cols int) board {
	b := make(board, rows)
	for r := range b {
		b[r] = make([]string, cols)
	}
	return b
}

func (b board) clone() [][]string {
	out := make([][]string, len(b))
	for r := range b {
		out[r] = slices.Clone(b[r])
	}
	return out
}

// game Правила одного спина поверх конфига
type game struct {
	cfg     config.CascadeConfig
	symbols map[string]config.CascadeSymbol
	scatter string
	rng     mining.Rand
}

func newGame(cfg config.CascadeConfig, rng mining.Rand) *game {
	return &game{
		cfg:     cfg,
		symbols: cfg.Symbols(),
		scatter: cfg.ScatterSymbol(),
		rng:     rng,
	}
}

// fill Начальное заполнение. Символ, выпавший max_per_symbol раз, и scatter,
// выпавший max_scatters раз, больше не участвуют в розыгрыше.
func (g *game) fill() (board, error) {
	b := newBoard(g.cfg.Rows(), g.cfg.Cols())
	counts := make(map[string]int, len(g.symbols))

	for r := range b {
		for c := range b[r] {
			weights := make(map[string]float64, len(g.symbols))
			for name, s := range g.symbols {
				limit := g.cfg.MaxPerSymbol()
				if name == g.scatter {
					limit = g.cfg.MaxScatters()
				}
				if counts[name] < limit {
					weights[name] = s.Weight
				}
			}

			sym, err := mining.PickWeighted(g.rng, weights)
			if err != nil {
				// Все обычные символы исчерпаны, лимит снимается
				sym, err = mining.PickWeighted(g.rng, g.regularWeights())
				if err != nil {
					return nil, err
				}
			}
			b[r][c] = sym
			counts[sym]++
		}
	}

	return b, nil
}

func (g *game) regularWeights() map[string]float64 {
	w := make(map[string]float64, len(g.symbols))
	for name, s := range g.symbols {
		if name != g.scatter {
			w[name] = s.Weight
		}
	}
	return w
}

func (g *game) allWeights() map[string]float64 {
	w := make(map[string]float64, len(g.symbols))
	for name, s := range g.symbols {
		w[name] = s.Weight
	}
	return w
}

// wins Символы, которых на поле не меньше min_match, в порядке имён
func (g *game) wins(b board, bet decimal.Decimal) []model.SymbolWin {
	cells := make(map[string][]model.Position)
	for r := range b {
		for c, sym := range b[r] {
			if sym == emptyCell || sym == g.scatter {
				continue
			}
			cells[sym] = append(cells[sym], model.Position{Row: r, Col: c})
		}
	}

	scale := bet.Div(g.cfg.BaseBetUnit())
	var out []model.SymbolWin
	for _, sym := range slices.Sorted(maps.Keys(cells)) {
		pos := cells[sym]
		if len(pos) < g.cfg.MinMatch() {
			continue
		}
		out = append(out, model.SymbolWin{
			Symbol: sym,
			Count:  len(pos),
			Cells:  pos,
			Payout: g.symbols[sym].Pay.Mul(scale).Round(2),
		})
	}
	return out
}

// remove Очистить выигравшие ячейки
func remove(b board, wins []model.SymbolWin) {
	for _, w := range wins {
		for _, p := range w.Cells {
			b[p.Row][p.Col] = emptyCell
		}
	}
}

// collapse Уцелевшие символы падают вниз, пустоты остаются сверху
func collapse(b board) {
	if len(b) == 0 {
		return
	}
	for c := range b[0] {
		write := len(b) - 1
		for r := len(b) - 1; r >= 0; r-- {
			if b[r][c] == emptyCell {
				continue
			}
			b[write][c] = b[r][c]
			if write != r {
				b[r][c] = emptyCell
			}
			write--
		}
	}
}

// refill Заполнить пустоты сверху, без ограничений на количество
func (g *game) refill(b board) ([]model.NewSymbol, error) {
	weights := g.allWeights()
	var added []model.NewSymbol
	for r := range b {
		for c := range b[r] {
			if b[r][c] != emptyCell {
				continue
			}
			sym, err := mining.PickWeighted(g.rng, weights)
			if err != nil {
				return nil, err
			}
			b[r][c] = sym
			added = append(added, model.NewSymbol{Position: model.Position{Row: r, Col: c}, Symbol: sym})
		}
	}
	return added, nil
}

func (g *game) countScatters(b board) int {
	n := 0
	for r := range b {
		for _, sym := range b[r] {
			if sym == g.scatter {
				n++
			}
		}
	}
	return n
}

// outcome Результат розыгрыша без денег игрока
type outcome struct {
	initial  [][]string
	final    [][]string
	steps    []model.CascadeStep
	payout   decimal.Decimal
	scatters int
}

// play Полный спин: заполнение и каскады до отсутствия выигрышей или max_cascades
func (g *game) play(bet decimal.Decimal) (*outcome, error) {
	b, err := g.fill()
	if err != nil {
		return nil, err
	}

	out := &outcome{initial: b.clone(), steps: []model.CascadeStep{}, payout: decimal.Zero}

	for i := 0; i < g.cfg.MaxCascades(); i++ {
		wins := g.wins(b, bet)
		if len(wins) == 0 {
			break
		}

		step := model.CascadeStep{CascadeIndex: i, Wins: wins, StepPayout: decimal.Zero}
		for _, w := range wins {
			step.StepPayout = step.StepPayout.Add(w.Payout)
		}

		remove(b, wins)
		collapse(b)
		step.NewSymbols, err = g.refill(b)
		if err != nil {
			return nil, err
		}

		out.steps = append(out.steps, step)
		out.payout = out.payout.Add(step.StepPayout)
	}

	maxWin := bet.Mul(decimal.NewFromInt(g.cfg.MaxWinXBet()))
	if out.payout.GreaterThan(maxWin) {
		out.payout = maxWin
	}

	out.final = b.clone()
	out.scatters = g.countScatters(b)
	return out, nil
}
