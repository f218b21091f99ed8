package converter

import (
	"mining_backend/internal/api/dto/cascade"
	"mining_backend/internal/model"
)

func ToCascadeSpin(req cascade.SpinRequest) model.CascadeSpin {
	return model.CascadeSpin{
		Bet: req.Bet,
	}
}

func ToCascadeSpinResponse(res model.CascadeSpinResult) cascade.SpinResponse {
	steps := make([]cascade.CascadeStep, 0, len(res.Cascades))
	for _, st := range res.Cascades {
		wins := make([]cascade.SymbolWin, 0, len(st.Wins))
		for _, w := range st.Wins {
			cells := make([]cascade.Position, 0, len(w.Cells))
			for _, p := range w.Cells {
				cells = append(cells, cascade.Position{Row: p.Row, Col: p.Col})
			}
			wins = append(wins, cascade.SymbolWin{
				Symbol: w.Symbol,
				Count:  w.Count,
				Cells:  cells,
				Payout: w.Payout.StringFixed(2),
			})
		}

		added := make([]cascade.NewSymbol, 0, len(st.NewSymbols))
		for _, ns := range st.NewSymbols {
			added = append(added, cascade.NewSymbol{Row: ns.Row, Col: ns.Col, Symbol: ns.Symbol})
		}

		steps = append(steps, cascade.CascadeStep{
			Index:      st.CascadeIndex,
			Wins:       wins,
			NewSymbols: added,
			Payout:     st.StepPayout.StringFixed(2),
		})
	}

	return cascade.SpinResponse{
		InitialBoard: res.InitialBoard,
		Board:        res.Board,
		Cascades:     steps,
		TotalPayout:  res.TotalPayout.StringFixed(2),
		Balance:      res.Balance.StringFixed(2),
		ScatterCount: res.ScatterCount,
		BonusAwarded: res.BonusAwarded,
		BonusSpins:   res.BonusSpins,
	}
}
