package converter

import (
	"mining_backend/internal/api/dto/mining"
	"mining_backend/internal/model"
	"time"
)

func ToRoundResponse(s model.RoundSnapshot) mining.Round {
	grid := make([][]mining.Block, len(s.Grid))
	for r, row := range s.Grid {
		grid[r] = make([]mining.Block, len(row))
		for c, b := range row {
			grid[r][c] = mining.Block{
				ID:        b.ID,
				Type:      string(b.Type),
				MaxHealth: b.MaxHealth,
				Health:    b.CurrentHealth,
				Value:     b.Value.StringFixed(2),
				Destroyed: b.IsDestroyed,
			}
		}
	}

	return mining.Round{
		RoundID:        s.RoundID,
		State:          string(s.State),
		Bet:            s.BetAmount.StringFixed(2),
		SpinsTotal:     s.SpinsTotal,
		SpinsRemaining: s.SpinsRemaining,
		AccumulatedWin: s.AccumulatedWin.StringFixed(2),
		TotalWin:       s.TotalWin.StringFixed(2),
		Grid:           grid,
		Multipliers:    s.Multipliers,
		ClearedColumns: s.ClearedColumns,
		Busy:           s.Busy,
	}
}

func ToMiningSpinResponse(res model.MiningSpinResult) mining.SpinResponse {
	out := mining.SpinResponse{
		Accepted: res.Accepted,
		Round:    ToRoundResponse(res.Round),
	}
	if res.Plan != nil {
		plan := toPlan(*res.Plan)
		out.Plan = &plan
	}
	return out
}

func toPlan(p model.SpinPlan) mining.Plan {
	slots := make([][]mining.ToolSlot, len(p.Slots))
	for r, row := range p.Slots {
		slots[r] = make([]mining.ToolSlot, len(row))
		for c, slot := range row {
			slots[r][c] = mining.ToolSlot{
				PlannedPath:  slot.PlannedPath,
				StartDelayMs: slot.StartDelay.Milliseconds(),
			}
			if slot.Tool != nil {
				slots[r][c].Tool = &mining.Tool{
					ID:     slot.Tool.ID,
					Type:   string(slot.Tool.Type),
					Uses:   slot.Tool.Uses,
					Damage: slot.Tool.DamagePerHit,
				}
			}
		}
	}

	events := make([]mining.Event, 0, len(p.Events))
	for _, ev := range p.Events {
		events = append(events, toEvent(ev))
	}

	return mining.Plan{
		Slots:            slots,
		Events:           events,
		NormalPhaseEndMs: p.NormalPhaseEnd.Milliseconds(),
		DurationMs:       p.Duration.Milliseconds(),
		MoneyEarned:      p.MoneyEarned.StringFixed(2),
	}
}

func toEvent(ev model.SpinEvent) mining.Event {
	cells := make([]mining.Position, 0, len(ev.Cells))
	for _, c := range ev.Cells {
		cells = append(cells, mining.Position{Row: c.Row, Col: c.Col})
	}
	destroyed := make([]mining.DestroyedBlock, 0, len(ev.Destroyed))
	for _, d := range ev.Destroyed {
		destroyed = append(destroyed, mining.DestroyedBlock{
			Row:   d.Row,
			Col:   d.Col,
			Type:  string(d.Type),
			Value: d.Value.StringFixed(2),
		})
	}

	return mining.Event{
		Seq:       ev.Seq,
		AtMs:      ev.At.Milliseconds(),
		Kind:      string(ev.Kind),
		ToolRow:   ev.ToolRow,
		Col:       ev.Col,
		ToolType:  string(ev.ToolType),
		Cells:     cells,
		Damage:    ev.Damage,
		Destroyed: destroyed,
		Money:     ev.Money.StringFixed(2),
	}
}

func ToHistory(rounds []model.RoundFinish) []mining.HistoryItem {
	out := make([]mining.HistoryItem, 0, len(rounds))
	for _, f := range rounds {
		out = append(out, mining.HistoryItem{
			RoundID:        f.RoundID,
			Bet:            f.BetAmount.StringFixed(2),
			SpinsTotal:     f.SpinsTotal,
			SpinsUsed:      f.SpinsUsed,
			AccumulatedWin: f.AccumulatedWin.StringFixed(2),
			MultiplierSum:  f.MultiplierSum,
			TotalWin:       f.TotalWin.StringFixed(2),
			ClearedColumns: f.ClearedColumns,
			Reason:         f.Reason,
			FinishedAt:     f.FinishedAt.UTC().Format(time.RFC3339),
		})
	}
	return out
}
