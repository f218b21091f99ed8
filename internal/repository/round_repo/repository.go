package round_repo

import (
	"context"
	"encoding/json"
	"mining_backend/internal/model"
	"mining_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table             = "mining_rounds"
	colRoundID        = "round_id"
	colUserID         = "user_id"
	colBet            = "bet"
	colSpinsTotal     = "spins_total"
	colSpinsUsed      = "spins_used"
	colAccumulatedWin = "accumulated_win"
	colMultiplierSum  = "multiplier_sum"
	colTotalWin       = "total_win"
	colClearedColumns = "cleared_columns"
	colReason         = "reason"
	colFinishedAt     = "finished_at"
)

var columns = []string{
	colRoundID, colUserID, colBet, colSpinsTotal, colSpinsUsed, colAccumulatedWin,
	colMultiplierSum, colTotalWin, colClearedColumns, colReason, colFinishedAt,
}

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewRoundRepository(dbc *pgxpool.Pool) repository.RoundRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// SaveRound - сохраняет итог раунда. Повторная запись того же раунда игнорируется
func (r *repo) SaveRound(ctx context.Context, round *model.RoundFinish) error {
	cleared, err := json.Marshal(round.ClearedColumns)
	if err != nil {
		return err
	}

	query := sq.Insert(table).
		Columns(columns...).
		Values(
			round.RoundID,
			round.UserID,
			round.BetAmount.Round(2),
			round.SpinsTotal,
			round.SpinsUsed,
			round.AccumulatedWin.Round(2),
			round.MultiplierSum,
			round.TotalWin.Round(2),
			cleared,
			round.Reason,
			round.FinishedAt,
		).
		Suffix("ON CONFLICT (" + colRoundID + ") DO NOTHING").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// ListRounds - последние раунды игрока, новые первыми
func (r *repo) ListRounds(ctx context.Context, userID int, limit uint64) ([]model.RoundFinish, error) {
	query := sq.Select(columns...).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		OrderBy(colFinishedAt + " DESC").
		Limit(limit).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rounds := []model.RoundFinish{}
	for rows.Next() {
		var (
			f       model.RoundFinish
			cleared []byte
		)
		err = rows.Scan(
			&f.RoundID,
			&f.UserID,
			&f.BetAmount,
			&f.SpinsTotal,
			&f.SpinsUsed,
			&f.AccumulatedWin,
			&f.MultiplierSum,
			&f.TotalWin,
			&cleared,
			&f.Reason,
			&f.FinishedAt,
		)
		if err != nil {
			return nil, err
		}
		if err = json.Unmarshal(cleared, &f.ClearedColumns); err != nil {
			return nil, err
		}
		rounds = append(rounds, f)
	}

	return rounds, rows.Err()
}
