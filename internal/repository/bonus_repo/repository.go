package bonus_repo

import (
	"context"
	"errors"
	"mining_backend/internal/model"
	"mining_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table        = "bonus_awards"
	colUserID    = "user_id"
	colBet       = "bet"
	colSpins     = "spins"
	colCreatedAt = "created_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewBonusRepository(dbc *pgxpool.Pool) repository.BonusRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// SaveAward - сохраняет выигранный бонус.
// Если у игрока уже есть несыгранный бонус, он заменяется новым
func (r *repo) SaveAward(ctx context.Context, award *model.BonusAward) error {
	query := sq.Insert(table).
		Columns(colUserID, colBet, colSpins, colCreatedAt).
		Values(award.UserID, award.Bet.Round(2), award.Spins, award.CreatedAt).
		Suffix("ON CONFLICT (" + colUserID + ") DO UPDATE SET " +
			colBet + " = EXCLUDED." + colBet + ", " +
			colSpins + " = EXCLUDED." + colSpins + ", " +
			colCreatedAt + " = EXCLUDED." + colCreatedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// GetAward - несыгранный бонус игрока или repository.ErrNotFound
func (r *repo) GetAward(ctx context.Context, userID int) (*model.BonusAward, error) {
	query := sq.Select(colBet, colSpins, colCreatedAt).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	award := model.BonusAward{UserID: userID}
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&award.Bet, &award.Spins, &award.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &award, nil
}

// TakeAward - забирает бонус игрока: запись удаляется и возвращается
func (r *repo) TakeAward(ctx context.Context, userID int) (*model.BonusAward, error) {
	query := sq.Delete(table).
		Where(sq.Eq{colUserID: userID}).
		Suffix("RETURNING " + colBet + ", " + colSpins + ", " + colCreatedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	award := model.BonusAward{UserID: userID}
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&award.Bet, &award.Spins, &award.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &award, nil
}
