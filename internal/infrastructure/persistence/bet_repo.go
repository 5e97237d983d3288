package persistence

import (
	"context"

	"github.com/jmoiron/sqlx"

	"valuebets/internal/domain"
	"valuebets/internal/domain/entity"
	"valuebets/internal/domain/value"
	"valuebets/pkg/errcodes"
)

// BetRepository журнал разосланных рекомендаций. Только INSERT и чтение.
type BetRepository struct {
	db *sqlx.DB
}

func NewBetRepository(db *sqlx.DB) *BetRepository {
	return &BetRepository{db: db}
}

func (r *BetRepository) Enabled() bool {
	return true
}

// SaveBet добавляет строку в bets.
func (r *BetRepository) SaveBet(ctx context.Context, row entity.BetRow) error {
	query := `
		INSERT INTO bets (
			event_id, match, bookmaker, market, pick, odds, consensus, implied, edge,
			cons_stake_units, smart_stake_units, agg_stake_units,
			cons_exp_profit, smart_exp_profit, agg_exp_profit,
			bet_time, category, sport, league, created_at
		) VALUES (
			:event_id, :match, :bookmaker, :market, :pick, :odds, :consensus, :implied, :edge,
			:cons_stake_units, :smart_stake_units, :agg_stake_units,
			:cons_exp_profit, :smart_exp_profit, :agg_exp_profit,
			:bet_time, :category, :sport, :league, :created_at
		)`

	if _, err := r.db.NamedExecContext(ctx, query, fromBetRow(row)); err != nil {
		return domain.WrapError(err, errcodes.StorageUnavailable, "failed to save bet")
	}

	return nil
}

// ListBetTotals суммы ставок и ожидаемой прибыли по каждой строке.
func (r *BetRepository) ListBetTotals(ctx context.Context, category *value.Category) ([]entity.BetTotals, error) {
	query := `
		SELECT
			COALESCE(cons_exp_profit + smart_exp_profit + agg_exp_profit, 0)::float8 AS exp_profit,
			COALESCE(cons_stake_units + smart_stake_units + agg_stake_units, 0)::float8 AS stake
		FROM bets`

	var args []any
	if category != nil {
		query += ` WHERE category = $1`
		args = append(args, category.String())
	}

	var rows []entity.BetTotals
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, domain.WrapError(err, errcodes.StorageUnavailable, "failed to list bets")
	}

	return rows, nil
}
