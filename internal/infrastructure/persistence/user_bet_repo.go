package persistence

import (
	"context"

	"github.com/jmoiron/sqlx"

	"valuebets/internal/domain"
	"valuebets/internal/domain/entity"
	"valuebets/pkg/errcodes"
)

type UserBetRepository struct {
	db *sqlx.DB
}

func NewUserBetRepository(db *sqlx.DB) *UserBetRepository {
	return &UserBetRepository{db: db}
}

func (r *UserBetRepository) Enabled() bool {
	return true
}

func (r *UserBetRepository) AddUserBet(ctx context.Context, bet entity.UserBet) error {
	query := `
		INSERT INTO user_bets (
			user_id, username, bet_key, event_id, sport, league, match,
			bookmaker, pick, odds, strategy, stake_units, placed_at
		) VALUES (
			:user_id, :username, :bet_key, :event_id, :sport, :league, :match,
			:bookmaker, :pick, :odds, :strategy, :stake_units, :placed_at
		)`

	if _, err := r.db.NamedExecContext(ctx, query, fromUserBet(bet)); err != nil {
		return domain.WrapError(err, errcodes.StorageUnavailable, "failed to save user bet")
	}

	return nil
}

func (r *UserBetRepository) ListUserBets(ctx context.Context, userID int64) ([]entity.UserBet, error) {
	query := `
		SELECT user_id, COALESCE(username, '') AS username, COALESCE(bet_key, '') AS bet_key,
			COALESCE(event_id, '') AS event_id, COALESCE(sport, '') AS sport,
			COALESCE(league, '') AS league, COALESCE(match, '') AS match,
			COALESCE(bookmaker, '') AS bookmaker, COALESCE(pick, '') AS pick,
			COALESCE(odds, 0)::float8 AS odds, COALESCE(strategy, '') AS strategy,
			COALESCE(stake_units, 0)::float8 AS stake_units, placed_at
		FROM user_bets
		WHERE user_id = $1
		ORDER BY placed_at`

	var schemas []userBetSchema
	if err := r.db.SelectContext(ctx, &schemas, query, userID); err != nil {
		return nil, domain.WrapError(err, errcodes.StorageUnavailable, "failed to list user bets")
	}

	bets := make([]entity.UserBet, 0, len(schemas))
	for _, s := range schemas {
		bets = append(bets, s.toDomain())
	}

	return bets, nil
}
