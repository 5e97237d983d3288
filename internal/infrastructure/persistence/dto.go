package persistence

import (
	"time"

	"valuebets/internal/domain/entity"
	"valuebets/internal/domain/value"
)

// betSchema строка таблицы bets.
type betSchema struct {
	EventID         string    `db:"event_id"`
	Match           string    `db:"match"`
	Bookmaker       string    `db:"bookmaker"`
	Market          string    `db:"market"`
	Pick            string    `db:"pick"`
	Odds            float64   `db:"odds"`
	Consensus       float64   `db:"consensus"`
	Implied         float64   `db:"implied"`
	Edge            float64   `db:"edge"`
	ConsStakeUnits  float64   `db:"cons_stake_units"`
	SmartStakeUnits float64   `db:"smart_stake_units"`
	AggStakeUnits   float64   `db:"agg_stake_units"`
	ConsExpProfit   float64   `db:"cons_exp_profit"`
	SmartExpProfit  float64   `db:"smart_exp_profit"`
	AggExpProfit    float64   `db:"agg_exp_profit"`
	BetTime         time.Time `db:"bet_time"`
	Category        string    `db:"category"`
	Sport           string    `db:"sport"`
	League          string    `db:"league"`
	CreatedAt       time.Time `db:"created_at"`
}

func fromBetRow(row entity.BetRow) betSchema {
	r := row.Recommendation

	return betSchema{
		EventID:         r.EventID,
		Match:           r.Match,
		Bookmaker:       r.Bookmaker,
		Market:          r.Market,
		Pick:            r.Pick,
		Odds:            r.Price,
		Consensus:       r.ConsensusPct,
		Implied:         r.ImpliedPct,
		Edge:            r.EdgePct,
		ConsStakeUnits:  r.Stakes.Conservative,
		SmartStakeUnits: r.Stakes.Smart,
		AggStakeUnits:   r.Stakes.Aggressive,
		ConsExpProfit:   r.ExpProfit.Conservative,
		SmartExpProfit:  r.ExpProfit.Smart,
		AggExpProfit:    r.ExpProfit.Aggressive,
		BetTime:         r.StartTime,
		Category:        row.Category.String(),
		Sport:           r.Sport,
		League:          r.League,
		CreatedAt:       row.CreatedAt,
	}
}

// userBetSchema строка таблицы user_bets.
type userBetSchema struct {
	UserID     int64     `db:"user_id"`
	Username   string    `db:"username"`
	BetKey     string    `db:"bet_key"`
	EventID    string    `db:"event_id"`
	Sport      string    `db:"sport"`
	League     string    `db:"league"`
	Match      string    `db:"match"`
	Bookmaker  string    `db:"bookmaker"`
	Pick       string    `db:"pick"`
	Odds       float64   `db:"odds"`
	Strategy   string    `db:"strategy"`
	StakeUnits float64   `db:"stake_units"`
	PlacedAt   time.Time `db:"placed_at"`
}

func fromUserBet(b entity.UserBet) userBetSchema {
	return userBetSchema{
		UserID:     b.UserID,
		Username:   b.Username,
		BetKey:     b.BetKey,
		EventID:    b.EventID,
		Sport:      b.Sport,
		League:     b.League,
		Match:      b.Match,
		Bookmaker:  b.Bookmaker,
		Pick:       b.Pick,
		Odds:       b.Price,
		Strategy:   b.Strategy.String(),
		StakeUnits: b.StakeUnits,
		PlacedAt:   b.PlacedAt,
	}
}

func (s userBetSchema) toDomain() entity.UserBet {
	return entity.UserBet{
		UserID:     s.UserID,
		Username:   s.Username,
		BetKey:     s.BetKey,
		EventID:    s.EventID,
		Sport:      s.Sport,
		League:     s.League,
		Match:      s.Match,
		Bookmaker:  s.Bookmaker,
		Pick:       s.Pick,
		Price:      s.Odds,
		Strategy:   value.Strategy(s.Strategy),
		StakeUnits: s.StakeUnits,
		PlacedAt:   s.PlacedAt,
	}
}
