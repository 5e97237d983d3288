package entity

import (
	"time"

	"valuebets/internal/domain/value"
)

// BetRow разосланная рекомендация в журнале. Только добавляется.
type BetRow struct {
	Recommendation
	Category  value.Category
	CreatedAt time.Time
}

// BetTotals суммы трёх ставок и трёх ожидаемых прибылей одной строки.
type BetTotals struct {
	Profit float64 `db:"exp_profit"`
	Stake  float64 `db:"stake"`
}

// UserBet пользователь отметил, что поставил по карточке.
type UserBet struct {
	UserID     int64
	Username   string
	BetKey     string
	EventID    string
	Sport      string
	League     string
	Match      string
	Bookmaker  string
	Pick       string
	Price      float64
	Strategy   value.Strategy
	StakeUnits float64
	PlacedAt   time.Time
}

type UserStats struct {
	Bets             int
	Staked           float64
	TopStrategy      value.Strategy
	TopStrategyShare float64
}
