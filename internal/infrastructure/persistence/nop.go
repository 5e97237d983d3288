package persistence

import (
	"context"

	"valuebets/internal/domain/entity"
	"valuebets/internal/domain/value"
)

// Nop используется, когда PG_DSN не задан: ничего не пишет, читает пустоту.
type Nop struct{}

func (Nop) Enabled() bool { return false }

func (Nop) SaveBet(context.Context, entity.BetRow) error { return nil }

func (Nop) ListBetTotals(context.Context, *value.Category) ([]entity.BetTotals, error) {
	return nil, nil
}

func (Nop) AddUserBet(context.Context, entity.UserBet) error { return nil }

func (Nop) ListUserBets(context.Context, int64) ([]entity.UserBet, error) { return nil, nil }
