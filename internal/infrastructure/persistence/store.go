package persistence

import "github.com/jmoiron/sqlx"

// Store журнал рекомендаций и журнал ставок пользователей в одной базе.
type Store struct {
	*BetRepository
	*UserBetRepository
}

func NewStore(db *sqlx.DB) Store {
	return Store{
		BetRepository:     NewBetRepository(db),
		UserBetRepository: NewUserBetRepository(db),
	}
}

func (Store) Enabled() bool {
	return true
}
