package userbet

import (
	"context"
	"fmt"
	"time"

	"valuebets/internal/domain"
	"valuebets/internal/domain/entity"
	"valuebets/internal/domain/value"
	"valuebets/pkg/errcodes"
)

type Repository interface {
	Enabled() bool
	AddUserBet(ctx context.Context, bet entity.UserBet) error
	ListUserBets(ctx context.Context, userID int64) ([]entity.UserBet, error)
}

var (
	ErrStorageDisabled = domain.NewError(errcodes.StorageUnavailable, "database not configured")
	ErrBetExpired      = domain.NewError(errcodes.BetNotFound, "bet is no longer available")
	ErrUnknownStrategy = domain.NewError(errcodes.InvalidStrategy, "unknown strategy")
)

// Service журнал ставок, отмеченных пользователями кнопками под карточками.
type Service struct {
	repo    Repository
	recent  *Recent
	timeout time.Duration
	now     func() time.Time
}

func NewService(repo Repository, recent *Recent) *Service {
	return &Service{repo: repo, recent: recent, timeout: 10 * time.Second, now: time.Now}
}

// WithTimeout дедлайн на каждый запрос к базе.
func (s *Service) WithTimeout(timeout time.Duration) *Service {
	s.timeout = timeout
	return s
}

func (s *Service) Enabled() bool {
	return s.repo.Enabled()
}

func (s *Service) Log(ctx context.Context, userID int64, username, ref, rawStrategy string) (entity.UserBet, error) {
	if !s.repo.Enabled() {
		return entity.UserBet{}, ErrStorageDisabled
	}

	strategy, ok := value.ParseStrategy(rawStrategy)
	if !ok {
		return entity.UserBet{}, ErrUnknownStrategy
	}

	rec, ok := s.recent.Lookup(ref)
	if !ok {
		return entity.UserBet{}, ErrBetExpired
	}

	bet := entity.UserBet{
		UserID:     userID,
		Username:   username,
		BetKey:     rec.Identity(),
		EventID:    rec.EventID,
		Sport:      rec.Sport,
		League:     rec.League,
		Match:      rec.Match,
		Bookmaker:  rec.Bookmaker,
		Pick:       rec.Pick,
		Price:      rec.Price,
		Strategy:   strategy,
		StakeUnits: rec.Stakes.For(strategy),
		PlacedAt:   s.now().UTC(),
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.repo.AddUserBet(ctx, bet); err != nil {
		return entity.UserBet{}, fmt.Errorf("repo.AddUserBet: %w", err)
	}

	return bet, nil
}

func (s *Service) Stats(ctx context.Context, userID int64) (entity.UserStats, error) {
	if !s.repo.Enabled() {
		return entity.UserStats{}, ErrStorageDisabled
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	bets, err := s.repo.ListUserBets(ctx, userID)
	if err != nil {
		return entity.UserStats{}, fmt.Errorf("repo.ListUserBets: %w", err)
	}

	return Summarize(bets), nil
}

// Summarize число ставок, сумма единиц и доля самой частой стратегии.
func Summarize(bets []entity.UserBet) entity.UserStats {
	stats := entity.UserStats{Bets: len(bets)}
	if len(bets) == 0 {
		return stats
	}

	counts := make(map[value.Strategy]int, len(value.Strategies))
	for _, b := range bets {
		stats.Staked += b.StakeUnits
		counts[b.Strategy]++
	}

	// обходим в фиксированном порядке, чтобы ничья решалась одинаково
	top := 0
	for _, s := range value.Strategies {
		if counts[s] > top {
			top = counts[s]
			stats.TopStrategy = s
		}
	}

	stats.TopStrategyShare = float64(top) / float64(len(bets))

	return stats
}
