package userbet_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"valuebets/internal/domain/entity"
	"valuebets/internal/domain/service/userbet"
	"valuebets/internal/domain/value"
)

type repoStub struct {
	enabled bool
	bets    []entity.UserBet
}

func (r *repoStub) Enabled() bool { return r.enabled }

func (r *repoStub) AddUserBet(_ context.Context, bet entity.UserBet) error {
	r.bets = append(r.bets, bet)
	return nil
}

func (r *repoStub) ListUserBets(_ context.Context, userID int64) ([]entity.UserBet, error) {
	var out []entity.UserBet
	for _, b := range r.bets {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func testRecommendation() entity.Recommendation {
	return entity.Recommendation{
		EventID:   "e1",
		Match:     "Team A vs Team B",
		Bookmaker: "Sportsbet",
		Pick:      "Team A",
		Price:     2.5,
		StartTime: time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC),
		Stakes:    entity.Stakes{Conservative: 15, Smart: 17.33, Aggressive: 20.83},
	}
}

func TestLogAndStats(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	repo := &repoStub{enabled: true}
	recent := userbet.NewRecent(time.Hour)
	svc := userbet.NewService(repo, recent)

	rec := testRecommendation()
	recent.Remember(rec)

	bet, err := svc.Log(ctx, 7, "alice", rec.Ref(), "smart")
	rq.NoError(err)
	rq.Equal(17.33, bet.StakeUnits)
	rq.Equal(rec.Identity(), bet.BetKey)
	rq.Equal(value.StrategySmart, bet.Strategy)

	_, err = svc.Log(ctx, 7, "alice", rec.Ref(), "smart")
	rq.NoError(err)
	_, err = svc.Log(ctx, 7, "alice", rec.Ref(), "aggressive")
	rq.NoError(err)

	stats, err := svc.Stats(ctx, 7)
	rq.NoError(err)
	rq.Equal(3, stats.Bets)
	rq.InDelta(55.49, stats.Staked, 1e-9)
	rq.Equal(value.StrategySmart, stats.TopStrategy)
	rq.InDelta(2.0/3.0, stats.TopStrategyShare, 1e-9)

	stats, err = svc.Stats(ctx, 8)
	rq.NoError(err)
	rq.Equal(entity.UserStats{}, stats)
}

func TestLogErrors(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	recent := userbet.NewRecent(time.Hour)
	rec := testRecommendation()
	recent.Remember(rec)

	_, err := userbet.NewService(&repoStub{}, recent).Log(ctx, 1, "bob", rec.Ref(), "smart")
	rq.ErrorIs(err, userbet.ErrStorageDisabled)

	svc := userbet.NewService(&repoStub{enabled: true}, recent)

	_, err = svc.Log(ctx, 1, "bob", rec.Ref(), "yolo")
	rq.ErrorIs(err, userbet.ErrUnknownStrategy)

	_, err = svc.Log(ctx, 1, "bob", "deadbeef", "smart")
	rq.ErrorIs(err, userbet.ErrBetExpired)
}

type hangingRepo struct{}

func (hangingRepo) Enabled() bool { return true }

func (hangingRepo) AddUserBet(ctx context.Context, _ entity.UserBet) error {
	<-ctx.Done()
	return ctx.Err()
}

func (hangingRepo) ListUserBets(ctx context.Context, _ int64) ([]entity.UserBet, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestServiceTimeout(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	recent := userbet.NewRecent(time.Hour)
	rec := testRecommendation()
	recent.Remember(rec)

	svc := userbet.NewService(hangingRepo{}, recent).WithTimeout(50 * time.Millisecond)

	_, err := svc.Log(ctx, 1, "bob", rec.Ref(), "smart")
	rq.ErrorIs(err, context.DeadlineExceeded)

	_, err = svc.Stats(ctx, 1)
	rq.ErrorIs(err, context.DeadlineExceeded)
}
