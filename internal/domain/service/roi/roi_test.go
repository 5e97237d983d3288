package roi_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"valuebets/internal/domain/entity"
	"valuebets/internal/domain/service/roi"
	"valuebets/internal/domain/value"
	"valuebets/pkg/tests"
)

type sourceStub struct {
	rows     []entity.BetTotals
	err      error
	category *value.Category
}

func (s *sourceStub) ListBetTotals(_ context.Context, category *value.Category) ([]entity.BetTotals, error) {
	s.category = category
	return s.rows, s.err
}

func TestCompute(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name string
		rows []entity.BetTotals
		roi  float64
		bets int
	}{
		{name: "No rows", rows: nil, roi: 0, bets: 0},
		{name: "Zero stake", rows: []entity.BetTotals{{Profit: 3, Stake: 0}, {Profit: -1, Stake: 0}}, roi: 0, bets: 2},
		{name: "Positive", rows: []entity.BetTotals{{Profit: 5, Stake: 50}, {Profit: 5, Stake: 50}}, roi: 10, bets: 2},
		{name: "Negative", rows: []entity.BetTotals{{Profit: -3, Stake: 60}}, roi: -5, bets: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			got, n := roi.Compute(tc.rows)
			rq.InDelta(tc.roi, got, 1e-9)
			rq.Equal(tc.bets, n)
		})
	}
}

func TestReporterFilter(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	src := &sourceStub{rows: []entity.BetTotals{{Profit: 1, Stake: 4}}}
	reporter := roi.NewReporter(src)

	report, err := reporter.Report(ctx, "Quick")
	rq.NoError(err)
	rq.NotNil(src.category)
	rq.Equal(value.CategoryQuick, *src.category)
	rq.Equal(roi.Report{Category: "quick", ROI: 25, Bets: 1}, report)

	report, err = reporter.Report(ctx, "whatever")
	rq.NoError(err)
	rq.Nil(src.category)
	rq.Equal("all", report.Category)

	src.err = errors.New("connection refused")
	_, err = reporter.Report(ctx, "")
	rq.Error(err)
}

func TestComputeRandomRows(t *testing.T) {
	rq := require.New(t)
	random := tests.NewRandomizer()

	for range 50 {
		var (
			rows          []entity.BetTotals
			profit, stake float64
		)

		for range 10 {
			row := entity.BetTotals{Profit: random.Float64()*20 - 10, Stake: random.Float64() * 30}
			if random.Bool() {
				row.Stake = 0
			}

			rows = append(rows, row)
			profit += row.Profit
			stake += row.Stake
		}

		got, n := roi.Compute(rows)
		rq.Equal(len(rows), n)

		if stake <= 0 {
			rq.Zero(got)
			continue
		}

		rq.InDelta(profit/stake*100, got, 1e-6)
	}
}

type hangingSource struct{}

func (hangingSource) ListBetTotals(ctx context.Context, _ *value.Category) ([]entity.BetTotals, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestReporterTimeout(t *testing.T) {
	rq := require.New(t)

	reporter := roi.NewReporter(hangingSource{}).WithTimeout(50 * time.Millisecond)

	_, err := reporter.Report(context.Background(), "best")
	rq.ErrorIs(err, context.DeadlineExceeded)
}
