package valuebet_test

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"valuebets/internal/domain/entity"
	"valuebets/internal/domain/service/valuebet"
	"valuebets/pkg/tests"
)

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) //nolint:gochecknoglobals

func event(id string, startIn time.Duration, books ...entity.Bookmaker) entity.RawEvent {
	return entity.RawEvent{
		ID:           id,
		SportKey:     "soccer_epl",
		SportTitle:   "Soccer - Premier League",
		CommenceTime: testNow.Add(startIn).Format(time.RFC3339),
		HomeTeam:     "Team A",
		AwayTeam:     "Team B",
		Bookmakers:   books,
	}
}

func h2h(title string, outcomes ...entity.Outcome) entity.Bookmaker {
	return entity.Bookmaker{
		Key:     title,
		Title:   title,
		Markets: []entity.Market{{Key: "h2h", Outcomes: outcomes}},
	}
}

func newEngine() *valuebet.Engine {
	return valuebet.NewEngine(valuebet.DefaultConfig(), valuebet.NewAllowList(valuebet.DefaultBookmakers...))
}

func TestComputeSingleBookmaker(t *testing.T) {
	rq := require.New(t)

	recs := newEngine().Compute([]entity.RawEvent{
		event("e1", 10*time.Hour, h2h("Sportsbet", entity.Outcome{Name: "Team A", Price: 2.10})),
	}, testNow)

	rq.Len(recs, 1)

	rec := recs[0]
	rq.Equal("Team A vs Team B", rec.Match)
	rq.Equal("Team A", rec.Pick)
	rq.InDelta(47.62, rec.ConsensusPct, 0.001)
	rq.InDelta(0, rec.EdgePct, 0.001)
	rq.True(rec.QuickReturn)
	rq.False(rec.LongPlay)
	rq.Equal(15.0, rec.Stakes.Conservative)
	rq.Equal(15.0, rec.Stakes.Smart)
	rq.Equal(15.0, rec.Stakes.Aggressive)
	rq.Equal("Soccer", rec.Sport)
	rq.Equal("Premier League", rec.League)
	rq.Equal("⚽", rec.Emoji)
}

func TestComputeTwoBookmakers(t *testing.T) {
	rq := require.New(t)

	recs := newEngine().Compute([]entity.RawEvent{
		event("e1", 72*time.Hour,
			h2h("Ladbrokes", entity.Outcome{Name: "Team A", Price: 1.80}),
			h2h("Bet365", entity.Outcome{Name: "Team A", Price: 2.50}),
		),
	}, testNow)

	rq.Len(recs, 2)

	low, high := recs[0], recs[1]
	rq.Equal("Ladbrokes", low.Bookmaker)
	rq.Equal("Bet365", high.Bookmaker)

	rq.InDelta(47.78, high.ConsensusPct, 0.001)
	rq.InDelta(40.0, high.ImpliedPct, 0.001)
	rq.InDelta(7.78, high.EdgePct, 0.001)
	rq.InDelta(-7.78, low.EdgePct, 0.001)
	rq.False(high.QuickReturn)
	rq.True(high.LongPlay)

	rq.Equal(15.0, high.Stakes.Conservative)
	rq.Equal(17.33, high.Stakes.Smart)
	rq.Equal(20.83, high.Stakes.Aggressive)
	rq.Equal(2.92, high.ExpProfit.Conservative)

	// отрицательный edge не уменьшает ставку ниже базовой
	rq.Equal(15.0, low.Stakes.Smart)
	rq.Equal(15.0, low.Stakes.Aggressive)

	best, ok := valuebet.BestBet(recs, 2.0)
	rq.True(ok)
	rq.Equal(high, best)
	rq.Equal(valuebet.LabelValue, valuebet.ValueLabel(high, 2.0))
	rq.Equal(valuebet.LabelLowValue, valuebet.ValueLabel(low, 2.0))
}

func TestComputeDropsEvents(t *testing.T) {
	rq := require.New(t)

	book := h2h("Sportsbet", entity.Outcome{Name: "Team A", Price: 2.0})

	unparsable := event("bad-time", time.Hour, book)
	unparsable.CommenceTime = "tomorrow"

	testCases := []struct {
		name  string
		event entity.RawEvent
	}{
		{name: "200 days out", event: event("far", 200*24*time.Hour, book)},
		{name: "already started", event: event("past", -time.Minute, book)},
		{name: "starts now", event: event("now", 0, book)},
		{name: "bad start time", event: unparsable},
		{name: "only unlisted bookmaker", event: event("offshore", time.Hour,
			h2h("Random Offshore Book", entity.Outcome{Name: "Team A", Price: 3.0}))},
		{name: "no bookmakers", event: event("empty", time.Hour)},
	}

	engine := newEngine()

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			rq.Empty(engine.Compute([]entity.RawEvent{tc.event}, testNow))
		})
	}
}

func TestComputeSkipsUnlistedAndMalformed(t *testing.T) {
	rq := require.New(t)

	recs := newEngine().Compute([]entity.RawEvent{
		event("e1", 5*time.Hour,
			h2h("Random Offshore Book", entity.Outcome{Name: "Team A", Price: 10.0}),
			h2h("Neds",
				entity.Outcome{Name: "", Price: 2.0},
				entity.Outcome{Name: "Team A", Price: 0},
				entity.Outcome{Name: "Team A", Price: 1.0},
				entity.Outcome{Name: "Team A", Price: math.Inf(1)},
				entity.Outcome{Name: "Team A", Price: 2.0},
			),
		),
	}, testNow)

	rq.Len(recs, 1)
	rq.Equal("Neds", recs[0].Bookmaker)
	rq.InDelta(50.0, recs[0].ConsensusPct, 0.001)
	rq.InDelta(0, recs[0].EdgePct, 0.001)
}

func TestComputeKeepsMarketsApart(t *testing.T) {
	rq := require.New(t)

	minus := -1.5
	plus := 1.5

	book := entity.Bookmaker{
		Title: "PointsBet (AU)",
		Markets: []entity.Market{
			{Key: "h2h", Outcomes: []entity.Outcome{{Name: "Team A", Price: 1.5}}},
			{Key: "spreads", Outcomes: []entity.Outcome{
				{Name: "Team A", Price: 1.9, Point: &minus},
				{Name: "Team A", Price: 2.4, Point: &plus},
			}},
		},
	}

	recs := newEngine().Compute([]entity.RawEvent{event("e1", 5*time.Hour, book)}, testNow)

	rq.Len(recs, 3)

	for _, rec := range recs {
		rq.InDelta(0, rec.EdgePct, 0.001, rec.Pick)
	}

	rq.Equal([]string{"Team A", "Team A -1.5", "Team A +1.5"}, []string{recs[0].Pick, recs[1].Pick, recs[2].Pick})
}

func TestStakeCaps(t *testing.T) {
	rq := require.New(t)

	calc := valuebet.Calculator{BankrollUnits: 1000, ConservativeFraction: 0.015}

	for _, tc := range []struct{ consensus, price float64 }{
		{consensus: 0.99, price: 100},
		{consensus: 0.5, price: 2},
		{consensus: 0.01, price: 1.01},
		{consensus: 0.6, price: 1.9},
		{consensus: 5, price: 100},
	} {
		s := calc.Size(tc.consensus, tc.price)

		rq.GreaterOrEqual(s.Stakes.Smart, s.Stakes.Conservative)
		rq.GreaterOrEqual(s.Stakes.Conservative, 0.0)
		rq.LessOrEqual(s.Stakes.Smart, 5*s.Stakes.Conservative)
		rq.LessOrEqual(s.Stakes.Aggressive, 15*s.Stakes.Conservative)
	}

	// вероятность вне (0, 1] даёт edge выше 100%, срабатывают потолки
	huge := calc.Size(5, 100)
	rq.Equal(75.0, huge.Stakes.Smart)
	rq.Equal(225.0, huge.Stakes.Aggressive)
}

func TestBestBetTieBreak(t *testing.T) {
	rq := require.New(t)

	first := entity.Recommendation{Bookmaker: "first", ConsensusPct: 50, Price: 2.2, EdgePct: 5}
	second := entity.Recommendation{Bookmaker: "second", ConsensusPct: 50, Price: 2.2, EdgePct: 5}
	weak := entity.Recommendation{Bookmaker: "weak", ConsensusPct: 90, Price: 5, EdgePct: 1.99}

	best, ok := valuebet.BestBet([]entity.Recommendation{weak, first, second}, 2.0)
	rq.True(ok)
	rq.Equal("first", best.Bookmaker)

	_, ok = valuebet.BestBet([]entity.Recommendation{weak}, 2.0)
	rq.False(ok)
}

func TestWindowsExclusive(t *testing.T) {
	rq := require.New(t)

	horizon := 150 * 24 * time.Hour

	for _, until := range []time.Duration{time.Minute, 48 * time.Hour, 48*time.Hour + time.Second, horizon} {
		quick, long := valuebet.Windows(until, 48*time.Hour, horizon)
		rq.NotEqual(quick, long, until.String())
	}
}

func TestAllowList(t *testing.T) {
	rq := require.New(t)

	l := valuebet.NewAllowList("Sportsbet", "tab", "tab")
	rq.Equal([]string{"sportsbet", "tab"}, l.Snapshot())

	rq.True(l.Add("Neds"))
	rq.False(l.Add("neds"))
	rq.True(l.Has("NEDS"))
	rq.True(l.Remove("tab"))
	rq.False(l.Remove("tab"))
	rq.Equal(2, l.Len())

	rq.True(valuebet.Allowed("TAB Touch", []string{"tab"}))
	rq.False(valuebet.Allowed("Random Offshore Book", valuebet.DefaultBookmakers))
}

func TestCalculatorRandomPrices(t *testing.T) {
	rq := require.New(t)
	random := tests.NewRandomizer()
	calc := valuebet.Calculator{BankrollUnits: 1000, ConservativeFraction: 0.015}

	for range 200 {
		price := random.Price()
		consensus := random.Probability()

		s := calc.Size(consensus, price)

		rq.InDelta((consensus-1/price)*100, s.Edge, 1e-9)
		rq.InDelta(15.0, s.Stakes.Conservative, 1e-9)
		rq.GreaterOrEqual(s.Stakes.Smart, s.Stakes.Conservative)
		rq.GreaterOrEqual(s.Stakes.Aggressive, s.Stakes.Smart)
		rq.LessOrEqual(s.Stakes.Smart, 75.0)
		rq.LessOrEqual(s.Stakes.Aggressive, 225.0)

		if s.Edge <= 0 {
			rq.InDelta(s.Stakes.Conservative, s.Stakes.Aggressive, 1e-9)
		}

		// выплата считается первой: p * (stake * price) - stake
		for _, pair := range [][2]float64{
			{s.Stakes.Conservative, s.ExpProfit.Conservative},
			{s.Stakes.Smart, s.ExpProfit.Smart},
			{s.Stakes.Aggressive, s.ExpProfit.Aggressive},
		} {
			stake, profit := pair[0], pair[1]
			want := decimal.NewFromFloat(consensus*(stake*price) - stake).Round(2).InexactFloat64()
			rq.Equal(want, profit)
		}
	}
}
