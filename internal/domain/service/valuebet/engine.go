package valuebet

import (
	"time"

	"valuebets/internal/domain/entity"
	"valuebets/internal/domain/value"
)

type Config struct {
	BankrollUnits        float64
	ConservativeFraction float64
	EdgeThreshold        float64
	QuickWindow          time.Duration
	Horizon              time.Duration
}

func DefaultConfig() Config {
	return Config{
		BankrollUnits:        1000,
		ConservativeFraction: 0.015,
		EdgeThreshold:        2.0,
		QuickWindow:          48 * time.Hour,
		Horizon:              150 * 24 * time.Hour,
	}
}

// Engine превращает пачку событий в рекомендации. Без побочных эффектов.
type Engine struct {
	cfg        Config
	calculator Calculator
	books      *AllowList
}

func NewEngine(cfg Config, books *AllowList) *Engine {
	return &Engine{
		cfg: cfg,
		calculator: Calculator{
			BankrollUnits:        cfg.BankrollUnits,
			ConservativeFraction: cfg.ConservativeFraction,
		},
		books: books,
	}
}

func (e *Engine) Threshold() float64 {
	return e.cfg.EdgeThreshold
}

func (e *Engine) Books() *AllowList {
	return e.books
}

// Compute возвращает рекомендации в порядке источника.
func (e *Engine) Compute(events []entity.RawEvent, now time.Time) []entity.Recommendation {
	allowed := e.books.Snapshot()

	var out []entity.Recommendation

	for _, ev := range events {
		norm, ok := Normalize(ev, now, e.cfg.Horizon, allowed)
		if !ok {
			continue
		}

		consensus := BuildConsensus(norm.Quotes)
		if len(consensus) == 0 {
			continue
		}

		match := ev.Match()
		sport := value.ClassifySport(ev.SportKey, ev.SportTitle, match)
		quick, long := Windows(norm.Until, e.cfg.QuickWindow, e.cfg.Horizon)

		for _, q := range norm.Quotes {
			p, ok := consensus.Probability(q.Key)
			if !ok {
				continue
			}

			sizing := e.calculator.Size(p, q.Price)

			out = append(out, entity.Recommendation{
				EventID:      ev.ID,
				Match:        match,
				Bookmaker:    q.Bookmaker,
				Market:       q.Key.Market,
				Pick:         q.Key.Pick(),
				Price:        q.Price,
				StartTime:    norm.Start.UTC(),
				ConsensusPct: round2(p * 100),
				ImpliedPct:   round2(sizing.Implied * 100),
				EdgePct:      round2(sizing.Edge),
				Stakes:       sizing.Stakes,
				ExpProfit:    sizing.ExpProfit,
				QuickReturn:  quick,
				LongPlay:     long,
				Sport:        sport.Name,
				League:       sport.League,
				Emoji:        sport.Emoji,
			})
		}
	}

	return out
}

func (e *Engine) BestBet(recs []entity.Recommendation) (entity.Recommendation, bool) {
	return BestBet(recs, e.cfg.EdgeThreshold)
}

func (e *Engine) IsValue(rec entity.Recommendation) bool {
	return IsValue(rec, e.cfg.EdgeThreshold)
}
