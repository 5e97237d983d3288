package valuebet

import (
	"time"

	"github.com/samber/lo"

	"valuebets/internal/domain/entity"
)

const (
	LabelValue    = "🟢 Value Bet"
	LabelLowValue = "🔴 Low Value"
)

// Windows quick: до quick включительно, long: (quick, horizon].
func Windows(until, quick, horizon time.Duration) (quickReturn, longPlay bool) {
	quickReturn = until <= quick
	longPlay = until > quick && until <= horizon
	return quickReturn, longPlay
}

func IsValue(rec entity.Recommendation, threshold float64) bool {
	return rec.EdgePct >= threshold
}

func ValueLabel(rec entity.Recommendation, threshold float64) string {
	if IsValue(rec, threshold) {
		return LabelValue
	}
	return LabelLowValue
}

// BestBet среди рекомендаций с edge >= threshold выбирает максимум Score.
// При равенстве побеждает первая во входном порядке.
func BestBet(recs []entity.Recommendation, threshold float64) (entity.Recommendation, bool) {
	candidates := lo.Filter(recs, func(r entity.Recommendation, _ int) bool {
		return IsValue(r, threshold)
	})
	if len(candidates) == 0 {
		return entity.Recommendation{}, false
	}

	return lo.MaxBy(candidates, func(a, b entity.Recommendation) bool {
		return a.Score() > b.Score()
	}), true
}
