package entity

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"valuebets/internal/domain/value"
)

// Stakes три уровня ставки в условных единицах.
type Stakes struct {
	Conservative float64 `json:"conservative"`
	Smart        float64 `json:"smart"`
	Aggressive   float64 `json:"aggressive"`
}

func (s Stakes) For(strategy value.Strategy) float64 {
	switch strategy {
	case value.StrategySmart:
		return s.Smart
	case value.StrategyAggressive:
		return s.Aggressive
	default:
		return s.Conservative
	}
}

func (s Stakes) Sum() float64 {
	return s.Conservative + s.Smart + s.Aggressive
}

// Recommendation рассчитанная ставка. После создания не меняется.
type Recommendation struct {
	EventID   string    `json:"eventId"`
	Match     string    `json:"match"`
	Bookmaker string    `json:"bookmaker"`
	Market    string    `json:"market"`
	Pick      string    `json:"pick"`
	Price     float64   `json:"price"`
	StartTime time.Time `json:"startTime"`

	// Проценты, округлены до 2 знаков.
	ConsensusPct float64 `json:"consensus"`
	ImpliedPct   float64 `json:"implied"`
	EdgePct      float64 `json:"edge"`

	Stakes    Stakes `json:"stakes"`
	ExpProfit Stakes `json:"expectedProfit"`

	QuickReturn bool `json:"quickReturn"`
	LongPlay    bool `json:"longPlay"`

	Sport  string `json:"sport"`
	League string `json:"league"`
	Emoji  string `json:"emoji"`
}

// Identity ключ дедупликации: событие, матч, ставка, букмекер, время старта.
func (r Recommendation) Identity() string {
	return strings.Join([]string{
		r.EventID,
		r.Match,
		r.Pick,
		r.Bookmaker,
		r.StartTime.UTC().Format(time.RFC3339),
	}, "|")
}

// Ref короткая ссылка на рекомендацию для callback-данных кнопок.
func (r Recommendation) Ref() string {
	sum := sha256.Sum256([]byte(r.Identity()))
	return hex.EncodeToString(sum[:8])
}

// Payout выплата при выигрыше для выбранной стратегии.
func (r Recommendation) Payout(strategy value.Strategy) float64 {
	return r.Stakes.For(strategy) * r.Price
}

// Score ожидаемый чистый выигрыш на единицу ставки по консенсусу.
func (r Recommendation) Score() float64 {
	return r.ConsensusPct / 100 * (r.Price - 1)
}
