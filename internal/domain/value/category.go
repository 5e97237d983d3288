package value

import "strings"

// Category категория сохранённой рекомендации.
type Category string

const (
	CategoryBest  Category = "best"
	CategoryQuick Category = "quick"
	CategoryLong  Category = "long"
)

func (c Category) String() string {
	return string(c)
}

// ParseCategory возвращает false для всего, кроме best/quick/long.
func ParseCategory(raw string) (Category, bool) {
	switch c := Category(strings.ToLower(strings.TrimSpace(raw))); c {
	case CategoryBest, CategoryQuick, CategoryLong:
		return c, true
	default:
		return "", false
	}
}

// Tier канал рассылки. Value только дублирует уже разосланное.
type Tier string

const (
	TierBest  Tier = "best"
	TierQuick Tier = "quick"
	TierLong  Tier = "long"
	TierValue Tier = "value"
)

func (t Tier) String() string {
	return string(t)
}

func (t Tier) Title() string {
	switch t {
	case TierBest:
		return "⭐ Best Bet"
	case TierQuick:
		return "⏱ Quick Return Bet"
	case TierLong:
		return "📅 Longer Play Bet"
	case TierValue:
		return "✅ Value Bet"
	default:
		return string(t)
	}
}

// Category категория для хранения; у value её нет.
func (t Tier) Category() (Category, bool) {
	switch t {
	case TierBest:
		return CategoryBest, true
	case TierQuick:
		return CategoryQuick, true
	case TierLong:
		return CategoryLong, true
	default:
		return "", false
	}
}

type Strategy string

const (
	StrategyConservative Strategy = "conservative"
	StrategySmart        Strategy = "smart"
	StrategyAggressive   Strategy = "aggressive"
)

var Strategies = []Strategy{StrategyConservative, StrategySmart, StrategyAggressive} //nolint:gochecknoglobals

func (s Strategy) String() string {
	return string(s)
}

func (s Strategy) Label() string {
	switch s {
	case StrategyConservative:
		return "💵 Conservative"
	case StrategySmart:
		return "🧠 Smart"
	case StrategyAggressive:
		return "🔥 Aggressive"
	default:
		return string(s)
	}
}

func ParseStrategy(raw string) (Strategy, bool) {
	switch s := Strategy(strings.ToLower(strings.TrimSpace(raw))); s {
	case StrategyConservative, StrategySmart, StrategyAggressive:
		return s, true
	default:
		return "", false
	}
}
