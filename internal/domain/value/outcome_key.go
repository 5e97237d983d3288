package value

import (
	"strconv"
	"strings"
)

const MarketHeadToHead = "h2h"

// OutcomeKey выравнивает котировки одного исхода между букмекерами внутри события.
// Разные имена или разные линии (point) никогда не сводятся в один ключ.
type OutcomeKey struct {
	Market   string
	Name     string
	Point    float64
	HasPoint bool
}

func NewOutcomeKey(market, name string, point *float64) OutcomeKey {
	if market == "" {
		market = MarketHeadToHead
	}

	key := OutcomeKey{Market: market, Name: name}
	if point != nil {
		key.Point = *point
		key.HasPoint = true
	}

	return key
}

// Pick человекочитаемая ставка: "Team A", "Team A -1.5", "Over 210.5".
func (k OutcomeKey) Pick() string {
	if !k.HasPoint {
		return k.Name
	}

	point := strconv.FormatFloat(k.Point, 'f', -1, 64)
	if k.Market == "spreads" && k.Point > 0 {
		point = "+" + point
	}

	return k.Name + " " + point
}

func (k OutcomeKey) String() string {
	var b strings.Builder

	b.WriteString(k.Market)
	b.WriteByte(':')
	b.WriteString(k.Pick())

	return b.String()
}
