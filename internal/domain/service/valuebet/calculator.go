package valuebet

import (
	"math"

	"github.com/shopspring/decimal"

	"valuebets/internal/domain/entity"
)

const (
	smartEdgeDivisor      = 50.0
	smartCapMultiple      = 5.0
	aggressiveEdgeDivisor = 20.0
	aggressiveCapMultiple = 15.0
)

// Calculator считает edge, три уровня ставки и ожидаемую прибыль.
type Calculator struct {
	BankrollUnits        float64
	ConservativeFraction float64
}

// Sizing результат расчёта по одной котировке. Edge не округлён.
type Sizing struct {
	Implied   float64
	Edge      float64
	Stakes    entity.Stakes
	ExpProfit entity.Stakes
}

func (c Calculator) Size(consensus, price float64) Sizing {
	implied := 1 / price
	edge := (consensus - implied) * 100
	positive := math.Max(0, edge)

	cons := round2(c.BankrollUnits * c.ConservativeFraction)
	smart := round2(math.Min(cons*(1+positive/smartEdgeDivisor), cons*smartCapMultiple))
	aggressive := round2(math.Min(cons*(1+positive/aggressiveEdgeDivisor), cons*aggressiveCapMultiple))

	stakes := entity.Stakes{Conservative: cons, Smart: smart, Aggressive: aggressive}

	return Sizing{
		Implied: implied,
		Edge:    edge,
		Stakes:  stakes,
		ExpProfit: entity.Stakes{
			Conservative: expectedProfit(consensus, cons, price),
			Smart:        expectedProfit(consensus, smart, price),
			Aggressive:   expectedProfit(consensus, aggressive, price),
		},
	}
}

func expectedProfit(p, stake, price float64) float64 {
	payout := stake * price
	return round2(p*payout - stake)
}

// round2 округляет до сотых, половина от нуля.
func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
