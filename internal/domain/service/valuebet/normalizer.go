package valuebet

import (
	"math"
	"time"

	"valuebets/internal/domain/entity"
	"valuebets/internal/domain/value"
)

// Quote одна котировка разрешённого букмекера.
type Quote struct {
	Bookmaker string
	Key       value.OutcomeKey
	Price     float64
}

// NormalizedEvent событие после фильтрации по времени и букмекерам.
// Quotes идут в порядке источника: букмекеры, рынки, исходы.
type NormalizedEvent struct {
	Event  entity.RawEvent
	Start  time.Time
	Until  time.Duration
	Quotes []Quote
}

// Normalize отбрасывает событие целиком, если время старта не парсится,
// уже наступило или дальше horizon. Битые исходы пропускаются поштучно.
func Normalize(ev entity.RawEvent, now time.Time, horizon time.Duration, allowed []string) (NormalizedEvent, bool) {
	start, err := time.Parse(time.RFC3339, ev.CommenceTime)
	if err != nil {
		return NormalizedEvent{}, false
	}

	until := start.Sub(now)
	if until <= 0 || until > horizon {
		return NormalizedEvent{}, false
	}

	out := NormalizedEvent{Event: ev, Start: start, Until: until}

	for _, book := range ev.Bookmakers {
		if !Allowed(book.Title, allowed) {
			continue
		}

		for _, market := range book.Markets {
			for _, oc := range market.Outcomes {
				if !validOutcome(oc) {
					continue
				}

				out.Quotes = append(out.Quotes, Quote{
					Bookmaker: book.Name(),
					Key:       value.NewOutcomeKey(market.Key, oc.Name, oc.Point),
					Price:     oc.Price,
				})
			}
		}
	}

	return out, true
}

func validOutcome(oc entity.Outcome) bool {
	if oc.Name == "" {
		return false
	}
	if math.IsNaN(oc.Price) || math.IsInf(oc.Price, 0) {
		return false
	}
	if oc.Point != nil && (math.IsNaN(*oc.Point) || math.IsInf(*oc.Point, 0)) {
		return false
	}

	return oc.Price > 1
}
