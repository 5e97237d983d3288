package notifier

import (
	"fmt"
	"html"
	"strings"

	"valuebets/internal/domain/entity"
	"valuebets/internal/domain/service/valuebet"
	"valuebets/internal/domain/value"
)

const timeLayout = "02/01/06 15:04"

const (
	colorValue    = 0x2ecc71
	colorLowValue = 0xe74c3c
)

// Card представление рекомендации, общее для всех каналов.
type Card struct {
	Title string
	Label string
	Value bool
	Rec   entity.Recommendation
}

func NewCard(tier value.Tier, rec entity.Recommendation, threshold float64) Card {
	return Card{
		Title: tier.Title(),
		Label: valuebet.ValueLabel(rec, threshold),
		Value: valuebet.IsValue(rec, threshold),
		Rec:   rec,
	}
}

func (c Card) Color() int {
	if c.Value {
		return colorValue
	}
	return colorLowValue
}

func (c Card) Headline() string {
	return fmt.Sprintf("%s %s (%s)", c.Rec.Emoji, c.Rec.Sport, c.Rec.League)
}

func (c Card) PickLine() string {
	return fmt.Sprintf("%s @ %s", c.Rec.Pick, formatPrice(c.Rec.Price))
}

func (c Card) StakeLine(strategy value.Strategy) string {
	return fmt.Sprintf("%.2fu → Payout: %.2fu | Exp. Profit: %.2fu",
		c.Rec.Stakes.For(strategy),
		c.Rec.Payout(strategy),
		c.Rec.ExpProfit.For(strategy),
	)
}

func (c Card) StartLine() string {
	return c.Rec.StartTime.UTC().Format(timeLayout) + " UTC"
}

// HTML текст карточки для Telegram (parse_mode=HTML).
func (c Card) HTML() string {
	var b strings.Builder

	e := html.EscapeString

	fmt.Fprintf(&b, "<b>%s</b>\n%s\n\n", e(c.Title), e(c.Label))
	fmt.Fprintf(&b, "<b>%s</b>\n", e(c.Headline()))
	fmt.Fprintf(&b, "<b>Match:</b> %s\n", e(c.Rec.Match))
	fmt.Fprintf(&b, "<b>Pick:</b> %s\n", e(c.PickLine()))
	fmt.Fprintf(&b, "<b>Bookmaker:</b> %s\n", e(c.Rec.Bookmaker))
	fmt.Fprintf(&b, "<b>Consensus:</b> %.2f%% | <b>Implied:</b> %.2f%% | <b>Edge:</b> %.2f%%\n",
		c.Rec.ConsensusPct, c.Rec.ImpliedPct, c.Rec.EdgePct)
	fmt.Fprintf(&b, "<b>Time:</b> %s\n\n", e(c.StartLine()))

	for _, s := range value.Strategies {
		fmt.Fprintf(&b, "%s Stake: %s\n", s.Label(), e(c.StakeLine(s)))
	}

	return strings.TrimRight(b.String(), "\n")
}

func formatPrice(p float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.3f", p), "0"), ".")
}
