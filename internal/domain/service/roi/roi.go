package roi

import (
	"context"
	"fmt"
	"time"

	"valuebets/internal/domain/entity"
	"valuebets/internal/domain/value"
)

// Source строки журнала ставок; category == nil означает все категории.
type Source interface {
	ListBetTotals(ctx context.Context, category *value.Category) ([]entity.BetTotals, error)
}

type Report struct {
	Category string  `json:"category"`
	ROI      float64 `json:"roi"`
	Bets     int     `json:"bets"`
}

const defaultTimeout = 10 * time.Second

type Reporter struct {
	source  Source
	timeout time.Duration
}

func NewReporter(source Source) *Reporter {
	return &Reporter{source: source, timeout: defaultTimeout}
}

// WithTimeout дедлайн на запрос к базе.
func (r *Reporter) WithTimeout(timeout time.Duration) *Reporter {
	r.timeout = timeout
	return r
}

// Report считает ожидаемую доходность по разосланным ставкам.
// Неизвестный фильтр трактуется как "все категории".
func (r *Reporter) Report(ctx context.Context, filter string) (Report, error) {
	var category *value.Category

	report := Report{Category: "all"}

	if c, ok := value.ParseCategory(filter); ok {
		category = &c
		report.Category = c.String()
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.source.ListBetTotals(ctx, category)
	if err != nil {
		return Report{}, fmt.Errorf("source.ListBetTotals: %w", err)
	}

	report.ROI, report.Bets = Compute(rows)

	return report, nil
}

// Compute возвращает (прибыль / ставка * 100, число строк); 0, если ставка <= 0.
func Compute(rows []entity.BetTotals) (float64, int) {
	var profit, stake float64

	for _, row := range rows {
		profit += row.Profit
		stake += row.Stake
	}

	if stake <= 0 {
		return 0, len(rows)
	}

	return profit / stake * 100, len(rows)
}
