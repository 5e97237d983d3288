package notifier

import (
	"context"
	"errors"
	"time"

	"valuebets/internal/domain/entity"
	"valuebets/internal/domain/value"
)

type Notifier interface {
	Notify(ctx context.Context, tier value.Tier, rec entity.Recommendation) error
	NotifyText(ctx context.Context, tier value.Tier, text string) error
}

// Multi отправляет во все каналы; ошибка одного не мешает остальным.
// У каждого канала свой дедлайн timeout: зависший канал не съедает время следующих.
type Multi struct {
	notifiers []Notifier
	timeout   time.Duration
}

// NewMulti timeout <= 0 отключает дедлайн на канал.
func NewMulti(timeout time.Duration, notifiers ...Notifier) *Multi {
	return &Multi{
		notifiers: notifiers,
		timeout:   timeout,
	}
}

func (m *Multi) Add(n Notifier) {
	m.notifiers = append(m.notifiers, n)
}

func (m *Multi) Len() int {
	return len(m.notifiers)
}

func (m *Multi) Notify(ctx context.Context, tier value.Tier, rec entity.Recommendation) error {
	return m.each(ctx, func(ctx context.Context, n Notifier) error {
		return n.Notify(ctx, tier, rec)
	})
}

func (m *Multi) NotifyText(ctx context.Context, tier value.Tier, text string) error {
	return m.each(ctx, func(ctx context.Context, n Notifier) error {
		return n.NotifyText(ctx, tier, text)
	})
}

func (m *Multi) each(ctx context.Context, send func(context.Context, Notifier) error) error {
	var errs []error
	for _, n := range m.notifiers {
		if err := m.sendOne(ctx, n, send); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *Multi) sendOne(ctx context.Context, n Notifier, send func(context.Context, Notifier) error) error {
	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	return send(ctx, n)
}
