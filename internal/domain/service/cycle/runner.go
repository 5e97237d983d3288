package cycle

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/xid"
	"golang.org/x/sync/semaphore"

	"valuebets/internal/domain"
	"valuebets/internal/domain/entity"
	"valuebets/internal/domain/service/dedup"
	"valuebets/internal/domain/service/valuebet"
	"valuebets/internal/domain/value"
	"valuebets/pkg/contextx"
	"valuebets/pkg/errcodes"
	"valuebets/pkg/logx"
)

const NoBetsMessage = "⚠️ No bets this cycle."

var ErrBusy = domain.NewError(errcodes.CycleBusy, "another fetch is running") //nolint:gochecknoglobals

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type Fetcher interface {
	FetchOdds(ctx context.Context) ([]entity.RawEvent, error)
}

type Notifier interface {
	Notify(ctx context.Context, tier value.Tier, rec entity.Recommendation) error
	NotifyText(ctx context.Context, tier value.Tier, text string) error
}

type BetStore interface {
	Enabled() bool
	SaveBet(ctx context.Context, row entity.BetRow) error
}

// Recorder запоминает разосланные рекомендации для кнопок ставок.
type Recorder interface {
	Remember(rec entity.Recommendation)
}

type Result struct {
	TraceID        string        `json:"traceId"`
	StartedAt      time.Time     `json:"startedAt"`
	Duration       time.Duration `json:"duration"`
	Events         int           `json:"events"`
	Candidates     int           `json:"candidates"`
	Best           int           `json:"best"`
	Quick          int           `json:"quick"`
	Long           int           `json:"long"`
	Value          int           `json:"value"`
	NotifyFailures int           `json:"notifyFailures"`
	Persisted      int           `json:"persisted"`
	SourceFailed   bool          `json:"sourceFailed"`
}

// Runner выполняет цикл fetch -> compute -> dedup -> emit -> persist.
// Одновременно идёт не больше одного цикла: лишние запуски получают ErrBusy.
//
// Notifier сам ограничивает время отправки на каждый канал (см. notifier.Multi).
type Runner struct {
	sem      *semaphore.Weighted
	running  atomic.Bool
	fetcher  Fetcher
	engine   *valuebet.Engine
	dedup    dedup.Store
	notifier Notifier
	store    BetStore
	recorder Recorder

	fetchTimeout   time.Duration
	persistTimeout time.Duration
	now            func() time.Time

	mu   sync.Mutex
	last *Result
}

func NewRunner(
	fetcher Fetcher,
	engine *valuebet.Engine,
	dedupStore dedup.Store,
	notifier Notifier,
	store BetStore,
) *Runner {
	return &Runner{
		sem:            semaphore.NewWeighted(1),
		fetcher:        fetcher,
		engine:         engine,
		dedup:          dedupStore,
		notifier:       notifier,
		store:          store,
		fetchTimeout:   25 * time.Second,
		persistTimeout: 10 * time.Second,
		now:            time.Now,
	}
}

func (r *Runner) WithTimeouts(fetch, persist time.Duration) *Runner {
	r.fetchTimeout = fetch
	r.persistTimeout = persist
	return r
}

func (r *Runner) WithRecorder(recorder Recorder) *Runner {
	r.recorder = recorder
	return r
}

func (r *Runner) WithClock(now func() time.Time) *Runner {
	r.now = now
	return r
}

// Busy true, пока идёт цикл.
func (r *Runner) Busy() bool {
	return r.running.Load()
}

// LastResult результат последнего завершённого цикла.
func (r *Runner) LastResult() (Result, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.last == nil {
		return Result{}, false
	}
	return *r.last, true
}

// RunCycle не ждёт освобождения: если цикл уже идёт, сразу возвращает ErrBusy.
func (r *Runner) RunCycle(ctx context.Context) (Result, error) {
	if !r.sem.TryAcquire(1) {
		cyclesTotal.WithLabelValues("busy").Inc()
		return Result{}, ErrBusy
	}
	defer r.sem.Release(1)

	r.running.Store(true)
	defer r.running.Store(false)

	res := Result{
		TraceID:   xid.New().String(),
		StartedAt: r.now(),
	}

	ctx = contextx.WithTraceID(ctx, contextx.TraceID(res.TraceID))
	ctx = contextx.WithLogger(ctx, logger(ctx).With(slog.String(logx.FieldTraceID, res.TraceID)))

	events, err := r.fetch(ctx)
	if err != nil {
		logger(ctx).Warn("odds source unavailable, treating batch as empty", logx.Error(err))
		res.SourceFailed = true
	}

	res.Events = len(events)

	recs := r.engine.Compute(events, res.StartedAt)
	res.Candidates = len(recs)
	recommendationsComputed.Add(float64(len(recs)))

	r.emitAll(ctx, recs, &res)

	res.Duration = r.now().Sub(res.StartedAt)
	cycleDuration.Observe(res.Duration.Seconds())
	cyclesTotal.WithLabelValues("ok").Inc()

	logger(ctx).Info("cycle finished",
		slog.Int("events", res.Events),
		slog.Int("candidates", res.Candidates),
		slog.Int("best", res.Best),
		slog.Int("quick", res.Quick),
		slog.Int("long", res.Long),
		slog.Int("value", res.Value),
		slog.Int("notify-failures", res.NotifyFailures),
		slog.Int("persisted", res.Persisted),
		slog.Int64(logx.FieldDurationMs, res.Duration.Milliseconds()),
	)

	r.mu.Lock()
	r.last = &res
	r.mu.Unlock()

	return res, nil
}

func (r *Runner) fetch(ctx context.Context) ([]entity.RawEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, r.fetchTimeout)
	defer cancel()

	events, err := r.fetcher.FetchOdds(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetcher.FetchOdds: %w", err)
	}

	return events, nil
}

// emitAll порядок: best, quick, long. Value дублирует то, что было
// разослано в этом цикле, и в журнал не пишется.
func (r *Runner) emitAll(ctx context.Context, recs []entity.Recommendation, res *Result) {
	if len(recs) == 0 {
		if err := r.notifyText(ctx, value.TierBest, NoBetsMessage); err != nil {
			res.NotifyFailures++
		}
		return
	}

	var emitted []entity.Recommendation

	if best, ok := r.engine.BestBet(recs); ok && r.emit(ctx, value.TierBest, best, res) {
		res.Best++
		emitted = append(emitted, best)
	}

	for _, rec := range recs {
		if rec.QuickReturn && r.emit(ctx, value.TierQuick, rec, res) {
			res.Quick++
			emitted = append(emitted, rec)
		}
	}

	for _, rec := range recs {
		if rec.LongPlay && r.emit(ctx, value.TierLong, rec, res) {
			res.Long++
			emitted = append(emitted, rec)
		}
	}

	for _, rec := range emitted {
		if !r.engine.IsValue(rec) {
			continue
		}

		if err := r.notify(ctx, value.TierValue, rec); err != nil {
			res.NotifyFailures++
			continue
		}

		res.Value++
	}
}

// emit возвращает true, если рекомендация новая и была отправлена (успешно или нет).
func (r *Runner) emit(ctx context.Context, tier value.Tier, rec entity.Recommendation, res *Result) bool {
	claimed, err := r.dedup.Claim(ctx, rec.Identity())
	if err != nil {
		logger(ctx).Error("dedup.Claim, skipping",
			slog.String("tier", tier.String()),
			slog.String("bet", rec.Identity()),
			logx.Error(err),
		)
		return false
	}

	if !claimed {
		return false
	}

	if r.recorder != nil {
		r.recorder.Remember(rec)
	}

	if err := r.notify(ctx, tier, rec); err != nil {
		res.NotifyFailures++
	}

	if category, ok := tier.Category(); ok && r.persist(ctx, rec, category) {
		res.Persisted++
	}

	return true
}

func (r *Runner) notify(ctx context.Context, tier value.Tier, rec entity.Recommendation) error {
	if err := r.notifier.Notify(ctx, tier, rec); err != nil {
		notifyFailures.WithLabelValues(tier.String()).Inc()
		logger(ctx).Error("notifier.Notify",
			slog.String("tier", tier.String()),
			slog.String("bet", rec.Identity()),
			logx.Error(err),
		)
		return err
	}

	emittedTotal.WithLabelValues(tier.String()).Inc()

	return nil
}

func (r *Runner) notifyText(ctx context.Context, tier value.Tier, text string) error {
	if err := r.notifier.NotifyText(ctx, tier, text); err != nil {
		notifyFailures.WithLabelValues(tier.String()).Inc()
		logger(ctx).Error("notifier.NotifyText", slog.String("tier", tier.String()), logx.Error(err))
		return err
	}

	return nil
}

// persist best-effort: ошибка только логируется.
func (r *Runner) persist(ctx context.Context, rec entity.Recommendation, category value.Category) bool {
	if !r.store.Enabled() {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, r.persistTimeout)
	defer cancel()

	row := entity.BetRow{
		Recommendation: rec,
		Category:       category,
		CreatedAt:      r.now().UTC(),
	}

	if err := r.store.SaveBet(ctx, row); err != nil {
		persistFailures.Inc()
		logger(ctx).Error("store.SaveBet",
			slog.String("category", category.String()),
			slog.String("bet", rec.Identity()),
			logx.Error(err),
		)
		return false
	}

	return true
}
