package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"valuebets/internal/domain/service/cycle"
	"valuebets/pkg/logx"
)

type CycleRunner interface {
	RunCycle(ctx context.Context) (cycle.Result, error)
}

var ErrSchedulerRunning = errors.New("scheduler is already running")

// CycleScheduler запускает цикл каждые interval через cron.
// Пропущенный из-за занятости тик не повторяется.
type CycleScheduler struct {
	runner     CycleRunner
	interval   time.Duration
	runOnStart bool

	mu         sync.Mutex
	cron       *cron.Cron
	cancelFunc context.CancelFunc
	isRunning  bool
	wg         sync.WaitGroup
}

func NewCycleScheduler(runner CycleRunner, interval time.Duration) *CycleScheduler {
	return &CycleScheduler{
		runner:   runner,
		interval: interval,
	}
}

// WithRunOnStart первый цикл сразу после Start, не дожидаясь интервала.
func (s *CycleScheduler) WithRunOnStart(enabled bool) *CycleScheduler {
	s.runOnStart = enabled
	return s
}

func (s *CycleScheduler) Spec() string {
	return "@every " + s.interval.String()
}

func (s *CycleScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return ErrSchedulerRunning
	}

	scanCtx, cancel := context.WithCancel(ctx)

	c := cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger)))
	if _, err := c.AddFunc(s.Spec(), func() { s.tick(scanCtx) }); err != nil {
		cancel()
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	c.Start()

	s.cron = c
	s.cancelFunc = cancel
	s.isRunning = true

	if s.runOnStart {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.tick(scanCtx)
		}()
	}

	logger(ctx).Info("cycle scheduler started", slog.String("spec", s.Spec()))

	return nil
}

// Stop ждёт завершения текущего цикла.
func (s *CycleScheduler) Stop() {
	s.mu.Lock()

	if !s.isRunning {
		s.mu.Unlock()
		return
	}

	c := s.cron
	s.cancelFunc()
	s.cron = nil
	s.cancelFunc = nil
	s.isRunning = false
	s.mu.Unlock()

	<-c.Stop().Done()
	s.wg.Wait()

	logger(context.Background()).Info("cycle scheduler stopped")
}

func (s *CycleScheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isRunning
}

// Run модуль приложения: стартует и останавливается вместе с ctx.
// Если планировщик уже запустили из чата, просто ждёт ctx.
func (s *CycleScheduler) Run(ctx context.Context) error {
	if err := s.Start(ctx); err != nil && !errors.Is(err, ErrSchedulerRunning) {
		return err
	}

	<-ctx.Done()
	s.Stop()

	return nil
}

func (s *CycleScheduler) tick(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	_, err := s.runner.RunCycle(ctx)

	switch {
	case err == nil:
	case errors.Is(err, cycle.ErrBusy):
		logger(ctx).Info("scheduled cycle skipped, another one is running")
	default:
		logger(ctx).Error("scheduled cycle failed", logx.Error(err))
	}
}
