package worker_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"valuebets/internal/domain/service/cycle"
	"valuebets/internal/worker"
)

type countingRunner struct {
	calls atomic.Int32
	err   error
}

func (r *countingRunner) RunCycle(context.Context) (cycle.Result, error) {
	r.calls.Add(1)
	return cycle.Result{}, r.err
}

func TestCycleScheduler(t *testing.T) {
	t.Run("run on start", func(t *testing.T) {
		rq := require.New(t)
		runner := &countingRunner{}

		s := worker.NewCycleScheduler(runner, time.Hour).WithRunOnStart(true)
		rq.Equal("@every 1h0m0s", s.Spec())

		rq.NoError(s.Start(context.Background()))
		rq.True(s.IsRunning())
		rq.ErrorIs(s.Start(context.Background()), worker.ErrSchedulerRunning)

		rq.Eventually(func() bool { return runner.calls.Load() == 1 }, time.Second, 10*time.Millisecond)

		s.Stop()
		rq.False(s.IsRunning())

		// повторный Stop безопасен
		s.Stop()
	})

	t.Run("ticks every interval", func(t *testing.T) {
		rq := require.New(t)
		runner := &countingRunner{err: cycle.ErrBusy}

		s := worker.NewCycleScheduler(runner, time.Second)
		rq.NoError(s.Start(context.Background()))
		defer s.Stop()

		rq.Eventually(func() bool { return runner.calls.Load() >= 1 }, 3*time.Second, 50*time.Millisecond)
		rq.True(s.IsRunning())
	})

	t.Run("run stops with context", func(t *testing.T) {
		rq := require.New(t)
		s := worker.NewCycleScheduler(&countingRunner{}, time.Hour)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)

		go func() { done <- s.Run(ctx) }()

		rq.Eventually(s.IsRunning, time.Second, 10*time.Millisecond)
		cancel()

		select {
		case err := <-done:
			rq.NoError(err)
		case <-time.After(2 * time.Second):
			t.Fatal("scheduler did not stop")
		}
		rq.False(s.IsRunning())
	})
}

func TestCycleTaskHandler(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()
	runner := &countingRunner{}

	h := worker.NewCycleTaskHandler(runner)
	rq.True(h.IsRunning())
	rq.NoError(h.ProcessTask(ctx, worker.NewCycleTask()))
	rq.EqualValues(1, runner.calls.Load())

	runner.err = cycle.ErrBusy
	rq.NoError(h.ProcessTask(ctx, worker.NewCycleTask()))

	runner.err = errors.New("boom")
	rq.Error(h.ProcessTask(ctx, worker.NewCycleTask()))

	h.Stop()
	rq.False(h.IsRunning())
	rq.NoError(h.ProcessTask(ctx, worker.NewCycleTask()))
	rq.EqualValues(3, runner.calls.Load())

	rq.NoError(h.Start(ctx))
	rq.ErrorIs(h.Start(ctx), worker.ErrSchedulerRunning)
	rq.Equal(worker.TypeCycle, worker.NewCycleTask().Type())
}
