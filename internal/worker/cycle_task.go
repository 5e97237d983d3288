package worker

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/hibiken/asynq"

	"valuebets/internal/domain/service/cycle"
)

const TypeCycle = "valuebets:cycle"

func NewCycleTask() *asynq.Task {
	return asynq.NewTask(TypeCycle, nil, asynq.MaxRetry(0))
}

// CycleTaskHandler обработчик периодической задачи asynq.
// Stop ставит обработку на паузу: задачи продолжают приходить, но ничего не делают.
type CycleTaskHandler struct {
	runner  CycleRunner
	enabled atomic.Bool
}

func NewCycleTaskHandler(runner CycleRunner) *CycleTaskHandler {
	h := &CycleTaskHandler{runner: runner}
	h.enabled.Store(true)
	return h
}

func (h *CycleTaskHandler) ProcessTask(ctx context.Context, _ *asynq.Task) error {
	if !h.enabled.Load() {
		return nil
	}

	_, err := h.runner.RunCycle(ctx)
	if errors.Is(err, cycle.ErrBusy) {
		logger(ctx).Info("queued cycle skipped, another one is running")
		return nil
	}
	if err != nil {
		return fmt.Errorf("runner.RunCycle: %w", err)
	}

	return nil
}

func (h *CycleTaskHandler) Start(context.Context) error {
	if h.enabled.Swap(true) {
		return ErrSchedulerRunning
	}
	return nil
}

func (h *CycleTaskHandler) Stop() {
	h.enabled.Store(false)
}

func (h *CycleTaskHandler) IsRunning() bool {
	return h.enabled.Load()
}
