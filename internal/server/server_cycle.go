package server

import (
	"context"
	"fmt"
	"net/http"

	"valuebets/internal/domain/service/cycle"
	"valuebets/pkg/httpx/reply"
)

type cycleRunner interface {
	RunCycle(context.Context) (cycle.Result, error)
}

type CycleServer struct {
	runner cycleRunner
}

func NewCycleServer(runner cycleRunner) CycleServer {
	return CycleServer{
		runner: runner,
	}
}

// postV1Cycles ручной запуск цикла. Занятый цикл отдаёт 409 CycleBusy.
func (s CycleServer) postV1Cycles(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	res, err := s.runner.RunCycle(ctx)
	if err != nil {
		return fmt.Errorf("runner.RunCycle: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTCycleResult(res))

	return nil
}
