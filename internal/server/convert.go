package server

import (
	"time"

	"valuebets/internal/domain/service/cycle"
	"valuebets/internal/domain/service/roi"
	"valuebets/pkg/rest"
)

func newRESTCycleResult(res cycle.Result) rest.CycleResult {
	return rest.CycleResult{
		TraceID:        res.TraceID,
		StartedAt:      res.StartedAt.UTC().Format(time.RFC3339),
		DurationMs:     res.Duration.Milliseconds(),
		Events:         res.Events,
		Candidates:     res.Candidates,
		Best:           res.Best,
		Quick:          res.Quick,
		Long:           res.Long,
		Value:          res.Value,
		NotifyFailures: res.NotifyFailures,
		Persisted:      res.Persisted,
		SourceFailed:   res.SourceFailed,
	}
}

func newRESTROIReport(report roi.Report) rest.ROIReport {
	return rest.ROIReport{
		Category: report.Category,
		ROI:      report.ROI,
		Bets:     report.Bets,
	}
}
