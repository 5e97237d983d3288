package server

import (
	"context"
	"fmt"
	"net/http"

	"valuebets/internal/domain"
	"valuebets/internal/domain/service/roi"
	"valuebets/pkg/errcodes"
	"valuebets/pkg/httpx/reply"
	"valuebets/pkg/httpx/req"
)

type roiReporter interface {
	Report(ctx context.Context, filter string) (roi.Report, error)
}

type ROIServer struct {
	reporter roiReporter
}

func NewROIServer(reporter roiReporter) ROIServer {
	return ROIServer{
		reporter: reporter,
	}
}

type roiQuery struct {
	Category string `validate:"omitempty,oneof=best quick long"`
}

func (s ROIServer) getV1ROI(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	query := roiQuery{Category: r.URL.Query().Get("category")}

	if err := req.Validate(r, &query); err != nil {
		return domain.WrapError(err, errcodes.InvalidCategory, "category must be one of best, quick, long")
	}

	report, err := s.reporter.Report(ctx, query.Category)
	if err != nil {
		return fmt.Errorf("reporter.Report: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTROIReport(report))

	return nil
}
