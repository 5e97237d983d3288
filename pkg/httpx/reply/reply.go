package reply

import (
	"context"
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"valuebets/internal/domain"
	"valuebets/pkg/contextx"
	"valuebets/pkg/errcodes"
	"valuebets/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

type errorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	SupportID string `json:"supportId"`
}

func (e *errorResponse) WithDefaultCode(code errcodes.Code) {
	if e.Code == "" {
		e.Code = code.String()
	}
}

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// statusByCode сопоставляет доменные коды HTTP-статусам.
var statusByCode = map[errcodes.Code]int{ //nolint:gochecknoglobals
	errcodes.ValidationError:    http.StatusBadRequest,
	errcodes.InvalidCategory:    http.StatusBadRequest,
	errcodes.InvalidStrategy:    http.StatusBadRequest,
	errcodes.NotFound:           http.StatusNotFound,
	errcodes.BetNotFound:        http.StatusNotFound,
	errcodes.Forbidden:          http.StatusForbidden,
	errcodes.CycleBusy:          http.StatusConflict,
	errcodes.TimeoutExceeded:    http.StatusGatewayTimeout,
	errcodes.SourceUnavailable:  http.StatusBadGateway,
	errcodes.StorageUnavailable: http.StatusServiceUnavailable,
}

func OK(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
}

func Created(w http.ResponseWriter) {
	w.WriteHeader(http.StatusCreated)
}

func JSON(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger(ctx).Error("json.Encode", logx.Error(err))
	}
}

func Error(ctx context.Context, w http.ResponseWriter, err error) {
	logger(ctx).Error("error", logx.Error(err))

	response := errorResponse{
		SupportID: supportID(ctx),
	}

	var appErr *domain.AppError

	switch {
	case errors.As(err, &appErr):
		response.Code = appErr.Code.String()
		response.Message = appErr.Message

		status, ok := statusByCode[appErr.Code]
		if !ok {
			status = http.StatusInternalServerError
		}

		JSON(ctx, w, status, response)
	case errors.Is(err, context.DeadlineExceeded):
		response.WithDefaultCode(errcodes.TimeoutExceeded)
		response.Message = "timeout exceeded"
		JSON(ctx, w, http.StatusGatewayTimeout, response)
	default:
		response.WithDefaultCode(errcodes.InternalServerError)
		response.Message = "internal server error"
		JSON(ctx, w, http.StatusInternalServerError, response)
	}
}

func supportID(ctx context.Context) string {
	traceID, err := contextx.TraceIDFromContext(ctx)
	if err != nil {
		return "unsupported"
	}

	return traceID.String()
}
