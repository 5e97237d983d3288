package middlewarex

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"valuebets/internal/domain"
	"valuebets/pkg/errcodes"
	"valuebets/pkg/httpx/reply"
	"valuebets/pkg/logx"
)

func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		defer func() {
			if rec := recover(); rec != nil {
				logger(ctx).Error(
					"panic in handler",
					slog.Any(logx.FieldError, rec),
					slog.String(logx.FieldStack, string(debug.Stack())),
				)

				reply.Error(ctx, w, domain.WrapError(
					fmt.Errorf("panic: %v", rec),
					errcodes.InternalServerError,
					"internal server error",
				))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
