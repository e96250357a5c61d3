package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/heartmarshall/contracts-backend/pkg/ctxutil"
)

// Recovery turns a handler panic into a 500 JSON error and logs it with the
// stack, request id and caller. Install it after Auth and Logger.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				ctx := r.Context()
				attrs := []slog.Attr{
					slog.String("error", fmt.Sprint(rec)),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
					slog.String("stack", string(debug.Stack())),
				}
				if identity, ok := ctxutil.IdentityFromCtx(ctx); ok {
					attrs = append(attrs,
						slog.String("user_id", identity.UserID.String()),
						slog.String("role", identity.Role),
					)
				}
				logger.LogAttrs(ctx, slog.LevelError, "panic recovered", attrs...)

				writeJSONError(w, http.StatusInternalServerError, "internal server error")
			}()
			next.ServeHTTP(w, r)
		})
	}
}
