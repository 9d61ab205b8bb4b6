package middleware

import (
	"log/slog"
	"net/http"

	appctx "github.com/jsamuelsen11/kanban-service/internal/app/context"
	"github.com/jsamuelsen11/kanban-service/internal/platform/logging"
)

// AppContext returns middleware that gives each request its own
// RequestContext, so board and task lookups are memoized and writes staged
// for the lifetime of that request only.
//
// Staged writes that are still pending when the handler returns were never
// committed and are discarded; the middleware logs them at WARN so a service
// that forgets to Commit is visible.
//
// Register it after Logging so the warning carries the request-scoped logger.
func AppContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rc := appctx.New(r.Context())
			ctx := appctx.WithRequestContext(r.Context(), rc)

			next.ServeHTTP(w, r.WithContext(ctx))

			if pending := rc.Pending(); len(pending) > 0 {
				logging.FromContext(ctx).WarnContext(ctx, "request ended with uncommitted writes",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Any("actions", pending),
				)
			}
		})
	}
}
