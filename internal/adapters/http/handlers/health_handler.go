package handlers

import (
	"errors"
	"net/http"

	"github.com/jsamuelsen11/kanban-service/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusDegraded = "degraded"
	statusNotReady = "not_ready"
)

// HealthHandler handles liveness and readiness HTTP endpoints. Readiness
// probes the database, the optional Redis cache and any remote notification
// sinks registered at startup.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a new HealthHandler with the given health registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready. It answers 503 when a required
// check fails. Failures wrapping ports.ErrDegraded keep it at 200 with
// status "degraded".
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	checks := make(map[string]string, len(results))
	status := statusReady
	for name, err := range results {
		switch {
		case err == nil:
			checks[name] = statusOK
		case errors.Is(err, ports.ErrDegraded):
			checks[name] = err.Error()
			if status == statusReady {
				status = statusDegraded
			}
		default:
			checks[name] = err.Error()
			status = statusNotReady
		}
	}

	code := http.StatusOK
	if status == statusNotReady {
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, r, code, map[string]any{
		"status": status,
		"checks": checks,
	})
}
