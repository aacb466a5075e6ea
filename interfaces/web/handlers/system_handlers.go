package handlers

import (
	"context"
	"net/http"
	"time"

	"hostpro/infrastructure/serialization"
	"hostpro/logging"
)

// HealthReporter reports the state of the preference store.
type HealthReporter interface {
	Health(ctx context.Context) (map[string]interface{}, error)
}

// ContextCounter reports how many client contexts are live.
type ContextCounter interface {
	Len() int
}

// SystemHandlers serves operational endpoints.
type SystemHandlers struct {
	store    HealthReporter
	contexts ContextCounter
	started  time.Time
	logger   *logging.Logger
}

// NewSystemHandlers creates the system handlers.
func NewSystemHandlers(store HealthReporter, contexts ContextCounter) *SystemHandlers {
	return &SystemHandlers{
		store:    store,
		contexts: contexts,
		started:  time.Now(),
		logger:   logging.Default().WithComponent("system_handler"),
	}
}

// Health reports store health and the number of live client contexts.
func (h *SystemHandlers) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	response := map[string]interface{}{
		"status":  "ok",
		"clients": h.contexts.Len(),
		"uptime":  time.Since(h.started).Round(time.Second).String(),
	}

	store, err := h.store.Health(ctx)
	if err != nil {
		h.logger.Error("Store health check failed", "error", err)
		status = http.StatusServiceUnavailable
		response["status"] = "degraded"
		response["error"] = err.Error()
	}
	response["store"] = store

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := serialization.Encode(w, response); err != nil {
		h.logger.Error("Failed to encode health response", "error", err)
	}
}
