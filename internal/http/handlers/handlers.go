package handlers

import (
	"encoding/json"
	"net/http"

	"shipfront/internal/logx"
)

// Handlers holds the service endpoints shared by both portals.
type Handlers struct {
	Logger logx.Logger
}

// New creates a Handlers instance with the given logger.
func New(logger logx.Logger) *Handlers {
	return &Handlers{Logger: logger}
}

// Ping handles GET /ping and returns 200 with {"message":"pong"}.
func (h *Handlers) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{"message": "pong"}); err != nil {
		h.Logger.Error("ping encode failed", logx.String("req_id", reqID(r.Context())), logx.Err(err))
	}
}

// HealthcheckHead handles HEAD /healthcheck and returns 204 No Content.
func (h *Handlers) HealthcheckHead(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// NotFound renders the shared error page for unknown routes.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	renderError(h.Logger, w, r, http.StatusNotFound, "Page not found")
}
