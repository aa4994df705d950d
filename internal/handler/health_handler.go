package handlers

import "net/http"

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	health, err := h.HealthService.Check(r.Context())
	if err != nil {
		h.Logger.Error("health check failed", "error", err)
		WriteError(w, "database unavailable", http.StatusServiceUnavailable)
		return
	}

	writeSuccess(w, health, http.StatusOK)
}
