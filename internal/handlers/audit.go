package handlers

import (
	"net/http"
	"strconv"
)

// AuditLogins lists recent login events from the operational trail.
// Diagnostic surface, available only when the audit backend is configured.
func (h *Handlers) AuditLogins(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.Detail(w, http.StatusMethodNotAllowed, "use GET")
		return
	}
	if h.Trail == nil {
		h.Detail(w, http.StatusServiceUnavailable, "login audit trail not configured")
		return
	}

	var limit int64 = 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 {
			h.Detail(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	events, err := h.Trail.Recent(r.Context(), limit)
	if err != nil {
		h.Logger.Printf("[AUDIT][ERR] list login events: %v", err)
		h.Detail(w, http.StatusInternalServerError, "server error")
		return
	}

	h.JSON(w, http.StatusOK, map[string]any{
		"count":  len(events),
		"events": events,
	})
}
