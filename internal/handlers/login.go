package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"bank_clients/internal/models"
	"bank_clients/internal/repository/audit"
	"bank_clients/internal/repository/database"
)

// Login authenticates a client by passport series, number and password and
// returns the joined profile row. OPTIONS answers the frontend's preflight
// with a fixed body.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		h.JSON(w, http.StatusOK, map[string]string{"message": "OK"})
		return
	}
	if r.Method != http.MethodPost {
		h.Detail(w, http.StatusMethodNotAllowed, "use POST")
		return
	}

	var req models.LoginRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	if err := dec.Decode(&req); err != nil {
		h.Logger.Printf("[LOGIN][ERR] bad JSON: %v", err)
		h.Detail(w, http.StatusBadRequest, "bad JSON: "+err.Error())
		return
	}

	if strings.TrimSpace(req.PassportSeries) == "" ||
		strings.TrimSpace(req.PassportNumber) == "" ||
		req.Password == "" {
		h.Detail(w, http.StatusBadRequest, "passport_series, passport_number and password are required")
		return
	}

	// The whole payload, password included, goes to the operational log.
	h.Logger.Printf("[LOGIN] received series=%q number=%q password=%q",
		req.PassportSeries, req.PassportNumber, req.Password)

	profile, err := h.Clients.Authenticate(r.Context(), req)
	if errors.Is(err, database.ErrClientNotFound) {
		h.Logger.Printf("[LOGIN] no matching client for series=%q number=%q",
			req.PassportSeries, req.PassportNumber)
		h.recordLogin(r, req, audit.OutcomeRejected, nil, "no matching row")
		h.Detail(w, http.StatusUnauthorized, "invalid passport details or password")
		return
	}
	if err != nil {
		h.Logger.Printf("[LOGIN][ERR] query: %v", err)
		h.recordLogin(r, req, audit.OutcomeError, nil, err.Error())
		h.Detail(w, http.StatusInternalServerError, "server error")
		return
	}

	h.Logger.Printf("[LOGIN][OK] client_id=%d profile_id=%d", profile.ClientID, profile.ProfileID)
	h.recordLogin(r, req, audit.OutcomeOK, &profile.ClientID, "")
	h.JSON(w, http.StatusOK, profile)
}

// recordLogin appends to the audit trail when one is configured. Best-effort:
// a failed insert is logged and the HTTP outcome stands.
func (h *Handlers) recordLogin(r *http.Request, req models.LoginRequest, outcome string, clientID *int64, detail string) {
	if h.Trail == nil {
		return
	}

	ev := audit.LoginEvent{
		PassportSeries: req.PassportSeries,
		PassportNumber: req.PassportNumber,
		Outcome:        outcome,
		ClientID:       clientID,
	}
	if detail != "" {
		ev.Detail = &detail
	}

	if err := h.Trail.Record(r.Context(), ev); err != nil {
		h.Logger.Printf("[AUDIT][ERR] record login event: %v", err)
	}
}
