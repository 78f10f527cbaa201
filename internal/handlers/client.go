package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"bank_clients/internal/models"
	"bank_clients/internal/repository/database"
)

// Client dispatches /api/client/{client_id} and
// /api/client/{client_id}/statement. The id must parse as an integer before
// any query runs.
func (h *Handlers) Client(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.Detail(w, http.StatusMethodNotAllowed, "use GET")
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/client/")
	idPart, sub, _ := strings.Cut(rest, "/")

	clientID, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil {
		h.Detail(w, http.StatusBadRequest, "client_id must be an integer")
		return
	}

	switch sub {
	case "":
		h.clientProfile(w, r, clientID)
	case "statement":
		h.clientStatement(w, r, clientID)
	default:
		http.NotFound(w, r)
	}
}

func (h *Handlers) clientProfile(w http.ResponseWriter, r *http.Request, clientID int64) {
	profile, err := h.fetchProfile(w, r, clientID)
	if profile == nil || err != nil {
		return
	}
	h.JSON(w, http.StatusOK, profile)
}

func (h *Handlers) clientStatement(w http.ResponseWriter, r *http.Request, clientID int64) {
	if h.Statements == nil {
		h.Detail(w, http.StatusServiceUnavailable, "statement export not configured")
		return
	}

	profile, err := h.fetchProfile(w, r, clientID)
	if profile == nil || err != nil {
		return
	}

	res, err := h.Statements.Export(r.Context(), profile)
	if err != nil {
		h.Logger.Printf("[STMT][ERR] client_id=%d: %v", clientID, err)
		h.Detail(w, http.StatusInternalServerError, "server error")
		return
	}

	h.JSON(w, http.StatusOK, map[string]any{
		"url":        res.URL,
		"key":        res.Key,
		"size_bytes": res.SizeBytes,
		"expires_at": res.ExpiresAt,
	})
}

// fetchProfile loads the row and writes the error response itself when there
// is nothing to hand back.
func (h *Handlers) fetchProfile(w http.ResponseWriter, r *http.Request, clientID int64) (*models.ClientProfile, error) {
	profile, err := h.Clients.GetByClientID(r.Context(), clientID)
	if errors.Is(err, database.ErrClientNotFound) {
		h.Detail(w, http.StatusNotFound, "client not found")
		return nil, err
	}
	if err != nil {
		h.Logger.Printf("[CLIENT][ERR] client_id=%d: %v", clientID, err)
		h.Detail(w, http.StatusInternalServerError, "server error")
		return nil, err
	}
	return profile, nil
}
