package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bank_clients/internal/repository/audit"
)

func TestAuditLogins_notConfigured(t *testing.T) {
	h := testHandlers(&fakeStore{})

	req := httptest.NewRequest("GET", "/api/audit/logins", nil)
	rr := httptest.NewRecorder()
	h.AuditLogins(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rr.Code)
	}
}

func TestAuditLogins_listsEvents(t *testing.T) {
	ft := &fakeTrail{events: []audit.LoginEvent{
		{PassportSeries: "1234", PassportNumber: "567890", Outcome: audit.OutcomeOK, CreatedAt: time.Now().UTC()},
		{PassportSeries: "0000", PassportNumber: "000000", Outcome: audit.OutcomeRejected, CreatedAt: time.Now().UTC()},
	}}
	h := testHandlers(&fakeStore{})
	h.Trail = ft

	req := httptest.NewRequest("GET", "/api/audit/logins?limit=10", nil)
	rr := httptest.NewRecorder()
	h.AuditLogins(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var body struct {
		Count  int                `json:"count"`
		Events []audit.LoginEvent `json:"events"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if body.Count != 2 || len(body.Events) != 2 {
		t.Fatalf("expected 2 events, got count=%d len=%d", body.Count, len(body.Events))
	}
	if body.Events[1].Outcome != audit.OutcomeRejected {
		t.Fatalf("expected rejected event, got %+v", body.Events[1])
	}
}

func TestAuditLogins_badLimit(t *testing.T) {
	h := testHandlers(&fakeStore{})
	h.Trail = &fakeTrail{}

	req := httptest.NewRequest("GET", "/api/audit/logins?limit=zero", nil)
	rr := httptest.NewRecorder()
	h.AuditLogins(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}
