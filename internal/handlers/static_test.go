package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func staticHandlers(t *testing.T) *Handlers {
	t.Helper()
	dir := t.TempDir()

	index := []byte("<html><body>index</body></html>")
	ticket := []byte("<html><body>ticket</body></html>")
	if err := os.WriteFile(filepath.Join(dir, "index.html"), index, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "ticket.html"), ticket, 0o644); err != nil {
		t.Fatal(err)
	}

	h := testHandlers(&fakeStore{})
	h.StaticDir = dir
	return h
}

func TestIndex_servesLandingPage(t *testing.T) {
	h := staticHandlers(t)

	req := httptest.NewRequest("GET", "/", nil)
	rr := httptest.NewRecorder()
	h.Index(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "index") {
		t.Fatalf("expected index page body, got %s", rr.Body.String())
	}
}

func TestIndex_unroutedPathIs404(t *testing.T) {
	h := staticHandlers(t)

	req := httptest.NewRequest("GET", "/no-such-page", nil)
	rr := httptest.NewRecorder()
	h.Index(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestTicket_servesSecondPage(t *testing.T) {
	h := staticHandlers(t)

	req := httptest.NewRequest("GET", "/ticket.html", nil)
	rr := httptest.NewRecorder()
	h.Ticket(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "ticket") {
		t.Fatalf("expected ticket page body, got %s", rr.Body.String())
	}
}
