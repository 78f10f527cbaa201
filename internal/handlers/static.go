package handlers

import (
	"net/http"
	"path/filepath"
)

// Index serves the landing page. The root pattern matches every otherwise
// unrouted path, so anything but "/" is a plain 404.
func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, filepath.Join(h.StaticDir, "index.html"))
}

func (h *Handlers) Ticket(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.StaticDir, "ticket.html"))
}
