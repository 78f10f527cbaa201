package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"bank_clients/internal/handlers"
	"bank_clients/internal/transport/cors"
)

type Server struct {
	httpServer *http.Server
}

func NewServer(port string, h *handlers.Handlers) *Server {
	mux := http.NewServeMux()

	if h != nil {
		mux.HandleFunc("/", h.Index)
		mux.HandleFunc("/ticket.html", h.Ticket)
		mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(h.StaticDir))))
		mux.HandleFunc("/health", h.Health)
		mux.HandleFunc("/api/login", h.Login)
		mux.HandleFunc("/api/client/", h.Client)
		mux.HandleFunc("/api/audit/logins", h.AuditLogins)
	}

	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%s", port),
			Handler:      cors.Permissive(mux),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// Handler exposes the routed stack for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shCtx)
	case err := <-errCh:
		return err
	}
}
