package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"bank_clients/internal/config"
	"bank_clients/internal/models"
	"bank_clients/internal/repository/audit"
	"bank_clients/internal/repository/database"
	"bank_clients/internal/services/statement"
)

type ClientStore interface {
	Authenticate(ctx context.Context, login models.LoginRequest) (*models.ClientProfile, error)
	GetByClientID(ctx context.Context, clientID int64) (*models.ClientProfile, error)
}

type LoginTrail interface {
	Record(ctx context.Context, ev audit.LoginEvent) error
	Recent(ctx context.Context, limit int64) ([]audit.LoginEvent, error)
}

type StatementExporter interface {
	Export(ctx context.Context, profile *models.ClientProfile) (statement.Result, error)
}

type Handlers struct {
	Clients    ClientStore
	Trail      LoginTrail        // nil when the audit backend is not configured
	Statements StatementExporter // nil when the export backend is not configured

	StaticDir string
	Logger    *log.Logger

	cfg *config.Config
}

func New(cfg *config.Config) *Handlers {
	h := &Handlers{
		Clients:   database.NewClientRepo(cfg.Postgres),
		StaticDir: cfg.StaticDir,
		Logger:    log.Default(),
		cfg:       cfg,
	}

	if cfg.Mongo != nil {
		h.Trail = audit.NewLoginTrail(cfg.Mongo)
	}
	if cfg.S3 != nil {
		h.Statements = statement.NewService(cfg.S3.Client, cfg.S3.Bucket, 15*time.Minute)
	}

	return h
}

func (h *Handlers) JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// Detail writes the error body shape the frontend expects.
func (h *Handlers) Detail(w http.ResponseWriter, code int, msg string) {
	h.JSON(w, code, map[string]string{"detail": msg})
}
