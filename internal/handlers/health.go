package handlers

import (
	"context"
	"net/http"
	"time"
)

type healthResp struct {
	OK     bool     `json:"ok"`
	Errors []string `json:"errors,omitempty"`
}

func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var errs []string

	cfg := h.cfg
	if cfg == nil || cfg.Postgres == nil || cfg.Postgres.Pool == nil {
		errs = append(errs, "postgres not initialized")
	} else if err := cfg.Postgres.Pool.Ping(ctx); err != nil {
		errs = append(errs, "postgres ping failed: "+err.Error())
	}

	if cfg != nil && cfg.Mongo != nil {
		if cfg.Mongo.Client == nil {
			errs = append(errs, "mongo not initialized")
		} else if err := cfg.Mongo.Client.Ping(ctx, nil); err != nil {
			errs = append(errs, "mongo ping failed: "+err.Error())
		}
	}

	if cfg != nil && cfg.S3 != nil {
		if cfg.S3.Client == nil {
			errs = append(errs, "s3 not initialized")
		} else if ok, err := cfg.S3.Client.BucketExists(ctx, cfg.S3.Bucket); err != nil {
			errs = append(errs, "s3 bucket check failed: "+err.Error())
		} else if !ok {
			errs = append(errs, `s3 bucket "`+cfg.S3.Bucket+`" not found`)
		}
	}

	resp := healthResp{OK: len(errs) == 0}
	code := http.StatusOK
	if len(errs) > 0 {
		resp.Errors = errs
		code = http.StatusInternalServerError
	}
	h.JSON(w, code, resp)
}
