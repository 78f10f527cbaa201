package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bank_clients/internal/config"
	"bank_clients/internal/handlers"
	"bank_clients/internal/server"
)

func main() {
	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	setupCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cfg := config.Init(setupCtx)
	defer cfg.Postgres.Close()

	if err := cfg.CheckConnections(setupCtx); err != nil {
		log.Fatalf("connection check failed: %v", err)
	}
	log.Printf("all configured backends reachable, listening on :%s", cfg.Port)

	h := handlers.New(cfg)
	srv := server.NewServer(cfg.Port, h)

	if err := srv.Run(runCtx); err != nil {
		log.Fatal(err)
	}
}
