package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"moving-estimate-service/internal/config"
	"moving-estimate-service/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	pool, err := repository.NewPool(connectCtx, cfg.DB.DSN())
	cancel()
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	defer pool.Close()

	log.Println("initializing schema...")
	if err := repository.InitSchema(ctx, pool); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}

	log.Println("seeding rates...")
	if err := repository.SeedRates(ctx, pool); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("done")
}
