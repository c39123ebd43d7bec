package main

import (
	"context"
	"log"
	"os"

	"burgerdelicia/internal/config"
	"burgerdelicia/internal/db"
	menurepo "burgerdelicia/internal/repository/menu"
	"burgerdelicia/internal/seed"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	if cfg.DBConnString == "" {
		logger.Fatal("DB_DSN is required")
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	repo := menurepo.NewPostgres(pool, logger)
	if err := seed.Apply(ctx, repo); err != nil {
		logger.Fatalf("seed menu: %v", err)
	}

	logger.Printf("seeded %d products", len(seed.Menu()))
}
