package main

import (
	"context"
	"flag"
	"log"
	"os"

	"burgerdelicia/internal/config"
	"burgerdelicia/internal/db"
	"burgerdelicia/internal/importer"
	menurepo "burgerdelicia/internal/repository/menu"
)

func main() {
	csvPath := flag.String("file", "", "path to the menu CSV export")
	flag.Parse()

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[importer] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	if *csvPath == "" {
		logger.Fatal("-file is required")
	}
	if cfg.DBConnString == "" {
		logger.Fatal("DB_DSN is required")
	}

	f, err := os.Open(*csvPath)
	if err != nil {
		logger.Fatalf("open csv: %v", err)
	}
	defer f.Close()

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	repo := menurepo.NewPostgres(pool, logger)
	imported, err := importer.NewCSVImporter(f, repo).Run(ctx)
	if err != nil {
		logger.Fatalf("import: %v (imported %d before failure)", err, imported)
	}

	logger.Printf("imported %d products", imported)
}
