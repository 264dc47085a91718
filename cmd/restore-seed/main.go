// restore-seed is a one-shot tool to restore the demo dataset in the live
// database. Run it when the starter customers, jobs, or shelf counts have
// been accidentally wiped.
//
// Usage: go run ./cmd/restore-seed
package main

import (
	"context"
	"log"

	"clearview-wipers/internal/config"
	"clearview-wipers/internal/db"
	"clearview-wipers/internal/store"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL must be set; demo mode seeds itself on startup")
	}

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer pool.Close()

	pg := store.NewPostgres(pool, zap.NewNop())
	if err := pg.EnsureSchema(ctx); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	if err := store.SeedDemo(ctx, pg); err != nil {
		log.Fatalf("Failed to seed demo data: %v", err)
	}

	log.Println("Demo data restored successfully.")
}
