// verify-db checks that the configured database is reachable, that the
// documents table and its change trigger exist, and that every collection
// loads cleanly. Useful as a deploy smoke test.
//
// Usage: go run ./cmd/verify-db
package main

import (
	"context"
	"log"
	"time"

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
		log.Fatalf("[CONFIG] %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("[CONFIG] DATABASE_URL is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("[CONNECT] %v", err)
	}
	defer pool.Close()
	log.Println("[CONNECT] success")

	var hasTable bool
	err = pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = 'documents')`,
	).Scan(&hasTable)
	if err != nil {
		log.Fatalf("[SCHEMA] %v", err)
	}
	if !hasTable {
		log.Fatal("[SCHEMA] documents table missing; run the server or cmd/restore-seed once to create it")
	}

	var hasTrigger bool
	err = pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'documents_notify')`,
	).Scan(&hasTrigger)
	if err != nil {
		log.Fatalf("[SCHEMA] %v", err)
	}
	if !hasTrigger {
		log.Fatal("[SCHEMA] change notification trigger missing; live updates will not work")
	}
	log.Println("[SCHEMA] success")

	pg := store.NewPostgres(pool, zap.NewNop())
	collections := []string{
		store.CollectionCustomers,
		store.CollectionJobs,
		store.CollectionExpenses,
		store.CollectionUsers,
		store.CollectionData,
	}
	for _, collection := range collections {
		docs, err := pg.Load(ctx, collection)
		if err != nil {
			log.Fatalf("[LOAD] %s: %v", collection, err)
		}
		log.Printf("[LOAD] %s: %d documents", collection, len(docs))
	}

	log.Println("[DONE] database verified")
}
