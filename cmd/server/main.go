package main

import (
	"context"
	"log"
	"net/http"

	webAdapter "clearview-wipers/internal/adapters/web"
	"clearview-wipers/internal/app"
	"clearview-wipers/internal/config"
	"clearview-wipers/internal/db"
	"clearview-wipers/internal/geo"
	"clearview-wipers/internal/photoid"
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

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	var st store.Store
	if cfg.DatabaseURL == "" {
		logger.Warn("DATABASE_URL not set, running in demo mode with in-memory data")
		mem := store.NewMemory()
		if err := mem.SeedDemo(ctx); err != nil {
			logger.Fatal("demo seed", zap.Error(err))
		}
		st = mem
	} else {
		pool, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("database", zap.Error(err))
		}
		defer pool.Close()

		pg := store.NewPostgres(pool, logger)
		if err := pg.EnsureSchema(ctx); err != nil {
			logger.Fatal("schema", zap.Error(err))
		}
		st = pg
	}

	svc := app.NewService(st, geo.NewClient(cfg.NominatimURL), photoid.NewSimulated(), logger)
	if err := svc.Start(ctx); err != nil {
		logger.Fatal("service start", zap.Error(err))
	}

	handler := webAdapter.NewHandler(svc, logger, webAdapter.Options{
		JWTSecret:      cfg.JWTSecret,
		AdminPIN:       cfg.AdminPIN,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	logger.Info("server starting", zap.String("port", cfg.ServerPort))
	if err := http.ListenAndServe(":"+cfg.ServerPort, handler); err != nil {
		logger.Fatal("server", zap.Error(err))
	}
}
