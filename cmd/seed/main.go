package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/joshu-sajeev/trendplanner/internal/logger"
	"github.com/joshu-sajeev/trendplanner/internal/storage/postgres"
)

func main() {
	ctx := context.Background()

	log, err := logger.New(os.Getenv("LOG_MODE"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to init logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	cfg, err := postgres.LoadConfigFromEnv(ctx)
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}
	db, err := postgres.ConnectDB(cfg, log)
	if err != nil {
		log.Fatal("Connection failed", "error", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("Failed to get sql.DB", "error", err)
	}
	defer sqlDB.Close()

	if err := postgres.RunMigrations(sqlDB); err != nil {
		log.Fatal("Migrations failed", "error", err)
	}

	now := time.Now().UTC()
	rnd := rand.New(rand.NewPCG(uint64(now.UnixNano()), 0))
	if err := postgres.SeedDemoData(ctx, db, now, rnd, log); err != nil {
		log.Fatal("Seed failed", "error", err)
	}
	log.Info("Demo data seeded", "user", postgres.DemoUserID, "workspace", postgres.DemoWorkspaceID)
}
