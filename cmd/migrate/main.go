package main

import (
	"context"
	"flag"
	"log"
	"time"

	"feedback-builder/internal/config"
	"feedback-builder/internal/database"
	"feedback-builder/internal/logger"

	"go.uber.org/zap"
)

func main() {
	dir := flag.String("dir", "database/migrations", "directory holding *.up.sql files")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	if err := database.RunMigrations(ctx, db, *dir); err != nil {
		l.Fatal("Failed to run migrations", zap.String("dir", *dir), zap.Error(err))
	}
	l.Info("Migrations applied", zap.String("dir", *dir))
}
