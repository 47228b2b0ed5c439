package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"feedback-builder/internal/config"
	"feedback-builder/internal/database"
	"feedback-builder/internal/logger"
	"feedback-builder/internal/repository"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

func main() {
	file := flag.String("file", "database/seed/categories.yaml", "YAML file listing the categories to seed")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatal("Failed to read seed file", zap.String("path", *file), zap.Error(err))
	}
	seeds, err := parseSeedFile(data)
	if err != nil {
		log.Fatal("Failed to parse seed file", zap.String("path", *file), zap.Error(err))
	}
	log.Info("Loaded seed file", zap.String("path", *file), zap.Int("categories", len(seeds)))

	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		log.Fatal("Failed to connect to Oracle database", zap.Error(err))
	}
	defer db.Close()

	created, err := seedCategories(context.Background(), db, log, seeds, cfg.Builder.CatalogPageSize)
	if err != nil {
		log.Fatal("Seeding failed, transaction rolled back", zap.Error(err))
	}
	log.Info("Category seeding completed", zap.Int("created", created), zap.Int("skipped", len(seeds)-created))
}

// seedCategories inserts the categories that do not exist yet in one transaction.
func seedCategories(ctx context.Context, db *sqlx.DB, log *zap.Logger, seeds []SeedCategory, pageSize int) (int, error) {
	tm := repository.NewTransactionManagerAdapter(db)
	repo := repository.NewCategoryDatabaseAdapter(db)

	created := 0
	err := tm.WithTransaction(ctx, func(ctx context.Context) error {
		existing, err := repo.ListCategories(ctx, pageSize)
		if err != nil {
			return err
		}
		for _, category := range newCategories(existing, seeds) {
			if err := repo.SaveCategory(ctx, &category); err != nil {
				return err
			}
			log.Info("Created category", zap.String("id", category.ID), zap.String("name", category.Name))
			created++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}
